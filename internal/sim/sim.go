// Package sim projects revenue under a constant-elasticity demand model.
package sim

import (
	"errors"
	"math"
)

var (
	// ErrPriceDeltaOutOfDomain is returned when price_delta <= -1, where
	// (1 + price_delta) is non-positive and a fractional exponent is
	// mathematically undefined.
	ErrPriceDeltaOutOfDomain = errors.New("price_delta must be > -1")

	// ErrInsufficientData is returned by Run when the baseline has no
	// units or no average price. Callers should surface it as "not enough
	// data for simulation", never as a zero projection.
	ErrInsufficientData = errors.New("not enough data for simulation")
)

// Params are the caller-supplied simulation knobs. Neither field is
// clamped to the UI-suggested ranges; only the mathematical domain of
// PriceDelta is validated.
type Params struct {
	PriceDelta float64 // fractional price change, e.g. 0.05 = +5%
	Elasticity float64 // demand elasticity exponent, e.g. 1.2
}

// Baseline is the observed (units, avg price, revenue) triple the
// simulation is parametrized on. Revenue must belong to the same segment
// as Units and AvgPrice or the resulting delta is meaningless.
type Baseline struct {
	Units    float64 `json:"units"`
	AvgPrice float64 `json:"avg_price"`
	Revenue  float64 `json:"revenue"`
}

// Result is a single-shot projection.
type Result struct {
	ProjectedUnits   float64 `json:"projected_units"`
	ProjectedRevenue float64 `json:"projected_revenue"`
	RevenueDelta     float64 `json:"revenue_delta"`
}

// PriceChange applies the constant-elasticity demand response:
//
//	demand_factor    = (1 + priceDelta)^(-elasticity)
//	projected_units  = baseUnits * demand_factor
//	projected_revenue = projected_units * avgPrice * (1 + priceDelta)
//
// It is pure and validates only the exponent domain. The degenerate-input
// gate (baseUnits/avgPrice <= 0) is the caller's policy; see Run.
func PriceChange(baseUnits, avgPrice, elasticity, priceDelta float64) (units, revenue float64, err error) {
	if priceDelta <= -1 {
		return 0, 0, ErrPriceDeltaOutOfDomain
	}
	demandFactor := math.Pow(1+priceDelta, -elasticity)
	units = baseUnits * demandFactor
	revenue = units * avgPrice * (1 + priceDelta)
	return units, revenue, nil
}

// Run simulates a price change against a baseline. It fails fast with
// ErrInsufficientData on a degenerate baseline so "no data" is never
// confused with a computed zero.
func Run(b Baseline, p Params) (Result, error) {
	if b.Units <= 0 || b.AvgPrice <= 0 {
		return Result{}, ErrInsufficientData
	}
	units, revenue, err := PriceChange(b.Units, b.AvgPrice, p.Elasticity, p.PriceDelta)
	if err != nil {
		return Result{}, err
	}
	return Result{
		ProjectedUnits:   units,
		ProjectedRevenue: revenue,
		RevenueDelta:     revenue - b.Revenue,
	}, nil
}
