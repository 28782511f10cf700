package insights

import "math"

// SummaryRow is the per-(channel, region) aggregate.
// This is the primary artifact the dashboard views are built from.
// Rows are never mutated after aggregation; filtering produces a new slice.
type SummaryRow struct {
	Channel string  `json:"channel"`
	Region  string  `json:"region"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
	AOV     float64 `json:"aov"` // revenue / orders, 0 when orders == 0
}

// KPIBundle is the rollup over a set of summary rows.
type KPIBundle struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalOrders  int     `json:"total_orders"`
	AvgAOV       float64 `json:"avg_aov"`
	TotalProfit  float64 `json:"total_profit"`
}

// guardedDiv is the single division policy for AOV and averages:
// zero denominator yields 0, never Inf or a fault.
func guardedDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// finiteOrZero coerces NaN/±Inf to 0. Rows produced by Aggregate cannot
// carry non-finite AOVs, but rows arriving from another source must be
// defended against before averaging.
func finiteOrZero(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}
