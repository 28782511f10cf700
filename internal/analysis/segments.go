// Package analysis ranks channel/region segments by what a price move
// could do to their revenue under a given elasticity.
package analysis

import (
	"sort"

	"sales-insights/internal/insights"
	"sales-insights/internal/model"
	"sales-insights/internal/sim"
)

// ScanRange is the grid of price deltas evaluated per segment. The
// default mirrors the UI slider: -20%..+20% in 1% steps.
type ScanRange struct {
	Min  float64
	Max  float64
	Step float64
}

func DefaultScanRange() ScanRange {
	return ScanRange{Min: -0.20, Max: 0.20, Step: 0.01}
}

// SegmentOpportunity is a segment-level summary for ranking: observed
// stats plus the revenue-maximizing price move found in the scan.
type SegmentOpportunity struct {
	Channel string  `json:"channel"`
	Region  string  `json:"region"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
	AOV     float64 `json:"aov"`

	// RevenueShare is this segment's fraction of the view's total revenue.
	RevenueShare float64 `json:"revenue_share"`

	BestDelta        float64         `json:"best_delta"`
	ProjectedRevenue float64         `json:"projected_revenue"`
	RevenueLift      float64         `json:"revenue_lift"`
	Move             model.PriceMove `json:"move"`
}

// ComputeOpportunity scans price deltas for one segment and keeps the one
// maximizing projected revenue. Segments the simulator rejects as
// insufficient keep their observed stats with a zero, UNCHANGED move.
func ComputeOpportunity(row insights.SummaryRow, totalRevenue, elasticity float64, scan ScanRange) SegmentOpportunity {
	op := SegmentOpportunity{
		Channel: row.Channel,
		Region:  row.Region,
		Orders:  row.Orders,
		Revenue: row.Revenue,
		AOV:     row.AOV,
		Move:    model.PriceMoveUnchanged,
	}
	if totalRevenue > 0 {
		op.RevenueShare = row.Revenue / totalRevenue
	}

	baseline := sim.Baseline{
		Units:    float64(row.Orders),
		AvgPrice: row.AOV,
		Revenue:  row.Revenue,
	}

	best := row.Revenue
	for d := scan.Min; d <= scan.Max+scan.Step/2; d += scan.Step {
		res, err := sim.Run(baseline, sim.Params{PriceDelta: d, Elasticity: elasticity})
		if err != nil {
			// Insufficient or out-of-domain; no move beats doing nothing.
			return op
		}
		if res.ProjectedRevenue > best {
			best = res.ProjectedRevenue
			op.BestDelta = d
			op.ProjectedRevenue = res.ProjectedRevenue
			op.RevenueLift = res.RevenueDelta
		}
	}
	op.Move = model.PriceMoveFromDelta(op.BestDelta)
	return op
}

// RankByRevenueLift computes opportunities for every row in the view and
// sorts them descending by achievable revenue lift.
func RankByRevenueLift(rows []insights.SummaryRow, elasticity float64, scan ScanRange) []SegmentOpportunity {
	total := 0.0
	for _, r := range rows {
		total += r.Revenue
	}
	out := make([]SegmentOpportunity, 0, len(rows))
	for _, r := range rows {
		out = append(out, ComputeOpportunity(r, total, elasticity, scan))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].RevenueLift > out[j].RevenueLift
	})
	return out
}
