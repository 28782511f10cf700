package insights

import "sales-insights/internal/sim"

// FilterSummary returns the rows whose channel is in channels AND whose
// region is in regions. Membership is exact: empty selection sets yield an
// empty result, not "all" — a UI-level "nothing selected" state must be
// defaulted to the full value lists by the caller before reaching here.
func FilterSummary(rows []SummaryRow, channels, regions map[string]bool) []SummaryRow {
	out := make([]SummaryRow, 0, len(rows))
	for _, r := range rows {
		if channels[r.Channel] && regions[r.Region] {
			out = append(out, r)
		}
	}
	return out
}

// Selection builds a membership set from a value list.
func Selection(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// KPIs rolls up a view into totals plus the mean AOV. Non-finite AOVs are
// coerced to 0 before averaging; an empty view yields an all-zero bundle.
func KPIs(rows []SummaryRow) KPIBundle {
	var b KPIBundle
	if len(rows) == 0 {
		return b
	}
	aovSum := 0.0
	for _, r := range rows {
		b.TotalRevenue += r.Revenue
		b.TotalOrders += r.Orders
		b.TotalProfit += r.Profit
		aovSum += finiteOrZero(r.AOV)
	}
	b.AvgAOV = aovSum / float64(len(rows))
	return b
}

// SegmentBaseline derives the simulation baseline for a view: units are
// the order count, revenue is the observed total, and avg price is their
// guarded quotient. A view with no orders produces a degenerate baseline
// that sim.Run rejects as insufficient data.
func SegmentBaseline(rows []SummaryRow) sim.Baseline {
	var units int
	var revenue float64
	for _, r := range rows {
		units += r.Orders
		revenue += r.Revenue
	}
	return sim.Baseline{
		Units:    float64(units),
		AvgPrice: guardedDiv(revenue, float64(units)),
		Revenue:  revenue,
	}
}
