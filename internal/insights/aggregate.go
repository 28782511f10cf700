// Package insights turns flat order records into channel/region summaries
// and the KPI rollups the presentation layer displays.
package insights

import (
	"sort"

	"sales-insights/internal/model"
)

type segmentKey struct {
	Channel string
	Region  string
}

type accumulator struct {
	Orders  int
	Revenue float64
	Profit  float64
}

// Aggregate groups records by (channel, region) and derives per-group
// order counts, revenue, profit and AOV. Output is sorted by channel then
// region so repeated calls on the same input are reproducible.
func Aggregate(records []model.OrderRecord) []SummaryRow {
	acc := make(map[segmentKey]*accumulator)
	for _, r := range records {
		k := segmentKey{Channel: r.Channel, Region: r.Region}
		a, ok := acc[k]
		if !ok {
			a = &accumulator{}
			acc[k] = a
		}
		a.Orders++
		a.Revenue += r.Revenue
		a.Profit += r.Profit()
	}

	rows := make([]SummaryRow, 0, len(acc))
	for k, a := range acc {
		rows = append(rows, SummaryRow{
			Channel: k.Channel,
			Region:  k.Region,
			Orders:  a.Orders,
			Revenue: a.Revenue,
			Profit:  a.Profit,
			AOV:     guardedDiv(a.Revenue, float64(a.Orders)),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Channel != rows[j].Channel {
			return rows[i].Channel < rows[j].Channel
		}
		return rows[i].Region < rows[j].Region
	})
	return rows
}

// Channels returns the sorted distinct channels present in rows.
func Channels(rows []SummaryRow) []string {
	return distinct(rows, func(r SummaryRow) string { return r.Channel })
}

// Regions returns the sorted distinct regions present in rows.
func Regions(rows []SummaryRow) []string {
	return distinct(rows, func(r SummaryRow) string { return r.Region })
}

func distinct(rows []SummaryRow, key func(SummaryRow) string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, r := range rows {
		k := key(r)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
