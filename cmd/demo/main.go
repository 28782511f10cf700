package main

import (
	"flag"
	"fmt"

	"sales-insights/internal/data"
	"sales-insights/internal/insights"
	"sales-insights/internal/sim"
)

// Demo:
// - Load an order CSV
// - Aggregate into channel/region summary rows with KPIs
// - Sweep price deltas through the simulator to show how models fit together
func main() {
	dataPath := flag.String("data", "orders.csv", "Path to order CSV")
	elasticity := flag.Float64("elasticity", 1.2, "Demand elasticity for the sweep")
	flag.Parse()

	records, err := data.LoadOrdersCSV(*dataPath)
	if err != nil {
		panic(err)
	}
	if len(records) == 0 {
		panic("no rows in CSV")
	}

	summary := insights.Aggregate(records)
	kpis := insights.KPIs(summary)

	fmt.Printf("Loaded %d orders into %d segments\n", len(records), len(summary))
	fmt.Printf("Channels: %v\n", insights.Channels(summary))
	fmt.Printf("Regions:  %v\n\n", insights.Regions(summary))

	for _, r := range summary {
		fmt.Printf("%-10s %-10s orders=%6d revenue=%12.2f profit=%12.2f aov=%8.2f\n",
			r.Channel, r.Region, r.Orders, r.Revenue, r.Profit, r.AOV)
	}
	fmt.Printf("\nTotal Revenue=$%.2f  Orders=%d  AOV=$%.2f  Profit=$%.2f\n\n",
		kpis.TotalRevenue, kpis.TotalOrders, kpis.AvgAOV, kpis.TotalProfit)

	baseline := insights.SegmentBaseline(summary)
	fmt.Printf("Price sweep (e=%.2f, baseline revenue=$%.2f):\n", *elasticity, baseline.Revenue)
	for _, d := range []float64{-0.20, -0.10, -0.05, 0, 0.05, 0.10, 0.20} {
		res, err := sim.Run(baseline, sim.Params{PriceDelta: d, Elasticity: *elasticity})
		if err != nil {
			fmt.Printf("  dp=%+5.0f%%  %v\n", d*100, err)
			continue
		}
		fmt.Printf("  dp=%+5.0f%%  units=%10.1f  revenue=%14.2f  delta=%+12.2f\n",
			d*100, res.ProjectedUnits, res.ProjectedRevenue, res.RevenueDelta)
	}
}
