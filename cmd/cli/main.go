package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sales-insights/internal/analysis"
	"sales-insights/internal/config"
	"sales-insights/internal/data"
	"sales-insights/internal/insights"
	"sales-insights/internal/model"
	"sales-insights/internal/sim"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "summary":
		cmdSummary(os.Args[2:])
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "rank":
		cmdRank(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli summary  --data orders.csv [--channels Online,Retail] [--regions West] [--out results/summary.csv]")
	fmt.Println("  cli simulate --data orders.csv [--channels ...] [--regions ...] --delta 0.05 --elasticity 1.2")
	fmt.Println("  cli rank     --data orders.csv [--elasticity 1.2] [--limit 10]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - empty --channels/--regions means no filter (all values)")
	fmt.Println("  - --config may supply a mysql source instead of --data")
}

func cmdSummary(args []string) {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	dataPath := fs.String("data", "orders.csv", "Path to order CSV")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	channels := fs.String("channels", "", "Comma-separated channel filter")
	regions := fs.String("regions", "", "Comma-separated region filter")
	outPath := fs.String("out", "", "Optional output CSV path")
	_ = fs.Parse(args)

	rows := loadView(*dataPath, *cfgPath, *channels, *regions)
	kpis := insights.KPIs(rows)

	fmt.Printf("%-12s %-12s %8s %14s %14s %10s\n", "channel", "region", "orders", "revenue", "profit", "aov")
	for _, r := range rows {
		fmt.Printf("%-12s %-12s %8d %14.2f %14.2f %10.2f\n",
			r.Channel, r.Region, r.Orders, r.Revenue, r.Profit, r.AOV)
	}
	fmt.Printf("\nTotal Revenue=$%.2f  Orders=%d  AOV=$%.2f  Profit=$%.2f\n",
		kpis.TotalRevenue, kpis.TotalOrders, kpis.AvgAOV, kpis.TotalProfit)

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			panic(err)
		}
		if err := insights.WriteSummaryCSV(*outPath, rows); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(rows), *outPath)
	}
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	dataPath := fs.String("data", "orders.csv", "Path to order CSV")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	channels := fs.String("channels", "", "Comma-separated channel filter")
	regions := fs.String("regions", "", "Comma-separated region filter")
	delta := fs.Float64("delta", 0.05, "Fractional price change (e.g. 0.05 = +5%)")
	elasticity := fs.Float64("elasticity", 1.2, "Demand elasticity")
	_ = fs.Parse(args)

	rows := loadView(*dataPath, *cfgPath, *channels, *regions)
	baseline := insights.SegmentBaseline(rows)

	result, err := sim.Run(baseline, sim.Params{PriceDelta: *delta, Elasticity: *elasticity})
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulation: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Baseline: units=%.0f avg_price=$%.2f revenue=$%.2f\n",
		baseline.Units, baseline.AvgPrice, baseline.Revenue)
	fmt.Printf("Move: %s (delta=%+.2f%%, e=%.2f)\n",
		model.PriceMoveFromDelta(*delta), *delta*100, *elasticity)
	fmt.Printf("Projected Units=%.1f  Projected Revenue=$%.2f  Revenue Delta=$%+.2f\n",
		result.ProjectedUnits, result.ProjectedRevenue, result.RevenueDelta)
}

func cmdRank(args []string) {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	dataPath := fs.String("data", "orders.csv", "Path to order CSV")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	elasticity := fs.Float64("elasticity", 1.2, "Demand elasticity")
	limit := fs.Int("limit", 10, "Max segments to print")
	_ = fs.Parse(args)

	rows := loadView(*dataPath, *cfgPath, "", "")
	ranked := analysis.RankByRevenueLift(rows, *elasticity, analysis.DefaultScanRange())
	if len(ranked) > *limit {
		ranked = ranked[:*limit]
	}

	fmt.Printf("%-4s %-12s %-12s %8s %12s %7s %10s %12s\n",
		"rank", "channel", "region", "orders", "revenue", "share", "best_dp", "lift$")
	for i, r := range ranked {
		fmt.Printf("%-4d %-12s %-12s %8d %12.2f %6.1f%% %9.2f%% %12.2f\n",
			i+1, r.Channel, r.Region, r.Orders, r.Revenue,
			r.RevenueShare*100, r.BestDelta*100, r.RevenueLift)
	}
}

// loadView loads records from the flagged CSV (or the config's MySQL
// source), aggregates them, and applies the channel/region filters.
// Empty filter strings default to every value present, matching the
// dashboard's "nothing selected means everything" behavior.
func loadView(dataPath, cfgPath, channels, regions string) []insights.SummaryRow {
	var records []model.OrderRecord
	var err error

	if cfgPath != "" {
		cfg, cfgErr := config.Load(cfgPath)
		if cfgErr != nil {
			panic(cfgErr)
		}
		if cfg.MySQL.DSN != "" {
			db, dbErr := data.Open(cfg.MySQL.DSN)
			if dbErr != nil {
				panic(dbErr)
			}
			defer db.Close()
			records, err = data.LoadOrdersMySQL(context.Background(), db, cfg.MySQL.Table)
		} else {
			records, err = data.LoadOrdersCSV(cfg.DatasetFile)
		}
	} else {
		records, err = data.LoadOrdersCSV(dataPath)
	}
	if err != nil {
		panic(err)
	}

	summary := insights.Aggregate(records)

	chanSel := splitList(channels)
	if len(chanSel) == 0 {
		chanSel = insights.Channels(summary)
	}
	regSel := splitList(regions)
	if len(regSel) == 0 {
		regSel = insights.Regions(summary)
	}
	return insights.FilterSummary(summary, insights.Selection(chanSel), insights.Selection(regSel))
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
