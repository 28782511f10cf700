package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sales-insights/internal/data"
)

// Generates a synthetic order CSV shaped like the sample dataset the
// dashboard ships with. Deterministic for a given seed.
func main() {
	outPath := flag.String("out", "datasets/orders.csv", "Output CSV path")
	seed := flag.Int64("seed", 42, "RNG seed")
	start := flag.String("start", "2024-01-01", "First order date (YYYY-MM-DD)")
	end := flag.String("end", "2024-12-31", "Last order date, inclusive (YYYY-MM-DD)")
	flag.Parse()

	cfg := data.DefaultGeneratorConfig()
	cfg.Seed = *seed

	startDate, err := time.Parse("2006-01-02", *start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --start: %v\n", err)
		os.Exit(2)
	}
	endDate, err := time.Parse("2006-01-02", *end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --end: %v\n", err)
		os.Exit(2)
	}
	cfg.StartDate = startDate
	cfg.EndDate = endDate

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}

	n, err := data.WriteSyntheticOrders(*outPath, cfg)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Wrote %d orders to %s\n", n, *outPath)
}
