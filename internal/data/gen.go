package data

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/schollz/progressbar/v3"
)

// product is one catalog entry: list price and unit cost.
type product struct {
	Name  string
	Price float64
	Cost  float64
}

var catalog = []product{
	{"Echo Earbuds", 79, 45},
	{"Volt Power Bank", 49, 25},
	{"Cloud Pillow", 35, 18},
	{"Aurora Lamp", 39, 22},
	{"Trail Backpack", 69, 35},
	{"Breeze Purifier", 129, 75},
}

var (
	genChannels = []string{"Online", "Retail", "Partner"}
	genRegions  = []string{"Northeast", "Southeast", "Midwest", "West"}
)

// GeneratorConfig controls synthetic order generation.
type GeneratorConfig struct {
	Seed        int64
	StartDate   time.Time
	EndDate     time.Time // inclusive
	MinPerDay   int       // orders per channel per day, lower bound
	MaxPerDay   int       // upper bound (exclusive-ish, see rand.Intn)
	MaxDiscount float64   // discounts drawn uniformly from [0, MaxDiscount)
}

// DefaultGeneratorConfig mirrors the sample dataset: one year of 2024
// orders, 60-120 per channel per day, discounts up to 20%.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Seed:        42,
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		MinPerDay:   60,
		MaxPerDay:   120,
		MaxDiscount: 0.2,
	}
}

// WriteSyntheticOrders generates a synthetic order CSV and reports the
// number of rows written. The output carries date and quantity columns in
// addition to the seven required ones, matching the sample dataset shape.
func WriteSyntheticOrders(path string, cfg GeneratorConfig) (int, error) {
	if cfg.EndDate.Before(cfg.StartDate) {
		return 0, fmt.Errorf("end date before start date")
	}
	if cfg.MinPerDay <= 0 || cfg.MaxPerDay <= cfg.MinPerDay {
		return 0, fmt.Errorf("orders per day bounds invalid: [%d, %d)", cfg.MinPerDay, cfg.MaxPerDay)
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"date", "product", "channel", "region",
		"unit_price", "quantity", "discount_pct", "revenue", "cost",
	}
	if err := w.Write(header); err != nil {
		return 0, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	days := int(cfg.EndDate.Sub(cfg.StartDate).Hours()/24) + 1
	bar := progressbar.Default(int64(days))

	written := 0
	for d := cfg.StartDate; !d.After(cfg.EndDate); d = d.AddDate(0, 0, 1) {
		for _, ch := range genChannels {
			n := cfg.MinPerDay + rng.Intn(cfg.MaxPerDay-cfg.MinPerDay)
			for i := 0; i < n; i++ {
				p := catalog[rng.Intn(len(catalog))]
				price := p.Price * (0.9 + 0.2*rng.Float64())
				qty := 1 + rng.Intn(3)
				discount := cfg.MaxDiscount * rng.Float64()
				netPrice := price * (1 - discount)
				revenue := netPrice * float64(qty)
				cost := p.Cost * float64(qty)
				region := genRegions[rng.Intn(len(genRegions))]

				row := []string{
					d.Format("2006-01-02"),
					p.Name,
					ch,
					region,
					formatFloat(price),
					strconv.Itoa(qty),
					formatFloat(discount),
					formatFloat(revenue),
					formatFloat(cost),
				}
				if err := w.Write(row); err != nil {
					return written, err
				}
				written++
			}
		}
		_ = bar.Add(1)
	}

	w.Flush()
	return written, w.Error()
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
