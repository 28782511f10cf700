package insights

import (
	"math"
	"testing"
)

func sampleSummary() []SummaryRow {
	return []SummaryRow{
		{Channel: "Online", Region: "Midwest", Orders: 1, Revenue: 49, Profit: 24, AOV: 49},
		{Channel: "Online", Region: "West", Orders: 2, Revenue: 150, Profit: 60, AOV: 75},
		{Channel: "Retail", Region: "Midwest", Orders: 2, Revenue: 78, Profit: 34, AOV: 39},
		{Channel: "Retail", Region: "West", Orders: 1, Revenue: 39, Profit: 17, AOV: 39},
	}
}

func TestFilterSummary_ExactMembership(t *testing.T) {
	rows := sampleSummary()
	got := FilterSummary(rows, Selection([]string{"Online"}), Selection([]string{"West"}))
	if len(got) != 1 {
		t.Fatalf("got %d rows, want 1", len(got))
	}
	if got[0].Channel != "Online" || got[0].Region != "West" {
		t.Fatalf("unexpected row %+v", got[0])
	}
}

func TestFilterSummary_EmptySelectionMeansNothing(t *testing.T) {
	rows := sampleSummary()
	if got := FilterSummary(rows, Selection(nil), Selection([]string{"West"})); len(got) != 0 {
		t.Fatalf("empty channel set must select nothing, got %d rows", len(got))
	}
}

func TestFilterSummary_Idempotent(t *testing.T) {
	rows := sampleSummary()
	channels := Selection([]string{"Online", "Retail"})
	regions := Selection([]string{"West"})

	once := FilterSummary(rows, channels, regions)
	twice := FilterSummary(once, channels, regions)
	if len(once) != len(twice) {
		t.Fatalf("second filter changed row count: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("row %d changed on refiltering: %+v vs %+v", i, once[i], twice[i])
		}
	}
}

func TestFilterSummary_DoesNotMutateInput(t *testing.T) {
	rows := sampleSummary()
	before := make([]SummaryRow, len(rows))
	copy(before, rows)

	FilterSummary(rows, Selection([]string{"Online"}), Selection([]string{"West"}))
	for i := range rows {
		if rows[i] != before[i] {
			t.Fatalf("input row %d mutated: %+v vs %+v", i, rows[i], before[i])
		}
	}
}

func TestKPIs_Rollup(t *testing.T) {
	b := KPIs(sampleSummary())
	if b.TotalOrders != 6 {
		t.Fatalf("total orders %d, want 6", b.TotalOrders)
	}
	if math.Abs(b.TotalRevenue-316) > 1e-9 {
		t.Fatalf("total revenue %v, want 316", b.TotalRevenue)
	}
	if math.Abs(b.TotalProfit-135) > 1e-9 {
		t.Fatalf("total profit %v, want 135", b.TotalProfit)
	}
	if want := (49.0 + 75 + 39 + 39) / 4; math.Abs(b.AvgAOV-want) > 1e-9 {
		t.Fatalf("avg AOV %v, want %v", b.AvgAOV, want)
	}
}

func TestKPIs_EmptyInput(t *testing.T) {
	b := KPIs(nil)
	if b.TotalRevenue != 0 || b.TotalOrders != 0 || b.AvgAOV != 0 || b.TotalProfit != 0 {
		t.Fatalf("empty input must give all-zero bundle, got %+v", b)
	}
}

func TestKPIs_NonFiniteAOVCoercedToZero(t *testing.T) {
	rows := []SummaryRow{
		{Channel: "Online", Region: "West", Orders: 1, Revenue: 100, AOV: 100},
		{Channel: "Retail", Region: "West", Orders: 0, Revenue: 0, AOV: math.Inf(1)},
		{Channel: "Partner", Region: "West", Orders: 0, Revenue: 0, AOV: math.NaN()},
	}
	b := KPIs(rows)
	if want := 100.0 / 3; math.Abs(b.AvgAOV-want) > 1e-9 {
		t.Fatalf("avg AOV %v, want %v", b.AvgAOV, want)
	}
}

func TestSegmentBaseline(t *testing.T) {
	b := SegmentBaseline(sampleSummary())
	if b.Units != 6 {
		t.Fatalf("units %v, want 6", b.Units)
	}
	if math.Abs(b.Revenue-316) > 1e-9 {
		t.Fatalf("revenue %v, want 316", b.Revenue)
	}
	if want := 316.0 / 6; math.Abs(b.AvgPrice-want) > 1e-9 {
		t.Fatalf("avg price %v, want %v", b.AvgPrice, want)
	}
}

func TestSegmentBaseline_EmptyView(t *testing.T) {
	b := SegmentBaseline(nil)
	if b.Units != 0 || b.AvgPrice != 0 || b.Revenue != 0 {
		t.Fatalf("empty view must give degenerate baseline, got %+v", b)
	}
}
