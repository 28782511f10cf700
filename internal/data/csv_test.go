package data

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `date,product,channel,region,unit_price,quantity,discount_pct,revenue,cost
2024-01-01,Echo Earbuds,Online,West,50,2,0.1,100,60
2024-01-02,Cloud Pillow,Online,West,50,1,0.1,50,30
2024-01-02,Aurora Lamp,Retail,Midwest,39,2,0,78,44
`

func TestReadOrders_ParsesRows(t *testing.T) {
	records, err := ReadOrders(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	r := records[0]
	if r.Product != "Echo Earbuds" || r.Channel != "Online" || r.Region != "West" {
		t.Fatalf("unexpected first record: %+v", r)
	}
	if r.UnitPrice != 50 || r.DiscountPct != 0.1 || r.Revenue != 100 || r.Cost != 60 {
		t.Fatalf("unexpected numeric fields: %+v", r)
	}
	// date and quantity are extra columns, tolerated and dropped.
}

func TestReadOrders_MissingCostColumn(t *testing.T) {
	csv := `product,channel,region,unit_price,discount_pct,revenue
Echo Earbuds,Online,West,50,0.1,100
`
	_, err := ReadOrders(strings.NewReader(csv))
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("got err %v, want SchemaError", err)
	}
	if len(schemaErr.Missing) != 1 || schemaErr.Missing[0] != "cost" {
		t.Fatalf("missing = %v, want [cost]", schemaErr.Missing)
	}
}

func TestReadOrders_AllMissingColumnsReported(t *testing.T) {
	csv := `product,channel,unit_price,discount_pct
Echo Earbuds,Online,50,0.1
`
	_, err := ReadOrders(strings.NewReader(csv))
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("got err %v, want SchemaError", err)
	}
	want := []string{"cost", "region", "revenue"}
	if len(schemaErr.Missing) != len(want) {
		t.Fatalf("missing = %v, want %v", schemaErr.Missing, want)
	}
	for i := range want {
		if schemaErr.Missing[i] != want[i] {
			t.Fatalf("missing = %v, want %v (sorted)", schemaErr.Missing, want)
		}
	}
}

func TestReadOrders_BadNumber(t *testing.T) {
	csv := `product,channel,region,unit_price,discount_pct,revenue,cost
Echo Earbuds,Online,West,abc,0.1,100,60
`
	_, err := ReadOrders(strings.NewReader(csv))
	if err == nil {
		t.Fatal("expected parse error, got nil")
	}
	if !strings.Contains(err.Error(), "unit_price") {
		t.Fatalf("error should name the column: %v", err)
	}
}

func TestLoadOrdersCSV_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}
	records, err := LoadOrdersCSV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
}
