package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"sales-insights/internal/model"
)

// LoadOrdersCSV reads an order dataset from a CSV file. The header is
// schema-checked eagerly, before any row is parsed, so an incomplete file
// fails with a SchemaError naming every missing column. Extra columns
// (date, quantity, ...) are ignored.
func LoadOrdersCSV(path string) ([]model.OrderRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadOrders(f)
}

// ReadOrders parses order records from CSV content.
func ReadOrders(r io.Reader) ([]model.OrderRecord, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &SchemaError{Missing: append([]string(nil), RequiredColumns...)}
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	present := make(map[string]bool, len(header))
	for i, name := range header {
		idx[name] = i
		present[name] = true
	}
	if err := checkSchema(present); err != nil {
		return nil, err
	}

	var records []model.OrderRecord
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rec := model.OrderRecord{
			Product: row[idx["product"]],
			Channel: row[idx["channel"]],
			Region:  row[idx["region"]],
		}
		if rec.UnitPrice, err = parseFloat(row, idx, "unit_price", line); err != nil {
			return nil, err
		}
		if rec.DiscountPct, err = parseFloat(row, idx, "discount_pct", line); err != nil {
			return nil, err
		}
		if rec.Revenue, err = parseFloat(row, idx, "revenue", line); err != nil {
			return nil, err
		}
		if rec.Cost, err = parseFloat(row, idx, "cost", line); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseFloat(row []string, idx map[string]int, col string, line int) (float64, error) {
	v, err := strconv.ParseFloat(row[idx[col]], 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: column %s: %w", line, col, err)
	}
	return v, nil
}
