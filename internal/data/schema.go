// Package data loads order records from CSV files or a MySQL table and
// keeps loaded datasets available for repeated filtering and simulation.
package data

import (
	"sort"
	"strings"
)

// RequiredColumns are the logical columns every order source must expose.
var RequiredColumns = []string{
	"product",
	"channel",
	"region",
	"unit_price",
	"discount_pct",
	"revenue",
	"cost",
}

// SchemaError reports every required column missing from an input source.
// It is fatal to the computation: no partial aggregation happens over an
// incomplete schema.
type SchemaError struct {
	Missing []string // sorted
}

func (e *SchemaError) Error() string {
	return "missing required columns: " + strings.Join(e.Missing, ", ")
}

// checkSchema returns a SchemaError naming all absent required columns,
// or nil when the schema is complete.
func checkSchema(present map[string]bool) error {
	var missing []string
	for _, col := range RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return &SchemaError{Missing: missing}
}
