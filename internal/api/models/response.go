package models

import (
	"time"

	"sales-insights/internal/analysis"
	"sales-insights/internal/insights"
	"sales-insights/internal/sim"
)

// LoadDatasetResponse returns the handle for a loaded dataset plus the
// value lists a UI needs to build its selectors.
type LoadDatasetResponse struct {
	DatasetID string    `json:"dataset_id"`
	Rows      int       `json:"rows"`
	Segments  int       `json:"segments"`
	Channels  []string  `json:"channels"`
	Regions   []string  `json:"regions"`
	LoadedAt  time.Time `json:"loaded_at"`
}

// SummaryResponse is a filtered view with its KPI rollup.
type SummaryResponse struct {
	Rows []insights.SummaryRow `json:"rows"`
	KPIs insights.KPIBundle    `json:"kpis"`
}

// SimulateResponse reports a projection next to the baseline it was
// parametrized on.
type SimulateResponse struct {
	Baseline   sim.Baseline `json:"baseline"`
	PriceDelta float64      `json:"price_delta"`
	Elasticity float64      `json:"elasticity"`
	Move       string       `json:"move"`
	Result     sim.Result   `json:"result"`
}

// CompareResponse holds one entry per requested variation.
type CompareResponse struct {
	Baseline   sim.Baseline       `json:"baseline"`
	Comparison []VariationResult  `json:"comparison"`
}

// VariationResult is the outcome of one named parameter set. Skipped is
// set (with a reason) when the variation's parameters were rejected.
type VariationResult struct {
	Name       string      `json:"name"`
	PriceDelta float64     `json:"price_delta"`
	Elasticity float64     `json:"elasticity"`
	Result     *sim.Result `json:"result,omitempty"`
	Skipped    string      `json:"skipped,omitempty"`
}

// RankResponse lists segments by achievable revenue lift.
type RankResponse struct {
	Elasticity float64                        `json:"elasticity"`
	Rankings   []analysis.SegmentOpportunity  `json:"rankings"`
}

// DatasetFileInfo describes one CSV file available for loading.
type DatasetFileInfo struct {
	ID   string `json:"id"`
	File string `json:"file"`
	Size int64  `json:"size"`
}

// ParameterInfo describes a simulation parameter for UI construction.
type ParameterInfo struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Default     float64 `json:"default"`
	UIMin       float64 `json:"ui_min"`
	UIMax       float64 `json:"ui_max"`
	Step        float64 `json:"step"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
