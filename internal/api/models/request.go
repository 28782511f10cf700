package models

// LoadDatasetRequest asks the server to load and aggregate an order
// source. Exactly one of File or MySQL should be set; File wins when both
// are present.
type LoadDatasetRequest struct {
	File  string            `json:"file,omitempty"`
	MySQL *MySQLSource      `json:"mysql,omitempty"`
}

// MySQLSource identifies an orders table to load.
type MySQLSource struct {
	DSN   string `json:"dsn" binding:"required"`
	Table string `json:"table,omitempty"` // default: "orders"
}

// ViewRequest selects a filtered view of a loaded dataset. Nil selection
// lists mean "no filter requested" and default to all values; an explicit
// empty list selects nothing.
type ViewRequest struct {
	DatasetID string    `json:"dataset_id" binding:"required"`
	Channels  *[]string `json:"channels,omitempty"`
	Regions   *[]string `json:"regions,omitempty"`
}

// SimulationParams are per-request overrides of the configured defaults.
// Pointers distinguish "not supplied" from an explicit zero, so a 0.0
// price delta simulates an unchanged price rather than falling back.
type SimulationParams struct {
	PriceDelta *float64 `json:"price_delta,omitempty"`
	Elasticity *float64 `json:"elasticity,omitempty"`
}

// SimulateRequest runs one simulation against the filtered view's baseline.
type SimulateRequest struct {
	ViewRequest
	Params SimulationParams `json:"params,omitempty"`
}

// SimulationVariation is one named parameter set in a comparison.
type SimulationVariation struct {
	Name   string           `json:"name" binding:"required"`
	Params SimulationParams `json:"params"`
}

// CompareRequest runs several parameter variations over one baseline.
type CompareRequest struct {
	ViewRequest
	Variations []SimulationVariation `json:"variations" binding:"required"`
}

// RankRequest ranks segments of a view by achievable revenue lift.
type RankRequest struct {
	DatasetID  string  `form:"dataset_id" binding:"required"`
	Elasticity float64 `form:"elasticity,omitempty"`
	Limit      int     `form:"limit,omitempty"` // default: 10
}
