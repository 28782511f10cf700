package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"sales-insights/internal/api/models"
	"sales-insights/internal/config"
	"sales-insights/internal/data"

	"github.com/gin-gonic/gin"
)

const testCSV = `product,channel,region,unit_price,discount_pct,revenue,cost
Echo Earbuds,Online,West,50,0.1,100,60
Cloud Pillow,Online,West,50,0.1,50,30
Aurora Lamp,Retail,Midwest,39,0,78,44
`

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "orders.csv"), []byte(testCSV), 0o644); err != nil {
		t.Fatalf("write test csv: %v", err)
	}
	t.Setenv("DATASET_DIR", dir)

	store := data.NewStore(time.Hour)
	defaults := config.SimulationConfig{PriceDelta: 0.05, Elasticity: 1.2}

	router := gin.New()
	datasetHandler := NewDatasetHandler(store)
	summaryHandler := NewSummaryHandler(store)
	simulateHandler := NewSimulateHandler(store, defaults)

	api := router.Group("/api/v1")
	api.POST("/datasets/load", datasetHandler.LoadDataset)
	api.POST("/summary", summaryHandler.GetSummary)
	api.POST("/simulate", simulateHandler.RunSimulation)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func loadTestDataset(t *testing.T, router *gin.Engine) models.LoadDatasetResponse {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/datasets/load", models.LoadDatasetRequest{File: "orders.csv"})
	if w.Code != http.StatusOK {
		t.Fatalf("load status %d: %s", w.Code, w.Body.String())
	}
	var resp models.LoadDatasetResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode load response: %v", err)
	}
	return resp
}

func TestLoadDataset(t *testing.T) {
	router := newTestRouter(t)
	resp := loadTestDataset(t, router)

	if resp.DatasetID == "" {
		t.Fatal("empty dataset id")
	}
	if resp.Rows != 3 || resp.Segments != 2 {
		t.Fatalf("rows=%d segments=%d, want 3/2", resp.Rows, resp.Segments)
	}
	if len(resp.Channels) != 2 || len(resp.Regions) != 2 {
		t.Fatalf("channels=%v regions=%v", resp.Channels, resp.Regions)
	}
}

func TestLoadDataset_SchemaError(t *testing.T) {
	router := newTestRouter(t)
	dir := os.Getenv("DATASET_DIR")
	bad := "product,channel,region,unit_price,discount_pct,revenue\nX,Online,West,50,0.1,100\n"
	if err := os.WriteFile(filepath.Join(dir, "bad.csv"), []byte(bad), 0o644); err != nil {
		t.Fatalf("write bad csv: %v", err)
	}

	w := doJSON(t, router, http.MethodPost, "/api/v1/datasets/load", models.LoadDatasetRequest{File: "bad.csv"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if resp.Error.Code != "SCHEMA_ERROR" {
		t.Fatalf("code %q, want SCHEMA_ERROR", resp.Error.Code)
	}
}

func TestGetSummary_FilteredView(t *testing.T) {
	router := newTestRouter(t)
	ds := loadTestDataset(t, router)

	channels := []string{"Online"}
	w := doJSON(t, router, http.MethodPost, "/api/v1/summary", models.ViewRequest{
		DatasetID: ds.DatasetID,
		Channels:  &channels,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var resp models.SummaryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if len(resp.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(resp.Rows))
	}
	if resp.KPIs.TotalOrders != 2 || resp.KPIs.TotalRevenue != 150 {
		t.Fatalf("unexpected KPIs: %+v", resp.KPIs)
	}
}

func TestGetSummary_UnknownDataset(t *testing.T) {
	router := newTestRouter(t)
	w := doJSON(t, router, http.MethodPost, "/api/v1/summary", models.ViewRequest{DatasetID: "missing"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", w.Code)
	}
}

func TestRunSimulation_ZeroDeltaIdentity(t *testing.T) {
	router := newTestRouter(t)
	ds := loadTestDataset(t, router)

	zero := 0.0
	w := doJSON(t, router, http.MethodPost, "/api/v1/simulate", models.SimulateRequest{
		ViewRequest: models.ViewRequest{DatasetID: ds.DatasetID},
		Params:      models.SimulationParams{PriceDelta: &zero},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var resp models.SimulateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode simulate: %v", err)
	}
	if resp.PriceDelta != 0 {
		t.Fatalf("explicit zero delta was overridden: %v", resp.PriceDelta)
	}
	if resp.Result.ProjectedUnits != resp.Baseline.Units {
		t.Fatalf("zero delta must keep units: %v vs %v", resp.Result.ProjectedUnits, resp.Baseline.Units)
	}
	if resp.Move != "UNCHANGED" {
		t.Fatalf("move %q, want UNCHANGED", resp.Move)
	}
}

func TestRunSimulation_InsufficientData(t *testing.T) {
	router := newTestRouter(t)
	ds := loadTestDataset(t, router)

	empty := []string{}
	w := doJSON(t, router, http.MethodPost, "/api/v1/simulate", models.SimulateRequest{
		ViewRequest: models.ViewRequest{DatasetID: ds.DatasetID, Channels: &empty},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.Error.Code != "INSUFFICIENT_DATA" {
		t.Fatalf("code %q, want INSUFFICIENT_DATA", resp.Error.Code)
	}
}

func TestRunSimulation_InvalidPriceDelta(t *testing.T) {
	router := newTestRouter(t)
	ds := loadTestDataset(t, router)

	bad := -1.5
	w := doJSON(t, router, http.MethodPost, "/api/v1/simulate", models.SimulateRequest{
		ViewRequest: models.ViewRequest{DatasetID: ds.DatasetID},
		Params:      models.SimulationParams{PriceDelta: &bad},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.Error.Code != "INVALID_PRICE_DELTA" {
		t.Fatalf("code %q, want INVALID_PRICE_DELTA", resp.Error.Code)
	}
}
