package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sales-insights/internal/api/models"
	"sales-insights/internal/data"
	"sales-insights/internal/insights"
	"sales-insights/internal/metrics"
	"sales-insights/internal/model"

	"github.com/gin-gonic/gin"
)

// DatasetHandler loads order sources and lists the CSV files available
// for loading.
type DatasetHandler struct {
	store      *data.Store
	datasetDir string
}

// NewDatasetHandler creates a dataset handler. The dataset directory
// comes from DATASET_DIR, defaulting to ./datasets under the working
// directory.
func NewDatasetHandler(store *data.Store) *DatasetHandler {
	dir := os.Getenv("DATASET_DIR")
	if dir == "" {
		wd, err := os.Getwd()
		if err == nil {
			dir = filepath.Join(wd, "datasets")
		} else {
			dir = "./datasets"
		}
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	log.Printf("DatasetHandler: using dataset directory: %s", dir)
	return &DatasetHandler{store: store, datasetDir: dir}
}

// ListDatasets handles GET /api/v1/datasets
func (h *DatasetHandler) ListDatasets(c *gin.Context) {
	files := []models.DatasetFileInfo{}

	entries, err := os.ReadDir(h.datasetDir)
	if err != nil {
		log.Printf("DatasetHandler: failed to read dataset directory %s: %v", h.datasetDir, err)
		c.JSON(http.StatusOK, gin.H{"datasets": files})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".csv") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, models.DatasetFileInfo{
			ID:   strings.TrimSuffix(entry.Name(), ".csv"),
			File: filepath.Join(h.datasetDir, entry.Name()),
			Size: info.Size(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"datasets": files, "count": len(files)})
}

// LoadDataset handles POST /api/v1/datasets/load
func (h *DatasetHandler) LoadDataset(c *gin.Context) {
	var req models.LoadDatasetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	records, source, err := h.loadRecords(c.Request.Context(), req)
	if err != nil {
		var schemaErr *data.SchemaError
		if errors.As(err, &schemaErr) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "SCHEMA_ERROR",
					Message: schemaErr.Error(),
					Details: map[string]interface{}{
						"missing_columns": schemaErr.Missing,
					},
				},
			})
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "DATA_LOAD_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	summary := insights.Aggregate(records)
	ds := &data.Dataset{
		Path:     req.File,
		Rows:     len(records),
		Summary:  summary,
		Channels: insights.Channels(summary),
		Regions:  insights.Regions(summary),
	}
	id := h.store.Put(ds)
	metrics.DatasetsLoaded.WithLabelValues(source).Inc()

	c.JSON(http.StatusOK, models.LoadDatasetResponse{
		DatasetID: id,
		Rows:      ds.Rows,
		Segments:  len(summary),
		Channels:  ds.Channels,
		Regions:   ds.Regions,
		LoadedAt:  ds.LoadedAt,
	})
}

func (h *DatasetHandler) loadRecords(ctx context.Context, req models.LoadDatasetRequest) ([]model.OrderRecord, string, error) {
	if req.File != "" {
		path := req.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(h.datasetDir, path)
		}
		records, err := data.LoadOrdersCSV(path)
		return records, "csv", err
	}
	if req.MySQL != nil {
		db, err := data.Open(req.MySQL.DSN)
		if err != nil {
			return nil, "mysql", err
		}
		defer db.Close()

		table := req.MySQL.Table
		if table == "" {
			table = "orders"
		}
		ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		records, err := data.LoadOrdersMySQL(ctx, db, table)
		return records, "mysql", err
	}
	return nil, "", errors.New("either file or mysql source is required")
}
