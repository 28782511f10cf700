package handlers

import (
	"net/http"

	"sales-insights/internal/api/models"
	"sales-insights/internal/data"
	"sales-insights/internal/insights"

	"github.com/gin-gonic/gin"
)

// SummaryHandler serves filtered summary views and their KPI rollups.
type SummaryHandler struct {
	store *data.Store
}

func NewSummaryHandler(store *data.Store) *SummaryHandler {
	return &SummaryHandler{store: store}
}

// GetSummary handles POST /api/v1/summary
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	var req models.ViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	rows, ok := resolveView(c, h.store, req)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, models.SummaryResponse{
		Rows: rows,
		KPIs: insights.KPIs(rows),
	})
}

// resolveView looks up the dataset and applies the requested selection.
// A nil selection list means "no filter requested" and defaults to all
// values present in the dataset; an explicit empty list selects nothing.
// On failure it writes the error response and returns ok=false.
func resolveView(c *gin.Context, store *data.Store, req models.ViewRequest) ([]insights.SummaryRow, bool) {
	ds, ok := store.Get(req.DatasetID)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "DATASET_NOT_FOUND",
				Message: "unknown or expired dataset_id; load the dataset again",
			},
		})
		return nil, false
	}

	channels := ds.Channels
	if req.Channels != nil {
		channels = *req.Channels
	}
	regions := ds.Regions
	if req.Regions != nil {
		regions = *req.Regions
	}

	rows := insights.FilterSummary(ds.Summary, insights.Selection(channels), insights.Selection(regions))
	return rows, true
}
