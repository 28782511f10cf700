package handlers

import (
	"net/http"

	"sales-insights/internal/analysis"
	"sales-insights/internal/api/models"
	"sales-insights/internal/config"
	"sales-insights/internal/data"

	"github.com/gin-gonic/gin"
)

// RankHandler ranks the segments of a dataset by achievable revenue lift.
type RankHandler struct {
	store    *data.Store
	defaults config.SimulationConfig
}

func NewRankHandler(store *data.Store, defaults config.SimulationConfig) *RankHandler {
	return &RankHandler{store: store, defaults: defaults}
}

// RankSegments handles GET /api/v1/rank
func (h *RankHandler) RankSegments(c *gin.Context) {
	var req models.RankRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	ds, ok := h.store.Get(req.DatasetID)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "DATASET_NOT_FOUND",
				Message: "unknown or expired dataset_id; load the dataset again",
			},
		})
		return
	}

	elasticity := req.Elasticity
	if elasticity == 0 {
		elasticity = h.defaults.Elasticity
	}
	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}

	rankings := analysis.RankByRevenueLift(ds.Summary, elasticity, analysis.DefaultScanRange())
	if len(rankings) > limit {
		rankings = rankings[:limit]
	}

	c.JSON(http.StatusOK, models.RankResponse{
		Elasticity: elasticity,
		Rankings:   rankings,
	})
}
