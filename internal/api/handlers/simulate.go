package handlers

import (
	"errors"
	"net/http"

	"sales-insights/internal/api/models"
	"sales-insights/internal/config"
	"sales-insights/internal/data"
	"sales-insights/internal/insights"
	"sales-insights/internal/metrics"
	"sales-insights/internal/model"
	"sales-insights/internal/sim"

	"github.com/gin-gonic/gin"
)

// SimulateHandler runs price-change simulations against the baseline of a
// filtered view.
type SimulateHandler struct {
	store    *data.Store
	defaults config.SimulationConfig
}

func NewSimulateHandler(store *data.Store, defaults config.SimulationConfig) *SimulateHandler {
	return &SimulateHandler{store: store, defaults: defaults}
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	rows, ok := resolveView(c, h.store, req.ViewRequest)
	if !ok {
		return
	}

	delta, elasticity := h.resolveParams(req.Params)
	baseline := insights.SegmentBaseline(rows)

	result, err := sim.Run(baseline, sim.Params{PriceDelta: delta, Elasticity: elasticity})
	if err != nil {
		code, outcome := simErrorCode(err)
		metrics.SimulationsTotal.WithLabelValues(outcome).Inc()
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    code,
				Message: err.Error(),
				Details: map[string]interface{}{
					"base_units": baseline.Units,
					"avg_price":  baseline.AvgPrice,
				},
			},
		})
		return
	}
	metrics.SimulationsTotal.WithLabelValues("ok").Inc()

	c.JSON(http.StatusOK, models.SimulateResponse{
		Baseline:   baseline,
		PriceDelta: delta,
		Elasticity: elasticity,
		Move:       string(model.PriceMoveFromDelta(delta)),
		Result:     result,
	})
}

// CompareSimulations handles POST /api/v1/simulate/compare
func (h *SimulateHandler) CompareSimulations(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	rows, ok := resolveView(c, h.store, req.ViewRequest)
	if !ok {
		return
	}
	baseline := insights.SegmentBaseline(rows)

	comparison := make([]models.VariationResult, 0, len(req.Variations))
	for _, v := range req.Variations {
		delta, elasticity := h.resolveParams(v.Params)
		entry := models.VariationResult{
			Name:       v.Name,
			PriceDelta: delta,
			Elasticity: elasticity,
		}
		result, err := sim.Run(baseline, sim.Params{PriceDelta: delta, Elasticity: elasticity})
		if err != nil {
			_, outcome := simErrorCode(err)
			metrics.SimulationsTotal.WithLabelValues(outcome).Inc()
			entry.Skipped = err.Error()
		} else {
			metrics.SimulationsTotal.WithLabelValues("ok").Inc()
			entry.Result = &result
		}
		comparison = append(comparison, entry)
	}

	c.JSON(http.StatusOK, models.CompareResponse{
		Baseline:   baseline,
		Comparison: comparison,
	})
}

func (h *SimulateHandler) resolveParams(p models.SimulationParams) (delta, elasticity float64) {
	delta = h.defaults.PriceDelta
	if p.PriceDelta != nil {
		delta = *p.PriceDelta
	}
	elasticity = h.defaults.Elasticity
	if p.Elasticity != nil {
		elasticity = *p.Elasticity
	}
	return delta, elasticity
}

func simErrorCode(err error) (code, outcome string) {
	switch {
	case errors.Is(err, sim.ErrInsufficientData):
		return "INSUFFICIENT_DATA", "insufficient_data"
	case errors.Is(err, sim.ErrPriceDeltaOutOfDomain):
		return "INVALID_PRICE_DELTA", "invalid_price_delta"
	default:
		return "SIMULATION_ERROR", "error"
	}
}
