package handlers

import (
	"net/http"

	"sales-insights/internal/api/models"
	"sales-insights/internal/config"

	"github.com/gin-gonic/gin"
)

// ParametersHandler exposes simulation parameter metadata so a UI can
// build its sliders. The ranges are suggestions only; the simulator
// accepts any real value inside its mathematical domain.
type ParametersHandler struct {
	defaults config.SimulationConfig
}

func NewParametersHandler(defaults config.SimulationConfig) *ParametersHandler {
	return &ParametersHandler{defaults: defaults}
}

// ListParameters handles GET /api/v1/parameters
func (h *ParametersHandler) ListParameters(c *gin.Context) {
	parameters := []models.ParameterInfo{
		{
			Name:        "price_delta",
			Type:        "float",
			Description: "Fractional price change; negative values model a price cut. Must stay above -1.",
			Default:     h.defaults.PriceDelta,
			UIMin:       -0.20,
			UIMax:       0.20,
			Step:        0.01,
		},
		{
			Name:        "elasticity",
			Type:        "float",
			Description: "Demand elasticity exponent in the constant-elasticity model.",
			Default:     h.defaults.Elasticity,
			UIMin:       0.5,
			UIMax:       2.0,
			Step:        0.1,
		},
	}

	c.JSON(http.StatusOK, gin.H{"parameters": parameters})
}
