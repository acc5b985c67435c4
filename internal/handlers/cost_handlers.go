package handlers

import (
	"errors"
	"net/http"

	"cantina_backend/internal/services"
	"cantina_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CostHandler holds the cost service.
type CostHandler struct {
	costService services.CostService
}

// NewCostHandler creates a new CostHandler.
func NewCostHandler(cs services.CostService) *CostHandler {
	return &CostHandler{costService: cs}
}

// SetProductCost handles the admin upsert of a product's cost record.
func (h *CostHandler) SetProductCost(c *gin.Context) {
	var req services.SetProductCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	cost, err := h.costService.SetProductCost(c.Param("id"), req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
		} else if errors.Is(err, services.ErrProductNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Product not found.", ""))
		} else {
			utils.LogError(err, "SetProductCost: error from costService.SetProductCost")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to save product cost.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, cost)
}

// GetProductCost returns a product's cost record, or 404 when none exists.
func (h *CostHandler) GetProductCost(c *gin.Context) {
	cost, err := h.costService.GetProductCost(c.Param("id"))
	if err != nil {
		utils.LogError(err, "GetProductCost: error from costService.GetProductCost")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch product cost.", "Internal error"))
		return
	}
	if cost == nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "No cost record for this product.", ""))
		return
	}
	c.JSON(http.StatusOK, cost)
}

// GetAllProductCosts lists every cost record.
func (h *CostHandler) GetAllProductCosts(c *gin.Context) {
	costs, err := h.costService.GetAllProductCosts()
	if err != nil {
		utils.LogError(err, "GetAllProductCosts: error from costService.GetAllProductCosts")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch product costs.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, costs)
}
