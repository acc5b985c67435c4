package handlers

import (
	"net/http"

	"cantina_backend/internal/services"
	"cantina_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler holds the report service. All routes are admin-gated.
type ReportHandler struct {
	reportService services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: rs}
}

// GetInventoryAnalysis returns per-product sales vs. stock figures.
func (h *ReportHandler) GetInventoryAnalysis(c *gin.Context) {
	report, err := h.reportService.InventoryAnalysis()
	if err != nil {
		utils.LogError(err, "GetInventoryAnalysis: error from reportService.InventoryAnalysis")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build inventory analysis.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetProfitAnalysis returns per-product profit and margin figures.
func (h *ReportHandler) GetProfitAnalysis(c *gin.Context) {
	report, err := h.reportService.ProfitAnalysis()
	if err != nil {
		utils.LogError(err, "GetProfitAnalysis: error from reportService.ProfitAnalysis")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build profit analysis.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, report)
}
