package handlers

import (
	"errors"
	"net/http"

	"cantina_backend/internal/middleware"
	"cantina_backend/internal/services"
	"cantina_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ListHandler holds the list and summary services.
type ListHandler struct {
	listService    services.ListService
	orderService   services.OrderService
	summaryService services.SummaryService
}

// NewListHandler creates a new ListHandler.
func NewListHandler(ls services.ListService, os services.OrderService, ss services.SummaryService) *ListHandler {
	return &ListHandler{listService: ls, orderService: os, summaryService: ss}
}

// CreateList handles creating a new order list.
func (h *ListHandler) CreateList(c *gin.Context) {
	var req services.CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	req.CreatedBy = c.GetString(middleware.CtxUserEmail)

	list, err := h.listService.CreateList(req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
		} else {
			utils.LogError(err, "CreateList: error from listService.CreateList")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create list.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, list)
}

// GetLists handles listing every order list, newest first.
func (h *ListHandler) GetLists(c *gin.Context) {
	lists, err := h.listService.GetLists()
	if err != nil {
		utils.LogError(err, "GetLists: error from listService.GetLists")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch lists.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, lists)
}

// GetListDetail returns the list with a reconciled total, its orders, the
// per-product rollup and header stats.
func (h *ListHandler) GetListDetail(c *gin.Context) {
	detail, err := h.listService.GetListDetail(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrListNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "List not found.", ""))
		} else {
			utils.LogError(err, "GetListDetail: error from listService.GetListDetail")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch list.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, detail)
}

// DeleteList removes a list and all of its orders.
func (h *ListHandler) DeleteList(c *gin.Context) {
	err := h.listService.DeleteList(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrListNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "List not found.", ""))
		} else {
			utils.LogError(err, "DeleteList: error from listService.DeleteList")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete list.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "List deleted"})
}

// GetListSummary returns the plain-text summary of a list's orders.
func (h *ListHandler) GetListSummary(c *gin.Context) {
	listID := c.Param("id")
	list, err := h.listService.GetList(listID)
	if err != nil {
		if errors.Is(err, services.ErrListNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "List not found.", ""))
		} else {
			utils.LogError(err, "GetListSummary: error from listService.GetList")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch list.", "Internal error"))
		}
		return
	}
	orders, err := h.orderService.GetOrdersByList(listID)
	if err != nil {
		utils.LogError(err, "GetListSummary: error from orderService.GetOrdersByList")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch orders.", "Internal error"))
		return
	}

	c.String(http.StatusOK, h.summaryService.RenderText(list, orders))
}

// GetListSummaryWhatsApp returns a wa.me link carrying the list summary.
func (h *ListHandler) GetListSummaryWhatsApp(c *gin.Context) {
	listID := c.Param("id")
	list, err := h.listService.GetList(listID)
	if err != nil {
		if errors.Is(err, services.ErrListNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "List not found.", ""))
		} else {
			utils.LogError(err, "GetListSummaryWhatsApp: error from listService.GetList")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch list.", "Internal error"))
		}
		return
	}
	orders, err := h.orderService.GetOrdersByList(listID)
	if err != nil {
		utils.LogError(err, "GetListSummaryWhatsApp: error from orderService.GetOrdersByList")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch orders.", "Internal error"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": h.summaryService.WhatsAppSummaryLink(list, orders)})
}
