package handlers

import (
	"errors"
	"net/http"

	"cantina_backend/internal/middleware"
	"cantina_backend/internal/services"
	"cantina_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// OrderHandler holds the order and summary services.
type OrderHandler struct {
	orderService   services.OrderService
	summaryService services.SummaryService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(os services.OrderService, ss services.SummaryService) *OrderHandler {
	return &OrderHandler{orderService: os, summaryService: ss}
}

// CreateOrder handles the creation of a new order with its items.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	req.CreatedBy = c.GetString(middleware.CtxUserEmail)

	order, err := h.orderService.CreateOrder(req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
		} else if errors.Is(err, services.ErrListNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "List not found.", err.Error()))
		} else if errors.Is(err, services.ErrProductNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "One or more products not found.", err.Error()))
		} else {
			utils.LogError(err, "CreateOrder: error from orderService.CreateOrder")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create order.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GetOrders handles fetching orders, optionally filtered by list.
func (h *OrderHandler) GetOrders(c *gin.Context) {
	var (
		orders interface{}
		err    error
	)
	if listID := c.Query("list_id"); listID != "" {
		orders, err = h.orderService.GetOrdersByList(listID)
	} else {
		orders, err = h.orderService.GetAllOrders()
	}
	if err != nil {
		utils.LogError(err, "GetOrders: error fetching orders")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch orders.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrder handles fetching a single order.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orderService.GetOrder(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Order not found.", ""))
		} else {
			utils.LogError(err, "GetOrder: error from orderService.GetOrder")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch order.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, order)
}

// DeleteOrder removes an order record.
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	err := h.orderService.DeleteOrder(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Order not found.", ""))
		} else {
			utils.LogError(err, "DeleteOrder: error from orderService.DeleteOrder")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete order.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}

// GetOrderWhatsApp builds the wa.me deep link for one client's order.
func (h *OrderHandler) GetOrderWhatsApp(c *gin.Context) {
	order, err := h.orderService.GetOrder(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Order not found.", ""))
		} else {
			utils.LogError(err, "GetOrderWhatsApp: error from orderService.GetOrder")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch order.", "Internal error"))
		}
		return
	}

	link, err := h.summaryService.WhatsAppOrderLink(order)
	if err != nil {
		if errors.Is(err, services.ErrNoContactPhone) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnprocessableEntity, utils.ErrCodeValidationFailed, "This client has no contact phone on file.", ""))
		} else {
			utils.LogError(err, "GetOrderWhatsApp: error building link")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build WhatsApp link.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": link})
}
