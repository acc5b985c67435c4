package services

import (
	"database/sql"
	"errors"
	"fmt"

	"cantina_backend/internal/models"
	"cantina_backend/internal/repositories"
	"cantina_backend/pkg/money"
	"cantina_backend/pkg/utils"
)

// CreateOrderItemRequest is one requested line item. Price and name are
// snapshotted from the catalog at creation time, never taken from the client.
type CreateOrderItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// CreateOrderRequest is used for creating a new order within a list.
type CreateOrderRequest struct {
	ListID      string                   `json:"list_id" binding:"required"`
	ClientName  string                   `json:"client_name" binding:"required"`
	ClientPhone string                   `json:"client_phone"`
	Items       []CreateOrderItemRequest `json:"items" binding:"required,dive"`
	CreatedBy   string                   `json:"-"` // filled from the authenticated user
}

// OrderService is the order engine: it creates immutable order snapshots and
// keeps catalog stock in step with sales.
type OrderService interface {
	CreateOrder(req CreateOrderRequest) (*models.Order, error)
	GetOrder(orderID string) (*models.Order, error)
	GetOrdersByList(listID string) ([]models.Order, error)
	GetAllOrders() ([]models.Order, error)
	DeleteOrder(orderID string) error
}

type orderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	listRepo    repositories.ListRepository
	db          *sql.DB

	// restockOnDelete controls whether deleting an order returns its items
	// to stock. Off by default: historically a deleted order did not undo
	// its stock consumption.
	restockOnDelete bool
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
	listRepo repositories.ListRepository,
	db *sql.DB,
	restockOnDelete bool,
) OrderService {
	return &orderService{
		orderRepo:       orderRepo,
		productRepo:     productRepo,
		listRepo:        listRepo,
		db:              db,
		restockOnDelete: restockOnDelete,
	}
}

// CreateOrder validates the request, snapshots product name and price into
// the line items, persists the order, and then decrements stock per item.
//
// The stock decrements deliberately run outside any transaction with the
// order write: a failed decrement is logged and swallowed, because losing a
// client's recorded order over a stock bookkeeping failure is the worse
// outcome. Each decrement is a single atomic store operation floored at zero,
// so concurrent orders cannot lose updates; overselling is clamped, not
// rejected.
func (s *orderService) CreateOrder(req CreateOrderRequest) (*models.Order, error) {
	if req.ClientName == "" {
		return nil, fmt.Errorf("%w: client name is required", ErrValidation)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: order must have at least one item", ErrValidation)
	}

	if _, err := s.listRepo.GetByID(req.ListID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrListNotFound
		}
		return nil, fmt.Errorf("failed to fetch list %s: %w", req.ListID, err)
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	subtotals := make([]float64, 0, len(req.Items))
	for _, itemReq := range req.Items {
		if itemReq.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity for product %s must be positive", ErrValidation, itemReq.ProductID)
		}
		product, err := s.productRepo.GetByID(itemReq.ProductID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, fmt.Errorf("%w: product %s", ErrProductNotFound, itemReq.ProductID)
			}
			return nil, fmt.Errorf("failed to fetch product %s: %w", itemReq.ProductID, err)
		}

		subtotal := money.ItemSubtotal(product.Price, itemReq.Quantity)
		items = append(items, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    itemReq.Quantity,
			Price:       product.Price,
			Subtotal:    subtotal,
		})
		subtotals = append(subtotals, subtotal)
	}

	order := &models.Order{
		ListID:      req.ListID,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		Items:       items,
		TotalValue:  money.Sum(subtotals),
		CreatedBy:   req.CreatedBy,
	}

	// Primary write: if this fails, nothing is persisted and no stock moves.
	if _, err := s.orderRepo.Create(s.db, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Secondary writes: best effort, asymmetric error policy.
	for _, item := range order.Items {
		_, err := s.productRepo.AdjustStock(s.db, item.ProductID, -item.Quantity)
		if err != nil {
			utils.LogError(err, fmt.Sprintf("CreateOrder: stock decrement failed for product %s (order %s kept)", item.ProductID, order.ID))
		}
	}

	return order, nil
}

func (s *orderService) GetOrder(orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetOrdersByList(listID string) ([]models.Order, error) {
	return s.orderRepo.GetByList(listID)
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// DeleteOrder removes the order record. Stock is only returned when
// restock-on-delete is enabled; the owning list's cached total is not
// touched here, it self-heals on the next list read.
func (s *orderService) DeleteOrder(orderID string) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	if err := s.orderRepo.Delete(s.db, orderID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	if s.restockOnDelete {
		for _, item := range order.Items {
			_, err := s.productRepo.AdjustStock(s.db, item.ProductID, item.Quantity)
			if err != nil {
				utils.LogError(err, fmt.Sprintf("DeleteOrder: restock failed for product %s", item.ProductID))
			}
		}
	}
	return nil
}
