package services

import (
	"database/sql"
	"errors"
	"fmt"

	"cantina_backend/internal/models"
	"cantina_backend/internal/repositories"
	"cantina_backend/pkg/money"
)

// CreateListRequest is used for creating a new order list.
type CreateListRequest struct {
	Name      string `json:"name" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	CreatedBy string `json:"-"`
}

// ListDetail is the full list view: the list with a freshly reconciled
// total, its orders, the per-product rollup and header stats.
type ListDetail struct {
	List           models.List           `json:"list"`
	Orders         []models.Order        `json:"orders"`
	ProductSummary []models.ProductSales `json:"product_summary"`
	Stats          models.ListStats      `json:"stats"`
}

// ListService manages order lists and their derived aggregates.
type ListService interface {
	CreateList(req CreateListRequest) (*models.List, error)
	GetLists() ([]models.List, error)
	GetList(listID string) (*models.List, error)
	// GetListDetail reads the list with its orders and refreshes the cached
	// total on the way (recompute-on-read, write-back-if-stale).
	GetListDetail(listID string) (*ListDetail, error)
	// RecomputeTotal sums the totals of the list's orders. Pure read.
	RecomputeTotal(listID string) (float64, error)
	// RefreshCachedTotal writes the recomputed total back only when the
	// stored value is stale. Idempotent.
	RefreshCachedTotal(listID string) (float64, error)
	// DeleteList removes the list and all of its orders in one transaction.
	DeleteList(listID string) error
}

type listService struct {
	listRepo  repositories.ListRepository
	orderRepo repositories.OrderRepository
	db        *sql.DB
}

// NewListService creates a new instance of ListService.
func NewListService(listRepo repositories.ListRepository, orderRepo repositories.OrderRepository, db *sql.DB) ListService {
	return &listService{listRepo: listRepo, orderRepo: orderRepo, db: db}
}

func (s *listService) CreateList(req CreateListRequest) (*models.List, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: list name is required", ErrValidation)
	}
	if req.Date == "" {
		return nil, fmt.Errorf("%w: list date is required", ErrValidation)
	}

	list := &models.List{
		Name:       req.Name,
		Date:       req.Date,
		CreatedBy:  req.CreatedBy,
		TotalValue: 0,
	}
	if _, err := s.listRepo.Create(s.db, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *listService) GetLists() ([]models.List, error) {
	return s.listRepo.GetAll()
}

func (s *listService) GetList(listID string) (*models.List, error) {
	list, err := s.listRepo.GetByID(listID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrListNotFound
		}
		return nil, err
	}
	return list, nil
}

func (s *listService) GetListDetail(listID string) (*ListDetail, error) {
	list, err := s.GetList(listID)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.GetByList(listID)
	if err != nil {
		return nil, err
	}

	total := SumOrderTotals(orders)
	if list.TotalValue != total {
		if err := s.listRepo.UpdateTotal(s.db, listID, total); err != nil {
			return nil, err
		}
		list.TotalValue = total
	}

	return &ListDetail{
		List:           *list,
		Orders:         orders,
		ProductSummary: ProductSummary(orders),
		Stats:          ListStats(orders),
	}, nil
}

func (s *listService) RecomputeTotal(listID string) (float64, error) {
	orders, err := s.orderRepo.GetByList(listID)
	if err != nil {
		return 0, err
	}
	return SumOrderTotals(orders), nil
}

func (s *listService) RefreshCachedTotal(listID string) (float64, error) {
	list, err := s.GetList(listID)
	if err != nil {
		return 0, err
	}
	total, err := s.RecomputeTotal(listID)
	if err != nil {
		return 0, err
	}
	if list.TotalValue != total {
		if err := s.listRepo.UpdateTotal(s.db, listID, total); err != nil {
			return 0, err
		}
	}
	return total, nil
}

func (s *listService) DeleteList(listID string) error {
	if _, err := s.GetList(listID); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := s.orderRepo.DeleteByList(tx, listID); err != nil {
		return err
	}
	if err := s.listRepo.Delete(tx, listID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrListNotFound
		}
		return err
	}
	return tx.Commit()
}

// SumOrderTotals adds up the totals of a set of orders.
func SumOrderTotals(orders []models.Order) float64 {
	totals := make([]float64, 0, len(orders))
	for _, o := range orders {
		totals = append(totals, o.TotalValue)
	}
	return money.Sum(totals)
}

// ProductSummary accumulates quantity and revenue per product across every
// item of every order. Accumulation is commutative; the returned slice keeps
// discovery order for display.
func ProductSummary(orders []models.Order) []models.ProductSales {
	index := make(map[string]int)
	summary := []models.ProductSales{}
	for _, order := range orders {
		for _, item := range order.Items {
			i, seen := index[item.ProductID]
			if !seen {
				i = len(summary)
				index[item.ProductID] = i
				summary = append(summary, models.ProductSales{
					ProductID:   item.ProductID,
					ProductName: item.ProductName,
				})
			}
			summary[i].Quantity += item.Quantity
			summary[i].TotalValue = money.Sum([]float64{summary[i].TotalValue, item.Subtotal})
		}
	}
	return summary
}

// ListStats aggregates a list's orders for the detail header.
func ListStats(orders []models.Order) models.ListStats {
	stats := models.ListStats{OrderCount: len(orders)}
	stats.TotalValue = SumOrderTotals(orders)
	for _, order := range orders {
		for _, item := range order.Items {
			stats.TotalItems += item.Quantity
		}
		if order.ClientPhone != "" {
			stats.WithPhone++
		}
	}
	if len(orders) > 0 {
		stats.AverageOrder = stats.TotalValue / float64(len(orders))
	}
	return stats
}
