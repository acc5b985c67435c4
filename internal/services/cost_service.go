package services

import (
	"database/sql"
	"errors"
	"fmt"

	"cantina_backend/internal/models"
	"cantina_backend/internal/repositories"
	"cantina_backend/pkg/money"
)

// SetProductCostRequest upserts the cost record of a product.
type SetProductCostRequest struct {
	CostPrice float64 `json:"cost_price" binding:"gte=0"`
	SalePrice float64 `json:"sale_price" binding:"required,gt=0"`
}

// CostService manages the per-product cost records used by the profit report.
type CostService interface {
	SetProductCost(productID string, req SetProductCostRequest) (*models.ProductCost, error)
	// GetProductCost returns nil (no error) when the product has no cost
	// record; absence means the product is analyzed with cost zero.
	GetProductCost(productID string) (*models.ProductCost, error)
	GetAllProductCosts() ([]models.ProductCost, error)
}

type costService struct {
	costRepo    repositories.CostRepository
	productRepo repositories.ProductRepository
	db          *sql.DB
}

// NewCostService creates a new instance of CostService.
func NewCostService(costRepo repositories.CostRepository, productRepo repositories.ProductRepository, db *sql.DB) CostService {
	return &costService{costRepo: costRepo, productRepo: productRepo, db: db}
}

func (s *costService) SetProductCost(productID string, req SetProductCostRequest) (*models.ProductCost, error) {
	if req.CostPrice < 0 {
		return nil, fmt.Errorf("%w: cost price cannot be negative", ErrValidation)
	}
	if req.SalePrice <= 0 {
		return nil, fmt.Errorf("%w: sale price must be positive", ErrValidation)
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	cost := &models.ProductCost{
		ProductID:   productID,
		ProductName: product.Name,
		CostPrice:   req.CostPrice,
		SalePrice:   req.SalePrice,
		Margin:      Margin(req.SalePrice, req.CostPrice),
	}
	if err := s.costRepo.Upsert(s.db, cost); err != nil {
		return nil, err
	}
	return cost, nil
}

func (s *costService) GetProductCost(productID string) (*models.ProductCost, error) {
	cost, err := s.costRepo.GetByProductID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return cost, nil
}

func (s *costService) GetAllProductCosts() ([]models.ProductCost, error) {
	return s.costRepo.GetAll()
}

// Margin computes (sale-cost)/sale*100, the percentage of the sale price
// retained after cost. A non-positive sale price yields 0 rather than a
// division by zero.
func Margin(salePrice, costPrice float64) float64 {
	if salePrice <= 0 {
		return 0
	}
	return money.Percent(salePrice-costPrice, salePrice)
}
