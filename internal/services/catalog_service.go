package services

import (
	"database/sql"
	"errors"
	"fmt"

	"cantina_backend/internal/models"
	"cantina_backend/internal/repositories"
)

// CreateProductRequest is used for adding a product to the catalog.
type CreateProductRequest struct {
	Name            string  `json:"name" binding:"required"`
	Price           float64 `json:"price" binding:"required,gt=0"`
	InitialQuantity int     `json:"initial_quantity" binding:"gte=0"`
}

// UpdateProductRequest carries a partial admin edit of a product.
type UpdateProductRequest struct {
	Name            *string  `json:"name"`
	Price           *float64 `json:"price"`
	InitialQuantity *int     `json:"initial_quantity"`
	CurrentQuantity *int     `json:"current_quantity"`
}

// CatalogService manages the product catalog.
type CatalogService interface {
	CreateProduct(req CreateProductRequest) (*models.Product, error)
	GetProducts() ([]models.Product, error)
	GetProduct(productID string) (*models.Product, error)
	UpdateProduct(productID string, req UpdateProductRequest) (*models.Product, error)
	DeleteProduct(productID string) error
	// AdjustStock applies a delta to a product's stock through a single
	// atomic store operation, clamped to [0, initial quantity].
	AdjustStock(productID string, delta int) (int, error)
}

type catalogService struct {
	productRepo repositories.ProductRepository
	db          *sql.DB
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(productRepo repositories.ProductRepository, db *sql.DB) CatalogService {
	return &catalogService{productRepo: productRepo, db: db}
}

func (s *catalogService) CreateProduct(req CreateProductRequest) (*models.Product, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: product name is required", ErrValidation)
	}
	if req.Price <= 0 {
		return nil, fmt.Errorf("%w: product price must be positive", ErrValidation)
	}
	if req.InitialQuantity < 0 {
		return nil, fmt.Errorf("%w: initial quantity cannot be negative", ErrValidation)
	}

	product := &models.Product{
		Name:            req.Name,
		Price:           req.Price,
		InitialQuantity: req.InitialQuantity,
		CurrentQuantity: req.InitialQuantity, // stock starts full
	}
	if _, err := s.productRepo.Create(s.db, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *catalogService) GetProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

func (s *catalogService) GetProduct(productID string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *catalogService) UpdateProduct(productID string, req UpdateProductRequest) (*models.Product, error) {
	if req.Name != nil && *req.Name == "" {
		return nil, fmt.Errorf("%w: product name cannot be empty", ErrValidation)
	}
	if req.Price != nil && *req.Price <= 0 {
		return nil, fmt.Errorf("%w: product price must be positive", ErrValidation)
	}
	if req.InitialQuantity != nil && *req.InitialQuantity < 0 {
		return nil, fmt.Errorf("%w: initial quantity cannot be negative", ErrValidation)
	}
	if req.CurrentQuantity != nil && *req.CurrentQuantity < 0 {
		return nil, fmt.Errorf("%w: current quantity cannot be negative", ErrValidation)
	}

	upd := models.ProductUpdate{
		Name:            req.Name,
		Price:           req.Price,
		InitialQuantity: req.InitialQuantity,
		CurrentQuantity: req.CurrentQuantity,
	}
	err := s.productRepo.Update(s.db, productID, upd)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return s.GetProduct(productID)
}

func (s *catalogService) DeleteProduct(productID string) error {
	err := s.productRepo.Delete(s.db, productID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrProductNotFound
	}
	return err
}

func (s *catalogService) AdjustStock(productID string, delta int) (int, error) {
	newQuantity, err := s.productRepo.AdjustStock(s.db, productID, delta)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return 0, ErrProductNotFound
		}
		return 0, err
	}
	return newQuantity, nil
}
