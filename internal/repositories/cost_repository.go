package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cantina_backend/internal/models"
)

// CostRepository defines the interface for product cost persistence.
// Cost records live independently from products: at most one per product,
// upserted by admin action.
type CostRepository interface {
	Upsert(executor SQLExecutor, cost *models.ProductCost) error
	GetByProductID(productID string) (*models.ProductCost, error)
	GetAll() ([]models.ProductCost, error)
}

type costRepository struct {
	db *sql.DB
}

// NewCostRepository creates a new instance of CostRepository.
func NewCostRepository(db *sql.DB) CostRepository {
	return &costRepository{db: db}
}

func (r *costRepository) Upsert(executor SQLExecutor, cost *models.ProductCost) error {
	if cost.UpdatedAt.IsZero() {
		cost.UpdatedAt = time.Now()
	}
	query := `INSERT INTO product_costs (product_id, product_name, cost_price, sale_price, margin, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          ON CONFLICT (product_id) DO UPDATE SET
	            product_name = EXCLUDED.product_name,
	            cost_price = EXCLUDED.cost_price,
	            sale_price = EXCLUDED.sale_price,
	            margin = EXCLUDED.margin,
	            updated_at = EXCLUDED.updated_at`
	_, err := executor.Exec(query,
		cost.ProductID, cost.ProductName, cost.CostPrice, cost.SalePrice, cost.Margin, cost.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: upserting cost for product %s: %v", ErrDatabaseError, cost.ProductID, err)
	}
	return nil
}

func (r *costRepository) GetByProductID(productID string) (*models.ProductCost, error) {
	cost := &models.ProductCost{}
	query := `SELECT product_id, product_name, cost_price, sale_price, margin, updated_at
	          FROM product_costs WHERE product_id = $1`
	err := r.db.QueryRow(query, productID).Scan(
		&cost.ProductID, &cost.ProductName, &cost.CostPrice, &cost.SalePrice, &cost.Margin, &cost.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting cost for product %s: %v", ErrDatabaseError, productID, err)
	}
	return cost, nil
}

func (r *costRepository) GetAll() ([]models.ProductCost, error) {
	costs := []models.ProductCost{}
	query := `SELECT product_id, product_name, cost_price, sale_price, margin, updated_at
	          FROM product_costs`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying product costs: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var c models.ProductCost
		err := rows.Scan(&c.ProductID, &c.ProductName, &c.CostPrice, &c.SalePrice, &c.Margin, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning product cost: %v", ErrDatabaseError, err)
		}
		costs = append(costs, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating cost rows: %v", ErrDatabaseError, err)
	}
	return costs, nil
}
