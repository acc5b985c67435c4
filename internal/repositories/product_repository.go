package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cantina_backend/internal/models"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for catalog persistence.
type ProductRepository interface {
	Create(executor SQLExecutor, product *models.Product) (string, error)
	GetByID(productID string) (*models.Product, error)
	GetAll() ([]models.Product, error)
	Update(executor SQLExecutor, productID string, upd models.ProductUpdate) error
	// AdjustStock applies a stock delta in a single atomic statement and
	// returns the new quantity. The result is clamped to
	// [0, initial_quantity], so decrements floor at zero and restocks can
	// never exceed the initial stock.
	AdjustStock(executor SQLExecutor, productID string, delta int) (int, error)
	Delete(executor SQLExecutor, productID string) error
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository.
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(executor SQLExecutor, product *models.Product) (string, error) {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}

	query := `INSERT INTO products (id, name, price, initial_quantity, current_quantity, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := executor.Exec(query,
		product.ID, product.Name, product.Price,
		product.InitialQuantity, product.CurrentQuantity, product.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("%w: creating product: %v", ErrDatabaseError, err)
	}
	return product.ID, nil
}

func (r *productRepository) GetByID(productID string) (*models.Product, error) {
	product := &models.Product{}
	query := `SELECT id, name, price, initial_quantity, current_quantity, created_at
	          FROM products WHERE id = $1`
	err := r.db.QueryRow(query, productID).Scan(
		&product.ID, &product.Name, &product.Price,
		&product.InitialQuantity, &product.CurrentQuantity, &product.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting product %s: %v", ErrDatabaseError, productID, err)
	}
	return product, nil
}

func (r *productRepository) GetAll() ([]models.Product, error) {
	products := []models.Product{}
	query := `SELECT id, name, price, initial_quantity, current_quantity, created_at
	          FROM products ORDER BY created_at DESC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying products: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Product
		err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.InitialQuantity, &p.CurrentQuantity, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning product: %v", ErrDatabaseError, err)
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating product rows: %v", ErrDatabaseError, err)
	}
	return products, nil
}

func (r *productRepository) Update(executor SQLExecutor, productID string, upd models.ProductUpdate) error {
	// Partial update: COALESCE keeps the stored value where the field is nil.
	query := `UPDATE products SET
	            name = COALESCE($1, name),
	            price = COALESCE($2, price),
	            initial_quantity = COALESCE($3, initial_quantity),
	            current_quantity = COALESCE($4, current_quantity)
	          WHERE id = $5`
	result, err := executor.Exec(query, upd.Name, upd.Price, upd.InitialQuantity, upd.CurrentQuantity, productID)
	if err != nil {
		return fmt.Errorf("%w: updating product %s: %v", ErrDatabaseError, productID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected for product update %s: %v", ErrDatabaseError, productID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *productRepository) AdjustStock(executor SQLExecutor, productID string, delta int) (int, error) {
	var newQuantity int
	query := `UPDATE products
	          SET current_quantity = LEAST(initial_quantity, GREATEST(0, current_quantity + $1))
	          WHERE id = $2
	          RETURNING current_quantity`
	err := executor.QueryRow(query, delta, productID).Scan(&newQuantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("%w: adjusting stock for product %s by %d: %v", ErrDatabaseError, productID, delta, err)
	}
	return newQuantity, nil
}

func (r *productRepository) Delete(executor SQLExecutor, productID string) error {
	result, err := executor.Exec(`DELETE FROM products WHERE id = $1`, productID)
	if err != nil {
		return fmt.Errorf("%w: deleting product %s: %v", ErrDatabaseError, productID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected for deleting product %s: %v", ErrDatabaseError, productID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
