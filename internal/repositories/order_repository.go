package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cantina_backend/internal/models"

	"github.com/google/uuid"
)

// OrderRepository defines the interface for order persistence. Line items are
// stored as a JSONB document on the order row: they are immutable snapshots,
// never joined back to live product rows.
type OrderRepository interface {
	Create(executor SQLExecutor, order *models.Order) (string, error)
	GetByID(orderID string) (*models.Order, error)
	GetByList(listID string) ([]models.Order, error)
	GetAll() ([]models.Order, error)
	Delete(executor SQLExecutor, orderID string) error
	// DeleteByList removes every order of a list; used by the cascade on
	// list deletion. Returns the number of orders removed.
	DeleteByList(executor SQLExecutor, listID string) (int64, error)
}

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new instance of OrderRepository.
func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(executor SQLExecutor, order *models.Order) (string, error) {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return "", fmt.Errorf("%w: marshaling order items: %v", ErrDatabaseError, err)
	}

	query := `INSERT INTO orders (id, list_id, client_name, client_phone, items, total_value, created_at, created_by)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = executor.Exec(query,
		order.ID, order.ListID, order.ClientName, order.ClientPhone,
		itemsJSON, order.TotalValue, order.CreatedAt, order.CreatedBy,
	)
	if err != nil {
		return "", fmt.Errorf("%w: creating order: %v", ErrDatabaseError, err)
	}
	return order.ID, nil
}

func (r *orderRepository) GetByID(orderID string) (*models.Order, error) {
	order := &models.Order{}
	var itemsJSON []byte
	query := `SELECT id, list_id, client_name, client_phone, items, total_value, created_at, created_by
	          FROM orders WHERE id = $1`
	err := r.db.QueryRow(query, orderID).Scan(
		&order.ID, &order.ListID, &order.ClientName, &order.ClientPhone,
		&itemsJSON, &order.TotalValue, &order.CreatedAt, &order.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting order %s: %v", ErrDatabaseError, orderID, err)
	}
	if err := json.Unmarshal(itemsJSON, &order.Items); err != nil {
		return nil, fmt.Errorf("%w: unmarshaling items for order %s: %v", ErrDatabaseError, orderID, err)
	}
	return order, nil
}

func (r *orderRepository) GetByList(listID string) ([]models.Order, error) {
	query := `SELECT id, list_id, client_name, client_phone, items, total_value, created_at, created_by
	          FROM orders WHERE list_id = $1 ORDER BY created_at DESC`
	return r.queryOrders(query, listID)
}

func (r *orderRepository) GetAll() ([]models.Order, error) {
	query := `SELECT id, list_id, client_name, client_phone, items, total_value, created_at, created_by
	          FROM orders ORDER BY created_at DESC`
	return r.queryOrders(query)
}

func (r *orderRepository) queryOrders(query string, args ...interface{}) ([]models.Order, error) {
	orders := []models.Order{}
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying orders: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var o models.Order
		var itemsJSON []byte
		err := rows.Scan(
			&o.ID, &o.ListID, &o.ClientName, &o.ClientPhone,
			&itemsJSON, &o.TotalValue, &o.CreatedAt, &o.CreatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning order: %v", ErrDatabaseError, err)
		}
		if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
			return nil, fmt.Errorf("%w: unmarshaling items for order %s: %v", ErrDatabaseError, o.ID, err)
		}
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating order rows: %v", ErrDatabaseError, err)
	}
	return orders, nil
}

func (r *orderRepository) Delete(executor SQLExecutor, orderID string) error {
	result, err := executor.Exec(`DELETE FROM orders WHERE id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("%w: deleting order %s: %v", ErrDatabaseError, orderID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected for deleting order %s: %v", ErrDatabaseError, orderID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *orderRepository) DeleteByList(executor SQLExecutor, listID string) (int64, error) {
	result, err := executor.Exec(`DELETE FROM orders WHERE list_id = $1`, listID)
	if err != nil {
		return 0, fmt.Errorf("%w: deleting orders for list %s: %v", ErrDatabaseError, listID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: rows affected for deleting orders of list %s: %v", ErrDatabaseError, listID, err)
	}
	return rowsAffected, nil
}
