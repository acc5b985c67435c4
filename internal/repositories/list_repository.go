package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cantina_backend/internal/models"

	"github.com/google/uuid"
)

// ListRepository defines the interface for list persistence.
type ListRepository interface {
	Create(executor SQLExecutor, list *models.List) (string, error)
	GetByID(listID string) (*models.List, error)
	GetAll() ([]models.List, error)
	// UpdateTotal writes the cached total back; it is the only mutable field
	// on a list after creation.
	UpdateTotal(executor SQLExecutor, listID string, total float64) error
	Delete(executor SQLExecutor, listID string) error
}

type listRepository struct {
	db *sql.DB
}

// NewListRepository creates a new instance of ListRepository.
func NewListRepository(db *sql.DB) ListRepository {
	return &listRepository{db: db}
}

func (r *listRepository) Create(executor SQLExecutor, list *models.List) (string, error) {
	if list.ID == "" {
		list.ID = uuid.New().String()
	}
	if list.CreatedAt.IsZero() {
		list.CreatedAt = time.Now()
	}

	query := `INSERT INTO lists (id, name, date, created_at, created_by, total_value)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := executor.Exec(query,
		list.ID, list.Name, list.Date, list.CreatedAt, list.CreatedBy, list.TotalValue,
	)
	if err != nil {
		return "", fmt.Errorf("%w: creating list: %v", ErrDatabaseError, err)
	}
	return list.ID, nil
}

func (r *listRepository) GetByID(listID string) (*models.List, error) {
	list := &models.List{}
	query := `SELECT id, name, date, created_at, created_by, total_value
	          FROM lists WHERE id = $1`
	err := r.db.QueryRow(query, listID).Scan(
		&list.ID, &list.Name, &list.Date, &list.CreatedAt, &list.CreatedBy, &list.TotalValue,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting list %s: %v", ErrDatabaseError, listID, err)
	}
	return list, nil
}

func (r *listRepository) GetAll() ([]models.List, error) {
	lists := []models.List{}
	query := `SELECT id, name, date, created_at, created_by, total_value
	          FROM lists ORDER BY created_at DESC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying lists: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var l models.List
		err := rows.Scan(&l.ID, &l.Name, &l.Date, &l.CreatedAt, &l.CreatedBy, &l.TotalValue)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning list: %v", ErrDatabaseError, err)
		}
		lists = append(lists, l)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating list rows: %v", ErrDatabaseError, err)
	}
	return lists, nil
}

func (r *listRepository) UpdateTotal(executor SQLExecutor, listID string, total float64) error {
	result, err := executor.Exec(`UPDATE lists SET total_value = $1 WHERE id = $2`, total, listID)
	if err != nil {
		return fmt.Errorf("%w: updating total for list %s: %v", ErrDatabaseError, listID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected for list total update %s: %v", ErrDatabaseError, listID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *listRepository) Delete(executor SQLExecutor, listID string) error {
	result, err := executor.Exec(`DELETE FROM lists WHERE id = $1`, listID)
	if err != nil {
		return fmt.Errorf("%w: deleting list %s: %v", ErrDatabaseError, listID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected for deleting list %s: %v", ErrDatabaseError, listID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
