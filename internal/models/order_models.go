package models

import "time"

// OrderItem is a line item inside an order. ProductName and Price are
// snapshots taken at order-creation time: later product edits must not
// rewrite the history of what a client actually bought.
// Subtotal = round2(Price * Quantity).
type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Subtotal    float64 `json:"subtotal"`
}

// Order is one client's purchase within a list. Orders are immutable value
// snapshots once created; the only mutation is deletion.
// Invariant: TotalValue == sum of item subtotals.
type Order struct {
	ID          string      `json:"id"`
	ListID      string      `json:"list_id"`
	ClientName  string      `json:"client_name"`
	ClientPhone string      `json:"client_phone,omitempty"`
	Items       []OrderItem `json:"items"`
	TotalValue  float64     `json:"total_value"`
	CreatedAt   time.Time   `json:"created_at"`
	CreatedBy   string      `json:"created_by"`
}

// List is a named batch of orders, typically one canteen sales event.
// TotalValue is a lazily refreshed cache of the sum of its orders' totals;
// it is corrected on every list-detail read, never trusted as authoritative.
type List struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Date       string    `json:"date"` // YYYY-MM-DD, as entered by the creator
	CreatedAt  time.Time `json:"created_at"`
	CreatedBy  string    `json:"created_by"`
	TotalValue float64   `json:"total_value"`
}

// ProductSales is the per-product rollup of a set of orders, used on the
// list-detail view. Display order follows discovery order in the order set.
type ProductSales struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	TotalValue  float64 `json:"total_value"`
}

// ListStats aggregates a list's orders for the detail header.
type ListStats struct {
	TotalValue   float64 `json:"total_value"`
	OrderCount   int     `json:"order_count"`
	TotalItems   int     `json:"total_items"`
	AverageOrder float64 `json:"average_order"`
	WithPhone    int     `json:"with_phone"`
}
