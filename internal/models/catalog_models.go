package models

import "time"

// Product is a sellable catalog entry. CurrentQuantity starts equal to
// InitialQuantity and only decreases as orders consume stock, except for
// explicit admin edits. Invariant: 0 <= CurrentQuantity <= InitialQuantity.
type Product struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	InitialQuantity int       `json:"initial_quantity"`
	CurrentQuantity int       `json:"current_quantity"`
	CreatedAt       time.Time `json:"created_at"`
}

// ProductUpdate carries a partial update for a product; nil fields are left
// untouched.
type ProductUpdate struct {
	Name            *string  `json:"name"`
	Price           *float64 `json:"price"`
	InitialQuantity *int     `json:"initial_quantity"`
	CurrentQuantity *int     `json:"current_quantity"`
}

// ProductCost is the admin-maintained cost record for a product. It has an
// independent lifecycle from the product itself: a product without a cost
// record is treated as costing zero.
type ProductCost struct {
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	CostPrice   float64   `json:"cost_price"`
	SalePrice   float64   `json:"sale_price"`
	Margin      float64   `json:"margin"` // (sale-cost)/sale*100
	UpdatedAt   time.Time `json:"updated_at"`
}
