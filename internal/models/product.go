package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a menu entry. Orders never reference it for pricing at render
// time: the checkout flow copies name and price into the order line, so edits
// and deletions here never alter historical orders.
type Product struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	CategoryID  uuid.UUID       `json:"category_id" db:"category_id"`
	Name        string          `json:"name" db:"name"`
	Description *string         `json:"description,omitempty" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Available   bool            `json:"available" db:"available"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

// NewProduct builds an available product with a fresh ID.
func NewProduct(categoryID uuid.UUID, name string, price decimal.Decimal) *Product {
	now := time.Now()
	return &Product{
		ID:         uuid.New(),
		CategoryID: categoryID,
		Name:       name,
		Price:      price,
		Available:  true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
