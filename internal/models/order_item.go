package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItem is one priced line of an order. ProductName and UnitPrice are
// snapshots taken at checkout time so the line stays renderable after the
// product is edited or deleted. Items are owned by their order and removed
// with it (cascade).
type OrderItem struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	OrderID     uuid.UUID       `json:"-" db:"order_id"`
	ProductID   uuid.UUID       `json:"product_id" db:"product_id"`
	ProductName string          `json:"product_name" db:"product_name"`
	Quantity    int             `json:"quantity" db:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price" db:"unit_price"`
	Modifiers   *string         `json:"modifiers,omitempty" db:"modifiers"`
	Subtotal    decimal.Decimal `json:"subtotal" db:"subtotal"`
}
