package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusServed    OrderStatus = "SERVED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// ParseOrderStatus maps a client-supplied status string onto a known
// OrderStatus value.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case OrderStatusPending:
		return OrderStatusPending, nil
	case OrderStatusPreparing:
		return OrderStatusPreparing, nil
	case OrderStatusServed:
		return OrderStatusServed, nil
	case OrderStatusCompleted:
		return OrderStatusCompleted, nil
	case OrderStatusCancelled:
		return OrderStatusCancelled, nil
	}
	return "", fmt.Errorf("unknown order status: %q", s)
}

// IsTerminal reports whether no further status changes are expected.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// OrderType distinguishes dine-in from takeaway orders.
type OrderType string

const (
	OrderTypeDineIn   OrderType = "DINE_IN"
	OrderTypeTakeaway OrderType = "TAKEAWAY"
)

// ParseOrderType maps a client-supplied type string onto a known OrderType.
func ParseOrderType(s string) (OrderType, error) {
	switch OrderType(strings.ToUpper(strings.TrimSpace(s))) {
	case OrderTypeDineIn:
		return OrderTypeDineIn, nil
	case OrderTypeTakeaway:
		return OrderTypeTakeaway, nil
	}
	return "", fmt.Errorf("unknown order type: %q", s)
}

// Order is the aggregate root for a checkout. It exclusively owns its items;
// TotalAmount always equals the sum of item subtotals at creation time and
// neither the total nor the items are mutated afterwards. Only Status changes
// over the order's lifetime, and cancellation is a status, not a deletion.
type Order struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	Status         OrderStatus     `json:"status" db:"status"`
	Type           OrderType       `json:"type" db:"order_type"`
	TableNumber    *string         `json:"table_number,omitempty" db:"table_number"`
	TotalAmount    decimal.Decimal `json:"total_amount" db:"total_amount"`
	IdempotencyKey *string         `json:"idempotency_key,omitempty" db:"idempotency_key"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	Items          []*OrderItem    `json:"items"`
}
