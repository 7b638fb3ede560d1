package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups menu products for display.
type Category struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

func NewCategory(name string, displayOrder int) *Category {
	return &Category{
		ID:           uuid.New(),
		Name:         name,
		DisplayOrder: displayOrder,
		CreatedAt:    time.Now(),
	}
}
