package models

import (
	"time"

	"github.com/google/uuid"
)

// Staff roles. Admin unlocks the /api/admin routes.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User is a staff account for the POS terminal.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

func NewUser(username, passwordHash, role string) *User {
	return &User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
	}
}
