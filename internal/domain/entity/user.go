package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleTendero = "tendero"
)

// User usuario que opera la tienda.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, tendero
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
