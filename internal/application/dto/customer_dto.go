package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerRequest entrada para crear o reemplazar un cliente (PUT reemplaza todos los campos).
type CustomerRequest struct {
	Name        string          `json:"nombre" validate:"required,min=1,max=160"`
	Alias       string          `json:"alias" validate:"omitempty,max=80"`
	Phone       string          `json:"telefono" validate:"omitempty,max=30"`
	Address     string          `json:"direccion" validate:"omitempty,max=255"`
	CreditLimit decimal.Decimal `json:"limite_credito"`
	Regular     bool            `json:"cliente_regular"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"nombre"`
	Alias       string          `json:"alias"`
	Phone       string          `json:"telefono"`
	Address     string          `json:"direccion"`
	CreditLimit decimal.Decimal `json:"limite_credito"`
	Regular     bool            `json:"cliente_regular"`
	Active      bool            `json:"estado"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
