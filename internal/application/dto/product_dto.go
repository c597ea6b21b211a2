package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest entrada para crear o reemplazar un producto.
type ProductRequest struct {
	SupplierID  int64           `json:"proveedor_id" validate:"required,gt=0"`
	Name        string          `json:"nombre" validate:"required,min=1,max=160"`
	Description string          `json:"descripcion" validate:"omitempty,max=500"`
	Price       decimal.Decimal `json:"valor"`
}

// ProductResponse salida de un producto con el nombre de su proveedor.
type ProductResponse struct {
	ID           int64           `json:"id"`
	SupplierID   int64           `json:"proveedor_id"`
	SupplierName string          `json:"proveedor_nombre"`
	Name         string          `json:"nombre"`
	Description  string          `json:"descripcion"`
	Price        decimal.Decimal `json:"valor"`
	Active       bool            `json:"estado"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
