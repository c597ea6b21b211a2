package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto de un proveedor (soft delete vía Active).
type Product struct {
	ID           int64
	SupplierID   int64
	SupplierName string // solo lectura (join)
	Name         string
	Description  string
	Price        decimal.Decimal
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
