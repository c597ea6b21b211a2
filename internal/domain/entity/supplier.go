package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier proveedor de mercancía (soft delete vía Active).
type Supplier struct {
	ID        int64
	Name      string
	Phone     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SupplierPayment pago realizado a un proveedor. Method se acepta sin validar.
type SupplierPayment struct {
	ID           int64
	SupplierID   int64
	Date         time.Time
	Amount       decimal.Decimal
	Description  string
	Method       string
	SupplierName string // solo lectura (join)
	CreatedAt    time.Time
}
