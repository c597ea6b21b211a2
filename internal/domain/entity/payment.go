package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment abono de un cliente: reduce su deuda. Inmutable una vez creado.
type Payment struct {
	ID           int64
	CustomerID   int64
	Date         time.Time
	Amount       decimal.Decimal
	Description  string
	CustomerName string // solo lectura (join)
	CreatedAt    time.Time
}
