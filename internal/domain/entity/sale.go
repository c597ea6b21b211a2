package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de venta.
const (
	SaleTypeCash    = "contado"
	SaleTypeCredit  = "credito"
	SaleTypePending = "pendiente"
)

// Medios de pago de una venta.
const (
	PaymentMethodCash     = "efectivo"
	PaymentMethodTransfer = "transferencia"
	PaymentMethodNA       = "n/a"
)

// Estados de una venta.
const (
	SaleStatusCompleted = "completada"
	SaleStatusPending   = "pendiente"
)

// Sale venta diaria. CustomerID nil = venta de mostrador sin cliente.
type Sale struct {
	ID            int64
	CustomerID    *int64
	Date          time.Time
	Total         decimal.Decimal
	Type          string // contado | credito | pendiente
	PaymentMethod string // efectivo | transferencia | n/a
	Status        string // completada | pendiente
	Description   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SaleView venta con los datos de despliegue del cliente (LEFT JOIN).
type SaleView struct {
	Sale
	CustomerName  string
	CustomerAlias string
	CustomerPhone string
}
