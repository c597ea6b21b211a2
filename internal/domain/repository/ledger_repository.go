package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// CustomerTotals totales de cartera de un cliente leídos de la DB (COALESCE a cero).
type CustomerTotals struct {
	Customer        entity.Customer
	CreditTotal     decimal.Decimal // Σ ventas credito + completada
	PaymentsTotal   decimal.Decimal // Σ abonos
	CreditSaleCount int
}

// LedgerRepository consultas de solo lectura de cartera.
type LedgerRepository interface {
	// CustomerTotals devuelve (nil, nil) si el cliente no existe o está inactivo.
	CustomerTotals(ctx context.Context, customerID int64) (*CustomerTotals, error)
	// AllCustomerTotals una fila por cliente activo, ordenado por nombre.
	AllCustomerTotals(ctx context.Context) ([]CustomerTotals, error)
}
