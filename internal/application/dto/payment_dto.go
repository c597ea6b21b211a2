package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentRequest entrada para registrar un abono. El valor debe ser mayor que cero;
// la fecha la asigna el servidor.
type CreatePaymentRequest struct {
	CustomerID  int64           `json:"cliente_id" validate:"required,gt=0"`
	Amount      decimal.Decimal `json:"valor"`
	Description string          `json:"descripcion" validate:"omitempty,max=500"`
}

// PaymentResponse salida de un abono.
type PaymentResponse struct {
	ID           int64           `json:"id"`
	CustomerID   int64           `json:"cliente_id"`
	CustomerName string          `json:"cliente_nombre,omitempty"`
	Date         time.Time       `json:"fecha"`
	Amount       decimal.Decimal `json:"valor"`
	Description  string          `json:"descripcion"`
	CreatedAt    time.Time       `json:"created_at"`
}
