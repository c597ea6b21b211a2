package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest entrada para registrar una venta. medio_pago y estado se normalizan
// a partir de tipo_venta.
type CreateSaleRequest struct {
	CustomerID    *int64          `json:"cliente_id" validate:"omitempty,gt=0"`
	Date          *time.Time      `json:"fecha"`
	Total         decimal.Decimal `json:"valor_total"`
	Type          string          `json:"tipo_venta" validate:"required,oneof=contado credito pendiente"`
	PaymentMethod string          `json:"medio_pago" validate:"omitempty,oneof=efectivo transferencia n/a"`
	Description   string          `json:"descripcion" validate:"omitempty,max=500"`
}

// UpdateSaleRequest reemplaza una venta. Estado vacío se deriva del tipo.
type UpdateSaleRequest struct {
	CustomerID    *int64          `json:"cliente_id" validate:"omitempty,gt=0"`
	Date          *time.Time      `json:"fecha"`
	Total         decimal.Decimal `json:"valor_total"`
	Type          string          `json:"tipo_venta" validate:"required,oneof=contado credito pendiente"`
	PaymentMethod string          `json:"medio_pago" validate:"omitempty,oneof=efectivo transferencia n/a"`
	Status        string          `json:"estado" validate:"omitempty,oneof=completada pendiente"`
	Description   string          `json:"descripcion" validate:"omitempty,max=500"`
}

// SaleResponse venta con los datos del cliente cuando existe.
type SaleResponse struct {
	ID            int64           `json:"id"`
	CustomerID    *int64          `json:"cliente_id"`
	Date          time.Time       `json:"fecha"`
	Total         decimal.Decimal `json:"valor_total"`
	Type          string          `json:"tipo_venta"`
	PaymentMethod string          `json:"medio_pago"`
	Status        string          `json:"estado"`
	Description   string          `json:"descripcion"`
	CustomerName  string          `json:"cliente_nombre,omitempty"`
	CustomerAlias string          `json:"cliente_alias,omitempty"`
	CustomerPhone string          `json:"cliente_telefono,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// DailyStatsResponse agregado de ventas completadas del día.
type DailyStatsResponse struct {
	Date  string          `json:"fecha"` // YYYY-MM-DD, hora local del servidor
	Count int             `json:"cantidad_ventas"`
	Total decimal.Decimal `json:"total_ventas"`
}
