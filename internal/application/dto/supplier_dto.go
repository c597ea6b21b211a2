package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplierRequest entrada para crear o reemplazar un proveedor.
type SupplierRequest struct {
	Name  string `json:"nombre" validate:"required,min=1,max=160"`
	Phone string `json:"telefono" validate:"omitempty,max=30"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nombre"`
	Phone     string    `json:"telefono"`
	Active    bool      `json:"estado"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateSupplierPaymentRequest entrada para registrar un pago a proveedor.
// metodo_pago es texto libre; vacío se guarda como efectivo.
type CreateSupplierPaymentRequest struct {
	SupplierID  int64           `json:"proveedor_id" validate:"required,gt=0"`
	Date        *time.Time      `json:"fecha"`
	Amount      decimal.Decimal `json:"valor"`
	Description string          `json:"descripcion" validate:"omitempty,max=500"`
	Method      string          `json:"metodo_pago" validate:"omitempty,max=30"`
}

// SupplierPaymentResponse salida de un pago a proveedor.
type SupplierPaymentResponse struct {
	ID           int64           `json:"id"`
	SupplierID   int64           `json:"proveedor_id"`
	SupplierName string          `json:"proveedor_nombre,omitempty"`
	Date         time.Time       `json:"fecha"`
	Amount       decimal.Decimal `json:"valor"`
	Description  string          `json:"descripcion"`
	Method       string          `json:"metodo_pago"`
	CreatedAt    time.Time       `json:"created_at"`
}
