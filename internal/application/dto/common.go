package dto

import "github.com/shopspring/decimal"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse respuesta de las operaciones de creación (201).
type CreatedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}

// TotalResponse total agregado de un listado (abonos de un cliente, pagos a un proveedor).
type TotalResponse struct {
	Total decimal.Decimal `json:"total"`
}
