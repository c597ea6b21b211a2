package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa un cliente de la tienda. Active=false equivale a eliminado (soft delete):
// la fila se conserva para los joins históricos de ventas y abonos.
type Customer struct {
	ID          int64
	Name        string
	Alias       string
	Phone       string
	Address     string
	CreditLimit decimal.Decimal // límite de crédito (fiado), nunca negativo
	Regular     bool            // cliente habitual; informativo
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
