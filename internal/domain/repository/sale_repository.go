package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas diarias.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.SaleView, error)
	// List todas las ventas, más reciente primero, con nombre/alias del cliente.
	List(ctx context.Context) ([]*entity.SaleView, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Sale, error)
	// ListPending ventas con estado pendiente, más reciente primero, con datos de contacto del cliente.
	ListPending(ctx context.Context) ([]*entity.SaleView, error)
	Update(ctx context.Context, sale *entity.Sale) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	// CompletedTotals cuenta y suma las ventas completadas con fecha en [from, to).
	// Sin filas devuelve (0, 0).
	CompletedTotals(ctx context.Context, from, to time.Time) (count int, total decimal.Decimal, err error)
	// PendingTotals cuenta y suma todas las ventas pendientes.
	PendingTotals(ctx context.Context) (count int, total decimal.Decimal, err error)
}
