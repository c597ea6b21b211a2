package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// PaymentRepository define el puerto de persistencia para abonos. No hay Update ni Delete:
// los abonos son inmutables.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) (int64, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Payment, error)
	TotalByCustomer(ctx context.Context, customerID int64) (decimal.Decimal, error)
}
