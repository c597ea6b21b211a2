package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// SupplierRepository puerto de persistencia para proveedores (soft delete).
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Supplier, error)
	ListActive(ctx context.Context) ([]*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) (bool, error)
	Deactivate(ctx context.Context, id int64) (bool, error)
}

// SupplierPaymentRepository puerto de persistencia para pagos a proveedores (borrado físico).
type SupplierPaymentRepository interface {
	Create(ctx context.Context, payment *entity.SupplierPayment) (int64, error)
	ListBySupplier(ctx context.Context, supplierID int64) ([]*entity.SupplierPayment, error)
	TotalBySupplier(ctx context.Context, supplierID int64) (decimal.Decimal, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
