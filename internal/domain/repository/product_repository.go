package repository

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para productos (soft delete).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	ListActive(ctx context.Context) ([]*entity.Product, error)
	ListBySupplier(ctx context.Context, supplierID int64) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) (bool, error)
	Deactivate(ctx context.Context, id int64) (bool, error)
}
