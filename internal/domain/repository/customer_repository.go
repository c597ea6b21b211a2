package repository

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// Todas las lecturas excluyen clientes inactivos; GetByID devuelve (nil, nil) si no existe.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	ListActive(ctx context.Context) ([]*entity.Customer, error)
	// Update devuelve false si el cliente no existe o está inactivo.
	Update(ctx context.Context, customer *entity.Customer) (bool, error)
	// Deactivate marca estado = false (soft delete).
	Deactivate(ctx context.Context, id int64) (bool, error)
}
