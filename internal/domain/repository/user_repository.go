package repository

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para usuarios. Solo devuelve usuarios activos.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) (int64, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByID(ctx context.Context, id int64) (*entity.User, error)
}
