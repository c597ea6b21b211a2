package repository

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// BusinessRepository perfil único del negocio. FindFirst devuelve (nil, nil) si aún no existe;
// Create devuelve id 0 si el perfil ya había sido creado por otra petición.
type BusinessRepository interface {
	FindFirst(ctx context.Context) (*entity.Business, error)
	Create(ctx context.Context, business *entity.Business) (int64, error)
	Update(ctx context.Context, business *entity.Business) (bool, error)
}
