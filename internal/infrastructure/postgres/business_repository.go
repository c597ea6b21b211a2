package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

// BusinessRepo perfil del negocio (tabla negocio, una fila).
type BusinessRepo struct {
	q Querier
}

// NewBusinessRepository construye el adaptador.
func NewBusinessRepository(q Querier) *BusinessRepo {
	return &BusinessRepo{q: q}
}

// FindFirst devuelve la fila más antigua; (nil, nil) si la tabla está vacía.
func (r *BusinessRepo) FindFirst(ctx context.Context) (*entity.Business, error) {
	query := `
		SELECT id, nombre, telefono, persona_contacto, email, direccion, created_at, updated_at
		FROM negocio ORDER BY id LIMIT 1`
	var b entity.Business
	err := r.q.QueryRow(ctx, query).Scan(&b.ID, &b.Name, &b.Phone, &b.ContactPerson, &b.Email, &b.Address, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get negocio: %w", err)
	}
	return &b, nil
}

// Create inserta el perfil solo si la tabla está vacía (índice negocio_singleton).
// Devuelve (0, nil) cuando otra petición lo creó primero.
func (r *BusinessRepo) Create(ctx context.Context, b *entity.Business) (int64, error) {
	query := `
		INSERT INTO negocio (nombre, telefono, persona_contacto, email, direccion)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT DO NOTHING
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query, b.Name, b.Phone, b.ContactPerson, b.Email, b.Address).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("insert negocio: %w", err)
	}
	return b.ID, nil
}

func (r *BusinessRepo) Update(ctx context.Context, b *entity.Business) (bool, error) {
	query := `
		UPDATE negocio
		SET nombre = $2, telefono = $3, persona_contacto = $4, email = $5, direccion = $6, updated_at = NOW()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, b.ID, b.Name, b.Phone, b.ContactPerson, b.Email, b.Address)
	if err != nil {
		return false, fmt.Errorf("update negocio: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
