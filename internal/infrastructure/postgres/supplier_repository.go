package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository (soft delete).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) (int64, error) {
	query := `
		INSERT INTO proveedores (nombre, telefono, estado)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`
	if err := r.q.QueryRow(ctx, query, s.Name, s.Phone, s.Active).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return 0, fmt.Errorf("insert proveedor: %w", err)
	}
	return s.ID, nil
}

func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	query := `SELECT id, nombre, telefono, estado, created_at, updated_at FROM proveedores WHERE id = $1 AND estado = TRUE`
	var s entity.Supplier
	err := r.q.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.Phone, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return &s, nil
}

func (r *SupplierRepo) ListActive(ctx context.Context) ([]*entity.Supplier, error) {
	query := `SELECT id, nombre, telefono, estado, created_at, updated_at FROM proveedores WHERE estado = TRUE ORDER BY nombre, id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Phone, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) (bool, error) {
	tag, err := r.q.Exec(ctx,
		`UPDATE proveedores SET nombre = $2, telefono = $3, updated_at = NOW() WHERE id = $1 AND estado = TRUE`,
		s.ID, s.Name, s.Phone)
	if err != nil {
		return false, fmt.Errorf("update proveedor: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *SupplierRepo) Deactivate(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `UPDATE proveedores SET estado = FALSE, updated_at = NOW() WHERE id = $1 AND estado = TRUE`, id)
	if err != nil {
		return false, fmt.Errorf("deactivate proveedor: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
