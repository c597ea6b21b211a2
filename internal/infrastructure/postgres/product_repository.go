package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// productSelect productos con el nombre del proveedor.
const productSelect = `
	SELECT p.id, p.proveedor_id, pr.nombre, p.nombre, p.descripcion, p.valor, p.estado, p.created_at, p.updated_at
	FROM productos p
	JOIN proveedores pr ON pr.id = p.proveedor_id`

// ProductRepo implementación de ProductRepository (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) (int64, error) {
	query := `
		INSERT INTO productos (proveedor_id, nombre, descripcion, valor, estado)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query, p.SupplierID, p.Name, p.Description, p.Price, p.Active).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, fmt.Errorf("insert producto: proveedor: %w", domain.ErrNotFound)
		}
		return 0, fmt.Errorf("insert producto: %w", err)
	}
	return p.ID, nil
}

// GetByID obtiene un producto activo.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, productSelect+` WHERE p.id = $1 AND p.estado = TRUE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

func (r *ProductRepo) ListActive(ctx context.Context) ([]*entity.Product, error) {
	return r.list(ctx, productSelect+` WHERE p.estado = TRUE ORDER BY p.nombre, p.id`)
}

func (r *ProductRepo) ListBySupplier(ctx context.Context, supplierID int64) ([]*entity.Product, error) {
	return r.list(ctx, productSelect+` WHERE p.estado = TRUE AND p.proveedor_id = $1 ORDER BY p.nombre, p.id`, supplierID)
}

func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) (bool, error) {
	query := `
		UPDATE productos
		SET proveedor_id = $2, nombre = $3, descripcion = $4, valor = $5, updated_at = NOW()
		WHERE id = $1 AND estado = TRUE`
	tag, err := r.q.Exec(ctx, query, p.ID, p.SupplierID, p.Name, p.Description, p.Price)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, fmt.Errorf("update producto: proveedor: %w", domain.ErrNotFound)
		}
		return false, fmt.Errorf("update producto: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ProductRepo) Deactivate(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `UPDATE productos SET estado = FALSE, updated_at = NOW() WHERE id = $1 AND estado = TRUE`, id)
	if err != nil {
		return false, fmt.Errorf("deactivate producto: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ProductRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.SupplierID, &p.SupplierName, &p.Name, &p.Description, &p.Price, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
