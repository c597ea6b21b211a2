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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, nombre, alias, telefono, direccion, limite_credito, cliente_regular, estado, created_at, updated_at`

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente y completa ID y timestamps.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) (int64, error) {
	query := `
		INSERT INTO clientes (nombre, alias, telefono, direccion, limite_credito, cliente_regular, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		c.Name, c.Alias, c.Phone, c.Address, c.CreditLimit, c.Regular, c.Active,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if isCheckViolation(err) {
			return 0, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return 0, fmt.Errorf("insert cliente: %w", err)
	}
	return c.ID, nil
}

// GetByID obtiene un cliente activo por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM clientes WHERE id = $1 AND estado = TRUE`
	c, err := scanCustomer(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return c, nil
}

// ListActive clientes activos ordenados por nombre.
func (r *CustomerRepo) ListActive(ctx context.Context) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM clientes WHERE estado = TRUE ORDER BY nombre, id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update reemplaza los datos de un cliente activo.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) (bool, error) {
	query := `
		UPDATE clientes
		SET nombre = $2, alias = $3, telefono = $4, direccion = $5, limite_credito = $6,
		    cliente_regular = $7, updated_at = NOW()
		WHERE id = $1 AND estado = TRUE`
	tag, err := r.q.Exec(ctx, query, c.ID, c.Name, c.Alias, c.Phone, c.Address, c.CreditLimit, c.Regular)
	if err != nil {
		if isCheckViolation(err) {
			return false, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return false, fmt.Errorf("update cliente: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Deactivate soft delete: estado = FALSE.
func (r *CustomerRepo) Deactivate(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `UPDATE clientes SET estado = FALSE, updated_at = NOW() WHERE id = $1 AND estado = TRUE`, id)
	if err != nil {
		return false, fmt.Errorf("deactivate cliente: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Alias, &c.Phone, &c.Address, &c.CreditLimit, &c.Regular, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
