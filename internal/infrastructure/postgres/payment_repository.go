package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository sobre la tabla abonos.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

func (r *PaymentRepo) Create(ctx context.Context, p *entity.Payment) (int64, error) {
	query := `
		INSERT INTO abonos (cliente_id, fecha, valor, descripcion)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query, p.CustomerID, p.Date, p.Amount, p.Description).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		switch {
		case isForeignKeyViolation(err):
			return 0, fmt.Errorf("insert abono: cliente: %w", domain.ErrNotFound)
		case isCheckViolation(err):
			return 0, fmt.Errorf("insert abono: %w: %v", domain.ErrInvalidInput, err)
		}
		return 0, fmt.Errorf("insert abono: %w", err)
	}
	return p.ID, nil
}

// ListByCustomer abonos del cliente con su nombre, más reciente primero.
func (r *PaymentRepo) ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Payment, error) {
	query := `
		SELECT a.id, a.cliente_id, a.fecha, a.valor, a.descripcion, c.nombre, a.created_at
		FROM abonos a
		JOIN clientes c ON c.id = a.cliente_id
		WHERE a.cliente_id = $1
		ORDER BY a.fecha DESC, a.id DESC`
	rows, err := r.q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list abonos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.CustomerID, &p.Date, &p.Amount, &p.Description, &p.CustomerName, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan abono: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *PaymentRepo) TotalByCustomer(ctx context.Context, customerID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `SELECT COALESCE(SUM(valor), 0) FROM abonos WHERE cliente_id = $1`, customerID).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total abonos: %w", err)
	}
	return total, nil
}
