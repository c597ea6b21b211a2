package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// ledgerTotalsSelect totales de cartera por cliente activo.
// Ventas y abonos se agregan por separado antes del join: un JOIN directo de las dos
// tablas multiplicaría cada venta por el número de abonos.
const ledgerTotalsSelect = `
	SELECT c.id, c.nombre, c.alias, c.telefono, c.direccion, c.limite_credito, c.cliente_regular,
	       c.estado, c.created_at, c.updated_at,
	       COALESCE(v.total, 0), COALESCE(a.total, 0), COALESCE(v.cantidad, 0)
	FROM clientes c
	LEFT JOIN (
		SELECT cliente_id, SUM(valor_total) AS total, COUNT(*) AS cantidad
		FROM ventas_diarias
		WHERE tipo_venta = '` + entity.SaleTypeCredit + `' AND estado = '` + entity.SaleStatusCompleted + `'
		GROUP BY cliente_id
	) v ON v.cliente_id = c.id
	LEFT JOIN (
		SELECT cliente_id, SUM(valor) AS total
		FROM abonos
		GROUP BY cliente_id
	) a ON a.cliente_id = c.id
	WHERE c.estado = TRUE`

// LedgerRepo consultas de solo lectura de cartera.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador.
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// CustomerTotals devuelve (nil, nil) si el cliente no existe o está inactivo.
func (r *LedgerRepo) CustomerTotals(ctx context.Context, customerID int64) (*repository.CustomerTotals, error) {
	t, err := scanCustomerTotals(r.q.QueryRow(ctx, ledgerTotalsSelect+` AND c.id = $1`, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("totales cliente: %w", err)
	}
	return t, nil
}

// AllCustomerTotals una fila por cliente activo, ordenado por nombre.
func (r *LedgerRepo) AllCustomerTotals(ctx context.Context) ([]repository.CustomerTotals, error) {
	rows, err := r.q.Query(ctx, ledgerTotalsSelect+` ORDER BY c.nombre, c.id`)
	if err != nil {
		return nil, fmt.Errorf("totales clientes: %w", err)
	}
	defer rows.Close()
	var list []repository.CustomerTotals
	for rows.Next() {
		t, err := scanCustomerTotals(rows)
		if err != nil {
			return nil, fmt.Errorf("scan totales: %w", err)
		}
		list = append(list, *t)
	}
	return list, rows.Err()
}

func scanCustomerTotals(row pgx.Row) (*repository.CustomerTotals, error) {
	var t repository.CustomerTotals
	c := &t.Customer
	err := row.Scan(
		&c.ID, &c.Name, &c.Alias, &c.Phone, &c.Address, &c.CreditLimit, &c.Regular, &c.Active, &c.CreatedAt, &c.UpdatedAt,
		&t.CreditTotal, &t.PaymentsTotal, &t.CreditSaleCount,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
