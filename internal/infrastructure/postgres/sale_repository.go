package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `v.id, v.cliente_id, v.fecha, v.valor_total, v.tipo_venta, v.medio_pago, v.estado, v.descripcion, v.created_at, v.updated_at`

// saleViewSelect ventas con los datos del cliente; LEFT JOIN porque cliente_id es opcional.
const saleViewSelect = `
	SELECT ` + saleColumns + `,
	       COALESCE(c.nombre, ''), COALESCE(c.alias, ''), COALESCE(c.telefono, '')
	FROM ventas_diarias v
	LEFT JOIN clientes c ON c.id = v.cliente_id`

// SaleRepo implementación de SaleRepository sobre ventas_diarias.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la venta tal como llega (ya normalizada).
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) (int64, error) {
	query := `
		INSERT INTO ventas_diarias (cliente_id, fecha, valor_total, tipo_venta, medio_pago, estado, descripcion)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		s.CustomerID, s.Date, s.Total, s.Type, s.PaymentMethod, s.Status, s.Description,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return 0, saleWriteError("insert venta", err)
	}
	return s.ID, nil
}

func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.SaleView, error) {
	v, err := scanSaleView(r.q.QueryRow(ctx, saleViewSelect+` WHERE v.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return v, nil
}

func (r *SaleRepo) List(ctx context.Context) ([]*entity.SaleView, error) {
	return r.listViews(ctx, "list ventas", saleViewSelect+` ORDER BY v.fecha DESC, v.id DESC`)
}

// ListPending ventas pendientes para recordatorios de cobro.
func (r *SaleRepo) ListPending(ctx context.Context) ([]*entity.SaleView, error) {
	return r.listViews(ctx, "list ventas pendientes",
		saleViewSelect+` WHERE v.estado = $1 ORDER BY v.fecha DESC, v.id DESC`, entity.SaleStatusPending)
}

func (r *SaleRepo) ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM ventas_diarias v WHERE v.cliente_id = $1 ORDER BY v.fecha DESC, v.id DESC`
	rows, err := r.q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list ventas cliente: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(saleDest(&s)...); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *SaleRepo) Update(ctx context.Context, s *entity.Sale) (bool, error) {
	query := `
		UPDATE ventas_diarias
		SET cliente_id = $2, fecha = $3, valor_total = $4, tipo_venta = $5, medio_pago = $6,
		    estado = $7, descripcion = $8, updated_at = NOW()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		s.ID, s.CustomerID, s.Date, s.Total, s.Type, s.PaymentMethod, s.Status, s.Description,
	)
	if err != nil {
		return false, saleWriteError("update venta", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete borrado físico.
func (r *SaleRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM ventas_diarias WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete venta: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CompletedTotals cuenta y suma ventas completadas con fecha en [from, to).
func (r *SaleRepo) CompletedTotals(ctx context.Context, from, to time.Time) (int, decimal.Decimal, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(valor_total), 0)
		FROM ventas_diarias
		WHERE estado = $1 AND fecha >= $2 AND fecha < $3`
	var count int
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, entity.SaleStatusCompleted, from, to).Scan(&count, &total); err != nil {
		return 0, decimal.Zero, fmt.Errorf("totales ventas completadas: %w", err)
	}
	return count, total, nil
}

func (r *SaleRepo) PendingTotals(ctx context.Context) (int, decimal.Decimal, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(valor_total), 0) FROM ventas_diarias WHERE estado = $1`
	var count int
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, entity.SaleStatusPending).Scan(&count, &total); err != nil {
		return 0, decimal.Zero, fmt.Errorf("totales ventas pendientes: %w", err)
	}
	return count, total, nil
}

func (r *SaleRepo) listViews(ctx context.Context, op, query string, args ...any) ([]*entity.SaleView, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.SaleView
	for rows.Next() {
		v, err := scanSaleView(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

func saleDest(s *entity.Sale) []any {
	return []any{&s.ID, &s.CustomerID, &s.Date, &s.Total, &s.Type, &s.PaymentMethod, &s.Status, &s.Description, &s.CreatedAt, &s.UpdatedAt}
}

func scanSaleView(row pgx.Row) (*entity.SaleView, error) {
	var v entity.SaleView
	dest := append(saleDest(&v.Sale), &v.CustomerName, &v.CustomerAlias, &v.CustomerPhone)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &v, nil
}

// saleWriteError traduce violaciones de FK/CHECK a errores de dominio.
func saleWriteError(op string, err error) error {
	switch {
	case isForeignKeyViolation(err):
		return fmt.Errorf("%s: cliente: %w", op, domain.ErrNotFound)
	case isCheckViolation(err):
		return fmt.Errorf("%s: %w: %v", op, domain.ErrInvalidInput, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
