package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.SupplierPaymentRepository = (*SupplierPaymentRepo)(nil)

// SupplierPaymentRepo implementación de SupplierPaymentRepository sobre pagos_proveedores.
type SupplierPaymentRepo struct {
	q Querier
}

// NewSupplierPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierPaymentRepository(q Querier) *SupplierPaymentRepo {
	return &SupplierPaymentRepo{q: q}
}

func (r *SupplierPaymentRepo) Create(ctx context.Context, p *entity.SupplierPayment) (int64, error) {
	query := `
		INSERT INTO pagos_proveedores (proveedor_id, fecha, valor, descripcion, metodo_pago)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query, p.SupplierID, p.Date, p.Amount, p.Description, p.Method).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		switch {
		case isForeignKeyViolation(err):
			return 0, fmt.Errorf("insert pago proveedor: proveedor: %w", domain.ErrNotFound)
		case isCheckViolation(err):
			return 0, fmt.Errorf("insert pago proveedor: %w: %v", domain.ErrInvalidInput, err)
		}
		return 0, fmt.Errorf("insert pago proveedor: %w", err)
	}
	return p.ID, nil
}

func (r *SupplierPaymentRepo) ListBySupplier(ctx context.Context, supplierID int64) ([]*entity.SupplierPayment, error) {
	query := `
		SELECT pp.id, pp.proveedor_id, pp.fecha, pp.valor, pp.descripcion, pp.metodo_pago, pr.nombre, pp.created_at
		FROM pagos_proveedores pp
		JOIN proveedores pr ON pr.id = pp.proveedor_id
		WHERE pp.proveedor_id = $1
		ORDER BY pp.fecha DESC, pp.id DESC`
	rows, err := r.q.Query(ctx, query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list pagos proveedor: %w", err)
	}
	defer rows.Close()
	var list []*entity.SupplierPayment
	for rows.Next() {
		var p entity.SupplierPayment
		if err := rows.Scan(&p.ID, &p.SupplierID, &p.Date, &p.Amount, &p.Description, &p.Method, &p.SupplierName, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan pago proveedor: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *SupplierPaymentRepo) TotalBySupplier(ctx context.Context, supplierID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `SELECT COALESCE(SUM(valor), 0) FROM pagos_proveedores WHERE proveedor_id = $1`, supplierID).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total pagos proveedor: %w", err)
	}
	return total, nil
}

// Delete borrado físico.
func (r *SupplierPaymentRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM pagos_proveedores WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete pago proveedor: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
