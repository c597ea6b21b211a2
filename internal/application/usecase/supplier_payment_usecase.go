package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/ports"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// DefaultSupplierPaymentMethod se usa cuando el pago llega sin metodo_pago.
const DefaultSupplierPaymentMethod = "efectivo"

// SupplierPaymentUseCase pagos realizados a proveedores.
type SupplierPaymentUseCase struct {
	repo repository.SupplierPaymentRepository
	tx   ports.TxRunner
	now  func() time.Time
}

// NewSupplierPaymentUseCase construye el caso de uso.
func NewSupplierPaymentUseCase(repo repository.SupplierPaymentRepository, tx ports.TxRunner) *SupplierPaymentUseCase {
	return &SupplierPaymentUseCase{repo: repo, tx: tx, now: time.Now}
}

// Create registra el pago. metodo_pago es texto libre: no se valida contra una lista.
func (uc *SupplierPaymentUseCase) Create(ctx context.Context, in dto.CreateSupplierPaymentRequest) (int64, error) {
	if !in.Amount.IsPositive() {
		return 0, fmt.Errorf("%w: el valor del pago debe ser mayor que cero", domain.ErrInvalidInput)
	}
	method := strings.TrimSpace(in.Method)
	if method == "" {
		method = DefaultSupplierPaymentMethod
	}
	payment := &entity.SupplierPayment{
		SupplierID:  in.SupplierID,
		Date:        uc.now(),
		Amount:      in.Amount.Round(2),
		Description: strings.TrimSpace(in.Description),
		Method:      method,
	}
	if in.Date != nil {
		payment.Date = *in.Date
	}

	var id int64
	err := uc.tx.Run(ctx, func(store repository.Store) error {
		if err := requireActiveSupplier(ctx, store.Suppliers, payment.SupplierID); err != nil {
			return err
		}
		var err error
		id, err = store.SupplierPayments.Create(ctx, payment)
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (uc *SupplierPaymentUseCase) ListBySupplier(ctx context.Context, supplierID int64) ([]dto.SupplierPaymentResponse, error) {
	list, err := uc.repo.ListBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierPaymentResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.FromSupplierPayment(p))
	}
	return items, nil
}

func (uc *SupplierPaymentUseCase) TotalBySupplier(ctx context.Context, supplierID int64) (*dto.TotalResponse, error) {
	total, err := uc.repo.TotalBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	return &dto.TotalResponse{Total: total}, nil
}

// Delete borra el pago físicamente.
func (uc *SupplierPaymentUseCase) Delete(ctx context.Context, id int64) error {
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
