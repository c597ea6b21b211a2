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

// PaymentUseCase abonos de clientes. Los abonos no se editan ni se borran.
type PaymentUseCase struct {
	repo repository.PaymentRepository
	tx   ports.TxRunner
	now  func() time.Time
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(repo repository.PaymentRepository, tx ports.TxRunner) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, tx: tx, now: time.Now}
}

// Create registra un abono con fecha del servidor. El cliente debe existir y estar activo.
func (uc *PaymentUseCase) Create(ctx context.Context, in dto.CreatePaymentRequest) (int64, error) {
	if !in.Amount.IsPositive() {
		return 0, fmt.Errorf("%w: el valor del abono debe ser mayor que cero", domain.ErrInvalidInput)
	}
	payment := &entity.Payment{
		CustomerID:  in.CustomerID,
		Date:        uc.now(),
		Amount:      in.Amount.Round(2),
		Description: strings.TrimSpace(in.Description),
	}
	var id int64
	err := uc.tx.Run(ctx, func(store repository.Store) error {
		if err := requireActiveCustomer(ctx, store.Customers, payment.CustomerID); err != nil {
			return err
		}
		var err error
		id, err = store.Payments.Create(ctx, payment)
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ListByCustomer abonos del cliente, más reciente primero.
func (uc *PaymentUseCase) ListByCustomer(ctx context.Context, customerID int64) ([]dto.PaymentResponse, error) {
	list, err := uc.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.FromPayment(p))
	}
	return items, nil
}

// TotalByCustomer suma de abonos del cliente (0 si no tiene).
func (uc *PaymentUseCase) TotalByCustomer(ctx context.Context, customerID int64) (*dto.TotalResponse, error) {
	total, err := uc.repo.TotalByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return &dto.TotalResponse{Total: total}, nil
}
