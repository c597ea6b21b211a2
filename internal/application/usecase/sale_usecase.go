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
	"github.com/jhoicas/Tienda-api/internal/domain/ledger"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// SaleUseCase registro y consulta de ventas diarias, incluida la vista de pendientes.
type SaleUseCase struct {
	repo repository.SaleRepository
	tx   ports.TxRunner
	now  func() time.Time
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository, tx ports.TxRunner) *SaleUseCase {
	return &SaleUseCase{repo: repo, tx: tx, now: time.Now}
}

// Create normaliza medio de pago y estado según el tipo y persiste la venta.
// Si la venta referencia un cliente, se verifica que esté activo en la misma transacción.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (int64, error) {
	sale := &entity.Sale{
		CustomerID:    in.CustomerID,
		Date:          uc.now(),
		Total:         in.Total.Round(2),
		Type:          in.Type,
		PaymentMethod: in.PaymentMethod,
		Description:   strings.TrimSpace(in.Description),
	}
	if in.Date != nil {
		sale.Date = *in.Date
	}
	if err := ledger.NormalizeNewSale(sale); err != nil {
		return 0, err
	}
	if sale.CustomerID == nil {
		return uc.repo.Create(ctx, sale)
	}

	var id int64
	err := uc.tx.Run(ctx, func(store repository.Store) error {
		if err := requireActiveCustomer(ctx, store.Customers, *sale.CustomerID); err != nil {
			return err
		}
		var err error
		id, err = store.Sales.Create(ctx, sale)
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetByID obtiene una venta con los datos del cliente.
func (uc *SaleUseCase) GetByID(ctx context.Context, id int64) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.FromSaleView(sale)
	return &out, nil
}

// List todas las ventas, más reciente primero.
func (uc *SaleUseCase) List(ctx context.Context) ([]dto.SaleResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return saleViews(list), nil
}

// ListPending ventas en estado pendiente con los datos de contacto del cliente,
// insumo de los recordatorios de cobro.
func (uc *SaleUseCase) ListPending(ctx context.Context) ([]dto.SaleResponse, error) {
	list, err := uc.repo.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	return saleViews(list), nil
}

// ListByCustomer historial de ventas de un cliente (cualquier tipo y estado).
func (uc *SaleUseCase) ListByCustomer(ctx context.Context, customerID int64) ([]dto.SaleResponse, error) {
	list, err := uc.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, dto.FromSale(s))
	}
	return items, nil
}

// Update reemplaza la venta. El estado llega explícito en la petición (pendiente → completada
// o al revés); si se omite, se deriva del tipo.
func (uc *SaleUseCase) Update(ctx context.Context, id int64, in dto.UpdateSaleRequest) error {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.ErrNotFound
	}
	sale := &entity.Sale{
		ID:            id,
		CustomerID:    in.CustomerID,
		Date:          current.Date,
		Total:         in.Total.Round(2),
		Type:          in.Type,
		PaymentMethod: in.PaymentMethod,
		Description:   strings.TrimSpace(in.Description),
	}
	if in.Date != nil {
		sale.Date = *in.Date
	}
	if err := ledger.NormalizeSaleUpdate(sale, in.Status); err != nil {
		return err
	}

	// Solo una reasignación exige cliente activo: las ventas históricas de un cliente
	// desactivado siguen siendo editables (p. ej. pendiente → completada).
	reassigned := sale.CustomerID != nil &&
		(current.CustomerID == nil || *current.CustomerID != *sale.CustomerID)

	return uc.tx.Run(ctx, func(store repository.Store) error {
		if reassigned {
			if err := requireActiveCustomer(ctx, store.Customers, *sale.CustomerID); err != nil {
				return err
			}
		}
		ok, err := store.Sales.Update(ctx, sale)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		return nil
	})
}

// Delete borra la venta físicamente.
func (uc *SaleUseCase) Delete(ctx context.Context, id int64) error {
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func saleViews(list []*entity.SaleView) []dto.SaleResponse {
	items := make([]dto.SaleResponse, 0, len(list))
	for _, v := range list {
		items = append(items, dto.FromSaleView(v))
	}
	return items
}

// requireActiveCustomer devuelve ErrNotFound si el cliente no existe o está inactivo.
func requireActiveCustomer(ctx context.Context, repo repository.CustomerRepository, id int64) error {
	customer, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return fmt.Errorf("cliente %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
