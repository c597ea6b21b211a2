package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create registra un cliente activo. El límite de crédito no puede ser negativo.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CustomerRequest) (int64, error) {
	customer, err := customerFromRequest(in)
	if err != nil {
		return 0, err
	}
	customer.Active = true
	return uc.repo.Create(ctx, customer)
}

// GetByID obtiene un cliente activo.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.FromCustomer(customer)
	return &out, nil
}

// List clientes activos ordenados por nombre.
func (uc *CustomerUseCase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	list, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.FromCustomer(c))
	}
	return items, nil
}

// Update reemplaza los datos del cliente.
func (uc *CustomerUseCase) Update(ctx context.Context, id int64, in dto.CustomerRequest) error {
	customer, err := customerFromRequest(in)
	if err != nil {
		return err
	}
	customer.ID = id
	ok, err := uc.repo.Update(ctx, customer)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// Delete desactiva el cliente; sus ventas y abonos se conservan.
func (uc *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	ok, err := uc.repo.Deactivate(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func customerFromRequest(in dto.CustomerRequest) (*entity.Customer, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	if in.CreditLimit.IsNegative() {
		return nil, fmt.Errorf("%w: limite_credito no puede ser negativo", domain.ErrInvalidInput)
	}
	return &entity.Customer{
		Name:        name,
		Alias:       strings.TrimSpace(in.Alias),
		Phone:       strings.TrimSpace(in.Phone),
		Address:     strings.TrimSpace(in.Address),
		CreditLimit: in.CreditLimit.Round(2),
		Regular:     in.Regular,
	}, nil
}
