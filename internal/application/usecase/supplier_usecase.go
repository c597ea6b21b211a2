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

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

func (uc *SupplierUseCase) Create(ctx context.Context, in dto.SupplierRequest) (int64, error) {
	supplier, err := supplierFromRequest(in)
	if err != nil {
		return 0, err
	}
	supplier.Active = true
	return uc.repo.Create(ctx, supplier)
}

func (uc *SupplierUseCase) GetByID(ctx context.Context, id int64) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.FromSupplier(supplier)
	return &out, nil
}

func (uc *SupplierUseCase) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	list, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, dto.FromSupplier(s))
	}
	return items, nil
}

func (uc *SupplierUseCase) Update(ctx context.Context, id int64, in dto.SupplierRequest) error {
	supplier, err := supplierFromRequest(in)
	if err != nil {
		return err
	}
	supplier.ID = id
	ok, err := uc.repo.Update(ctx, supplier)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// Delete desactiva el proveedor (soft delete).
func (uc *SupplierUseCase) Delete(ctx context.Context, id int64) error {
	ok, err := uc.repo.Deactivate(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func supplierFromRequest(in dto.SupplierRequest) (*entity.Supplier, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	return &entity.Supplier{Name: name, Phone: strings.TrimSpace(in.Phone)}, nil
}

// requireActiveSupplier devuelve ErrNotFound si el proveedor no existe o está inactivo.
func requireActiveSupplier(ctx context.Context, repo repository.SupplierRepository, id int64) error {
	supplier, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return fmt.Errorf("proveedor %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
