package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/ports"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos de proveedores.
type ProductUseCase struct {
	repo repository.ProductRepository
	tx   ports.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, tx ports.TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, tx: tx}
}

// Create registra un producto; el proveedor debe estar activo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (int64, error) {
	product, err := productFromRequest(in)
	if err != nil {
		return 0, err
	}
	product.Active = true

	var id int64
	err = uc.tx.Run(ctx, func(store repository.Store) error {
		if err := requireActiveSupplier(ctx, store.Suppliers, product.SupplierID); err != nil {
			return err
		}
		var err error
		id, err = store.Products.Create(ctx, product)
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetByID obtiene un producto activo con el nombre del proveedor.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.FromProduct(product)
	return &out, nil
}

func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return productResponses(list), nil
}

func (uc *ProductUseCase) ListBySupplier(ctx context.Context, supplierID int64) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	return productResponses(list), nil
}

// Update reemplaza el producto; si cambia de proveedor, el nuevo debe estar activo.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.ProductRequest) error {
	product, err := productFromRequest(in)
	if err != nil {
		return err
	}
	product.ID = id
	return uc.tx.Run(ctx, func(store repository.Store) error {
		if err := requireActiveSupplier(ctx, store.Suppliers, product.SupplierID); err != nil {
			return err
		}
		ok, err := store.Products.Update(ctx, product)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		return nil
	})
}

// Delete desactiva el producto (soft delete).
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	ok, err := uc.repo.Deactivate(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func productFromRequest(in dto.ProductRequest) (*entity.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: el valor no puede ser negativo", domain.ErrInvalidInput)
	}
	return &entity.Product{
		SupplierID:  in.SupplierID,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price.Round(2),
	}, nil
}

func productResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.FromProduct(p))
	}
	return items
}
