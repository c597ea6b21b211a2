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

// BusinessUseCase perfil único del negocio.
type BusinessUseCase struct {
	repo repository.BusinessRepository
}

// NewBusinessUseCase construye el caso de uso.
func NewBusinessUseCase(repo repository.BusinessRepository) *BusinessUseCase {
	return &BusinessUseCase{repo: repo}
}

// Get devuelve el perfil; si aún no existe lo crea con el nombre por defecto.
func (uc *BusinessUseCase) Get(ctx context.Context) (*dto.BusinessResponse, error) {
	business, err := uc.Ensure(ctx)
	if err != nil {
		return nil, err
	}
	out := dto.FromBusiness(business)
	return &out, nil
}

// Ensure lectura con creación perezosa; la usan también los PDFs de estado de cuenta.
func (uc *BusinessUseCase) Ensure(ctx context.Context) (*entity.Business, error) {
	business, err := uc.repo.FindFirst(ctx)
	if err != nil {
		return nil, err
	}
	if business != nil {
		return business, nil
	}
	business = &entity.Business{Name: entity.DefaultBusinessName}
	id, err := uc.repo.Create(ctx, business)
	if err != nil {
		return nil, fmt.Errorf("crear perfil del negocio: %w", err)
	}
	if id == 0 {
		// Otra petición ganó la carrera: se usa su fila.
		business, err = uc.repo.FindFirst(ctx)
		if err != nil {
			return nil, err
		}
		if business == nil {
			return nil, domain.ErrNotFound
		}
		return business, nil
	}
	business.ID = id
	return business, nil
}

// Update reemplaza el perfil identificado por id.
func (uc *BusinessUseCase) Update(ctx context.Context, id int64, in dto.UpdateBusinessRequest) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	ok, err := uc.repo.Update(ctx, &entity.Business{
		ID:            id,
		Name:          name,
		Phone:         strings.TrimSpace(in.Phone),
		ContactPerson: strings.TrimSpace(in.ContactPerson),
		Email:         strings.TrimSpace(in.Email),
		Address:       strings.TrimSpace(in.Address),
	})
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
