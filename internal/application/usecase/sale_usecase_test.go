package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

type SaleUseCaseSuite struct {
	suite.Suite
	ctx       context.Context
	sales     *mockSaleRepo
	customers *mockCustomerRepo
	tx        *fakeTx
	uc        *usecase.SaleUseCase
}

func (s *SaleUseCaseSuite) SetupTest() {
	s.ctx = context.Background()
	s.sales = new(mockSaleRepo)
	s.customers = new(mockCustomerRepo)
	s.tx = &fakeTx{store: repository.Store{Customers: s.customers, Sales: s.sales}}
	s.uc = usecase.NewSaleUseCase(s.sales, s.tx)
}

func TestSaleUseCase(t *testing.T) {
	suite.Run(t, new(SaleUseCaseSuite))
}

func int64Ptr(v int64) *int64 { return &v }

func (s *SaleUseCaseSuite) TestCreate_CreditoNormalizaMedioYEstado() {
	s.customers.On("GetByID", s.ctx, int64(5)).Return(&entity.Customer{ID: 5, Active: true}, nil)
	s.sales.On("Create", s.ctx, mock.MatchedBy(func(v *entity.Sale) bool {
		return v.Type == entity.SaleTypeCredit &&
			v.PaymentMethod == entity.PaymentMethodNA &&
			v.Status == entity.SaleStatusCompleted &&
			v.Total.Equal(decimal.RequireFromString("60000"))
	})).Return(int64(11), nil)

	id, err := s.uc.Create(s.ctx, dto.CreateSaleRequest{
		CustomerID:    int64Ptr(5),
		Total:         decimal.RequireFromString("60000"),
		Type:          entity.SaleTypeCredit,
		PaymentMethod: entity.PaymentMethodCash,
	})

	s.Require().NoError(err)
	s.Equal(int64(11), id)
	s.True(s.tx.committed)
	s.sales.AssertExpectations(s.T())
}

func (s *SaleUseCaseSuite) TestCreate_PendienteQuedaPendiente() {
	s.sales.On("Create", s.ctx, mock.MatchedBy(func(v *entity.Sale) bool {
		return v.Status == entity.SaleStatusPending && v.PaymentMethod == entity.PaymentMethodNA
	})).Return(int64(3), nil)

	id, err := s.uc.Create(s.ctx, dto.CreateSaleRequest{
		Total: decimal.RequireFromString("15000"),
		Type:  entity.SaleTypePending,
	})

	s.Require().NoError(err)
	s.Equal(int64(3), id)
	s.False(s.tx.committed, "sin cliente no se abre transacción")
}

func (s *SaleUseCaseSuite) TestCreate_ClienteInactivoEsNotFound() {
	s.customers.On("GetByID", s.ctx, int64(9)).Return(nil, nil)

	_, err := s.uc.Create(s.ctx, dto.CreateSaleRequest{
		CustomerID: int64Ptr(9),
		Total:      decimal.RequireFromString("1000"),
		Type:       entity.SaleTypeCash,
	})

	s.ErrorIs(err, domain.ErrNotFound)
	s.sales.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *SaleUseCaseSuite) TestCreate_TotalNegativoEsInvalido() {
	_, err := s.uc.Create(s.ctx, dto.CreateSaleRequest{
		Total: decimal.RequireFromString("-1"),
		Type:  entity.SaleTypeCash,
	})
	s.ErrorIs(err, domain.ErrInvalidInput)
}

func (s *SaleUseCaseSuite) TestUpdate_TransicionExplicitaACompletada() {
	current := &entity.SaleView{Sale: entity.Sale{ID: 4, Type: entity.SaleTypePending, Status: entity.SaleStatusPending}}
	s.sales.On("GetByID", s.ctx, int64(4)).Return(current, nil)
	s.sales.On("Update", s.ctx, mock.MatchedBy(func(v *entity.Sale) bool {
		return v.ID == 4 && v.Type == entity.SaleTypePending && v.Status == entity.SaleStatusCompleted
	})).Return(true, nil)

	err := s.uc.Update(s.ctx, 4, dto.UpdateSaleRequest{
		Total:  decimal.RequireFromString("15000"),
		Type:   entity.SaleTypePending,
		Status: entity.SaleStatusCompleted,
	})

	s.Require().NoError(err)
	s.sales.AssertExpectations(s.T())
}

func (s *SaleUseCaseSuite) TestUpdate_ClienteDesactivadoPuedeCompletarPendiente() {
	current := &entity.SaleView{Sale: entity.Sale{
		ID: 3, CustomerID: int64Ptr(7), Type: entity.SaleTypePending, Status: entity.SaleStatusPending,
	}}
	s.sales.On("GetByID", s.ctx, int64(3)).Return(current, nil)
	s.sales.On("Update", s.ctx, mock.MatchedBy(func(v *entity.Sale) bool {
		return v.ID == 3 && *v.CustomerID == 7 && v.Status == entity.SaleStatusCompleted
	})).Return(true, nil)

	err := s.uc.Update(s.ctx, 3, dto.UpdateSaleRequest{
		CustomerID: int64Ptr(7),
		Total:      decimal.RequireFromString("8000"),
		Type:       entity.SaleTypePending,
		Status:     entity.SaleStatusCompleted,
	})

	s.Require().NoError(err)
	s.customers.AssertNotCalled(s.T(), "GetByID", mock.Anything, mock.Anything)
	s.sales.AssertExpectations(s.T())
}

func (s *SaleUseCaseSuite) TestUpdate_ReasignarAClienteInactivoEsNotFound() {
	current := &entity.SaleView{Sale: entity.Sale{ID: 3, CustomerID: int64Ptr(7), Type: entity.SaleTypeCredit}}
	s.sales.On("GetByID", s.ctx, int64(3)).Return(current, nil)
	s.customers.On("GetByID", s.ctx, int64(9)).Return(nil, nil)

	err := s.uc.Update(s.ctx, 3, dto.UpdateSaleRequest{
		CustomerID: int64Ptr(9),
		Total:      decimal.RequireFromString("8000"),
		Type:       entity.SaleTypeCredit,
	})

	s.ErrorIs(err, domain.ErrNotFound)
	s.sales.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *SaleUseCaseSuite) TestUpdate_NoExiste() {
	s.sales.On("GetByID", s.ctx, int64(99)).Return(nil, nil)

	err := s.uc.Update(s.ctx, 99, dto.UpdateSaleRequest{Type: entity.SaleTypeCash})
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *SaleUseCaseSuite) TestListPending_IncluyeDatosDelCliente() {
	s.sales.On("ListPending", s.ctx).Return([]*entity.SaleView{
		{Sale: entity.Sale{ID: 2, CustomerID: int64Ptr(5), Status: entity.SaleStatusPending}, CustomerName: "Ana", CustomerPhone: "300"},
		{Sale: entity.Sale{ID: 1, Status: entity.SaleStatusPending}},
	}, nil)

	list, err := s.uc.ListPending(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("Ana", list[0].CustomerName)
	s.Equal("300", list[0].CustomerPhone)
	s.Nil(list[1].CustomerID)
	s.Empty(list[1].CustomerName)
}

func (s *SaleUseCaseSuite) TestDelete_NoExiste() {
	s.sales.On("Delete", s.ctx, int64(8)).Return(false, nil)
	s.ErrorIs(s.uc.Delete(s.ctx, 8), domain.ErrNotFound)
}

func TestSaleUseCase_ErrorDeRepositorioSePropaga(t *testing.T) {
	ctx := context.Background()
	sales := new(mockSaleRepo)
	sales.On("List", ctx).Return(nil, errors.New("db caída"))
	uc := usecase.NewSaleUseCase(sales, &fakeTx{})

	_, err := uc.List(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db caída")
}
