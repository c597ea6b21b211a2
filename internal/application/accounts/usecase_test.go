package accounts_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/jhoicas/Tienda-api/internal/application/accounts"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/ledger"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// ── mocks ─────────────────────────────────────────────────────────────────────

type mockLedgerRepo struct{ mock.Mock }

func (m *mockLedgerRepo) CustomerTotals(ctx context.Context, id int64) (*repository.CustomerTotals, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*repository.CustomerTotals)
	return t, args.Error(1)
}

func (m *mockLedgerRepo) AllCustomerTotals(ctx context.Context) ([]repository.CustomerTotals, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]repository.CustomerTotals)
	return list, args.Error(1)
}

type mockCustomerRepo struct {
	mock.Mock
	repository.CustomerRepository
}

func (m *mockCustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entity.Customer)
	return c, args.Error(1)
}

type mockSaleRepo struct {
	mock.Mock
	repository.SaleRepository
}

func (m *mockSaleRepo) ListByCustomer(ctx context.Context, id int64) ([]*entity.Sale, error) {
	args := m.Called(ctx, id)
	list, _ := args.Get(0).([]*entity.Sale)
	return list, args.Error(1)
}

type mockPaymentRepo struct {
	mock.Mock
	repository.PaymentRepository
}

func (m *mockPaymentRepo) ListByCustomer(ctx context.Context, id int64) ([]*entity.Payment, error) {
	args := m.Called(ctx, id)
	list, _ := args.Get(0).([]*entity.Payment)
	return list, args.Error(1)
}

type stubBusiness struct{ b *entity.Business }

func (s stubBusiness) Ensure(context.Context) (*entity.Business, error) { return s.b, nil }

type mockPDF struct{ mock.Mock }

func (m *mockPDF) Generate(ctx context.Context, b *entity.Business, st ledger.Statement) ([]byte, error) {
	args := m.Called(ctx, b, st)
	out, _ := args.Get(0).([]byte)
	return out, args.Error(1)
}

// ── suite ─────────────────────────────────────────────────────────────────────

type AccountsSuite struct {
	suite.Suite
	ctx       context.Context
	ledger    *mockLedgerRepo
	customers *mockCustomerRepo
	sales     *mockSaleRepo
	payments  *mockPaymentRepo
	pdf       *mockPDF
	uc        *accounts.AccountsUseCase
}

func TestAccounts(t *testing.T) {
	suite.Run(t, new(AccountsSuite))
}

func (s *AccountsSuite) SetupTest() {
	s.ctx = context.Background()
	s.ledger = new(mockLedgerRepo)
	s.customers = new(mockCustomerRepo)
	s.sales = new(mockSaleRepo)
	s.payments = new(mockPaymentRepo)
	s.pdf = new(mockPDF)
	s.uc = accounts.NewAccountsUseCase(s.ledger, s.customers, s.sales, s.payments,
		stubBusiness{b: &entity.Business{ID: 1, Name: "Mi Tienda"}}, s.pdf)
}

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func (s *AccountsSuite) TestBalance_DebeConCreditoDisponible() {
	s.ledger.On("CustomerTotals", s.ctx, int64(1)).Return(&repository.CustomerTotals{
		Customer:      entity.Customer{ID: 1, CreditLimit: d("100000")},
		CreditTotal:   d("60000"),
		PaymentsTotal: d("20000"),
	}, nil)

	out, err := s.uc.Balance(s.ctx, 1)

	s.Require().NoError(err)
	s.True(out.Balance.Equal(d("40000")))
	s.True(out.AvailableCredit.Equal(d("60000")))
	s.Equal(ledger.StandingOwes, out.Standing)
}

func (s *AccountsSuite) TestBalance_SaldoAFavorNoReduceCredito() {
	s.ledger.On("CustomerTotals", s.ctx, int64(2)).Return(&repository.CustomerTotals{
		Customer:      entity.Customer{ID: 2, CreditLimit: d("50000")},
		CreditTotal:   d("30000"),
		PaymentsTotal: d("50000"),
	}, nil)

	out, err := s.uc.Balance(s.ctx, 2)

	s.Require().NoError(err)
	s.True(out.Balance.Equal(d("-20000")))
	s.True(out.AvailableCredit.Equal(d("50000")))
	s.Equal(ledger.StandingInFavor, out.Standing)
}

func (s *AccountsSuite) TestBalance_ClienteInexistente() {
	s.ledger.On("CustomerTotals", s.ctx, int64(9)).Return(nil, nil)

	_, err := s.uc.Balance(s.ctx, 9)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *AccountsSuite) TestStatement_SoloCreditoCompletadoYOrdenDescendente() {
	cid := int64(1)
	t0 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	s.customers.On("GetByID", s.ctx, cid).Return(&entity.Customer{ID: cid, Name: "Ana", CreditLimit: d("100000")}, nil)
	s.sales.On("ListByCustomer", s.ctx, cid).Return([]*entity.Sale{
		{ID: 1, CustomerID: &cid, Date: t0, Total: d("1999.99"), Type: entity.SaleTypeCredit, Status: entity.SaleStatusCompleted},
		{ID: 2, CustomerID: &cid, Date: t0.Add(time.Hour), Total: d("2000.01"), Type: entity.SaleTypeCredit, Status: entity.SaleStatusCompleted},
		{ID: 3, CustomerID: &cid, Date: t0.Add(2 * time.Hour), Total: d("5000"), Type: entity.SaleTypeCash, Status: entity.SaleStatusCompleted},
		{ID: 4, CustomerID: &cid, Date: t0.Add(3 * time.Hour), Total: d("7000"), Type: entity.SaleTypePending, Status: entity.SaleStatusPending},
	}, nil)
	s.payments.On("ListByCustomer", s.ctx, cid).Return([]*entity.Payment{
		{ID: 1, CustomerID: cid, Date: t0.Add(30 * time.Minute), Amount: d("1000")},
	}, nil)

	out, err := s.uc.Statement(s.ctx, cid)

	s.Require().NoError(err)
	s.Require().Len(out.Sales, 2)
	s.Equal(int64(2), out.Sales[0].ID)
	s.Equal(int64(1), out.Sales[1].ID)
	s.Len(out.Payments, 1)
	s.True(out.Balance.CreditTotal.Equal(d("4000.00")))
	s.True(out.Balance.Balance.Equal(d("3000")))
}

func (s *AccountsSuite) TestStatement_SinMovimientos() {
	s.customers.On("GetByID", s.ctx, int64(5)).Return(&entity.Customer{ID: 5, CreditLimit: d("80000")}, nil)
	s.sales.On("ListByCustomer", s.ctx, int64(5)).Return(nil, nil)
	s.payments.On("ListByCustomer", s.ctx, int64(5)).Return(nil, nil)

	out, err := s.uc.Statement(s.ctx, 5)

	s.Require().NoError(err)
	s.NotNil(out.Sales)
	s.NotNil(out.Payments)
	s.True(out.Balance.Balance.IsZero())
	s.True(out.Balance.AvailableCredit.Equal(d("80000")))
}

func (s *AccountsSuite) TestListAccounts_FiltraCuentasSinMovimiento() {
	s.ledger.On("AllCustomerTotals", s.ctx).Return([]repository.CustomerTotals{
		{Customer: entity.Customer{ID: 1, Name: "Ana"}, CreditTotal: d("100"), CreditSaleCount: 1},
		{Customer: entity.Customer{ID: 2, Name: "Beto"}},
		{Customer: entity.Customer{ID: 3, Name: "Carla"}, CreditTotal: d("500"), PaymentsTotal: d("500"), CreditSaleCount: 2},
		{Customer: entity.Customer{ID: 4, Name: "Dora"}, PaymentsTotal: d("200")},
	}, nil)

	list, err := s.uc.ListAccounts(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(list, 3)
	s.Equal("Ana", list[0].Customer.Name)
	s.Equal("Carla", list[1].Customer.Name)
	s.Equal("Dora", list[2].Customer.Name)
	s.Equal(ledger.StandingInFavor, list[2].Balance.Standing)
}

func (s *AccountsSuite) TestStatementPDF_UsaPerfilDelNegocio() {
	s.customers.On("GetByID", s.ctx, int64(1)).Return(&entity.Customer{ID: 1}, nil)
	s.sales.On("ListByCustomer", s.ctx, int64(1)).Return(nil, nil)
	s.payments.On("ListByCustomer", s.ctx, int64(1)).Return(nil, nil)
	s.pdf.On("Generate", s.ctx, mock.MatchedBy(func(b *entity.Business) bool { return b.Name == "Mi Tienda" }), mock.Anything).
		Return([]byte("%PDF-1.4"), nil)

	pdf, name, err := s.uc.StatementPDF(s.ctx, 1)

	s.Require().NoError(err)
	s.Equal("estado-cuenta-1.pdf", name)
	s.Equal([]byte("%PDF-1.4"), pdf)
}

func (s *AccountsSuite) TestStatementPDF_ErrorDelGenerador() {
	s.customers.On("GetByID", s.ctx, int64(1)).Return(&entity.Customer{ID: 1}, nil)
	s.sales.On("ListByCustomer", s.ctx, int64(1)).Return(nil, nil)
	s.payments.On("ListByCustomer", s.ctx, int64(1)).Return(nil, nil)
	s.pdf.On("Generate", s.ctx, mock.Anything, mock.Anything).Return(nil, errors.New("sin fuente"))

	_, _, err := s.uc.StatementPDF(s.ctx, 1)
	s.ErrorContains(err, "sin fuente")
}
