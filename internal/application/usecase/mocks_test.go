package usecase_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// ── CustomerRepository ────────────────────────────────────────────────────────

type mockCustomerRepo struct{ mock.Mock }

func (m *mockCustomerRepo) Create(ctx context.Context, c *entity.Customer) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entity.Customer)
	return c, args.Error(1)
}

func (m *mockCustomerRepo) ListActive(ctx context.Context) ([]*entity.Customer, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.Customer)
	return list, args.Error(1)
}

func (m *mockCustomerRepo) Update(ctx context.Context, c *entity.Customer) (bool, error) {
	args := m.Called(ctx, c)
	return args.Bool(0), args.Error(1)
}

func (m *mockCustomerRepo) Deactivate(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// ── SaleRepository ────────────────────────────────────────────────────────────

type mockSaleRepo struct{ mock.Mock }

func (m *mockSaleRepo) Create(ctx context.Context, s *entity.Sale) (int64, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSaleRepo) GetByID(ctx context.Context, id int64) (*entity.SaleView, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*entity.SaleView)
	return v, args.Error(1)
}

func (m *mockSaleRepo) List(ctx context.Context) ([]*entity.SaleView, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.SaleView)
	return list, args.Error(1)
}

func (m *mockSaleRepo) ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Sale, error) {
	args := m.Called(ctx, customerID)
	list, _ := args.Get(0).([]*entity.Sale)
	return list, args.Error(1)
}

func (m *mockSaleRepo) ListPending(ctx context.Context) ([]*entity.SaleView, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.SaleView)
	return list, args.Error(1)
}

func (m *mockSaleRepo) Update(ctx context.Context, s *entity.Sale) (bool, error) {
	args := m.Called(ctx, s)
	return args.Bool(0), args.Error(1)
}

func (m *mockSaleRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockSaleRepo) CompletedTotals(ctx context.Context, from, to time.Time) (int, decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Int(0), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *mockSaleRepo) PendingTotals(ctx context.Context) (int, decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Get(1).(decimal.Decimal), args.Error(2)
}

// ── PaymentRepository ─────────────────────────────────────────────────────────

type mockPaymentRepo struct{ mock.Mock }

func (m *mockPaymentRepo) Create(ctx context.Context, p *entity.Payment) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPaymentRepo) ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Payment, error) {
	args := m.Called(ctx, customerID)
	list, _ := args.Get(0).([]*entity.Payment)
	return list, args.Error(1)
}

func (m *mockPaymentRepo) TotalByCustomer(ctx context.Context, customerID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// ── SupplierRepository / SupplierPaymentRepository / ProductRepository ───────

type mockSupplierRepo struct{ mock.Mock }

func (m *mockSupplierRepo) Create(ctx context.Context, s *entity.Supplier) (int64, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*entity.Supplier)
	return s, args.Error(1)
}

func (m *mockSupplierRepo) ListActive(ctx context.Context) ([]*entity.Supplier, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.Supplier)
	return list, args.Error(1)
}

func (m *mockSupplierRepo) Update(ctx context.Context, s *entity.Supplier) (bool, error) {
	args := m.Called(ctx, s)
	return args.Bool(0), args.Error(1)
}

func (m *mockSupplierRepo) Deactivate(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockSupplierPaymentRepo struct{ mock.Mock }

func (m *mockSupplierPaymentRepo) Create(ctx context.Context, p *entity.SupplierPayment) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSupplierPaymentRepo) ListBySupplier(ctx context.Context, supplierID int64) ([]*entity.SupplierPayment, error) {
	args := m.Called(ctx, supplierID)
	list, _ := args.Get(0).([]*entity.SupplierPayment)
	return list, args.Error(1)
}

func (m *mockSupplierPaymentRepo) TotalBySupplier(ctx context.Context, supplierID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, supplierID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockSupplierPaymentRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) Create(ctx context.Context, p *entity.Product) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*entity.Product)
	return p, args.Error(1)
}

func (m *mockProductRepo) ListActive(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.Product)
	return list, args.Error(1)
}

func (m *mockProductRepo) ListBySupplier(ctx context.Context, supplierID int64) ([]*entity.Product, error) {
	args := m.Called(ctx, supplierID)
	list, _ := args.Get(0).([]*entity.Product)
	return list, args.Error(1)
}

func (m *mockProductRepo) Update(ctx context.Context, p *entity.Product) (bool, error) {
	args := m.Called(ctx, p)
	return args.Bool(0), args.Error(1)
}

func (m *mockProductRepo) Deactivate(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// ── BusinessRepository ────────────────────────────────────────────────────────

type mockBusinessRepo struct{ mock.Mock }

func (m *mockBusinessRepo) FindFirst(ctx context.Context) (*entity.Business, error) {
	args := m.Called(ctx)
	b, _ := args.Get(0).(*entity.Business)
	return b, args.Error(1)
}

func (m *mockBusinessRepo) Create(ctx context.Context, b *entity.Business) (int64, error) {
	args := m.Called(ctx, b)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBusinessRepo) Update(ctx context.Context, b *entity.Business) (bool, error) {
	args := m.Called(ctx, b)
	return args.Bool(0), args.Error(1)
}

// ── TxRunner en memoria ───────────────────────────────────────────────────────

// fakeTx ejecuta fn con el Store de mocks y registra si hubo "commit".
type fakeTx struct {
	store     repository.Store
	committed bool
}

func (f *fakeTx) Run(_ context.Context, fn func(repository.Store) error) error {
	if err := fn(f.store); err != nil {
		return err
	}
	f.committed = true
	return nil
}
