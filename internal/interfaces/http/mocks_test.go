package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
)

type mockAuth struct{ mock.Mock }

func (m *mockAuth) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*dto.LoginResponse)
	return out, args.Error(1)
}

func (m *mockAuth) Me(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	args := m.Called(ctx, userID)
	out, _ := args.Get(0).(*dto.UserResponse)
	return out, args.Error(1)
}

type mockCustomers struct{ mock.Mock }

func (m *mockCustomers) Create(ctx context.Context, in dto.CustomerRequest) (int64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCustomers) GetByID(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*dto.CustomerResponse)
	return out, args.Error(1)
}

func (m *mockCustomers) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]dto.CustomerResponse)
	return out, args.Error(1)
}

func (m *mockCustomers) Update(ctx context.Context, id int64, in dto.CustomerRequest) error {
	return m.Called(ctx, id, in).Error(0)
}

func (m *mockCustomers) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockAccounts struct{ mock.Mock }

func (m *mockAccounts) Balance(ctx context.Context, customerID int64) (*dto.BalanceResponse, error) {
	args := m.Called(ctx, customerID)
	out, _ := args.Get(0).(*dto.BalanceResponse)
	return out, args.Error(1)
}

func (m *mockAccounts) Statement(ctx context.Context, customerID int64) (*dto.StatementResponse, error) {
	args := m.Called(ctx, customerID)
	out, _ := args.Get(0).(*dto.StatementResponse)
	return out, args.Error(1)
}

func (m *mockAccounts) StatementPDF(ctx context.Context, customerID int64) ([]byte, string, error) {
	args := m.Called(ctx, customerID)
	out, _ := args.Get(0).([]byte)
	return out, args.String(1), args.Error(2)
}

func (m *mockAccounts) ListAccounts(ctx context.Context) ([]dto.AccountSummaryResponse, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]dto.AccountSummaryResponse)
	return out, args.Error(1)
}

type mockSales struct{ mock.Mock }

func (m *mockSales) Create(ctx context.Context, in dto.CreateSaleRequest) (int64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSales) GetByID(ctx context.Context, id int64) (*dto.SaleResponse, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*dto.SaleResponse)
	return out, args.Error(1)
}

func (m *mockSales) List(ctx context.Context) ([]dto.SaleResponse, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]dto.SaleResponse)
	return out, args.Error(1)
}

func (m *mockSales) ListPending(ctx context.Context) ([]dto.SaleResponse, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]dto.SaleResponse)
	return out, args.Error(1)
}

func (m *mockSales) ListByCustomer(ctx context.Context, customerID int64) ([]dto.SaleResponse, error) {
	args := m.Called(ctx, customerID)
	out, _ := args.Get(0).([]dto.SaleResponse)
	return out, args.Error(1)
}

func (m *mockSales) Update(ctx context.Context, id int64, in dto.UpdateSaleRequest) error {
	return m.Called(ctx, id, in).Error(0)
}

func (m *mockSales) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockPayments struct{ mock.Mock }

func (m *mockPayments) Create(ctx context.Context, in dto.CreatePaymentRequest) (int64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPayments) ListByCustomer(ctx context.Context, customerID int64) ([]dto.PaymentResponse, error) {
	args := m.Called(ctx, customerID)
	out, _ := args.Get(0).([]dto.PaymentResponse)
	return out, args.Error(1)
}

func (m *mockPayments) TotalByCustomer(ctx context.Context, customerID int64) (*dto.TotalResponse, error) {
	args := m.Called(ctx, customerID)
	out, _ := args.Get(0).(*dto.TotalResponse)
	return out, args.Error(1)
}

type mockDashboard struct{ mock.Mock }

func (m *mockDashboard) TodayStats(ctx context.Context) (*dto.DailyStatsResponse, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).(*dto.DailyStatsResponse)
	return out, args.Error(1)
}

func (m *mockDashboard) GetSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).(*dto.DashboardSummaryResponse)
	return out, args.Error(1)
}

type mockBusiness struct{ mock.Mock }

func (m *mockBusiness) Get(ctx context.Context) (*dto.BusinessResponse, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).(*dto.BusinessResponse)
	return out, args.Error(1)
}

func (m *mockBusiness) Update(ctx context.Context, id int64, in dto.UpdateBusinessRequest) error {
	return m.Called(ctx, id, in).Error(0)
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }
