package http

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
)

// Contratos que consumen los handlers. Los implementan los casos de uso de
// internal/application; las interfaces permiten probar los handlers con mocks.

type AuthService interface {
	Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error)
	Me(ctx context.Context, userID int64) (*dto.UserResponse, error)
}

type CustomerService interface {
	Create(ctx context.Context, in dto.CustomerRequest) (int64, error)
	GetByID(ctx context.Context, id int64) (*dto.CustomerResponse, error)
	List(ctx context.Context) ([]dto.CustomerResponse, error)
	Update(ctx context.Context, id int64, in dto.CustomerRequest) error
	Delete(ctx context.Context, id int64) error
}

type AccountService interface {
	Balance(ctx context.Context, customerID int64) (*dto.BalanceResponse, error)
	Statement(ctx context.Context, customerID int64) (*dto.StatementResponse, error)
	StatementPDF(ctx context.Context, customerID int64) ([]byte, string, error)
	ListAccounts(ctx context.Context) ([]dto.AccountSummaryResponse, error)
}

type SaleService interface {
	Create(ctx context.Context, in dto.CreateSaleRequest) (int64, error)
	GetByID(ctx context.Context, id int64) (*dto.SaleResponse, error)
	List(ctx context.Context) ([]dto.SaleResponse, error)
	ListPending(ctx context.Context) ([]dto.SaleResponse, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]dto.SaleResponse, error)
	Update(ctx context.Context, id int64, in dto.UpdateSaleRequest) error
	Delete(ctx context.Context, id int64) error
}

type PaymentService interface {
	Create(ctx context.Context, in dto.CreatePaymentRequest) (int64, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]dto.PaymentResponse, error)
	TotalByCustomer(ctx context.Context, customerID int64) (*dto.TotalResponse, error)
}

type SupplierService interface {
	Create(ctx context.Context, in dto.SupplierRequest) (int64, error)
	GetByID(ctx context.Context, id int64) (*dto.SupplierResponse, error)
	List(ctx context.Context) ([]dto.SupplierResponse, error)
	Update(ctx context.Context, id int64, in dto.SupplierRequest) error
	Delete(ctx context.Context, id int64) error
}

type SupplierPaymentService interface {
	Create(ctx context.Context, in dto.CreateSupplierPaymentRequest) (int64, error)
	ListBySupplier(ctx context.Context, supplierID int64) ([]dto.SupplierPaymentResponse, error)
	TotalBySupplier(ctx context.Context, supplierID int64) (*dto.TotalResponse, error)
	Delete(ctx context.Context, id int64) error
}

type ProductService interface {
	Create(ctx context.Context, in dto.ProductRequest) (int64, error)
	GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error)
	List(ctx context.Context) ([]dto.ProductResponse, error)
	ListBySupplier(ctx context.Context, supplierID int64) ([]dto.ProductResponse, error)
	Update(ctx context.Context, id int64, in dto.ProductRequest) error
	Delete(ctx context.Context, id int64) error
}

type BusinessService interface {
	Get(ctx context.Context) (*dto.BusinessResponse, error)
	Update(ctx context.Context, id int64, in dto.UpdateBusinessRequest) error
}

type DashboardService interface {
	TodayStats(ctx context.Context) (*dto.DailyStatsResponse, error)
	GetSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error)
}

// Pinger verifica la conexión a la base de datos (lo cumple *pgxpool.Pool).
type Pinger interface {
	Ping(ctx context.Context) error
}
