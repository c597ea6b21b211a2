// Package accounts contiene los casos de uso de cartera: saldo por cliente,
// estado de cuenta (JSON y PDF) y el listado de cuentas activas.
package accounts

import (
	"context"
	"fmt"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/ports"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/ledger"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// BusinessProvider entrega el perfil del negocio creándolo si no existe.
type BusinessProvider interface {
	Ensure(ctx context.Context) (*entity.Business, error)
}

// AccountsUseCase calcula saldos y arma estados de cuenta.
//
// Los totales del saldo salen de LedgerRepository (sub-selects con COALESCE);
// el estado de cuenta suma sus propias líneas, de modo que total y detalle siempre cuadran.
type AccountsUseCase struct {
	ledgerRepo   repository.LedgerRepository
	customerRepo repository.CustomerRepository
	saleRepo     repository.SaleRepository
	paymentRepo  repository.PaymentRepository
	business     BusinessProvider
	pdf          ports.StatementPDFGenerator
}

// NewAccountsUseCase construye el caso de uso. pdf puede ser nil si no se exponen PDFs.
func NewAccountsUseCase(
	ledgerRepo repository.LedgerRepository,
	customerRepo repository.CustomerRepository,
	saleRepo repository.SaleRepository,
	paymentRepo repository.PaymentRepository,
	business BusinessProvider,
	pdf ports.StatementPDFGenerator,
) *AccountsUseCase {
	return &AccountsUseCase{
		ledgerRepo:   ledgerRepo,
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
		paymentRepo:  paymentRepo,
		business:     business,
		pdf:          pdf,
	}
}

// Balance saldo actual del cliente. Sin ventas ni abonos el saldo es 0 y el crédito
// disponible es el límite completo.
func (uc *AccountsUseCase) Balance(ctx context.Context, customerID int64) (*dto.BalanceResponse, error) {
	totals, err := uc.ledgerRepo.CustomerTotals(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("saldo cliente %d: %w", customerID, err)
	}
	if totals == nil {
		return nil, domain.ErrNotFound
	}
	b := ledger.ComputeBalance(totals.Customer.CreditLimit, totals.CreditTotal, totals.PaymentsTotal)
	out := dto.FromBalance(customerID, b)
	return &out, nil
}

// Statement estado de cuenta del cliente.
func (uc *AccountsUseCase) Statement(ctx context.Context, customerID int64) (*dto.StatementResponse, error) {
	st, err := uc.buildStatement(ctx, customerID)
	if err != nil {
		return nil, err
	}
	out := dto.FromStatement(st)
	return &out, nil
}

// StatementPDF renderiza el estado de cuenta con el encabezado del negocio.
// Devuelve el PDF y un nombre de archivo sugerido.
func (uc *AccountsUseCase) StatementPDF(ctx context.Context, customerID int64) ([]byte, string, error) {
	if uc.pdf == nil {
		return nil, "", fmt.Errorf("generador de PDF no configurado")
	}
	st, err := uc.buildStatement(ctx, customerID)
	if err != nil {
		return nil, "", err
	}
	business, err := uc.business.Ensure(ctx)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.pdf.Generate(ctx, business, st)
	if err != nil {
		return nil, "", fmt.Errorf("pdf estado de cuenta %d: %w", customerID, err)
	}
	return pdf, fmt.Sprintf("estado-cuenta-%d.pdf", customerID), nil
}

// ListAccounts clientes activos con saldo distinto de cero o con ventas a crédito,
// ordenados por nombre.
func (uc *AccountsUseCase) ListAccounts(ctx context.Context) ([]dto.AccountSummaryResponse, error) {
	all, err := uc.ledgerRepo.AllCustomerTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("listado de cuentas: %w", err)
	}
	summaries := make([]ledger.AccountSummary, 0, len(all))
	for _, t := range all {
		summaries = append(summaries, ledger.AccountSummary{
			Customer:        t.Customer,
			CreditSaleCount: t.CreditSaleCount,
			Balance:         ledger.ComputeBalance(t.Customer.CreditLimit, t.CreditTotal, t.PaymentsTotal),
		})
	}
	active := ledger.FilterActiveAccounts(summaries)
	items := make([]dto.AccountSummaryResponse, 0, len(active))
	for _, a := range active {
		items = append(items, dto.FromAccountSummary(a))
	}
	return items, nil
}

func (uc *AccountsUseCase) buildStatement(ctx context.Context, customerID int64) (ledger.Statement, error) {
	customer, err := uc.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return ledger.Statement{}, err
	}
	if customer == nil {
		return ledger.Statement{}, domain.ErrNotFound
	}
	sales, err := uc.saleRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return ledger.Statement{}, fmt.Errorf("ventas del cliente %d: %w", customerID, err)
	}
	payments, err := uc.paymentRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return ledger.Statement{}, fmt.Errorf("abonos del cliente %d: %w", customerID, err)
	}
	return ledger.BuildStatement(*customer, derefSales(sales), derefPayments(payments)), nil
}

func derefSales(in []*entity.Sale) []entity.Sale {
	out := make([]entity.Sale, 0, len(in))
	for _, s := range in {
		out = append(out, *s)
	}
	return out
}

func derefPayments(in []*entity.Payment) []entity.Payment {
	out := make([]entity.Payment, 0, len(in))
	for _, p := range in {
		out = append(out, *p)
	}
	return out
}
