package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// Statement estado de cuenta de un cliente.
type Statement struct {
	Customer    entity.Customer
	CreditSales []entity.Sale    // más reciente primero
	Payments    []entity.Payment // más reciente primero
	Balance
}

// BuildStatement arma el estado de cuenta a partir del historial del cliente.
// Solo las ventas a crédito completadas entran al saldo; el resto se descarta.
// Los totales se suman desde las líneas, así que siempre cuadran con ellas.
func BuildStatement(customer entity.Customer, sales []entity.Sale, payments []entity.Payment) Statement {
	credit := make([]entity.Sale, 0, len(sales))
	creditTotal := decimal.Zero
	for _, s := range sales {
		if !CountsTowardsBalance(s) {
			continue
		}
		credit = append(credit, s)
		creditTotal = creditTotal.Add(s.Total)
	}

	paid := make([]entity.Payment, len(payments))
	copy(paid, payments)
	paymentsTotal := decimal.Zero
	for _, p := range paid {
		paymentsTotal = paymentsTotal.Add(p.Amount)
	}

	sort.SliceStable(credit, func(i, j int) bool {
		if credit[i].Date.Equal(credit[j].Date) {
			return credit[i].ID > credit[j].ID
		}
		return credit[i].Date.After(credit[j].Date)
	})
	sort.SliceStable(paid, func(i, j int) bool {
		if paid[i].Date.Equal(paid[j].Date) {
			return paid[i].ID > paid[j].ID
		}
		return paid[i].Date.After(paid[j].Date)
	})

	return Statement{
		Customer:    customer,
		CreditSales: credit,
		Payments:    paid,
		Balance:     ComputeBalance(customer.CreditLimit, creditTotal, paymentsTotal),
	}
}

// CountsTowardsBalance indica si la venta suma a la deuda del cliente.
func CountsTowardsBalance(s entity.Sale) bool {
	return s.Type == entity.SaleTypeCredit && s.Status == entity.SaleStatusCompleted
}

// AccountSummary fila del listado de cuentas.
type AccountSummary struct {
	Customer        entity.Customer
	CreditSaleCount int
	Balance
}

// IsActiveAccount: saldo distinto de cero o con historial de ventas a crédito.
func (a AccountSummary) IsActiveAccount() bool {
	return !a.Balance.Balance.IsZero() || a.CreditSaleCount > 0
}

// FilterActiveAccounts conserva el orden de entrada.
func FilterActiveAccounts(in []AccountSummary) []AccountSummary {
	out := make([]AccountSummary, 0, len(in))
	for _, a := range in {
		if a.IsActiveAccount() {
			out = append(out, a)
		}
	}
	return out
}
