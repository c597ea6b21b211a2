// Package ledger contiene la aritmética de cartera: saldo de un cliente,
// crédito disponible, estado de cuenta y reglas de tipo/medio/estado de una venta.
// No accede a la base de datos; los repositorios entregan los montos ya leídos.
package ledger

import "github.com/shopspring/decimal"

// Situación de la cuenta según el signo del saldo.
const (
	StandingOwes    = "debe"
	StandingInFavor = "saldo_a_favor"
	StandingEven    = "al_dia"
)

// Balance saldo de un cliente.
//
//	Balance         = CreditTotal - PaymentsTotal
//	AvailableCredit = CreditLimit - max(0, Balance)
//
// AvailableCredit no se recorta: con saldo a favor es igual al límite.
type Balance struct {
	CreditLimit     decimal.Decimal
	CreditTotal     decimal.Decimal // ventas a crédito completadas
	PaymentsTotal   decimal.Decimal // abonos
	Balance         decimal.Decimal
	AvailableCredit decimal.Decimal
}

// ComputeBalance calcula el saldo con aritmética decimal exacta.
func ComputeBalance(creditLimit, creditTotal, paymentsTotal decimal.Decimal) Balance {
	balance := creditTotal.Sub(paymentsTotal)
	return Balance{
		CreditLimit:     creditLimit,
		CreditTotal:     creditTotal,
		PaymentsTotal:   paymentsTotal,
		Balance:         balance,
		AvailableCredit: creditLimit.Sub(decimal.Max(decimal.Zero, balance)),
	}
}

// Standing devuelve "debe", "saldo_a_favor" o "al_dia".
func (b Balance) Standing() string {
	switch b.Balance.Sign() {
	case 1:
		return StandingOwes
	case -1:
		return StandingInFavor
	default:
		return StandingEven
	}
}

// OrZero convierte un monto ausente (NULL en la DB) en cero.
func OrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
