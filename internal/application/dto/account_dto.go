package dto

import "github.com/shopspring/decimal"

// BalanceResponse saldo de un cliente. estado_cuenta: debe | saldo_a_favor | al_dia.
type BalanceResponse struct {
	CustomerID      int64           `json:"cliente_id"`
	CreditLimit     decimal.Decimal `json:"limite_credito"`
	CreditTotal     decimal.Decimal `json:"total_creditos"`
	PaymentsTotal   decimal.Decimal `json:"total_abonos"`
	Balance         decimal.Decimal `json:"saldo_actual"`
	AvailableCredit decimal.Decimal `json:"credito_disponible"`
	Standing        string          `json:"estado_cuenta"`
}

// StatementResponse estado de cuenta: ventas a crédito, abonos y totales.
type StatementResponse struct {
	Customer CustomerResponse  `json:"cliente"`
	Sales    []SaleResponse    `json:"ventas_credito"`
	Payments []PaymentResponse `json:"abonos"`
	Balance  BalanceResponse   `json:"resumen"`
}

// AccountSummaryResponse una fila del listado de cuentas.
type AccountSummaryResponse struct {
	Customer        CustomerResponse `json:"cliente"`
	CreditSaleCount int              `json:"cantidad_ventas_credito"`
	Balance         BalanceResponse  `json:"saldo"`
}
