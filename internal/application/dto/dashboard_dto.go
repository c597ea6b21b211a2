package dto

import "github.com/shopspring/decimal"

// DashboardSummaryResponse respuesta de GET /api/dashboard/resumen.
type DashboardSummaryResponse struct {
	Today DailyStatsResponse `json:"ventas_hoy"`

	PendingCount int             `json:"pendientes_cantidad"`
	PendingTotal decimal.Decimal `json:"pendientes_total"`

	// Cartera: suma de saldos positivos de clientes activos.
	Receivables     decimal.Decimal `json:"cartera_por_cobrar"`
	DebtorCustomers int             `json:"clientes_con_deuda"`
}
