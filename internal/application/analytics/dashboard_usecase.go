// Package analytics contiene los agregados diarios de ventas y el resumen del dashboard.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain/ledger"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// DashboardUseCase genera las estadísticas del día y el resumen de cartera.
//
// Fuente de datos: SaleRepository y LedgerRepository (consultas read-only).
type DashboardUseCase struct {
	saleRepo   repository.SaleRepository
	ledgerRepo repository.LedgerRepository
	now        func() time.Time
}

// NewDashboardUseCase construye el caso de uso con el reloj del servidor.
func NewDashboardUseCase(saleRepo repository.SaleRepository, ledgerRepo repository.LedgerRepository) *DashboardUseCase {
	return NewDashboardUseCaseWithClock(saleRepo, ledgerRepo, time.Now)
}

// NewDashboardUseCaseWithClock permite fijar "ahora" (tests).
func NewDashboardUseCaseWithClock(saleRepo repository.SaleRepository, ledgerRepo repository.LedgerRepository, now func() time.Time) *DashboardUseCase {
	return &DashboardUseCase{saleRepo: saleRepo, ledgerRepo: ledgerRepo, now: now}
}

// DayRange devuelve [00:00 de t, 00:00 del día siguiente) en la zona de t.
// Se usa AddDate y no +24h para que los días con cambio de horario queden completos.
func DayRange(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// TodayStats cantidad y total de ventas completadas hoy. Sin ventas devuelve ceros.
func (uc *DashboardUseCase) TodayStats(ctx context.Context) (*dto.DailyStatsResponse, error) {
	start, end := DayRange(uc.now())
	count, total, err := uc.saleRepo.CompletedTotals(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("estadísticas del día: %w", err)
	}
	return &dto.DailyStatsResponse{
		Date:  start.Format("2006-01-02"),
		Count: count,
		Total: total.Round(2),
	}, nil
}

// GetSummary construye el resumen del dashboard.
//
// Tres llamadas en paralelo:
//  1. CompletedTotals(hoy)  → ventas del día
//  2. PendingTotals         → ventas pendientes por cobrar
//  3. AllCustomerTotals     → cartera (saldos positivos)
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	type todayResult struct {
		stats *dto.DailyStatsResponse
		err   error
	}
	type totalsResult struct {
		count int
		total decimal.Decimal
		err   error
	}
	type receivablesResult struct {
		total   decimal.Decimal
		debtors int
		err     error
	}

	todayCh := make(chan todayResult, 1)
	pendingCh := make(chan totalsResult, 1)
	receivablesCh := make(chan receivablesResult, 1)

	go func() {
		stats, err := uc.TodayStats(ctx)
		todayCh <- todayResult{stats, err}
	}()
	go func() {
		count, total, err := uc.saleRepo.PendingTotals(ctx)
		pendingCh <- totalsResult{count, total, err}
	}()
	go func() {
		total, debtors, err := uc.receivables(ctx)
		receivablesCh <- receivablesResult{total, debtors, err}
	}()

	today := <-todayCh
	pending := <-pendingCh
	rec := <-receivablesCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: %w", today.err)
	}
	if pending.err != nil {
		return nil, fmt.Errorf("dashboard: pendientes: %w", pending.err)
	}
	if rec.err != nil {
		return nil, fmt.Errorf("dashboard: cartera: %w", rec.err)
	}

	return &dto.DashboardSummaryResponse{
		Today:           *today.stats,
		PendingCount:    pending.count,
		PendingTotal:    pending.total.Round(2),
		Receivables:     rec.total.Round(2),
		DebtorCustomers: rec.debtors,
	}, nil
}

// receivables suma los saldos positivos; los saldos a favor no restan cartera.
func (uc *DashboardUseCase) receivables(ctx context.Context) (decimal.Decimal, int, error) {
	all, err := uc.ledgerRepo.AllCustomerTotals(ctx)
	if err != nil {
		return decimal.Zero, 0, err
	}
	total := decimal.Zero
	debtors := 0
	for _, t := range all {
		b := ledger.ComputeBalance(t.Customer.CreditLimit, t.CreditTotal, t.PaymentsTotal)
		if b.Balance.IsPositive() {
			total = total.Add(b.Balance)
			debtors++
		}
	}
	return total, debtors, nil
}
