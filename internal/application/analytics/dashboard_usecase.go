// Package analytics contiene el agregador de analítica de cartera: resumen global,
// dashboard, tendencia de ingresos y análisis por cliente. Todo se recalcula en cada
// llamada a partir del estado actual de los repositorios.
package analytics

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/intellicollect-api/internal/application/dto"
	"github.com/jhoicas/intellicollect-api/internal/application/validation"
	"github.com/jhoicas/intellicollect-api/internal/domain/entity"
	"github.com/jhoicas/intellicollect-api/internal/domain/repository"
	"github.com/jhoicas/intellicollect-api/internal/domain/risk"
)

const defaultPeriodDays = 30

// AnalyticsUseCase agregador de métricas. No guarda resultados.
type AnalyticsUseCase struct {
	customers repository.CustomerRepository
	invoices  repository.InvoiceRepository
	payments  repository.PaymentRepository
	trend     repository.RevenueTrendRepository
	validator *validation.Validator
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(
	customers repository.CustomerRepository,
	invoices repository.InvoiceRepository,
	payments repository.PaymentRepository,
	trend repository.RevenueTrendRepository,
	validator *validation.Validator,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{customers: customers, invoices: invoices, payments: payments, trend: trend, validator: validator}
}

// snapshot lectura de todas las colecciones usadas por los reportes.
type snapshot struct {
	customers []entity.Customer
	invoices  []entity.Invoice
	payments  []entity.Payment
	trend     []entity.RevenuePoint
}

// load lee las cuatro colecciones en paralelo.
func (uc *AnalyticsUseCase) load(ctx context.Context) (*snapshot, error) {
	type customersResult struct {
		recs []entity.Customer
		err  error
	}
	type invoicesResult struct {
		recs []entity.Invoice
		err  error
	}
	type paymentsResult struct {
		recs []entity.Payment
		err  error
	}
	type trendResult struct {
		recs []entity.RevenuePoint
		err  error
	}

	customersCh := make(chan customersResult, 1)
	invoicesCh := make(chan invoicesResult, 1)
	paymentsCh := make(chan paymentsResult, 1)
	trendCh := make(chan trendResult, 1)

	go func() {
		recs, err := uc.customers.List(ctx)
		customersCh <- customersResult{recs, err}
	}()
	go func() {
		recs, err := uc.invoices.List(ctx)
		invoicesCh <- invoicesResult{recs, err}
	}()
	go func() {
		recs, err := uc.payments.List(ctx)
		paymentsCh <- paymentsResult{recs, err}
	}()
	go func() {
		recs, err := uc.trend.List(ctx)
		trendCh <- trendResult{recs, err}
	}()

	customers := <-customersCh
	invoices := <-invoicesCh
	payments := <-paymentsCh
	trend := <-trendCh

	if customers.err != nil {
		return nil, fmt.Errorf("analítica: clientes: %w", customers.err)
	}
	if invoices.err != nil {
		return nil, fmt.Errorf("analítica: facturas: %w", invoices.err)
	}
	if payments.err != nil {
		return nil, fmt.Errorf("analítica: pagos: %w", payments.err)
	}
	if trend.err != nil {
		return nil, fmt.Errorf("analítica: tendencia de ingresos: %w", trend.err)
	}
	return &snapshot{
		customers: customers.recs,
		invoices:  invoices.recs,
		payments:  payments.recs,
		trend:     trend.recs,
	}, nil
}

// Summary totales globales: clientes, facturas, pagos, ingresos (suma de pagos) y
// facturas pendientes (sent o pending).
func (uc *AnalyticsUseCase) Summary(ctx context.Context) (*dto.AnalyticsSummary, error) {
	snap, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	s := summaryOf(snap, time.Now().UTC())
	return &s, nil
}

// Dashboard métricas del tablero. Los ingresos salen de la serie precalculada; el
// resto se calcula sobre los datos vivos.
func (uc *AnalyticsUseCase) Dashboard(ctx context.Context, params dto.DashboardParams) (*dto.DashboardAnalytics, error) {
	if err := uc.validator.Struct(params); err != nil {
		return nil, err
	}
	if params.PeriodDays <= 0 {
		params.PeriodDays = defaultPeriodDays
	}
	snap, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &dto.DashboardAnalytics{
		Summary:         summaryOf(snap, now),
		RevenueMetrics:  revenueMetricsOf(snap.trend),
		CustomerMetrics: customerMetricsOf(snap.customers, now),
		InvoiceMetrics:  invoiceMetricsOf(snap.invoices),
		RiskMetrics:     riskMetricsOf(snap.customers),
		PeriodDays:      params.PeriodDays,
	}, nil
}

func summaryOf(snap *snapshot, now time.Time) dto.AnalyticsSummary {
	revenue := decimal.Zero
	for _, p := range snap.payments {
		revenue = revenue.Add(p.Amount)
	}
	return dto.AnalyticsSummary{
		TotalCustomers:  len(snap.customers),
		TotalInvoices:   len(snap.invoices),
		TotalPayments:   len(snap.payments),
		TotalRevenue:    revenue,
		PendingInvoices: countPending(snap.invoices),
		LastUpdated:     now,
	}
}

func revenueMetricsOf(trend []entity.RevenuePoint) dto.RevenueMetrics {
	m := dto.RevenueMetrics{
		CurrentMonth:  decimal.Zero,
		PreviousMonth: decimal.Zero,
		YTDRevenue:    decimal.Zero,
	}
	if len(trend) == 0 {
		return m
	}
	latest := trend[len(trend)-1]
	m.CurrentMonth = latest.Revenue
	if len(trend) > 1 {
		m.PreviousMonth = trend[len(trend)-2].Revenue
	}
	if !m.PreviousMonth.IsZero() {
		growth, _ := m.CurrentMonth.Sub(m.PreviousMonth).Div(m.PreviousMonth).Mul(decimal.NewFromInt(100)).Round(1).Float64()
		m.GrowthRate = growth
	}
	year := latest.Date.Year()
	for _, p := range trend {
		if p.Date.Year() == year {
			m.YTDRevenue = m.YTDRevenue.Add(p.Revenue)
		}
	}
	return m
}

func customerMetricsOf(customers []entity.Customer, now time.Time) dto.CustomerMetrics {
	m := dto.CustomerMetrics{TotalCustomers: len(customers)}
	for _, c := range customers {
		if c.Status == entity.CustomerActive {
			m.ActiveCustomers++
		}
		if c.CreatedDate.Year() == now.Year() && c.CreatedDate.Month() == now.Month() {
			m.NewCustomersThisMonth++
		}
	}
	if m.TotalCustomers > 0 {
		m.CustomerRetentionRate = round1(float64(m.ActiveCustomers) / float64(m.TotalCustomers) * 100)
	}
	return m
}

func invoiceMetricsOf(invoices []entity.Invoice) dto.InvoiceMetrics {
	m := dto.InvoiceMetrics{
		TotalInvoices:   len(invoices),
		PendingInvoices: countPending(invoices),
		OverdueInvoices: risk.CountOverdue(invoices),
	}
	for _, inv := range invoices {
		if inv.PaymentStatus == entity.PaymentPaid {
			m.PaidInvoices++
		}
	}
	if avg, ok := risk.AveragePaymentDays(invoices); ok {
		m.AveragePaymentTime = round1(avg)
	}
	return m
}

func riskMetricsOf(customers []entity.Customer) dto.RiskMetrics {
	var m dto.RiskMetrics
	for _, c := range customers {
		switch c.RiskLevel {
		case entity.RiskLow:
			m.LowRiskCustomers++
		case entity.RiskMedium:
			m.MediumRiskCustomers++
		case entity.RiskHigh:
			m.HighRiskCustomers++
		case entity.RiskCritical:
			m.CriticalRiskCustomers++
		}
	}
	return m
}

func countPending(invoices []entity.Invoice) int {
	n := 0
	for _, inv := range invoices {
		if inv.Status == entity.InvoiceSent || inv.Status == entity.InvoicePending {
			n++
		}
	}
	return n
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
