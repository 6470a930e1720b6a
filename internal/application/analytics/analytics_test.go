package analytics_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/intellicollect-api/internal/application/analytics"
	"github.com/jhoicas/intellicollect-api/internal/application/dto"
	"github.com/jhoicas/intellicollect-api/internal/application/validation"
	"github.com/jhoicas/intellicollect-api/internal/domain"
	"github.com/jhoicas/intellicollect-api/internal/domain/entity"
	"github.com/jhoicas/intellicollect-api/internal/infrastructure/kvstore"
	"github.com/jhoicas/intellicollect-api/internal/infrastructure/seed"
)

type env struct {
	uc        *analytics.AnalyticsUseCase
	customers *kvstore.CustomerRepo
	invoices  *kvstore.InvoiceRepo
}

func newSeededEnv(t *testing.T) env {
	t.Helper()
	backend, err := kvstore.OpenBadger("", true, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })
	store := kvstore.New(backend, "test", zerolog.Nop())
	_, err = seed.Initialize(context.Background(), store, zerolog.Nop())
	require.NoError(t, err)

	customers := kvstore.NewCustomerRepo(store)
	invoices := kvstore.NewInvoiceRepo(store)
	return env{
		uc: analytics.NewAnalyticsUseCase(
			customers, invoices, kvstore.NewPaymentRepo(store), kvstore.NewRevenueTrendRepo(store),
			validation.New(),
		),
		customers: customers,
		invoices:  invoices,
	}
}

func TestSummary_FromSeed(t *testing.T) {
	e := newSeededEnv(t)

	s, err := e.uc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, s.TotalCustomers)
	assert.Equal(t, 8, s.TotalInvoices)
	assert.Equal(t, 3, s.TotalPayments)
	assert.Equal(t, "19200", s.TotalRevenue.String())
	assert.Equal(t, 3, s.PendingInvoices)
	assert.False(t, s.LastUpdated.IsZero())
}

func TestDashboard_FromSeed(t *testing.T) {
	e := newSeededEnv(t)

	d, err := e.uc.Dashboard(context.Background(), dto.DashboardParams{})
	require.NoError(t, err)

	assert.Equal(t, 30, d.PeriodDays)
	assert.Equal(t, "17500", d.RevenueMetrics.CurrentMonth.String())
	assert.Equal(t, "12000", d.RevenueMetrics.PreviousMonth.String())
	assert.InDelta(t, 45.8, d.RevenueMetrics.GrowthRate, 0.0001)
	assert.Equal(t, "83500", d.RevenueMetrics.YTDRevenue.String())

	assert.Equal(t, 12, d.CustomerMetrics.TotalCustomers)
	assert.Equal(t, 9, d.CustomerMetrics.ActiveCustomers)
	assert.InDelta(t, 75.0, d.CustomerMetrics.CustomerRetentionRate, 0.0001)

	assert.Equal(t, 2, d.InvoiceMetrics.PaidInvoices)
	assert.Equal(t, 3, d.InvoiceMetrics.OverdueInvoices)
	assert.Equal(t, 3, d.InvoiceMetrics.PendingInvoices)
	assert.InDelta(t, 14.0, d.InvoiceMetrics.AveragePaymentTime, 0.0001)

	assert.Equal(t, dto.RiskMetrics{
		LowRiskCustomers:      6,
		MediumRiskCustomers:   3,
		HighRiskCustomers:     2,
		CriticalRiskCustomers: 1,
	}, d.RiskMetrics)
}

func TestDashboard_ReflectsLiveChanges(t *testing.T) {
	e := newSeededEnv(t)
	ctx := context.Background()
	require.NoError(t, e.customers.Create(ctx, &entity.Customer{Name: "Nuevo", Email: "n@n.io"}))

	d, err := e.uc.Dashboard(ctx, dto.DashboardParams{PeriodDays: 7})
	require.NoError(t, err)
	assert.Equal(t, 13, d.CustomerMetrics.TotalCustomers)
	assert.Equal(t, 1, d.CustomerMetrics.NewCustomersThisMonth)
	assert.Equal(t, 7, d.RiskMetrics.LowRiskCustomers)
	assert.Equal(t, 7, d.PeriodDays)
}

func TestRevenueTrend(t *testing.T) {
	e := newSeededEnv(t)
	ctx := context.Background()

	all, err := e.uc.RevenueTrend(ctx, dto.RevenueTrendParams{})
	require.NoError(t, err)
	assert.Equal(t, "monthly", all.Period)
	assert.Equal(t, 6, all.TotalPeriods)
	assert.Equal(t, "2024-04", all.TrendData[0].Period)

	last3, err := e.uc.RevenueTrend(ctx, dto.RevenueTrendParams{Period: "weekly", Months: 3})
	require.NoError(t, err)
	assert.Equal(t, "weekly", last3.Period)
	require.Len(t, last3.TrendData, 3)
	assert.Equal(t, "2024-07", last3.TrendData[0].Period)
}

func TestCustomerAnalytics(t *testing.T) {
	e := newSeededEnv(t)

	a, err := e.uc.CustomerAnalytics(context.Background(), "cust-003")
	require.NoError(t, err)

	assert.Equal(t, "Global Manufacturing", a.Customer.Name)
	require.Len(t, a.PaymentHistory, 1)
	assert.Equal(t, "pay-002", a.PaymentHistory[0].ID)

	assert.Equal(t, 1, a.InvoiceSummary.TotalInvoices)
	assert.Equal(t, 1, a.InvoiceSummary.OverdueInvoices)
	assert.Equal(t, "25000", a.InvoiceSummary.TotalAmount.String())
	assert.Equal(t, "10000", a.InvoiceSummary.PaidAmount.String())
	assert.Equal(t, "15000", a.InvoiceSummary.OutstandingAmount.String())

	assert.Equal(t, entity.RiskHigh, a.RiskAssessment.CurrentRiskLevel)
	assert.Equal(t, []string{"1 overdue invoice", "High outstanding amount"}, a.RiskAssessment.RiskFactors)
	assert.Equal(t, 0, a.RiskAssessment.PaymentBehaviorScore)
	assert.Equal(t, []string{"Send immediate payment reminder", "Consider payment plan options"}, a.RiskAssessment.Recommendations)
}

func TestCustomerAnalytics_NotFound(t *testing.T) {
	e := newSeededEnv(t)
	_, err := e.uc.CustomerAnalytics(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestAnalytics_InvalidParams(t *testing.T) {
	e := newSeededEnv(t)
	ctx := context.Background()

	_, err := e.uc.RevenueTrend(ctx, dto.RevenueTrendParams{Period: "yearly"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = e.uc.Dashboard(ctx, dto.DashboardParams{PeriodDays: 400})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
