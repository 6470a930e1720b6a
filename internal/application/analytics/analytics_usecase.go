package analytics

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/intellicollect-api/internal/application/dto"
	"github.com/jhoicas/intellicollect-api/internal/domain"
	"github.com/jhoicas/intellicollect-api/internal/domain/entity"
	"github.com/jhoicas/intellicollect-api/internal/domain/risk"
)

const defaultTrendPeriod = "monthly"

// RevenueTrend devuelve la serie de ingresos. months > 0 conserva los últimos N puntos.
func (uc *AnalyticsUseCase) RevenueTrend(ctx context.Context, params dto.RevenueTrendParams) (*dto.RevenueTrendResponse, error) {
	if err := uc.validator.Struct(params); err != nil {
		return nil, err
	}
	if params.Period == "" {
		params.Period = defaultTrendPeriod
	}
	points, err := uc.trend.List(ctx)
	if err != nil {
		return nil, err
	}
	if params.Months > 0 && params.Months < len(points) {
		points = points[len(points)-params.Months:]
	}
	return &dto.RevenueTrendResponse{
		TrendData:    points,
		Period:       params.Period,
		TotalPeriods: len(points),
	}, nil
}

// CustomerAnalytics historial de pagos, resumen de facturas y evaluación de riesgo
// de un cliente.
func (uc *AnalyticsUseCase) CustomerAnalytics(ctx context.Context, customerID string) (*dto.CustomerAnalytics, error) {
	snap, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}

	var customer *entity.Customer
	for i := range snap.customers {
		if snap.customers[i].ID == customerID {
			customer = &snap.customers[i]
			break
		}
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}

	invoices := make([]entity.Invoice, 0)
	for _, inv := range snap.invoices {
		if inv.CustomerID == customerID {
			invoices = append(invoices, inv)
		}
	}
	payments := make([]entity.Payment, 0)
	for _, p := range snap.payments {
		if p.CustomerID == customerID {
			payments = append(payments, p)
		}
	}

	level := customer.RiskLevel
	if level == entity.RiskUnset {
		level = entity.RiskLow
	}
	return &dto.CustomerAnalytics{
		Customer:       *customer,
		PaymentHistory: payments,
		InvoiceSummary: invoiceSummaryOf(invoices),
		RiskAssessment: dto.RiskAssessment{
			CurrentRiskLevel:     level,
			RiskFactors:          risk.Factors(invoices, customer.OutstandingAmount),
			PaymentBehaviorScore: risk.PaymentScore(invoices),
			Recommendations:      risk.Recommendations(invoices, customer.OutstandingAmount),
		},
	}, nil
}

func invoiceSummaryOf(invoices []entity.Invoice) dto.InvoiceSummary {
	s := dto.InvoiceSummary{
		TotalInvoices:     len(invoices),
		PendingInvoices:   countPending(invoices),
		OverdueInvoices:   risk.CountOverdue(invoices),
		TotalAmount:       decimal.Zero,
		PaidAmount:        decimal.Zero,
		OutstandingAmount: decimal.Zero,
	}
	for _, inv := range invoices {
		if inv.PaymentStatus == entity.PaymentPaid {
			s.PaidInvoices++
		}
		s.TotalAmount = s.TotalAmount.Add(inv.TotalAmount)
		s.PaidAmount = s.PaidAmount.Add(inv.PaidAmount)
		s.OutstandingAmount = s.OutstandingAmount.Add(inv.OutstandingAmount)
	}
	return s
}
