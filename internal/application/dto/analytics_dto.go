package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/intellicollect-api/internal/domain/entity"
)

// AnalyticsSummary totales globales de la cartera.
type AnalyticsSummary struct {
	TotalCustomers  int             `json:"total_customers"`
	TotalInvoices   int             `json:"total_invoices"`
	TotalPayments   int             `json:"total_payments"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	PendingInvoices int             `json:"pending_invoices"`
	LastUpdated     time.Time       `json:"last_updated"`
}

// RevenueTrendParams query de GET /analytics/revenue/trend.
type RevenueTrendParams struct {
	Period string `query:"period" json:"period" validate:"omitempty,oneof=daily weekly monthly"`
	Months int    `query:"months" json:"months" validate:"gte=0,lte=120"`
}

// RevenueTrendResponse serie de ingresos.
type RevenueTrendResponse struct {
	TrendData    []entity.RevenuePoint `json:"trend_data"`
	Period       string                `json:"period"`
	TotalPeriods int                   `json:"total_periods"`
}

// InvoiceSummary conteos y sumas de las facturas de un cliente.
type InvoiceSummary struct {
	TotalInvoices     int             `json:"total_invoices"`
	PaidInvoices      int             `json:"paid_invoices"`
	PendingInvoices   int             `json:"pending_invoices"`
	OverdueInvoices   int             `json:"overdue_invoices"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	PaidAmount        decimal.Decimal `json:"paid_amount"`
	OutstandingAmount decimal.Decimal `json:"outstanding_amount"`
}

// RiskAssessment evaluación de riesgo presentada en el análisis de cliente.
type RiskAssessment struct {
	CurrentRiskLevel     entity.RiskLevel `json:"current_risk_level"`
	RiskFactors          []string         `json:"risk_factors"`
	PaymentBehaviorScore int              `json:"payment_behavior_score"`
	Recommendations      []string         `json:"recommendations"`
}

// CustomerAnalytics análisis completo de un cliente.
type CustomerAnalytics struct {
	Customer       entity.Customer  `json:"customer"`
	PaymentHistory []entity.Payment `json:"payment_history"`
	InvoiceSummary InvoiceSummary   `json:"invoice_summary"`
	RiskAssessment RiskAssessment   `json:"risk_assessment"`
}
