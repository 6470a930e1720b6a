package dto

import "github.com/shopspring/decimal"

// DashboardParams query de GET /analytics/dashboard.
type DashboardParams struct {
	PeriodDays int `query:"period_days" json:"period_days" validate:"gte=0,lte=365"`
}

// RevenueMetrics ingresos del mes actual contra el anterior.
type RevenueMetrics struct {
	CurrentMonth  decimal.Decimal `json:"current_month"`
	PreviousMonth decimal.Decimal `json:"previous_month"`
	GrowthRate    float64         `json:"growth_rate"` // porcentaje, 1 decimal
	YTDRevenue    decimal.Decimal `json:"ytd_revenue"`
}

// CustomerMetrics métricas de clientes.
type CustomerMetrics struct {
	TotalCustomers        int     `json:"total_customers"`
	NewCustomersThisMonth int     `json:"new_customers_this_month"`
	ActiveCustomers       int     `json:"active_customers"`
	CustomerRetentionRate float64 `json:"customer_retention_rate"`
}

// InvoiceMetrics métricas de facturas.
type InvoiceMetrics struct {
	TotalInvoices      int     `json:"total_invoices"`
	PaidInvoices       int     `json:"paid_invoices"`
	PendingInvoices    int     `json:"pending_invoices"`
	OverdueInvoices    int     `json:"overdue_invoices"`
	AveragePaymentTime float64 `json:"average_payment_time"` // días
}

// RiskMetrics histograma de clientes por nivel de riesgo.
type RiskMetrics struct {
	LowRiskCustomers      int `json:"low_risk_customers"`
	MediumRiskCustomers   int `json:"medium_risk_customers"`
	HighRiskCustomers     int `json:"high_risk_customers"`
	CriticalRiskCustomers int `json:"critical_risk_customers"`
}

// DashboardAnalytics respuesta de GET /analytics/dashboard.
type DashboardAnalytics struct {
	Summary         AnalyticsSummary `json:"summary"`
	RevenueMetrics  RevenueMetrics   `json:"revenue_metrics"`
	CustomerMetrics CustomerMetrics  `json:"customer_metrics"`
	InvoiceMetrics  InvoiceMetrics   `json:"invoice_metrics"`
	RiskMetrics     RiskMetrics      `json:"risk_metrics"`
	PeriodDays      int              `json:"period_days"`
}
