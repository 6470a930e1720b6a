// Package risk contiene la heurística de riesgo de cobro y los indicadores derivados
// que acompañan el análisis de un cliente. Son funciones puras sobre las facturas.
package risk

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/intellicollect-api/internal/domain/entity"
)

// Umbrales de proporción de facturas vencidas (estrictamente mayor que).
const (
	criticalRatio = 0.7
	highRatio     = 0.4
	mediumRatio   = 0.2
)

var (
	highOutstanding     = decimal.NewFromInt(10000)
	creditLimitTrigger  = decimal.NewFromInt(20000)
	slowPaymentAvgDays  = 30.0
	noFactorsIdentified = "No significant risk factors identified"
)

// Classify clasifica según la proporción de vencidas; sin facturas el riesgo es bajo.
// El orden de evaluación importa: 0.70 exacto es high, no critical.
func Classify(overdue, total int) entity.RiskLevel {
	if total <= 0 {
		return entity.RiskLow
	}
	ratio := float64(overdue) / float64(total)
	switch {
	case ratio > criticalRatio:
		return entity.RiskCritical
	case ratio > highRatio:
		return entity.RiskHigh
	case ratio > mediumRatio:
		return entity.RiskMedium
	default:
		return entity.RiskLow
	}
}

// Assess aplica Classify sobre las facturas de un cliente.
func Assess(invoices []entity.Invoice) entity.RiskLevel {
	return Classify(CountOverdue(invoices), len(invoices))
}

// CountOverdue cuenta las facturas en estado overdue.
func CountOverdue(invoices []entity.Invoice) int {
	n := 0
	for i := range invoices {
		if invoices[i].Status == entity.InvoiceOverdue {
			n++
		}
	}
	return n
}

// AveragePaymentDays media de días entre emisión y pago de las facturas pagadas.
// ok es false si ninguna factura tiene fecha de pago.
func AveragePaymentDays(invoices []entity.Invoice) (avg float64, ok bool) {
	var sum, n int
	for i := range invoices {
		inv := &invoices[i]
		if inv.PaymentDate == nil || inv.PaymentDate.IsZero() {
			continue
		}
		sum += inv.InvoiceDate.DaysUntil(*inv.PaymentDate)
		n++
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

// Factors textos legibles que explican el riesgo del cliente.
func Factors(invoices []entity.Invoice, outstanding decimal.Decimal) []string {
	var factors []string
	if overdue := CountOverdue(invoices); overdue > 0 {
		suffix := ""
		if overdue > 1 {
			suffix = "s"
		}
		factors = append(factors, fmt.Sprintf("%d overdue invoice%s", overdue, suffix))
	}
	if outstanding.GreaterThan(highOutstanding) {
		factors = append(factors, "High outstanding amount")
	}
	if avg, ok := AveragePaymentDays(invoices); ok && avg > slowPaymentAvgDays {
		factors = append(factors, "Slow payment history")
	}
	if len(factors) == 0 {
		factors = append(factors, noFactorsIdentified)
	}
	return factors
}

// PaymentScore porcentaje (0-100) de facturas pagadas en o antes del vencimiento.
// Sin facturas devuelve 100.
func PaymentScore(invoices []entity.Invoice) int {
	if len(invoices) == 0 {
		return 100
	}
	onTime := 0
	for i := range invoices {
		if invoices[i].IsPaidOnTime() {
			onTime++
		}
	}
	return int(math.Round(float64(onTime) / float64(len(invoices)) * 100))
}

// Recommendations acciones sugeridas según vencidas y saldo pendiente.
func Recommendations(invoices []entity.Invoice, outstanding decimal.Decimal) []string {
	var recs []string
	if CountOverdue(invoices) > 0 {
		recs = append(recs, "Send immediate payment reminder", "Consider payment plan options")
	}
	if outstanding.GreaterThan(creditLimitTrigger) {
		recs = append(recs, "Require upfront payment for new orders", "Consider credit limit reduction")
	}
	if len(recs) == 0 {
		recs = append(recs, "Continue standard monitoring", "Maintain current payment terms")
	}
	return recs
}
