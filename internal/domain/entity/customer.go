package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerStatus estado del ciclo de vida del cliente.
type CustomerStatus string

const (
	CustomerActive    CustomerStatus = "active"
	CustomerInactive  CustomerStatus = "inactive"
	CustomerPending   CustomerStatus = "pending"
	CustomerSuspended CustomerStatus = "suspended"
)

// RiskLevel categoría de riesgo de cobro. RiskUnset indica que nunca se evaluó.
type RiskLevel string

const (
	RiskUnset    RiskLevel = ""
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Customer representa un cliente de cartera.
//
// TotalInvoices y OutstandingAmount son agregados desnormalizados: deben ser siempre
// iguales al conteo y a la suma de saldos de sus facturas. Solo los recalcula el
// repositorio de facturas.
type Customer struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	Phone             string          `json:"phone,omitempty"`
	Address           string          `json:"address,omitempty"`
	Company           string          `json:"company,omitempty"`
	Industry          string          `json:"industry,omitempty"`
	Status            CustomerStatus  `json:"status"`
	RiskLevel         RiskLevel       `json:"risk_level,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	CreatedDate       Date            `json:"created_date"`
	TotalInvoices     int             `json:"total_invoices"`
	OutstandingAmount decimal.Decimal `json:"outstanding_amount"`
	PaymentHistory    string          `json:"payment_history,omitempty"`
}

// CustomerPatch actualización parcial; los campos nil no se modifican.
type CustomerPatch struct {
	Name           *string
	Email          *string
	Phone          *string
	Address        *string
	Company        *string
	Industry       *string
	Status         *CustomerStatus
	RiskLevel      *RiskLevel
	PaymentHistory *string
}

// Apply copia sobre c los campos presentes en el patch.
func (p CustomerPatch) Apply(c *Customer) {
	setIf(&c.Name, p.Name)
	setIf(&c.Email, p.Email)
	setIf(&c.Phone, p.Phone)
	setIf(&c.Address, p.Address)
	setIf(&c.Company, p.Company)
	setIf(&c.Industry, p.Industry)
	setIf(&c.Status, p.Status)
	setIf(&c.RiskLevel, p.RiskLevel)
	setIf(&c.PaymentHistory, p.PaymentHistory)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Ptr devuelve un puntero a v (útil para construir patches).
func Ptr[T any](v T) *T { return &v }
