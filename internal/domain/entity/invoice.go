package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus estado del ciclo de vida de la factura.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoicePending   InvoiceStatus = "pending"
	InvoiceSent      InvoiceStatus = "sent"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// PaymentStatus estado de cobro de la factura.
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPartial  PaymentStatus = "partial"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// DefaultCurrency moneda cuando la factura no indica otra.
const DefaultCurrency = "USD"

// Invoice factura emitida a un cliente.
// Invariante tras cualquier mutación: OutstandingAmount = TotalAmount - PaidAmount.
type Invoice struct {
	InvoiceID         string          `json:"invoice_id"`
	CustomerID        string          `json:"customer_id"`
	InvoiceDate       Date            `json:"invoice_date"`
	DueDate           Date            `json:"due_date"`
	Amount            decimal.Decimal `json:"amount"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	Currency          string          `json:"currency"`
	Status            InvoiceStatus   `json:"status"`
	PaymentStatus     PaymentStatus   `json:"payment_status"`
	RiskLevel         RiskLevel       `json:"risk_level,omitempty"`
	RiskScore         int             `json:"risk_score,omitempty"`
	CreatedTimestamp  time.Time       `json:"created_timestamp"`
	PaidAmount        decimal.Decimal `json:"paid_amount"`
	OutstandingAmount decimal.Decimal `json:"outstanding_amount"`
	ReminderCount     int             `json:"reminder_count"`
	LastReminderDate  *Date           `json:"last_reminder_date,omitempty"`
	PaymentDate       *Date           `json:"payment_date,omitempty"`
	PaymentReference  string          `json:"payment_reference,omitempty"`
}

// IsPaidOnTime informa si la factura se pagó en o antes de su vencimiento.
func (i *Invoice) IsPaidOnTime() bool {
	return i.PaymentStatus == PaymentPaid &&
		i.PaymentDate != nil &&
		!i.PaymentDate.After(i.DueDate.Time)
}

// RecomputeOutstanding restablece el invariante de saldo.
func (i *Invoice) RecomputeOutstanding() {
	i.OutstandingAmount = i.TotalAmount.Sub(i.PaidAmount)
}

// InvoicePatch actualización parcial; los campos nil no se modifican.
type InvoicePatch struct {
	CustomerID    *string
	InvoiceDate   *Date
	DueDate       *Date
	Amount        *decimal.Decimal
	TotalAmount   *decimal.Decimal
	PaidAmount    *decimal.Decimal
	Currency      *string
	Status        *InvoiceStatus
	PaymentStatus *PaymentStatus
}

// Apply copia sobre inv los campos presentes en el patch (sin reglas de negocio).
func (p InvoicePatch) Apply(inv *Invoice) {
	setIf(&inv.CustomerID, p.CustomerID)
	setIf(&inv.InvoiceDate, p.InvoiceDate)
	setIf(&inv.DueDate, p.DueDate)
	setIf(&inv.Amount, p.Amount)
	setIf(&inv.TotalAmount, p.TotalAmount)
	setIf(&inv.PaidAmount, p.PaidAmount)
	setIf(&inv.Currency, p.Currency)
	setIf(&inv.Status, p.Status)
	setIf(&inv.PaymentStatus, p.PaymentStatus)
}
