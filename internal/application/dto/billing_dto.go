package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/intellicollect-api/internal/domain/entity"
)

// ── Clientes ─────────────────────────────────────────────────────────────────

// CustomerListParams query de GET /customers.
type CustomerListParams struct {
	PageRequest
	Search string `query:"search" json:"search,omitempty"`
}

// CreateCustomerRequest body para POST /customers.
type CreateCustomerRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty" validate:"max=50"`
	Address  string `json:"address,omitempty" validate:"max=300"`
	Company  string `json:"company,omitempty" validate:"max=200"`
	Industry string `json:"industry,omitempty" validate:"max=100"`
}

// UpdateCustomerRequest body para PUT /customers/:id; solo se modifican los campos presentes.
type UpdateCustomerRequest struct {
	Name           *string                `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Email          *string                `json:"email,omitempty" validate:"omitempty,email"`
	Phone          *string                `json:"phone,omitempty" validate:"omitempty,max=50"`
	Address        *string                `json:"address,omitempty" validate:"omitempty,max=300"`
	Company        *string                `json:"company,omitempty" validate:"omitempty,max=200"`
	Industry       *string                `json:"industry,omitempty" validate:"omitempty,max=100"`
	Status         *entity.CustomerStatus `json:"status,omitempty" validate:"omitempty,oneof=active inactive pending suspended"`
	RiskLevel      *entity.RiskLevel      `json:"risk_level,omitempty" validate:"omitempty,oneof=low medium high critical"`
	PaymentHistory *string                `json:"payment_history,omitempty"`
}

// Patch convierte el request en el patch de dominio.
func (r UpdateCustomerRequest) Patch() entity.CustomerPatch {
	return entity.CustomerPatch{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Address:        r.Address,
		Company:        r.Company,
		Industry:       r.Industry,
		Status:         r.Status,
		RiskLevel:      r.RiskLevel,
		PaymentHistory: r.PaymentHistory,
	}
}

// CustomersResponse listado paginado de clientes.
type CustomersResponse struct {
	Customers []entity.Customer `json:"customers"`
	PageResponse
}

// ── Facturas ─────────────────────────────────────────────────────────────────

// InvoiceListParams query de GET /invoices.
type InvoiceListParams struct {
	PageRequest
	CustomerID    string `query:"customer_id" json:"customer_id,omitempty"`
	Status        string `query:"status" json:"status,omitempty" validate:"omitempty,oneof=draft pending sent paid overdue cancelled"`
	PaymentStatus string `query:"payment_status" json:"payment_status,omitempty" validate:"omitempty,oneof=unpaid partial paid refunded"`
}

// CreateInvoiceRequest body para POST /invoices. total_amount en cero toma amount.
type CreateInvoiceRequest struct {
	CustomerID    string               `json:"customer_id" validate:"required"`
	InvoiceDate   entity.Date          `json:"invoice_date" validate:"required"`
	DueDate       entity.Date          `json:"due_date" validate:"required"`
	Amount        decimal.Decimal      `json:"amount" validate:"gt=0"`
	TotalAmount   decimal.Decimal      `json:"total_amount" validate:"gte=0"`
	Currency      string               `json:"currency,omitempty" validate:"omitempty,iso4217"`
	Status        entity.InvoiceStatus `json:"status,omitempty" validate:"omitempty,oneof=draft pending sent paid overdue cancelled"`
	PaymentStatus entity.PaymentStatus `json:"payment_status,omitempty" validate:"omitempty,oneof=unpaid partial paid refunded"`
}

// UpdateInvoiceRequest body para PUT /invoices/:id.
// paid_amount permite registrar abonos parciales; el saldo se recalcula siempre.
type UpdateInvoiceRequest struct {
	CustomerID    *string               `json:"customer_id,omitempty" validate:"omitempty,min=1"`
	InvoiceDate   *entity.Date          `json:"invoice_date,omitempty"`
	DueDate       *entity.Date          `json:"due_date,omitempty"`
	Amount        *decimal.Decimal      `json:"amount,omitempty" validate:"omitempty,gt=0"`
	TotalAmount   *decimal.Decimal      `json:"total_amount,omitempty" validate:"omitempty,gt=0"`
	PaidAmount    *decimal.Decimal      `json:"paid_amount,omitempty" validate:"omitempty,gte=0"`
	Currency      *string               `json:"currency,omitempty" validate:"omitempty,iso4217"`
	Status        *entity.InvoiceStatus `json:"status,omitempty" validate:"omitempty,oneof=draft pending sent paid overdue cancelled"`
	PaymentStatus *entity.PaymentStatus `json:"payment_status,omitempty" validate:"omitempty,oneof=unpaid partial paid refunded"`
}

// Patch convierte el request en el patch de dominio.
func (r UpdateInvoiceRequest) Patch() entity.InvoicePatch {
	return entity.InvoicePatch{
		CustomerID:    r.CustomerID,
		InvoiceDate:   r.InvoiceDate,
		DueDate:       r.DueDate,
		Amount:        r.Amount,
		TotalAmount:   r.TotalAmount,
		PaidAmount:    r.PaidAmount,
		Currency:      r.Currency,
		Status:        r.Status,
		PaymentStatus: r.PaymentStatus,
	}
}

// InvoicesResponse listado paginado de facturas.
type InvoicesResponse struct {
	Invoices []entity.Invoice `json:"invoices"`
	PageResponse
}

// SendReminderRequest body opcional para POST /invoices/:id/reminders.
type SendReminderRequest struct {
	Type    entity.Channel `json:"type,omitempty" validate:"omitempty,oneof=email sms whatsapp"`
	Subject string         `json:"subject,omitempty" validate:"max=200"`
	Message string         `json:"message,omitempty" validate:"max=2000"`
}

// ReminderResponse factura actualizada y comunicación registrada.
type ReminderResponse struct {
	Invoice       entity.Invoice       `json:"invoice"`
	Communication entity.Communication `json:"communication"`
}

// ── Pagos ────────────────────────────────────────────────────────────────────

// CreatePaymentRequest body para POST /payments.
type CreatePaymentRequest struct {
	CustomerID       string                   `json:"customer_id" validate:"required"`
	Amount           decimal.Decimal          `json:"amount" validate:"gt=0"`
	Currency         string                   `json:"currency" validate:"required,iso4217"`
	TransactionDate  entity.Date              `json:"transaction_date" validate:"required"`
	ReferenceNumber  string                   `json:"reference_number" validate:"required,max=100"`
	Status           entity.TransactionStatus `json:"status" validate:"required,oneof=success pending failed"`
	TransactionType  string                   `json:"transaction_type" validate:"required,oneof=bank_transfer credit_card check cash other"`
	ProcessingMethod string                   `json:"processing_method" validate:"required,oneof=manual automatic"`
	BankName         string                   `json:"bank_name,omitempty" validate:"max=100"`
	PayerName        string                   `json:"payer_name,omitempty" validate:"max=200"`
	Fees             decimal.Decimal          `json:"fees" validate:"gte=0"`
}

// PaymentsResponse listado de pagos.
type PaymentsResponse struct {
	Payments []entity.Payment `json:"payments"`
	PageResponse
}

// ReceiptUploadResponse respuesta de POST /payments/upload-receipt.
type ReceiptUploadResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	FileID        string `json:"file_id"`
	InvoiceID     string `json:"invoice_id"`
	TransactionID string `json:"transaction_id,omitempty"`
	FileName      string `json:"file_name,omitempty"`
	Size          int64  `json:"size"`
}

// ── Comunicaciones ───────────────────────────────────────────────────────────

// SendCommunicationRequest body para POST /communications/send.
type SendCommunicationRequest struct {
	CustomerID      string         `json:"customer_id" validate:"required"`
	Type            entity.Channel `json:"type" validate:"required,oneof=email sms whatsapp"`
	Subject         string         `json:"subject,omitempty" validate:"max=200"`
	Message         string         `json:"message" validate:"required,max=2000"`
	SendImmediately *bool          `json:"send_immediately,omitempty"`
	ScheduledTime   *time.Time     `json:"scheduled_time,omitempty"`
}

// CommunicationHistoryResponse historial paginado de un cliente.
type CommunicationHistoryResponse struct {
	Communications []entity.Communication `json:"communications"`
	PageResponse
}
