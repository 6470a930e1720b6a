package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus resultado del cobro registrado.
type TransactionStatus string

const (
	TransactionSuccess TransactionStatus = "success"
	TransactionPending TransactionStatus = "pending"
	TransactionFailed  TransactionStatus = "failed"
)

// Medios de pago.
const (
	TransactionBankTransfer = "bank_transfer"
	TransactionCreditCard   = "credit_card"
	TransactionCheck        = "check"
	TransactionCash         = "cash"
	TransactionOther        = "other"
)

// Forma de procesamiento.
const (
	ProcessingManual    = "manual"
	ProcessingAutomatic = "automatic"
)

// Payment pago recibido de un cliente. Se registra contra el cliente, no contra una
// factura concreta: el libro de pagos no concilia saldos de facturas.
type Payment struct {
	ID               string            `json:"id"`
	CustomerID       string            `json:"customer_id"`
	Amount           decimal.Decimal   `json:"amount"`
	Currency         string            `json:"currency"`
	TransactionDate  Date              `json:"transaction_date"`
	ReferenceNumber  string            `json:"reference_number"`
	Status           TransactionStatus `json:"status"`
	TransactionType  string            `json:"transaction_type"`
	ProcessingMethod string            `json:"processing_method"`
	BankName         string            `json:"bank_name,omitempty"`
	PayerName        string            `json:"payer_name,omitempty"`
	Fees             decimal.Decimal   `json:"fees"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// PaymentPatch actualización parcial de un pago.
type PaymentPatch struct {
	Status          *TransactionStatus
	ReferenceNumber *string
	BankName        *string
	PayerName       *string
	Fees            *decimal.Decimal
}

// Apply copia sobre p los campos presentes en el patch.
func (pp PaymentPatch) Apply(p *Payment) {
	setIf(&p.Status, pp.Status)
	setIf(&p.ReferenceNumber, pp.ReferenceNumber)
	setIf(&p.BankName, pp.BankName)
	setIf(&p.PayerName, pp.PayerName)
	setIf(&p.Fees, pp.Fees)
}
