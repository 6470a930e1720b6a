package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/intellicollect-api/internal/application/dto"
	"github.com/jhoicas/intellicollect-api/internal/application/validation"
	"github.com/jhoicas/intellicollect-api/internal/domain"
	"github.com/jhoicas/intellicollect-api/internal/domain/entity"
	"github.com/jhoicas/intellicollect-api/internal/domain/repository"
)

// PaymentUseCase registro y consulta de pagos. Los pagos pertenecen al cliente,
// no a una factura: los pagos "de una factura" son los de su cliente.
type PaymentUseCase struct {
	payments  repository.PaymentRepository
	invoices  repository.InvoiceRepository
	customers repository.CustomerRepository
	validator *validation.Validator
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(
	payments repository.PaymentRepository,
	invoices repository.InvoiceRepository,
	customers repository.CustomerRepository,
	validator *validation.Validator,
) *PaymentUseCase {
	return &PaymentUseCase{payments: payments, invoices: invoices, customers: customers, validator: validator}
}

// Create valida y registra un pago.
func (uc *PaymentUseCase) Create(ctx context.Context, in dto.CreatePaymentRequest) (*entity.Payment, error) {
	in.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	c, err := uc.customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("registrar pago: %w", err)
	}
	if c == nil {
		return nil, domain.NewValidationError("customer_id", "el cliente no existe")
	}
	p := &entity.Payment{
		CustomerID:       in.CustomerID,
		Amount:           in.Amount,
		Currency:         in.Currency,
		TransactionDate:  in.TransactionDate,
		ReferenceNumber:  in.ReferenceNumber,
		Status:           in.Status,
		TransactionType:  in.TransactionType,
		ProcessingMethod: in.ProcessingMethod,
		BankName:         in.BankName,
		PayerName:        in.PayerName,
		Fees:             in.Fees,
	}
	if err := uc.payments.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("registrar pago: %w", err)
	}
	return p, nil
}

// ListByInvoice devuelve los pagos del cliente dueño de la factura.
func (uc *PaymentUseCase) ListByInvoice(ctx context.Context, invoiceID string) (*dto.PaymentsResponse, error) {
	inv, err := uc.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("pagos de factura: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrInvoiceNotFound
	}
	payments, err := uc.payments.ListByCustomer(ctx, inv.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("pagos de factura: %w", err)
	}
	return &dto.PaymentsResponse{
		Payments:     payments,
		PageResponse: dto.PageResponse{Total: len(payments), Skip: 0, Limit: len(payments)},
	}, nil
}

// Receipt comprobante recibido para una factura.
type Receipt struct {
	InvoiceID     string
	TransactionID string
	FileName      string
	Size          int64
}

// UploadReceipt acepta el comprobante de pago de una factura existente. El archivo no
// se almacena; se devuelve un identificador para referenciarlo.
func (uc *PaymentUseCase) UploadReceipt(ctx context.Context, r Receipt) (*dto.ReceiptUploadResponse, error) {
	if strings.TrimSpace(r.InvoiceID) == "" {
		return nil, domain.NewValidationError("invoice_id", "campo requerido")
	}
	if r.Size <= 0 {
		return nil, domain.NewValidationError("file", "archivo vacío")
	}
	inv, err := uc.invoices.GetByID(ctx, r.InvoiceID)
	if err != nil {
		return nil, fmt.Errorf("subir comprobante: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrInvoiceNotFound
	}
	return &dto.ReceiptUploadResponse{
		Success:       true,
		Message:       "Receipt uploaded successfully",
		FileID:        "file-" + uuid.NewString(),
		InvoiceID:     inv.InvoiceID,
		TransactionID: r.TransactionID,
		FileName:      r.FileName,
		Size:          r.Size,
	}, nil
}
