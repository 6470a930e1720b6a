package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/intellicollect-api/internal/application/dto"
	"github.com/jhoicas/intellicollect-api/internal/application/validation"
	"github.com/jhoicas/intellicollect-api/internal/domain"
	"github.com/jhoicas/intellicollect-api/internal/domain/entity"
	"github.com/jhoicas/intellicollect-api/internal/domain/repository"
	"github.com/jhoicas/intellicollect-api/pkg/money"
)

// InvoiceUseCase casos de uso para facturas.
type InvoiceUseCase struct {
	invoices  repository.InvoiceRepository
	customers repository.CustomerRepository
	comms     repository.CommunicationRepository
	validator *validation.Validator
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	invoices repository.InvoiceRepository,
	customers repository.CustomerRepository,
	comms repository.CommunicationRepository,
	validator *validation.Validator,
) *InvoiceUseCase {
	return &InvoiceUseCase{invoices: invoices, customers: customers, comms: comms, validator: validator}
}

// List lista facturas filtrando por cliente, estado y estado de pago.
func (uc *InvoiceUseCase) List(ctx context.Context, params dto.InvoiceListParams) (*dto.InvoicesResponse, error) {
	if err := uc.validator.Struct(params); err != nil {
		return nil, err
	}
	all, err := uc.invoices.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar facturas: %w", err)
	}
	filtered := make([]entity.Invoice, 0, len(all))
	for _, inv := range all {
		if params.CustomerID != "" && inv.CustomerID != params.CustomerID {
			continue
		}
		if params.Status != "" && string(inv.Status) != params.Status {
			continue
		}
		if params.PaymentStatus != "" && string(inv.PaymentStatus) != params.PaymentStatus {
			continue
		}
		filtered = append(filtered, inv)
	}
	page, meta := dto.Paginate(filtered, params.PageRequest)
	return &dto.InvoicesResponse{Invoices: page, PageResponse: meta}, nil
}

// Get devuelve la factura o domain.ErrInvoiceNotFound.
func (uc *InvoiceUseCase) Get(ctx context.Context, id string) (*entity.Invoice, error) {
	inv, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener factura: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrInvoiceNotFound
	}
	return inv, nil
}

// Create valida y crea la factura. El cliente debe existir y el vencimiento no puede
// ser anterior a la emisión.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*entity.Invoice, error) {
	in.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	if in.DueDate.Before(in.InvoiceDate.Time) {
		return nil, domain.NewValidationError("due_date", "no puede ser anterior a invoice_date")
	}
	if err := uc.requireCustomer(ctx, in.CustomerID); err != nil {
		return nil, err
	}
	inv := &entity.Invoice{
		CustomerID:    in.CustomerID,
		InvoiceDate:   in.InvoiceDate,
		DueDate:       in.DueDate,
		Amount:        in.Amount,
		TotalAmount:   in.TotalAmount,
		Currency:      in.Currency,
		Status:        in.Status,
		PaymentStatus: in.PaymentStatus,
	}
	if err := uc.invoices.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("crear factura: %w", err)
	}
	return inv, nil
}

// Update aplica una actualización parcial. payment_status=paid liquida la factura.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.UpdateInvoiceRequest) (*entity.Invoice, error) {
	if in.Currency != nil {
		upper := strings.ToUpper(strings.TrimSpace(*in.Currency))
		in.Currency = &upper
	}
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	current, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	merged := *current
	in.Patch().Apply(&merged)
	if merged.DueDate.Before(merged.InvoiceDate.Time) {
		return nil, domain.NewValidationError("due_date", "no puede ser anterior a invoice_date")
	}
	settles := in.PaymentStatus != nil && *in.PaymentStatus == entity.PaymentPaid
	// con payment_status=paid el pagado se fija al total
	if !settles && merged.PaidAmount.GreaterThan(merged.TotalAmount) {
		return nil, domain.NewValidationError("paid_amount", "no puede superar total_amount")
	}
	if in.CustomerID != nil && *in.CustomerID != current.CustomerID {
		if err := uc.requireCustomer(ctx, *in.CustomerID); err != nil {
			return nil, err
		}
	}

	inv, err := uc.invoices.Update(ctx, id, in.Patch())
	if err != nil {
		return nil, fmt.Errorf("actualizar factura: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrInvoiceNotFound
	}
	return inv, nil
}

// Delete elimina la factura y recalcula los agregados del cliente.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	ok, err := uc.invoices.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("eliminar factura: %w", err)
	}
	if !ok {
		return domain.ErrInvoiceNotFound
	}
	return nil
}

// SendReminder envía un recordatorio de cobro al cliente de la factura, lo registra
// como comunicación y actualiza el contador de recordatorios de la factura.
func (uc *InvoiceUseCase) SendReminder(ctx context.Context, id string, in dto.SendReminderRequest) (*dto.ReminderResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	inv, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	customer, err := uc.customers.GetByID(ctx, inv.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("recordatorio: obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}

	channel := in.Type
	if channel == "" {
		channel = entity.ChannelEmail
	}
	subject := in.Subject
	if subject == "" && channel == entity.ChannelEmail {
		subject = "Invoice Reminder - Payment Due"
	}
	message := in.Message
	if message == "" {
		message = fmt.Sprintf("Dear %s, this is a friendly reminder that invoice #%s for %s is due on %s.",
			customer.Name, inv.InvoiceID, money.Format(inv.OutstandingAmount, inv.Currency), inv.DueDate)
	}

	comm := &entity.Communication{
		CustomerID: customer.ID,
		Type:       channel,
		Subject:    subject,
		Message:    message,
	}
	markDelivered(comm)
	if err := uc.comms.Create(ctx, comm); err != nil {
		return nil, fmt.Errorf("recordatorio: registrar comunicación: %w", err)
	}

	updated, err := uc.invoices.RegisterReminder(ctx, id, entity.Today())
	if err != nil {
		return nil, fmt.Errorf("recordatorio: actualizar factura: %w", err)
	}
	if updated == nil {
		return nil, domain.ErrInvoiceNotFound
	}
	return &dto.ReminderResponse{Invoice: *updated, Communication: *comm}, nil
}

func (uc *InvoiceUseCase) requireCustomer(ctx context.Context, id string) error {
	c, err := uc.customers.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("obtener cliente: %w", err)
	}
	if c == nil {
		return domain.NewValidationError("customer_id", "el cliente no existe")
	}
	return nil
}
