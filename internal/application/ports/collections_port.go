package ports

import (
	"context"

	"github.com/jhoicas/intellicollect-api/internal/application/dto"
	"github.com/jhoicas/intellicollect-api/internal/domain/entity"
)

// CollectionsAPI contrato de la API de cobranza. Lo implementan la fachada local
// (mockapi) y el cliente HTTP (apiclient); quien lo consume no sabe cuál recibe.
//
// Un id inexistente devuelve un error que cumple errors.Is(err, domain.ErrNotFound).
// Los errores de validación cumplen errors.Is(err, domain.ErrInvalidInput).
type CollectionsAPI interface {
	Health(ctx context.Context) (*dto.HealthResponse, error)

	ListCustomers(ctx context.Context, params dto.CustomerListParams) (*dto.CustomersResponse, error)
	GetCustomer(ctx context.Context, id string) (*entity.Customer, error)
	CreateCustomer(ctx context.Context, in dto.CreateCustomerRequest) (*entity.Customer, error)
	UpdateCustomer(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*entity.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
	AssessCustomerRisk(ctx context.Context, id string) (*entity.Customer, error)

	ListInvoices(ctx context.Context, params dto.InvoiceListParams) (*dto.InvoicesResponse, error)
	GetInvoice(ctx context.Context, id string) (*entity.Invoice, error)
	CreateInvoice(ctx context.Context, in dto.CreateInvoiceRequest) (*entity.Invoice, error)
	UpdateInvoice(ctx context.Context, id string, in dto.UpdateInvoiceRequest) (*entity.Invoice, error)
	DeleteInvoice(ctx context.Context, id string) error
	SendInvoiceReminder(ctx context.Context, id string, in dto.SendReminderRequest) (*dto.ReminderResponse, error)

	CreatePayment(ctx context.Context, in dto.CreatePaymentRequest) (*entity.Payment, error)
	ListInvoicePayments(ctx context.Context, invoiceID string) (*dto.PaymentsResponse, error)

	SendCommunication(ctx context.Context, in dto.SendCommunicationRequest) (*entity.Communication, error)
	CommunicationHistory(ctx context.Context, customerID string, page dto.PageRequest) (*dto.CommunicationHistoryResponse, error)

	AnalyticsSummary(ctx context.Context) (*dto.AnalyticsSummary, error)
	Dashboard(ctx context.Context, params dto.DashboardParams) (*dto.DashboardAnalytics, error)
	RevenueTrend(ctx context.Context, params dto.RevenueTrendParams) (*dto.RevenueTrendResponse, error)
	CustomerAnalytics(ctx context.Context, customerID string) (*dto.CustomerAnalytics, error)
}
