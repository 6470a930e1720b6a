// Package mockapi implementa ports.CollectionsAPI en proceso, sobre los casos de uso,
// con un retardo artificial por llamada que simula la latencia de red.
package mockapi

import (
	"context"
	"time"

	"github.com/jhoicas/intellicollect-api/internal/application/dto"
	"github.com/jhoicas/intellicollect-api/internal/application/ports"
	"github.com/jhoicas/intellicollect-api/internal/application/usecase"
	"github.com/jhoicas/intellicollect-api/internal/domain/entity"
)

// DefaultLatency retardo por defecto de cada llamada.
const DefaultLatency = 300 * time.Millisecond

var _ ports.CollectionsAPI = (*Client)(nil)

// Client fachada local. Es seguro para uso concurrente.
type Client struct {
	svc     *usecase.Services
	latency time.Duration
	health  dto.HealthResponse
}

// New construye la fachada. latency <= 0 desactiva el retardo.
func New(svc *usecase.Services, latency time.Duration, health dto.HealthResponse) *Client {
	if health.Status == "" {
		health.Status = "healthy"
	}
	return &Client{svc: svc, latency: latency, health: health}
}

// wait aplica el retardo; se interrumpe si el contexto se cancela.
func (c *Client) wait(ctx context.Context) error {
	if c.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(c.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// call aplica el retardo y ejecuta fn.
func call[T any](ctx context.Context, c *Client, fn func() (T, error)) (T, error) {
	if err := c.wait(ctx); err != nil {
		var zero T
		return zero, err
	}
	return fn()
}

func (c *Client) Health(ctx context.Context) (*dto.HealthResponse, error) {
	return call(ctx, c, func() (*dto.HealthResponse, error) {
		h := c.health
		return &h, nil
	})
}

// ── Clientes ──────────────────────────────────────────────────────────────────

func (c *Client) ListCustomers(ctx context.Context, params dto.CustomerListParams) (*dto.CustomersResponse, error) {
	return call(ctx, c, func() (*dto.CustomersResponse, error) { return c.svc.Customers.List(ctx, params) })
}

func (c *Client) GetCustomer(ctx context.Context, id string) (*entity.Customer, error) {
	return call(ctx, c, func() (*entity.Customer, error) { return c.svc.Customers.Get(ctx, id) })
}

func (c *Client) CreateCustomer(ctx context.Context, in dto.CreateCustomerRequest) (*entity.Customer, error) {
	return call(ctx, c, func() (*entity.Customer, error) { return c.svc.Customers.Create(ctx, in) })
}

func (c *Client) UpdateCustomer(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*entity.Customer, error) {
	return call(ctx, c, func() (*entity.Customer, error) { return c.svc.Customers.Update(ctx, id, in) })
}

func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	_, err := call(ctx, c, func() (struct{}, error) { return struct{}{}, c.svc.Customers.Delete(ctx, id) })
	return err
}

func (c *Client) AssessCustomerRisk(ctx context.Context, id string) (*entity.Customer, error) {
	return call(ctx, c, func() (*entity.Customer, error) { return c.svc.Customers.AssessRisk(ctx, id) })
}

// ── Facturas ──────────────────────────────────────────────────────────────────

func (c *Client) ListInvoices(ctx context.Context, params dto.InvoiceListParams) (*dto.InvoicesResponse, error) {
	return call(ctx, c, func() (*dto.InvoicesResponse, error) { return c.svc.Invoices.List(ctx, params) })
}

func (c *Client) GetInvoice(ctx context.Context, id string) (*entity.Invoice, error) {
	return call(ctx, c, func() (*entity.Invoice, error) { return c.svc.Invoices.Get(ctx, id) })
}

func (c *Client) CreateInvoice(ctx context.Context, in dto.CreateInvoiceRequest) (*entity.Invoice, error) {
	return call(ctx, c, func() (*entity.Invoice, error) { return c.svc.Invoices.Create(ctx, in) })
}

func (c *Client) UpdateInvoice(ctx context.Context, id string, in dto.UpdateInvoiceRequest) (*entity.Invoice, error) {
	return call(ctx, c, func() (*entity.Invoice, error) { return c.svc.Invoices.Update(ctx, id, in) })
}

func (c *Client) DeleteInvoice(ctx context.Context, id string) error {
	_, err := call(ctx, c, func() (struct{}, error) { return struct{}{}, c.svc.Invoices.Delete(ctx, id) })
	return err
}

func (c *Client) SendInvoiceReminder(ctx context.Context, id string, in dto.SendReminderRequest) (*dto.ReminderResponse, error) {
	return call(ctx, c, func() (*dto.ReminderResponse, error) { return c.svc.Invoices.SendReminder(ctx, id, in) })
}

// ── Pagos y comunicaciones ────────────────────────────────────────────────────

func (c *Client) CreatePayment(ctx context.Context, in dto.CreatePaymentRequest) (*entity.Payment, error) {
	return call(ctx, c, func() (*entity.Payment, error) { return c.svc.Payments.Create(ctx, in) })
}

func (c *Client) ListInvoicePayments(ctx context.Context, invoiceID string) (*dto.PaymentsResponse, error) {
	return call(ctx, c, func() (*dto.PaymentsResponse, error) { return c.svc.Payments.ListByInvoice(ctx, invoiceID) })
}

func (c *Client) SendCommunication(ctx context.Context, in dto.SendCommunicationRequest) (*entity.Communication, error) {
	return call(ctx, c, func() (*entity.Communication, error) { return c.svc.Communications.Send(ctx, in) })
}

func (c *Client) CommunicationHistory(ctx context.Context, customerID string, page dto.PageRequest) (*dto.CommunicationHistoryResponse, error) {
	return call(ctx, c, func() (*dto.CommunicationHistoryResponse, error) {
		return c.svc.Communications.History(ctx, customerID, page)
	})
}

// ── Analítica ─────────────────────────────────────────────────────────────────

func (c *Client) AnalyticsSummary(ctx context.Context) (*dto.AnalyticsSummary, error) {
	return call(ctx, c, func() (*dto.AnalyticsSummary, error) { return c.svc.Analytics.Summary(ctx) })
}

func (c *Client) Dashboard(ctx context.Context, params dto.DashboardParams) (*dto.DashboardAnalytics, error) {
	return call(ctx, c, func() (*dto.DashboardAnalytics, error) { return c.svc.Analytics.Dashboard(ctx, params) })
}

func (c *Client) RevenueTrend(ctx context.Context, params dto.RevenueTrendParams) (*dto.RevenueTrendResponse, error) {
	return call(ctx, c, func() (*dto.RevenueTrendResponse, error) { return c.svc.Analytics.RevenueTrend(ctx, params) })
}

func (c *Client) CustomerAnalytics(ctx context.Context, customerID string) (*dto.CustomerAnalytics, error) {
	return call(ctx, c, func() (*dto.CustomerAnalytics, error) {
		return c.svc.Analytics.CustomerAnalytics(ctx, customerID)
	})
}
