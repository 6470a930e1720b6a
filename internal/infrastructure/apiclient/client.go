// Package apiclient implementa ports.CollectionsAPI contra la API REST (/api/v1).
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/intellicollect-api/internal/application/dto"
	"github.com/jhoicas/intellicollect-api/internal/application/ports"
	"github.com/jhoicas/intellicollect-api/internal/domain"
	"github.com/jhoicas/intellicollect-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que Client implementa CollectionsAPI.
var _ ports.CollectionsAPI = (*Client)(nil)

const (
	apiPrefix       = "/api/v1"
	maxResponseSize = 8 * 1024 * 1024
)

// APIError respuesta de error del servidor.
// 404 cumple errors.Is(err, domain.ErrNotFound); 400 cumple errors.Is(err, domain.ErrInvalidInput).
type APIError struct {
	Status  int
	Code    string
	Message string
	Fields  map[string]string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API HTTP %d", e.Status)
	}
	return e.Message
}

func (e *APIError) Is(target error) bool {
	switch target {
	case domain.ErrNotFound:
		return e.Status == http.StatusNotFound
	case domain.ErrInvalidInput:
		return e.Status == http.StatusBadRequest
	}
	return false
}

// Client cliente HTTP de la API de cobranza.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New construye el cliente. httpClient nil usa uno con timeout de 15 s.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

// do envía la petición y decodifica la respuesta en out (si no es nil).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("apiclient: serializar request: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("apiclient: crear HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("apiclient: timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("apiclient: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("apiclient: leer respuesta: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		var er dto.ErrorResponse
		if jsonErr := json.Unmarshal(raw, &er); jsonErr == nil {
			apiErr.Code, apiErr.Message, apiErr.Fields = er.Code, er.Message, er.Fields
		} else {
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		return apiErr
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("apiclient: deserializar respuesta: %w", err)
	}
	return nil
}

// get/send con tipo de respuesta genérico.
func get[T any](ctx context.Context, c *Client, path string, query url.Values) (*T, error) {
	var out T
	if err := c.do(ctx, http.MethodGet, path, query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func send[T any](ctx context.Context, c *Client, method, path string, in any) (*T, error) {
	var out T
	if err := c.do(ctx, method, path, nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func pageQuery(p dto.PageRequest) url.Values {
	q := url.Values{}
	if p.Skip > 0 {
		q.Set("skip", strconv.Itoa(p.Skip))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	return q
}

func setIfNotEmpty(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func (c *Client) Health(ctx context.Context) (*dto.HealthResponse, error) {
	return get[dto.HealthResponse](ctx, c, "/health", nil)
}

// ── Clientes ──────────────────────────────────────────────────────────────────

func (c *Client) ListCustomers(ctx context.Context, params dto.CustomerListParams) (*dto.CustomersResponse, error) {
	q := pageQuery(params.PageRequest)
	setIfNotEmpty(q, "search", params.Search)
	return get[dto.CustomersResponse](ctx, c, apiPrefix+"/customers/", q)
}

func (c *Client) GetCustomer(ctx context.Context, id string) (*entity.Customer, error) {
	return get[entity.Customer](ctx, c, apiPrefix+"/customers/"+url.PathEscape(id), nil)
}

func (c *Client) CreateCustomer(ctx context.Context, in dto.CreateCustomerRequest) (*entity.Customer, error) {
	return send[entity.Customer](ctx, c, http.MethodPost, apiPrefix+"/customers/", in)
}

func (c *Client) UpdateCustomer(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*entity.Customer, error) {
	return send[entity.Customer](ctx, c, http.MethodPut, apiPrefix+"/customers/"+url.PathEscape(id), in)
}

func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, apiPrefix+"/customers/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) AssessCustomerRisk(ctx context.Context, id string) (*entity.Customer, error) {
	return send[entity.Customer](ctx, c, http.MethodPost, apiPrefix+"/customers/"+url.PathEscape(id)+"/risk-assessment", nil)
}

// ── Facturas ──────────────────────────────────────────────────────────────────

func (c *Client) ListInvoices(ctx context.Context, params dto.InvoiceListParams) (*dto.InvoicesResponse, error) {
	q := pageQuery(params.PageRequest)
	setIfNotEmpty(q, "customer_id", params.CustomerID)
	setIfNotEmpty(q, "status", params.Status)
	setIfNotEmpty(q, "payment_status", params.PaymentStatus)
	return get[dto.InvoicesResponse](ctx, c, apiPrefix+"/invoices/", q)
}

func (c *Client) GetInvoice(ctx context.Context, id string) (*entity.Invoice, error) {
	return get[entity.Invoice](ctx, c, apiPrefix+"/invoices/"+url.PathEscape(id), nil)
}

func (c *Client) CreateInvoice(ctx context.Context, in dto.CreateInvoiceRequest) (*entity.Invoice, error) {
	return send[entity.Invoice](ctx, c, http.MethodPost, apiPrefix+"/invoices/", in)
}

func (c *Client) UpdateInvoice(ctx context.Context, id string, in dto.UpdateInvoiceRequest) (*entity.Invoice, error) {
	return send[entity.Invoice](ctx, c, http.MethodPut, apiPrefix+"/invoices/"+url.PathEscape(id), in)
}

func (c *Client) DeleteInvoice(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, apiPrefix+"/invoices/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) SendInvoiceReminder(ctx context.Context, id string, in dto.SendReminderRequest) (*dto.ReminderResponse, error) {
	return send[dto.ReminderResponse](ctx, c, http.MethodPost, apiPrefix+"/invoices/"+url.PathEscape(id)+"/reminders", in)
}

// DownloadInvoicePDF descarga el PDF de la factura.
func (c *Client) DownloadInvoicePDF(ctx context.Context, id string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+apiPrefix+"/invoices/"+url.PathEscape(id)+"/pdf", nil)
	if err != nil {
		return nil, fmt.Errorf("apiclient: crear HTTP request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("apiclient: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("apiclient: leer respuesta: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{Status: resp.StatusCode}
		var er dto.ErrorResponse
		if json.Unmarshal(raw, &er) == nil {
			apiErr.Code, apiErr.Message = er.Code, er.Message
		}
		return nil, apiErr
	}
	return raw, nil
}

// ── Pagos y comunicaciones ────────────────────────────────────────────────────

func (c *Client) CreatePayment(ctx context.Context, in dto.CreatePaymentRequest) (*entity.Payment, error) {
	return send[entity.Payment](ctx, c, http.MethodPost, apiPrefix+"/payments/", in)
}

func (c *Client) ListInvoicePayments(ctx context.Context, invoiceID string) (*dto.PaymentsResponse, error) {
	return get[dto.PaymentsResponse](ctx, c, apiPrefix+"/payments/invoice/"+url.PathEscape(invoiceID)+"/payments", nil)
}

func (c *Client) SendCommunication(ctx context.Context, in dto.SendCommunicationRequest) (*entity.Communication, error) {
	return send[entity.Communication](ctx, c, http.MethodPost, apiPrefix+"/communications/send", in)
}

func (c *Client) CommunicationHistory(ctx context.Context, customerID string, page dto.PageRequest) (*dto.CommunicationHistoryResponse, error) {
	return get[dto.CommunicationHistoryResponse](ctx, c,
		apiPrefix+"/communications/customer/"+url.PathEscape(customerID)+"/history", pageQuery(page))
}

// ── Analítica ─────────────────────────────────────────────────────────────────

func (c *Client) AnalyticsSummary(ctx context.Context) (*dto.AnalyticsSummary, error) {
	return get[dto.AnalyticsSummary](ctx, c, apiPrefix+"/analytics/summary", nil)
}

func (c *Client) Dashboard(ctx context.Context, params dto.DashboardParams) (*dto.DashboardAnalytics, error) {
	q := url.Values{}
	if params.PeriodDays > 0 {
		q.Set("period_days", strconv.Itoa(params.PeriodDays))
	}
	return get[dto.DashboardAnalytics](ctx, c, apiPrefix+"/analytics/dashboard", q)
}

func (c *Client) RevenueTrend(ctx context.Context, params dto.RevenueTrendParams) (*dto.RevenueTrendResponse, error) {
	q := url.Values{}
	setIfNotEmpty(q, "period", params.Period)
	if params.Months > 0 {
		q.Set("months", strconv.Itoa(params.Months))
	}
	return get[dto.RevenueTrendResponse](ctx, c, apiPrefix+"/analytics/revenue/trend", q)
}

func (c *Client) CustomerAnalytics(ctx context.Context, customerID string) (*dto.CustomerAnalytics, error) {
	return get[dto.CustomerAnalytics](ctx, c, apiPrefix+"/analytics/customer/"+url.PathEscape(customerID)+"/analytics", nil)
}
