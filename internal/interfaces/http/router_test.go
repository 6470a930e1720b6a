package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/intellicollect-api/internal/application/dto"
	"github.com/jhoicas/intellicollect-api/internal/application/usecase"
	"github.com/jhoicas/intellicollect-api/internal/domain/entity"
	"github.com/jhoicas/intellicollect-api/internal/infrastructure/kvstore"
	"github.com/jhoicas/intellicollect-api/internal/infrastructure/pdf"
	"github.com/jhoicas/intellicollect-api/internal/infrastructure/seed"
	apphttp "github.com/jhoicas/intellicollect-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye la aplicación completa sobre un store en memoria con los datos semilla.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	backend, err := kvstore.OpenBadger("", true, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })
	store := kvstore.New(backend, "http", zerolog.Nop())
	_, err = seed.Initialize(context.Background(), store, zerolog.Nop())
	require.NoError(t, err)

	svc := usecase.NewServices(kvstore.Repositories(store), pdf.NewMarotoPDFGenerator("IntelliCollect"))
	return apphttp.NewApp(apphttp.RouterDeps{
		Services: svc,
		Health:   dto.HealthResponse{App: "intellicollect-api", Version: "1.0.0", Environment: "test"},
		Log:      zerolog.Nop(),
	})
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Health y middlewares
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))
	h := decode[dto.HealthResponse](t, resp)
	assert.Equal(t, "healthy", h.Status)
	assert.Equal(t, "1.0.0", h.Version)
}

func TestRequestID_Echoed(t *testing.T) {
	app := buildTestApp(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(apphttp.HeaderRequestID, "req-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "req-123", resp.Header.Get(apphttp.HeaderRequestID))
}

func TestUnknownRoute_JSON404(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/v1/nope", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, apphttp.CodeNotFound, body.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomers_Pagination(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/v1/customers/?skip=10&limit=5", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decode[dto.CustomersResponse](t, resp)
	assert.Len(t, list.Customers, 2)
	assert.Equal(t, 12, list.Total)
	assert.Equal(t, 10, list.Skip)
	assert.Equal(t, 5, list.Limit)
}

func TestCustomers_Search(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/v1/customers?search=acme", nil)
	list := decode[dto.CustomersResponse](t, resp)
	require.Len(t, list.Customers, 1)
	assert.Equal(t, "cust-001", list.Customers[0].ID)
}

func TestCustomers_NotFound(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/v1/customers/does-not-exist", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, apphttp.CodeNotFound, body.Code)
	assert.Equal(t, "Customer not found", body.Message)
}

func TestCustomers_CreateValidation(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/v1/customers/", map[string]string{"name": "Sin email"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, apphttp.CodeValidation, body.Code)
	assert.Contains(t, body.Fields, "email")
}

func TestCustomers_InvalidBody(t *testing.T) {
	app := buildTestApp(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/customers/", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apphttp.CodeInvalidBody, decode[dto.ErrorResponse](t, resp).Code)
}

func TestCustomers_CRUD(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/customers/", dto.CreateCustomerRequest{
		Name: "Delta SA", Email: "ap@delta.io", Company: "Delta",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decode[entity.Customer](t, resp)
	assert.Equal(t, entity.CustomerActive, created.Status)
	assert.Equal(t, entity.RiskLow, created.RiskLevel)

	industry := "Retail"
	resp = doJSON(t, app, http.MethodPut, "/api/v1/customers/"+created.ID, dto.UpdateCustomerRequest{Industry: &industry})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	updated := decode[entity.Customer](t, resp)
	assert.Equal(t, "Retail", updated.Industry)
	assert.Equal(t, "Delta SA", updated.Name)

	resp = doJSON(t, app, http.MethodDelete, "/api/v1/customers/"+created.ID, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/customers/"+created.ID, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCustomers_AssessRisk(t *testing.T) {
	app := buildTestApp(t)
	// cust-004: una factura, vencida -> ratio 1.0
	resp := doJSON(t, app, http.MethodPost, "/api/v1/customers/cust-004/risk-assessment", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, entity.RiskCritical, decode[entity.Customer](t, resp).RiskLevel)
}

// ──────────────────────────────────────────────────────────────────────────────
// Facturas
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoices_PaidTransition(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/invoices/", dto.CreateInvoiceRequest{
		CustomerID:  "cust-001",
		InvoiceDate: entity.MustDate("2024-10-01"),
		DueDate:     entity.MustDate("2024-10-31"),
		Amount:      decimal.NewFromInt(1000),
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	inv := decode[entity.Invoice](t, resp)
	assert.Equal(t, entity.InvoiceDraft, inv.Status)

	resp = doJSON(t, app, http.MethodPut, "/api/v1/invoices/"+inv.InvoiceID, map[string]string{"payment_status": "paid"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	inv = decode[entity.Invoice](t, resp)
	assert.True(t, inv.PaidAmount.Equal(decimal.NewFromInt(1000)))
	assert.True(t, inv.OutstandingAmount.IsZero())
	assert.NotNil(t, inv.PaymentDate)

	// cust-001 conserva solo el saldo de inv-001
	resp = doJSON(t, app, http.MethodGet, "/api/v1/customers/cust-001", nil)
	cust := decode[entity.Customer](t, resp)
	assert.Equal(t, 2, cust.TotalInvoices)
	assert.True(t, cust.OutstandingAmount.Equal(decimal.NewFromInt(12500)))
}

func TestInvoices_ListFilter(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/v1/invoices?status=overdue", nil)
	list := decode[dto.InvoicesResponse](t, resp)
	assert.Equal(t, 3, list.Total)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/invoices?status=bogus", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestInvoices_Reminder(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/v1/invoices/inv-001/reminders", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	res := decode[dto.ReminderResponse](t, resp)
	assert.Equal(t, 2, res.Invoice.ReminderCount)
	assert.Equal(t, entity.ChannelEmail, res.Communication.Type)
	assert.Equal(t, "cust-001", res.Communication.CustomerID)
}

func TestInvoices_PDF(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/v1/invoices/inv-003/pdf", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "invoice_inv-003.pdf")
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))

	resp = doJSON(t, app, http.MethodGet, "/api/v1/invoices/nope/pdf", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pagos y comunicaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestPayments_ByInvoice(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/v1/payments/invoice/inv-003/payments", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decode[dto.PaymentsResponse](t, resp)
	require.Len(t, list.Payments, 1)
	assert.Equal(t, "pay-002", list.Payments[0].ID)
}

func TestPayments_UploadReceipt(t *testing.T) {
	app := buildTestApp(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("invoice_id", "inv-001"))
	require.NoError(t, w.WriteField("transaction_id", "TXN-1"))
	part, err := w.CreateFormFile("file", "receipt.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/upload-receipt", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	res := decode[dto.ReceiptUploadResponse](t, resp)
	assert.True(t, res.Success)
	assert.Equal(t, "inv-001", res.InvoiceID)
	assert.Equal(t, "receipt.png", res.FileName)
	assert.EqualValues(t, len("fake image bytes"), res.Size)
}

func TestPayments_UploadReceiptWithoutFile(t *testing.T) {
	app := buildTestApp(t)
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("invoice_id", "inv-001"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/upload-receipt", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decode[dto.ErrorResponse](t, resp).Fields, "file")
}

func TestCommunications_SendAndHistory(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/v1/communications/send", dto.SendCommunicationRequest{
		CustomerID: "cust-002", Type: entity.ChannelSMS, Message: "Payment due",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	sent := decode[entity.Communication](t, resp)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/communications/customer/cust-002/history?limit=1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	hist := decode[dto.CommunicationHistoryResponse](t, resp)
	require.Len(t, hist.Communications, 1)
	assert.Equal(t, sent.ID, hist.Communications[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Analítica
// ──────────────────────────────────────────────────────────────────────────────

func TestAnalytics_Endpoints(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/analytics/summary", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 12, decode[dto.AnalyticsSummary](t, resp).TotalCustomers)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/analytics/dashboard?period_days=7", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 7, decode[dto.DashboardAnalytics](t, resp).PeriodDays)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/analytics/dashboard?period_days=999", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/analytics/revenue/trend?months=3", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, decode[dto.RevenueTrendResponse](t, resp).TotalPeriods)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/analytics/customer/cust-003/analytics", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, entity.RiskHigh, decode[dto.CustomerAnalytics](t, resp).RiskAssessment.CurrentRiskLevel)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/analytics/customer/nope/analytics", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
