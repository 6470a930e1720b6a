package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/intellicollect-api/internal/application/billing"
	"github.com/jhoicas/intellicollect-api/internal/application/dto"
	"github.com/jhoicas/intellicollect-api/internal/domain"
)

// PaymentHandler maneja las peticiones HTTP de pagos.
type PaymentHandler struct {
	uc *billing.PaymentUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *billing.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Create POST /api/v1/payments
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	payment, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}

// ListByInvoice GET /api/v1/payments/invoice/:id/payments
func (h *PaymentHandler) ListByInvoice(c *fiber.Ctx) error {
	list, err := h.uc.ListByInvoice(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// UploadReceipt POST /api/v1/payments/upload-receipt (multipart: file, invoice_id, transaction_id)
func (h *PaymentHandler) UploadReceipt(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return respondError(c, domain.NewValidationError("file", "archivo requerido"))
	}
	res, err := h.uc.UploadReceipt(c.Context(), billing.Receipt{
		InvoiceID:     c.FormValue("invoice_id"),
		TransactionID: c.FormValue("transaction_id"),
		FileName:      file.Filename,
		Size:          file.Size,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}
