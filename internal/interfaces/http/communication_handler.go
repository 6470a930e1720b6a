package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/intellicollect-api/internal/application/billing"
	"github.com/jhoicas/intellicollect-api/internal/application/dto"
)

// CommunicationHandler maneja el envío e historial de comunicaciones.
type CommunicationHandler struct {
	uc *billing.CommunicationUseCase
}

// NewCommunicationHandler construye el handler.
func NewCommunicationHandler(uc *billing.CommunicationUseCase) *CommunicationHandler {
	return &CommunicationHandler{uc: uc}
}

// Send POST /api/v1/communications/send
func (h *CommunicationHandler) Send(c *fiber.Ctx) error {
	var in dto.SendCommunicationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	comm, err := h.uc.Send(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comm)
}

// History GET /api/v1/communications/customer/:id/history?skip=&limit=
func (h *CommunicationHandler) History(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return invalidParams(c)
	}
	res, err := h.uc.History(c.Context(), c.Params("id"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}
