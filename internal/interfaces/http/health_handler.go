package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/intellicollect-api/internal/application/dto"
)

// HealthHandler estado y datos del servicio.
type HealthHandler struct {
	info dto.HealthResponse
}

// NewHealthHandler construye el handler.
func NewHealthHandler(info dto.HealthResponse) *HealthHandler {
	if info.Status == "" {
		info.Status = "healthy"
	}
	return &HealthHandler{info: info}
}

// Health GET /health
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(h.info)
}

// Info GET /
func (h *HealthHandler) Info(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": h.info.App + " collections API",
		"version": h.info.Version,
		"docs":    "/docs",
		"health":  "/health",
	})
}
