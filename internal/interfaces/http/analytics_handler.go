package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/intellicollect-api/internal/application/analytics"
	"github.com/jhoicas/intellicollect-api/internal/application/dto"
)

// AnalyticsHandler expone los reportes de cartera. Cada llamada recalcula sobre el
// estado actual.
type AnalyticsHandler struct {
	uc *analytics.AnalyticsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// Summary GET /api/v1/analytics/summary
func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// Dashboard GET /api/v1/analytics/dashboard?period_days=30
func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	var params dto.DashboardParams
	if err := c.QueryParser(&params); err != nil {
		return invalidParams(c)
	}
	dash, err := h.uc.Dashboard(c.Context(), params)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dash)
}

// RevenueTrend GET /api/v1/analytics/revenue/trend?period=monthly&months=12
func (h *AnalyticsHandler) RevenueTrend(c *fiber.Ctx) error {
	var params dto.RevenueTrendParams
	if err := c.QueryParser(&params); err != nil {
		return invalidParams(c)
	}
	trend, err := h.uc.RevenueTrend(c.Context(), params)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(trend)
}

// CustomerAnalytics GET /api/v1/analytics/customer/:id/analytics
func (h *AnalyticsHandler) CustomerAnalytics(c *fiber.Ctx) error {
	res, err := h.uc.CustomerAnalytics(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}
