package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-triage-service/internal/service"
)

// AnalyticsHandler serves the dashboard KPI summary.
type AnalyticsHandler struct {
	service *service.AnalyticsService
}

// NewAnalyticsHandler constructs handler.
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: analyticsService}
}

// Summary GET /api/analytics/summary. Serves the cached snapshot;
// ?refresh=1 forces a recompute.
func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	if c.Query("refresh") == "1" {
		summary, err := h.service.Refresh(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": summary})
	}
	summary, err := h.service.Summary(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": summary})
}
