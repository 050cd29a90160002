package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-triage-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Tickets   *handlers.TicketsHandler
	Analytics *handlers.AnalyticsHandler
	Knowledge *handlers.KnowledgeHandler
	Meta      *handlers.MetaHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	api := app.Group("/api")
	api.Post("/tickets", cfg.Tickets.Submit)
	api.Get("/tickets", cfg.Tickets.List)
	api.Get("/tickets/:id", cfg.Tickets.Get)
	api.Post("/tickets/:id/feedback", cfg.Tickets.Feedback)
	api.Post("/tickets/:id/override", cfg.Tickets.Override)

	api.Get("/analytics/summary", cfg.Analytics.Summary)
	api.Get("/knowledge-base/search", cfg.Knowledge.Search)
	api.Get("/categories", cfg.Meta.Categories)
	api.Get("/departments", cfg.Meta.Departments)
}
