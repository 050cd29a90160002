package http

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-triage-service/internal/observability"
	"github.com/spec-kit/hr-triage-service/pkg/util"
)

func newTestApp(metrics *observability.Metrics) *fiber.App {
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), metrics, 0)
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"data": "ok"})
	})
	app.Get("/bad", func(c *fiber.Ctx) error {
		return util.NewValidationError("bad input", map[string]any{"field": "broken"})
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		panic("unexpected")
	})
	return app
}

func TestErrorMiddlewareRendersDomainError(t *testing.T) {
	app := newTestApp(observability.NewMetrics())
	resp, err := app.Test(httptest.NewRequest("GET", "/bad", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestErrorMiddlewareRecoversPanics(t *testing.T) {
	app := newTestApp(observability.NewMetrics())
	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}
}

func TestRequestLoggerRecordsFinalStatus(t *testing.T) {
	metrics := observability.NewMetrics()
	app := newTestApp(metrics)

	if _, err := app.Test(httptest.NewRequest("GET", "/ok", nil)); err != nil {
		t.Fatalf("request: %v", err)
	}
	if _, err := app.Test(httptest.NewRequest("GET", "/bad", nil)); err != nil {
		t.Fatalf("request: %v", err)
	}

	if n := metrics.RequestCount("/ok", "GET", fiber.StatusOK); n != 1 {
		t.Fatalf("ok request count = %d, want 1", n)
	}
	if n := metrics.RequestCount("/bad", "GET", fiber.StatusBadRequest); n != 1 {
		t.Fatalf("failed request must be counted under its rendered status, got %d", n)
	}
	if n := metrics.RequestCount("/bad", "GET", fiber.StatusOK); n != 0 {
		t.Fatalf("failed request must not be counted as 200, got %d", n)
	}
}
