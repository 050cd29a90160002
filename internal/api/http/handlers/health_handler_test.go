package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-triage-service/internal/observability"
)

func TestHealthLive(t *testing.T) {
	h := NewHealthHandler("hr-triage-service", "test", nil, nil, observability.NewMetrics())
	app := fiber.New()
	app.Get("/health/live", h.Live)

	resp, err := app.Test(httptest.NewRequest("GET", "/health/live", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestHealthMetricsReportsTriageCounts(t *testing.T) {
	metrics := observability.NewMetrics()
	metrics.RecordSubmission(true)
	metrics.RecordSubmission(true)
	metrics.RecordSubmission(false)
	metrics.RecordTransportFailure()

	h := NewHealthHandler("hr-triage-service", "test", nil, nil, metrics)
	app := fiber.New()
	app.Get("/health/metrics", h.Metrics)

	resp, err := app.Test(httptest.NewRequest("GET", "/health/metrics", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	defer resp.Body.Close()

	var body struct {
		Data struct {
			Submissions       int64 `json:"submissions"`
			AutoResolved      int64 `json:"auto_resolved"`
			Escalated         int64 `json:"escalated"`
			TransportFailures int64 `json:"transport_failures"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.Submissions != 3 || body.Data.AutoResolved != 2 || body.Data.Escalated != 1 {
		t.Fatalf("unexpected counts: %+v", body.Data)
	}
	if body.Data.TransportFailures != 1 {
		t.Fatalf("transport failures = %d, want 1", body.Data.TransportFailures)
	}
}
