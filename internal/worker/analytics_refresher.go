package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/hr-triage-service/internal/analytics"
)

// Refresher is the analytics recompute hook the worker drives.
type Refresher interface {
	Refresh(ctx context.Context) (*analytics.Summary, error)
}

// AnalyticsRefresher recomputes the KPI snapshot on a fixed cadence so
// dashboard reads never trigger a full aggregation on the hot path.
type AnalyticsRefresher struct {
	service  Refresher
	interval time.Duration
	logger   *zap.Logger
}

// NewAnalyticsRefresher constructs the worker.
func NewAnalyticsRefresher(service Refresher, interval time.Duration, logger *zap.Logger) *AnalyticsRefresher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &AnalyticsRefresher{service: service, interval: interval, logger: logger}
}

// Run refreshes immediately, then on every tick until the context ends.
// Intended to be launched in its own goroutine.
func (w *AnalyticsRefresher) Run(ctx context.Context) {
	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("analytics refresher stopped")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *AnalyticsRefresher) refresh(ctx context.Context) {
	if _, err := w.service.Refresh(ctx); err != nil {
		w.logger.Warn("analytics refresh failed", zap.Error(err))
		return
	}
	w.logger.Debug("analytics snapshot refreshed")
}
