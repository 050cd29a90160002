package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/hr-triage-service/internal/analytics"
	"github.com/spec-kit/hr-triage-service/internal/config"
	"github.com/spec-kit/hr-triage-service/internal/persistence"
	"github.com/spec-kit/hr-triage-service/internal/repository"
	"github.com/spec-kit/hr-triage-service/pkg/util"
)

const analyticsCacheKey = "analytics:summary"

// AnalyticsService computes and caches the dashboard KPI summary. Reads serve
// the cached snapshot; a refresher recomputes it on a fixed cadence so the
// dashboard stays within one refresh interval of live data.
type AnalyticsService struct {
	tickets repository.TicketRepository
	cache   *persistence.Redis
	cfg     config.AnalyticsConfig
	logger  *zap.Logger
}

// NewAnalyticsService constructs the service.
func NewAnalyticsService(tickets repository.TicketRepository, cache *persistence.Redis, cfg config.AnalyticsConfig, logger *zap.Logger) *AnalyticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsService{tickets: tickets, cache: cache, cfg: cfg, logger: logger}
}

// Summary returns the cached KPI snapshot, recomputing on a cache miss.
func (s *AnalyticsService) Summary(ctx context.Context) (*analytics.Summary, error) {
	data, err := s.cache.GetSnapshot(ctx, analyticsCacheKey)
	if err == nil {
		var summary analytics.Summary
		if jsonErr := json.Unmarshal(data, &summary); jsonErr == nil {
			return &summary, nil
		}
		s.logger.Warn("discarding undecodable analytics snapshot")
	} else if !errors.Is(err, persistence.ErrCacheMiss) {
		s.logger.Warn("analytics cache read failed", zap.Error(err))
	}
	return s.Refresh(ctx)
}

// Refresh recomputes the summary over the trailing window and stores it.
// Cache write failures degrade to serving the fresh computation.
func (s *AnalyticsService) Refresh(ctx context.Context) (*analytics.Summary, error) {
	windowEnd := time.Now().UTC()
	windowStart := windowEnd.Add(-s.cfg.Window())

	tickets, err := s.tickets.ListSince(ctx, windowStart)
	if err != nil {
		return nil, util.MapError(err)
	}

	summary := analytics.Aggregate(tickets, windowStart, windowEnd, analytics.CostModel{
		HandlingMinutes: s.cfg.HandlingMinutes,
		HourlyCost:      s.cfg.HourlyCost,
	})

	if data, jsonErr := json.Marshal(summary); jsonErr == nil {
		if cacheErr := s.cache.SetSnapshot(ctx, analyticsCacheKey, data, s.cfg.RefreshInterval()); cacheErr != nil {
			s.logger.Warn("analytics cache write failed", zap.Error(cacheErr))
		}
	}
	return &summary, nil
}
