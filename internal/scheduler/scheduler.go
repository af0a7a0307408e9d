// Package scheduler refreshes the pipeline caches on a cron schedule so
// long-running deployments do not serve indefinitely stale snapshots.
// The cache itself has no expiry; this is the only automatic
// invalidation signal besides the /refresh endpoint.
package scheduler

import (
	"context"
	"fmt"
	"strconv"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"mksports/aggregator/internal/aggregate"
	"mksports/aggregator/internal/cache"
	"mksports/aggregator/internal/config"
	"mksports/aggregator/internal/export"
	"mksports/aggregator/internal/models"
)

// Scheduler manages the periodic cache refresh.
type Scheduler struct {
	cfg   *config.Config
	agg   *aggregate.Aggregator
	cache *cache.Service
	cron  *cron.Cron
}

// New creates a scheduler instance.
func New(cfg *config.Config, agg *aggregate.Aggregator, cacheService *cache.Service) *Scheduler {
	return &Scheduler{
		cfg:   cfg,
		agg:   agg,
		cache: cacheService,
		cron:  cron.New(),
	}
}

// Start registers the refresh job and starts the cron loop.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.cfg.RefreshCron, func() {
		s.Refresh(ctx)
	}); err != nil {
		return fmt.Errorf("failed to schedule cache refresh: %w", err)
	}

	s.cron.Start()
	log.Info().
		Str("schedule", s.cfg.RefreshCron).
		Msg("Cache refresh scheduled")
	return nil
}

// Stop stops the cron loop.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Refresh invalidates every pipeline slot, re-warms the scores and
// fixtures slots under the keys the boundary uses, and writes CSV
// snapshots of the fresh results. Predictions are left cold: they are
// recomputed on the next request.
func (s *Scheduler) Refresh(ctx context.Context) {
	log.Info().Msg("Running scheduled cache refresh...")
	s.cache.InvalidateAll()

	today := s.agg.Today()
	scores := s.cache.Scores.Get(today, func() any {
		return s.agg.Scores(ctx, today)
	}).([]models.Event)
	fixtures := s.cache.Fixtures.Get(strconv.Itoa(s.cfg.DefaultDaysAhead), func() any {
		return s.agg.Fixtures(ctx, s.cfg.DefaultDaysAhead)
	}).([]models.Fixture)
	log.Info().
		Int("scores", len(scores)).
		Int("fixtures", len(fixtures)).
		Msg("Cache refresh complete")

	if err := export.Scores(s.cfg.ExportDir, scores); err != nil {
		log.Error().Err(err).Msg("Failed to export scores snapshot")
	}
	if err := export.Fixtures(s.cfg.ExportDir, fixtures); err != nil {
		log.Error().Err(err).Msg("Failed to export fixtures snapshot")
	}
}
