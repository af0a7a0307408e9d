// Package aggregate runs the source adapters for one pipeline and merges
// their contributions into a single deterministic snapshot. Adapters run
// strictly sequentially; a failing source never aborts its siblings.
package aggregate

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"mksports/aggregator/internal/client"
	"mksports/aggregator/internal/metrics"
	"mksports/aggregator/internal/models"
	"mksports/aggregator/internal/sources"
)

// Aggregator orchestrates the three pipelines. The source factories are
// invoked once per run so each run gets a fresh HTTP client; tests swap
// them for fakes.
type Aggregator struct {
	Now func() time.Time

	ScoreSources      func() []sources.ScoreSource
	FixtureSources    func() []sources.FixtureSource
	PredictionSources func() []sources.PredictionSource
}

// New builds the production aggregator. timeout bounds every upstream
// request inside a run.
func New(timeout time.Duration) *Aggregator {
	return &Aggregator{
		Now: time.Now,
		ScoreSources: func() []sources.ScoreSource {
			c := client.New(timeout)
			return []sources.ScoreSource{
				&sources.SoccerScores{Client: c, Sleep: time.Sleep},
				&sources.MLB{Client: c, Sleep: time.Sleep},
				&sources.NHL{Client: c, Sleep: time.Sleep},
			}
		},
		FixtureSources: func() []sources.FixtureSource {
			c := client.New(timeout)
			return []sources.FixtureSource{
				&sources.SoccerFixtures{Client: c, Sleep: time.Sleep},
				&sources.MLB{Client: c, Sleep: time.Sleep},
				&sources.NHL{Client: c, Sleep: time.Sleep},
				&sources.NBA{Client: c, Sleep: time.Sleep},
				&sources.NFL{Client: c, Sleep: time.Sleep},
			}
		},
		PredictionSources: func() []sources.PredictionSource {
			c := client.New(timeout)
			return []sources.PredictionSource{
				&sources.SoccerPredictions{Client: c, Sleep: time.Sleep},
				&sources.MLBPredictions{Client: c, Sleep: time.Sleep},
				sources.StaticPredictions{},
			}
		},
	}
}

// Today returns the current calendar date in pipeline format.
func (a *Aggregator) Today() string {
	return a.Now().UTC().Format(sources.DateLayout)
}

func (a *Aggregator) today() time.Time {
	now := a.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// Scores runs the scores pipeline for one calendar date. Failing sources
// are skipped; the result is always schema-valid, possibly partial.
func (a *Aggregator) Scores(ctx context.Context, date string) []models.Event {
	start := time.Now()

	var all []models.Event
	for _, src := range a.ScoreSources() {
		t0 := time.Now()
		events, err := src.Scores(ctx, date)
		if err != nil {
			metrics.RecordSourceFetch(src.Name(), "error", time.Since(t0).Seconds())
			log.Error().Err(err).Str("source", src.Name()).Msg("Score source failed, skipping")
			continue
		}
		metrics.RecordSourceFetch(src.Name(), "success", time.Since(t0).Seconds())
		all = append(all, events...)
	}

	for i := range all {
		all[i] = all[i].Normalized()
	}
	sortEvents(all)
	metrics.RecordPipelineRun("scores", len(all), time.Since(start).Seconds())
	return all
}

// Fixtures runs the fixtures pipeline for the [today, today+daysAhead]
// window. A source that fails outright is replaced by its deterministic
// fallback when it provides one, otherwise skipped.
func (a *Aggregator) Fixtures(ctx context.Context, daysAhead int) []models.Fixture {
	start := time.Now()
	today := a.today()

	var all []models.Fixture
	for _, src := range a.FixtureSources() {
		t0 := time.Now()
		fixtures, err := src.Fixtures(ctx, today, daysAhead)
		if err != nil {
			metrics.RecordSourceFetch(src.Name(), "error", time.Since(t0).Seconds())
			fb, canFallBack := src.(sources.FixtureFallback)
			switch {
			case errors.Is(err, sources.ErrNoDataForSeason):
				// Off-season is an answer, not an outage: no placeholders
				log.Info().Str("source", src.Name()).Msg("Fixture source has no data for season")
			case canFallBack:
				log.Error().Err(err).Str("source", src.Name()).Msg("Fixture source failed, using fallback")
				metrics.RecordFallback(src.Name())
				all = append(all, fb.FallbackFixtures(today, daysAhead)...)
			default:
				log.Error().Err(err).Str("source", src.Name()).Msg("Fixture source failed, skipping")
			}
			// Partial contributions accumulated before the failure still count.
			all = append(all, fixtures...)
			continue
		}
		metrics.RecordSourceFetch(src.Name(), "success", time.Since(t0).Seconds())
		all = append(all, fixtures...)
	}

	for i := range all {
		all[i] = all[i].Normalized()
	}
	sortFixtures(all)
	metrics.RecordPipelineRun("fixtures", len(all), time.Since(start).Seconds())
	return all
}

// Predictions runs the predictions pipeline. When nothing at all was
// produced, a single error-tagged record is returned so the boundary can
// surface the "all sources down" condition.
func (a *Aggregator) Predictions(ctx context.Context) []models.Prediction {
	start := time.Now()

	var all []models.Prediction
	for _, src := range a.PredictionSources() {
		t0 := time.Now()
		predictions, err := src.Predictions(ctx)
		if err != nil {
			metrics.RecordSourceFetch(src.Name(), "error", time.Since(t0).Seconds())
			fb, canFallBack := src.(sources.PredictionFallback)
			switch {
			case errors.Is(err, sources.ErrNoDataForSeason):
				log.Info().Str("source", src.Name()).Msg("Prediction source has no data for season")
			case canFallBack:
				log.Error().Err(err).Str("source", src.Name()).Msg("Prediction source failed, using fallback")
				metrics.RecordFallback(src.Name())
				all = append(all, fb.FallbackPredictions()...)
			default:
				log.Error().Err(err).Str("source", src.Name()).Msg("Prediction source failed, skipping")
			}
			continue
		}
		metrics.RecordSourceFetch(src.Name(), "success", time.Since(t0).Seconds())
		all = append(all, predictions...)
	}

	if len(all) == 0 {
		all = []models.Prediction{{Error: "No predictions available"}}
	}
	for i := range all {
		all[i] = all[i].Normalized()
	}
	sortPredictions(all)
	metrics.RecordPipelineRun("predictions", len(all), time.Since(start).Seconds())
	return all
}

// AllFailed reports the predictions "all sources down" condition: a
// non-empty set where every record carries an error marker.
func AllFailed(predictions []models.Prediction) bool {
	if len(predictions) == 0 {
		return false
	}
	for _, p := range predictions {
		if p.Error == "" {
			return false
		}
	}
	return true
}

func sortEvents(events []models.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.Sport != b.Sport {
			return a.Sport < b.Sport
		}
		if a.League != b.League {
			return a.League < b.League
		}
		return a.Date < b.Date
	})
}

func sortFixtures(fixtures []models.Fixture) {
	sort.SliceStable(fixtures, func(i, j int) bool {
		a, b := fixtures[i], fixtures[j]
		if a.Sport != b.Sport {
			return a.Sport < b.Sport
		}
		if a.League != b.League {
			return a.League < b.League
		}
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.Time < b.Time
	})
}

func sortPredictions(predictions []models.Prediction) {
	sort.SliceStable(predictions, func(i, j int) bool {
		a, b := predictions[i], predictions[j]
		if a.Sport != b.Sport {
			return a.Sport < b.Sport
		}
		return a.League < b.League
	})
}
