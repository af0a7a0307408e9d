// Package sources contains one adapter per upstream feed. Every adapter
// fetches from a single source, parses its native shape and emits
// canonical records. Failures are classified (errors.go) and either
// handled inside the adapter or returned for the orchestrator to resolve
// against the adapter's fallback hook.
package sources

import (
	"context"
	"time"

	"mksports/aggregator/internal/models"
)

// DateLayout is the calendar-date format used throughout the pipelines.
const DateLayout = "2006-01-02"

// Sleeper injects courtesy and backoff delays so tests can simulate
// elapsed time without real sleeps.
type Sleeper func(d time.Duration)

// ScoreSource yields score events for one calendar date.
type ScoreSource interface {
	Name() string
	Scores(ctx context.Context, date string) ([]models.Event, error)
}

// FixtureSource yields upcoming fixtures inside [today, today+daysAhead].
type FixtureSource interface {
	Name() string
	Fixtures(ctx context.Context, today time.Time, daysAhead int) ([]models.Fixture, error)
}

// PredictionSource yields pass-through win probability records.
type PredictionSource interface {
	Name() string
	Predictions(ctx context.Context) ([]models.Prediction, error)
}

// FixtureFallback is implemented by fixture sources that can stand in
// deterministic placeholders when the whole source is unreachable. The
// orchestrator decides when to invoke it.
type FixtureFallback interface {
	FallbackFixtures(today time.Time, daysAhead int) []models.Fixture
}

// PredictionFallback is the prediction-pipeline counterpart.
type PredictionFallback interface {
	FallbackPredictions() []models.Prediction
}

// timeOfISO slices the HH:MM component out of an ISO-8601 timestamp,
// returning the TBD sentinel when no time component is present.
func timeOfISO(ts string) string {
	for i := 0; i < len(ts); i++ {
		if ts[i] == 'T' {
			if len(ts) >= i+6 {
				return ts[i+1 : i+6]
			}
			break
		}
	}
	return models.TBD
}
