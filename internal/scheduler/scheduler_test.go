package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mksports/aggregator/internal/aggregate"
	"mksports/aggregator/internal/cache"
	"mksports/aggregator/internal/config"
	"mksports/aggregator/internal/models"
	"mksports/aggregator/internal/sources"
)

type countingScoreSource struct {
	calls int
}

func (c *countingScoreSource) Name() string { return "counting-scores" }
func (c *countingScoreSource) Scores(_ context.Context, date string) ([]models.Event, error) {
	c.calls++
	return []models.Event{
		{Sport: models.SportMLB, League: "MLB", Date: date, HomeTeam: "Yankees", AwayTeam: "Red Sox", Score: "3-2"},
	}, nil
}

type countingFixtureSource struct {
	calls int
}

func (c *countingFixtureSource) Name() string { return "counting-fixtures" }
func (c *countingFixtureSource) Fixtures(_ context.Context, today time.Time, _ int) ([]models.Fixture, error) {
	c.calls++
	return []models.Fixture{
		{Sport: models.SportNHL, League: "NHL", Date: today.Format(sources.DateLayout), Time: "19:00",
			HomeTeam: "Rangers", AwayTeam: "Bruins", Status: models.StatusUpcoming},
	}, nil
}

func TestRefreshWarmsCacheAndExports(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		DefaultDaysAhead: 7,
		ExportDir:        dir,
		RefreshCron:      "0 5 * * *",
	}

	score := &countingScoreSource{}
	fixture := &countingFixtureSource{}
	agg := &aggregate.Aggregator{
		Now: func() time.Time { return time.Date(2024, 5, 1, 5, 0, 0, 0, time.UTC) },
		ScoreSources: func() []sources.ScoreSource {
			return []sources.ScoreSource{score}
		},
		FixtureSources: func() []sources.FixtureSource {
			return []sources.FixtureSource{fixture}
		},
	}
	cacheService := cache.NewService()

	sched := New(cfg, agg, cacheService)
	sched.Refresh(context.Background())

	require.Equal(t, 1, score.calls)
	require.Equal(t, 1, fixture.calls)

	// The refresh warmed the slots under the boundary keys: a request for
	// today's scores or the default window must not recompute
	cacheService.Scores.Get("2024-05-01", func() any {
		t.Fatal("scores slot should already be warm")
		return nil
	})
	cacheService.Fixtures.Get("7", func() any {
		t.Fatal("fixtures slot should already be warm")
		return nil
	})
	assert.Equal(t, 1, score.calls)
	assert.Equal(t, 1, fixture.calls)

	// Snapshots were written for both warmed pipelines
	for _, name := range []string{"all_scores.csv", "mlb_scores.csv", "all_fixtures.csv", "nhl_fixtures.csv"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "Expected snapshot %s", name)
	}
}

func TestStartRejectsBadCron(t *testing.T) {
	cfg := &config.Config{RefreshCron: "not a cron spec", DefaultDaysAhead: 7}
	sched := New(cfg, &aggregate.Aggregator{}, cache.NewService())

	err := sched.Start(context.Background())
	require.Error(t, err, "Malformed schedule should fail fast")
	sched.Stop()
}
