package sources

import (
	"context"
	"strings"
	"time"

	"mksports/aggregator/internal/client"
	"mksports/aggregator/internal/models"
)

const (
	defaultNBABaseURL = "https://cdn.nba.com"
	nbaFixtureDelay   = 500 * time.Millisecond

	// Upstream gameStatus code for a game that has not started.
	nbaStatusScheduled = 1
)

// NBA pulls the CDN scoreboard, a single aggregate endpoint rather than
// a per-day schedule.
type NBA struct {
	Client  *client.Client
	Sleep   Sleeper
	BaseURL string
}

func (n *NBA) Name() string { return "nba" }

type nbaScoreboard struct {
	Scoreboard struct {
		Games []struct {
			GameStatus  int    `json:"gameStatus"`
			GameTimeUTC string `json:"gameTimeUTC"`
			HomeTeam    struct {
				TeamName string `json:"teamName"`
			} `json:"homeTeam"`
			AwayTeam struct {
				TeamName string `json:"teamName"`
			} `json:"awayTeam"`
		} `json:"games"`
	} `json:"scoreboard"`
}

// Fixtures returns the not-yet-started games from the scoreboard. The
// orchestrator substitutes FallbackFixtures when this returns an error.
func (n *NBA) Fixtures(ctx context.Context, today time.Time, _ int) ([]models.Fixture, error) {
	base := n.BaseURL
	if base == "" {
		base = defaultNBABaseURL
	}

	var board nbaScoreboard
	if err := n.Client.GetJSON(ctx, base+"/static/json/liveData/scoreboard/todaysScoreboard_00.json", &board); err != nil {
		return nil, classifyFetch(err)
	}

	var fixtures []models.Fixture
	for _, game := range board.Scoreboard.Games {
		if game.GameStatus != nbaStatusScheduled {
			continue
		}
		date := today.Format(DateLayout)
		if i := strings.Index(game.GameTimeUTC, "T"); i > 0 {
			date = game.GameTimeUTC[:i]
		}
		fixtures = append(fixtures, models.Fixture{
			Sport:    models.SportNBA,
			League:   "NBA",
			Date:     date,
			Time:     timeOfISO(game.GameTimeUTC),
			HomeTeam: game.HomeTeam.TeamName,
			AwayTeam: game.AwayTeam.TeamName,
			Status:   models.StatusUpcoming,
		})
	}
	n.Sleep(nbaFixtureDelay)
	return fixtures, nil
}

// FallbackFixtures produces the deterministic NBA placeholder set.
func (n *NBA) FallbackFixtures(today time.Time, daysAhead int) []models.Fixture {
	return nbaFixtureFallback(today, daysAhead)
}
