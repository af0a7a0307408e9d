package sources

import (
	"context"
	"strings"
	"time"

	"mksports/aggregator/internal/client"
	"mksports/aggregator/internal/models"
)

const (
	defaultNFLBaseURL = "https://site.api.espn.com"
	nflFixtureDelay   = 500 * time.Millisecond
)

// NFL pulls the ESPN scoreboard, a single aggregate endpoint covering
// the current slate; events are narrowed to the lookahead window here.
type NFL struct {
	Client  *client.Client
	Sleep   Sleeper
	BaseURL string
}

func (n *NFL) Name() string { return "nfl" }

type nflScoreboard struct {
	Events []struct {
		Date         string `json:"date"`
		Competitions []struct {
			Competitors []struct {
				Team struct {
					DisplayName string `json:"displayName"`
				} `json:"team"`
			} `json:"competitors"`
		} `json:"competitions"`
	} `json:"events"`
}

// Fixtures returns scoreboard events dated inside [today, today+daysAhead].
func (n *NFL) Fixtures(ctx context.Context, today time.Time, daysAhead int) ([]models.Fixture, error) {
	base := n.BaseURL
	if base == "" {
		base = defaultNFLBaseURL
	}
	end := today.AddDate(0, 0, daysAhead)

	var board nflScoreboard
	if err := n.Client.GetJSON(ctx, base+"/apis/site/v2/sports/football/nfl/scoreboard", &board); err != nil {
		return nil, classifyFetch(err)
	}

	var fixtures []models.Fixture
	for _, event := range board.Events {
		dateStr := event.Date
		if i := strings.Index(dateStr, "T"); i > 0 {
			dateStr = dateStr[:i]
		}
		eventDate, err := time.Parse(DateLayout, dateStr)
		if err != nil || eventDate.Before(today) || eventDate.After(end) {
			continue
		}
		if len(event.Competitions) == 0 || len(event.Competitions[0].Competitors) < 2 {
			continue
		}

		competitors := event.Competitions[0].Competitors
		fixtures = append(fixtures, models.Fixture{
			Sport:    models.SportNFL,
			League:   "NFL",
			Date:     dateStr,
			Time:     timeOfISO(event.Date),
			HomeTeam: competitors[0].Team.DisplayName,
			AwayTeam: competitors[1].Team.DisplayName,
			Status:   models.StatusUpcoming,
		})
	}
	n.Sleep(nflFixtureDelay)
	return fixtures, nil
}

// FallbackFixtures produces the deterministic NFL placeholder set.
func (n *NFL) FallbackFixtures(today time.Time, daysAhead int) []models.Fixture {
	return nflFixtureFallback(today, daysAhead)
}
