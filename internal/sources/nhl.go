package sources

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"mksports/aggregator/internal/client"
	"mksports/aggregator/internal/models"
)

const (
	defaultNHLBaseURL = "https://api-web.nhle.com"
	nhlScoreDelay     = 1 * time.Second
	nhlFixtureDelay   = 500 * time.Millisecond
)

// NHL pulls the api-web schedule feed, one request per day.
type NHL struct {
	Client  *client.Client
	Sleep   Sleeper
	BaseURL string
}

func (n *NHL) Name() string { return "nhl" }

type nhlSchedule struct {
	GameWeek []struct {
		Games []nhlGame `json:"games"`
	} `json:"gameWeek"`
}

type nhlGame struct {
	GameState    string  `json:"gameState"`
	StartTimeUTC string  `json:"startTimeUTC"`
	HomeTeam     nhlTeam `json:"homeTeam"`
	AwayTeam     nhlTeam `json:"awayTeam"`
}

type nhlTeam struct {
	Name struct {
		Default string `json:"default"`
	} `json:"name"`
	Score int `json:"score"`
}

func (n *NHL) scheduleURL(date string) string {
	base := n.BaseURL
	if base == "" {
		base = defaultNHLBaseURL
	}
	return fmt.Sprintf("%s/v1/schedule/%s", base, date)
}

// Scores returns every game on the query date. Finished games (OFF or
// FINAL) carry the real score, everything else TBD. An empty gameWeek is
// the off-season: it yields an explicit sentinel record so callers can
// tell "nothing scheduled" from "nothing attempted". A hard failure
// yields an error-tagged sentinel instead of aborting the pipeline.
func (n *NHL) Scores(ctx context.Context, date string) ([]models.Event, error) {
	var schedule nhlSchedule
	if err := n.Client.GetJSON(ctx, n.scheduleURL(date), &schedule); err != nil {
		log.Error().Err(classifyFetch(err)).Str("date", date).Msg("NHL scores fetch failed")
		return []models.Event{{
			Sport:    models.SportNHL,
			League:   "NHL",
			Date:     date,
			HomeTeam: models.UnknownTeam,
			AwayTeam: models.UnknownTeam,
			Score:    fmt.Sprintf("Error: %v", err),
			Note:     "NHL source unavailable",
		}}, nil
	}

	if len(schedule.GameWeek) == 0 {
		return []models.Event{{
			Sport:    models.SportNHL,
			League:   "NHL",
			Date:     date,
			HomeTeam: models.UnknownTeam,
			AwayTeam: models.UnknownTeam,
			Score:    "No games scheduled",
		}}, nil
	}

	var events []models.Event
	for _, day := range schedule.GameWeek {
		for _, game := range day.Games {
			score := models.TBD
			if game.GameState == "OFF" || game.GameState == "FINAL" {
				score = fmt.Sprintf("%d-%d", game.HomeTeam.Score, game.AwayTeam.Score)
			}
			events = append(events, models.Event{
				Sport:    models.SportNHL,
				League:   "NHL",
				Date:     date,
				HomeTeam: game.HomeTeam.Name.Default,
				AwayTeam: game.AwayTeam.Name.Default,
				Score:    score,
			})
		}
	}
	n.Sleep(nhlScoreDelay)
	return events, nil
}

// Fixtures issues one request per day in the lookahead window and keeps
// only pregame (PRE) games.
func (n *NHL) Fixtures(ctx context.Context, today time.Time, daysAhead int) ([]models.Fixture, error) {
	var fixtures []models.Fixture
	for i := 0; i < daysAhead; i++ {
		date := today.AddDate(0, 0, i).Format(DateLayout)

		var schedule nhlSchedule
		if err := n.Client.GetJSON(ctx, n.scheduleURL(date), &schedule); err != nil {
			return fixtures, classifyFetch(err)
		}

		for _, day := range schedule.GameWeek {
			for _, game := range day.Games {
				if game.GameState != "PRE" {
					continue
				}
				fixtures = append(fixtures, models.Fixture{
					Sport:    models.SportNHL,
					League:   "NHL",
					Date:     date,
					Time:     timeOfISO(game.StartTimeUTC),
					HomeTeam: game.HomeTeam.Name.Default,
					AwayTeam: game.AwayTeam.Name.Default,
					Status:   models.StatusUpcoming,
				})
			}
		}
		n.Sleep(nhlFixtureDelay)
	}
	return fixtures, nil
}
