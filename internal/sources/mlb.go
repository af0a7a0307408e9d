package sources

import (
	"context"
	"fmt"
	"time"

	"mksports/aggregator/internal/client"
	"mksports/aggregator/internal/models"
)

const (
	defaultMLBBaseURL = "https://statsapi.mlb.com"
	mlbScoreDelay     = 1 * time.Second
	mlbFixtureDelay   = 500 * time.Millisecond
)

// MLB pulls the statsapi schedule feed, one request per day.
type MLB struct {
	Client  *client.Client
	Sleep   Sleeper
	BaseURL string
}

func (m *MLB) Name() string { return "mlb" }

type mlbSchedule struct {
	Dates []struct {
		Date  string    `json:"date"`
		Games []mlbGame `json:"games"`
	} `json:"dates"`
}

type mlbGame struct {
	GameDate string `json:"gameDate"`
	Status   struct {
		AbstractGameState string `json:"abstractGameState"`
	} `json:"status"`
	Teams struct {
		Home mlbTeamSide `json:"home"`
		Away mlbTeamSide `json:"away"`
	} `json:"teams"`
}

type mlbTeamSide struct {
	Score int `json:"score"`
	Team  struct {
		Name string `json:"name"`
	} `json:"team"`
}

func (m *MLB) scheduleURL(date string) string {
	base := m.BaseURL
	if base == "" {
		base = defaultMLBBaseURL
	}
	return fmt.Sprintf("%s/api/v1/schedule?hydrate=game(content(summary)),team&date=%s&sportId=1", base, date)
}

// Scores returns every Preview, Live or Final game on the query date.
// Games that have not started carry the TBD score sentinel.
func (m *MLB) Scores(ctx context.Context, date string) ([]models.Event, error) {
	var schedule mlbSchedule
	if err := m.Client.GetJSON(ctx, m.scheduleURL(date), &schedule); err != nil {
		return nil, classifyFetch(err)
	}

	var events []models.Event
	for _, day := range schedule.Dates {
		for _, game := range day.Games {
			switch game.Status.AbstractGameState {
			case "Preview", "Live", "Final":
			default:
				continue
			}

			score := models.TBD
			if game.Teams.Home.Score > 0 || game.Teams.Away.Score > 0 {
				score = fmt.Sprintf("%d-%d", game.Teams.Home.Score, game.Teams.Away.Score)
			}
			events = append(events, models.Event{
				Sport:    models.SportMLB,
				League:   "MLB",
				Date:     day.Date,
				HomeTeam: game.Teams.Home.Team.Name,
				AwayTeam: game.Teams.Away.Team.Name,
				Score:    score,
			})
		}
	}
	m.Sleep(mlbScoreDelay)
	return events, nil
}

// Fixtures issues one request per day in the lookahead window and keeps
// only games still in the Preview state.
func (m *MLB) Fixtures(ctx context.Context, today time.Time, daysAhead int) ([]models.Fixture, error) {
	var fixtures []models.Fixture
	for i := 0; i < daysAhead; i++ {
		date := today.AddDate(0, 0, i).Format(DateLayout)

		var schedule mlbSchedule
		if err := m.Client.GetJSON(ctx, m.scheduleURL(date), &schedule); err != nil {
			return fixtures, classifyFetch(err)
		}

		for _, day := range schedule.Dates {
			for _, game := range day.Games {
				if game.Status.AbstractGameState != "Preview" {
					continue
				}
				fixtures = append(fixtures, models.Fixture{
					Sport:    models.SportMLB,
					League:   "MLB",
					Date:     date,
					Time:     timeOfISO(game.GameDate),
					HomeTeam: game.Teams.Home.Team.Name,
					AwayTeam: game.Teams.Away.Team.Name,
					Status:   models.StatusUpcoming,
				})
			}
		}
		m.Sleep(mlbFixtureDelay)
	}
	return fixtures, nil
}
