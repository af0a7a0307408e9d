package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mksports/aggregator/internal/client"
	"mksports/aggregator/internal/models"
)

const nbaScoreboardBody = `{
	"scoreboard": {
		"games": [
			{
				"gameStatus": 1,
				"gameTimeUTC": "2024-05-02T00:30:00Z",
				"homeTeam": {"teamName": "Lakers"},
				"awayTeam": {"teamName": "Nuggets"}
			},
			{
				"gameStatus": 2,
				"gameTimeUTC": "2024-05-01T23:00:00Z",
				"homeTeam": {"teamName": "Celtics"},
				"awayTeam": {"teamName": "Heat"}
			},
			{
				"gameStatus": 3,
				"gameTimeUTC": "2024-05-01T21:00:00Z",
				"homeTeam": {"teamName": "Bucks"},
				"awayTeam": {"teamName": "Pacers"}
			}
		]
	}
}`

func TestNBAFixturesKeepsScheduledOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/static/json/liveData/scoreboard/todaysScoreboard_00.json", r.URL.Path)
		w.Write([]byte(nbaScoreboardBody))
	}))
	defer server.Close()

	recorder := &sleepRecorder{}
	nba := &NBA{Client: client.New(time.Second), Sleep: recorder.sleep, BaseURL: server.URL}

	today := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	fixtures, err := nba.Fixtures(context.Background(), today, 7)
	require.NoError(t, err)
	require.Len(t, fixtures, 1, "Live and finished games should be dropped")

	fixture := fixtures[0]
	assert.Equal(t, models.SportNBA, fixture.Sport)
	assert.Equal(t, "Lakers", fixture.HomeTeam)
	assert.Equal(t, "Nuggets", fixture.AwayTeam)
	assert.Equal(t, "2024-05-02", fixture.Date, "Date should come from the game timestamp, not the query date")
	assert.Equal(t, "00:30", fixture.Time)
	assert.Len(t, recorder.slept, 1)
}

func TestNBAFixturesFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	nba := &NBA{Client: client.New(time.Second), Sleep: (&sleepRecorder{}).sleep, BaseURL: server.URL}

	today := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	_, err := nba.Fixtures(context.Background(), today, 7)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestNBAFallbackFixtures(t *testing.T) {
	nba := &NBA{}
	today := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	fixtures := nba.FallbackFixtures(today, 7)
	require.Len(t, fixtures, 3, "Fallback is capped at three placeholder games")

	for i, f := range fixtures {
		assert.Equal(t, models.SportNBA, f.Sport)
		assert.Equal(t, today.AddDate(0, 0, i+1).Format(DateLayout), f.Date, "Placeholders start tomorrow")
		assert.Equal(t, "19:30", f.Time)
		assert.NotEmpty(t, f.Note, "Fallback records must be marked")
		assert.NotEqual(t, f.HomeTeam, f.AwayTeam, "A team cannot play itself")
	}

	// A short window shrinks the placeholder set
	assert.Len(t, nba.FallbackFixtures(today, 1), 1)
}
