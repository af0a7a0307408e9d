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

const nflScoreboardBody = `{
	"events": [
		{
			"date": "2024-09-15T17:00:00Z",
			"competitions": [{
				"competitors": [
					{"team": {"displayName": "Kansas City Chiefs"}},
					{"team": {"displayName": "Cincinnati Bengals"}}
				]
			}]
		},
		{
			"date": "2024-09-29T17:00:00Z",
			"competitions": [{
				"competitors": [
					{"team": {"displayName": "Buffalo Bills"}},
					{"team": {"displayName": "Baltimore Ravens"}}
				]
			}]
		},
		{
			"date": "2024-09-16T00:20:00Z",
			"competitions": [{"competitors": [{"team": {"displayName": "Lonely Team"}}]}]
		}
	]
}`

func TestNFLFixturesWindowFilter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/apis/site/v2/sports/football/nfl/scoreboard", r.URL.Path)
		w.Write([]byte(nflScoreboardBody))
	}))
	defer server.Close()

	recorder := &sleepRecorder{}
	nfl := &NFL{Client: client.New(time.Second), Sleep: recorder.sleep, BaseURL: server.URL}

	today := time.Date(2024, 9, 14, 0, 0, 0, 0, time.UTC)
	fixtures, err := nfl.Fixtures(context.Background(), today, 7)
	require.NoError(t, err)

	// Sep 29 is outside the window; the one-competitor row is malformed
	require.Len(t, fixtures, 1)
	fixture := fixtures[0]
	assert.Equal(t, models.SportNFL, fixture.Sport)
	assert.Equal(t, "Kansas City Chiefs", fixture.HomeTeam)
	assert.Equal(t, "Cincinnati Bengals", fixture.AwayTeam)
	assert.Equal(t, "2024-09-15", fixture.Date)
	assert.Equal(t, "17:00", fixture.Time)
	assert.Len(t, recorder.slept, 1)
}

func TestNFLFixturesFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	nfl := &NFL{Client: client.New(time.Second), Sleep: (&sleepRecorder{}).sleep, BaseURL: server.URL}

	today := time.Date(2024, 9, 14, 0, 0, 0, 0, time.UTC)
	_, err := nfl.Fixtures(context.Background(), today, 7)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestNFLFallbackFixtures(t *testing.T) {
	nfl := &NFL{}
	today := time.Date(2024, 9, 14, 0, 0, 0, 0, time.UTC)

	fixtures := nfl.FallbackFixtures(today, 7)
	require.Len(t, fixtures, 2, "Fallback is capped at two placeholder games")

	for i, f := range fixtures {
		assert.Equal(t, models.SportNFL, f.Sport)
		assert.Equal(t, today.AddDate(0, 0, i+2).Format(DateLayout), f.Date)
		assert.Equal(t, "13:00", f.Time)
		assert.NotEmpty(t, f.Note)
	}
}
