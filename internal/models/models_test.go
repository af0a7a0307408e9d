package models

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalSport(t *testing.T) {
	assert.Equal(t, SportSoccer, CanonicalSport("soccer"), "Lowercase should resolve")
	assert.Equal(t, SportSoccer, CanonicalSport("SOCCER"), "Uppercase should resolve")
	assert.Equal(t, SportMLB, CanonicalSport("Mlb"), "Mixed case should resolve")
	assert.Equal(t, SportNHL, CanonicalSport("nhl"), "Abbreviation should resolve")

	// Unknown tokens pass through unchanged
	assert.Equal(t, Sport("cricket"), CanonicalSport("cricket"), "Unknown token should pass through")
}

func TestSportMatches(t *testing.T) {
	assert.True(t, SportSoccer.Matches("soccer"), "Should match lowercase token")
	assert.True(t, SportSoccer.Matches("Soccer"), "Should match canonical form")
	assert.True(t, SportNBA.Matches("NBA"), "Should match uppercase token")
	assert.False(t, SportNBA.Matches("nfl"), "Should not match a different sport")
	assert.False(t, SportSoccer.Matches("cricket"), "Should not match unknown sport")
}

func TestEventNormalized(t *testing.T) {
	e := Event{Sport: SportMLB, League: "MLB", Date: "2024-05-01"}
	n := e.Normalized()

	assert.Equal(t, UnknownTeam, n.HomeTeam, "Blank home team should become sentinel")
	assert.Equal(t, UnknownTeam, n.AwayTeam, "Blank away team should become sentinel")
	assert.Equal(t, TBD, n.Score, "Blank score should become sentinel")

	// Populated fields survive untouched
	full := Event{HomeTeam: "Yankees", AwayTeam: "Red Sox", Score: "3-2"}.Normalized()
	assert.Equal(t, "Yankees", full.HomeTeam)
	assert.Equal(t, "3-2", full.Score)
}

func TestFixtureNormalized(t *testing.T) {
	f := Fixture{Sport: SportNHL, League: "NHL", Date: "2024-05-01"}
	n := f.Normalized()

	assert.Equal(t, UnknownTeam, n.HomeTeam)
	assert.Equal(t, TBD, n.Time, "Blank time should become sentinel")
	assert.Equal(t, StatusUpcoming, n.Status, "Blank status should default to Upcoming")
}

func TestPredictionNormalized(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)
	p := Prediction{
		Sport:       SportSoccer,
		HomeWinProb: &nan,
		DrawProb:    &inf,
		AwayWinProb: Prob(30),
	}
	n := p.Normalized()

	assert.Nil(t, n.HomeWinProb, "NaN probability should be coerced to nil")
	assert.Nil(t, n.DrawProb, "Infinite probability should be coerced to nil")
	require.NotNil(t, n.AwayWinProb, "Finite probability should survive")
	assert.Equal(t, 30.0, *n.AwayWinProb)
	assert.Equal(t, UnknownTeam, n.HomeTeam)
}

func TestProb(t *testing.T) {
	require.NotNil(t, Prob(42.5))
	assert.Equal(t, 42.5, *Prob(42.5))
	assert.Nil(t, Prob(math.NaN()), "NaN should map to nil")
	assert.Nil(t, Prob(math.Inf(-1)), "-Inf should map to nil")
	assert.Nil(t, SanitizeProb(nil), "nil stays nil")
}

func TestPredictionJSONNullProbabilities(t *testing.T) {
	p := Prediction{Sport: SportNBA, League: "NBA", HomeTeam: "Lakers", AwayTeam: "Warriors"}

	data, err := json.Marshal(p)
	require.NoError(t, err, "Should marshal prediction")

	// Absent probabilities serialize as explicit nulls, not omitted keys
	body := string(data)
	assert.True(t, strings.Contains(body, `"home_win_prob":null`), "Nil prob should serialize as null: %s", body)
	assert.True(t, strings.Contains(body, `"draw_prob":null`), "Nil draw prob should serialize as null")
	assert.False(t, strings.Contains(body, `"note"`), "Empty note should be omitted")
}

func TestOrSentinels(t *testing.T) {
	assert.Equal(t, UnknownTeam, OrUnknown("   "), "Whitespace-only should become sentinel")
	assert.Equal(t, "Arsenal", OrUnknown(" Arsenal "), "Should trim surrounding whitespace")
	assert.Equal(t, TBD, OrTBD(""))
	assert.Equal(t, "2-1", OrTBD("2-1"))
}
