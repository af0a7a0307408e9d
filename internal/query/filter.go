// Package query narrows a cached pipeline snapshot by sport or league.
// An empty filter result is a reportable condition at the boundary, not
// a silent empty list; the helpers here only do the narrowing.
package query

import (
	"strings"

	"mksports/aggregator/internal/models"
)

// EventsBySport keeps events whose sport matches the user token after
// canonical resolution, ignoring case.
func EventsBySport(events []models.Event, token string) []models.Event {
	var out []models.Event
	for _, e := range events {
		if e.Sport.Matches(token) {
			out = append(out, e)
		}
	}
	return out
}

// FixturesBySport keeps fixtures whose sport matches the user token.
func FixturesBySport(fixtures []models.Fixture, token string) []models.Fixture {
	var out []models.Fixture
	for _, f := range fixtures {
		if f.Sport.Matches(token) {
			out = append(out, f)
		}
	}
	return out
}

// PredictionsBySport keeps predictions whose sport matches the user token.
func PredictionsBySport(predictions []models.Prediction, token string) []models.Prediction {
	var out []models.Prediction
	for _, p := range predictions {
		if p.Sport.Matches(token) {
			out = append(out, p)
		}
	}
	return out
}

// FixturesByLeague keeps soccer fixtures whose league contains the
// user-supplied fragment, ignoring case.
func FixturesByLeague(fixtures []models.Fixture, league string) []models.Fixture {
	fragment := strings.ToLower(league)
	var out []models.Fixture
	for _, f := range fixtures {
		if f.Sport == models.SportSoccer && strings.Contains(strings.ToLower(f.League), fragment) {
			out = append(out, f)
		}
	}
	return out
}

// PredictionsByLeague keeps soccer predictions whose league contains the
// user-supplied fragment, ignoring case.
func PredictionsByLeague(predictions []models.Prediction, league string) []models.Prediction {
	fragment := strings.ToLower(league)
	var out []models.Prediction
	for _, p := range predictions {
		if p.Sport == models.SportSoccer && strings.Contains(strings.ToLower(p.League), fragment) {
			out = append(out, p)
		}
	}
	return out
}
