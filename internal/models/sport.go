package models

import "strings"

// Sport identifies one of the supported competition families.
type Sport string

const (
	SportSoccer Sport = "Soccer"
	SportMLB    Sport = "MLB"
	SportNHL    Sport = "NHL"
	SportNBA    Sport = "NBA"
	SportNFL    Sport = "NFL"
)

// AllSports lists the supported sports in canonical pipeline order.
var AllSports = []Sport{SportSoccer, SportMLB, SportNHL, SportNBA, SportNFL}

var sportLookup = map[string]Sport{
	"soccer": SportSoccer,
	"mlb":    SportMLB,
	"nhl":    SportNHL,
	"nba":    SportNBA,
	"nfl":    SportNFL,
}

// CanonicalSport resolves a user-supplied sport token case-insensitively.
// Unrecognized tokens pass through unchanged so callers can still compare
// them case-insensitively against stored values.
func CanonicalSport(token string) Sport {
	if s, ok := sportLookup[strings.ToLower(token)]; ok {
		return s
	}
	return Sport(token)
}

// Matches reports whether the sport matches a user-supplied token after
// canonical resolution, ignoring case.
func (s Sport) Matches(token string) bool {
	return strings.EqualFold(string(s), string(CanonicalSport(token)))
}
