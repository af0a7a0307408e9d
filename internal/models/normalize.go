package models

import (
	"math"
	"strings"
)

// Sentinel values used instead of omitted fields so consumers never need
// field-existence checks.
const (
	UnknownTeam = "Unknown"
	TBD         = "TBD"
)

// OrUnknown substitutes the Unknown sentinel for blank team names.
func OrUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return UnknownTeam
	}
	return strings.TrimSpace(s)
}

// OrTBD substitutes the TBD sentinel for blank score or time values.
func OrTBD(s string) string {
	if strings.TrimSpace(s) == "" {
		return TBD
	}
	return strings.TrimSpace(s)
}

// Prob returns a sanitized probability pointer. NaN and infinite values
// become nil so every record stays losslessly JSON-serializable.
func Prob(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// SanitizeProb applies the NaN/Inf coercion to an already-optional value.
func SanitizeProb(p *float64) *float64 {
	if p == nil {
		return nil
	}
	return Prob(*p)
}

// Normalized returns the event with every field filled, using sentinel
// values for anything the source left blank. Pure: no I/O, no mutation.
func (e Event) Normalized() Event {
	e.HomeTeam = OrUnknown(e.HomeTeam)
	e.AwayTeam = OrUnknown(e.AwayTeam)
	e.Score = OrTBD(e.Score)
	return e
}

// Normalized returns the fixture with every field filled.
func (f Fixture) Normalized() Fixture {
	f.HomeTeam = OrUnknown(f.HomeTeam)
	f.AwayTeam = OrUnknown(f.AwayTeam)
	f.Time = OrTBD(f.Time)
	if f.Status == "" {
		f.Status = StatusUpcoming
	}
	return f
}

// Normalized returns the prediction with team sentinels applied and all
// probabilities sanitized.
func (p Prediction) Normalized() Prediction {
	p.HomeTeam = OrUnknown(p.HomeTeam)
	p.AwayTeam = OrUnknown(p.AwayTeam)
	p.HomeWinProb = SanitizeProb(p.HomeWinProb)
	p.DrawProb = SanitizeProb(p.DrawProb)
	p.AwayWinProb = SanitizeProb(p.AwayWinProb)
	return p
}
