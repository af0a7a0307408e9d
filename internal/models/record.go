package models

// Event is one match observed by the scores pipeline. The score reflects
// upstream state at fetch time: Preview, Live and Final games all appear,
// so the same logical event can carry different scores on later runs.
type Event struct {
	Sport    Sport  `json:"sport"`
	League   string `json:"league"`
	Date     string `json:"date"`
	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`
	Score    string `json:"score"`
	Note     string `json:"note,omitempty"`
}

// Fixture is one upcoming match from the fixtures pipeline.
type Fixture struct {
	Sport    Sport  `json:"sport"`
	League   string `json:"league"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`
	Status   string `json:"status"`
	Note     string `json:"note,omitempty"`
}

// Prediction carries pass-through win probabilities from an upstream
// source. DrawProb is nil for sports that cannot end in a draw.
type Prediction struct {
	Sport       Sport    `json:"sport"`
	League      string   `json:"league"`
	HomeTeam    string   `json:"home_team"`
	AwayTeam    string   `json:"away_team"`
	HomeWinProb *float64 `json:"home_win_prob"`
	DrawProb    *float64 `json:"draw_prob"`
	AwayWinProb *float64 `json:"away_win_prob"`
	Note        string   `json:"note,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// StatusUpcoming is the only status the fixtures pipeline emits today.
const StatusUpcoming = "Upcoming"
