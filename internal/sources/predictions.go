package sources

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"mksports/aggregator/internal/client"
	"mksports/aggregator/internal/models"
)

const (
	defaultOddsBaseURL    = "https://www.oddsportal.com"
	defaultBBRefBaseURL   = "https://www.baseball-reference.com"
	predictionFetchDelay  = 1 * time.Second
	maxSoccerPredictions  = 10
	maxMLBPredictionTeams = 5
)

// SoccerPredictions derives implied win probabilities from a scraped
// odds page. No modeling happens here: probability = 100 / decimal odds.
type SoccerPredictions struct {
	Client  *client.Client
	Sleep   Sleeper
	BaseURL string
}

func (s *SoccerPredictions) Name() string { return "soccer-odds" }

func (s *SoccerPredictions) Predictions(ctx context.Context) ([]models.Prediction, error) {
	base := s.BaseURL
	if base == "" {
		base = defaultOddsBaseURL
	}

	doc, err := s.Client.GetHTML(ctx, base+"/matches/soccer/")
	if err != nil {
		return nil, classifyFetch(err)
	}

	predictions := parseOddsMatches(doc)
	if len(predictions) == 0 {
		return nil, parseFailure("no odds rows found on soccer matches page")
	}
	s.Sleep(predictionFetchDelay)
	return predictions, nil
}

// FallbackPredictions produces the deterministic soccer placeholder.
func (s *SoccerPredictions) FallbackPredictions() []models.Prediction {
	return soccerPredictionFallback()
}

// parseOddsMatches converts the first rows of the odds table into
// implied probabilities. Rows missing teams or odds are skipped.
func parseOddsMatches(doc *goquery.Document) []models.Prediction {
	var predictions []models.Prediction
	doc.Find(".deactivate").EachWithBreak(func(i int, match *goquery.Selection) bool {
		if i >= maxSoccerPredictions {
			return false
		}

		teams := match.Find(".participant-name")
		odds := match.Find(".odds-cell")
		if teams.Length() < 2 || odds.Length() < 3 {
			return true
		}

		predictions = append(predictions, models.Prediction{
			Sport:       models.SportSoccer,
			League:      "Various",
			HomeTeam:    strings.TrimSpace(teams.Eq(0).Text()),
			AwayTeam:    strings.TrimSpace(teams.Eq(1).Text()),
			HomeWinProb: impliedProb(odds.Eq(0).Text()),
			DrawProb:    impliedProb(odds.Eq(1).Text()),
			AwayWinProb: impliedProb(odds.Eq(2).Text()),
		})
		return true
	})
	return predictions
}

// impliedProb converts a decimal odds cell into a percentage, or nil
// when the cell is blank, a dash, or unparseable.
func impliedProb(cell string) *float64 {
	cell = strings.TrimSpace(cell)
	if cell == "" || cell == "-" {
		return nil
	}
	odds, err := strconv.ParseFloat(cell, 64)
	if err != nil || odds == 0 {
		return nil
	}
	return models.Prob(100 / odds)
}

// MLBPredictions lifts playoff odds from the Baseball Reference table as
// pass-through values. A failure here is a silent skip: the pipeline
// still carries the other prediction sources.
type MLBPredictions struct {
	Client  *client.Client
	Sleep   Sleeper
	BaseURL string
	Season  int
}

func (m *MLBPredictions) Name() string { return "mlb-playoff-odds" }

func (m *MLBPredictions) Predictions(ctx context.Context) ([]models.Prediction, error) {
	base := m.BaseURL
	if base == "" {
		base = defaultBBRefBaseURL
	}
	season := m.Season
	if season == 0 {
		season = time.Now().Year()
	}

	url := base + "/leagues/majors/" + strconv.Itoa(season) + "-playoff-odds.shtml"
	doc, err := m.Client.GetHTML(ctx, url)
	if err != nil {
		return nil, classifyFetch(err)
	}

	table := doc.Find("table#playoff_odds")
	if table.Length() == 0 {
		return nil, parseFailure("playoff odds table not found")
	}

	var predictions []models.Prediction
	table.Find("tbody tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		if i >= maxMLBPredictionTeams {
			return false
		}
		cells := row.Find("td")
		if cells.Length() < 2 {
			return true
		}

		team := strings.TrimSpace(cells.Eq(0).Text())
		probText := strings.TrimSuffix(strings.TrimSpace(cells.Eq(1).Text()), "%")
		var homeProb *float64
		if v, err := strconv.ParseFloat(probText, 64); err == nil {
			homeProb = models.Prob(v)
		}

		predictions = append(predictions, models.Prediction{
			Sport:       models.SportMLB,
			League:      "MLB",
			HomeTeam:    team,
			AwayTeam:    "Opponent",
			HomeWinProb: homeProb,
		})
		return true
	})
	m.Sleep(predictionFetchDelay)
	return predictions, nil
}

// StaticPredictions carries the fixed pass-through records for sports
// with no live prediction source wired yet.
type StaticPredictions struct{}

func (StaticPredictions) Name() string { return "static" }

func (StaticPredictions) Predictions(_ context.Context) ([]models.Prediction, error) {
	return []models.Prediction{
		{
			Sport: models.SportNBA, League: "NBA",
			HomeTeam: "Lakers", AwayTeam: "Warriors",
			HomeWinProb: models.Prob(60), AwayWinProb: models.Prob(40),
		},
		{
			Sport: models.SportNFL, League: "NFL",
			HomeTeam: "Chiefs", AwayTeam: "49ers",
			HomeWinProb: models.Prob(65), AwayWinProb: models.Prob(35),
		},
		{
			Sport: models.SportNHL, League: "NHL",
			HomeTeam: "Maple Leafs", AwayTeam: "Bruins",
			HomeWinProb: models.Prob(55), AwayWinProb: models.Prob(45),
		},
	}, nil
}
