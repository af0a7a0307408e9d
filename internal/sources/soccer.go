package sources

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"mksports/aggregator/internal/client"
	"mksports/aggregator/internal/models"
)

// Soccer is scraped from HTML, one request per league. The scores source
// (FBref) is the least reliable upstream we talk to, so it is the only
// adapter wrapped in a retry policy.

const (
	soccerScoreAttempts  = 3
	soccerScoreBackoff   = 5 * time.Second
	soccerScoreDelay     = 2 * time.Second
	soccerFixtureDelay   = 1 * time.Second
	defaultScoresBaseURL = "https://fbref.com"
	defaultESPNBaseURL   = "https://www.espn.com"
)

var soccerCompetitions = []struct {
	Code int
	Name string
	Slug string
}{
	{9, "Premier League", "Premier-League"},
	{12, "La Liga", "La-Liga"},
	{20, "Bundesliga", "Bundesliga"},
	{11, "Serie A", "Serie-A"},
	{13, "Ligue 1", "Ligue-1"},
	{22, "MLS", "Major-League-Soccer"},
}

var soccerFixtureLeagues = []struct {
	Name string
	Path string
}{
	{"Premier League", "eng.1"},
	{"La Liga", "esp.1"},
	{"Bundesliga", "ger.1"},
	{"Serie A", "ita.1"},
	{"Ligue 1", "fra.1"},
	{"MLS", "usa.1"},
}

// SoccerScores scrapes the FBref schedule table per competition.
type SoccerScores struct {
	Client  *client.Client
	Sleep   Sleeper
	BaseURL string
}

func (s *SoccerScores) Name() string { return "soccer-scores" }

// Scores fetches every competition with up to three attempts each and an
// increasing backoff between attempts. A league whose attempts are all
// exhausted is logged and skipped; its siblings are unaffected.
func (s *SoccerScores) Scores(ctx context.Context, date string) ([]models.Event, error) {
	base := s.BaseURL
	if base == "" {
		base = defaultScoresBaseURL
	}

	var events []models.Event
	for _, comp := range soccerCompetitions {
		url := fmt.Sprintf("%s/en/comps/%d/schedule/%s-Scores-and-Fixtures", base, comp.Code, comp.Slug)

		var parsed []models.Event
		var lastErr error
		ok := false
		for attempt := 1; attempt <= soccerScoreAttempts; attempt++ {
			doc, err := s.Client.GetHTML(ctx, url)
			if err != nil {
				lastErr = classifyFetch(err)
			} else if parsed, err = parseFBrefSchedule(doc, comp.Name, date); err != nil {
				lastErr = err
			} else {
				ok = true
				s.Sleep(soccerScoreDelay)
				break
			}

			log.Warn().
				Err(lastErr).
				Str("league", comp.Name).
				Int("attempt", attempt).
				Msg("Soccer scores attempt failed")
			s.Sleep(soccerScoreBackoff * time.Duration(attempt))
		}
		if !ok {
			log.Error().
				Err(lastErr).
				Str("league", comp.Name).
				Int("attempts", soccerScoreAttempts).
				Msg("Soccer scores exhausted retries, skipping league")
			continue
		}
		events = append(events, parsed...)
	}
	return events, nil
}

// parseFBrefSchedule extracts score rows for the query date from an FBref
// schedule page. Pure: testable against captured pages.
func parseFBrefSchedule(doc *goquery.Document, league, date string) ([]models.Event, error) {
	table := doc.Find("table#sched_all")
	if table.Length() == 0 {
		return nil, parseFailure("schedule table not found for %s", league)
	}

	var events []models.Event
	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		class, _ := row.Attr("class")
		if strings.Contains(class, "thead") || strings.Contains(class, "over_header") {
			return
		}

		matchDate := strings.TrimSpace(row.Find(`td[data-stat="date"]`).Text())
		home := strings.TrimSpace(row.Find(`td[data-stat="home_team"]`).Text())
		away := strings.TrimSpace(row.Find(`td[data-stat="away_team"]`).Text())
		score := strings.TrimSpace(row.Find(`td[data-stat="score"]`).Text())

		if home == "" || away == "" || matchDate != date {
			return
		}
		events = append(events, models.Event{
			Sport:    models.SportSoccer,
			League:   league,
			Date:     matchDate,
			HomeTeam: home,
			AwayTeam: away,
			Score:    models.OrTBD(score),
		})
	})
	return events, nil
}

// SoccerFixtures scrapes the ESPN fixtures page per league.
type SoccerFixtures struct {
	Client  *client.Client
	Sleep   Sleeper
	BaseURL string
}

func (s *SoccerFixtures) Name() string { return "soccer-fixtures" }

// Fixtures fetches each league once. A league that fails outright is
// replaced by deterministic fallback records so the soccer contribution
// is degraded, never absent.
func (s *SoccerFixtures) Fixtures(ctx context.Context, today time.Time, daysAhead int) ([]models.Fixture, error) {
	base := s.BaseURL
	if base == "" {
		base = defaultESPNBaseURL
	}
	end := today.AddDate(0, 0, daysAhead)

	var fixtures []models.Fixture
	for _, league := range soccerFixtureLeagues {
		url := fmt.Sprintf("%s/soccer/fixtures/_/league/%s", base, league.Path)

		doc, err := s.Client.GetHTML(ctx, url)
		if err != nil {
			log.Error().
				Err(classifyFetch(err)).
				Str("league", league.Name).
				Msg("Soccer fixtures fetch failed, using fallback")
			fixtures = append(fixtures, soccerFixtureFallback(league.Name, today, daysAhead)...)
			continue
		}

		parsed := parseESPNFixtures(doc, league.Name, today, end)
		if len(parsed) == 0 {
			log.Debug().Str("league", league.Name).Msg("No soccer fixtures in window")
		}
		fixtures = append(fixtures, parsed...)
		s.Sleep(soccerFixtureDelay)
	}
	return fixtures, nil
}

// parseESPNFixtures walks the ESPN fixture tables. Sub-header rows carry
// the calendar date ("Saturday, September 14") for the match rows that
// follow; rows outside [today, end] are dropped. Malformed rows are
// skipped individually.
func parseESPNFixtures(doc *goquery.Document, league string, today, end time.Time) []models.Fixture {
	var fixtures []models.Fixture
	currentDate := today

	doc.Find("table.Table tr.Table__TR").Each(func(_ int, row *goquery.Selection) {
		class, _ := row.Attr("class")
		if strings.Contains(class, "Table__header") {
			return
		}
		if strings.Contains(class, "Table__sub-header") {
			if d, ok := parseESPNDateHeader(row.Text(), today.Year()); ok {
				currentDate = d
			}
			return
		}

		teams := row.Find("a.AnchorLink")
		if teams.Length() < 2 {
			return
		}
		home := strings.TrimSpace(teams.Eq(0).Text())
		away := strings.TrimSpace(teams.Eq(1).Text())
		matchTime := strings.TrimSpace(row.Find("td.date__col").Text())

		if currentDate.Before(today) || currentDate.After(end) {
			return
		}
		fixtures = append(fixtures, models.Fixture{
			Sport:    models.SportSoccer,
			League:   league,
			Date:     currentDate.Format(DateLayout),
			Time:     models.OrTBD(matchTime),
			HomeTeam: home,
			AwayTeam: away,
			Status:   models.StatusUpcoming,
		})
	})
	return fixtures
}

// parseESPNDateHeader parses a sub-header like "Saturday, September 14".
// The page never carries a year, so the query year is assumed.
func parseESPNDateHeader(text string, year int) (time.Time, bool) {
	parts := strings.SplitN(strings.TrimSpace(text), ", ", 2)
	if len(parts) != 2 {
		return time.Time{}, false
	}
	parsed, err := time.Parse("January 2", parts[1])
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(year, parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), true
}
