// Package export writes CSV snapshots of a pipeline result: one file for
// the whole pipeline plus one per sport present. It is a boundary side
// effect only; the in-memory pipeline never depends on these files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"mksports/aggregator/internal/models"
)

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}

func sportFile(dir string, sport models.Sport, pipeline string) string {
	return filepath.Join(dir, strings.ToLower(string(sport))+"_"+pipeline+".csv")
}

// Scores writes all_scores.csv and per-sport score snapshots into dir.
func Scores(dir string, events []models.Event) error {
	header := []string{"sport", "league", "date", "home_team", "away_team", "score", "note"}
	row := func(e models.Event) []string {
		return []string{string(e.Sport), e.League, e.Date, e.HomeTeam, e.AwayTeam, e.Score, e.Note}
	}

	rows := make([][]string, 0, len(events))
	perSport := make(map[models.Sport][][]string)
	for _, e := range events {
		r := row(e)
		rows = append(rows, r)
		perSport[e.Sport] = append(perSport[e.Sport], r)
	}

	if err := writeCSV(filepath.Join(dir, "all_scores.csv"), header, rows); err != nil {
		return err
	}
	for sport, sportRows := range perSport {
		if err := writeCSV(sportFile(dir, sport, "scores"), header, sportRows); err != nil {
			return err
		}
	}
	return nil
}

// Fixtures writes all_fixtures.csv and per-sport fixture snapshots.
func Fixtures(dir string, fixtures []models.Fixture) error {
	header := []string{"sport", "league", "date", "time", "home_team", "away_team", "status", "note"}
	row := func(f models.Fixture) []string {
		return []string{string(f.Sport), f.League, f.Date, f.Time, f.HomeTeam, f.AwayTeam, f.Status, f.Note}
	}

	rows := make([][]string, 0, len(fixtures))
	perSport := make(map[models.Sport][][]string)
	for _, f := range fixtures {
		r := row(f)
		rows = append(rows, r)
		perSport[f.Sport] = append(perSport[f.Sport], r)
	}

	if err := writeCSV(filepath.Join(dir, "all_fixtures.csv"), header, rows); err != nil {
		return err
	}
	for sport, sportRows := range perSport {
		if err := writeCSV(sportFile(dir, sport, "fixtures"), header, sportRows); err != nil {
			return err
		}
	}
	return nil
}

// Predictions writes all_predictions.csv and per-sport snapshots.
func Predictions(dir string, predictions []models.Prediction) error {
	header := []string{"sport", "league", "home_team", "away_team", "home_win_prob", "draw_prob", "away_win_prob", "note", "error"}
	prob := func(p *float64) string {
		if p == nil {
			return ""
		}
		return strconv.FormatFloat(*p, 'f', -1, 64)
	}
	row := func(p models.Prediction) []string {
		return []string{
			string(p.Sport), p.League, p.HomeTeam, p.AwayTeam,
			prob(p.HomeWinProb), prob(p.DrawProb), prob(p.AwayWinProb),
			p.Note, p.Error,
		}
	}

	rows := make([][]string, 0, len(predictions))
	perSport := make(map[models.Sport][][]string)
	for _, p := range predictions {
		r := row(p)
		rows = append(rows, r)
		perSport[p.Sport] = append(perSport[p.Sport], r)
	}

	if err := writeCSV(filepath.Join(dir, "all_predictions.csv"), header, rows); err != nil {
		return err
	}
	for sport, sportRows := range perSport {
		if err := writeCSV(sportFile(dir, sport, "predictions"), header, sportRows); err != nil {
			return err
		}
	}
	return nil
}
