package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mksports/aggregator/internal/models"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err, "Snapshot file should exist: %s", path)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err, "Snapshot should be valid CSV")
	return rows
}

func TestScoresExport(t *testing.T) {
	dir := t.TempDir()
	events := []models.Event{
		{Sport: models.SportMLB, League: "MLB", Date: "2024-05-01", HomeTeam: "Yankees", AwayTeam: "Red Sox", Score: "3-2"},
		{Sport: models.SportSoccer, League: "Premier League", Date: "2024-05-01", HomeTeam: "Arsenal", AwayTeam: "Chelsea", Score: "2-1"},
	}

	require.NoError(t, Scores(dir, events))

	all := readCSV(t, filepath.Join(dir, "all_scores.csv"))
	require.Len(t, all, 3, "Header plus one row per event")
	assert.Equal(t, []string{"sport", "league", "date", "home_team", "away_team", "score", "note"}, all[0])
	assert.Equal(t, []string{"MLB", "MLB", "2024-05-01", "Yankees", "Red Sox", "3-2", ""}, all[1])

	mlb := readCSV(t, filepath.Join(dir, "mlb_scores.csv"))
	require.Len(t, mlb, 2, "Per-sport file holds only that sport's rows")
	assert.Equal(t, "Yankees", mlb[1][3])

	soccer := readCSV(t, filepath.Join(dir, "soccer_scores.csv"))
	require.Len(t, soccer, 2)
	assert.Equal(t, "Arsenal", soccer[1][3])
}

func TestFixturesExport(t *testing.T) {
	dir := t.TempDir()
	fixtures := []models.Fixture{
		{Sport: models.SportNBA, League: "NBA", Date: "2024-05-02", Time: "19:30",
			HomeTeam: "Lakers", AwayTeam: "Celtics", Status: models.StatusUpcoming, Note: "Fallback data"},
	}

	require.NoError(t, Fixtures(dir, fixtures))

	all := readCSV(t, filepath.Join(dir, "all_fixtures.csv"))
	require.Len(t, all, 2)
	assert.Equal(t, []string{"NBA", "NBA", "2024-05-02", "19:30", "Lakers", "Celtics", "Upcoming", "Fallback data"}, all[1])
}

func TestPredictionsExport(t *testing.T) {
	dir := t.TempDir()
	predictions := []models.Prediction{
		{Sport: models.SportSoccer, League: "Premier League", HomeTeam: "Arsenal", AwayTeam: "Chelsea",
			HomeWinProb: models.Prob(45.5), DrawProb: models.Prob(25), AwayWinProb: nil},
	}

	require.NoError(t, Predictions(dir, predictions))

	all := readCSV(t, filepath.Join(dir, "all_predictions.csv"))
	require.Len(t, all, 2)

	row := all[1]
	assert.Equal(t, "45.5", row[4], "Probabilities should format without trailing zeros")
	assert.Equal(t, "25", row[5])
	assert.Equal(t, "", row[6], "Nil probability should export as empty cell")
}

func TestExportEmptyPipeline(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Scores(dir, nil))

	all := readCSV(t, filepath.Join(dir, "all_scores.csv"))
	require.Len(t, all, 1, "Empty pipeline still writes a header-only snapshot")
}
