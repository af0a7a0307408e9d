package server

import (
	"fmt"
	"net/http"

	"mksports/aggregator/internal/aggregate"
	"mksports/aggregator/internal/query"
)

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	date := s.queryDate(r)
	data := s.cachedScores(date)
	if len(data) == 0 {
		writeError(w, "/scores", http.StatusNotFound, fmt.Sprintf("No scores for %s", date))
		return
	}
	writeJSON(w, "/scores", http.StatusOK, data)
}

func (s *Server) handleScoresBySport(w http.ResponseWriter, r *http.Request) {
	sport := r.PathValue("sport")
	date := s.queryDate(r)

	filtered := query.EventsBySport(s.cachedScores(date), sport)
	if len(filtered) == 0 {
		writeError(w, "/scores/{sport}", http.StatusNotFound,
			fmt.Sprintf("No %s scores for %s (check season)", sport, date))
		return
	}
	writeJSON(w, "/scores/{sport}", http.StatusOK, filtered)
}

func (s *Server) handleFixtures(w http.ResponseWriter, r *http.Request) {
	days, ok := s.queryDaysAhead(r)
	if !ok {
		writeError(w, "/fixtures", http.StatusBadRequest, "days_ahead must be an integer in [1,30]")
		return
	}

	data := s.cachedFixtures(days)
	if len(data) == 0 {
		writeError(w, "/fixtures", http.StatusNotFound,
			fmt.Sprintf("No fixtures found for next %d days", days))
		return
	}
	writeJSON(w, "/fixtures", http.StatusOK, data)
}

func (s *Server) handleFixturesBySport(w http.ResponseWriter, r *http.Request) {
	sport := r.PathValue("sport")
	days, ok := s.queryDaysAhead(r)
	if !ok {
		writeError(w, "/fixtures/{sport}", http.StatusBadRequest, "days_ahead must be an integer in [1,30]")
		return
	}

	filtered := query.FixturesBySport(s.cachedFixtures(days), sport)
	if len(filtered) == 0 {
		writeError(w, "/fixtures/{sport}", http.StatusNotFound,
			fmt.Sprintf("No %s fixtures for next %d days", sport, days))
		return
	}
	writeJSON(w, "/fixtures/{sport}", http.StatusOK, filtered)
}

func (s *Server) handleFixturesByLeague(w http.ResponseWriter, r *http.Request) {
	league := r.PathValue("league")
	days, ok := s.queryDaysAhead(r)
	if !ok {
		writeError(w, "/fixtures/soccer/{league}", http.StatusBadRequest, "days_ahead must be an integer in [1,30]")
		return
	}

	filtered := query.FixturesByLeague(s.cachedFixtures(days), league)
	if len(filtered) == 0 {
		writeError(w, "/fixtures/soccer/{league}", http.StatusNotFound,
			fmt.Sprintf("No %s fixtures for next %d days", league, days))
		return
	}
	writeJSON(w, "/fixtures/soccer/{league}", http.StatusOK, filtered)
}

func (s *Server) handlePredictions(w http.ResponseWriter, _ *http.Request) {
	data := s.cachedPredictions()
	if aggregate.AllFailed(data) {
		writeError(w, "/predictions", http.StatusServiceUnavailable,
			"Predictions sources down; retry later")
		return
	}
	writeJSON(w, "/predictions", http.StatusOK, data)
}

func (s *Server) handlePredictionsBySport(w http.ResponseWriter, r *http.Request) {
	sport := r.PathValue("sport")

	filtered := query.PredictionsBySport(s.cachedPredictions(), sport)
	if len(filtered) == 0 {
		writeError(w, "/predictions/{sport}", http.StatusNotFound,
			fmt.Sprintf("No predictions for %s", sport))
		return
	}
	writeJSON(w, "/predictions/{sport}", http.StatusOK, filtered)
}

func (s *Server) handlePredictionsByLeague(w http.ResponseWriter, r *http.Request) {
	league := r.PathValue("league")

	filtered := query.PredictionsByLeague(s.cachedPredictions(), league)
	if len(filtered) == 0 {
		writeError(w, "/predictions/soccer/{league}", http.StatusNotFound,
			fmt.Sprintf("No %s predictions", league))
		return
	}
	writeJSON(w, "/predictions/soccer/{league}", http.StatusOK, filtered)
}

func (s *Server) handleRefresh(w http.ResponseWriter, _ *http.Request) {
	s.cache.InvalidateAll()
	writeJSON(w, "/refresh", http.StatusOK, map[string]string{"message": "Cache refreshed"})
}
