// Package server exposes the aggregation pipelines over HTTP. It is the
// request-routing boundary around the core: handlers resolve cache
// slots, apply the query filter and map the distinct degraded conditions
// onto status codes (404 "no data for this query", 503 "all prediction
// sources down").
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"mksports/aggregator/internal/aggregate"
	"mksports/aggregator/internal/cache"
	"mksports/aggregator/internal/metrics"
	"mksports/aggregator/internal/models"
)

// Server wires the aggregator and its cache slots to the HTTP API.
type Server struct {
	agg              *aggregate.Aggregator
	cache            *cache.Service
	defaultDaysAhead int
}

// New creates the API server.
func New(agg *aggregate.Aggregator, cacheService *cache.Service, defaultDaysAhead int) *Server {
	return &Server{
		agg:              agg,
		cache:            cacheService,
		defaultDaysAhead: defaultDaysAhead,
	}
}

// Handler returns the routed HTTP handler with CORS applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /scores", s.handleScores)
	mux.HandleFunc("GET /scores/{sport}", s.handleScoresBySport)
	mux.HandleFunc("GET /fixtures", s.handleFixtures)
	mux.HandleFunc("GET /fixtures/{sport}", s.handleFixturesBySport)
	mux.HandleFunc("GET /fixtures/soccer/{league}", s.handleFixturesByLeague)
	mux.HandleFunc("GET /predictions", s.handlePredictions)
	mux.HandleFunc("GET /predictions/{sport}", s.handlePredictionsBySport)
	mux.HandleFunc("GET /predictions/soccer/{league}", s.handlePredictionsByLeague)
	mux.HandleFunc("GET /refresh", s.handleRefresh)
	mux.HandleFunc("POST /refresh", s.handleRefresh)

	return cors(mux)
}

// cors allows any origin, mirroring the open frontend this API serves.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Pipeline runs are detached from the request context: there is no
// mid-run cancellation, and a result computed for one caller is served
// to the next from the cache slot.
func (s *Server) cachedScores(date string) []models.Event {
	v := s.cache.Scores.Get(date, func() any {
		return s.agg.Scores(context.Background(), date)
	})
	return v.([]models.Event)
}

func (s *Server) cachedFixtures(daysAhead int) []models.Fixture {
	v := s.cache.Fixtures.Get(strconv.Itoa(daysAhead), func() any {
		return s.agg.Fixtures(context.Background(), daysAhead)
	})
	return v.([]models.Fixture)
}

func (s *Server) cachedPredictions() []models.Prediction {
	v := s.cache.Predictions.Get("all", func() any {
		return s.agg.Predictions(context.Background())
	})
	return v.([]models.Prediction)
}

func writeJSON(w http.ResponseWriter, endpoint string, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Str("endpoint", endpoint).Msg("Failed to encode response")
	}
	metrics.RecordHTTPRequest(endpoint, strconv.Itoa(status))
}

func writeError(w http.ResponseWriter, endpoint string, status int, message string) {
	writeJSON(w, endpoint, status, map[string]string{"error": message})
}

func (s *Server) handleHome(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, "/", http.StatusOK, map[string]string{
		"message": "Sports API - Scores, Predictions & Fixtures",
	})
}

func (s *Server) queryDate(r *http.Request) string {
	if date := r.URL.Query().Get("date"); date != "" {
		return date
	}
	return s.agg.Today()
}

func (s *Server) queryDaysAhead(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("days_ahead")
	if raw == "" {
		return s.defaultDaysAhead, true
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 || days > 30 {
		return 0, false
	}
	return days, true
}
