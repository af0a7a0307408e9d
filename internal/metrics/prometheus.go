package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the aggregation service

var (
	// Upstream source metrics
	SourceFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sportsfeed_source_fetches_total",
			Help: "Total number of source adapter invocations",
		},
		[]string{"source", "status"},
	)

	SourceFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sportsfeed_source_fetch_duration_seconds",
			Help:    "Duration of source adapter invocations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	FallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sportsfeed_fallbacks_total",
			Help: "Total number of fallback substitutions per source",
		},
		[]string{"source"},
	)

	// Pipeline metrics
	PipelineRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sportsfeed_pipeline_runs_total",
			Help: "Total number of full pipeline runs",
		},
		[]string{"pipeline"},
	)

	PipelineDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sportsfeed_pipeline_duration_seconds",
			Help:    "Duration of full pipeline runs in seconds",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
		},
		[]string{"pipeline"},
	)

	PipelineRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "sportsfeed_pipeline_records",
			Help: "Number of records produced by the last pipeline run",
		},
		[]string{"pipeline"},
	)

	// Cache metrics
	CacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sportsfeed_cache_hits_total",
			Help: "Total number of cache hits per pipeline slot",
		},
		[]string{"pipeline"},
	)

	CacheMissesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sportsfeed_cache_misses_total",
			Help: "Total number of cache misses per pipeline slot",
		},
		[]string{"pipeline"},
	)

	CacheInvalidationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sportsfeed_cache_invalidations_total",
			Help: "Total number of explicit cache invalidations",
		},
	)

	// HTTP boundary metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sportsfeed_http_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"endpoint", "status"},
	)

	// System metrics
	SystemUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sportsfeed_system_uptime_seconds",
			Help: "System uptime in seconds",
		},
	)
)

// RecordSourceFetch records one adapter invocation
func RecordSourceFetch(source, status string, duration float64) {
	SourceFetchesTotal.WithLabelValues(source, status).Inc()
	SourceFetchDuration.WithLabelValues(source).Observe(duration)
}

// RecordFallback records a fallback substitution for a source
func RecordFallback(source string) {
	FallbacksTotal.WithLabelValues(source).Inc()
}

// RecordPipelineRun records a full pipeline run
func RecordPipelineRun(pipeline string, records int, duration float64) {
	PipelineRunsTotal.WithLabelValues(pipeline).Inc()
	PipelineDuration.WithLabelValues(pipeline).Observe(duration)
	PipelineRecords.WithLabelValues(pipeline).Set(float64(records))
}

// RecordCacheHit records a cache hit for a pipeline slot
func RecordCacheHit(pipeline string) {
	CacheHitsTotal.WithLabelValues(pipeline).Inc()
}

// RecordCacheMiss records a cache miss for a pipeline slot
func RecordCacheMiss(pipeline string) {
	CacheMissesTotal.WithLabelValues(pipeline).Inc()
}

// RecordCacheInvalidation records an explicit invalidation signal
func RecordCacheInvalidation() {
	CacheInvalidationsTotal.Inc()
}

// RecordHTTPRequest records an API request
func RecordHTTPRequest(endpoint, status string) {
	HTTPRequestsTotal.WithLabelValues(endpoint, status).Inc()
}
