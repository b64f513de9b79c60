package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stockgame_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stockgame_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// CSV ingestion metrics
	CSVParseDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stockgame_csv_parse_duration_seconds",
			Help:    "Time spent parsing one CSV resource",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
		[]string{"resource"},
	)

	CSVRowsParsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stockgame_csv_rows_parsed_total",
			Help: "Total number of CSV rows parsed into records",
		},
		[]string{"resource"},
	)

	ParseWarningsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stockgame_parse_warnings_total",
			Help: "Malformed fields that degraded to their zero value",
		},
		[]string{"resource", "field"},
	)

	// Dataset cache metrics
	DatasetCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stockgame_dataset_cache_hits_total",
			Help: "Memoized dataset reads served from cache",
		},
		[]string{"key"},
	)

	DatasetCacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stockgame_dataset_cache_misses_total",
			Help: "Dataset reads that triggered a parse/compute",
		},
		[]string{"key"},
	)
)
