package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// GenerationsTotal tracks generation attempts by outcome
	// (success, validation_failed, malformed_output, upstream_error,
	// rate_limited, error)
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shopsmart_generations_total",
			Help: "Total number of shopping list generation attempts",
		},
		[]string{"outcome"},
	)

	// GenerationDuration tracks end-to-end generation latency, dominated
	// by the completion call
	GenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shopsmart_generation_duration_seconds",
			Help:    "Shopping list generation duration in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
		},
	)
)

// RegisterMetrics registers all Prometheus metrics
// This is called during application startup
func RegisterMetrics() {
	// Metrics are auto-registered via promauto, but we keep this function
	// for consistency and future manual registration if needed
}
