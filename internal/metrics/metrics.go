// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RosterOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roster_operations_total",
			Help: "Roster and trainer mutations by outcome",
		},
		[]string{"operation", "result"},
	)

	ClassesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "classes_created_total",
			Help: "Total number of course classes created",
		},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)
)
