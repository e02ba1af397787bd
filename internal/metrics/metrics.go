// Package metrics exposes Prometheus instrumentation for storage, AI and HTTP.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultOK      = "ok"
	ResultMiss    = "miss"
	ResultError   = "error"
	ResultSkipped = "skipped"
)

var (
	StorageOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barberpro_storage_operations_total",
			Help: "Entity store operations by operation and result",
		},
		[]string{"op", "result"},
	)

	StorageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "barberpro_storage_operation_duration_seconds",
			Help:    "Entity store operation latency",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5},
		},
		[]string{"op"},
	)

	AIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barberpro_ai_requests_total",
			Help: "AI generation requests by kind and result",
		},
		[]string{"kind", "result"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barberpro_http_requests_total",
			Help: "HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "barberpro_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)
