// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of requests rejected by rate limiting, by limiter (api, reload, health)",
		},
		[]string{"limiter"},
	)

	// Engine Metrics
	EngineQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_queries_total",
			Help: "Total number of recommendation engine queries",
		},
		[]string{"operation", "outcome"},
	)

	EngineQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "engine_query_duration_seconds",
			Help:    "Recommendation engine query duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"operation"},
	)

	// Dataset Metrics
	DatasetRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dataset_rows",
			Help: "Number of rows in the published snapshot per dataset",
		},
		[]string{"dataset"},
	)

	DatasetVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_version",
			Help: "Version of the published dataset snapshot",
		},
	)

	DatasetReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_reloads_total",
			Help: "Total number of dataset reload attempts",
		},
		[]string{"result"},
	)

	DatasetReloadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dataset_reload_duration_seconds",
			Help:    "Duration of dataset reloads in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	DatasetLastReload = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_last_reload_timestamp_seconds",
			Help: "Unix time of the last published snapshot",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// Reload results.
const (
	ReloadSuccess  = "success"
	ReloadPartial  = "partial"
	ReloadFailure  = "failure"
	ReloadRejected = "rejected"
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a request rejected by the named limiter.
func RecordRateLimitHit(limiter string) {
	APIRateLimitHits.WithLabelValues(limiter).Inc()
}

// RecordEngineQuery records one engine operation. found is false when the
// operation returned an absence result.
func RecordEngineQuery(operation string, found bool, duration time.Duration) {
	outcome := "found"
	if !found {
		outcome = "absent"
	}
	EngineQueriesTotal.WithLabelValues(operation, outcome).Inc()
	EngineQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordDatasetReload records a reload attempt and its duration.
func RecordDatasetReload(result string, duration time.Duration) {
	DatasetReloadsTotal.WithLabelValues(result).Inc()
	DatasetReloadDuration.Observe(duration.Seconds())
}

// SetSnapshot publishes the row counts and version of a new snapshot.
func SetSnapshot(version uint64, loadedAt time.Time, rows map[string]int) {
	DatasetVersion.Set(float64(version))
	DatasetLastReload.Set(float64(loadedAt.Unix()))
	for name, n := range rows {
		DatasetRows.WithLabelValues(name).Set(float64(n))
	}
}

// SetCircuitBreakerState records a breaker state change. state is 0 for
// closed, 1 for half-open and 2 for open.
func SetCircuitBreakerState(name, from, to string, state float64) {
	CircuitBreakerState.WithLabelValues(name).Set(state)
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
}
