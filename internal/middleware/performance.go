// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package middleware

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/tomtom215/agrisensa/internal/logging"
)

// RequestMetrics is one observed request.
type RequestMetrics struct {
	Route      string    `json:"route"`
	Method     string    `json:"method"`
	DurationMS int64     `json:"duration_ms"`
	StatusCode int       `json:"status_code"`
	Timestamp  time.Time `json:"timestamp"`
}

// PerformanceMonitor keeps a sliding window of recent requests.
type PerformanceMonitor struct {
	mu            sync.RWMutex
	metrics       []RequestMetrics
	maxMetrics    int
	slowThreshold time.Duration
	requestCounts map[string]int64
}

// EndpointStats contains aggregated statistics for one route over the window.
type EndpointStats struct {
	Endpoint     string  `json:"endpoint"`
	RequestCount int64   `json:"request_count"`
	TotalCount   int64   `json:"total_count"`
	ErrorCount   int64   `json:"error_count"`
	AvgDuration  float64 `json:"avg_duration_ms"`
	P50Duration  int64   `json:"p50_duration_ms"`
	P95Duration  int64   `json:"p95_duration_ms"`
	P99Duration  int64   `json:"p99_duration_ms"`
	MinDuration  int64   `json:"min_duration_ms"`
	MaxDuration  int64   `json:"max_duration_ms"`
}

// NewPerformanceMonitor creates a monitor keeping maxMetrics requests.
// Requests slower than slowThreshold are logged; zero disables the log.
func NewPerformanceMonitor(maxMetrics int, slowThreshold time.Duration) *PerformanceMonitor {
	if maxMetrics < 1 {
		maxMetrics = 1
	}
	return &PerformanceMonitor{
		metrics:       make([]RequestMetrics, 0, maxMetrics),
		maxMetrics:    maxMetrics,
		slowThreshold: slowThreshold,
		requestCounts: make(map[string]int64),
	}
}

func endpointKey(method, route string) string {
	return method + " " + route
}

// RecordRequest adds a request metric
func (pm *PerformanceMonitor) RecordRequest(metric *RequestMetrics) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	pm.metrics = append(pm.metrics, *metric)
	if len(pm.metrics) > pm.maxMetrics {
		pm.metrics = pm.metrics[1:]
	}

	pm.requestCounts[endpointKey(metric.Method, metric.Route)]++
}

// GetStats returns per-route statistics, busiest route first.
func (pm *PerformanceMonitor) GetStats() []EndpointStats {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	durations := make(map[string][]int64)
	errorCounts := make(map[string]int64)
	for _, m := range pm.metrics {
		key := endpointKey(m.Method, m.Route)
		durations[key] = append(durations[key], m.DurationMS)
		if m.StatusCode >= http.StatusInternalServerError {
			errorCounts[key]++
		}
	}

	stats := make([]EndpointStats, 0, len(durations))
	for endpoint, ds := range durations {
		sorted := make([]int64, len(ds))
		copy(sorted, ds)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		var sum int64
		for _, d := range sorted {
			sum += d
		}

		stats = append(stats, EndpointStats{
			Endpoint:     endpoint,
			RequestCount: int64(len(sorted)),
			TotalCount:   pm.requestCounts[endpoint],
			ErrorCount:   errorCounts[endpoint],
			AvgDuration:  float64(sum) / float64(len(sorted)),
			P50Duration:  percentile(sorted, 0.50),
			P95Duration:  percentile(sorted, 0.95),
			P99Duration:  percentile(sorted, 0.99),
			MinDuration:  sorted[0],
			MaxDuration:  sorted[len(sorted)-1],
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].RequestCount != stats[j].RequestCount {
			return stats[i].RequestCount > stats[j].RequestCount
		}
		return stats[i].Endpoint < stats[j].Endpoint
	})

	return stats
}

// GetRecentMetrics returns the most recent N metrics
func (pm *PerformanceMonitor) GetRecentMetrics(n int) []RequestMetrics {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	if n > len(pm.metrics) {
		n = len(pm.metrics)
	}
	if n < 0 {
		n = 0
	}

	recent := make([]RequestMetrics, n)
	copy(recent, pm.metrics[len(pm.metrics)-n:])
	return recent
}

// Middleware creates an HTTP middleware for performance monitoring
func (pm *PerformanceMonitor) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapper := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapper, r)

		elapsed := time.Since(start)
		route := RoutePattern(r)

		pm.RecordRequest(&RequestMetrics{
			Route:      route,
			Method:     r.Method,
			DurationMS: elapsed.Milliseconds(),
			StatusCode: wrapper.statusCode,
			Timestamp:  start,
		})

		if pm.slowThreshold > 0 && elapsed > pm.slowThreshold {
			logging.Ctx(r.Context()).Warn().
				Str("method", r.Method).
				Str("route", route).
				Int64("duration_ms", elapsed.Milliseconds()).
				Int64("threshold_ms", pm.slowThreshold.Milliseconds()).
				Msg("Slow request detected")
		}
	})
}

// percentile calculates the percentile value from a sorted slice
func percentile(sorted []int64, p float64) int64 {
	if len(sorted) == 0 {
		return 0
	}
	index := int(float64(len(sorted)-1) * p)
	return sorted[index]
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
