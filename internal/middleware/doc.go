// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

/*
Package middleware provides HTTP instrumentation middleware.

Key Components:

  - Prometheus Metrics: request counters, latency histograms and the active
    request gauge, labelled by chi route pattern
  - Performance Monitor: a sliding window of request latencies with
    per-route percentiles, served by the stats endpoint

Endpoint labels use the chi route pattern (for example
/api/v1/regions/productivity) rather than the raw path, so query strings and
unknown paths never create new label values. Requests that match no route
are labelled "unmatched".

Usage:

	perf := middleware.NewPerformanceMonitor(1000, time.Second)
	r := chi.NewRouter()
	r.Use(perf.Middleware)
	r.Use(func(next http.Handler) http.Handler {
	    return middleware.PrometheusMetrics(next.ServeHTTP)
	})
*/
package middleware
