// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package api

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/tomtom215/agrisensa/internal/logging"
	"github.com/tomtom215/agrisensa/internal/metrics"
	"github.com/tomtom215/agrisensa/internal/middleware"
)

// ChiMiddlewareConfig holds configuration for Chi middleware factories.
type ChiMiddlewareConfig struct {
	// CORS configuration
	CORSAllowedOrigins []string
	CORSAllowedMethods []string
	CORSAllowedHeaders []string
	CORSMaxAge         int // seconds

	// Rate limiting configuration
	RateLimitRequests int
	RateLimitWindow   time.Duration
	RateLimitDisabled bool

	// ReloadRateLimit caps POST /datasets/reload per RateLimitWindow.
	ReloadRateLimit int

	// RequestTimeout bounds handler execution. Zero disables it.
	RequestTimeout time.Duration
}

// DefaultChiMiddlewareConfig returns the default configuration.
// CORS origins default to empty, requiring explicit configuration.
func DefaultChiMiddlewareConfig() *ChiMiddlewareConfig {
	return &ChiMiddlewareConfig{
		CORSAllowedOrigins: []string{},
		CORSAllowedMethods: []string{"GET", "POST", "OPTIONS"},
		CORSAllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		CORSMaxAge:         86400,

		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
		RateLimitDisabled: false,
		ReloadRateLimit:   5,

		RequestTimeout: 30 * time.Second,
	}
}

// ChiMiddleware provides Chi-compatible middleware factories.
type ChiMiddleware struct {
	config *ChiMiddlewareConfig
	cors   func(http.Handler) http.Handler
}

// NewChiMiddleware creates a new Chi middleware factory with the given configuration.
func NewChiMiddleware(config *ChiMiddlewareConfig) *ChiMiddleware {
	if config == nil {
		config = DefaultChiMiddlewareConfig()
	}

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   config.CORSAllowedOrigins,
		AllowedMethods:   config.CORSAllowedMethods,
		AllowedHeaders:   config.CORSAllowedHeaders,
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           config.CORSMaxAge,
	})

	return &ChiMiddleware{
		config: config,
		cors:   corsHandler,
	}
}

// CORS returns a Chi-compatible CORS middleware using go-chi/cors.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

func passthrough(next http.Handler) http.Handler {
	return next
}

// RateLimit returns the default per-IP rate limiter for API endpoints.
func (m *ChiMiddleware) RateLimit() func(http.Handler) http.Handler {
	return m.rateLimit(limiterAPI, m.config.RateLimitRequests, m.config.RateLimitWindow)
}

// RateLimitReload returns the stricter limiter for manual dataset reloads.
func (m *ChiMiddleware) RateLimitReload() func(http.Handler) http.Handler {
	return m.rateLimit(limiterReload, m.config.ReloadRateLimit, m.config.RateLimitWindow)
}

// RateLimitHealth is permissive rate limiting for health endpoints.
var RateLimitHealth = 1000

// RateLimitHealth returns a permissive limiter for probes.
func (m *ChiMiddleware) RateLimitHealth() func(http.Handler) http.Handler {
	return m.rateLimit(limiterHealth, RateLimitHealth, time.Minute)
}

// Limiter names used as the rate limit metric label. Limiters run before
// chi resolves the final route, so hits are labeled by limiter instead.
const (
	limiterAPI    = "api"
	limiterReload = "reload"
	limiterHealth = "health"
)

func (m *ChiMiddleware) rateLimit(name string, requests int, window time.Duration) func(http.Handler) http.Handler {
	if m.config.RateLimitDisabled {
		return passthrough
	}
	return httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(rateLimitExceeded(name)),
	)
}

// rateLimitExceeded answers throttled requests with the standard envelope.
func rateLimitExceeded(limiter string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics.RecordRateLimitHit(limiter)
		NewResponseWriter(w, r).TooManyRequests("Rate limit exceeded, retry later")
	}
}

// Timeout bounds handler execution with chi's Timeout middleware.
func (m *ChiMiddleware) Timeout() func(http.Handler) http.Handler {
	if m.config.RequestTimeout <= 0 {
		return passthrough
	}
	return chimiddleware.Timeout(m.config.RequestTimeout)
}

// RequestIDWithLogging returns a middleware that adds request ID to the context
// and integrates with the logging package for request tracing.
// An incoming X-Request-ID is kept; otherwise a UUID is generated.
func RequestIDWithLogging() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		chiRequestID := chimiddleware.RequestID(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(chimiddleware.RequestIDHeader)
			if requestID == "" {
				requestID = logging.GenerateRequestID()
				r.Header.Set(chimiddleware.RequestIDHeader, requestID)
			}
			w.Header().Set(chimiddleware.RequestIDHeader, requestID)

			ctx := logging.ContextWithRequestID(r.Context(), requestID)
			chiRequestID.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AccessLog logs one line per request through the request-scoped logger.
func AccessLog() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			logger := logging.Ctx(r.Context())
			event := logger.Debug()
			if status >= http.StatusInternalServerError {
				event = logger.Error()
			}
			event.Str("method", r.Method).
				Str("route", middleware.RoutePattern(r)).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Str("remote_addr", r.RemoteAddr).
				Msg("HTTP request")
		})
	}
}

// APISecurityHeaders returns a middleware that adds security headers to API responses.
//
// Headers added:
//   - X-Content-Type-Options: nosniff
//   - X-Frame-Options: DENY
//   - Cache-Control: no-store
//   - Referrer-Policy: strict-origin-when-cross-origin
//
// HSTS is added when the request is over HTTPS.
func APISecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Cache-Control", "no-store")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}
