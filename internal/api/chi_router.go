// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/agrisensa/internal/middleware"
)

// Router wires the handler to its routes and middleware.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	perf          *middleware.PerformanceMonitor
}

// NewRouter creates a router. perf may be nil.
func NewRouter(handler *Handler, mw *ChiMiddleware, perf *middleware.PerformanceMonitor) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw, perf: perf}
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight
	r.Use(AccessLog())
	if router.perf != nil {
		r.Use(router.perf.Middleware)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusNotFound, ErrCodeNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed")
	})

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// ========================
	// Engine and Dataset Endpoints
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(router.chiMiddleware.Timeout())

		r.Get("/stats", router.handler.Stats)

		r.Route("/datasets", func(r chi.Router) {
			r.Get("/", router.handler.DatasetStatus)
			r.With(router.chiMiddleware.RateLimitReload()).Post("/reload", router.handler.ReloadDatasets)
		})

		r.Route("/crops", func(r chi.Router) {
			r.Get("/", router.handler.CropList)
			r.Post("/recommend", router.handler.RecommendCrops)
		})

		r.Route("/fertilizer", func(r chi.Router) {
			r.Post("/needs", router.handler.FertilizerNeeds)
			r.Post("/dosage", router.handler.FertilizerDosage)
		})

		r.Route("/regions", func(r chi.Router) {
			r.Get("/productivity", router.handler.RegionProductivity)
			r.Post("/roi", router.handler.RegionROI)
			r.Get("/options", router.handler.RegionOptions)
		})
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
