// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/agrisensa/internal/dataset"
	"github.com/tomtom215/agrisensa/internal/middleware"
	"github.com/tomtom215/agrisensa/internal/recommend"
)

// SnapshotStore exposes the published snapshot. It is implemented by
// dataset.Store.
type SnapshotStore interface {
	Current() *dataset.Snapshot
	Ready() bool
}

// DatasetReloader reloads datasets on demand. It is implemented by
// dataset.Reloader.
type DatasetReloader interface {
	Reload(ctx context.Context) (*dataset.Snapshot, error)
	BreakerState() string
	Paths() dataset.Paths
}

// Handler serves the AgriSensa API.
type Handler struct {
	engine    *recommend.Engine
	store     SnapshotStore
	reloader  DatasetReloader
	perf      *middleware.PerformanceMonitor
	version   string
	startTime time.Time
}

// HandlerOption customizes a Handler.
type HandlerOption func(*Handler)

// WithReloader enables POST /datasets/reload.
func WithReloader(r DatasetReloader) HandlerOption {
	return func(h *Handler) { h.reloader = r }
}

// WithPerformanceMonitor includes per-route latency in GET /stats.
func WithPerformanceMonitor(pm *middleware.PerformanceMonitor) HandlerOption {
	return func(h *Handler) { h.perf = pm }
}

// WithVersion sets the build version reported by the health endpoints.
func WithVersion(v string) HandlerOption {
	return func(h *Handler) { h.version = v }
}

// NewHandler creates the API handler.
func NewHandler(engine *recommend.Engine, store SnapshotStore, opts ...HandlerOption) *Handler {
	h := &Handler{
		engine:    engine,
		store:     store,
		version:   "dev",
		startTime: time.Now(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Stats handles GET /api/v1/stats.
//
// @Summary Engine and endpoint statistics
// @Description Returns engine query counters, per-route latency percentiles and uptime.
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse "Statistics"
// @Failure 429 {object} APIResponse{error=APIError} "Rate limit exceeded"
// @Router /stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"engine":         h.engine.Stats(),
		"uptime_seconds": time.Since(h.startTime).Seconds(),
	}
	if h.perf != nil {
		data["endpoints"] = h.perf.GetStats()
	}
	NewResponseWriter(w, r).Success(data)
}
