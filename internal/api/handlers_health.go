// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package api

import (
	"net/http"
	"time"
)

// HealthLive handles liveness probe requests.
// Returns 200 whenever the process can serve HTTP.
//
// @Summary Liveness probe
// @Description Returns 200 whenever the process can serve HTTP, regardless of dataset state.
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":   true,
		"version": h.version,
		"uptime":  time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests.
// Returns 200 once a dataset snapshot has been published, 503 before.
//
// @Summary Readiness probe
// @Description Returns 200 once a dataset snapshot has been published, even a partial one. Returns 503 before the first load.
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse "Datasets are loaded"
// @Failure 503 {object} APIResponse{error=APIError} "Datasets not loaded yet"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Current()
	ready := h.store.Ready()

	data := map[string]interface{}{
		"ready":           ready,
		"dataset_version": snap.Version,
		"datasets":        snap.Counts(),
		"uptime":          time.Since(h.startTime).Seconds(),
	}

	rw := NewResponseWriter(w, r).WithDatasetVersion(snap.Version)
	if !ready {
		rw.ErrorWithDetails(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Datasets not loaded yet", data)
		return
	}
	rw.Success(data)
}
