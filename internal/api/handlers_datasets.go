// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package api

import (
	"errors"
	"net/http"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/agrisensa/internal/dataset"
	"github.com/tomtom215/agrisensa/internal/logging"
)

// DatasetStatus is the body of GET /datasets.
type DatasetStatus struct {
	Ready        bool           `json:"ready"`
	Version      uint64         `json:"version"`
	LoadedAt     *time.Time     `json:"loaded_at,omitempty"`
	Counts       dataset.Counts `json:"counts"`
	Paths        *DatasetPaths  `json:"paths,omitempty"`
	BreakerState string         `json:"breaker_state,omitempty"`
}

// DatasetPaths reports the configured sources.
type DatasetPaths struct {
	Crop       string `json:"crop,omitempty"`
	Fertilizer string `json:"fertilizer,omitempty"`
	History    string `json:"history,omitempty"`
	Dosage     string `json:"dosage,omitempty"`
}

// ReloadResult is the body of a successful POST /datasets/reload.
type ReloadResult struct {
	Version  uint64         `json:"version"`
	LoadedAt time.Time      `json:"loaded_at"`
	Counts   dataset.Counts `json:"counts"`
	Partial  bool           `json:"partial"`
	Warnings []string       `json:"warnings,omitempty"`
}

// DatasetStatus handles GET /api/v1/datasets.
//
// @Summary Dataset status
// @Description Returns the published snapshot version, load time, row counts, configured sources and circuit breaker state.
// @Tags Datasets
// @Produce json
// @Success 200 {object} APIResponse{data=DatasetStatus} "Dataset status"
// @Router /datasets [get]
func (h *Handler) DatasetStatus(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Current()
	status := DatasetStatus{
		Ready:   h.store.Ready(),
		Version: snap.Version,
		Counts:  snap.Counts(),
	}
	if !snap.LoadedAt.IsZero() {
		loadedAt := snap.LoadedAt
		status.LoadedAt = &loadedAt
	}
	if h.reloader != nil {
		p := h.reloader.Paths()
		status.Paths = &DatasetPaths{Crop: p.Crop, Fertilizer: p.Fertilizer, History: p.History, Dosage: p.Dosage}
		status.BreakerState = h.reloader.BreakerState()
	}
	NewResponseWriter(w, r).WithDatasetVersion(snap.Version).Success(status)
}

// ReloadDatasets handles POST /api/v1/datasets/reload.
//
// @Summary Reload datasets
// @Description Reloads every dataset from its source and publishes a new snapshot.
// @Description A partial load is published with one warning per failed dataset.
// @Description A total failure keeps the current snapshot.
// @Tags Datasets
// @Produce json
// @Success 200 {object} APIResponse{data=ReloadResult} "Snapshot published"
// @Failure 409 {object} APIResponse{error=APIError} "A reload is already in progress"
// @Failure 429 {object} APIResponse{error=APIError} "Rate limit exceeded"
// @Failure 500 {object} APIResponse{error=APIError} "No dataset could be loaded"
// @Failure 503 {object} APIResponse{error=APIError} "Reload disabled by the circuit breaker or not configured"
// @Router /datasets/reload [post]
func (h *Handler) ReloadDatasets(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.reloader == nil {
		rw.ServiceUnavailable("Dataset reload is not available")
		return
	}

	logging.Ctx(r.Context()).Info().Msg("Manual dataset reload requested")

	snap, err := h.reloader.Reload(r.Context())
	if snap == nil {
		switch {
		case errors.Is(err, dataset.ErrReloadInProgress):
			rw.Conflict("A dataset reload is already in progress")
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			rw.ServiceUnavailable("Dataset reload is temporarily disabled after repeated failures")
		default:
			rw.InternalError("Dataset reload failed", err)
		}
		return
	}

	result := ReloadResult{
		Version:  snap.Version,
		LoadedAt: snap.LoadedAt,
		Counts:   snap.Counts(),
		Partial:  err != nil,
	}
	if err != nil {
		result.Warnings = splitJoined(err)
	}
	rw.WithDatasetVersion(snap.Version).Success(result)
}

// splitJoined returns one message per error of an errors.Join result.
func splitJoined(err error) []string {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []string{err.Error()}
	}
	errs := joined.Unwrap()
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Error())
	}
	return out
}
