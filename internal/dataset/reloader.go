// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package dataset

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/agrisensa/internal/metrics"
)

// ErrReloadInProgress is returned when a reload is requested while another
// one is running.
var ErrReloadInProgress = errors.New("dataset reload already in progress")

// ErrNoDatasetLoaded is returned when every configured dataset failed to
// load. The current snapshot is kept.
var ErrNoDatasetLoaded = errors.New("no dataset could be loaded")

// breakerName labels the reload breaker in metrics and logs.
const breakerName = "dataset-reload"

// ReloaderConfig controls reload fault isolation.
type ReloaderConfig struct {
	// BreakerFailures opens the breaker after this many consecutive total
	// failures.
	BreakerFailures uint32

	// BreakerTimeout is how long the breaker stays open before a trial load.
	BreakerTimeout time.Duration
}

// SnapshotLoader builds snapshots. It is implemented by Loader.
type SnapshotLoader interface {
	Load(ctx context.Context, paths Paths) (*Snapshot, error)
}

// Reloader loads datasets and publishes them to a Store. Concurrent reload
// requests are rejected rather than queued.
//
// A load where at least one dataset was read is published with the failed
// datasets left empty and reported as partial. A load where nothing could
// be read keeps the current snapshot and counts against the breaker, so a
// persistently broken data directory stops being hammered.
type Reloader struct {
	loader SnapshotLoader
	store  *Store
	paths  Paths
	logger zerolog.Logger

	running sync.Mutex
	breaker *gobreaker.CircuitBreaker[*Snapshot]
}

// NewReloader creates a reloader publishing to store.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewReloader(loader SnapshotLoader, store *Store, paths Paths, cfg ReloaderConfig, logger zerolog.Logger) *Reloader {
	if cfg.BreakerFailures == 0 {
		cfg.BreakerFailures = 3
	}
	if cfg.BreakerTimeout <= 0 {
		cfg.BreakerTimeout = time.Minute
	}

	r := &Reloader{
		loader: loader,
		store:  store,
		paths:  paths,
		logger: logger.With().Str("component", "dataset-reloader").Logger(),
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	failures := cfg.BreakerFailures
	r.breaker = gobreaker.NewCircuitBreaker[*Snapshot](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			r.logger.Warn().Str("from", stateToString(from)).Str("to", stateToString(to)).
				Msg("Reload circuit breaker state transition")
			metrics.SetCircuitBreakerState(name, stateToString(from), stateToString(to), stateToFloat(to))
		},
	})

	return r
}

// Paths returns the dataset locations this reloader reads.
func (r *Reloader) Paths() Paths {
	return r.paths
}

// BreakerState returns the reload breaker state: closed, half-open or open.
func (r *Reloader) BreakerState() string {
	return stateToString(r.breaker.State())
}

// Reload loads every dataset and publishes the result.
//
// It returns the published snapshot. A partial load returns both the
// snapshot and the joined per-dataset errors. Without a snapshot the error
// is ErrReloadInProgress, gobreaker.ErrOpenState or wraps ErrNoDatasetLoaded.
func (r *Reloader) Reload(ctx context.Context) (*Snapshot, error) {
	if !r.running.TryLock() {
		metrics.RecordDatasetReload(metrics.ReloadRejected, 0)
		return nil, ErrReloadInProgress
	}
	defer r.running.Unlock()

	start := time.Now()
	var partial error

	snap, err := r.breaker.Execute(func() (*Snapshot, error) {
		snap, err := r.loader.Load(ctx, r.paths)
		if err != nil && snap.Counts() == (Counts{}) {
			return nil, fmt.Errorf("%w: %w", ErrNoDatasetLoaded, err)
		}
		partial = err
		return snap, nil
	})
	elapsed := time.Since(start)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.RecordDatasetReload(metrics.ReloadRejected, elapsed)
			r.logger.Warn().Err(err).Msg("Dataset reload rejected by circuit breaker")
			return nil, err
		}
		metrics.RecordDatasetReload(metrics.ReloadFailure, elapsed)
		r.logger.Error().Err(err).Dur("duration", elapsed).Msg("Dataset reload failed, keeping current snapshot")
		return nil, err
	}

	published := r.store.Publish(snap)
	counts := published.Counts()
	metrics.SetSnapshot(published.Version, published.LoadedAt, map[string]int{
		"crop":       counts.Observations,
		"fertilizer": counts.Profiles,
		"history":    counts.History,
		"dosage":     counts.Dosage,
	})

	result := metrics.ReloadSuccess
	event := r.logger.Info()
	if partial != nil {
		result = metrics.ReloadPartial
		event = r.logger.Warn().Err(partial)
	}
	metrics.RecordDatasetReload(result, elapsed)
	event.Uint64("version", published.Version).
		Int("observations", counts.Observations).
		Int("profiles", counts.Profiles).
		Int("history", counts.History).
		Int("dosage", counts.Dosage).
		Dur("duration", elapsed).
		Msg("Dataset snapshot published")

	return published, partial
}

// stateToString converts circuit breaker state to string
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// stateToFloat converts circuit breaker state to float for Prometheus
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
