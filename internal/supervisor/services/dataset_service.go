// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package services

import (
	"context"
	"time"

	"github.com/knadh/koanf/providers/file"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/agrisensa/internal/dataset"
)

// DatasetReloader reloads and publishes the dataset snapshot.
// It is implemented by *dataset.Reloader.
type DatasetReloader interface {
	Reload(ctx context.Context) (*dataset.Snapshot, error)
}

// DatasetServiceConfig controls when datasets are reloaded.
type DatasetServiceConfig struct {
	// ReloadOnStart loads datasets as soon as the service starts.
	ReloadOnStart bool

	// ReloadInterval reloads periodically. Zero disables the schedule.
	ReloadInterval time.Duration

	// WatchFiles are reloaded on change. Empty disables watching.
	WatchFiles []string

	// WatchDebounce is the minimum gap between watch-triggered reloads.
	// A burst of writes yields at most one leading and one trailing reload.
	// Default: 2s
	WatchDebounce time.Duration
}

// Unwatcher stops a file watch.
type Unwatcher interface {
	Unwatch() error
}

// WatchFunc starts watching path and calls onChange for each change.
type WatchFunc func(path string, onChange func()) (Unwatcher, error)

// WatchFile watches path with the koanf file provider, which follows
// symlinks and survives atomic rename-over writes.
func WatchFile(path string, onChange func()) (Unwatcher, error) {
	provider := file.Provider(path)
	err := provider.Watch(func(_ interface{}, err error) {
		if err != nil {
			return
		}
		onChange()
	})
	if err != nil {
		return nil, err
	}
	return provider, nil
}

// DatasetService keeps the published snapshot fresh.
//
// Reload failures are logged and never stop the service: the current
// snapshot stays published and the reloader's circuit breaker decides when
// loading is attempted again.
type DatasetService struct {
	reloader DatasetReloader
	config   DatasetServiceConfig
	logger   zerolog.Logger
	watch    WatchFunc
	name     string
}

// NewDatasetService creates a dataset service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewDatasetService(reloader DatasetReloader, cfg DatasetServiceConfig, logger zerolog.Logger) *DatasetService {
	if cfg.WatchDebounce <= 0 {
		cfg.WatchDebounce = 2 * time.Second
	}
	return &DatasetService{
		reloader: reloader,
		config:   cfg,
		logger:   logger.With().Str("service", "datasets").Logger(),
		watch:    WatchFile,
		name:     "dataset-service",
	}
}

// WithWatchFunc replaces the file watcher.
func (s *DatasetService) WithWatchFunc(fn WatchFunc) *DatasetService {
	s.watch = fn
	return s
}

// Serve implements suture.Service.
func (s *DatasetService) Serve(ctx context.Context) error {
	s.logger.Info().
		Bool("reload_on_start", s.config.ReloadOnStart).
		Dur("reload_interval", s.config.ReloadInterval).
		Int("watched_files", len(s.config.WatchFiles)).
		Msg("dataset service starting")

	if s.config.ReloadOnStart {
		s.reload(ctx, "startup")
	}

	var tick <-chan time.Time
	if s.config.ReloadInterval > 0 {
		ticker := time.NewTicker(s.config.ReloadInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	changed := make(chan struct{}, 1)
	stop := s.startWatches(changed)
	defer stop()

	limiter := rate.NewLimiter(rate.Every(s.config.WatchDebounce), 1)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("dataset service shutting down")
			return ctx.Err()
		case <-tick:
			s.reload(ctx, "schedule")
		case <-changed:
			if err := limiter.Wait(ctx); err != nil {
				return ctx.Err()
			}
			// Changes seen while waiting are covered by this reload.
			select {
			case <-changed:
			default:
			}
			s.reload(ctx, "file change")
		}
	}
}

// startWatches watches every configured file. Files that cannot be watched
// are logged and skipped. The returned func stops all watches.
func (s *DatasetService) startWatches(changed chan<- struct{}) func() {
	notify := func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}

	watchers := make([]Unwatcher, 0, len(s.config.WatchFiles))
	for _, path := range s.config.WatchFiles {
		w, err := s.watch(path, notify)
		if err != nil {
			s.logger.Warn().Err(err).Str("path", path).Msg("cannot watch dataset file")
			continue
		}
		watchers = append(watchers, w)
	}

	return func() {
		for _, w := range watchers {
			if err := w.Unwatch(); err != nil {
				s.logger.Debug().Err(err).Msg("unwatch failed")
			}
		}
	}
}

func (s *DatasetService) reload(ctx context.Context, trigger string) {
	snap, err := s.reloader.Reload(ctx)
	switch {
	case snap == nil:
		s.logger.Warn().Err(err).Str("trigger", trigger).Msg("dataset reload failed, keeping current snapshot")
	case err != nil:
		s.logger.Warn().Err(err).Str("trigger", trigger).Uint64("version", snap.Version).Msg("datasets partially reloaded")
	default:
		s.logger.Debug().Str("trigger", trigger).Uint64("version", snap.Version).Msg("datasets reloaded")
	}
}

// String implements fmt.Stringer.
func (s *DatasetService) String() string {
	return s.name
}
