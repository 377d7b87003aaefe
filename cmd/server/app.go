// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/agrisensa/internal/api"
	"github.com/tomtom215/agrisensa/internal/config"
	"github.com/tomtom215/agrisensa/internal/dataset"
	"github.com/tomtom215/agrisensa/internal/logging"
	"github.com/tomtom215/agrisensa/internal/middleware"
	"github.com/tomtom215/agrisensa/internal/recommend"
	"github.com/tomtom215/agrisensa/internal/supervisor"
	"github.com/tomtom215/agrisensa/internal/supervisor/services"
)

// Performance monitor sizing for GET /api/v1/stats.
const (
	perfMaxMetrics    = 1000
	perfSlowThreshold = time.Second
)

// app holds the wired components of one server instance.
type app struct {
	cfg      *config.Config
	store    *dataset.Store
	loader   *dataset.Loader
	reloader *dataset.Reloader
	engine   *recommend.Engine
	handler  http.Handler
	tree     *supervisor.SupervisorTree
}

// newApp wires every component from cfg. Nothing is loaded or served until
// the supervisor tree runs.
func newApp(cfg *config.Config, version string) (*app, error) {
	store := dataset.NewStore()

	loader, err := dataset.NewLoader(cfg.Datasets.LoadTimeout)
	if err != nil {
		return nil, fmt.Errorf("dataset loader: %w", err)
	}

	reloader := dataset.NewReloader(loader, store, cfg.DatasetPaths(), dataset.ReloaderConfig{
		BreakerFailures: cfg.Datasets.BreakerFailures,
		BreakerTimeout:  cfg.Datasets.BreakerTimeout,
	}, logging.WithComponent("datasets"))

	engine, err := recommend.NewEngine(cfg.ToRecommendConfig(), store, logging.Logger())
	if err != nil {
		_ = loader.Close()
		return nil, fmt.Errorf("recommendation engine: %w", err)
	}

	perf := middleware.NewPerformanceMonitor(perfMaxMetrics, perfSlowThreshold)
	handler := api.NewHandler(engine, store,
		api.WithReloader(reloader),
		api.WithPerformanceMonitor(perf),
		api.WithVersion(version),
	)
	router := api.NewRouter(handler, api.NewChiMiddleware(middlewareConfig(cfg)), perf)

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		_ = loader.Close()
		return nil, fmt.Errorf("supervisor tree: %w", err)
	}

	a := &app{
		cfg:      cfg,
		store:    store,
		loader:   loader,
		reloader: reloader,
		engine:   engine,
		handler:  router.SetupChi(),
		tree:     tree,
	}
	a.addServices()
	return a, nil
}

func (a *app) addServices() {
	var watchFiles []string
	if a.cfg.Datasets.Watch {
		watchFiles = a.cfg.DatasetPaths().Files()
	}
	a.tree.AddDataService(services.NewDatasetService(a.reloader, services.DatasetServiceConfig{
		ReloadOnStart:  true,
		ReloadInterval: a.cfg.Datasets.ReloadInterval,
		WatchFiles:     watchFiles,
		WatchDebounce:  a.cfg.Datasets.WatchDebounce,
	}, logging.Logger()))

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port),
		Handler:      a.handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}
	a.tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")
}

// run serves the supervisor tree until ctx is canceled or the tree fails.
//
// ServeBackground delivers exactly one result and never closes its channel,
// so the result is received once. A canceled context is a clean stop and
// yields nil. Services that missed the shutdown timeout are logged.
func (a *app) run(ctx context.Context) error {
	errCh := a.tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		// The tree stopped on its own.
		return supervisorResult(err)
	}

	err := <-errCh

	unstopped, _ := a.tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}
	return supervisorResult(err)
}

func supervisorResult(err error) error {
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// Close releases resources held outside the supervisor tree.
func (a *app) Close() error {
	return a.loader.Close()
}

// middlewareConfig maps security settings to the API middleware.
func middlewareConfig(cfg *config.Config) *api.ChiMiddlewareConfig {
	mw := api.DefaultChiMiddlewareConfig()
	mw.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mw.RateLimitRequests = cfg.Security.RateLimitReqs
	mw.RateLimitWindow = cfg.Security.RateLimitWindow
	mw.RateLimitDisabled = cfg.Security.RateLimitDisabled
	mw.ReloadRateLimit = cfg.Security.ReloadRateLimit
	mw.RequestTimeout = cfg.Server.Timeout
	return mw
}
