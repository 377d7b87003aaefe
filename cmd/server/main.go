// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

// Package main is the entry point for the AgriSensa server.
//
// AgriSensa recommends crops, fertilizer needs, fertilizer doses and
// regional economics from reference CSV datasets held in memory.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: defaults, config file and environment (Koanf v2)
//  2. Logging: zerolog, bridged to slog for the supervisor
//  3. Datasets: snapshot store, DuckDB CSV loader and reloader with circuit breaker
//  4. Engine: recommendation operations over the current snapshot
//  5. HTTP: Chi router with CORS, rate limiting and Prometheus metrics
//  6. Supervisor: suture tree running the dataset and HTTP services
//
// The HTTP server starts right away and reports not ready on
// /api/v1/health/ready until the first dataset snapshot is published.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables (CROP_DATASET_PATH, HTTP_PORT, LOG_LEVEL, ...)
//   - Config file (config.yaml, CONFIG_PATH or -config)
//   - Built-in defaults
//
// # API Documentation
//
// Swagger UI is served at /swagger/index.html and the OpenAPI document at
// /swagger/doc.json.
//
// # Signal Handling
//
// SIGINT and SIGTERM stop the supervisor tree. The HTTP server finishes
// in-flight requests within 10 seconds.
//
// # Example Usage
//
//	export CROP_DATASET_PATH=data/crop_recommendation.csv
//	export FERTILIZER_DATASET_PATH=data/fertilizer_reference.csv
//	export HISTORY_DATASET_PATH=data/planting_history.csv
//	export DATASET_WATCH=true
//	./agrisensa
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/tomtom215/agrisensa/docs" // Import generated swagger docs
	"github.com/tomtom215/agrisensa/internal/config"
	"github.com/tomtom215/agrisensa/internal/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (overrides CONFIG_PATH)")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		// Logging is not configured yet; the default logger writes JSON to stderr.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.ToLoggingConfig())

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("crop_dataset", cfg.Datasets.CropPath).
		Str("fertilizer_dataset", cfg.Datasets.FertilizerPath).
		Str("history_dataset", cfg.Datasets.HistoryPath).
		Str("dosage_dataset", cfg.Datasets.DosagePath).
		Dur("reload_interval", cfg.Datasets.ReloadInterval).
		Bool("watch", cfg.Datasets.Watch).
		Msg("Starting AgriSensa with supervisor tree")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows any origin in production; set CORS_ORIGINS to restrict it")
	}

	a, err := newApp(cfg, version)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer func() {
		if err := a.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing dataset loader")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	if err := a.run(ctx); err != nil {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// loadConfig reads an explicit config file when one is given and otherwise
// the standard layered configuration.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.LoadWithKoanf()
}
