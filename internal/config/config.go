// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

/*
Package config loads AgriSensa configuration.

Configuration is layered with Koanf v2:
 1. Defaults: built-in values for every setting
 2. Config File: optional YAML file (config.yaml or CONFIG_PATH)
 3. Environment Variables: override any mapped setting

Example:

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    log.Fatal("Failed to load config:", err)
	}
	store := dataset.NewStore()
	engine, err := recommend.NewEngine(cfg.ToRecommendConfig(), store, logger)
*/
package config

import (
	"os"
	"time"

	"github.com/tomtom215/agrisensa/internal/dataset"
	"github.com/tomtom215/agrisensa/internal/logging"
	"github.com/tomtom215/agrisensa/internal/recommend"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Datasets DatasetsConfig `koanf:"datasets"`
	Engine   EngineConfig   `koanf:"engine"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `koanf:"port"`
	Host         string        `koanf:"host"`
	Timeout      time.Duration `koanf:"timeout"`       // per-request handler timeout
	ReadTimeout  time.Duration `koanf:"read_timeout"`  // http.Server ReadTimeout
	WriteTimeout time.Duration `koanf:"write_timeout"` // http.Server WriteTimeout
	Environment  string        `koanf:"environment"`   // development, staging or production
}

// DatasetsConfig locates the reference CSV files and controls reloading.
type DatasetsConfig struct {
	CropPath       string `koanf:"crop_path"`
	FertilizerPath string `koanf:"fertilizer_path"`
	HistoryPath    string `koanf:"history_path"`

	// DosagePath is optional; when empty the history dataset is used.
	DosagePath string `koanf:"dosage_path"`

	// ReloadInterval triggers a periodic reload. Zero disables it.
	ReloadInterval time.Duration `koanf:"reload_interval"`

	// Watch reloads when a dataset file changes on disk.
	Watch bool `koanf:"watch"`

	// WatchDebounce is the minimum gap between watch-triggered reloads.
	WatchDebounce time.Duration `koanf:"watch_debounce"`

	// LoadTimeout bounds reading a single file.
	LoadTimeout time.Duration `koanf:"load_timeout"`

	// BreakerFailures opens the reload breaker after this many consecutive failures.
	BreakerFailures uint32 `koanf:"breaker_failures"`

	// BreakerTimeout is how long the breaker stays open.
	BreakerTimeout time.Duration `koanf:"breaker_timeout"`
}

// EngineConfig holds recommendation engine tunables.
type EngineConfig struct {
	CropNeighbors   int                `koanf:"crop_neighbors"`
	TopLabels       int                `koanf:"top_labels"`
	PHTolerance     float64            `koanf:"ph_tolerance"`
	DosageNeighbors int                `koanf:"dosage_neighbors"`
	RankingLimit    int                `koanf:"ranking_limit"`
	Prices          map[string]float64 `koanf:"prices"`        // Rp/kg by commodity
	DefaultPrice    float64            `koanf:"default_price"` // Rp/kg for unlisted commodities
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	// ReloadRateLimit caps manual reload requests per RateLimitWindow.
	ReloadRateLimit int `koanf:"reload_rate_limit"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes file:line in log events.
	Caller bool `koanf:"caller"`
}

// ToRecommendConfig converts the engine section to engine parameters.
func (c *Config) ToRecommendConfig() *recommend.Config {
	prices := make(map[string]float64, len(c.Engine.Prices))
	for k, v := range c.Engine.Prices {
		prices[k] = v
	}
	return &recommend.Config{
		Crops: recommend.CropConfig{
			Neighbors: c.Engine.CropNeighbors,
			TopLabels: c.Engine.TopLabels,
		},
		Fertilizer: recommend.FertilizerConfig{
			PHTolerance: c.Engine.PHTolerance,
		},
		Dosage: recommend.DosageConfig{
			Neighbors: c.Engine.DosageNeighbors,
		},
		Regional: recommend.RegionalConfig{
			RankingLimit: c.Engine.RankingLimit,
			Prices: recommend.PriceTable{
				Prices:  prices,
				Default: c.Engine.DefaultPrice,
			},
		},
	}
}

// DatasetPaths returns the configured dataset locations.
func (c *Config) DatasetPaths() dataset.Paths {
	return dataset.Paths{
		Crop:       c.Datasets.CropPath,
		Fertilizer: c.Datasets.FertilizerPath,
		History:    c.Datasets.HistoryPath,
		Dosage:     c.Datasets.DosagePath,
	}
}

// ToLoggingConfig converts the logging section to logger settings.
func (c *Config) ToLoggingConfig() logging.Config {
	return logging.Config{
		Level:     c.Logging.Level,
		Format:    c.Logging.Format,
		Caller:    c.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	}
}
