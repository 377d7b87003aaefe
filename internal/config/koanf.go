// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/agrisensa/internal/recommend"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/agrisensa/config.yaml",
	"/etc/agrisensa/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	engine := recommend.DefaultConfig()
	return &Config{
		Server: ServerConfig{
			Port:         3857,
			Host:         "0.0.0.0",
			Timeout:      30 * time.Second,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 60 * time.Second,
			Environment:  "development",
		},
		Datasets: DatasetsConfig{
			CropPath:        "data/crop_recommendation.csv",
			FertilizerPath:  "data/fertilizer_reference.csv",
			HistoryPath:     "data/planting_history.csv",
			DosagePath:      "",
			ReloadInterval:  0,
			Watch:           false,
			WatchDebounce:   2 * time.Second,
			LoadTimeout:     30 * time.Second,
			BreakerFailures: 3,
			BreakerTimeout:  time.Minute,
		},
		Engine: EngineConfig{
			CropNeighbors:   engine.Crops.Neighbors,
			TopLabels:       engine.Crops.TopLabels,
			PHTolerance:     engine.Fertilizer.PHTolerance,
			DosageNeighbors: engine.Dosage.Neighbors,
			RankingLimit:    engine.Regional.RankingLimit,
			Prices:          engine.Regional.Prices.Prices,
			DefaultPrice:    engine.Regional.Prices.Default,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			ReloadRateLimit:   5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
//
// Precedence is ENV > File > Defaults.
func LoadWithKoanf() (*Config, error) {
	return loadFrom(findConfigFile())
}

// LoadFile loads configuration from an explicit YAML file plus environment
// variables. It fails when the file does not exist.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return loadFrom(path)
}

func loadFrom(configPath string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// HTTP_PORT -> server.port
	// CROP_DATASET_PATH -> datasets.crop_path
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings while the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lowercased environment variable names to koanf paths.
// Unmapped variables are ignored so the process environment cannot pollute config.
var envMappings = map[string]string{
	// Server mappings
	"http_port":          "server.port",
	"http_host":          "server.host",
	"http_timeout":       "server.timeout",
	"http_read_timeout":  "server.read_timeout",
	"http_write_timeout": "server.write_timeout",
	"environment":        "server.environment",

	// Dataset mappings
	"crop_dataset_path":        "datasets.crop_path",
	"fertilizer_dataset_path":  "datasets.fertilizer_path",
	"history_dataset_path":     "datasets.history_path",
	"dosage_dataset_path":      "datasets.dosage_path",
	"dataset_reload_interval":  "datasets.reload_interval",
	"dataset_watch":            "datasets.watch",
	"dataset_watch_debounce":   "datasets.watch_debounce",
	"dataset_load_timeout":     "datasets.load_timeout",
	"dataset_breaker_failures": "datasets.breaker_failures",
	"dataset_breaker_timeout":  "datasets.breaker_timeout",

	// Engine mappings
	"crop_neighbors":     "engine.crop_neighbors",
	"crop_top_labels":    "engine.top_labels",
	"ph_tolerance":       "engine.ph_tolerance",
	"dosage_neighbors":   "engine.dosage_neighbors",
	"ranking_limit":      "engine.ranking_limit",
	"default_crop_price": "engine.default_price",

	// Security mappings
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"reload_rate_limit":   "security.reload_rate_limit",

	// Logging mappings
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
func envTransformFunc(s string) string {
	key := strings.ToLower(s)
	if mapped, ok := envMappings[key]; ok {
		return mapped
	}
	return ""
}
