// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package config

import (
	"fmt"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateDatasets(); err != nil {
		return err
	}

	if err := c.validateEngine(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validEnvironments defines the allowed deployment environments
var validEnvironments = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.Environment != "" && !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production")
	}
	return nil
}

// validateDatasets validates dataset locations and reload settings
func (c *Config) validateDatasets() error {
	d := c.Datasets
	if d.CropPath == "" && d.FertilizerPath == "" && d.HistoryPath == "" && d.DosagePath == "" {
		return fmt.Errorf("at least one dataset path must be configured (CROP_DATASET_PATH, FERTILIZER_DATASET_PATH, HISTORY_DATASET_PATH)")
	}
	if d.ReloadInterval < 0 {
		return fmt.Errorf("DATASET_RELOAD_INTERVAL must not be negative")
	}
	if d.ReloadInterval > 0 && d.ReloadInterval < time.Second {
		return fmt.Errorf("DATASET_RELOAD_INTERVAL must be at least 1s when enabled")
	}
	if d.WatchDebounce < 0 {
		return fmt.Errorf("DATASET_WATCH_DEBOUNCE must not be negative")
	}
	if d.LoadTimeout < 0 {
		return fmt.Errorf("DATASET_LOAD_TIMEOUT must not be negative")
	}
	if d.BreakerFailures == 0 {
		return fmt.Errorf("DATASET_BREAKER_FAILURES must be at least 1")
	}
	if d.BreakerTimeout <= 0 {
		return fmt.Errorf("DATASET_BREAKER_TIMEOUT must be positive")
	}
	return nil
}

// validateEngine validates engine tunables by delegating to the engine's own checks
func (c *Config) validateEngine() error {
	if err := c.ToRecommendConfig().Validate(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateSecurity validates CORS and rate limiting configuration
func (c *Config) validateSecurity() error {
	if c.hasWildcardCORS() && len(c.Security.CORSOrigins) > 1 {
		return fmt.Errorf("CORS_ORIGINS must not mix * with explicit origins")
	}
	return c.validateRateLimits()
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS returns true if wildcard CORS is used in production
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.hasWildcardCORS() && c.IsProduction()
}

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	if c.Security.ReloadRateLimit < minRateLimitRequests || c.Security.ReloadRateLimit > c.Security.RateLimitReqs {
		return fmt.Errorf("RELOAD_RATE_LIMIT must be between %d and RATE_LIMIT_REQUESTS (%d)", minRateLimitRequests, c.Security.RateLimitReqs)
	}
	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// IsDevelopment reports whether the server runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "" || c.Server.Environment == "development"
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
