// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package recommend

import (
	"fmt"
)

// Config contains all tunables of the recommendation engine.
type Config struct {
	// Crops configures the crop matcher.
	Crops CropConfig `json:"crops"`

	// Fertilizer configures the deficit calculator.
	Fertilizer FertilizerConfig `json:"fertilizer"`

	// Dosage configures the historical dosage recommender.
	Dosage DosageConfig `json:"dosage"`

	// Regional configures the productivity ranking and ROI simulation.
	Regional RegionalConfig `json:"regional"`
}

// CropConfig contains crop matcher parameters.
type CropConfig struct {
	// Neighbors is the number of nearest observations that vote.
	Neighbors int `json:"neighbors"`

	// TopLabels is the maximum number of crops returned.
	TopLabels int `json:"top_labels"`
}

// FertilizerConfig contains deficit calculator parameters.
type FertilizerConfig struct {
	// PHTolerance is the largest pH difference that needs no advice.
	PHTolerance float64 `json:"ph_tolerance"`
}

// DosageConfig contains dosage recommender parameters.
type DosageConfig struct {
	// Neighbors is the number of historical plantings averaged.
	Neighbors int `json:"neighbors"`
}

// RegionalConfig contains regional analyzer parameters.
type RegionalConfig struct {
	// RankingLimit caps the productivity ranking length.
	RankingLimit int `json:"ranking_limit"`

	// Prices is the commodity price table used for revenue.
	Prices PriceTable `json:"prices"`
}

// DefaultConfig returns the reference parameters.
func DefaultConfig() *Config {
	return &Config{
		Crops: CropConfig{
			Neighbors: 20,
			TopLabels: 3,
		},
		Fertilizer: FertilizerConfig{
			PHTolerance: 0.5,
		},
		Dosage: DosageConfig{
			Neighbors: 5,
		},
		Regional: RegionalConfig{
			RankingLimit: 20,
			Prices:       DefaultPriceTable(),
		},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Crops.Neighbors < 1 {
		return fmt.Errorf("crops.neighbors must be positive, got %d", c.Crops.Neighbors)
	}
	if c.Crops.TopLabels < 1 {
		return fmt.Errorf("crops.top_labels must be positive, got %d", c.Crops.TopLabels)
	}
	if c.Fertilizer.PHTolerance < 0 {
		return fmt.Errorf("fertilizer.ph_tolerance must be non-negative, got %f", c.Fertilizer.PHTolerance)
	}
	if c.Dosage.Neighbors < 1 {
		return fmt.Errorf("dosage.neighbors must be positive, got %d", c.Dosage.Neighbors)
	}
	if c.Regional.RankingLimit < 1 {
		return fmt.Errorf("regional.ranking_limit must be positive, got %d", c.Regional.RankingLimit)
	}
	if err := c.Regional.Prices.Validate(); err != nil {
		return fmt.Errorf("regional.prices: %w", err)
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Regional.Prices = c.Regional.Prices.Clone()
	return &clone
}
