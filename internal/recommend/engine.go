// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package recommend

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/agrisensa/internal/dataset"
	"github.com/tomtom215/agrisensa/internal/metrics"
)

// Engine operation names, used as metric labels.
const (
	OpRecommendCrops      = "recommend_crops"
	OpCalculateNeeds      = "calculate_needs"
	OpRecommendDosage     = "recommend_dosage"
	OpProductivityRanking = "productivity_ranking"
	OpEstimateROI         = "estimate_roi"
	OpLocationOptions     = "location_options"
	OpCropList            = "crop_list"
)

// SnapshotSource supplies the current dataset snapshot.
// It is implemented by dataset.Store.
type SnapshotSource interface {
	Current() *dataset.Snapshot
}

// Engine answers recommendation queries against the current snapshot.
// It is safe for concurrent use.
type Engine struct {
	config *Config
	source SnapshotSource
	logger zerolog.Logger

	queries atomic.Int64
	absent  atomic.Int64
}

// Stats are engine counters since start.
type Stats struct {
	Queries int64 `json:"queries"`
	Absent  int64 `json:"absent"`
}

// NewEngine creates an engine reading snapshots from source.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, source SnapshotSource, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if source == nil {
		return nil, fmt.Errorf("snapshot source is required")
	}

	return &Engine{
		config: cfg.Clone(),
		source: source,
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// Stats returns the engine counters.
func (e *Engine) Stats() Stats {
	return Stats{Queries: e.queries.Load(), Absent: e.absent.Load()}
}

// Query pins the current snapshot. All operations on the returned Query
// see the same data.
func (e *Engine) Query() *Query {
	return &Query{engine: e, snap: e.source.Current()}
}

// observe records one finished operation. found is false for absence
// results.
func (e *Engine) observe(op string, snap *dataset.Snapshot, start time.Time, found bool) {
	e.queries.Add(1)
	if !found {
		e.absent.Add(1)
	}
	elapsed := time.Since(start)
	metrics.RecordEngineQuery(op, found, elapsed)
	e.logger.Debug().
		Str("operation", op).
		Uint64("dataset_version", snap.Version).
		Bool("found", found).
		Dur("duration", elapsed).
		Msg("Engine query")
}

// Query runs engine operations against one snapshot.
type Query struct {
	engine *Engine
	snap   *dataset.Snapshot
}

// Snapshot returns the pinned snapshot.
func (q *Query) Snapshot() *dataset.Snapshot {
	return q.snap
}

// RecommendCrops returns up to three crops suited to the field, most likely
// first.
//
//nolint:gocritic // FieldConditions is a small value type
func (q *Query) RecommendCrops(in FieldConditions) []string {
	start := time.Now()
	crops := NewCropMatcher(q.snap.Observations, q.engine.config.Crops).Recommend(in)
	q.engine.observe(OpRecommendCrops, q.snap, start, len(crops) > 0)
	return crops
}

// CalculateNeeds computes nutrient deficits for crop. ok is false when the
// crop has no profile.
func (q *Query) CalculateNeeds(crop string, soil SoilNutrients) (*NutrientAnalysis, bool) {
	start := time.Now()
	analysis, ok := NewDeficitCalculator(q.snap.Profiles, q.engine.config.Fertilizer).Calculate(crop, soil)
	q.engine.observe(OpCalculateNeeds, q.snap, start, ok)
	return analysis, ok
}

// CropList returns the crops that have a nutrient profile.
func (q *Query) CropList() []string {
	start := time.Now()
	crops := NewDeficitCalculator(q.snap.Profiles, q.engine.config.Fertilizer).Crops()
	q.engine.observe(OpCropList, q.snap, start, len(crops) > 0)
	return crops
}

// RecommendDosage averages the doses of the most similar historical
// plantings. ok is false when no record has complete soil data.
func (q *Query) RecommendDosage(soil SoilNutrients) (*DosageRecommendation, bool) {
	start := time.Now()
	rec, ok := NewDosageRecommender(q.snap.Dosage, q.engine.config.Dosage).Recommend(soil)
	q.engine.observe(OpRecommendDosage, q.snap, start, ok)
	return rec, ok
}

// ProductivityRanking ranks districts by mean production of commodity.
func (q *Query) ProductivityRanking(commodity string) []RegionProductivity {
	start := time.Now()
	ranking := q.regional().ProductivityRanking(commodity)
	q.engine.observe(OpProductivityRanking, q.snap, start, len(ranking) > 0)
	return ranking
}

// EstimateROI simulates the economics of a planting. ok is false when the
// region has no record of the commodity.
//
//nolint:gocritic // ROIQuery is a small value type
func (q *Query) EstimateROI(in ROIQuery) (*ROIEstimate, bool) {
	start := time.Now()
	est, ok := q.regional().EstimateROI(in)
	q.engine.observe(OpEstimateROI, q.snap, start, ok)
	return est, ok
}

// LocationOptions lists known provinces, districts and commodities.
func (q *Query) LocationOptions() LocationOptions {
	start := time.Now()
	opts := q.regional().LocationOptions()
	q.engine.observe(OpLocationOptions, q.snap, start, len(opts.Provinces) > 0 || len(opts.Commodities) > 0)
	return opts
}

func (q *Query) regional() *RegionalAnalyzer {
	return NewRegionalAnalyzer(q.snap.History, q.engine.config.Regional)
}
