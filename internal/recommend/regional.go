// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package recommend

import (
	"sort"

	"github.com/tomtom215/agrisensa/internal/dataset"
)

// RegionalAnalyzer aggregates historical plantings by region.
type RegionalAnalyzer struct {
	records []dataset.HistoricalRecord
	cfg     RegionalConfig
}

// NewRegionalAnalyzer builds an analyzer over historical records.
//
//nolint:gocritic // config is copied once per query
func NewRegionalAnalyzer(records []dataset.HistoricalRecord, cfg RegionalConfig) *RegionalAnalyzer {
	return &RegionalAnalyzer{records: records, cfg: cfg}
}

type regionKey struct {
	province string
	district string
}

// ProductivityRanking returns the districts with the highest mean
// production of commodity, best first, at most RankingLimit entries.
// Records without a region or a production value are ignored.
func (a *RegionalAnalyzer) ProductivityRanking(commodity string) []RegionProductivity {
	groups := make(map[regionKey][]float64)
	for i := range a.records {
		r := &a.records[i]
		if r.Commodity != commodity || r.Province == "" || r.District == "" || dataset.Missing(r.Production) {
			continue
		}
		key := regionKey{province: r.Province, district: r.District}
		groups[key] = append(groups[key], r.Production)
	}

	keys := make([]regionKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	// Lexicographic order first so that equal means rank deterministically.
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].province != keys[j].province {
			return keys[i].province < keys[j].province
		}
		return keys[i].district < keys[j].district
	})

	ranking := make([]RegionProductivity, 0, len(keys))
	for _, k := range keys {
		ranking = append(ranking, RegionProductivity{
			Province:       k.province,
			District:       k.district,
			MeanProduction: meanPresent(groups[k]),
		})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].MeanProduction > ranking[j].MeanProduction
	})

	if a.cfg.RankingLimit < len(ranking) {
		ranking = ranking[:a.cfg.RankingLimit]
	}
	return ranking
}

// EstimateROI simulates planting q.AreaHa hectares of q.Commodity in the
// given district using the regional averages. ok is false when the region
// has no record of the commodity.
//
//nolint:gocritic // ROIQuery is a small value type
func (a *RegionalAnalyzer) EstimateROI(q ROIQuery) (estimate *ROIEstimate, ok bool) {
	var matches []*dataset.HistoricalRecord
	for i := range a.records {
		r := &a.records[i]
		if r.Province == q.Province && r.District == q.District && r.Commodity == q.Commodity {
			matches = append(matches, r)
		}
	}
	if len(matches) == 0 {
		return nil, false
	}

	column := func(field func(*dataset.HistoricalRecord) float64) float64 {
		values := make([]float64, 0, len(matches))
		for _, r := range matches {
			values = append(values, field(r))
		}
		return meanPresent(values)
	}

	yieldPerHa := column(func(r *dataset.HistoricalRecord) float64 { return r.Production })
	initCapital := column(func(r *dataset.HistoricalRecord) float64 { return r.InitCapital })
	maintenance := column(func(r *dataset.HistoricalRecord) float64 { return r.MaintenanceCost })

	costPerHa := initCapital + maintenance
	price := a.cfg.Prices.Lookup(q.Commodity)

	totalRevenue := yieldPerHa * price * q.AreaHa
	totalCost := costPerHa * q.AreaHa
	profit := totalRevenue - totalCost

	var roi float64
	if totalCost > 0 {
		roi = profit / totalCost * 100
	}

	return &ROIEstimate{
		YieldPerHa:      yieldPerHa,
		TotalProduction: yieldPerHa * q.AreaHa,
		PricePerKg:      price,
		TotalRevenue:    totalRevenue,
		CostPerHa:       costPerHa,
		TotalCost:       totalCost,
		Profit:          profit,
		ROIPercent:      roi,
		MatchCount:      len(matches),
		InputPrices: InputPrices{
			Urea: column(func(r *dataset.HistoricalRecord) float64 { return r.PriceUrea }),
			SP36: column(func(r *dataset.HistoricalRecord) float64 { return r.PriceSP36 }),
			KCl:  column(func(r *dataset.HistoricalRecord) float64 { return r.PriceKCl }),
		},
	}, true
}

// LocationOptions lists the distinct provinces, their districts and the
// commodities of the dataset, each sorted. Missing values are ignored.
func (a *RegionalAnalyzer) LocationOptions() LocationOptions {
	districts := make(map[string]map[string]struct{})
	commodities := make(map[string]struct{})

	for i := range a.records {
		r := &a.records[i]
		if r.Commodity != "" {
			commodities[r.Commodity] = struct{}{}
		}
		if r.Province == "" {
			continue
		}
		set, ok := districts[r.Province]
		if !ok {
			set = make(map[string]struct{})
			districts[r.Province] = set
		}
		if r.District != "" {
			set[r.District] = struct{}{}
		}
	}

	opts := LocationOptions{
		Provinces:           sortedKeys(districts),
		DistrictsByProvince: make(map[string][]string, len(districts)),
		Commodities:         sortedKeys(commodities),
	}
	for province, set := range districts {
		opts.DistrictsByProvince[province] = sortedKeys(set)
	}
	return opts
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
