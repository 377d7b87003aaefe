// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package recommend

import (
	"github.com/tomtom215/agrisensa/internal/dataset"
)

// DosageRecommender suggests fertilizer doses from historical plantings on
// similar soil.
type DosageRecommender struct {
	records []dataset.HistoricalRecord
	cfg     DosageConfig
}

// NewDosageRecommender builds a recommender over historical records.
func NewDosageRecommender(records []dataset.HistoricalRecord, cfg DosageConfig) *DosageRecommender {
	return &DosageRecommender{records: records, cfg: cfg}
}

// soilVector orders the soil properties as pH, N, P, K, matching the column
// order of the dosage dataset.
func soilVector(r *dataset.HistoricalRecord) []float64 {
	return []float64{r.SoilPH, r.SoilN, r.SoilP, r.SoilK}
}

// Recommend averages the Urea, SP-36 and KCl doses of the Neighbors
// plantings closest to soil. Records missing any soil property are ignored.
// ok is false when no record has complete soil properties.
func (d *DosageRecommender) Recommend(soil SoilNutrients) (rec *DosageRecommendation, ok bool) {
	query := []float64{soil.PH, soil.Nitrogen, soil.Phosphorus, soil.Potassium}
	neighbors := nearest(query, len(d.records), func(i int) []float64 {
		return soilVector(&d.records[i])
	}, d.cfg.Neighbors)
	if len(neighbors) == 0 {
		return nil, false
	}

	urea := make([]float64, 0, len(neighbors))
	sp36 := make([]float64, 0, len(neighbors))
	kcl := make([]float64, 0, len(neighbors))
	for _, n := range neighbors {
		r := &d.records[n.index]
		urea = append(urea, r.DoseUrea)
		sp36 = append(sp36, r.DoseSP36)
		kcl = append(kcl, r.DoseKCl)
	}

	return &DosageRecommendation{
		Urea:       meanPresent(urea),
		SP36:       meanPresent(sp36),
		KCl:        meanPresent(kcl),
		MatchCount: len(neighbors),
	}, true
}
