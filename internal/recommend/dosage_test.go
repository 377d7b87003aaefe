// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package recommend

import (
	"testing"

	"github.com/tomtom215/agrisensa/internal/dataset"
)

func newTestDosage(records ...dataset.HistoricalRecord) *DosageRecommender {
	return NewDosageRecommender(records, DefaultConfig().Dosage)
}

func TestDosageRecommender_ExactMatches(t *testing.T) {
	t.Parallel()

	records := []dataset.HistoricalRecord{
		soilRecord(6.0, 20, 15, 120, 200, 100, 50),
		soilRecord(6.0, 20, 15, 120, 250, 120, 70),
		soilRecord(6.0, 20, 15, 120, 300, 80, 60),
	}

	got, ok := newTestDosage(records...).Recommend(SoilNutrients{Nitrogen: 20, Phosphorus: 15, Potassium: 120, PH: 6.0})
	if !ok {
		t.Fatal("expected a recommendation")
	}
	if got.MatchCount != 3 {
		t.Errorf("MatchCount = %d, want 3", got.MatchCount)
	}
	if !approxEqual(got.Urea, 250) || !approxEqual(got.SP36, 100) || !approxEqual(got.KCl, 60) {
		t.Errorf("unexpected averages: %+v", got)
	}
}

func TestDosageRecommender_AtMostFiveNeighbours(t *testing.T) {
	t.Parallel()

	var records []dataset.HistoricalRecord
	// Five close plantings with dose 100, then far plantings with dose 900.
	for i := 0; i < 5; i++ {
		records = append(records, soilRecord(6, float64(i), 0, 0, 100, 100, 100))
	}
	for i := 0; i < 10; i++ {
		records = append(records, soilRecord(6, float64(100+i), 0, 0, 900, 900, 900))
	}

	got, ok := newTestDosage(records...).Recommend(SoilNutrients{PH: 6})
	if !ok {
		t.Fatal("expected a recommendation")
	}
	if got.MatchCount != 5 {
		t.Errorf("MatchCount = %d, want 5", got.MatchCount)
	}
	if got.Urea != 100 || got.SP36 != 100 || got.KCl != 100 {
		t.Errorf("expected only the close plantings to be averaged, got %+v", got)
	}
}

func TestDosageRecommender_IncompleteSoilExcluded(t *testing.T) {
	t.Parallel()

	records := []dataset.HistoricalRecord{
		soilRecord(nan, 0, 0, 0, 999, 999, 999),
		soilRecord(6, nan, 0, 0, 999, 999, 999),
		soilRecord(6, 0, nan, 0, 999, 999, 999),
		soilRecord(6, 0, 0, nan, 999, 999, 999),
		soilRecord(7, 10, 10, 10, 150, 75, 50),
	}

	got, ok := newTestDosage(records...).Recommend(SoilNutrients{PH: 6})
	if !ok {
		t.Fatal("expected a recommendation")
	}
	if got.MatchCount != 1 || got.Urea != 150 {
		t.Errorf("expected only the complete record to be used, got %+v", got)
	}
}

func TestDosageRecommender_Absence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		records []dataset.HistoricalRecord
	}{
		{name: "empty dataset"},
		{name: "no complete soil data", records: []dataset.HistoricalRecord{soilRecord(nan, nan, nan, nan, 1, 1, 1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := newTestDosage(tt.records...).Recommend(SoilNutrients{PH: 6})
			if ok || got != nil {
				t.Errorf("expected absence, got %+v", got)
			}
		})
	}
}

func TestDosageRecommender_FeatureOrder(t *testing.T) {
	t.Parallel()

	// The record matches when the query is read as (pH, N, P, K) and would
	// not if N were compared against pH.
	records := []dataset.HistoricalRecord{
		soilRecord(5, 40, 0, 0, 111, 0, 0),
		soilRecord(40, 5, 0, 0, 222, 0, 0),
	}
	cfg := DosageConfig{Neighbors: 1}
	got, _ := NewDosageRecommender(records, cfg).Recommend(SoilNutrients{PH: 5, Nitrogen: 40})
	if got.Urea != 111 {
		t.Errorf("expected the (pH=5, N=40) record, got urea %v", got.Urea)
	}
}

func TestDosageRecommender_MissingDoseSkipped(t *testing.T) {
	t.Parallel()

	records := []dataset.HistoricalRecord{
		soilRecord(6, 0, 0, 0, 200, nan, nan),
		soilRecord(6, 0, 0, 0, nan, 80, nan),
	}
	got, _ := newTestDosage(records...).Recommend(SoilNutrients{PH: 6})
	if got.MatchCount != 2 || got.Urea != 200 || got.SP36 != 80 || got.KCl != 0 {
		t.Errorf("unexpected averages: %+v", got)
	}
}
