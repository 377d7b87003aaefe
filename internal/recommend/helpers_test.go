// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package recommend

import (
	"math"
	"testing"

	"github.com/tomtom215/agrisensa/internal/dataset"
)

var nan = math.NaN()

// obsAt returns an observation that differs from the origin only in N.
func obsAt(n float64, label string) dataset.Observation {
	return dataset.Observation{Nitrogen: n, Label: label}
}

// soilRecord returns a historical record with soil properties and doses.
func soilRecord(ph, n, p, k, urea, sp36, kcl float64) dataset.HistoricalRecord {
	return dataset.HistoricalRecord{
		SoilPH: ph, SoilN: n, SoilP: p, SoilK: k,
		DoseUrea: urea, DoseSP36: sp36, DoseKCl: kcl,
	}
}

// plantingRecord returns a historical record with region and economics.
func plantingRecord(province, district, commodity string, production, initCapital, maintenance float64) dataset.HistoricalRecord {
	return dataset.HistoricalRecord{
		Province: province, District: district, Commodity: commodity,
		Production: production, InitCapital: initCapital, MaintenanceCost: maintenance,
		PriceUrea: nan, PriceSP36: nan, PriceKCl: nan,
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func assertStrings(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
