// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package recommend

import (
	"fmt"
	"testing"

	"github.com/tomtom215/agrisensa/internal/dataset"
)

func newTestRegional(records ...dataset.HistoricalRecord) *RegionalAnalyzer {
	return NewRegionalAnalyzer(records, DefaultConfig().Regional)
}

func TestProductivityRanking(t *testing.T) {
	t.Parallel()

	a := newTestRegional(
		plantingRecord("Jawa Barat", "Karawang", "Padi", 5000, 0, 0),
		plantingRecord("Jawa Barat", "Karawang", "Padi", 7000, 0, 0),
		plantingRecord("Jawa Timur", "Ngawi", "Padi", 6500, 0, 0),
		plantingRecord("Jawa Tengah", "Klaten", "Padi", 5500, 0, 0),
		plantingRecord("Jawa Tengah", "Grobogan", "Jagung", 9000, 0, 0),
		plantingRecord("Jawa Tengah", "Klaten", "Padi", nan, 0, 0),
		plantingRecord("", "Sleman", "Padi", 9999, 0, 0),
	)

	got := a.ProductivityRanking("Padi")
	want := []RegionProductivity{
		{Province: "Jawa Timur", District: "Ngawi", MeanProduction: 6500},
		{Province: "Jawa Barat", District: "Karawang", MeanProduction: 6000},
		{Province: "Jawa Tengah", District: "Klaten", MeanProduction: 5500},
	}
	if len(got) != len(want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ranking[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestProductivityRanking_LimitAndOrder(t *testing.T) {
	t.Parallel()

	var records []dataset.HistoricalRecord
	for i := 0; i < 30; i++ {
		records = append(records, plantingRecord("Sumatera Utara", fmt.Sprintf("D%02d", i), "Jagung", float64(1000+(i%7)*100), 0, 0))
	}

	got := newTestRegional(records...).ProductivityRanking("Jagung")
	if len(got) != 20 {
		t.Fatalf("expected 20 entries, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].MeanProduction > got[i-1].MeanProduction {
			t.Fatalf("ranking ascends at %d: %+v then %+v", i, got[i-1], got[i])
		}
		if got[i].MeanProduction == got[i-1].MeanProduction && got[i].District < got[i-1].District {
			t.Fatalf("equal means not in lexicographic order at %d: %s then %s", i, got[i-1].District, got[i].District)
		}
	}
}

func TestProductivityRanking_UnknownCommodity(t *testing.T) {
	t.Parallel()

	got := newTestRegional(plantingRecord("Aceh", "Pidie", "Padi", 4000, 0, 0)).ProductivityRanking("Kopi")
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty ranking, got %+v", got)
	}
}

func TestEstimateROI(t *testing.T) {
	t.Parallel()

	a := newTestRegional(
		plantingRecord("Jawa Barat", "Karawang", "Padi", 5000, 4_000_000, 2_000_000),
		plantingRecord("Jawa Barat", "Karawang", "Padi", 6000, 5_000_000, 3_000_000),
		plantingRecord("Jawa Barat", "Karawang", "Jagung", 9000, 1, 1),
	)

	got, ok := a.EstimateROI(ROIQuery{Province: "Jawa Barat", District: "Karawang", Commodity: "Padi", AreaHa: 2})
	if !ok {
		t.Fatal("expected an estimate")
	}

	checks := []struct {
		name      string
		got, want float64
	}{
		{"yield_per_ha", got.YieldPerHa, 5500},
		{"total_production", got.TotalProduction, 11000},
		{"price_per_kg", got.PricePerKg, 6000},
		{"cost_per_ha", got.CostPerHa, 7_000_000},
		{"total_cost", got.TotalCost, 14_000_000},
		{"total_revenue", got.TotalRevenue, 66_000_000},
		{"profit", got.Profit, 52_000_000},
		{"roi_percent", got.ROIPercent, 52_000_000.0 / 14_000_000.0 * 100},
	}
	for _, c := range checks {
		if !approxEqual(c.got, c.want) {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
	if got.MatchCount != 2 {
		t.Errorf("MatchCount = %d, want 2", got.MatchCount)
	}
}

func TestEstimateROI_ZeroCost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		record dataset.HistoricalRecord
	}{
		{name: "zero costs", record: plantingRecord("Bali", "Tabanan", "Padi", 5000, 0, 0)},
		{name: "missing costs", record: plantingRecord("Bali", "Tabanan", "Padi", 5000, nan, nan)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := newTestRegional(tt.record).EstimateROI(ROIQuery{Province: "Bali", District: "Tabanan", Commodity: "Padi", AreaHa: 1})
			if !ok {
				t.Fatal("expected an estimate")
			}
			if got.TotalCost != 0 || got.ROIPercent != 0 {
				t.Errorf("expected zero cost and ROI, got cost %v roi %v", got.TotalCost, got.ROIPercent)
			}
			if got.Profit != got.TotalRevenue {
				t.Errorf("profit %v should equal revenue %v", got.Profit, got.TotalRevenue)
			}
		})
	}
}

func TestEstimateROI_DefaultPrice(t *testing.T) {
	t.Parallel()

	got, _ := newTestRegional(plantingRecord("Lampung", "Tanggamus", "Kopi", 800, 1000, 1000)).
		EstimateROI(ROIQuery{Province: "Lampung", District: "Tanggamus", Commodity: "Kopi", AreaHa: 1})
	if got.PricePerKg != DefaultCommodityPrice {
		t.Errorf("PricePerKg = %v, want default %v", got.PricePerKg, DefaultCommodityPrice)
	}
}

func TestEstimateROI_Absence(t *testing.T) {
	t.Parallel()

	a := newTestRegional(plantingRecord("Jawa Barat", "Karawang", "Padi", 5000, 1, 1))
	for _, q := range []ROIQuery{
		{Province: "Jawa Barat", District: "Karawang", Commodity: "Jagung", AreaHa: 1},
		{Province: "Jawa Barat", District: "Bekasi", Commodity: "Padi", AreaHa: 1},
		{Province: "Banten", District: "Karawang", Commodity: "Padi", AreaHa: 1},
	} {
		if got, ok := a.EstimateROI(q); ok || got != nil {
			t.Errorf("query %+v: expected absence, got %+v", q, got)
		}
	}
}

func TestEstimateROI_InputPrices(t *testing.T) {
	t.Parallel()

	r1 := plantingRecord("Aceh", "Pidie", "Padi", 4000, 1, 1)
	r1.PriceUrea, r1.PriceSP36, r1.PriceKCl = 2250, 2400, nan
	r2 := plantingRecord("Aceh", "Pidie", "Padi", 4000, 1, 1)
	r2.PriceUrea, r2.PriceSP36, r2.PriceKCl = 2750, 2600, 3000

	got, _ := newTestRegional(r1, r2).EstimateROI(ROIQuery{Province: "Aceh", District: "Pidie", Commodity: "Padi", AreaHa: 1})
	want := InputPrices{Urea: 2500, SP36: 2500, KCl: 3000}
	if got.InputPrices != want {
		t.Errorf("InputPrices = %+v, want %+v", got.InputPrices, want)
	}
}

func TestLocationOptions(t *testing.T) {
	t.Parallel()

	a := newTestRegional(
		plantingRecord("Jawa Timur", "Ngawi", "Padi", 0, 0, 0),
		plantingRecord("Jawa Barat", "Subang", "Jagung", 0, 0, 0),
		plantingRecord("Jawa Barat", "Karawang", "Padi", 0, 0, 0),
		plantingRecord("Jawa Barat", "Karawang", "Cabai", 0, 0, 0),
		plantingRecord("Jawa Barat", "", "", 0, 0, 0),
		plantingRecord("", "Sleman", "Kedelai", 0, 0, 0),
	)

	got := a.LocationOptions()
	assertStrings(t, got.Provinces, []string{"Jawa Barat", "Jawa Timur"})
	assertStrings(t, got.DistrictsByProvince["Jawa Barat"], []string{"Karawang", "Subang"})
	assertStrings(t, got.DistrictsByProvince["Jawa Timur"], []string{"Ngawi"})
	assertStrings(t, got.Commodities, []string{"Cabai", "Jagung", "Kedelai", "Padi"})
	if len(got.DistrictsByProvince) != 2 {
		t.Errorf("unexpected provinces: %v", got.DistrictsByProvince)
	}
}

func TestLocationOptions_Empty(t *testing.T) {
	t.Parallel()

	got := newTestRegional().LocationOptions()
	if len(got.Provinces) != 0 || len(got.Commodities) != 0 || len(got.DistrictsByProvince) != 0 {
		t.Errorf("expected empty options, got %+v", got)
	}
}
