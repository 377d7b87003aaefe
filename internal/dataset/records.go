// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

/*
Package dataset holds the tabular reference data consumed by the
recommendation engine.

Records arrive from a provider as ordered rows, each a mapping from column
header to value. The converters in this package turn those rows into typed
records while tolerating absent columns: a numeric field that is absent,
NULL, empty or unparsable becomes NaN, and a text field that is absent or
NULL becomes the empty string. Queries decide for themselves which missing
fields exclude a record.

Loaded records are grouped into an immutable Snapshot and published through
a Store, which swaps snapshots atomically so readers never observe a partial
reload.
*/
package dataset

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Row is one record as supplied by a dataset provider.
type Row map[string]any

// Float returns the numeric value of a column, or NaN when it is missing.
func (r Row) Float(key string) float64 {
	v, ok := r[key]
	if !ok || v == nil {
		return math.NaN()
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case *big.Int:
		f, _ := new(big.Float).SetInt(n).Float64()
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	case interface{ Float64() float64 }:
		// duckdb.Decimal
		return n.Float64()
	default:
		return math.NaN()
	}
}

// Text returns the string value of a column, or "" when it is missing.
func (r Row) Text(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Missing reports whether a numeric field carries no value.
func Missing(v float64) bool {
	return math.IsNaN(v)
}

// Observation is one row of the crop reference dataset: the conditions under
// which a crop was observed.
type Observation struct {
	Nitrogen    float64
	Phosphorus  float64
	Potassium   float64
	Temperature float64
	Humidity    float64
	PH          float64
	Rainfall    float64
	Label       string
}

// NutrientProfile is the ideal soil profile for one crop.
type NutrientProfile struct {
	Crop       string
	Nitrogen   float64
	Phosphorus float64
	Potassium  float64
	PH         float64
}

// HistoricalRecord is one real planting: its region, yield, costs, soil
// condition and the fertilizer doses that were applied.
type HistoricalRecord struct {
	Province  string
	District  string
	Commodity string

	Production      float64 // kg/ha
	PriceUrea       float64 // Rp/kg
	PriceSP36       float64 // Rp/kg
	PriceKCl        float64 // Rp/kg
	InitCapital     float64 // Rp/ha
	MaintenanceCost float64 // Rp/ha
	PrevYield       float64 // kg/ha
	Rain            float64 // mm
	Temp            float64 // °C

	SoilPH float64
	SoilN  float64
	SoilP  float64
	SoilK  float64

	DoseUrea float64 // kg/ha
	DoseSP36 float64 // kg/ha
	DoseKCl  float64 // kg/ha
}

// ObservationsFromRows converts crop reference rows, preserving order.
func ObservationsFromRows(rows []Row) []Observation {
	out := make([]Observation, 0, len(rows))
	for _, r := range rows {
		out = append(out, Observation{
			Nitrogen:    r.Float(FieldNitrogen),
			Phosphorus:  r.Float(FieldPhosphorus),
			Potassium:   r.Float(FieldPotassium),
			Temperature: r.Float(FieldTemperature),
			Humidity:    r.Float(FieldHumidity),
			PH:          r.Float(FieldPH),
			Rainfall:    r.Float(FieldRainfall),
			Label:       r.Text(FieldLabel),
		})
	}
	return out
}

// ProfilesFromRows converts fertilizer reference rows, preserving order.
// Duplicate crop names are kept; lookups use the first one.
func ProfilesFromRows(rows []Row) []NutrientProfile {
	out := make([]NutrientProfile, 0, len(rows))
	for _, r := range rows {
		out = append(out, NutrientProfile{
			Crop:       r.Text(FieldCrop),
			Nitrogen:   r.Float(FieldNitrogen),
			Phosphorus: r.Float(FieldPhosphorus),
			Potassium:  r.Float(FieldPotassium),
			PH:         r.Float(FieldPH),
		})
	}
	return out
}

// HistoryFromRows converts historical planting rows, preserving order.
func HistoryFromRows(rows []Row) []HistoricalRecord {
	out := make([]HistoricalRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, HistoricalRecord{
			Province:        r.Text(FieldProvince),
			District:        r.Text(FieldDistrict),
			Commodity:       r.Text(FieldCommodity),
			Production:      r.Float(FieldProduction),
			PriceUrea:       r.Float(FieldPriceUrea),
			PriceSP36:       r.Float(FieldPriceSP36),
			PriceKCl:        r.Float(FieldPriceKCl),
			InitCapital:     r.Float(FieldInitCapital),
			MaintenanceCost: r.Float(FieldMaintenanceCost),
			PrevYield:       r.Float(FieldPrevYield),
			Rain:            r.Float(FieldRain),
			Temp:            r.Float(FieldTemp),
			SoilPH:          r.Float(FieldSoilPH),
			SoilN:           r.Float(FieldSoilN),
			SoilP:           r.Float(FieldSoilP),
			SoilK:           r.Float(FieldSoilK),
			DoseUrea:        r.Float(FieldDoseUrea),
			DoseSP36:        r.Float(FieldDoseSP36),
			DoseKCl:         r.Float(FieldDoseKCl),
		})
	}
	return out
}
