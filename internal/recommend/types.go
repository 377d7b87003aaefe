// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package recommend

// FieldConditions are measurements of a field used to match crops.
// Units follow the crop reference dataset: ppm for nutrients, °C, % relative
// humidity and mm of rainfall.
type FieldConditions struct {
	Nitrogen    float64 `json:"n"`
	Phosphorus  float64 `json:"p"`
	Potassium   float64 `json:"k"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	PH          float64 `json:"ph"`
	Rainfall    float64 `json:"rainfall"`
}

// SoilNutrients are current soil measurements for the deficit calculator
// and the dosage recommender.
type SoilNutrients struct {
	Nitrogen   float64 `json:"n"`
	Phosphorus float64 `json:"p"`
	Potassium  float64 `json:"k"`
	PH         float64 `json:"ph"`
}

// NutrientTarget is the ideal soil profile of a crop.
type NutrientTarget struct {
	Nitrogen   float64 `json:"N"`
	Phosphorus float64 `json:"P"`
	Potassium  float64 `json:"K"`
	PH         float64 `json:"pH"`
}

// NutrientDeficit is max(0, target - current) per nutrient.
type NutrientDeficit struct {
	Nitrogen   float64 `json:"N"`
	Phosphorus float64 `json:"P"`
	Potassium  float64 `json:"K"`
}

// AdviceKind classifies an advice line.
type AdviceKind string

// Advice kinds.
const (
	AdviceDeficiency AdviceKind = "deficiency"
	AdvicePHLow      AdviceKind = "ph_low"
	AdvicePHHigh     AdviceKind = "ph_high"
	AdviceOptimal    AdviceKind = "optimal"
)

// Advice is one corrective recommendation.
type Advice struct {
	Kind AdviceKind `json:"kind"`

	// Nutrient is N, P, K or pH; empty for AdviceOptimal.
	Nutrient string `json:"nutrient,omitempty"`

	// Amount is the deficit for deficiencies and the current pH for pH advice.
	// It is zero for AdviceOptimal.
	Amount float64 `json:"amount"`

	// Inputs names the conventional corrective products.
	Inputs []string `json:"inputs,omitempty"`

	// Message is the human-readable line.
	Message string `json:"message"`
}

// NutrientAnalysis is the result of the deficit calculator.
type NutrientAnalysis struct {
	Crop    string          `json:"crop"`
	Target  NutrientTarget  `json:"target"`
	Deficit NutrientDeficit `json:"deficit"`

	// Advice holds the message lines in order: N, P, K, then pH.
	// It contains exactly one optimal line when nothing needs correcting.
	Advice []string `json:"advice"`

	// Items carries the same advice in structured form.
	Items []Advice `json:"advice_items"`
}

// DosageRecommendation is the average dose applied by the most similar
// historical plantings.
type DosageRecommendation struct {
	Urea float64 `json:"urea_kg_ha"`
	SP36 float64 `json:"sp36_kg_ha"`
	KCl  float64 `json:"kcl_kg_ha"`

	// MatchCount is the number of plantings averaged.
	MatchCount int `json:"match_count"`
}

// RegionProductivity is the mean yield of one district.
type RegionProductivity struct {
	Province       string  `json:"province"`
	District       string  `json:"district"`
	MeanProduction float64 `json:"mean_production_kg_ha"`
}

// ROIQuery selects a region and commodity and the planted area.
type ROIQuery struct {
	Province  string  `json:"province"`
	District  string  `json:"district"`
	Commodity string  `json:"commodity"`
	AreaHa    float64 `json:"area_ha"`
}

// ROIEstimate is the simulated economics of planting AreaHa hectares.
// Money amounts are in Rp.
type ROIEstimate struct {
	YieldPerHa      float64 `json:"yield_per_ha"`
	TotalProduction float64 `json:"total_production"`
	PricePerKg      float64 `json:"price_per_kg"`
	TotalRevenue    float64 `json:"total_revenue"`
	CostPerHa       float64 `json:"cost_per_ha"`
	TotalCost       float64 `json:"total_cost"`
	Profit          float64 `json:"profit"`
	ROIPercent      float64 `json:"roi_percent"`

	// MatchCount is the number of historical records averaged.
	MatchCount int `json:"match_count"`

	// InputPrices are the averaged fertilizer prices of the region.
	InputPrices InputPrices `json:"input_prices"`
}

// InputPrices are fertilizer prices in Rp/kg.
type InputPrices struct {
	Urea float64 `json:"urea"`
	SP36 float64 `json:"sp36"`
	KCl  float64 `json:"kcl"`
}

// LocationOptions lists the known locations and commodities.
type LocationOptions struct {
	Provinces           []string            `json:"provinces"`
	DistrictsByProvince map[string][]string `json:"districts_by_province"`
	Commodities         []string            `json:"commodities"`
}
