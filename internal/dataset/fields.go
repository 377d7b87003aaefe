// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package dataset

// Column headers of the crop reference dataset (crop_recommendation.csv).
const (
	FieldNitrogen    = "Nitrogen (N)"
	FieldPhosphorus  = "Fosforus (P)"
	FieldPotassium   = "Kalium (K)"
	FieldTemperature = "Suhu"
	FieldHumidity    = "Kelembaban"
	FieldPH          = "pH"
	FieldRainfall    = "Curah Hujan"
	FieldLabel       = "Label"
)

// Column headers of the fertilizer reference dataset. Nutrient columns
// share their names with the crop dataset.
const (
	FieldCrop = "Tanaman"
)

// Column headers of the historical planting datasets (prediction and dosage).
const (
	FieldProvince        = "Province"
	FieldDistrict        = "District"
	FieldCommodity       = "Commodity"
	FieldProduction      = "Production_KgHa"
	FieldPriceUrea       = "InputPrice_Urea_RpKg"
	FieldPriceSP36       = "InputPrice_SP36_RpKg"
	FieldPriceKCl        = "InputPrice_KCl_RpKg"
	FieldInitCapital     = "Init_Capital_RpHa"
	FieldMaintenanceCost = "Maintenance_Cost_RpHa"
	FieldPrevYield       = "Prev_Yield_KgHa"
	FieldRain            = "Rain_mm"
	FieldTemp            = "Temp_C"
	FieldSoilPH          = "Soil_pH"
	FieldSoilN           = "Soil_N_Index"
	FieldSoilP           = "Soil_P_Index"
	FieldSoilK           = "Soil_K_Index"
	FieldDoseUrea        = "Pupuk_Urea_KgHa"
	FieldDoseSP36        = "Pupuk_SP36_KgHa"
	FieldDoseKCl         = "Pupuk_KCl_KgHa"
)
