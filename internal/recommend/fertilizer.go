// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package recommend

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/tomtom215/agrisensa/internal/dataset"
)

// Corrective inputs per nutrient.
var (
	nitrogenInputs   = []string{"Urea", "ZA"}
	phosphorusInputs = []string{"SP-36", "TSP"}
	potassiumInputs  = []string{"KCl", "ZK"}
	limeInputs       = []string{"Kapur Dolomit"}
	sulfurInputs     = []string{"Belerang/Sulfur"}
)

const optimalMessage = "Kondisi tanah sudah optimal untuk tanaman ini."

// DeficitCalculator compares soil nutrients with crop nutrient profiles.
type DeficitCalculator struct {
	profiles []dataset.NutrientProfile
	cfg      FertilizerConfig
}

// NewDeficitCalculator builds a calculator over profiles.
func NewDeficitCalculator(profiles []dataset.NutrientProfile, cfg FertilizerConfig) *DeficitCalculator {
	return &DeficitCalculator{profiles: profiles, cfg: cfg}
}

// profile returns the first profile whose crop name equals crop exactly.
func (c *DeficitCalculator) profile(crop string) (*dataset.NutrientProfile, bool) {
	for i := range c.profiles {
		if c.profiles[i].Crop == crop {
			return &c.profiles[i], true
		}
	}
	return nil, false
}

// Calculate returns the nutrient deficits of soil for crop and the advice
// to correct them. ok is false when no profile exists for crop.
func (c *DeficitCalculator) Calculate(crop string, soil SoilNutrients) (analysis *NutrientAnalysis, ok bool) {
	p, found := c.profile(crop)
	if !found {
		return nil, false
	}

	deficit := NutrientDeficit{
		Nitrogen:   deficitOf(p.Nitrogen, soil.Nitrogen),
		Phosphorus: deficitOf(p.Phosphorus, soil.Phosphorus),
		Potassium:  deficitOf(p.Potassium, soil.Potassium),
	}

	var items []Advice
	if deficit.Nitrogen > 0 {
		items = append(items, Advice{
			Kind: AdviceDeficiency, Nutrient: "N", Amount: deficit.Nitrogen, Inputs: nitrogenInputs,
			Message: fmt.Sprintf("Kekurangan Nitrogen (%.1f ppm): Gunakan Urea atau ZA.", deficit.Nitrogen),
		})
	}
	if deficit.Phosphorus > 0 {
		items = append(items, Advice{
			Kind: AdviceDeficiency, Nutrient: "P", Amount: deficit.Phosphorus, Inputs: phosphorusInputs,
			Message: fmt.Sprintf("Kekurangan Fosfor (%.1f ppm): Gunakan SP-36 atau TSP.", deficit.Phosphorus),
		})
	}
	if deficit.Potassium > 0 {
		items = append(items, Advice{
			Kind: AdviceDeficiency, Nutrient: "K", Amount: deficit.Potassium, Inputs: potassiumInputs,
			Message: fmt.Sprintf("Kekurangan Kalium (%.1f ppm): Gunakan KCl atau ZK.", deficit.Potassium),
		})
	}

	if math.Abs(soil.PH-p.PH) > c.cfg.PHTolerance {
		if soil.PH < p.PH {
			items = append(items, Advice{
				Kind: AdvicePHLow, Nutrient: "pH", Amount: soil.PH, Inputs: limeInputs,
				Message: fmt.Sprintf("pH Terlalu Rendah (%s vs %s): Tambahkan Kapur Dolomit.", formatPH(soil.PH), formatPH(p.PH)),
			})
		} else {
			items = append(items, Advice{
				Kind: AdvicePHHigh, Nutrient: "pH", Amount: soil.PH, Inputs: sulfurInputs,
				Message: fmt.Sprintf("pH Terlalu Tinggi (%s vs %s): Tambahkan Belerang/Sulfur.", formatPH(soil.PH), formatPH(p.PH)),
			})
		}
	}

	if len(items) == 0 {
		items = append(items, Advice{Kind: AdviceOptimal, Message: optimalMessage})
	}

	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, it.Message)
	}

	return &NutrientAnalysis{
		Crop: p.Crop,
		Target: NutrientTarget{
			Nitrogen:   p.Nitrogen,
			Phosphorus: p.Phosphorus,
			Potassium:  p.Potassium,
			PH:         p.PH,
		},
		Deficit: deficit,
		Advice:  lines,
		Items:   items,
	}, true
}

// Crops returns the distinct crop names with a profile, sorted.
func (c *DeficitCalculator) Crops() []string {
	seen := make(map[string]struct{}, len(c.profiles))
	crops := make([]string, 0, len(c.profiles))
	for i := range c.profiles {
		name := c.profiles[i].Crop
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		crops = append(crops, name)
	}
	sort.Strings(crops)
	return crops
}

// deficitOf is max(0, target - current). A missing target yields no deficit.
func deficitOf(target, current float64) float64 {
	d := target - current
	if dataset.Missing(d) || d < 0 {
		return 0
	}
	return d
}

// formatPH prints whole values with one decimal (6.0) and others in their
// shortest form (6.25).
func formatPH(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
