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

func TestCropMatcher_EmptyDataset(t *testing.T) {
	t.Parallel()

	got := NewCropMatcher(nil, DefaultConfig().Crops).Recommend(FieldConditions{Nitrogen: 90})
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected no crops, got %v", got)
	}
}

func TestCropMatcher_ExactMatch(t *testing.T) {
	t.Parallel()

	obs := []dataset.Observation{{
		Nitrogen: 90, Phosphorus: 42, Potassium: 43,
		Temperature: 20.8, Humidity: 82, PH: 6.5, Rainfall: 202.9,
		Label: "rice",
	}}
	in := FieldConditions{
		Nitrogen: 90, Phosphorus: 42, Potassium: 43,
		Temperature: 20.8, Humidity: 82, PH: 6.5, Rainfall: 202.9,
	}

	assertStrings(t, NewCropMatcher(obs, DefaultConfig().Crops).Recommend(in), []string{"rice"})
}

func TestCropMatcher_Voting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		obs       []dataset.Observation
		neighbors int
		want      []string
	}{
		{
			name: "frequency ties keep first appearance among neighbours",
			obs: []dataset.Observation{
				obsAt(4, "a"), obsAt(2, "b"), obsAt(3, "b"), obsAt(1, "a"), obsAt(5, "c"),
			},
			neighbors: 20,
			// By distance: a(1), b(2), b(3), a(4), c(5). a and b tie at 2, a appears first.
			want: []string{"a", "b", "c"},
		},
		{
			name: "most frequent first",
			obs: []dataset.Observation{
				obsAt(1, "mango"), obsAt(2, "rice"), obsAt(3, "rice"), obsAt(4, "rice"), obsAt(5, "mango"), obsAt(6, "jute"),
			},
			neighbors: 20,
			want:      []string{"rice", "mango", "jute"},
		},
		{
			name: "at most three labels",
			obs: []dataset.Observation{
				obsAt(1, "a"), obsAt(2, "b"), obsAt(3, "c"), obsAt(4, "d"),
			},
			neighbors: 20,
			want:      []string{"a", "b", "c"},
		},
		{
			name: "only the k nearest vote",
			obs: []dataset.Observation{
				obsAt(1, "near"), obsAt(50, "far"), obsAt(51, "far"), obsAt(52, "far"),
			},
			neighbors: 1,
			want:      []string{"near"},
		},
		{
			name: "equal distances keep dataset order",
			obs: []dataset.Observation{
				obsAt(-1, "first"), obsAt(1, "second"),
			},
			neighbors: 1,
			want:      []string{"first"},
		},
		{
			name: "rows with missing features are skipped",
			obs: []dataset.Observation{
				{Nitrogen: nan, Label: "broken"}, obsAt(3, "ok"),
			},
			neighbors: 1,
			want:      []string{"ok"},
		},
		{
			name: "empty labels do not vote",
			obs: []dataset.Observation{
				obsAt(0, ""), obsAt(1, "maize"),
			},
			neighbors: 20,
			want:      []string{"maize"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := CropConfig{Neighbors: tt.neighbors, TopLabels: 3}
			assertStrings(t, NewCropMatcher(tt.obs, cfg).Recommend(FieldConditions{}), tt.want)
		})
	}
}

func TestCropMatcher_NeighbourPool(t *testing.T) {
	t.Parallel()

	// 20 "near" rows then 30 "far" rows. With k=20 only the near rows vote.
	var obs []dataset.Observation
	for i := 0; i < 30; i++ {
		obs = append(obs, obsAt(float64(100+i), "far"))
	}
	for i := 0; i < 20; i++ {
		obs = append(obs, obsAt(float64(i), fmt.Sprintf("near-%d", i%2)))
	}

	got := NewCropMatcher(obs, DefaultConfig().Crops).Recommend(FieldConditions{})
	assertStrings(t, got, []string{"near-0", "near-1"})
}

func TestCropMatcher_UnnormalizedDistance(t *testing.T) {
	t.Parallel()

	// Rainfall dominates: a 50 mm rainfall gap outweighs a 30 ppm N gap.
	obs := []dataset.Observation{
		{Nitrogen: 30, Rainfall: 200, Label: "nitrogen-off"},
		{Nitrogen: 0, Rainfall: 250, Label: "rain-off"},
	}
	cfg := CropConfig{Neighbors: 1, TopLabels: 3}
	got := NewCropMatcher(obs, cfg).Recommend(FieldConditions{Rainfall: 200})
	assertStrings(t, got, []string{"nitrogen-off"})
}

func TestTopLabels(t *testing.T) {
	t.Parallel()

	assertStrings(t, topLabels([]string{"x", "y", "y", "x", "z", "z", "z"}, 2), []string{"z", "x"})
	assertStrings(t, topLabels(nil, 3), []string{})
}
