// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package recommend

import (
	"sort"

	"github.com/tomtom215/agrisensa/internal/dataset"
)

// CropMatcher recommends crops by nearest-neighbour voting over crop
// observations.
type CropMatcher struct {
	observations []dataset.Observation
	cfg          CropConfig
}

// NewCropMatcher builds a matcher over observations, which must not be
// modified while the matcher is in use.
func NewCropMatcher(observations []dataset.Observation, cfg CropConfig) *CropMatcher {
	return &CropMatcher{observations: observations, cfg: cfg}
}

// observationVector orders features as N, P, K, temperature, humidity, pH,
// rainfall.
func observationVector(o *dataset.Observation) []float64 {
	return []float64{o.Nitrogen, o.Phosphorus, o.Potassium, o.Temperature, o.Humidity, o.PH, o.Rainfall}
}

// Recommend returns up to TopLabels crop labels, most frequent among the
// Neighbors closest observations first. An empty dataset yields an empty
// slice.
//
//nolint:gocritic // FieldConditions is a small value type
func (m *CropMatcher) Recommend(in FieldConditions) []string {
	if len(m.observations) == 0 {
		return []string{}
	}

	query := []float64{in.Nitrogen, in.Phosphorus, in.Potassium, in.Temperature, in.Humidity, in.PH, in.Rainfall}
	neighbors := nearest(query, len(m.observations), func(i int) []float64 {
		return observationVector(&m.observations[i])
	}, m.cfg.Neighbors)

	return topLabels(m.labelsOf(neighbors), m.cfg.TopLabels)
}

func (m *CropMatcher) labelsOf(neighbors []neighbor) []string {
	labels := make([]string, 0, len(neighbors))
	for _, n := range neighbors {
		labels = append(labels, m.observations[n.index].Label)
	}
	return labels
}

// topLabels counts labels and returns the limit most frequent ones.
// Ties keep first-appearance order. Empty labels do not vote.
func topLabels(labels []string, limit int) []string {
	type tally struct {
		label string
		count int
	}

	var tallies []tally
	position := make(map[string]int)
	for _, l := range labels {
		if l == "" {
			continue
		}
		if i, ok := position[l]; ok {
			tallies[i].count++
			continue
		}
		position[l] = len(tallies)
		tallies = append(tallies, tally{label: l, count: 1})
	}

	sort.SliceStable(tallies, func(a, b int) bool {
		return tallies[a].count > tallies[b].count
	})

	if limit < len(tallies) {
		tallies = tallies[:limit]
	}
	out := make([]string, 0, len(tallies))
	for _, t := range tallies {
		out = append(out, t.label)
	}
	return out
}
