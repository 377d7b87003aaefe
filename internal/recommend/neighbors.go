// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package recommend

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/tomtom215/agrisensa/internal/dataset"
)

// neighbor is a dataset row and its distance to the query.
type neighbor struct {
	index    int
	distance float64
}

// nearest returns up to k rows closest to query, ascending by Euclidean
// distance. vectorAt returns the feature vector of row i; rows with a
// missing component are skipped. Equal distances keep dataset order.
func nearest(query []float64, rows int, vectorAt func(i int) []float64, k int) []neighbor {
	pool := make([]neighbor, 0, rows)
	for i := 0; i < rows; i++ {
		v := vectorAt(i)
		if floats.HasNaN(v) {
			continue
		}
		pool = append(pool, neighbor{index: i, distance: floats.Distance(query, v, 2)})
	}

	sort.SliceStable(pool, func(a, b int) bool {
		return pool[a].distance < pool[b].distance
	})

	if k < len(pool) {
		pool = pool[:k]
	}
	return pool
}

// meanPresent is the arithmetic mean of the non-missing values, or 0 when
// every value is missing.
func meanPresent(values []float64) float64 {
	present := make([]float64, 0, len(values))
	for _, v := range values {
		if !dataset.Missing(v) {
			present = append(present, v)
		}
	}
	if len(present) == 0 {
		return 0
	}
	return stat.Mean(present, nil)
}
