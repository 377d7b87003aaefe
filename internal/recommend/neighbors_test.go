// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package recommend

import "testing"

func TestNearest(t *testing.T) {
	t.Parallel()

	vectors := [][]float64{{3, 4}, {0, 1}, {nan, 0}, {0, -1}, {10, 10}}
	got := nearest([]float64{0, 0}, len(vectors), func(i int) []float64 { return vectors[i] }, 3)

	wantIdx := []int{1, 3, 0}
	wantDist := []float64{1, 1, 5}
	if len(got) != len(wantIdx) {
		t.Fatalf("got %+v", got)
	}
	for i := range wantIdx {
		if got[i].index != wantIdx[i] || !approxEqual(got[i].distance, wantDist[i]) {
			t.Errorf("neighbor[%d] = %+v, want index %d distance %v", i, got[i], wantIdx[i], wantDist[i])
		}
	}
}

func TestMeanPresent(t *testing.T) {
	t.Parallel()

	if got := meanPresent([]float64{1, nan, 3}); got != 2 {
		t.Errorf("meanPresent = %v, want 2", got)
	}
	if got := meanPresent([]float64{nan}); got != 0 {
		t.Errorf("meanPresent of missing values = %v, want 0", got)
	}
	if got := meanPresent(nil); got != 0 {
		t.Errorf("meanPresent(nil) = %v, want 0", got)
	}
}
