// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package dataset

import (
	"sync"
	"testing"
)

func TestStore_CurrentBeforePublish(t *testing.T) {
	t.Parallel()

	s := NewStore()
	if s.Ready() {
		t.Error("new store should not be ready")
	}
	snap := s.Current()
	if snap == nil {
		t.Fatal("Current must never return nil")
	}
	if snap.Version != 0 || len(snap.Observations) != 0 {
		t.Errorf("expected empty snapshot, got %+v", snap)
	}
}

func TestStore_Publish(t *testing.T) {
	t.Parallel()

	s := NewStore()
	first := s.Publish(&Snapshot{Observations: []Observation{{Label: "rice"}}})
	held := s.Current()

	second := s.Publish(&Snapshot{Observations: []Observation{{Label: "maize"}, {Label: "mango"}}})

	if !s.Ready() {
		t.Error("store should be ready after publish")
	}
	if first.Version != 1 || second.Version != 2 {
		t.Errorf("expected versions 1 and 2, got %d and %d", first.Version, second.Version)
	}
	if first.LoadedAt.IsZero() {
		t.Error("expected LoadedAt to be stamped")
	}
	if s.Current() != second {
		t.Error("Current should return the latest snapshot")
	}
	// A reader holding the old snapshot keeps a consistent view.
	if len(held.Observations) != 1 || held.Observations[0].Label != "rice" {
		t.Errorf("held snapshot changed: %+v", held.Observations)
	}
}

func TestStore_PublishNil(t *testing.T) {
	t.Parallel()

	s := NewStore()
	snap := s.Publish(nil)
	if snap == nil || snap.Version != 1 {
		t.Errorf("expected empty versioned snapshot, got %+v", snap)
	}
}

func TestStore_ConcurrentReaders(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Publish(&Snapshot{Profiles: []NutrientProfile{{Crop: "rice"}}})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				snap := s.Current()
				if len(snap.Profiles) != 1 {
					t.Errorf("unexpected profile count %d", len(snap.Profiles))
					return
				}
			}
		}()
	}
	for i := 0; i < 10; i++ {
		s.Publish(&Snapshot{Profiles: []NutrientProfile{{Crop: "maize"}}})
	}
	wg.Wait()
}

func TestSnapshotCounts(t *testing.T) {
	t.Parallel()

	var nilSnap *Snapshot
	if c := nilSnap.Counts(); c != (Counts{}) {
		t.Errorf("nil snapshot counts = %+v", c)
	}

	snap := &Snapshot{
		Observations: make([]Observation, 3),
		History:      make([]HistoricalRecord, 2),
	}
	want := Counts{Observations: 3, History: 2}
	if c := snap.Counts(); c != want {
		t.Errorf("Counts = %+v, want %+v", c, want)
	}
}
