// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package dataset

import (
	"sync/atomic"
	"time"
)

// Snapshot is an immutable view of every reference dataset.
// Callers must not modify the slices of a published snapshot.
type Snapshot struct {
	Version      uint64
	LoadedAt     time.Time
	Observations []Observation
	Profiles     []NutrientProfile
	History      []HistoricalRecord
	Dosage       []HistoricalRecord
}

// Counts summarizes the number of rows per dataset.
type Counts struct {
	Observations int `json:"observations"`
	Profiles     int `json:"profiles"`
	History      int `json:"history"`
	Dosage       int `json:"dosage"`
}

// Counts returns the row count of each dataset.
func (s *Snapshot) Counts() Counts {
	if s == nil {
		return Counts{}
	}
	return Counts{
		Observations: len(s.Observations),
		Profiles:     len(s.Profiles),
		History:      len(s.History),
		Dosage:       len(s.Dosage),
	}
}

var emptySnapshot = &Snapshot{}

// Store publishes snapshots. Readers call Current once per query and keep
// using the returned snapshot even if a newer one is published meanwhile.
type Store struct {
	current atomic.Pointer[Snapshot]
	version atomic.Uint64
	now     func() time.Time
}

// NewStore creates a store with nothing published yet.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Current returns the latest snapshot, or an empty one before the first
// publish. It never returns nil.
func (s *Store) Current() *Snapshot {
	if snap := s.current.Load(); snap != nil {
		return snap
	}
	return emptySnapshot
}

// Ready reports whether a snapshot has been published.
func (s *Store) Ready() bool {
	return s.current.Load() != nil
}

// Publish stamps snap with the next version and load time and makes it
// current. snap must not be modified afterwards.
func (s *Store) Publish(snap *Snapshot) *Snapshot {
	if snap == nil {
		snap = &Snapshot{}
	}
	snap.Version = s.version.Add(1)
	snap.LoadedAt = s.now()
	s.current.Store(snap)
	return snap
}
