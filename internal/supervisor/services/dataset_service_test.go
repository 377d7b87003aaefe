// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/agrisensa/internal/dataset"
)

// countingReloader counts reloads and signals each one.
type countingReloader struct {
	calls  atomic.Int32
	err    error
	nilRet bool
	done   chan struct{}
}

func newCountingReloader() *countingReloader {
	return &countingReloader{done: make(chan struct{}, 16)}
}

func (r *countingReloader) Reload(context.Context) (*dataset.Snapshot, error) {
	n := r.calls.Add(1)
	defer func() {
		select {
		case r.done <- struct{}{}:
		default:
		}
	}()
	if r.nilRet {
		return nil, r.err
	}
	return &dataset.Snapshot{Version: uint64(n)}, r.err
}

func (r *countingReloader) waitCalls(t *testing.T, n int32) {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for r.calls.Load() < n {
		select {
		case <-r.done:
		case <-deadline:
			t.Fatalf("got %d reloads, want %d", r.calls.Load(), n)
		}
	}
}

// fakeWatcher records watches and lets the test fire change events.
type fakeWatcher struct {
	mu        sync.Mutex
	callbacks map[string]func()
	unwatched atomic.Int32
	failPaths map[string]bool
}

func (w *fakeWatcher) watch(path string, onChange func()) (Unwatcher, error) {
	if w.failPaths[path] {
		return nil, errors.New("no such file")
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.callbacks == nil {
		w.callbacks = map[string]func(){}
	}
	w.callbacks[path] = onChange
	return w, nil
}

func (w *fakeWatcher) Unwatch() error {
	w.unwatched.Add(1)
	return nil
}

func (w *fakeWatcher) fire(path string) {
	w.mu.Lock()
	cb := w.callbacks[path]
	w.mu.Unlock()
	if cb != nil {
		cb()
	}
}

func (w *fakeWatcher) watching(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.callbacks[path]
	return ok
}

func runService(t *testing.T, svc *DatasetService) (cancel func()) {
	t.Helper()
	ctx, cancelCtx := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()
	return func() {
		cancelCtx()
		select {
		case err := <-errCh:
			if !errors.Is(err, context.Canceled) {
				t.Errorf("Serve() = %v, want context.Canceled", err)
			}
		case <-time.After(2 * time.Second):
			t.Error("Serve did not return after cancel")
		}
	}
}

func TestDatasetService_Interface(t *testing.T) {
	var _ suture.Service = (*DatasetService)(nil)
}

func TestDatasetService_ReloadOnStart(t *testing.T) {
	reloader := newCountingReloader()
	svc := NewDatasetService(reloader, DatasetServiceConfig{ReloadOnStart: true}, zerolog.Nop())

	stop := runService(t, svc)
	reloader.waitCalls(t, 1)
	stop()

	if got := reloader.calls.Load(); got != 1 {
		t.Errorf("reloads = %d, want 1 without a schedule", got)
	}
}

func TestDatasetService_NoReloadWithoutTriggers(t *testing.T) {
	reloader := newCountingReloader()
	svc := NewDatasetService(reloader, DatasetServiceConfig{}, zerolog.Nop())

	stop := runService(t, svc)
	time.Sleep(50 * time.Millisecond)
	stop()

	if got := reloader.calls.Load(); got != 0 {
		t.Errorf("reloads = %d, want 0", got)
	}
}

func TestDatasetService_Schedule(t *testing.T) {
	reloader := newCountingReloader()
	svc := NewDatasetService(reloader, DatasetServiceConfig{ReloadInterval: 20 * time.Millisecond}, zerolog.Nop())

	stop := runService(t, svc)
	reloader.waitCalls(t, 3)
	stop()
}

func TestDatasetService_FailuresDoNotStopService(t *testing.T) {
	reloader := newCountingReloader()
	reloader.nilRet = true
	reloader.err = dataset.ErrNoDatasetLoaded
	svc := NewDatasetService(reloader, DatasetServiceConfig{ReloadOnStart: true, ReloadInterval: 20 * time.Millisecond}, zerolog.Nop())

	stop := runService(t, svc)
	reloader.waitCalls(t, 3)
	stop()
}

func TestDatasetService_WatchDebounce(t *testing.T) {
	reloader := newCountingReloader()
	watcher := &fakeWatcher{}
	svc := NewDatasetService(reloader, DatasetServiceConfig{
		WatchFiles:    []string{"crop.csv", "history.csv"},
		WatchDebounce: 200 * time.Millisecond,
	}, zerolog.Nop()).WithWatchFunc(watcher.watch)

	stop := runService(t, svc)
	for !watcher.watching("history.csv") {
		time.Sleep(5 * time.Millisecond)
	}

	// A burst of writes yields one leading and one trailing reload.
	for i := 0; i < 10; i++ {
		watcher.fire("crop.csv")
		watcher.fire("history.csv")
	}
	reloader.waitCalls(t, 1)
	for i := 0; i < 10; i++ {
		watcher.fire("history.csv")
	}
	reloader.waitCalls(t, 2)
	time.Sleep(300 * time.Millisecond)
	stop()

	if got := reloader.calls.Load(); got > 3 {
		t.Errorf("reloads = %d, want the burst coalesced", got)
	}
	if got := watcher.unwatched.Load(); got != 2 {
		t.Errorf("unwatched = %d, want 2", got)
	}
}

func TestDatasetService_WatchSkipsUnwatchableFiles(t *testing.T) {
	reloader := newCountingReloader()
	watcher := &fakeWatcher{failPaths: map[string]bool{"missing.csv": true}}
	svc := NewDatasetService(reloader, DatasetServiceConfig{
		WatchFiles:    []string{"missing.csv", "crop.csv"},
		WatchDebounce: 10 * time.Millisecond,
	}, zerolog.Nop()).WithWatchFunc(watcher.watch)

	stop := runService(t, svc)
	for !watcher.watching("crop.csv") {
		time.Sleep(5 * time.Millisecond)
	}
	watcher.fire("crop.csv")
	reloader.waitCalls(t, 1)
	stop()

	if got := watcher.unwatched.Load(); got != 1 {
		t.Errorf("unwatched = %d, want 1", got)
	}
}

func TestWatchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crop.csv")
	if err := os.WriteFile(path, []byte("N,P,K\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	changed := make(chan struct{}, 1)
	w, err := WatchFile(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("WatchFile() error = %v", err)
	}
	defer func() { _ = w.Unwatch() }()

	if err := os.WriteFile(path, []byte("N,P,K\n1,2,3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("callback not invoked after file change")
	}
}
