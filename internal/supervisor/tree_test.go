// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"
)

// mockService runs until canceled, optionally failing its first runs.
type mockService struct {
	name       string
	startCount atomic.Int32
	failures   atomic.Int32
	maxFails   int32
}

func (m *mockService) Serve(ctx context.Context) error {
	m.startCount.Add(1)
	if m.failures.Add(1) <= m.maxFails {
		return errors.New("simulated failure")
	}
	<-ctx.Done()
	return ctx.Err()
}

func (m *mockService) String() string { return m.name }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestSupervisorTreeConstruction(t *testing.T) {
	t.Run("applies default values for zero config", func(t *testing.T) {
		tree, err := NewSupervisorTree(quietLogger(), TreeConfig{})
		if err != nil {
			t.Fatalf("failed to create tree: %v", err)
		}
		if tree.Root() == nil {
			t.Fatal("root supervisor should not be nil")
		}
		if tree.config != DefaultTreeConfig() {
			t.Errorf("config = %+v, want defaults %+v", tree.config, DefaultTreeConfig())
		}
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		tree, _ := NewSupervisorTree(nil, TreeConfig{FailureThreshold: 2, ShutdownTimeout: time.Second})
		if tree.config.FailureThreshold != 2 || tree.config.ShutdownTimeout != time.Second {
			t.Errorf("config = %+v", tree.config)
		}
		if tree.config.FailureBackoff != 15*time.Second {
			t.Errorf("FailureBackoff = %v, want default 15s", tree.config.FailureBackoff)
		}
	})
}

func TestSupervisorTreeLifecycle(t *testing.T) {
	tree, err := NewSupervisorTree(quietLogger(), TreeConfig{
		FailureBackoff:  100 * time.Millisecond,
		ShutdownTimeout: time.Second,
	})
	if err != nil {
		t.Fatalf("failed to create tree: %v", err)
	}

	data := &mockService{name: "mock-data"}
	api := &mockService{name: "mock-api"}
	tree.AddDataService(data)
	tree.AddAPIService(api)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	deadline := time.Now().Add(2 * time.Second)
	for data.startCount.Load() == 0 || api.startCount.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("services were not started")
		}
		time.Sleep(10 * time.Millisecond)
	}
	cancel()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("tree did not shut down in time")
	}

	report, err := tree.UnstoppedServiceReport()
	if err != nil {
		t.Fatalf("UnstoppedServiceReport: %v", err)
	}
	if len(report) != 0 {
		t.Errorf("unstopped services: %v", report)
	}
}

func TestSupervisorTreeRestartsFailedService(t *testing.T) {
	tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})

	flaky := &mockService{name: "flaky-data", maxFails: 2}
	api := &mockService{name: "steady-api"}
	tree.AddDataService(flaky)
	tree.AddAPIService(api)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := tree.ServeBackground(ctx)

	deadline := time.Now().Add(3 * time.Second)
	for flaky.startCount.Load() < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("flaky service started %d times, want 3", flaky.startCount.Load())
		}
		time.Sleep(10 * time.Millisecond)
	}

	if got := api.startCount.Load(); got != 1 {
		t.Errorf("api layer restarted: start count %d, want 1", got)
	}

	cancel()
	<-errCh
}
