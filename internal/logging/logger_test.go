// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Level != "info" {
		t.Errorf("expected default level 'info', got '%s'", cfg.Level)
	}
	if cfg.Format != "json" {
		t.Errorf("expected default format 'json', got '%s'", cfg.Format)
	}
	if !cfg.Timestamp {
		t.Error("expected default timestamp to be true")
	}
}

func TestInit(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})
	defer Init(DefaultConfig())

	Debug().Str("dataset", "crop").Msg("loaded")

	out := buf.String()
	if !strings.Contains(out, `"message":"loaded"`) {
		t.Errorf("expected message in output, got: %s", out)
	}
	if !strings.Contains(out, `"dataset":"crop"`) {
		t.Errorf("expected field in output, got: %s", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"WARN", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestValidLevel(t *testing.T) {
	t.Parallel()

	if !ValidLevel("Debug") {
		t.Error("expected Debug to be valid")
	}
	if ValidLevel("verbose") {
		t.Error("expected verbose to be invalid")
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Output: &buf})
	defer Init(DefaultConfig())

	l := WithComponent("recommend")
	l.Info().Msg("ready")

	if !strings.Contains(buf.String(), `"component":"recommend"`) {
		t.Errorf("expected component field, got: %s", buf.String())
	}
}

func TestErr(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Output: &buf})
	defer Init(DefaultConfig())

	Err(errors.New("boom")).Msg("failed")

	if !strings.Contains(buf.String(), `"error":"boom"`) {
		t.Errorf("expected error field, got: %s", buf.String())
	}
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Output: &buf})
	defer Init(DefaultConfig())

	ctx := ContextWithRequestID(context.Background(), "req-123")
	if got := RequestIDFromContext(ctx); got != "req-123" {
		t.Fatalf("RequestIDFromContext = %q, want req-123", got)
	}

	Ctx(ctx).Info().Msg("handled")
	if !strings.Contains(buf.String(), `"request_id":"req-123"`) {
		t.Errorf("expected request_id field, got: %s", buf.String())
	}

	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty request ID, got %q", got)
	}
}

func TestGenerateRequestID(t *testing.T) {
	t.Parallel()

	a, b := GenerateRequestID(), GenerateRequestID()
	if len(a) != 36 {
		t.Errorf("expected UUID length 36, got %d", len(a))
	}
	if a == b {
		t.Error("expected unique request IDs")
	}
}

func TestSlogHandler(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger := slog.New(NewSlogHandler(NewTestLogger(&buf))).
		With("service", "reload").
		WithGroup("supervisor")

	logger.Warn("service restarted", "attempt", 2, slog.Group("backoff", "seconds", 1.5))

	out := buf.String()
	for _, want := range []string{
		`"level":"warn"`,
		`"message":"service restarted"`,
		`"service":"reload"`,
		`"supervisor.attempt":2`,
		`"supervisor.backoff.seconds":1.5`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in output, got: %s", want, out)
		}
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	h := NewSlogHandler(zerolog.New(nil).Level(zerolog.WarnLevel))
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled for a warn-level logger")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled for a warn-level logger")
	}
}
