// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package api

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/agrisensa/internal/dataset"
	"github.com/tomtom215/agrisensa/internal/recommend"
)

var nan = math.NaN()

// fixtureSnapshot returns a small snapshot covering every endpoint.
func fixtureSnapshot() *dataset.Snapshot {
	history := []dataset.HistoricalRecord{
		planting("Jawa Barat", "Karawang", "Padi", 6000, 5, 90, 40, 40, 200, 100, 50),
		planting("Jawa Barat", "Karawang", "Padi", 5000, 6, 100, 50, 50, 250, 120, 60),
		planting("Jawa Barat", "Indramayu", "Padi", 7000, 6.5, 80, 30, 60, 180, 90, 70),
		planting("Jawa Timur", "Malang", "Jagung", 8000, 7, 120, 60, 70, 300, 150, 100),
	}
	return &dataset.Snapshot{
		Observations: []dataset.Observation{
			{Nitrogen: 90, Phosphorus: 42, Potassium: 43, Temperature: 20.9, Humidity: 82, PH: 6.5, Rainfall: 202.9, Label: "rice"},
			{Nitrogen: 85, Phosphorus: 58, Potassium: 41, Temperature: 21.8, Humidity: 80, PH: 7.0, Rainfall: 226.7, Label: "rice"},
			{Nitrogen: 71, Phosphorus: 54, Potassium: 16, Temperature: 22.6, Humidity: 63, PH: 5.7, Rainfall: 87.8, Label: "maize"},
		},
		Profiles: []dataset.NutrientProfile{
			{Crop: "rice", Nitrogen: 100, Phosphorus: 50, Potassium: 50, PH: 6.0},
			{Crop: "maize", Nitrogen: 80, Phosphorus: 40, Potassium: 20, PH: 6.5},
		},
		History: history,
		Dosage:  history,
	}
}

func planting(province, district, commodity string, production, ph, n, p, k, urea, sp36, kcl float64) dataset.HistoricalRecord {
	return dataset.HistoricalRecord{
		Province: province, District: district, Commodity: commodity,
		Production: production,
		PriceUrea:  2500, PriceSP36: 2800, PriceKCl: nan,
		InitCapital: 4000000, MaintenanceCost: 2000000,
		SoilPH: ph, SoilN: n, SoilP: p, SoilK: k,
		DoseUrea: urea, DoseSP36: sp36, DoseKCl: kcl,
	}
}

// fakeReloader publishes a scripted snapshot or returns a scripted error.
type fakeReloader struct {
	store *dataset.Store
	snap  *dataset.Snapshot
	err   error
	calls int
}

func (f *fakeReloader) Reload(context.Context) (*dataset.Snapshot, error) {
	f.calls++
	if f.snap == nil {
		return nil, f.err
	}
	return f.store.Publish(f.snap), f.err
}

func (f *fakeReloader) BreakerState() string { return "closed" }

func (f *fakeReloader) Paths() dataset.Paths {
	return dataset.Paths{Crop: "data/crop.csv", Fertilizer: "data/fert.csv", History: "data/history.csv"}
}

type testServer struct {
	handler http.Handler
	store   *dataset.Store
}

// newTestServer builds the full router over store. A nil mwConfig disables
// rate limiting.
func newTestServer(t *testing.T, store *dataset.Store, mwConfig *ChiMiddlewareConfig, opts ...HandlerOption) *testServer {
	t.Helper()

	engine, err := recommend.NewEngine(nil, store, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if mwConfig == nil {
		mwConfig = DefaultChiMiddlewareConfig()
		mwConfig.CORSAllowedOrigins = []string{"*"}
		mwConfig.RateLimitDisabled = true
	}
	router := NewRouter(NewHandler(engine, store, opts...), NewChiMiddleware(mwConfig), nil)
	return &testServer{handler: router.SetupChi(), store: store}
}

// readyServer returns a server with the fixture snapshot published.
func readyServer(t *testing.T, opts ...HandlerOption) *testServer {
	t.Helper()
	store := dataset.NewStore()
	store.Publish(fixtureSnapshot())
	return newTestServer(t, store, nil, opts...)
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

// envelope mirrors APIResponse with the payload left raw.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return env
}

// expectStatus checks the HTTP status and, for errors, the envelope code.
func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) envelope {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if code == "" {
		if !env.Success || env.Error != nil {
			t.Fatalf("expected success envelope, got %s", rec.Body.String())
		}
		return env
	}
	if env.Success || env.Error == nil {
		t.Fatalf("expected error envelope, got %s", rec.Body.String())
	}
	if env.Error.Code != code {
		t.Errorf("error code = %q, want %q", env.Error.Code, code)
	}
	return env
}

func decodeData(t *testing.T, env envelope, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data %s: %v", env.Data, err)
	}
}
