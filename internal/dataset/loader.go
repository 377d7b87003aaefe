// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package dataset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/agrisensa/internal/logging"
)

// ErrDatasetUnavailable marks a dataset that could not be read. The loader
// substitutes an empty dataset for it.
var ErrDatasetUnavailable = errors.New("dataset unavailable")

// Paths locates the four CSV files. An empty path disables that dataset,
// except Dosage: when it is empty the history dataset doubles as the dosage
// dataset.
type Paths struct {
	Crop       string
	Fertilizer string
	History    string
	Dosage     string
}

// Files returns the configured, non-empty paths.
func (p Paths) Files() []string {
	var files []string
	for _, f := range []string{p.Crop, p.Fertilizer, p.History, p.Dosage} {
		if f != "" {
			files = append(files, f)
		}
	}
	return files
}

// Loader reads CSV files through an in-memory DuckDB instance, which
// handles delimiter sniffing and column typing.
type Loader struct {
	conn    *sql.DB
	timeout time.Duration
}

// NewLoader opens the in-memory DuckDB used for CSV parsing.
// timeout bounds each file read; zero means no bound beyond ctx.
func NewLoader(timeout time.Duration) (*Loader, error) {
	conn, err := sql.Open("duckdb", ":memory:?autoinstall_known_extensions=false&autoload_known_extensions=false")
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	// One connection keeps the in-memory catalog stable between calls.
	conn.SetMaxOpenConns(1)
	return &Loader{conn: conn, timeout: timeout}, nil
}

// Close releases the DuckDB instance.
func (l *Loader) Close() error {
	return l.conn.Close()
}

// ReadRows returns every row of a CSV file as column -> value maps, in file
// order.
func (l *Loader) ReadRows(ctx context.Context, path string) ([]Row, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDatasetUnavailable, path, err)
	}

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	query := fmt.Sprintf("SELECT * FROM read_csv_auto('%s', header = true)", strings.ReplaceAll(path, "'", "''"))
	rows, err := l.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDatasetUnavailable, path, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", path, err)
	}

	var out []Row
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("%w: %s: scan: %w", ErrDatasetUnavailable, path, err)
		}
		row := make(Row, len(cols))
		for i, c := range cols {
			row[c] = values[i]
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDatasetUnavailable, path, err)
	}
	return out, nil
}

// Load reads all configured datasets into a new unpublished snapshot.
//
// A dataset that fails to load is left empty and its error is joined into
// the returned error; the snapshot is always non-nil so callers can publish
// it and keep serving absence results for the broken dataset.
func (l *Loader) Load(ctx context.Context, paths Paths) (*Snapshot, error) {
	snap := &Snapshot{}
	var errs []error

	read := func(name, path string) []Row {
		if path == "" {
			return nil
		}
		start := time.Now()
		rows, err := l.ReadRows(ctx, path)
		if err != nil {
			logging.Warn().Err(err).Str("dataset", name).Str("path", path).
				Msg("Dataset failed to load, falling back to empty dataset")
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			return nil
		}
		logging.Debug().Str("dataset", name).Str("path", path).Int("rows", len(rows)).
			Dur("duration", time.Since(start)).Msg("Dataset loaded")
		return rows
	}

	snap.Observations = ObservationsFromRows(read("crop", paths.Crop))
	snap.Profiles = ProfilesFromRows(read("fertilizer", paths.Fertilizer))
	snap.History = HistoryFromRows(read("history", paths.History))
	if paths.Dosage == "" {
		snap.Dosage = snap.History
	} else {
		snap.Dosage = HistoryFromRows(read("dosage", paths.Dosage))
	}

	return snap, errors.Join(errs...)
}
