// AgriSensa - Agricultural Input Reference and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agrisensa

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// HTTPServer matches the lifecycle methods of *http.Server.
//
// The service depends on this interface rather than *http.Server so tests
// can substitute a fake that records calls.
//
// Satisfied by *http.Server from net/http:
//   - ListenAndServe() error
//   - Shutdown(ctx context.Context) error
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService runs an HTTP server as a supervised service.
//
// It bridges the blocking ListenAndServe call of http.Server and the
// context-driven Serve method suture expects:
//
//  1. ListenAndServe runs in a goroutine
//  2. Serve waits for either context cancellation or a server error
//  3. On cancellation, Shutdown drains connections within the shutdown timeout
//
// Example usage:
//
//	server := &http.Server{Addr: ":3857", Handler: router.SetupChi()}
//	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
type HTTPServerService struct {
	server          HTTPServer
	shutdownTimeout time.Duration
	name            string
}

// NewHTTPServerService creates an HTTP server service.
//
// shutdownTimeout bounds how long Shutdown waits for in-flight requests
// to finish. A non-positive value defaults to 10s.
func NewHTTPServerService(server HTTPServer, shutdownTimeout time.Duration) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	return &HTTPServerService{
		server:          server,
		shutdownTimeout: shutdownTimeout,
		name:            "http-server",
	}
}

// Serve implements suture.Service.
//
// This method:
//  1. Starts the HTTP server in a goroutine (ListenAndServe blocks)
//  2. Waits for context cancellation or a server error
//  3. On cancellation, calls server.Shutdown and waits for the goroutine
//
// A server that fails to listen returns a wrapped error so suture restarts
// it with backoff. http.ErrServerClosed is expected on shutdown and is not
// reported. After a graceful shutdown Serve returns ctx.Err().
func (h *HTTPServerService) Serve(ctx context.Context) error {
	// ListenAndServe blocks, so it runs in its own goroutine.
	errCh := make(chan error, 1)
	go func() {
		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		// Failed to bind, or crashed
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		// Closed from outside the service
		return nil

	case <-ctx.Done():
		// ctx is already canceled, so shutdown gets a fresh deadline.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
		defer cancel()

		if err := h.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}

		// Wait for the server goroutine to finish
		<-errCh
		return ctx.Err()
	}
}

// String implements fmt.Stringer for logging.
// Suture uses it to identify the service in log messages.
func (h *HTTPServerService) String() string {
	return h.name
}
