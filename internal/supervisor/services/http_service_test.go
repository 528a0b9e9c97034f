// Recipegen - Ingredient-Based Recipe Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipegen

package services

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

// fakeHTTPServer is a test double for the HTTPServer interface.
type fakeHTTPServer struct {
	listenErr     error
	blocking      bool
	shutdownErr   error
	listenCount   atomic.Int32
	shutdownCount atomic.Int32
	stopCh        chan struct{}
}

func newFakeHTTPServer() *fakeHTTPServer {
	return &fakeHTTPServer{stopCh: make(chan struct{})}
}

func (f *fakeHTTPServer) ListenAndServe() error {
	f.listenCount.Add(1)

	if f.listenErr != nil {
		return f.listenErr
	}
	if f.blocking {
		<-f.stopCh
		return http.ErrServerClosed
	}
	return nil
}

func (f *fakeHTTPServer) Shutdown(_ context.Context) error {
	f.shutdownCount.Add(1)
	close(f.stopCh)
	return f.shutdownErr
}

func TestHTTPServerServiceInterface(t *testing.T) {
	t.Parallel()

	var _ suture.Service = (*HTTPServerService)(nil)
}

func TestHTTPServerServiceDefaults(t *testing.T) {
	t.Parallel()

	svc := NewHTTPServerService(newFakeHTTPServer(), 0)
	if svc.shutdownTimeout != 10*time.Second {
		t.Errorf("shutdownTimeout = %v, want default 10s", svc.shutdownTimeout)
	}
	if svc.String() != "http-server" {
		t.Errorf("String() = %q, want http-server", svc.String())
	}
}

func TestHTTPServerServiceStartFailure(t *testing.T) {
	t.Parallel()

	server := newFakeHTTPServer()
	server.listenErr = errors.New("address in use")

	svc := NewHTTPServerService(server, time.Second)

	err := svc.Serve(context.Background())
	if err == nil || !errors.Is(err, server.listenErr) {
		t.Fatalf("Serve() = %v, want wrapped listen error", err)
	}
}

func TestHTTPServerServiceGracefulShutdown(t *testing.T) {
	t.Parallel()

	server := newFakeHTTPServer()
	server.blocking = true

	svc := NewHTTPServerService(server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	// Let the server goroutine start, then request shutdown.
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}

	if server.shutdownCount.Load() != 1 {
		t.Errorf("shutdown calls = %d, want 1", server.shutdownCount.Load())
	}
}

func TestHTTPServerServiceShutdownError(t *testing.T) {
	t.Parallel()

	server := newFakeHTTPServer()
	server.blocking = true
	server.shutdownErr = errors.New("connections still draining")

	svc := NewHTTPServerService(server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err == nil || !errors.Is(err, server.shutdownErr) {
			t.Errorf("Serve() = %v, want wrapped shutdown error", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
}

func TestHTTPServerServiceCleanExit(t *testing.T) {
	t.Parallel()

	// ListenAndServe returning nil (externally closed) is not an error.
	svc := NewHTTPServerService(newFakeHTTPServer(), time.Second)

	if err := svc.Serve(context.Background()); err != nil {
		t.Errorf("Serve() = %v, want nil", err)
	}
}
