// Recipegen - Ingredient-Based Recipe Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipegen

// Command server runs the recipe recommendation HTTP service.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/recipegen/internal/api"
	"github.com/tomtom215/recipegen/internal/config"
	"github.com/tomtom215/recipegen/internal/corpus"
	"github.com/tomtom215/recipegen/internal/logging"
	"github.com/tomtom215/recipegen/internal/metrics"
	"github.com/tomtom215/recipegen/internal/recommend"
	"github.com/tomtom215/recipegen/internal/supervisor"
	"github.com/tomtom215/recipegen/internal/supervisor/services"
)

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("service failed")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", api.Version).
		Str("environment", cfg.Server.Environment).
		Msg("starting recipegen")

	// Load the corpus before accepting traffic; readiness reports 503
	// until this completes, but this process structure keeps startup
	// simple and deterministic.
	c, stats, err := corpus.Load(cfg.Corpus.Path)
	if err != nil {
		return fmt.Errorf("load corpus %s: %w", cfg.Corpus.Path, err)
	}
	metrics.RecordCorpusLoad(c.Len(), stats.Dropped)
	logging.Info().
		Str("path", cfg.Corpus.Path).
		Int("recipes", c.Len()).
		Int("dropped", stats.Dropped).
		Msg("corpus loaded")

	engine, err := recommend.NewEngine(&recommend.Config{
		DefaultK:              cfg.Matcher.DefaultK,
		MaxK:                  cfg.Matcher.MaxK,
		Pantry:                cfg.Matcher.Pantry,
		CoverageThreshold:     cfg.Matcher.CoverageThreshold,
		ExtendedNormalization: cfg.Matcher.ExtendedNormalization,
	}, logging.Logger())
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}
	engine.AttachCorpus(c)

	handler := api.NewHandler(cfg, engine, c)

	mwConfig := api.DefaultChiMiddlewareConfig()
	mwConfig.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mwConfig.RateLimitRequests = cfg.Security.RateLimitReqs
	mwConfig.RateLimitWindow = cfg.Security.RateLimitWindow
	mwConfig.RateLimitDisabled = cfg.Security.RateLimitDisabled

	router := api.NewRouter(handler, mwConfig)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       120 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("listening")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("supervisor tree failed: %w", err)
		}
		return nil
	}

	// Signal received: wait for the tree to drain.
	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("shutdown: %w", err)
		}
	case <-time.After(15 * time.Second):
		if report, rerr := tree.UnstoppedServiceReport(); rerr == nil && len(report) > 0 {
			for _, svc := range report {
				logging.Warn().Str("service", svc.Name).Msg("service did not stop in time")
			}
		}
		return errors.New("shutdown timed out")
	}

	logging.Info().Msg("shutdown complete")
	return nil
}
