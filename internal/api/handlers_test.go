// Recipegen - Ingredient-Based Recipe Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipegen

package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/recipegen/internal/config"
	"github.com/tomtom215/recipegen/internal/corpus"
	"github.com/tomtom215/recipegen/internal/models"
	"github.com/tomtom215/recipegen/internal/recommend"
)

// envelope mirrors models.APIResponse with raw data for typed decoding
// in individual tests.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:        8080,
			Host:        "127.0.0.1",
			Timeout:     5 * time.Second,
			Environment: "development",
		},
		Corpus: config.CorpusConfig{Path: "/dev/null"},
		Matcher: config.MatcherConfig{
			DefaultK:          5,
			MaxK:              10,
			Pantry:            recommend.DefaultPantry,
			CoverageThreshold: 0.5,
		},
		API: config.APIConfig{
			DefaultPageSize: 2,
			MaxPageSize:     5,
		},
		Security: config.SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     1000,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: true,
		},
		Logging: config.LoggingConfig{Level: "error", Format: "json"},
	}
}

func testCorpus() *corpus.Corpus {
	return corpus.New([]models.Recipe{
		{ID: 1, Title: "Omelette", Ingredients: []string{"egg", "milk", "salt"}, Instructions: "Whisk and fry."},
		{ID: 2, Title: "Salad", Ingredients: []string{"lettuce", "tomato"}, Instructions: "Toss."},
		{ID: 3, Title: "Pancakes", Ingredients: []string{"flour", "egg", "milk", "sugar"}, Instructions: "Mix and griddle."},
	})
}

// newTestHandler builds a handler with an optional corpus attached.
func newTestHandler(t *testing.T, withCorpus bool) *Handler {
	t.Helper()

	cfg := testConfig()

	engineCfg := recommend.DefaultConfig()
	engineCfg.DefaultK = cfg.Matcher.DefaultK
	engineCfg.MaxK = cfg.Matcher.MaxK

	engine, err := recommend.NewEngine(engineCfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	var c *corpus.Corpus
	if withCorpus {
		c = testCorpus()
		engine.AttachCorpus(c)
	}

	return NewHandler(cfg, engine, c)
}

// newTestRouter wires the handler into a full route tree with rate
// limiting disabled.
func newTestRouter(t *testing.T, withCorpus bool) http.Handler {
	t.Helper()

	mwCfg := DefaultChiMiddlewareConfig()
	mwCfg.RateLimitDisabled = true
	mwCfg.CORSAllowedOrigins = []string{"*"}

	return NewRouter(newTestHandler(t, withCorpus), mwCfg).Setup()
}

func decodeEnvelope(t *testing.T, body []byte) envelope {
	t.Helper()

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("decode envelope: %v\nbody: %s", err, body)
	}
	return env
}
