// Recipegen - Ingredient-Based Recipe Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipegen

package api

import (
	"time"

	"github.com/tomtom215/recipegen/internal/config"
	"github.com/tomtom215/recipegen/internal/corpus"
	"github.com/tomtom215/recipegen/internal/recommend"
)

// Version is the reported service version. Overridden at build time via
// -ldflags "-X github.com/tomtom215/recipegen/internal/api.Version=...".
var Version = "dev"

// Handler holds the dependencies shared by all HTTP handlers.
type Handler struct {
	config    *config.Config
	engine    *recommend.Engine
	corpus    *corpus.Corpus
	startTime time.Time
}

// NewHandler creates a handler. The corpus may be nil when the service
// starts before the corpus finishes loading; affected endpoints then
// respond 503 until SetCorpus is called.
func NewHandler(cfg *config.Config, engine *recommend.Engine, c *corpus.Corpus) *Handler {
	return &Handler{
		config:    cfg,
		engine:    engine,
		corpus:    c,
		startTime: time.Now(),
	}
}

// SetCorpus attaches a loaded corpus to the listing endpoints.
func (h *Handler) SetCorpus(c *corpus.Corpus) {
	h.corpus = c
}
