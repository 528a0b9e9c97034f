// Recipegen - Ingredient-Based Recipe Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipegen

package recommend

import (
	"errors"

	"github.com/tomtom215/recipegen/internal/models"
)

// ErrUnready is returned when no corpus has been attached to the engine.
// The API layer maps this to HTTP 503.
var ErrUnready = errors.New("recommendation engine has no corpus attached")

// ErrInvalidInput is returned when a request fails structural validation.
// The API layer maps this to HTTP 400.
var ErrInvalidInput = errors.New("invalid recommendation request")

// Request describes a single recommendation query.
type Request struct {
	// Ingredients is the list of ingredients the caller has on hand.
	// Entries are normalized before matching; duplicates are folded.
	Ingredients []string `json:"ingredients"`

	// K is the maximum number of recipes to return. Zero or negative
	// yields an empty result set.
	K int `json:"k"`
}

// Response holds a ranked recommendation result.
type Response struct {
	// Items is the ranked result list, best match first. Its length is
	// the smaller of K and the corpus size.
	Items []models.RecipeResult `json:"items"`

	// LowConfidence is true when the corpus is empty or the best
	// pantry-aware coverage falls below the configured threshold.
	LowConfidence bool `json:"low_confidence"`

	// Metadata carries query diagnostics.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata carries diagnostics about a single query.
type ResponseMetadata struct {
	// QueryIngredients is the normalized, deduplicated query set in
	// first-seen order.
	QueryIngredients []string `json:"query_ingredients"`

	// CorpusSize is the number of recipes considered.
	CorpusSize int `json:"corpus_size"`

	// LatencyMS is the query latency in milliseconds.
	LatencyMS float64 `json:"latency_ms"`
}

// CorpusProvider defines the read interface the engine needs from the
// corpus layer. Keeping it an interface decouples ranking from corpus
// loading and lets tests supply fixture corpora directly.
type CorpusProvider interface {
	// Recipes returns the full recipe slice in corpus order.
	Recipes() []models.Recipe

	// Len returns the number of recipes in the corpus.
	Len() int
}
