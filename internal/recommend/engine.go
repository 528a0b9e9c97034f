// Recipegen - Ingredient-Based Recipe Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipegen

package recommend

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/recipegen/internal/corpus"
	"github.com/tomtom215/recipegen/internal/models"
)

// Engine ranks recipes against query ingredient sets.
// It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	// Pantry membership, built once at construction.
	pantry map[string]struct{}

	// Corpus attachment state.
	mu     sync.RWMutex
	corpus CorpusProvider

	requestCount atomic.Int64
}

// NewEngine creates a recommendation engine. The engine starts without
// a corpus and reports ErrUnready from Recommend until AttachCorpus is
// called.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	pantry := make(map[string]struct{}, len(cfg.Pantry))
	for _, p := range cfg.Pantry {
		pantry[corpus.NormalizeIngredient(p)] = struct{}{}
	}

	return &Engine{
		config: cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
		pantry: pantry,
	}, nil
}

// AttachCorpus makes cp the active corpus. It may be called again to
// swap in a reloaded corpus; in-flight queries finish against the old
// one.
func (e *Engine) AttachCorpus(cp CorpusProvider) {
	e.mu.Lock()
	e.corpus = cp
	e.mu.Unlock()

	e.logger.Info().
		Int("corpus_size", cp.Len()).
		Msg("corpus attached")
}

// Ready reports whether a corpus is attached.
func (e *Engine) Ready() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.corpus != nil
}

// CorpusSize returns the size of the attached corpus, or 0 when none
// is attached.
func (e *Engine) CorpusSize() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.corpus == nil {
		return 0
	}
	return e.corpus.Len()
}

// RequestCount returns the number of Recommend calls served.
func (e *Engine) RequestCount() int64 {
	return e.requestCount.Load()
}

// Recommend ranks the corpus against the query and returns the top K
// results. The full corpus is always scored before truncation, so the
// result length is min(K, corpus size). K <= 0 yields an empty list.
//
// Returns ErrUnready when no corpus is attached and ErrInvalidInput
// when the request has no ingredients field. An empty or unmatchable
// query is not an error: every recipe simply scores zero.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if req.Ingredients == nil {
		return nil, fmt.Errorf("%w: ingredients field is required", ErrInvalidInput)
	}

	e.mu.RLock()
	cp := e.corpus
	e.mu.RUnlock()

	if cp == nil {
		return nil, ErrUnready
	}

	query := e.normalizeQuery(req.Ingredients)
	querySet := make(map[string]struct{}, len(query))
	for _, q := range query {
		querySet[q] = struct{}{}
	}

	recipes := cp.Recipes()

	k := req.K
	if k > len(recipes) {
		k = len(recipes)
	}

	resp := &Response{
		Items: []models.RecipeResult{},
		Metadata: ResponseMetadata{
			QueryIngredients: query,
			CorpusSize:       len(recipes),
		},
	}

	if k > 0 {
		results := make([]models.RecipeResult, 0, len(recipes))
		for i := range recipes {
			results = append(results, e.scoreRecipe(&recipes[i], querySet, query))
		}

		sort.Slice(results, func(i, j int) bool {
			if results[i].Score != results[j].Score {
				return results[i].Score > results[j].Score
			}
			if len(results[i].Matched) != len(results[j].Matched) {
				return len(results[i].Matched) > len(results[j].Matched)
			}
			return results[i].Title < results[j].Title
		})

		resp.Items = results[:k]
	}

	resp.LowConfidence = e.isLowConfidence(resp.Items, len(recipes))
	resp.Metadata.LatencyMS = float64(time.Since(start).Microseconds()) / 1000.0

	e.logger.Debug().
		Int("query_size", len(query)).
		Int("k", req.K).
		Int("results", len(resp.Items)).
		Bool("low_confidence", resp.LowConfidence).
		Float64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation served")

	return resp, nil
}

// scoreRecipe computes the overlap score and pantry-aware coverage for
// one recipe. Matched and missing preserve the recipe's ingredient
// order.
func (e *Engine) scoreRecipe(r *models.Recipe, querySet map[string]struct{}, query []string) models.RecipeResult {
	matched := make([]string, 0, len(r.Ingredients))
	missing := make([]string, 0, len(r.Ingredients))
	recipeSet := make(map[string]struct{}, len(r.Ingredients))

	for _, ing := range r.Ingredients {
		recipeSet[ing] = struct{}{}
		if _, ok := querySet[ing]; ok {
			matched = append(matched, ing)
		} else {
			missing = append(missing, ing)
		}
	}

	score := 0.0
	if len(r.Ingredients) > 0 {
		score = float64(len(matched)) / float64(len(r.Ingredients))
	}

	return models.RecipeResult{
		ID:           r.ID,
		Title:        r.Title,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		Matched:      matched,
		Missing:      missing,
		Score:        score,
		Coverage:     e.coverage(query, recipeSet),
	}
}

// coverage returns the fraction of non-pantry query ingredients the
// recipe uses. An all-pantry (or empty) query covers trivially.
func (e *Engine) coverage(query []string, recipeSet map[string]struct{}) float64 {
	nonPantry := 0
	used := 0
	for _, q := range query {
		if _, ok := e.pantry[q]; ok {
			continue
		}
		nonPantry++
		if _, ok := recipeSet[q]; ok {
			used++
		}
	}
	if nonPantry == 0 {
		return 1.0
	}
	return float64(used) / float64(nonPantry)
}

// isLowConfidence flags responses that callers should treat as weak:
// an empty corpus, or a best result whose coverage is below the
// configured threshold.
func (e *Engine) isLowConfidence(items []models.RecipeResult, corpusSize int) bool {
	if corpusSize == 0 {
		return true
	}
	if len(items) == 0 {
		return false
	}
	return items[0].Coverage < e.config.CoverageThreshold
}

// normalizeQuery folds query ingredients into the corpus token space,
// dropping empties and duplicates while preserving first-seen order.
func (e *Engine) normalizeQuery(ingredients []string) []string {
	out := make([]string, 0, len(ingredients))
	seen := make(map[string]struct{}, len(ingredients))

	add := func(tok string) {
		if tok == "" {
			return
		}
		if _, ok := seen[tok]; ok {
			return
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}

	for _, ing := range ingredients {
		if e.config.ExtendedNormalization {
			for _, tok := range corpus.SplitTokenize(ing) {
				add(tok)
			}
			continue
		}
		add(corpus.NormalizeIngredient(ing))
	}
	return out
}
