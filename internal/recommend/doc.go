// Recipegen - Ingredient-Based Recipe Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipegen

// Package recommend implements the ingredient-overlap recipe matcher.
//
// # Scoring
//
// Each recipe is scored against the query ingredient set by set overlap:
//
//	score = |recipe ∩ query| / |recipe ingredients|
//
// A score of 1.0 means the query covers every ingredient the recipe
// calls for. Results are ranked by score descending, then by matched
// count descending, then by title ascending, so identical inputs always
// produce identical output order.
//
// # Coverage and Confidence
//
// Alongside the raw score, each result carries a pantry-aware coverage
// value: the fraction of the query's non-pantry ingredients the recipe
// actually uses. Staples such as salt, oil, and water are assumed on
// hand and excluded from the denominator. A response is flagged low
// confidence when the best coverage falls below the configured
// threshold, letting callers distinguish "good match" from "best of a
// bad lot".
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	engine.AttachCorpus(c)
//
//	resp, err := engine.Recommend(ctx, recommend.Request{
//	    Ingredients: []string{"egg", "milk"},
//	    K:           5,
//	})
//
// # Thread Safety
//
// The engine is safe for concurrent use. Corpus attachment acquires an
// exclusive lock; Recommend takes a shared lock, so queries proceed
// concurrently once a corpus is attached.
package recommend
