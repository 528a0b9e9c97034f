// Recipegen - Ingredient-Based Recipe Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipegen

// Package models defines the shared data types exchanged between the corpus,
// matcher, and API layers.
package models

// Recipe is a single entry in the recipe corpus.
//
// Ingredients are normalized (trimmed, lower-cased, deduplicated) at corpus
// load time and never mutated afterwards. The corpus is read-only for the
// process lifetime, so Recipe values may be shared across requests without
// locking.
type Recipe struct {
	// ID is a stable corpus-local identifier.
	ID int `json:"id"`

	// Title is the display title of the recipe.
	Title string `json:"title"`

	// Ingredients holds the normalized ingredient tokens in corpus order.
	Ingredients []string `json:"ingredients"`

	// Instructions is the free-text preparation instructions.
	Instructions string `json:"instructions"`
}

// RecipeResult is a scored recipe returned by the matcher.
//
// Matched and Missing partition the recipe's ingredient list: every recipe
// ingredient appears in exactly one of the two, in recipe order.
type RecipeResult struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`

	// Matched lists recipe ingredients present in the query.
	Matched []string `json:"matched"`

	// Missing lists recipe ingredients absent from the query.
	Missing []string `json:"missing"`

	// Score is the fraction of recipe ingredients covered by the query,
	// in [0, 1]. 1 means the query covers the full recipe.
	Score float64 `json:"score"`

	// Coverage is the fraction of non-pantry query ingredients present in
	// the recipe, in [0, 1]. 1.0 when the non-pantry query set is empty.
	Coverage float64 `json:"coverage"`
}

// RecommendRequest is the wire shape of a recommendation request.
//
//	{"ingredients": ["egg", "milk"], "k": 3}
//
// K is a pointer so an omitted field (use the configured default) is
// distinguishable from an explicit zero (return no results). An empty
// ingredient list is valid and simply matches nothing; a missing
// ingredients field is rejected by the engine, so no `required` tag
// here (it would also reject the empty list).
type RecommendRequest struct {
	Ingredients []string `json:"ingredients" validate:"max=500,dive,max=256"`
	K           *int     `json:"k,omitempty" validate:"omitempty,min=0,max=1000"`
}

// RecommendResponse is the wire shape of a recommendation response payload.
type RecommendResponse struct {
	Items []RecipeResult `json:"items"`

	// LowConfidence is true when no recipe covers enough of the query's
	// non-pantry ingredients to be a trustworthy suggestion.
	LowConfidence bool `json:"low_confidence"`
}

// RecipeList is a paginated corpus listing payload.
type RecipeList struct {
	Total   int      `json:"total"`
	Limit   int      `json:"limit"`
	Offset  int      `json:"offset"`
	Recipes []Recipe `json:"recipes"`
}
