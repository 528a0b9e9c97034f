// Recipegen - Ingredient-Based Recipe Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipegen

// Package corpus provides the immutable in-memory recipe table and the
// ingredient normalization used by both the corpus loader and the matcher.
//
// The corpus is built once at process start and never mutated afterwards,
// so it is concurrently readable by any number of requests without locking.
// Reloading the corpus requires a process restart.
package corpus

import (
	"github.com/tomtom215/recipegen/internal/models"
)

// Corpus is the static collection of known recipes.
//
// All recipe ingredients are normalized at construction time. The backing
// slice must not be modified after New returns.
type Corpus struct {
	recipes []models.Recipe
	byID    map[int]int
}

// New builds a corpus from raw recipes. Each recipe's ingredient list is
// normalized (trimmed, lower-cased, empties dropped, deduplicated preserving
// order). Recipes with an ID of 0 are assigned their position index.
func New(recipes []models.Recipe) *Corpus {
	c := &Corpus{
		recipes: make([]models.Recipe, 0, len(recipes)),
		byID:    make(map[int]int, len(recipes)),
	}

	for i, r := range recipes {
		r.Ingredients = NormalizeList(r.Ingredients)
		if r.ID == 0 {
			r.ID = i + 1
		}
		c.byID[r.ID] = len(c.recipes)
		c.recipes = append(c.recipes, r)
	}

	return c
}

// Len returns the number of recipes in the corpus.
func (c *Corpus) Len() int {
	return len(c.recipes)
}

// Recipes returns the full recipe table. Callers must treat the returned
// slice as read-only.
func (c *Corpus) Recipes() []models.Recipe {
	return c.recipes
}

// Get returns the recipe with the given ID.
func (c *Corpus) Get(id int) (models.Recipe, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return models.Recipe{}, false
	}
	return c.recipes[idx], true
}

// Page returns a corpus slice for paginated listing. Offset and limit are
// clamped to the corpus bounds.
func (c *Corpus) Page(offset, limit int) []models.Recipe {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(c.recipes) || limit <= 0 {
		return []models.Recipe{}
	}
	end := offset + limit
	if end > len(c.recipes) {
		end = len(c.recipes)
	}
	return c.recipes[offset:end]
}
