// Recipegen - Ingredient-Based Recipe Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipegen

package corpus

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/recipegen/internal/models"
)

// Load reads a JSON corpus file (a top-level array of recipes, as produced
// by recipegen-etl) and builds the immutable corpus.
//
// Recipes with no ingredients or an empty title are dropped with a count
// reported in the returned stats; the corpus itself may legitimately be
// empty, which the matcher reports as a degenerate (all-zero) result.
func Load(path string) (*Corpus, LoadStats, error) {
	var stats LoadStats

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, stats, fmt.Errorf("read corpus file %s: %w", path, err)
	}

	var raw []models.Recipe
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, stats, fmt.Errorf("parse corpus file %s: %w", path, err)
	}
	stats.RecipesIn = len(raw)

	kept := make([]models.Recipe, 0, len(raw))
	for _, r := range raw {
		if r.Title == "" || len(NormalizeList(r.Ingredients)) == 0 {
			stats.Dropped++
			continue
		}
		kept = append(kept, r)
	}

	c := New(kept)
	stats.RecipesOut = c.Len()
	return c, stats, nil
}

// LoadStats reports what the loader kept and dropped.
type LoadStats struct {
	RecipesIn  int `json:"recipes_in"`
	RecipesOut int `json:"recipes_out"`
	Dropped    int `json:"dropped"`
}
