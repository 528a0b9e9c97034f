// Recipegen - Ingredient-Based Recipe Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipegen

package recommend

import "fmt"

// DefaultPantry lists staple ingredients assumed present in every
// kitchen. They are excluded from the coverage denominator so a recipe
// is not penalized for calling for salt or water.
var DefaultPantry = []string{
	"salt",
	"kosher_salt",
	"coarse_kosher_salt",
	"sea_salt",
	"pepper",
	"black_pepper",
	"water",
	"oil",
	"olive_oil",
	"vegetable_oil",
	"canola_oil",
	"sugar",
}

// Config contains all tunables for the recommendation engine.
type Config struct {
	// DefaultK is the result count used when a request leaves K unset.
	DefaultK int `json:"default_k"`

	// MaxK caps the per-request result count. Requests asking for more
	// are clamped, not rejected.
	MaxK int `json:"max_k"`

	// Pantry is the staple-ingredient list excluded from coverage.
	Pantry []string `json:"pantry"`

	// CoverageThreshold is the minimum best-result coverage below which
	// a response is flagged low confidence.
	CoverageThreshold float64 `json:"coverage_threshold"`

	// ExtendedNormalization enables the full tokenization pipeline for
	// query ingredients (quantity/unit stripping, alias folding). Use
	// it when serving a corpus produced by the ETL tokenizer.
	ExtendedNormalization bool `json:"extended_normalization"`
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() *Config {
	pantry := make([]string, len(DefaultPantry))
	copy(pantry, DefaultPantry)

	return &Config{
		DefaultK:          5,
		MaxK:              100,
		Pantry:            pantry,
		CoverageThreshold: 0.5,
	}
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.DefaultK < 1 {
		return fmt.Errorf("default_k must be >= 1, got %d", c.DefaultK)
	}
	if c.MaxK < c.DefaultK {
		return fmt.Errorf("max_k (%d) must be >= default_k (%d)", c.MaxK, c.DefaultK)
	}
	if c.CoverageThreshold < 0 || c.CoverageThreshold > 1 {
		return fmt.Errorf("coverage_threshold must be in [0, 1], got %g", c.CoverageThreshold)
	}
	return nil
}
