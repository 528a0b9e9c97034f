// Recipegen - Ingredient-Based Recipe Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipegen

package corpus

import (
	"regexp"
	"strings"
)

// NormalizeIngredient applies the baseline normalization contract shared by
// recipe and query ingredients: surrounding whitespace is trimmed and the
// token is lower-cased. Returns "" for blank input.
func NormalizeIngredient(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeList normalizes every entry, drops empties, and deduplicates
// preserving first-seen order.
func NormalizeList(list []string) []string {
	out := make([]string, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	for _, s := range list {
		tok := NormalizeIngredient(s)
		if tok == "" {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}

var (
	rxWhitespace = regexp.MustCompile(`\s+`)
	rxQuantity   = regexp.MustCompile(`\b\d+(?:[./]\d+)?(?:\s*-\s*\d+(?:[./]\d+)?)?\b`)
	rxFraction   = regexp.MustCompile(`[¼½¾⅓⅔⅛⅜⅝⅞]`)
	rxParens     = regexp.MustCompile(`\([^)]*\)`)
	rxPunct      = regexp.MustCompile(`[^\w\s-]`)
	rxSplit      = regexp.MustCompile(`(?i)\s*(?:,|;|/|&|\band\b)\s*`)

	rxUnits = regexp.MustCompile(`\b(` +
		`tsp|tsps|teaspoon|teaspoons|tbsp|tbsps|tablespoon|tablespoons|` +
		`cup|cups|oz|ounce|ounces|lb|lbs|pound|pounds|` +
		`g|gram|grams|kg|kgs|kilogram|kilograms|` +
		`ml|milliliter|milliliters|l|liter|liters|` +
		`stick|sticks|clove|cloves|rib|ribs|slice|slices|` +
		`can|cans|head|heads|` +
		`pint|pints|quart|quarts|pinch|dash|inch|inches` +
		`)\b`)
)

// tokenStopwords are descriptor and prep-state words stripped from extended
// ingredient tokens. Derived from the most frequent non-ingredient words in
// the corpus.
var tokenStopwords = map[string]struct{}{
	// articles / glue
	"a": {}, "an": {}, "the": {}, "or": {}, "and": {}, "of": {}, "at": {},
	"into": {}, "for": {}, "such": {}, "such_as": {}, "in": {}, "very": {},
	// common descriptors / states
	"fresh": {}, "large": {}, "small": {}, "medium": {}, "extra": {},
	"extra_virgin": {}, "to": {}, "taste": {}, "optional": {},
	"chopped": {}, "diced": {}, "minced": {}, "sliced": {}, "ground": {},
	"crushed": {}, "grated": {}, "shredded": {},
	"skinless": {}, "boneless": {}, "divided": {}, "plus": {}, "serving": {},
	"slivered": {}, "finely": {}, "freshly": {}, "thinly": {}, "coarsely": {},
	"roughly": {}, "lightly": {}, "beaten": {}, "melted": {}, "softened": {},
	"room": {}, "temperature": {}, "room_temperature": {}, "more": {},
	"about": {}, "total": {}, "cored": {}, "garnish": {}, "twist": {},
	"casing_removed": {}, "torn": {}, "cut": {}, "piece": {}, "pieces": {},
	"loaf": {}, "stick": {}, "qt": {},
	// prep tokens
	"halved": {}, "trimmed": {}, "drained": {}, "rinsed": {}, "toasted": {},
	"seeded": {}, "lengthwise": {}, "cube": {}, "cubes": {}, "thick": {},
	"quartered": {}, "crosswise": {}, "pitted": {}, "separated": {},
	"scrubbed": {}, "stemmed": {}, "smashed": {}, "thawed": {}, "wedge": {},
	"white": {}, "split": {}, "patted_dry": {},
	// peel/stalk/leaf/count words
	"peeled": {}, "sprig": {}, "stalk": {}, "stalks": {}, "leaf": {},
	"leaves": {}, "bunch": {}, "handful": {},
	// appliance noise
	"electric": {}, "pressure": {}, "cooker": {}, "instant": {}, "pot": {},
	"nonstick": {}, "spray": {},
}

// canonicalRule rewrites an already-underscored token to its canonical form.
type canonicalRule struct {
	re   *regexp.Regexp
	repl string
}

// canonicalRules collapse common corpus variants to single canonical tokens.
// Order matters: qualifier-stripping rules run before alias rules.
var canonicalRules = []canonicalRule{
	{regexp.MustCompile(`^(coarse_)?kosher_salt$`), "kosher_salt"},
	{regexp.MustCompile(`^(fine_|flaky_)?sea_salt$`), "sea_salt"},
	{regexp.MustCompile(`^(granulated_)?sugar$`), "sugar"},
	{regexp.MustCompile(`^(pure_)?vanilla_extract$`), "vanilla_extract"},
	{regexp.MustCompile(`^italian_parsley$`), "parsley"},
	{regexp.MustCompile(`^parmesan_cheese$`), "parmesan"},
	{regexp.MustCompile(`^parmigiano_reggiano$`), "parmesan"},
	{regexp.MustCompile(`^chilled_unsalted_butter$`), "unsalted_butter"},
	{regexp.MustCompile(`^lemon_peel$`), "lemon_zest"},
	{regexp.MustCompile(`^(\w+)_wedge$`), "$1"},
	{regexp.MustCompile(`^(?:low_salt|low_sodium|reduced_sodium)_(.+)$`), "$1"},
	{regexp.MustCompile(`_stock$`), "_broth"},
	{regexp.MustCompile(`^nonstick_.*spray$`), ""},
	{regexp.MustCompile(`^(?:very|at|white|split|patted_dry)$`), ""},
	{regexp.MustCompile(`^celery_(?:stalk|stalks|leaf|leaves)$`), "celery"},
	{regexp.MustCompile(`^(?:sprig_|flat_(?:leaf_)?)?parsley$`), "parsley"},
	{regexp.MustCompile(`^sprig_`), ""},
	{regexp.MustCompile(`_sprig$`), ""},
	{regexp.MustCompile(`^heavy_whipping_cream$`), "heavy_cream"},
	{regexp.MustCompile(`^dry_white_wine$`), "white_wine"},
	{regexp.MustCompile(`^dry_red_wine$`), "red_wine"},
	{regexp.MustCompile(`^dry_wine$`), "white_wine"},
	{regexp.MustCompile(`^(.+)_parts?$`), "$1"},
}

// pluralFold applies a heuristic plural-to-singular reduction.
// Safe patterns only: potatoes->potato, berries->berry, eggs->egg.
func pluralFold(token string) string {
	if len(token) <= 3 {
		return token
	}
	if strings.HasSuffix(token, "ies") {
		return token[:len(token)-3] + "y"
	}
	if strings.HasSuffix(token, "oes") || strings.HasSuffix(token, "ses") {
		return token[:len(token)-2]
	}
	if strings.HasSuffix(token, "s") && !strings.HasSuffix(token, "ss") {
		return token[:len(token)-1]
	}
	return token
}

// TokenizeIngredient reduces a raw ingredient phrase to a canonical
// underscore-joined token: quantities, units, parentheticals, punctuation,
// and descriptor stopwords are stripped, plurals folded, and common corpus
// variants collapsed. Returns "" when nothing meaningful remains.
//
//	TokenizeIngredient("2 cups finely chopped Italian parsley") // "parsley"
//	TokenizeIngredient("1 (15 oz) can low-sodium chicken stock") // "chicken_broth"
func TokenizeIngredient(s string) string {
	t := strings.ToLower(s)
	t = rxParens.ReplaceAllString(t, " ")
	t = rxFraction.ReplaceAllString(t, " ")
	t = rxQuantity.ReplaceAllString(t, " ")
	t = rxUnits.ReplaceAllString(t, " ")
	t = rxPunct.ReplaceAllString(t, " ")
	t = strings.ReplaceAll(t, "-", " ")
	t = strings.TrimSpace(rxWhitespace.ReplaceAllString(t, " "))

	parts := make([]string, 0, 4)
	for _, p := range strings.Split(t, " ") {
		if p == "" {
			continue
		}
		if _, stop := tokenStopwords[p]; stop {
			continue
		}
		parts = append(parts, pluralFold(p))
	}

	t = strings.Join(parts, "_")

	for _, rule := range canonicalRules {
		t = rule.re.ReplaceAllString(t, rule.repl)
	}

	// Tail collapses that are simpler as substring checks than rules.
	if strings.Contains(t, "white_bread") {
		t = "white_bread"
	}
	if strings.HasSuffix(t, "olive_oil") {
		t = "olive_oil"
	}
	if t == "bay" {
		t = "bay_leaf"
	}

	return t
}

// SplitTokenize splits a raw ingredient line on common separators
// (comma, semicolon, slash, ampersand, "and") and tokenizes each part,
// deduplicating while preserving order.
func SplitTokenize(s string) []string {
	if s == "" {
		return nil
	}
	parts := rxSplit.Split(s, -1)
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		tok := TokenizeIngredient(p)
		if tok == "" {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}

// TokenizeList tokenizes each entry with SplitTokenize and flattens the
// result, deduplicating across entries.
func TokenizeList(list []string) []string {
	out := make([]string, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	for _, s := range list {
		for _, tok := range SplitTokenize(s) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			out = append(out, tok)
		}
	}
	return out
}

// NormalizeTitle trims a title, collapses inner whitespace, and applies
// sentence casing.
func NormalizeTitle(s string) string {
	s = strings.TrimSpace(rxWhitespace.ReplaceAllString(s, " "))
	if s == "" {
		return ""
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}
