// Recipegen - Ingredient-Based Recipe Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipegen

package corpus

import (
	"reflect"
	"testing"
)

func TestNormalizeIngredient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"  Egg  ", "egg"},
		{"MILK", "milk"},
		{"", ""},
		{"   ", ""},
		{"Olive Oil", "olive oil"},
	}

	for _, tt := range tests {
		if got := NormalizeIngredient(tt.input); got != tt.want {
			t.Errorf("NormalizeIngredient(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeList(t *testing.T) {
	t.Parallel()

	got := NormalizeList([]string{" Egg ", "egg", "", "Milk", "  ", "EGG"})
	want := []string{"egg", "milk"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeList = %v, want %v", got, want)
	}
}

func TestTokenizeIngredient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "units_and_quantity", input: "2 cups milk", want: "milk"},
		{name: "descriptors", input: "finely chopped Italian parsley", want: "parsley"},
		{name: "parenthetical", input: "1 (15 oz) can tomatoes", want: "tomato"},
		{name: "head_as_count", input: "1 head lettuce", want: "lettuce"},
		{name: "unicode_fraction", input: "½ cup sugar", want: "sugar"},
		{name: "plural_fold", input: "3 eggs", want: "egg"},
		{name: "ies_plural", input: "strawberries", want: "strawberry"},
		{name: "oes_plural", input: "potatoes", want: "potato"},
		{name: "stock_to_broth", input: "low-sodium chicken stock", want: "chicken_broth"},
		{name: "olive_oil_variants", input: "extra-virgin olive oil", want: "olive_oil"},
		{name: "kosher_salt", input: "coarse kosher salt", want: "kosher_salt"},
		{name: "parmesan_alias", input: "grated Parmesan cheese", want: "parmesan"},
		{name: "bay_leaf", input: "1 bay leaf", want: "bay_leaf"},
		{name: "heavy_cream", input: "heavy whipping cream", want: "heavy_cream"},
		{name: "wine", input: "dry white wine", want: "white_wine"},
		{name: "spray_dropped", input: "nonstick spray", want: ""},
		{name: "empty", input: "", want: ""},
		{name: "only_noise", input: "2 tablespoons, divided", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TokenizeIngredient(tt.input); got != tt.want {
				t.Errorf("TokenizeIngredient(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitTokenize(t *testing.T) {
	t.Parallel()

	got := SplitTokenize("2 eggs, 1 cup milk and a pinch of salt")
	want := []string{"egg", "milk", "salt"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitTokenize = %v, want %v", got, want)
	}
}

func TestTokenizeListDedupes(t *testing.T) {
	t.Parallel()

	got := TokenizeList([]string{"2 eggs", "egg", "1 cup milk"})
	want := []string{"egg", "milk"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TokenizeList = %v, want %v", got, want)
	}
}

func TestNormalizeTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"  grilled   CHEESE  ", "Grilled cheese"},
		{"omelette", "Omelette"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeTitle(tt.input); got != tt.want {
			t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
