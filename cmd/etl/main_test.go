// Recipegen - Ingredient-Based Recipe Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipegen

package main

import (
	"reflect"
	"strings"
	"testing"
)

func TestConvert(t *testing.T) {
	t.Parallel()

	csvData := `title,ingredients,instructions
classic omelette,"3 large eggs; 1/4 cup milk; salt to taste","Whisk eggs with milk and cook."
thin entry,"1 egg","Just one ingredient."
,"2 cups flour; 1 egg","Missing title."
simple SALAD,"1 head lettuce; 2 large tomatoes","Chop and toss."
`

	recipes, stats, err := convert(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	if stats.RowsIn != 4 {
		t.Errorf("rows_in = %d, want 4", stats.RowsIn)
	}
	if stats.DroppedThin != 1 {
		t.Errorf("dropped_thin = %d, want 1", stats.DroppedThin)
	}
	if stats.DroppedEmpty != 1 {
		t.Errorf("dropped_empty = %d, want 1", stats.DroppedEmpty)
	}
	if len(recipes) != 2 {
		t.Fatalf("recipes = %d, want 2", len(recipes))
	}

	first := recipes[0]
	if first.ID != 1 || first.Title != "Classic omelette" {
		t.Errorf("first = %d/%q, want 1/Classic omelette", first.ID, first.Title)
	}
	if want := []string{"egg", "milk", "salt"}; !reflect.DeepEqual(first.Ingredients, want) {
		t.Errorf("ingredients = %v, want %v", first.Ingredients, want)
	}

	second := recipes[1]
	if second.Title != "Simple salad" {
		t.Errorf("second title = %q, want Simple salad", second.Title)
	}
	if want := []string{"lettuce", "tomato"}; !reflect.DeepEqual(second.Ingredients, want) {
		t.Errorf("ingredients = %v, want %v", second.Ingredients, want)
	}
}

func TestConvertNoHeader(t *testing.T) {
	t.Parallel()

	csvData := `pancakes,"1 cup flour; 2 eggs; 1 cup milk","Mix and griddle."
`

	recipes, stats, err := convert(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if stats.RowsIn != 1 || len(recipes) != 1 {
		t.Fatalf("rows=%d recipes=%d, want 1/1", stats.RowsIn, len(recipes))
	}
	if recipes[0].Title != "Pancakes" {
		t.Errorf("title = %q, want Pancakes", recipes[0].Title)
	}
}

func TestSplitIngredientCell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "semicolons", in: "a; b ;c", want: []string{"a", "b", "c"}},
		{name: "newlines", in: "a\nb\n\nc", want: []string{"a", "b", "c"}},
		{name: "mixed", in: "a;b\nc", want: []string{"a", "b", "c"}},
		{name: "empty", in: "  ", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := splitIngredientCell(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitIngredientCell(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
