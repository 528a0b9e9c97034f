// Recipegen - Ingredient-Based Recipe Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipegen

// Command etl converts raw recipe CSV exports into the normalized JSON
// corpus format the server loads at startup.
//
// Input CSV columns: title, ingredients, instructions. The ingredients
// cell holds raw ingredient lines separated by semicolons or newlines;
// each line is tokenized (quantities, units, and descriptors stripped,
// aliases folded) before being written to the corpus.
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/recipegen/internal/corpus"
	"github.com/tomtom215/recipegen/internal/logging"
	"github.com/tomtom215/recipegen/internal/models"
)

// minIngredients filters out fragments that are not really recipes.
const minIngredients = 2

type etlStats struct {
	RowsIn       int `json:"rows_in"`
	RecipesOut   int `json:"recipes_out"`
	DroppedEmpty int `json:"dropped_empty"`
	DroppedThin  int `json:"dropped_thin"`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		inPath  string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "etl",
		Short: "Convert a raw recipe CSV into a normalized JSON corpus",
		Long: `Reads a CSV of raw recipes (title, ingredients, instructions),
normalizes titles and tokenizes ingredient lines, drops entries too thin
to recommend, and writes the corpus JSON the server consumes.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runETL(inPath, outPath)
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "input CSV file (required)")
	cmd.Flags().StringVar(&outPath, "out", "", "output corpus JSON file (required)")
	cmd.MarkFlagRequired("in")  //nolint:errcheck
	cmd.MarkFlagRequired("out") //nolint:errcheck

	return cmd
}

func runETL(inPath, outPath string) error {
	logging.Init(logging.Config{Level: "info", Format: "console", Timestamp: true})

	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	recipes, stats, err := convert(in)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(recipes, "", "  ")
	if err != nil {
		return fmt.Errorf("encode corpus: %w", err)
	}

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write corpus: %w", err)
	}

	logging.Info().
		Int("rows_in", stats.RowsIn).
		Int("recipes_out", stats.RecipesOut).
		Int("dropped_empty", stats.DroppedEmpty).
		Int("dropped_thin", stats.DroppedThin).
		Str("out", outPath).
		Msg("corpus written")

	summary, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	fmt.Println(string(summary))

	return nil
}

// convert reads the CSV and produces normalized corpus recipes. The
// first row is treated as a header when it looks like one.
func convert(r io.Reader) ([]models.Recipe, etlStats, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var (
		recipes []models.Recipe
		stats   etlStats
		id      int
	)

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("read csv row %d: %w", stats.RowsIn+1, err)
		}

		if stats.RowsIn == 0 && isHeaderRow(row) {
			continue
		}
		stats.RowsIn++

		if len(row) < 3 {
			stats.DroppedEmpty++
			continue
		}

		title := corpus.NormalizeTitle(row[0])
		instructions := strings.TrimSpace(row[2])
		if title == "" || instructions == "" {
			stats.DroppedEmpty++
			continue
		}

		ingredients := corpus.TokenizeList(splitIngredientCell(row[1]))
		if len(ingredients) < minIngredients {
			stats.DroppedThin++
			continue
		}

		id++
		recipes = append(recipes, models.Recipe{
			ID:           id,
			Title:        title,
			Ingredients:  ingredients,
			Instructions: instructions,
		})
	}

	stats.RecipesOut = len(recipes)
	return recipes, stats, nil
}

// splitIngredientCell breaks an ingredients cell into raw lines.
// Exports vary between semicolon and newline separators.
func splitIngredientCell(cell string) []string {
	lines := strings.FieldsFunc(cell, func(r rune) bool {
		return r == ';' || r == '\n'
	})
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

// isHeaderRow detects a leading header like "title,ingredients,instructions".
func isHeaderRow(row []string) bool {
	if len(row) == 0 {
		return false
	}
	first := strings.ToLower(strings.TrimSpace(row[0]))
	return first == "title" || first == "name"
}
