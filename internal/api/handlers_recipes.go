// Recipegen - Ingredient-Based Recipe Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipegen

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/recipegen/internal/models"
)

// Recipes handles GET /api/v1/recipes with limit/offset pagination.
func (h *Handler) Recipes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	if h.corpus == nil {
		respondError(w, http.StatusServiceUnavailable, "UNREADY", "Recipe corpus is not loaded yet", nil)
		return
	}

	limit := getIntParam(r, "limit", h.config.API.DefaultPageSize)
	offset := getIntParam(r, "offset", 0)

	if limit < 1 {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "limit must be >= 1", nil)
		return
	}
	if limit > h.config.API.MaxPageSize {
		limit = h.config.API.MaxPageSize
	}
	if offset < 0 {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "offset must be >= 0", nil)
		return
	}

	page := h.corpus.Page(offset, limit)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.RecipeList{
			Total:   h.corpus.Len(),
			Limit:   limit,
			Offset:  offset,
			Recipes: page,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// Recipe handles GET /api/v1/recipes/{id}.
func (h *Handler) Recipe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	if h.corpus == nil {
		respondError(w, http.StatusServiceUnavailable, "UNREADY", "Recipe corpus is not loaded yet", nil)
		return
	}

	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id < 1 {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Recipe id must be a positive integer", err)
		return
	}

	recipe, ok := h.corpus.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Recipe not found", nil)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   recipe,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
