// Recipegen - Ingredient-Based Recipe Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipegen

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/recipegen/internal/metrics"
	"github.com/tomtom215/recipegen/internal/models"
	"github.com/tomtom215/recipegen/internal/recommend"
)

// recommendTimeout bounds a single ranking query. Scoring is linear in
// corpus size, so this only trips on pathological corpora.
const recommendTimeout = 10 * time.Second

// Recommend handles POST /api/v1/recommend.
//
// Request body: {"ingredients": ["egg", "milk"], "k": 3}
//
// When k is omitted the configured default applies; values above the
// configured maximum are clamped. An explicit k of 0 returns an empty
// result list.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	var req models.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.RecordRecommendQuery("invalid", 0, 0, 0, false)
		respondError(w, http.StatusBadRequest, "INVALID_INPUT", "Request body is not valid JSON", err)
		return
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		metrics.RecordRecommendQuery("invalid", 0, 0, 0, false)
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	k := h.config.Matcher.DefaultK
	if req.K != nil {
		k = *req.K
	}
	if k > h.config.Matcher.MaxK {
		k = h.config.Matcher.MaxK
	}

	ctx, cancel := context.WithTimeout(r.Context(), recommendTimeout)
	defer cancel()

	start := time.Now()
	resp, err := h.engine.Recommend(ctx, recommend.Request{
		Ingredients: req.Ingredients,
		K:           k,
	})
	if err != nil {
		h.respondRecommendError(w, err, time.Since(start))
		return
	}

	outcome := "ok"
	if resp.LowConfidence {
		outcome = "low_confidence"
	}
	topScore := 0.0
	if len(resp.Items) > 0 {
		topScore = resp.Items[0].Score
	}
	metrics.RecordRecommendQuery(outcome, time.Since(start),
		len(resp.Metadata.QueryIngredients), topScore, len(resp.Items) > 0)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.RecommendResponse{
			Items:         resp.Items,
			LowConfidence: resp.LowConfidence,
		},
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: resp.Metadata.LatencyMS,
		},
	})
}

// respondRecommendError maps engine errors onto API error responses.
func (h *Handler) respondRecommendError(w http.ResponseWriter, err error, elapsed time.Duration) {
	switch {
	case errors.Is(err, recommend.ErrUnready):
		metrics.RecordRecommendQuery("unready", elapsed, 0, 0, false)
		respondError(w, http.StatusServiceUnavailable, "UNREADY",
			"Recipe corpus is not loaded yet", err)
	case errors.Is(err, recommend.ErrInvalidInput):
		metrics.RecordRecommendQuery("invalid", elapsed, 0, 0, false)
		respondError(w, http.StatusBadRequest, "INVALID_INPUT",
			"Ingredients field is required", err)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		respondError(w, http.StatusServiceUnavailable, "TIMEOUT",
			"Recommendation query timed out", err)
	default:
		respondError(w, http.StatusInternalServerError, "RECOMMENDATION_ERROR",
			"Failed to generate recommendations", err)
	}
}
