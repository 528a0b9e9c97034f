// Recipegen - Ingredient-Based Recipe Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipegen

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/recipegen/internal/models"
)

// Health handles GET /api/v1/health with full service status.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	corpusReady := h.engine.Ready()

	status := "healthy"
	if !corpusReady {
		status = "degraded"
	}

	health := models.HealthStatus{
		Status:      status,
		Version:     Version,
		CorpusSize:  h.engine.CorpusSize(),
		CorpusReady: corpusReady,
		Uptime:      time.Since(h.startTime).Seconds(),
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthLive handles liveness probes. Returns 200 whenever the process
// is up, regardless of corpus state.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles readiness probes. Returns 200 only when the
// corpus is loaded and queries can be served; 503 otherwise.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	if !h.engine.Ready() {
		respondError(w, http.StatusServiceUnavailable, "UNREADY", "Recipe corpus is not loaded yet", nil)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"ready":       true,
			"corpus_size": h.engine.CorpusSize(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
