// Recipegen - Ingredient-Based Recipe Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipegen

package models

import (
	"time"
)

// APIResponse represents a standardized API response wrapper used by all HTTP
// endpoints. It provides consistent structure for both successful and error
// responses, with metadata for observability.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"items": [...], "low_confidence": false},
//	  "metadata": {"timestamp": "2026-08-30T12:00:00Z", "query_time_ms": 0.42}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {"code": "INVALID_INPUT", "message": "ingredients must be strings"},
//	  "metadata": {"timestamp": "2026-08-30T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability and performance
// tracking. QueryTimeMS is the matcher execution time in milliseconds;
// in-memory queries routinely finish in fractions of a millisecond, so
// the value is fractional rather than rounded.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS float64   `json:"query_time_ms,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Common error codes:
//   - INVALID_INPUT: Malformed request body or parameters
//   - VALIDATION_ERROR: Input failed struct validation
//   - NOT_FOUND: Resource doesn't exist
//   - UNREADY: Recipe corpus not loaded yet
//   - RATE_LIMIT_EXCEEDED: Too many requests
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus represents the system health check response.
//
// Status values:
//   - "healthy": corpus loaded, service ready
//   - "degraded": process alive but corpus unavailable
type HealthStatus struct {
	Status      string  `json:"status"`
	Version     string  `json:"version"`
	CorpusSize  int     `json:"corpus_size"`
	CorpusReady bool    `json:"corpus_ready"`
	Uptime      float64 `json:"uptime_seconds"`
}
