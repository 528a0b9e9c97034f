// Recipegen - Ingredient-Based Recipe Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipegen

/*
Package middleware provides HTTP middleware shared across route groups.

PrometheusMetrics instruments wrapped handlers with request counts,
latency histograms, and an in-flight gauge, keyed by method, path, and
status code. It is chi-compatible (func(http.Handler) http.Handler) and
is applied to the /api/v1 group but not to /metrics or the health
endpoints, which are scraped or polled frequently enough to drown the
histograms in noise.

Overhead is one ResponseWriter wrapper allocation and two atomic ops
per request.

See internal/metrics for the collector definitions.
*/
package middleware
