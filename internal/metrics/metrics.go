// Recipegen - Ingredient-Based Recipe Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipegen

// Package metrics defines the Prometheus collectors for the service:
// API endpoint latency and throughput, recommendation query behavior,
// and corpus state. All collectors are registered at init via promauto
// and exposed on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation query metrics
	RecommendQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_queries_total",
			Help: "Total number of recommendation queries",
		},
		[]string{"outcome"}, // "ok", "low_confidence", "invalid", "unready"
	)

	RecommendQueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_query_duration_seconds",
			Help:    "Recommendation engine query duration in seconds",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		},
	)

	RecommendQueryIngredients = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_query_ingredients",
			Help:    "Number of normalized ingredients per query",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21, 34},
		},
	)

	RecommendTopScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_top_score",
			Help:    "Best overlap score per query",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
	)

	// Corpus metrics
	CorpusRecipes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "corpus_recipes",
			Help: "Number of recipes in the loaded corpus",
		},
	)

	CorpusRecipesDropped = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "corpus_recipes_dropped",
			Help: "Number of recipes dropped at corpus load",
		},
	)

	CorpusLoadedAt = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "corpus_loaded_timestamp",
			Help: "Unix timestamp of the last successful corpus load",
		},
	)
)

// RecordAPIRequest records one API request observation.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendQuery records engine-level query observations.
func RecordRecommendQuery(outcome string, duration time.Duration, queryIngredients int, topScore float64, hasResults bool) {
	RecommendQueriesTotal.WithLabelValues(outcome).Inc()
	RecommendQueryDuration.Observe(duration.Seconds())
	RecommendQueryIngredients.Observe(float64(queryIngredients))
	if hasResults {
		RecommendTopScore.Observe(topScore)
	}
}

// RecordCorpusLoad records the result of a corpus load.
func RecordCorpusLoad(recipes, dropped int) {
	CorpusRecipes.Set(float64(recipes))
	CorpusRecipesDropped.Set(float64(dropped))
	CorpusLoadedAt.SetToCurrentTime()
}

// RecordRateLimitHit records a rate limit rejection for an endpoint.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}
