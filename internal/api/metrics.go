package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recommendationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "motorwala_recommendations_total",
		Help: "Number of recommendation requests served.",
	})
	recommendationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "motorwala_recommendation_duration_seconds",
		Help:    "Time spent filtering and ranking per request.",
		Buckets: prometheus.DefBuckets,
	})
	recommendationCandidates = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "motorwala_recommendation_candidates",
		Help:    "Catalog rows surviving hard filters per request.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})
)
