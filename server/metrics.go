package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	solveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wordladder_solve_total",
		Help: "Ladder searches by operation and outcome",
	}, []string{"op", "outcome"})

	solveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wordladder_solve_duration_seconds",
		Help:    "Duration of ladder searches",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}, []string{"op"})

	ladderSteps = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wordladder_ladder_steps",
		Help:    "Steps in returned ladders",
		Buckets: prometheus.LinearBuckets(1, 2, 10),
	})

	sessionsLive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wordladder_sessions_live",
		Help: "Current number of interactive sessions",
	})
)
