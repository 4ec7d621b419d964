/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"github.com/Seednode/guessbox/games/guesser"
	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	gamesActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "guessbox",
		Name:      "games_active",
		Help:      "Games currently held in memory.",
	})

	sessionsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "guessbox",
		Name:      "sessions_started_total",
		Help:      "Guessing sessions started, including restarts.",
	})

	questionsAsked = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "guessbox",
		Name:      "questions_asked_total",
		Help:      "Questions asked, by trait category.",
	}, []string{"category"})

	guessesMade = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "guessbox",
		Name:      "guesses_total",
		Help:      "Final guesses, by the reason questioning stopped.",
	}, []string{"stop"})

	questionGain = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "guessbox",
		Name:      "question_information_gain_bits",
		Help:      "Expected information gain of each selected question.",
		Buckets:   prometheus.LinearBuckets(0, 0.1, 11),
	})

	guessConfidence = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "guessbox",
		Name:      "guess_confidence",
		Help:      "Confidence of the final guess.",
		Buckets:   prometheus.LinearBuckets(0.05, 0.1, 10),
	})
)

func observeQuestion(sel guesser.Selection) {
	questionsAsked.WithLabelValues(string(sel.Trait.Category)).Inc()
	questionGain.Observe(sel.Gain)
}

func observeGuess(res guesser.Result) {
	guessesMade.WithLabelValues(string(res.Stop)).Inc()
	guessConfidence.Observe(res.Confidence)
}

func registerMetrics(cfg *Config, mux *httprouter.Router) {
	mux.Handler("GET", cfg.prefix+"/metrics", promhttp.Handler())
}
