package puzzle

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/domino14/anagrid/internal/pattern"
)

var (
	// Labels: variant, and result one of "ok", "timeout", "cancelled",
	// "restart_budget", "no_words", "error".
	generationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "anagrid_generations_total",
		Help: "Puzzle generations by layout and outcome",
	}, []string{"variant", "result"})

	generationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "anagrid_generation_duration_seconds",
		Help:    "Time spent generating a puzzle",
		Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
	}, []string{"variant"})

	generationRestarts = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "anagrid_generation_restarts",
		Help:    "Full restarts needed by successful generations",
		Buckets: []float64{0, 1, 5, 25, 100, 500, 2500},
	}, []string{"variant"})
)

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrTimedOut):
		return "timeout"
	case errors.Is(err, pattern.ErrCancelled):
		return "cancelled"
	case errors.Is(err, pattern.ErrTooManyRestarts):
		return "restart_budget"
	case errors.Is(err, pattern.ErrNoWords):
		return "no_words"
	}
	return "error"
}
