package bench

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for benchmark observability. They are updated at run
// finalization, outside the timed region, so scraping cannot skew results.
var (
	runsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fibbench_runs_total",
			Help: "The total number of technique runs, by terminal status",
		},
		[]string{"technique", "status"},
	)
	stepsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fibbench_steps_total",
			Help: "The total number of computation steps completed",
		},
		[]string{"technique"},
	)
	runDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "fibbench_run_duration_seconds",
			Help: "The elapsed time of technique runs in seconds",
		},
		[]string{"technique"},
	)
)

// observeRun records a finalized run in the metrics.
func observeRun(rec RunRecord) {
	runsTotal.WithLabelValues(rec.Technique, rec.Status.String()).Inc()
	stepsTotal.WithLabelValues(rec.Technique).Add(float64(rec.Steps))
	runDuration.WithLabelValues(rec.Technique).Observe(rec.Elapsed.Seconds())
}
