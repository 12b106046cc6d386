package background

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	taskRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_background_task_runs_total",
			Help: "Background task runs by outcome",
		},
		[]string{"task", "result"},
	)

	taskDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tracker_background_task_duration_seconds",
			Help:    "Background task run duration",
			Buckets: []float64{.01, .05, .1, .5, 1, 5, 30},
		},
		[]string{"task"},
	)
)

func observe(task string, elapsed time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	taskRunsTotal.WithLabelValues(task, result).Inc()
	taskDuration.WithLabelValues(task).Observe(elapsed.Seconds())
}
