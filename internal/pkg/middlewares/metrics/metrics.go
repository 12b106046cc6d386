package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tracker_http_request_duration_seconds",
			Help:    "HTTP request latency by route template",
			Buckets: []float64{.005, .025, .1, .25, .5, 1, 2.5, 10, 60},
		},
		[]string{"method", "route", "status"},
	)

	requestsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tracker_http_requests_in_flight",
		Help: "HTTP requests currently being served",
	})

	responseBytes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_http_response_bytes_total",
			Help: "Bytes written in HTTP responses, PDF and xlsx downloads dominate",
		},
		[]string{"route"},
	)
)
