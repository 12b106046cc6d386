package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// rejectedTotal key_kind: user или ip.
var rejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tracker_rate_limit_rejected_total",
		Help: "Requests rejected by the per-user rate limiter",
	},
	[]string{"method", "route", "key_kind"},
)
