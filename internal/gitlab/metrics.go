package gitlab

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "burnin",
		Subsystem: "gitlab",
		Name:      "requests_total",
		Help:      "Requests sent to the GitLab repository API.",
	},
	[]string{"method", "operation", "status"},
)

var requestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "burnin",
		Subsystem: "gitlab",
		Name:      "request_duration_seconds",
		Help:      "Latency of requests sent to the GitLab repository API.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// statusLabel is "error" when no response was received.
func statusLabel(code int) string {
	if code == 0 {
		return "error"
	}

	return strconv.Itoa(code)
}
