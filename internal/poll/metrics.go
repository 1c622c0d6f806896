package poll

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ticksTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: "burnin",
		Subsystem: "poll",
		Name:      "ticks_total",
		Help:      "Fetch rounds issued by the poller, immediate ones included.",
	},
)

var resultsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "burnin",
		Subsystem: "poll",
		Name:      "results_total",
		Help:      "Fetch results by collection and outcome.",
	},
	[]string{"collection", "outcome"},
)

var invalidRecords = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: "burnin",
		Subsystem: "poll",
		Name:      "invalid_records",
		Help:      "Records of the last applied result that could not be fetched or parsed.",
	},
	[]string{"collection"},
)
