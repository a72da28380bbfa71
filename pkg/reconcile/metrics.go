package reconcile

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var outcomes = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "skillpath",
		Subsystem: "reconcile",
		Name:      "outcomes_total",
		Help:      "Fetch-and-reconcile runs by routine and outcome.",
	},
	[]string{"routine", "outcome"},
)

var durations = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "skillpath",
		Subsystem: "reconcile",
		Name:      "duration_seconds",
		Help:      "Time spent in a fetch-and-reconcile run.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"routine"},
)

func observe(routine string, outcome Outcome, elapsed time.Duration) {
	outcomes.WithLabelValues(routine, outcome.String()).Inc()
	durations.WithLabelValues(routine).Observe(elapsed.Seconds())
}
