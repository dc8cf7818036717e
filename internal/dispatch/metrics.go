package dispatch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	commandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "teambot",
		Subsystem: "dispatch",
		Name:      "commands_total",
		Help:      "Total invocations dispatched, by command path.",
	}, []string{"command"})

	dispatchDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "teambot",
		Subsystem: "dispatch",
		Name:      "duration_seconds",
		Help:      "Invocation handling duration in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	deliveryFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "teambot",
		Subsystem: "dispatch",
		Name:      "delivery_failures_total",
		Help:      "Total responses the gateway failed to deliver.",
	})

	registeredTeams = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "teambot",
		Subsystem: "registry",
		Name:      "teams",
		Help:      "Number of registered teams.",
	})
)
