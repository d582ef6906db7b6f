package simultaneously

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

//nolint:gochecknoglobals
var (
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "seqkit",
		Subsystem: "simultaneously",
		Name:      "runs_total",
		Help:      "Number of ForEach and Map calls over a non-empty slice",
	}, []string{"name"})

	callbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "seqkit",
		Subsystem: "simultaneously",
		Name:      "callbacks_total",
		Help:      "Number of callbacks that returned, by outcome",
	}, []string{"name", "outcome"})

	callbacksInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "seqkit",
		Subsystem: "simultaneously",
		Name:      "callbacks_in_flight",
		Help:      "Number of callbacks currently running",
	}, []string{"name"})
)

func outcome(err error) string {
	if err != nil {
		return outcomeFailure
	}

	return outcomeSuccess
}
