package spans

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// spanWithoutTracerCounter counts spans that ran untraced because the
// context had no tracer.
//
// Metric name: seqkit_spans_without_tracer_total
// Labels:
//   - span_name: The name of the span that was attempted
var spanWithoutTracerCounter = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Namespace: "seqkit",
		Subsystem: "spans",
		Name:      "without_tracer_total",
		Help:      "Total number of span executions without a tracer in context",
	},
	[]string{"span_name"},
)
