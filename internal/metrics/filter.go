package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "kwfilter"

// Outcome label values for FilterEvaluationsTotal.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
)

// Filter pipeline Prometheus metrics.
var (
	ParsedFiltersTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parsed_filters_total",
			Help:      "Total keyword filters parsed from queries",
		},
	)

	FilterEvaluationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "filter_evaluations_total",
			Help:      "Search results evaluated against a filter pipeline",
		},
		[]string{"outcome"},
	)
)

var registerOnce sync.Once

// Register adds all service metrics to the default registry. Safe to call
// more than once; only the first call registers.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpRequestDuration,
			httpRequestsTotal,
			ParsedFiltersTotal,
			FilterEvaluationsTotal,
		)
	})
}
