package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	EventsRecorded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "treasury_ledger_events_total",
			Help: "Total number of ledger events recorded, by event type.",
		},
		[]string{"event_type"},
	)
	TaxHoldsDerived = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "treasury_tax_holds_derived_total",
			Help: "Total number of tax hold events derived from income events.",
		},
	)
	RelaySubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "treasury_relay_submissions_total",
			Help: "Total relay submissions, by execution path and outcome.",
		},
		[]string{"path", "outcome"},
	)
	SweepsExecuted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "treasury_sweeps_total",
			Help: "Total sweep transfers executed, by bucket and outcome.",
		},
		[]string{"bucket", "outcome"},
	)
	ReconcileRunDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "treasury_reconcile_run_duration_seconds",
			Help:    "Duration of reconciliation worker runs in seconds.",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Register registers all engine collectors on the given registry.
func Register(registry *prometheus.Registry) {
	registry.MustRegister(
		EventsRecorded,
		TaxHoldsDerived,
		RelaySubmissions,
		SweepsExecuted,
		ReconcileRunDuration,
	)
}

// Handler returns an HTTP handler serving the registry.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
