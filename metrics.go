package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Prometheus collectors for the planning endpoints.
type metrics struct {
	plansTotal   *prometheus.CounterVec
	planDuration prometheus.Histogram
	exportsTotal prometheus.Counter
	catalogSize  *prometheus.GaugeVec
}

// newMetrics registers the collectors on reg. Each Handler gets its own
// registry so tests can build several without duplicate registration.
func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		plansTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "fitplan_plans_total",
			Help: "Plan computations by goal and outcome",
		}, []string{"goal", "outcome"}),

		planDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "fitplan_plan_duration_seconds",
			Help:    "Time spent computing a plan",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),

		exportsTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "fitplan_exports_total",
			Help: "Plan spreadsheets exported",
		}),

		catalogSize: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fitplan_catalog_entries",
			Help: "Entries in the loaded catalog by kind",
		}, []string{"kind"}),
	}
}
