// Package metrics exposes Prometheus instrumentation for the lookup pipelines.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks lookup outcomes, provider failures and pipeline latency
type Metrics struct {
	Lookups          *prometheus.CounterVec
	ProviderFailures *prometheus.CounterVec
	LookupDuration   *prometheus.HistogramVec
	TasksProcessed   *prometheus.CounterVec
}

// New registers all lookup metrics with reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lookup_requests_total",
			Help: "Total number of identifier lookups by type and outcome",
		}, []string{"type", "outcome"}),
		ProviderFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lookup_provider_failures_total",
			Help: "Total number of enrichment provider failures by field and category",
		}, []string{"field", "category"}),
		LookupDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lookup_duration_seconds",
			Help:    "Duration of lookup pipelines including enrichment",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"type"}),
		TasksProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lookup_tasks_processed_total",
			Help: "Total number of queue tasks processed by type and status",
		}, []string{"task", "status"}),
	}
}

// NewNoop returns metrics registered with a private registry
func NewNoop() *Metrics {
	return New(prometheus.NewRegistry())
}

// IncrementLookup records a finished lookup
func (m *Metrics) IncrementLookup(kind, outcome string) {
	m.Lookups.WithLabelValues(kind, outcome).Inc()
}

// IncrementProviderFailure records a provider failure for an enrichment field
func (m *Metrics) IncrementProviderFailure(field, category string) {
	m.ProviderFailures.WithLabelValues(field, category).Inc()
}

// ObserveLookup records the duration of a pipeline.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveLookup(kind string, start time.Time) {
	m.LookupDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

// IncrementTask records a processed queue task
func (m *Metrics) IncrementTask(task, status string) {
	m.TasksProcessed.WithLabelValues(task, status).Inc()
}
