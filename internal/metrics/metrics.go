// Package metrics provides Prometheus instrumentation for the preview server.
//
// Collectors live in a dedicated [prometheus.Registry] so only function
// metrics appear on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Victor-armando18/checkout-functions/internal/domain"
)

// Metrics holds all Prometheus collectors.
type Metrics struct {
	Registry *prometheus.Registry

	InvocationsTotal *prometheus.CounterVec
	OperationsTotal  *prometheus.CounterVec
}

// New creates and registers the collectors in a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		Registry: reg,

		InvocationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "checkout_function_invocations_total",
			Help: "Total number of function invocations.",
		}, []string{"target", "outcome"}),

		OperationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "checkout_function_operations_total",
			Help: "Total number of operations emitted.",
		}, []string{"target", "kind"}),
	}

	reg.MustRegister(m.InvocationsTotal, m.OperationsTotal)
	return m
}

// Outcome labels.
const (
	OutcomeOperations = "operations"
	OutcomeNoChanges  = "no_changes"
	OutcomeError      = "error"
)

// RecordInvocation counts one invocation and the operations it emitted.
func (m *Metrics) RecordInvocation(target domain.Target, result *domain.FunctionResult, err error) {
	switch {
	case err != nil:
		m.InvocationsTotal.WithLabelValues(string(target), OutcomeError).Inc()
		return
	case result == nil || len(result.Operations) == 0:
		m.InvocationsTotal.WithLabelValues(string(target), OutcomeNoChanges).Inc()
		return
	}

	m.InvocationsTotal.WithLabelValues(string(target), OutcomeOperations).Inc()
	for _, op := range result.Operations {
		m.OperationsTotal.WithLabelValues(string(target), op.Kind()).Inc()
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
