// Package metrics exposes Prometheus counters for dispatch outcomes. The
// engine works without it; a nil *Metrics is a no-op.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the engine's Prometheus collectors.
type Metrics struct {
	CommandsTotal    *prometheus.CounterVec
	CompletionsTotal *prometheus.CounterVec
	ScriptFailures   prometheus.Counter
	ConfigReloads    *prometheus.CounterVec
}

// New registers the engine collectors with reg, or with the default
// registerer when reg is nil.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		CommandsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "prowl_commands_total",
				Help: "Command-bar submissions by outcome",
			},
			[]string{"outcome"},
		),
		CompletionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "prowl_completions_total",
				Help: "Completion requests by variant",
			},
			[]string{"variant"},
		),
		ScriptFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "prowl_script_failures_total",
				Help: "Script invocations that returned an error",
			},
		),
		ConfigReloads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "prowl_config_reloads_total",
				Help: "Configuration reload attempts by status",
			},
			[]string{"status"},
		),
	}
}

// RecordCommand counts one command submission with the given outcome.
func (m *Metrics) RecordCommand(outcome string) {
	if m == nil {
		return
	}
	m.CommandsTotal.WithLabelValues(outcome).Inc()
}

// RecordCompletion counts one completion request for a variant.
func (m *Metrics) RecordCompletion(variant string) {
	if m == nil {
		return
	}
	m.CompletionsTotal.WithLabelValues(variant).Inc()
}

// RecordScriptFailure counts one failed script invocation.
func (m *Metrics) RecordScriptFailure() {
	if m == nil {
		return
	}
	m.ScriptFailures.Inc()
}

// RecordReload counts one configuration reload attempt.
func (m *Metrics) RecordReload(ok bool) {
	if m == nil {
		return
	}
	status := "success"
	if !ok {
		status = "failure"
	}
	m.ConfigReloads.WithLabelValues(status).Inc()
}
