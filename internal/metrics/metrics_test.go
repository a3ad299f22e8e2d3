package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordCommand("success")
	m.RecordCommand("success")
	m.RecordCommand("not_found")
	m.RecordCompletion("command")
	m.RecordScriptFailure()
	m.RecordReload(true)
	m.RecordReload(false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CommandsTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CommandsTotal.WithLabelValues("not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CompletionsTotal.WithLabelValues("command")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ScriptFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ConfigReloads.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ConfigReloads.WithLabelValues("failure")))
}

func TestNilMetricsNoOp(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordCommand("success")
		m.RecordCompletion("address")
		m.RecordScriptFailure()
		m.RecordReload(true)
	})
}
