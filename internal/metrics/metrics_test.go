package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_RecordLookup(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	m.RecordLookup(TierFree, "high")
	m.RecordLookup(TierFree, "high")
	m.RecordLookup(TierRemote, "medium")

	assert.Equal(t, float64(2),
		testutil.ToFloat64(m.lookups.WithLabelValues(TierFree, "high")))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(m.lookups.WithLabelValues(TierRemote, "medium")))
}

func TestMetrics_RecordRemoteRequest(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	m.RecordRemoteRequest(ServiceMorphology, OutcomeOK)
	m.RecordRemoteRequest(ServiceCorpus, OutcomeNoData)

	assert.Equal(t, float64(1),
		testutil.ToFloat64(m.remoteRequests.WithLabelValues(ServiceMorphology, OutcomeOK)))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(m.remoteRequests.WithLabelValues(ServiceCorpus, OutcomeNoData)))
}

func TestMetrics_NilReceiverIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordLookup(TierNone, "none")
		m.RecordRemoteRequest(ServiceCorpus, OutcomeNoData)
	})
}
