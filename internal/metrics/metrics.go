// Package metrics exposes Prometheus counters for the lookup pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	TierFree   = "free"
	TierFull   = "full"
	TierRemote = "remote"
	TierNone   = "none"

	ServiceMorphology = "sparv"
	ServiceCorpus     = "korp"

	OutcomeOK     = "ok"
	OutcomeNoData = "no_data"
	OutcomeError  = "error"
)

// Metrics holds the counters the lookup and HTTP layers record into. A nil
// *Metrics is safe to record into, so callers need no guards.
type Metrics struct {
	lookups        *prometheus.CounterVec
	remoteRequests *prometheus.CounterVec
}

// New registers the lookup counters on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "enorett_lookups_total",
			Help: "Total word lookups by resolution tier and confidence",
		}, []string{"tier", "confidence"}),
		remoteRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "enorett_remote_requests_total",
			Help: "Total outbound linguistic service requests by service and outcome",
		}, []string{"service", "outcome"}),
	}
}

// RecordLookup counts one resolved lookup.
func (m *Metrics) RecordLookup(tier, confidence string) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(tier, confidence).Inc()
}

// RecordRemoteRequest counts one outbound service request.
func (m *Metrics) RecordRemoteRequest(service, outcome string) {
	if m == nil {
		return
	}
	m.remoteRequests.WithLabelValues(service, outcome).Inc()
}
