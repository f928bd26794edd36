package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// IMetrics records upstream calls and list controller activity.
// A nil IMetrics is never passed around; use NewNop instead.
type IMetrics interface {
	ObserveUpstream(method, path string, status int, elapsed time.Duration)
	IncListFetch(entity, outcome string)
	SessionOpened()
	SessionClosed()
}

// New registers the collectors on reg and returns an IMetrics backed by them.
func New(reg prometheus.Registerer) IMetrics {
	m := newCollectors()
	reg.MustRegister(m.upstreamTotal, m.upstreamDuration, m.listFetches, m.activeSessions)
	return m
}

// NewNop returns an IMetrics that records nothing.
func NewNop() IMetrics {
	return nopMetrics{}
}
