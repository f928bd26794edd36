package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func newCollectors() *promMetrics {
	return &promMetrics{
		upstreamTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Requests sent to the agenda backend.",
		}, []string{"method", "path", "status"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of requests sent to the agenda backend.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		listFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "list_fetches_total",
			Help:      "Page fetches issued by list controllers, by outcome.",
		}, []string{"entity", "outcome"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "list_sessions_active",
			Help:      "Open list sessions.",
		}),
	}
}

func (m *promMetrics) ObserveUpstream(method, path string, status int, elapsed time.Duration) {
	m.upstreamTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.upstreamDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

func (m *promMetrics) IncListFetch(entity, outcome string) {
	m.listFetches.WithLabelValues(entity, outcome).Inc()
}

func (m *promMetrics) SessionOpened() { m.activeSessions.Inc() }
func (m *promMetrics) SessionClosed() { m.activeSessions.Dec() }

func (nopMetrics) ObserveUpstream(string, string, int, time.Duration) {}
func (nopMetrics) IncListFetch(string, string)                       {}
func (nopMetrics) SessionOpened()                                    {}
func (nopMetrics) SessionClosed()                                    {}
