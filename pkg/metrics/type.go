package metrics

import "github.com/prometheus/client_golang/prometheus"

type promMetrics struct {
	upstreamTotal    *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	listFetches      *prometheus.CounterVec
	activeSessions   prometheus.Gauge
}

type nopMetrics struct{}
