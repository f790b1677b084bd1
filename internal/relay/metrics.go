package relay

import "github.com/prometheus/client_golang/prometheus"

var (
	proxied = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "panel_relay_requests_total",
			Help: "Forwarded API requests by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)
	upstreamDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "panel_relay_upstream_duration_seconds",
			Help:    "Round-trip time to the admin API",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(proxied, upstreamDuration)
}
