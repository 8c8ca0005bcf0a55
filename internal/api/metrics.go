package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fastrank-go/internal/rank"
)

// Metrics holds the Prometheus collectors for the ranking service.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	values   prometheus.Histogram
	policies *prometheus.CounterVec
}

// NewMetrics creates the service collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		requests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fastrank_requests_total",
				Help: "HTTP requests by endpoint and status code.",
			},
			[]string{"endpoint", "code"},
		),
		duration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fastrank_request_duration_seconds",
				Help:    "HTTP request latency by endpoint.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		values: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "fastrank_values_per_request",
				Help:    "Number of values ranked per successful request.",
				Buckets: prometheus.ExponentialBuckets(1, 4, 12),
			},
		),
		policies: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fastrank_policy_requests_total",
				Help: "Successful rank requests by tie policy.",
			},
			[]string{"policy"},
		),
	}
}

// instrument counts requests by status code and records their latency under
// endpoint.
func (m *Metrics) instrument(endpoint string, next http.Handler) http.Handler {
	labels := prometheus.Labels{"endpoint": endpoint}
	return promhttp.InstrumentHandlerDuration(
		m.duration.MustCurryWith(labels),
		promhttp.InstrumentHandlerCounter(m.requests.MustCurryWith(labels), next),
	)
}

func (m *Metrics) observeRank(ties rank.TiePolicy, n int) {
	m.values.Observe(float64(n))
	m.policies.WithLabelValues(ties.String()).Inc()
}
