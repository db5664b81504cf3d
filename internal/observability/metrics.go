// Package observability holds the Prometheus instrumentation for SwimCast.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus counters and histograms for the API.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec   // labels: method, endpoint, status
	RequestDuration *prometheus.HistogramVec // labels: method, endpoint

	ScoresComputed *prometheus.CounterVec // labels: recommendation
	ScoreValue     prometheus.Histogram
}

// NewMetrics creates all API metrics on a private registry so tests can
// construct independent instances without duplicate registration panics.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "swimcast",
			Name:      "http_requests_total",
			Help:      "API requests by method, route pattern, and status code.",
		}, []string{"method", "endpoint", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "swimcast",
			Name:      "http_request_duration_seconds",
			Help:      "API request duration in seconds.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "endpoint"}),
		ScoresComputed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "swimcast",
			Name:      "scores_computed_total",
			Help:      "Swim scores computed, by recommendation kind.",
		}, []string{"recommendation"}),
		ScoreValue: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "swimcast",
			Name:      "score_value",
			Help:      "Distribution of computed total scores.",
			Buckets:   []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		}),
	}

	reg.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.ScoresComputed,
		m.ScoreValue,
	)

	return m
}

// RecordRequest implements the core.MetricsCollector interface.
func (m *Metrics) RecordRequest(method, endpoint, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	m.RequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordScore records one computed swim score.
func (m *Metrics) RecordScore(recommendation string, total int) {
	m.ScoresComputed.WithLabelValues(recommendation).Inc()
	m.ScoreValue.Observe(float64(total))
}

// Handler returns the /metrics scrape handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
