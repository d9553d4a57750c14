package http

import (
	"time"

	"github.com/open-inwoner/openklant/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsProvider records the outcome of every round trip. code is the HTTP
// status code, or "error" when no response was obtained.
type MetricsProvider interface {
	ObserveRequest(method, code string, duration time.Duration)
}

type noopMetrics struct{}

func (noopMetrics) ObserveRequest(string, string, time.Duration) {}

type prometheusMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// PrometheusMetrics registers the transport collectors on registerer. Calling
// it twice with the same registerer reuses the collectors already registered.
func PrometheusMetrics(registerer prometheus.Registerer) MetricsProvider {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "openklant",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of requests sent to the klantinteracties API.",
	}, []string{"method", "code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "openklant",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "How long in seconds a request to the klantinteracties API takes, retries included.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	return prometheusMetrics{
		requests: metrics.Register(registerer, requests),
		duration: metrics.Register(registerer, duration),
	}
}

func (m prometheusMetrics) ObserveRequest(method, code string, duration time.Duration) {
	m.requests.WithLabelValues(method, code).Inc()
	m.duration.WithLabelValues(method).Observe(duration.Seconds())
}
