package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's Prometheus collectors on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	advisorTotal    *prometheus.CounterVec
	advisorDuration *prometheus.HistogramVec
	staleSummaries  prometheus.Counter
}

// New registers the collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	advisorTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "advisor_requests_total",
		Help: "Generative text requests by operation and outcome",
	}, []string{"operation", "status"})

	advisorDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "advisor_request_duration_seconds",
		Help:    "Latency of generative text requests",
		Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
	}, []string{"operation"})

	staleSummaries := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "note_summaries_discarded_total",
		Help: "Summary responses dropped because a newer request was issued for the same note",
	})

	registry.MustRegister(
		requestDuration,
		requestTotal,
		advisorTotal,
		advisorDuration,
		staleSummaries,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		advisorTotal:    advisorTotal,
		advisorDuration: advisorDuration,
		staleSummaries:  staleSummaries,
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return m.handler
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveHTTPRequest records one served request.
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	code := strconv.Itoa(status)
	m.requestTotal.WithLabelValues(method, path, code).Inc()
	m.requestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
}

// ObserveAdvisorCall records one generative text request.
func (m *Metrics) ObserveAdvisorCall(operation, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.advisorTotal.WithLabelValues(operation, status).Inc()
	m.advisorDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// IncStaleSummary counts a discarded out-of-order summary response.
func (m *Metrics) IncStaleSummary() {
	if m == nil {
		return
	}
	m.staleSummaries.Inc()
}
