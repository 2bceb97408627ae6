package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Enrichment outcomes recorded by ObserveEnrichment.
const (
	EnrichmentEnriched    = "enriched"
	EnrichmentNotFound    = "not_found"
	EnrichmentUnavailable = "unavailable"
)

// Metrics owns a private Prometheus registry so several instances can coexist in one process.
// All methods are safe on a nil receiver, which is how metrics are disabled.
type Metrics struct {
	registry *prometheus.Registry
	service  string

	apiRequests   *prometheus.CounterVec
	apiLatency    *prometheus.HistogramVec
	apiInflight   prometheus.Gauge
	enrichment    *prometheus.CounterVec
	lookupLatency *prometheus.HistogramVec
}

func NewMetrics(service string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		service:  service,
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests served, by route and status.",
		}, []string{"service", "method", "route", "status"}),
		apiLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"service", "method", "route"}),
		apiInflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "http_requests_in_flight",
			Help:        "HTTP requests currently being served.",
			ConstLabels: prometheus.Labels{"service": service},
		}),
		enrichment: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vehicle_enrichment_total",
			Help: "Car policy enrichment attempts by outcome.",
		}, []string{"outcome"}),
		lookupLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vehicle_lookup_duration_seconds",
			Help:    "Latency of outbound vehicle lookups by outcome.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"outcome"}),
	}
	m.registry.MustRegister(
		m.apiRequests,
		m.apiLatency,
		m.apiInflight,
		m.enrichment,
		m.lookupLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) APIInflightInc() {
	if m != nil {
		m.apiInflight.Inc()
	}
}

func (m *Metrics) APIInflightDec() {
	if m != nil {
		m.apiInflight.Dec()
	}
}

func (m *Metrics) ObserveAPI(method, route, status string, dur time.Duration) {
	if m == nil {
		return
	}
	if method == "" {
		method = "UNKNOWN"
	}
	if route == "" {
		route = "unknown"
	}
	if status == "" {
		status = "0"
	}
	m.apiRequests.WithLabelValues(m.service, method, route, status).Inc()
	m.apiLatency.WithLabelValues(m.service, method, route).Observe(dur.Seconds())
}

func (m *Metrics) ObserveEnrichment(outcome string) {
	if m != nil {
		m.enrichment.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) ObserveVehicleLookup(outcome string, dur time.Duration) {
	if m != nil {
		m.lookupLatency.WithLabelValues(outcome).Observe(dur.Seconds())
	}
}
