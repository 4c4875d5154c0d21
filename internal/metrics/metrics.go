// Package metrics holds the prometheus collectors of the service.
//
// Collectors live on a dedicated registry owned by [Metrics], so every
// server and test gets an isolated set.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fitkeeper"

type Metrics struct {
	registry *prometheus.Registry

	// HTTPRequests counts served REST requests.
	HTTPRequests *prometheus.CounterVec
	// HTTPRequestDuration tracks REST latency in seconds.
	HTTPRequestDuration *prometheus.HistogramVec
	// GRPCRequests counts served gRPC calls.
	GRPCRequests *prometheus.CounterVec
	// Records is the number of stored records per resource.
	Records *prometheus.GaugeVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Latency of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		GRPCRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "grpc_requests_total",
				Help:      "Total number of gRPC calls",
			},
			[]string{"method", "code"},
		),
		Records: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "records",
				Help:      "Number of stored records",
			},
			[]string{"resource"},
		),
	}
}

// ObserveHTTP records a served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.HTTPRequests.With(prometheus.Labels{
		"method": method,
		"route":  route,
		"status": strconv.Itoa(status),
	}).Inc()
	m.HTTPRequestDuration.With(prometheus.Labels{
		"method": method,
		"route":  route,
	}).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveGRPC(method, code string) {
	m.GRPCRequests.With(prometheus.Labels{"method": method, "code": code}).Inc()
}

func (m *Metrics) SetRecords(resource string, n int) {
	m.Records.With(prometheus.Labels{"resource": resource}).Set(float64(n))
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry for gathering in tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
