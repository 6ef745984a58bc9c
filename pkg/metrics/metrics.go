// Package metrics exposes Prometheus metrics for the trace engine's HTTP
// surface and algorithm runs.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application.
type Registry struct {
	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Run metrics
	RunsTotal        *prometheus.CounterVec
	RunDuration      *prometheus.HistogramVec
	RunStepsRecorded *prometheus.HistogramVec
	RunGraphNodes    *prometheus.HistogramVec
	RunGraphEdges    *prometheus.HistogramVec
	NegativeCycles   prometheus.Counter
	StoredRuns       prometheus.Gauge

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}
	r.initHTTPMetrics()
	r.initRunMetrics()
	return r
}

// PrometheusRegistry returns the underlying Prometheus registry for the
// /metrics handler.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// RecordHTTPRequest records an HTTP request with its duration.
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordRun records one completed algorithm run.
func (r *Registry) RecordRun(algorithm string, duration time.Duration, steps, nodes, edges int, negativeCycle bool) {
	r.RunsTotal.WithLabelValues(algorithm).Inc()
	r.RunDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
	r.RunStepsRecorded.WithLabelValues(algorithm).Observe(float64(steps))
	r.RunGraphNodes.WithLabelValues(algorithm).Observe(float64(nodes))
	r.RunGraphEdges.WithLabelValues(algorithm).Observe(float64(edges))
	if negativeCycle {
		r.NegativeCycles.Inc()
	}
}

// SetStoredRuns updates the gauge of runs retained for replay.
func (r *Registry) SetStoredRuns(n int) {
	r.StoredRuns.Set(float64(n))
}
