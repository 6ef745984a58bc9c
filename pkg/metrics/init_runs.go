package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initRunMetrics() {
	r.RunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracestep_runs_total",
			Help: "Total number of algorithm runs executed",
		},
		[]string{"algorithm"},
	)

	r.RunDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tracestep_run_duration_seconds",
			Help:    "Algorithm run duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"algorithm"},
	)

	r.RunStepsRecorded = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tracestep_run_steps_recorded",
			Help:    "Number of trace steps recorded per run",
			Buckets: []float64{10, 50, 100, 500, 1000, 5000, 10000},
		},
		[]string{"algorithm"},
	)

	r.RunGraphNodes = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tracestep_run_graph_nodes",
			Help:    "Number of vertices in the input graph per run",
			Buckets: []float64{5, 10, 25, 50, 100, 250},
		},
		[]string{"algorithm"},
	)

	r.RunGraphEdges = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tracestep_run_graph_edges",
			Help:    "Number of edges in the input graph per run",
			Buckets: []float64{5, 10, 25, 50, 100, 500},
		},
		[]string{"algorithm"},
	)

	r.NegativeCycles = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "tracestep_negative_cycles_total",
			Help: "Total number of runs that detected a negative cycle",
		},
	)

	r.StoredRuns = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "tracestep_stored_runs",
			Help: "Number of completed runs currently retained for replay",
		},
	)
}
