// Package api exposes the trace engine over HTTP: submit a graph to run an
// algorithm, then replay the stored trace step by step.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tracestep/tracestep/pkg/api/middleware"
	"github.com/tracestep/tracestep/pkg/logging"
	"github.com/tracestep/tracestep/pkg/metrics"
)

// Server is the HTTP API server.
type Server struct {
	store     *RunStore
	metrics   *metrics.Registry
	logger    logging.Logger
	startTime time.Time
	version   string
}

// Options configures a Server. Zero values get sensible defaults.
type Options struct {
	MaxStoredRuns int
	Metrics       *metrics.Registry
	Logger        logging.Logger
	Version       string
}

// NewServer creates an API server.
func NewServer(opts Options) *Server {
	if opts.MaxStoredRuns < 1 {
		opts.MaxStoredRuns = 100
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.DefaultRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Default()
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	return &Server{
		store:     NewRunStore(opts.MaxStoredRuns),
		metrics:   opts.Metrics,
		logger:    opts.Logger.With(logging.Component("api")),
		startTime: time.Now(),
		version:   opts.Version,
	}
}

// Store returns the run store, for config hot-reload wiring.
func (s *Server) Store() *RunStore {
	return s.store
}

// Handler builds the routing table wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", promhttp.HandlerFor(
		s.metrics.PrometheusRegistry(), promhttp.HandlerOpts{}))

	mux.HandleFunc("/runs", s.handleRuns)
	mux.HandleFunc("/runs/", s.handleRunPath)

	var handler http.Handler = mux
	handler = middleware.Metrics(s.metrics, s.metrics.HTTPRequestsInFlight)(handler)
	handler = middleware.Logging(s.logger)(handler)
	handler = middleware.PanicRecovery(s.logger)(handler)
	handler = middleware.RequestID()(handler)
	return handler
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s.respondJSON(w, http.StatusOK, HealthResponse{
		Status:     "ok",
		Version:    s.version,
		Uptime:     time.Since(s.startTime).Round(time.Second).String(),
		StoredRuns: s.store.Len(),
	})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, ErrorResponse{Error: message})
}
