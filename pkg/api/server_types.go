package api

import (
	"time"

	"github.com/tracestep/tracestep/pkg/trace"
)

// Algorithm names accepted by POST /runs/{algorithm}.
const (
	AlgorithmDijkstra      = "dijkstra"
	AlgorithmBellmanFord   = "bellman-ford"
	AlgorithmFloydWarshall = "floyd-warshall"
)

// RunSummary describes a stored run without its trace.
type RunSummary struct {
	ID            string    `json:"id"`
	Algorithm     string    `json:"algorithm"`
	Source        string    `json:"source,omitempty"`
	NodeCount     int       `json:"nodeCount"`
	EdgeCount     int       `json:"edgeCount"`
	StepCount     int       `json:"stepCount"`
	NegativeCycle bool      `json:"negativeCycle"`
	CreatedAt     time.Time `json:"createdAt"`
}

// RunDetail is a stored run with its full materialized result.
type RunDetail struct {
	RunSummary
	Result *trace.Result `json:"result"`
}

// StepResponse is one step of a stored run, for pull-based replay.
type StepResponse struct {
	Index int        `json:"index"`
	Total int        `json:"total"`
	Step  trace.Step `json:"step"`
}

// RunListResponse is the body of GET /runs.
type RunListResponse struct {
	Runs  []RunSummary `json:"runs"`
	Count int          `json:"count"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status     string `json:"status"`
	Version    string `json:"version"`
	Uptime     string `json:"uptime"`
	StoredRuns int    `json:"storedRuns"`
}
