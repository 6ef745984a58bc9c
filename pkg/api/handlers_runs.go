package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tracestep/tracestep/pkg/algorithms"
	"github.com/tracestep/tracestep/pkg/graph"
	"github.com/tracestep/tracestep/pkg/logging"
	"github.com/tracestep/tracestep/pkg/trace"
	"github.com/tracestep/tracestep/pkg/validation"
)

// handleRuns routes /runs: GET lists stored runs.
func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListRuns(w, r)
	default:
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// handleCreateRun executes the named algorithm on the submitted graph and
// stores the resulting trace for replay.
func (s *Server) handleCreateRun(w http.ResponseWriter, r *http.Request, algorithm string) {
	switch algorithm {
	case AlgorithmDijkstra, AlgorithmBellmanFord, AlgorithmFloydWarshall:
	default:
		s.respondError(w, http.StatusNotFound, "Unknown algorithm: "+algorithm)
		return
	}

	var req validation.RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if err := validation.ValidateRunRequest(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	switch algorithm {
	case AlgorithmDijkstra:
		if err := validation.RequireSource(&req); err != nil {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := validation.RequireNonNegativeWeights(&req); err != nil {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	case AlgorithmBellmanFord:
		if err := validation.RequireSource(&req); err != nil {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	nodes := make([]graph.Node, len(req.Nodes))
	for i, n := range req.Nodes {
		nodes[i] = graph.Node{ID: n.ID, Label: n.Label}
	}
	edges := make([]graph.Edge, len(req.Edges))
	for i, e := range req.Edges {
		edges[i] = graph.Edge{From: e.From, To: e.To, Weight: e.Weight}
	}

	start := time.Now()
	var result *trace.Result
	switch algorithm {
	case AlgorithmDijkstra:
		result = algorithms.Dijkstra(nodes, edges, req.Source)
	case AlgorithmBellmanFord:
		result = algorithms.BellmanFord(nodes, edges, req.Source)
	case AlgorithmFloydWarshall:
		result = algorithms.FloydWarshall(nodes, edges)
	}
	elapsed := time.Since(start)

	run := &StoredRun{
		ID:        uuid.NewString(),
		Algorithm: algorithm,
		Source:    req.Source,
		Nodes:     nodes,
		Edges:     edges,
		Result:    result,
		CreatedAt: time.Now().UTC(),
	}
	s.store.Add(run)

	negCycle := hasNegativeCycle(result)
	s.metrics.RecordRun(algorithm, elapsed, len(result.Steps), len(nodes), len(edges), negCycle)
	s.metrics.SetStoredRuns(s.store.Len())

	s.logger.Info("run completed",
		logging.RunID(run.ID),
		logging.Algorithm(algorithm),
		logging.Source(req.Source),
		logging.Nodes(len(nodes)),
		logging.Edges(len(edges)),
		logging.Steps(len(result.Steps)),
		logging.Latency(elapsed),
	)

	s.respondJSON(w, http.StatusCreated, summarize(run))
}

func (s *Server) handleListRuns(w http.ResponseWriter, _ *http.Request) {
	stored := s.store.List()
	runs := make([]RunSummary, len(stored))
	for i, run := range stored {
		runs[i] = summarize(run)
	}
	s.respondJSON(w, http.StatusOK, RunListResponse{Runs: runs, Count: len(runs)})
}

func summarize(run *StoredRun) RunSummary {
	return RunSummary{
		ID:            run.ID,
		Algorithm:     run.Algorithm,
		Source:        run.Source,
		NodeCount:     len(run.Nodes),
		EdgeCount:     len(run.Edges),
		StepCount:     len(run.Result.Steps),
		NegativeCycle: hasNegativeCycle(run.Result),
		CreatedAt:     run.CreatedAt,
	}
}

func hasNegativeCycle(result *trace.Result) bool {
	for _, d := range result.Distances {
		if d.IsNegativeInf() {
			return true
		}
	}
	return false
}
