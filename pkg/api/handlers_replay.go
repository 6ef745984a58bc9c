package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/tracestep/tracestep/pkg/logging"
	"github.com/tracestep/tracestep/pkg/tracefile"
)

// handleRunPath dispatches /runs/{...} paths:
//
//	POST /runs/{algorithm}         execute a run
//	GET  /runs/{id}                full run detail
//	GET  /runs/{id}/steps/{n}      one step, for pull-based replay
//	GET  /runs/{id}/export         compressed archive download
func (s *Server) handleRunPath(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/runs/"), "/")
	if rest == "" {
		s.handleRuns(w, r)
		return
	}
	parts := strings.Split(rest, "/")

	if r.Method == http.MethodPost && len(parts) == 1 {
		s.handleCreateRun(w, r, parts[0])
		return
	}
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	switch {
	case len(parts) == 1:
		s.handleGetRun(w, parts[0])
	case len(parts) == 2 && parts[1] == "export":
		s.handleExportRun(w, parts[0])
	case len(parts) == 3 && parts[1] == "steps":
		s.handleGetStep(w, parts[0], parts[2])
	default:
		s.respondError(w, http.StatusNotFound, "Not found")
	}
}

func (s *Server) handleGetRun(w http.ResponseWriter, id string) {
	run, ok := s.store.Get(id)
	if !ok {
		s.respondError(w, http.StatusNotFound, "Run not found: "+id)
		return
	}
	s.respondJSON(w, http.StatusOK, RunDetail{
		RunSummary: summarize(run),
		Result:     run.Result,
	})
}

func (s *Server) handleGetStep(w http.ResponseWriter, id, index string) {
	run, ok := s.store.Get(id)
	if !ok {
		s.respondError(w, http.StatusNotFound, "Run not found: "+id)
		return
	}
	n, err := strconv.Atoi(index)
	if err != nil || n < 0 || n >= len(run.Result.Steps) {
		s.respondError(w, http.StatusBadRequest,
			"Step index must be in [0, "+strconv.Itoa(len(run.Result.Steps))+")")
		return
	}
	s.respondJSON(w, http.StatusOK, StepResponse{
		Index: n,
		Total: len(run.Result.Steps),
		Step:  run.Result.Steps[n],
	})
}

func (s *Server) handleExportRun(w http.ResponseWriter, id string) {
	run, ok := s.store.Get(id)
	if !ok {
		s.respondError(w, http.StatusNotFound, "Run not found: "+id)
		return
	}
	archive := tracefile.New(run.Algorithm, run.Source, run.Nodes, run.Edges, run.Result)
	data, err := tracefile.Encode(archive)
	if err != nil {
		s.logger.Error("failed to encode archive",
			logging.RunID(run.ID), logging.Error(err))
		s.respondError(w, http.StatusInternalServerError, "Failed to encode archive")
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition",
		`attachment; filename="`+run.ID+`.trace"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.logger.Error("failed to write archive",
			logging.RunID(run.ID), logging.Error(err))
	}
}
