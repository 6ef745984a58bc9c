package api

import (
	"sync"
	"time"

	"github.com/tracestep/tracestep/pkg/graph"
	"github.com/tracestep/tracestep/pkg/trace"
)

// StoredRun is one completed run retained in memory for replay. Runs are
// not persisted across restarts; archives exist for that.
type StoredRun struct {
	ID        string
	Algorithm string
	Source    string
	Nodes     []graph.Node
	Edges     []graph.Edge
	Result    *trace.Result
	CreatedAt time.Time
}

// RunStore keeps completed runs up to a cap, evicting oldest-first.
type RunStore struct {
	mu    sync.RWMutex
	runs  map[string]*StoredRun
	order []string // insertion order, oldest first
	cap   int
}

// NewRunStore creates a store retaining at most cap runs.
func NewRunStore(cap int) *RunStore {
	if cap < 1 {
		cap = 1
	}
	return &RunStore{
		runs: make(map[string]*StoredRun),
		cap:  cap,
	}
}

// Add stores a run, evicting the oldest if the store is full.
func (s *RunStore) Add(run *StoredRun) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.runs[run.ID] = run
	s.order = append(s.order, run.ID)
	s.evictLocked()
}

// Get returns the run with the given ID.
func (s *RunStore) Get(id string) (*StoredRun, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	return run, ok
}

// List returns stored runs, newest first.
func (s *RunStore) List() []*StoredRun {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*StoredRun, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		out = append(out, s.runs[s.order[i]])
	}
	return out
}

// Len returns the number of stored runs.
func (s *RunStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.runs)
}

// SetCap changes the retention cap, evicting immediately if needed. Wired
// to config hot reload.
func (s *RunStore) SetCap(cap int) {
	if cap < 1 {
		cap = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cap = cap
	s.evictLocked()
}

func (s *RunStore) evictLocked() {
	for len(s.order) > s.cap {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.runs, oldest)
	}
}
