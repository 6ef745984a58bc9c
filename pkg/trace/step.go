// Package trace defines the replayable output of an algorithm run: an
// ordered sequence of immutable state snapshots plus the final distances
// and reconstructed paths.
//
// The recording contract is the core correctness property of the engine:
// every appended step holds independent deep copies of whatever maps or
// matrices it references, so later in-place mutation by the running
// algorithm never alters history. A consumer replays by holding an index
// into Steps and moving it forward or backward.
package trace

// StepKind tags what kind of event a step records.
type StepKind string

const (
	StepInit   StepKind = "init"
	StepVisit  StepKind = "visit"
	StepUpdate StepKind = "update"
	StepFinish StepKind = "finish"
)

// Triple identifies the (i, j, k) matrix cells involved in an all-pairs
// refinement: dist[i][j] was improved via intermediate vertex k. Indices
// refer to the run's fixed vertex ordering.
type Triple struct {
	I int `json:"i"`
	J int `json:"j"`
	K int `json:"k"`
}

// Step is one immutable snapshot of algorithm state. Only the fields
// relevant to the recording algorithm and the moment are populated; the
// rest stay zero. Once recorded, a step's contents are frozen for the
// lifetime of the result.
type Step struct {
	Kind    StepKind `json:"kind"`
	Message string   `json:"message"`

	// Single-source state.
	Distances    map[string]Distance `json:"distances,omitempty"`
	Predecessors map[string]string   `json:"predecessors,omitempty"`
	Visited      map[string]bool     `json:"visited,omitempty"`
	Current      string              `json:"current,omitempty"`

	// All-pairs state.
	Matrix  [][]Distance `json:"matrix,omitempty"`
	NextHop [][]int      `json:"nextHop,omitempty"`
	Triple  *Triple      `json:"triple,omitempty"`
}

// Result is the fully materialized outcome of one algorithm invocation.
// It is created fresh per call and owned exclusively by the caller; the
// engine keeps no reference to it after returning.
type Result struct {
	Steps     []Step              `json:"steps"`
	Distances map[string]Distance `json:"distances"`
	// Paths maps vertex ID to the ordered vertex sequence from the source
	// to that vertex. Entries exist only for finitely reachable vertices
	// whose predecessor walk reconstructed cleanly.
	Paths map[string][]string `json:"paths"`
}

// NewResult returns an empty result with allocated maps, the shape every
// algorithm starts from (and the defined no-op result for an unknown
// source).
func NewResult() *Result {
	return &Result{
		Steps:     make([]Step, 0),
		Distances: make(map[string]Distance),
		Paths:     make(map[string][]string),
	}
}
