package trace

// Recorder accumulates the append-only step sequence for one in-progress
// run. It is owned by the running algorithm, never shared, and handed off
// wholesale to the returned Result; no recorder state outlives the call.
type Recorder struct {
	steps []Step
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{steps: make([]Step, 0)}
}

// Record deep-copies every snapshot field of s and appends it. The caller
// may keep mutating the maps and matrices it passed in; the recorded step
// is frozen.
func (r *Recorder) Record(s Step) {
	s.Distances = CopyDistances(s.Distances)
	s.Predecessors = CopyPredecessors(s.Predecessors)
	s.Visited = CopyVisited(s.Visited)
	s.Matrix = CopyMatrix(s.Matrix)
	s.NextHop = CopyIntMatrix(s.NextHop)
	if s.Triple != nil {
		t := *s.Triple
		s.Triple = &t
	}
	r.steps = append(r.steps, s)
}

// Steps returns the recorded sequence for handoff into a Result.
func (r *Recorder) Steps() []Step {
	return r.steps
}

// Len returns the number of recorded steps.
func (r *Recorder) Len() int {
	return len(r.steps)
}

// CopyDistances returns an independent copy of m, or nil for nil input.
func CopyDistances(m map[string]Distance) map[string]Distance {
	if m == nil {
		return nil
	}
	out := make(map[string]Distance, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// CopyPredecessors returns an independent copy of m, or nil for nil input.
func CopyPredecessors(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// CopyVisited returns an independent copy of m, or nil for nil input.
func CopyVisited(m map[string]bool) map[string]bool {
	if m == nil {
		return nil
	}
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// CopyMatrix returns an independent row-by-row copy of m, or nil for nil
// input.
func CopyMatrix(m [][]Distance) [][]Distance {
	if m == nil {
		return nil
	}
	out := make([][]Distance, len(m))
	for i, row := range m {
		out[i] = make([]Distance, len(row))
		copy(out[i], row)
	}
	return out
}

// CopyIntMatrix returns an independent row-by-row copy of m, or nil for
// nil input.
func CopyIntMatrix(m [][]int) [][]int {
	if m == nil {
		return nil
	}
	out := make([][]int, len(m))
	for i, row := range m {
		out[i] = make([]int, len(row))
		copy(out[i], row)
	}
	return out
}
