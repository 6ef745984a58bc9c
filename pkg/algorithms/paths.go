package algorithms

import (
	"github.com/tracestep/tracestep/pkg/graph"
	"github.com/tracestep/tracestep/pkg/trace"
)

// walkPath follows predecessor links backward from target until it reaches
// the source, then returns the forward-ordered vertex sequence. ok is
// false when the walk cannot reach the source: a missing predecessor link,
// or a revisited vertex. Predecessor links are plain ID-to-ID entries, so
// a structural cycle in them (possible under zero- or negative-weight edge
// combinations) is caught by the per-walk seen set instead of looping
// forever.
func walkPath(prev map[string]string, source, target string) ([]string, bool) {
	path := make([]string, 0, 4)
	seen := make(map[string]bool)
	current := target
	for {
		if seen[current] {
			return nil, false
		}
		seen[current] = true
		path = append(path, current)
		if current == source {
			break
		}
		p, ok := prev[current]
		if !ok {
			return nil, false
		}
		current = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

// buildPaths reconstructs a path entry for every node whose final distance
// is finite and whose predecessor walk terminates at the source. Vertices
// at ±Inf get no entry: no finite path exists.
func buildPaths(nodes []graph.Node, dist map[string]trace.Distance, prev map[string]string, source string) map[string][]string {
	paths := make(map[string][]string, len(nodes))
	for _, n := range nodes {
		d, ok := dist[n.ID]
		if !ok || !d.Finite() {
			continue
		}
		if path, ok := walkPath(prev, source, n.ID); ok {
			paths[n.ID] = path
		}
	}
	return paths
}
