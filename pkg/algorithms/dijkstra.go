package algorithms

import (
	"fmt"

	"github.com/tracestep/tracestep/pkg/graph"
	"github.com/tracestep/tracestep/pkg/trace"
)

// Dijkstra computes shortest distances and paths from source to every
// vertex using greedy minimum-first selection.
//
// Precondition: all edge weights must be >= 0. The engine does not enforce
// this; a caller supplying negative weights gets an unspecified result, not
// an error. Callers wanting a checked boundary should validate before
// calling (the HTTP API does).
//
// An unknown source ID returns the defined no-op result: empty steps,
// empty distances, empty paths. Edges whose endpoints are not in nodes are
// skipped (best-effort degradation, no structured validation).
func Dijkstra(nodes []graph.Node, edges []graph.Edge, source string) *trace.Result {
	res := trace.NewResult()
	if len(nodes) == 0 || !graph.HasNode(nodes, source) {
		return res
	}

	dist := make(map[string]trace.Distance, len(nodes))
	prev := make(map[string]string, len(nodes))
	visited := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		dist[n.ID] = trace.Unreachable()
	}
	dist[source] = 0

	adj := graph.Adjacency(edges)
	queue := newMinQueue()
	queue.Insert(source, 0)

	rec := trace.NewRecorder()
	rec.Record(trace.Step{
		Kind:         trace.StepInit,
		Message:      fmt.Sprintf("start at %s: distance 0, every other vertex ∞", source),
		Distances:    dist,
		Predecessors: prev,
		Visited:      visited,
	})

	for queue.Len() > 0 {
		current, _ := queue.ExtractMin()
		if visited[current] {
			continue
		}
		visited[current] = true

		rec.Record(trace.Step{
			Kind:         trace.StepVisit,
			Message:      fmt.Sprintf("visit %s (distance %s)", current, dist[current]),
			Distances:    dist,
			Predecessors: prev,
			Visited:      visited,
			Current:      current,
		})

		for _, e := range adj[current] {
			old, known := dist[e.To]
			if !known || visited[e.To] {
				continue
			}
			alt := dist[current] + trace.Distance(e.Weight)
			if alt < old {
				dist[e.To] = alt
				prev[e.To] = current
				rec.Record(trace.Step{
					Kind: trace.StepUpdate,
					Message: fmt.Sprintf("relax %s→%s: distance %s via %s (was %s)",
						current, e.To, alt, current, old),
					Distances:    dist,
					Predecessors: prev,
					Visited:      visited,
					Current:      current,
				})
				if queue.Contains(e.To) {
					queue.DecreasePriority(e.To, alt)
				} else {
					queue.Insert(e.To, alt)
				}
			} else if !queue.Contains(e.To) {
				// Not an improvement, but the neighbor still has to be
				// visited eventually; enqueue at its current distance.
				queue.Insert(e.To, old)
			}
		}
	}

	rec.Record(trace.Step{
		Kind:         trace.StepFinish,
		Message:      fmt.Sprintf("done: %d vertices visited", len(visited)),
		Distances:    dist,
		Predecessors: prev,
		Visited:      visited,
	})

	res.Steps = rec.Steps()
	res.Distances = dist
	res.Paths = buildPaths(nodes, dist, prev, source)
	return res
}
