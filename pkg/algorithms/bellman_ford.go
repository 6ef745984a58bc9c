package algorithms

import (
	"fmt"

	"github.com/tracestep/tracestep/pkg/graph"
	"github.com/tracestep/tracestep/pkg/trace"
)

// BellmanFord computes shortest distances and paths from source, tolerating
// negative edge weights. Vertices on or downstream of a negative cycle
// reachable from the source end at distance -Inf with no path entry.
//
// An unknown source ID returns the no-op result (empty steps, distances,
// paths), the same policy as Dijkstra. Edges with endpoints not in nodes
// are skipped.
func BellmanFord(nodes []graph.Node, edges []graph.Edge, source string) *trace.Result {
	res := trace.NewResult()
	if len(nodes) == 0 || !graph.HasNode(nodes, source) {
		return res
	}

	dist := make(map[string]trace.Distance, len(nodes))
	prev := make(map[string]string, len(nodes))
	for _, n := range nodes {
		dist[n.ID] = trace.Unreachable()
	}
	dist[source] = 0

	rec := trace.NewRecorder()
	rec.Record(trace.Step{
		Kind:         trace.StepInit,
		Message:      fmt.Sprintf("start at %s: distance 0, every other vertex ∞", source),
		Distances:    dist,
		Predecessors: prev,
	})

	// Up to |V|-1 full passes over the edge list, in input order.
	for pass := 1; pass <= len(nodes)-1; pass++ {
		improved := false
		for _, e := range edges {
			du, okFrom := dist[e.From]
			old, okTo := dist[e.To]
			if !okFrom || !okTo {
				continue
			}
			alt := du + trace.Distance(e.Weight)
			if alt < old {
				dist[e.To] = alt
				prev[e.To] = e.From
				improved = true
				rec.Record(trace.Step{
					Kind: trace.StepUpdate,
					Message: fmt.Sprintf("iteration %d: relax %s→%s to %s (was %s)",
						pass, e.From, e.To, alt, old),
					Distances:    dist,
					Predecessors: prev,
					Current:      e.To,
				})
			}
		}
		if !improved {
			rec.Record(trace.Step{
				Kind:         trace.StepVisit,
				Message:      fmt.Sprintf("iteration %d: no improvements, stopping early", pass),
				Distances:    dist,
				Predecessors: prev,
			})
			break
		}
	}

	// One extra pass: any edge that still relaxes identifies its target as
	// reachable from a negative cycle.
	frontier := make([]string, 0)
	flagged := make(map[string]bool)
	for _, e := range edges {
		du, okFrom := dist[e.From]
		old, okTo := dist[e.To]
		if !okFrom || !okTo {
			continue
		}
		if du+trace.Distance(e.Weight) < old {
			rec.Record(trace.Step{
				Kind: trace.StepUpdate,
				Message: fmt.Sprintf("negative cycle: edge %s→%s still relaxes after %d iterations",
					e.From, e.To, len(nodes)-1),
				Distances:    dist,
				Predecessors: prev,
				Current:      e.To,
			})
			if !flagged[e.To] {
				flagged[e.To] = true
				frontier = append(frontier, e.To)
			}
		}
	}

	// Everything reachable from a flagged vertex is unbounded below, even
	// vertices not on the cycle itself. Traverse outward, marking each
	// reached vertex once.
	adj := graph.Adjacency(edges)
	marked := make(map[string]bool)
	affected := 0
	for len(frontier) > 0 {
		v := frontier[0]
		frontier = frontier[1:]
		if marked[v] {
			continue
		}
		marked[v] = true
		dist[v] = trace.NegativeInf()
		delete(prev, v)
		affected++
		for _, e := range adj[v] {
			if _, ok := dist[e.To]; ok && !marked[e.To] {
				frontier = append(frontier, e.To)
			}
		}
	}

	summary := "done: no negative cycle reachable from source"
	if affected > 0 {
		summary = fmt.Sprintf("done: negative cycle found, %d vertices unbounded below", affected)
	}
	rec.Record(trace.Step{
		Kind:         trace.StepFinish,
		Message:      summary,
		Distances:    dist,
		Predecessors: prev,
	})

	res.Steps = rec.Steps()
	res.Distances = dist
	res.Paths = buildPaths(nodes, dist, prev, source)
	return res
}
