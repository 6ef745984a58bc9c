package algorithms

import (
	"fmt"

	"github.com/tracestep/tracestep/pkg/graph"
	"github.com/tracestep/tracestep/pkg/trace"
)

// FloydWarshall computes the full |V|×|V| shortest-distance matrix, indexed
// by the supplied node order. A vertex on a negative cycle shows a negative
// value on its diagonal cell.
//
// Quirks that are part of the contract, not bugs to fix:
//   - When parallel edges exist between the same ordered pair, the last one
//     in input order overwrites earlier ones in the initial matrix; no
//     minimum is taken at that stage.
//   - Final distances and paths are reported relative to the first supplied
//     node only, and each reported path is the two-element [first, v]
//     placeholder rather than the true intermediate sequence. The next-hop
//     matrix carried in the finish step holds enough information for a
//     consumer to reconstruct real paths.
func FloydWarshall(nodes []graph.Node, edges []graph.Edge) *trace.Result {
	res := trace.NewResult()
	if len(nodes) == 0 {
		return res
	}

	n := len(nodes)
	index := make(map[string]int, n)
	for i, node := range nodes {
		index[node.ID] = i
	}

	dist := make([][]trace.Distance, n)
	next := make([][]int, n)
	for i := range dist {
		dist[i] = make([]trace.Distance, n)
		next[i] = make([]int, n)
		for j := range dist[i] {
			if i == j {
				dist[i][j] = 0
				next[i][j] = j
			} else {
				dist[i][j] = trace.Unreachable()
				next[i][j] = -1
			}
		}
	}
	for _, e := range edges {
		i, okFrom := index[e.From]
		j, okTo := index[e.To]
		if !okFrom || !okTo {
			continue
		}
		// Overwrite, not min: the last parallel edge wins.
		dist[i][j] = trace.Distance(e.Weight)
		next[i][j] = j
	}

	rec := trace.NewRecorder()
	rec.Record(trace.Step{
		Kind:    trace.StepInit,
		Message: fmt.Sprintf("initial matrix for %d vertices: diagonal 0, edges filled, rest ∞", n),
		Matrix:  dist,
	})

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				through := dist[i][k] + dist[k][j]
				if through < dist[i][j] {
					dist[i][j] = through
					next[i][j] = next[i][k]
					rec.Record(trace.Step{
						Kind: trace.StepUpdate,
						Message: fmt.Sprintf("improve %s→%s via %s: %s",
							nodes[i].ID, nodes[j].ID, nodes[k].ID, through),
						Matrix: dist,
						Triple: &trace.Triple{I: i, J: j, K: k},
					})
				}
			}
		}
	}

	rec.Record(trace.Step{
		Kind:    trace.StepFinish,
		Message: "done: matrix complete (negative diagonal marks a vertex on a negative cycle)",
		Matrix:  dist,
		NextHop: next,
	})

	// Reported distances and paths are relative to the first supplied node.
	ref := nodes[0].ID
	for j, node := range nodes {
		res.Distances[node.ID] = dist[0][j]
	}
	for j, node := range nodes {
		d := dist[0][j]
		if !d.Finite() {
			continue
		}
		if j == 0 {
			res.Paths[ref] = []string{ref}
			continue
		}
		res.Paths[node.ID] = []string{ref, node.ID}
	}

	res.Steps = rec.Steps()
	return res
}
