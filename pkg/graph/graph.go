// Package graph defines the input model shared by every algorithm: a flat
// list of nodes and a flat list of directed weighted edges. The engine
// treats both as read-only for the duration of a run and never mutates
// caller-owned records.
package graph

// Node is a vertex in the graph. Only ID is load-bearing for the
// algorithms; Label exists for presentation layers.
type Node struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// Edge is a directed weighted edge. Presence of (From, To) implies nothing
// about (To, From). Parallel edges between the same ordered pair are
// permitted and never deduplicated.
type Edge struct {
	From   string  `json:"from" yaml:"from"`
	To     string  `json:"to" yaml:"to"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// HasNode reports whether id appears in nodes.
func HasNode(nodes []Node, id string) bool {
	for _, n := range nodes {
		if n.ID == id {
			return true
		}
	}
	return false
}

// Adjacency builds an outgoing-edge index keyed by source node ID.
// Edge order within each bucket follows the input edge order, which keeps
// neighbor iteration deterministic across runs.
func Adjacency(edges []Edge) map[string][]Edge {
	adj := make(map[string][]Edge, len(edges))
	for _, e := range edges {
		adj[e.From] = append(adj[e.From], e)
	}
	return adj
}
