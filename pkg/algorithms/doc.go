// Package algorithms implements the three shortest-path algorithms of the
// trace engine: Dijkstra (single source, non-negative weights), Bellman-Ford
// (single source, tolerates negative weights and detects negative cycles),
// and Floyd-Warshall (all pairs).
//
// All three are pure functions over a caller-owned node and edge list; they
// never mutate their input and return a fully materialized trace.Result on
// every call. Failure modes degrade to data-level sentinels (empty results,
// ±Inf distances) rather than errors; see each function's contract.
//
// Determinism: for a fixed input node and edge ordering, repeated
// invocations produce identical results step for step. Edge iteration
// follows input order everywhere, and priority-queue ties break by
// insertion order.
package algorithms
