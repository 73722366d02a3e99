// Package stdag defines the core Graph type for a weighted source-to-sink
// directed acyclic graph (stDAG), along with thread-free, single-owner
// primitives for building, querying, and transiently mutating it.
//
// A Graph is int-indexed (vertices 0..n-1), keeps both forward and reverse
// adjacency as slices supporting O(1) append and O(1) pop-from-end, and
// caches a derived Width (the min-cost-flow edge antichain under unit
// weights) that a caller computes and stores with SetWidth; Freeze does
// not compute it.
//
// A stdag.Graph is single-owner and not safe for concurrent use: callers
// serialize access per graph, and the bridge/dominator finders transiently
// mutate adjacency lists through a scoped guard (see Guard) that guarantees
// restoration on every exit path, including panics.
//
// Errors:
//
//	ErrSelfLoop       - edge (u,u) rejected at construction.
//	ErrParallelEdge   - duplicate (u,v) rejected at construction.
//	ErrCycle          - Freeze detected a cycle.
//	ErrSinkUnreachable - Freeze found a vertex with no path to the sink.
//	InvalidGraph      - the umbrella error kind wrapping the four above.
package stdag
