package stdag

import (
	"errors"
	"fmt"
)

// Sentinel errors for stdag construction and validation.
var (
	// ErrSelfLoop indicates an edge (u,u) was rejected at construction.
	ErrSelfLoop = errors.New("stdag: self-loop not allowed")

	// ErrParallelEdge indicates a duplicate (u,v) edge was rejected at construction.
	ErrParallelEdge = errors.New("stdag: parallel edge not allowed")

	// ErrVertexRange indicates a vertex id outside [0,n) was supplied.
	ErrVertexRange = errors.New("stdag: vertex id out of range")

	// ErrNegativeWeight indicates a negative edge weight was supplied.
	ErrNegativeWeight = errors.New("stdag: edge weight must be non-negative")

	// ErrCycle indicates Freeze detected a cycle during acyclicity validation.
	ErrCycle = errors.New("stdag: graph contains a cycle")

	// ErrSinkUnreachable indicates some vertex cannot reach the sink.
	ErrSinkUnreachable = errors.New("stdag: vertex cannot reach sink")

	// ErrSourceUnreachable indicates the source cannot reach some vertex.
	ErrSourceUnreachable = errors.New("stdag: vertex not reachable from source")

	// ErrFrozen indicates a mutation was attempted after Freeze.
	ErrFrozen = errors.New("stdag: graph already frozen")
)

// InvalidGraph is the fatal error kind wrapping any construction-time
// defect (self-loop, parallel edge, cycle, unreachable vertex). It is the
// concrete Go form of spec §7's InvalidGraph error kind.
type InvalidGraph struct {
	Reason error
}

// Error implements the error interface.
func (e *InvalidGraph) Error() string {
	return fmt.Sprintf("stdag: invalid graph: %v", e.Reason)
}

// Unwrap allows errors.Is(err, stdag.ErrCycle) etc. to see through InvalidGraph.
func (e *InvalidGraph) Unwrap() error {
	return e.Reason
}

func invalidGraph(reason error) *InvalidGraph {
	return &InvalidGraph{Reason: reason}
}
