package ioformat

import (
	"fmt"

	"github.com/flowgraph/mfdsafety/antichain"
	"github.com/flowgraph/mfdsafety/stdag"
)

// Canonicalize builds a *stdag.Graph from a parsed block, following the
// §3 construction convention (also original_source/utils.py:read_graph):
// original vertex ids are shifted by +1 to make room for a super-source
// at 0 and a super-sink at n+1; every original source s gets a (source,
// s) edge weighted by s's outflow, and every original sink t gets a (t,
// sink) edge weighted by t's inflow. After Freeze it caches the graph's
// unit-weight edge-antichain width with SetWidth.
func Canonicalize(pg ParsedGraph) (*stdag.Graph, error) {
	source, sink := 0, pg.N+1
	g := stdag.New(pg.N+2, source, sink)

	for _, e := range pg.Edges {
		if err := g.AddEdge(e.U+1, e.V+1, e.W); err != nil {
			return nil, fmt.Errorf("ioformat: graph %s: %w", pg.ID, err)
		}
	}

	for v := 1; v <= pg.N; v++ {
		if g.InDegree(v) == 0 {
			if err := g.AddEdge(source, v, g.Outflow(v)); err != nil {
				return nil, fmt.Errorf("ioformat: graph %s: %w", pg.ID, err)
			}
		}
	}
	for v := 1; v <= pg.N; v++ {
		if g.OutDegree(v) == 0 {
			if err := g.AddEdge(v, sink, g.Inflow(v)); err != nil {
				return nil, fmt.Errorf("ioformat: graph %s: %w", pg.ID, err)
			}
		}
	}

	if err := g.Freeze(); err != nil {
		return nil, fmt.Errorf("ioformat: graph %s: %w", pg.ID, err)
	}

	width, _, err := antichain.MaxEdgeAntichain(g, nil, false, antichain.DefaultSolverOptions())
	if err != nil {
		return nil, fmt.Errorf("ioformat: graph %s: %w", pg.ID, err)
	}
	g.SetWidth(width)
	return g, nil
}
