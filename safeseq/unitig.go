package safeseq

import "github.com/flowgraph/mfdsafety/stdag"

// findUnitigOfArc returns the arc-unitig containing edge e (§4.E Maximal
// variant / Glossary "Core"): l is its left endpoint, r its right endpoint, and
// edges is the unitig's edge sequence in order, found by walking
// backward and forward while both endpoints remain unique-successor /
// unique-predecessor, grounded on
// original_source/safety.py:find_unitig_of_arc.
func findUnitigOfArc(g *stdag.Graph, e stdag.Edge) (l, r int, edges []stdag.Edge) {
	u, v := e.U, e.V
	edges = []stdag.Edge{e}

	for g.HasUniqueOutNeighbor(v) && g.HasUniqueInNeighbor(v) {
		x := g.OutNeighbors(v)[0]
		edges = append(edges, stdag.Edge{U: v, V: x})
		v = x
	}
	for g.HasUniqueInNeighbor(u) && g.HasUniqueOutNeighbor(u) {
		x := g.InNeighbors(u)[0]
		edges = append([]stdag.Edge{{U: x, V: u}}, edges...)
		u = x
	}
	return u, v, edges
}

// isCore reports whether the unitig with endpoints (l,r) is a core
// (Glossary): neither endpoint may be a pure pass-through, i.e. it is
// rejected as a strict middle of some longer unitig.
func isCore(g *stdag.Graph, l, r int) bool {
	rightOK := g.OutDegree(r) < 1 || g.InDegree(r) != 1
	leftOK := g.InDegree(l) < 1 || g.OutDegree(l) != 1
	return rightOK && leftOK
}
