package safeseq

import (
	"github.com/flowgraph/mfdsafety/bridge"
	"github.com/flowgraph/mfdsafety/domtree"
	"github.com/flowgraph/mfdsafety/stdag"
)

// ViaDominators assembles maximal safe sequences via the arc
// dominator trees (§4.E dominator-tree variant). This is the MUST-have,
// production entry point. Emitted sequences can share edges: each one
// carries its full dominator chains, so on §8 S4's graph (0,1) and (3,4)
// appear in both emitted sequences.
func ViaDominators(g *stdag.Graph, x map[stdag.Edge]bool) [][]stdag.Edge {
	sIdom, tIdom := buildIdomTables(g)
	ts := domtree.Build(sIdom, x)
	tt := domtree.Build(tIdom, x)

	var sequences [][]stdag.Edge
	for _, leaf := range ts.LeavesX() {
		us := ts.FindUnitaryPathX(leaf, "up")
		ut := tt.FindUnitaryPathX(leaf, "down")
		if !isCoreViaDominators(tt, us, ut) {
			continue
		}

		tail := ts.GetDominators(leaf)
		reversed := make([]stdag.Edge, len(tail))
		for i, e := range tail {
			reversed[len(tail)-1-i] = e
		}
		head := tt.GetDominators(leaf)

		seq := make([]stdag.Edge, 0, len(reversed)+len(head)-1)
		seq = append(seq, reversed...)
		seq = append(seq, head[1:]...)
		sequences = append(sequences, seq)
	}
	return sequences
}

// isCoreViaDominators implements §4.E step 4's acceptance test for a
// T_s X-leaf: U_t must be no longer than U_s, pointwise-agree with U_s
// over U_t's length, and U_t's last element must be a T_t-leaf-in-X.
func isCoreViaDominators(tt *domtree.Tree, us, ut []stdag.Edge) bool {
	if len(ut) > len(us) {
		return false
	}
	for i := range ut {
		if ut[i] != us[i] {
			return false
		}
	}
	return tt.IsLeafX(ut[len(ut)-1])
}

// buildIdomTables computes the raw, X-independent first-dominator entry
// for every edge of g in both directions (§4.D step 1): sIdom[e] via
// first_bridge(rev_adj, tail(e), s) flipped to forward orientation, and
// tIdom[e] via first_bridge(fwd_adj, head(e), t).
func buildIdomTables(g *stdag.Graph) (sIdom, tIdom map[stdag.Edge]domtree.Entry) {
	edges := g.Edges()
	sIdom = make(map[stdag.Edge]domtree.Entry, len(edges))
	tIdom = make(map[stdag.Edge]domtree.Entry, len(edges))

	for _, e := range edges {
		p, ok, err := bridge.FirstBridge(g.Reverse(), e.U, g.Source(), g.N())
		if err != nil || !ok {
			sIdom[e] = domtree.RootEntry()
		} else {
			sIdom[e] = domtree.EdgeEntry(stdag.Edge{U: p.To, V: p.From})
		}

		q, ok, err := bridge.FirstBridge(g.Forward(), e.V, g.Sink(), g.N())
		if err != nil || !ok {
			tIdom[e] = domtree.RootEntry()
		} else {
			tIdom[e] = domtree.EdgeEntry(stdag.Edge{U: q.From, V: q.To})
		}
	}
	return sIdom, tIdom
}
