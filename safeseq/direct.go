package safeseq

import "github.com/flowgraph/mfdsafety/stdag"

// Direct computes, for every edge e=(u,v) in g's deterministic edge
// order, L ++ [e] ++ R where L is e's left bridge extension and R its
// right bridge extension (§4.E Direct variant). The result is not
// deduplicated: distinct edges may produce overlapping sequences. Use
// is confined to validation (§8 invariant 1 and invariant 5 tests) and
// to ILP-layer subpath constraints that do not require exact
// uniqueness, per §4.E.
func Direct(g *stdag.Graph) [][]stdag.Edge {
	edges := g.Edges()
	sequences := make([][]stdag.Edge, 0, len(edges))
	for _, e := range edges {
		l := leftExtension(g, e.U)
		r := rightExtension(g, e.V)

		seq := make([]stdag.Edge, 0, len(l)+1+len(r))
		seq = append(seq, l...)
		seq = append(seq, e)
		seq = append(seq, r...)
		sequences = append(sequences, seq)
	}
	return sequences
}
