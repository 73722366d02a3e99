package safeseq

import "github.com/flowgraph/mfdsafety/stdag"

// Maximal assembles the SHOULD-level maximal-safe-sequence variant
// (§4.E): every edge is first widened to the arc-unitig it belongs to
// (findUnitigOfArc), unitigs that are not cores (isCore) are rejected
// outright, and each arc-unitig is visited at most once by marking its
// edges processed. The accepted unitig is then extended on both sides
// with bridge extensions, exactly as in Direct.
func Maximal(g *stdag.Graph, x map[stdag.Edge]bool) [][]stdag.Edge {
	processed := make(map[stdag.Edge]bool, len(x))
	var sequences [][]stdag.Edge

	for _, e := range g.Edges() {
		if !x[e] {
			continue
		}
		if processed[e] {
			continue
		}
		l, r, unitig := findUnitigOfArc(g, e)
		for _, ue := range unitig {
			processed[ue] = true
		}
		if !isCore(g, l, r) {
			continue
		}

		left := leftExtension(g, l)
		right := rightExtension(g, r)

		seq := make([]stdag.Edge, 0, len(left)+len(unitig)+len(right))
		seq = append(seq, left...)
		seq = append(seq, unitig...)
		seq = append(seq, right...)
		sequences = append(sequences, seq)
	}
	return sequences
}
