package safeseq

import "github.com/flowgraph/mfdsafety/stdag"

// SafePaths reproduces the reference's weaker pure-unitig heuristic
// (§9 Open Question): it emits accepted core unitigs with no bridge
// extension at all. Its safety as ILP preprocessing is not proved in
// the sources, so it is never the default — callers opt in explicitly
// with WithSafePathsHeuristic.
func SafePaths(g *stdag.Graph, x map[stdag.Edge]bool) [][]stdag.Edge {
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
		sequences = append(sequences, unitig)
	}
	return sequences
}
