package cover

import (
	"github.com/flowgraph/mfdsafety/antichain"
	"github.com/flowgraph/mfdsafety/stdag"
)

// FixSet computes the ILP-facing preprocessing artifact (§4.G): for
// every edge e, record the index of the longest sequence in sequences
// that contains e (ties broken by first occurrence), then compute the
// antichain weighted by ρ(e) := len(sequences[longest[e]]), and emit
// one sequence per antichain edge.
func FixSet(g *stdag.Graph, sequences [][]stdag.Edge, opts antichain.SolverOptions) ([][]stdag.Edge, error) {
	longest := longestSequenceIndex(sequences)

	rho := func(e stdag.Edge) int64 {
		idx, ok := longest[e]
		if !ok {
			return 1
		}
		return int64(len(sequences[idx]))
	}

	_, antichainEdges, err := antichain.MaxEdgeAntichain(g, rho, true, opts)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool, len(antichainEdges))
	var fixSet [][]stdag.Edge
	for _, e := range antichainEdges {
		idx, ok := longest[e]
		if !ok || seen[idx] {
			continue
		}
		seen[idx] = true
		fixSet = append(fixSet, sequences[idx])
	}
	return fixSet, nil
}

// longestSequenceIndex records, for every edge appearing in sequences,
// the index of the longest sequence containing it; ties keep the first
// occurrence (§4.G step 1).
func longestSequenceIndex(sequences [][]stdag.Edge) map[stdag.Edge]int {
	longest := make(map[stdag.Edge]int)
	for idx, seq := range sequences {
		for _, e := range seq {
			if cur, ok := longest[e]; !ok || len(sequences[idx]) > len(sequences[cur]) {
				longest[e] = idx
			}
		}
	}
	return longest
}
