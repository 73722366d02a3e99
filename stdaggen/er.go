package stdaggen

import (
	"fmt"
	"math/rand"

	"github.com/flowgraph/mfdsafety/stdag"
)

// ER generates an Erdős–Rényi-style random stDAG over n internal
// vertices with independent edge-inclusion probability p, grounded on
// original_source/utils.py:ER_st_DAG: candidate edges (i,j) with i<j
// among the n internal vertices are included independently, then a
// canonical super-source 0 and super-sink n+1 are added per §3 — an
// edge (0,s) for every internal source s weighted by s's outflow, and
// (t,n+1) for every internal sink t weighted by t's inflow.
//
// The trial order is stable (i asc, then j asc, mirroring
// builder.RandomSparse's deterministic Bernoulli-trial order), so a
// fixed rng seed reproduces the same graph.
func ER(n int, p float64, rng *rand.Rand) (*stdag.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("ER: n=%d: %w", n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("ER: p=%.6f: %w", p, ErrInvalidProbability)
	}
	if rng == nil {
		return nil, fmt.Errorf("ER: %w", ErrNeedRandSource)
	}

	total := n + 2
	source, sink := 0, n+1
	g := stdag.New(total, source, sink)

	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			if rng.Float64() <= p {
				if err := g.AddEdge(i, j, 1); err != nil {
					return nil, fmt.Errorf("ER: AddEdge(%d,%d): %w", i, j, err)
				}
			}
		}
	}

	for v := 1; v <= n; v++ {
		if g.InDegree(v) == 0 {
			if err := g.AddEdge(source, v, g.Outflow(v)); err != nil {
				return nil, fmt.Errorf("ER: AddEdge(source,%d): %w", v, err)
			}
		}
	}
	for v := 1; v <= n; v++ {
		if g.OutDegree(v) == 0 {
			if err := g.AddEdge(v, sink, g.Inflow(v)); err != nil {
				return nil, fmt.Errorf("ER: AddEdge(%d,sink): %w", v, err)
			}
		}
	}

	if err := g.Freeze(); err != nil {
		return nil, fmt.Errorf("ER: %w", err)
	}
	return g, nil
}
