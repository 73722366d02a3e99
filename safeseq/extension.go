package safeseq

import (
	"errors"

	"github.com/flowgraph/mfdsafety/bridge"
	"github.com/flowgraph/mfdsafety/stdag"
)

// leftExtension computes reverse(all_bridges(rev_adj, u, s)) with each
// pair flipped back to forward orientation (§4.E Direct variant). It
// recovers an empty extension from bridge.ErrNotReachable per §7.
func leftExtension(g *stdag.Graph, u int) []stdag.Edge {
	pairs, err := bridge.AllBridges(g.Reverse(), u, g.Source(), g.N())
	if err != nil {
		if errors.Is(err, bridge.ErrNotReachable) {
			return nil
		}
		return nil
	}
	edges := make([]stdag.Edge, len(pairs))
	for i, p := range pairs {
		edges[i] = stdag.Edge{U: p.To, V: p.From}
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return edges
}

// rightExtension computes all_bridges(fwd_adj, v, t) (§4.E Direct
// variant), already in forward orientation and correct left-to-right
// order.
func rightExtension(g *stdag.Graph, v int) []stdag.Edge {
	pairs, err := bridge.AllBridges(g.Forward(), v, g.Sink(), g.N())
	if err != nil {
		if errors.Is(err, bridge.ErrNotReachable) {
			return nil
		}
		return nil
	}
	edges := make([]stdag.Edge, len(pairs))
	for i, p := range pairs {
		edges[i] = stdag.Edge{U: p.From, V: p.To}
	}
	return edges
}
