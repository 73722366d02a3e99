package cover_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flowgraph/mfdsafety/antichain"
	"github.com/flowgraph/mfdsafety/cover"
	"github.com/flowgraph/mfdsafety/safeseq"
	"github.com/flowgraph/mfdsafety/stdag"
)

func e(u, v int) stdag.Edge { return stdag.Edge{U: u, V: v} }

// TestS1LinearChainFixSet covers §8 S1: a linear chain's fix-set is the
// single safe sequence spanning the whole graph.
func TestS1LinearChainFixSet(t *testing.T) {
	g := stdag.New(4, 0, 3)
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(1, 2, 5))
	require.NoError(t, g.AddEdge(2, 3, 5))
	require.NoError(t, g.Freeze())

	x := make(map[stdag.Edge]bool)
	for _, edge := range g.Edges() {
		x[edge] = true
	}
	sequences := safeseq.ViaDominators(g, x)

	fixSet, err := cover.FixSet(g, sequences, antichain.DefaultSolverOptions())
	require.NoError(t, err)
	require.Len(t, fixSet, 1)
	require.Equal(t, []stdag.Edge{e(0, 1), e(1, 2), e(2, 3)}, fixSet[0])
}
