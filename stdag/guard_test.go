package stdag_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/flowgraph/mfdsafety/stdag"
)

// GuardSuite verifies the scoped-restoration contract of §5/§9: any
// sequence of Pop/Push performed through a Guard leaves the underlying
// adjacency bit-equal to its pre-call snapshot once Restore has run.
type GuardSuite struct {
	suite.Suite
}

func TestGuardSuite(t *testing.T) {
	suite.Run(t, new(GuardSuite))
}

func snapshotOut(g *stdag.Graph, n int) [][]int {
	out := make([][]int, n)
	for v := 0; v < n; v++ {
		out[v] = append([]int(nil), g.OutNeighbors(v)...)
	}
	return out
}

// TestRestoreAfterArbitraryPathWalk mimics §4.B step 1-2-5: pop a path
// of edges from out-adjacency, push reversed edges in, then restore, and
// verify bit-equality with the snapshot.
func (s *GuardSuite) TestRestoreAfterArbitraryPathWalk() {
	g := stdag.New(5, 0, 4)
	require.NoError(s.T(), g.AddEdge(0, 1, 1))
	require.NoError(s.T(), g.AddEdge(1, 2, 1))
	require.NoError(s.T(), g.AddEdge(2, 3, 1))
	require.NoError(s.T(), g.AddEdge(3, 4, 1))
	require.NoError(s.T(), g.Freeze())

	before := snapshotOut(g, 5)

	fwd := g.Forward()
	guard := stdag.NewGuard(fwd)
	// discover path 0->1->2->3->4 by popping
	path := []int{0}
	cur := 0
	for cur != 4 {
		x, ok := guard.Pop(cur)
		s.Require().True(ok)
		path = append(path, x)
		cur = x
	}
	// push reversed path edges in (step 2 of §4.B)
	for i := 0; i < len(path)-1; i++ {
		guard.Push(path[i+1], path[i])
	}

	guard.Restore()

	after := snapshotOut(g, 5)
	s.Equal(before, after)
}

// TestRestoreOnRandomGraphs fuzzes Pop/Push sequences on a random graph
// and checks restoration holds for any call pattern (§8 invariant 3).
func (s *GuardSuite) TestRestoreOnRandomGraphs() {
	rng := rand.New(rand.NewSource(73))
	n := 10
	g := stdag.New(n, 0, n-1)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < 0.3 {
				require.NoError(s.T(), g.AddEdge(i, j, 1))
			}
		}
	}

	before := snapshotOut(g, n)
	fwd := g.Forward()
	guard := stdag.NewGuard(fwd)

	// Pop a random prefix of neighbors off a random subset of vertices,
	// then push one synthetic edge into an unrelated vertex (mirroring
	// the mixed pop/push sequence bridge enumeration performs), and
	// restore. The exact sequence doesn't matter: Restore must always
	// bring the adjacency back to its pre-call snapshot.
	for v := 0; v < n; v++ {
		pops := rng.Intn(len(fwd.Neighbors(v)) + 1)
		for i := 0; i < pops; i++ {
			if _, ok := guard.Pop(v); !ok {
				break
			}
		}
	}
	guard.Push(0, n-1)

	guard.Restore()

	after := snapshotOut(g, n)
	s.Equal(before, after)
}
