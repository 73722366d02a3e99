package stdag_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/flowgraph/mfdsafety/stdag"
)

// GraphSuite exercises construction, validation, and the derived query
// operations of stdag.Graph.
type GraphSuite struct {
	suite.Suite
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

// TestSelfLoopRejected verifies AddEdge rejects (u,u) with InvalidGraph
// wrapping ErrSelfLoop.
func (s *GraphSuite) TestSelfLoopRejected() {
	g := stdag.New(3, 0, 2)
	err := g.AddEdge(1, 1, 1)
	s.Require().Error(err)
	s.True(errors.Is(err, stdag.ErrSelfLoop))
	var invalid *stdag.InvalidGraph
	s.True(errors.As(err, &invalid))
}

// TestParallelEdgeRejected verifies a duplicate (u,v) is rejected.
func (s *GraphSuite) TestParallelEdgeRejected() {
	g := stdag.New(3, 0, 2)
	require.NoError(s.T(), g.AddEdge(0, 1, 5))
	err := g.AddEdge(0, 1, 3)
	s.True(errors.Is(err, stdag.ErrParallelEdge))
}

// TestCycleRejectedByFreeze verifies Freeze detects a cycle.
func (s *GraphSuite) TestCycleRejectedByFreeze() {
	g := stdag.New(3, 0, 2)
	require.NoError(s.T(), g.AddEdge(0, 1, 1))
	require.NoError(s.T(), g.AddEdge(1, 2, 1))
	require.NoError(s.T(), g.AddEdge(2, 0, 1))
	err := g.Freeze()
	s.True(errors.Is(err, stdag.ErrCycle))
}

// TestSinkUnreachableRejected verifies Freeze rejects a vertex that
// cannot reach the sink.
func (s *GraphSuite) TestSinkUnreachableRejected() {
	g := stdag.New(4, 0, 3)
	require.NoError(s.T(), g.AddEdge(0, 1, 1))
	require.NoError(s.T(), g.AddEdge(1, 3, 1))
	require.NoError(s.T(), g.AddEdge(0, 2, 1)) // 2 is a dead end, never reaches 3
	err := g.Freeze()
	s.True(errors.Is(err, stdag.ErrSinkUnreachable))
}

// TestSingleEdgeFlowFields verifies S1-style single-edge flow accounting.
func (s *GraphSuite) TestSingleEdgeFlowFields() {
	g := stdag.New(2, 0, 1)
	require.NoError(s.T(), g.AddEdge(0, 1, 5))
	require.NoError(s.T(), g.Freeze())

	s.Equal(int64(5), g.Flow(0, 1))
	s.Equal(int64(5), g.Outflow(0))
	s.Equal(int64(5), g.Inflow(1))
	s.Equal(int64(-5), g.Excess(0))
	s.Equal(int64(5), g.Excess(1))
}

// TestNodesExceptST verifies the s,t-exclusive vertex listing.
func (s *GraphSuite) TestNodesExceptST() {
	g := stdag.New(4, 0, 3)
	require.NoError(s.T(), g.AddEdge(0, 1, 1))
	require.NoError(s.T(), g.AddEdge(1, 2, 1))
	require.NoError(s.T(), g.AddEdge(2, 3, 1))
	require.NoError(s.T(), g.Freeze())

	s.ElementsMatch([]int{1, 2}, g.NodesExceptST())
}

// TestIsZeroFlowEverywhere verifies the all-zero-weight boundary (§8.10).
func (s *GraphSuite) TestIsZeroFlowEverywhere() {
	g := stdag.New(3, 0, 2)
	require.NoError(s.T(), g.AddEdge(0, 1, 0))
	require.NoError(s.T(), g.AddEdge(1, 2, 0))
	require.NoError(s.T(), g.Freeze())
	s.True(g.IsZeroFlowEverywhere())

	g2 := stdag.New(3, 0, 2)
	require.NoError(s.T(), g2.AddEdge(0, 1, 1))
	require.NoError(s.T(), g2.AddEdge(1, 2, 0))
	require.NoError(s.T(), g2.Freeze())
	s.False(g2.IsZeroFlowEverywhere())
}

// TestMutateAfterFreezeRejected verifies AddEdge after Freeze returns ErrFrozen.
func (s *GraphSuite) TestMutateAfterFreezeRejected() {
	g := stdag.New(2, 0, 1)
	require.NoError(s.T(), g.AddEdge(0, 1, 1))
	require.NoError(s.T(), g.Freeze())
	err := g.AddEdge(0, 1, 1)
	s.True(errors.Is(err, stdag.ErrFrozen))
}

// TestEdgeOrderIsInsertionOrder verifies §5's deterministic iteration
// order: Edges() reflects insertion (file) order, not any sorted order.
func (s *GraphSuite) TestEdgeOrderIsInsertionOrder() {
	g := stdag.New(4, 0, 3)
	require.NoError(s.T(), g.AddEdge(0, 2, 1))
	require.NoError(s.T(), g.AddEdge(0, 1, 1))
	require.NoError(s.T(), g.AddEdge(1, 3, 1))
	require.NoError(s.T(), g.AddEdge(2, 3, 1))

	got := g.Edges()
	want := []stdag.Edge{{U: 0, V: 2}, {U: 0, V: 1}, {U: 1, V: 3}, {U: 2, V: 3}}
	s.Equal(want, got)
}
