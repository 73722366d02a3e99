package domtree_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/flowgraph/mfdsafety/domtree"
	"github.com/flowgraph/mfdsafety/stdag"
)

// DomTreeSuite exercises Build/GetDominators/FindUnitaryPathX against a
// small hand-built dominator chain.
type DomTreeSuite struct {
	suite.Suite
}

func TestDomTreeSuite(t *testing.T) {
	suite.Run(t, new(DomTreeSuite))
}

// e(u,v) is a shorthand edge constructor local to these tests.
func e(u, v int) stdag.Edge { return stdag.Edge{U: u, V: v} }

// TestLinearChainAllInX builds a straight-line dominator chain
// e1 <- e2 <- e3 <- e4 (e4's parent root) with X = all edges, and
// verifies GetDominators / FindUnitaryPathX walk the full chain.
func (s *DomTreeSuite) TestLinearChainAllInX() {
	e1, e2, e3, e4 := e(0, 1), e(1, 2), e(2, 3), e(3, 4)
	idom := map[stdag.Edge]domtree.Entry{
		e1: domtree.EdgeEntry(e2),
		e2: domtree.EdgeEntry(e3),
		e3: domtree.EdgeEntry(e4),
		e4: domtree.RootEntry(),
	}
	x := map[stdag.Edge]bool{e1: true, e2: true, e3: true, e4: true}
	tree := domtree.Build(idom, x)

	s.True(tree.IsLeafX(e1))
	s.False(tree.IsLeafX(e2))
	s.Equal([]stdag.Edge{e1, e2, e3, e4}, tree.GetDominators(e1))
	s.Equal([]stdag.Edge{e1, e2, e3, e4}, tree.FindUnitaryPathX(e1, "up"))
	s.Equal([]stdag.Edge{e4, e3, e2, e1}, tree.FindUnitaryPathX(e4, "down"))
}

// TestSkipsNonXAncestors verifies that an edge not in X is skipped over
// when computing X-parent (the chain walk continues past it).
func (s *DomTreeSuite) TestSkipsNonXAncestors() {
	e1, mid, e3 := e(0, 1), e(1, 2), e(2, 3)
	idom := map[stdag.Edge]domtree.Entry{
		e1:  domtree.EdgeEntry(mid),
		mid: domtree.EdgeEntry(e3),
		e3:  domtree.RootEntry(),
	}
	x := map[stdag.Edge]bool{e1: true, e3: true} // mid excluded from X
	tree := domtree.Build(idom, x)

	s.Equal(domtree.EdgeEntry(e3), tree.ParentX(e1))
	s.Equal([]stdag.Edge{e1}, tree.ChildrenX(e3))
}

// TestBranchStopsUnitaryWalk verifies that a node with two X-children
// halts an upward walk from either child, and a downward walk from the
// shared parent.
func (s *DomTreeSuite) TestBranchStopsUnitaryWalk() {
	branch, left, right := e(0, 1), e(1, 2), e(1, 3)
	idom := map[stdag.Edge]domtree.Entry{
		branch: domtree.RootEntry(),
		left:   domtree.EdgeEntry(branch),
		right:  domtree.EdgeEntry(branch),
	}
	x := map[stdag.Edge]bool{branch: true, left: true, right: true}
	tree := domtree.Build(idom, x)

	// left's upward walk must stop at itself: branch has 2 children.
	s.Equal([]stdag.Edge{left}, tree.FindUnitaryPathX(left, "up"))
	// branch's downward walk must stop at itself for the same reason.
	s.Equal([]stdag.Edge{branch}, tree.FindUnitaryPathX(branch, "down"))
}
