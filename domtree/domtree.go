package domtree

import (
	"sort"

	"github.com/flowgraph/mfdsafety/stdag"
)

// Build constructs the arc dominator tree over edge subset x, given the
// raw (X-independent) first-dominator table idom covering every edge
// that might be visited while walking a chain from an X member up toward
// the root — in practice, every edge of E.
func Build(idom map[stdag.Edge]Entry, x map[stdag.Edge]bool) *Tree {
	t := &Tree{
		parentX:   make(map[stdag.Edge]Entry, len(x)),
		childrenX: make(map[stdag.Edge][]stdag.Edge, len(x)),
		x:         x,
	}
	for e := range x {
		p := xParent(e, idom, x)
		t.parentX[e] = p
		if !p.IsRoot {
			t.childrenX[p.Edge] = append(t.childrenX[p.Edge], e)
		}
	}
	return t
}

// xParent walks e's raw dominator chain (strictly upward, never
// including e itself) until it finds a member of x, or runs off the
// root.
func xParent(e stdag.Edge, idom map[stdag.Edge]Entry, x map[stdag.Edge]bool) Entry {
	cur := e
	for {
		ent, ok := idom[cur]
		if !ok || ent.IsRoot {
			return RootEntry()
		}
		if x[ent.Edge] {
			return ent
		}
		cur = ent.Edge
	}
}

// IsLeafX reports whether e (a member of X) has no X-children.
func (t *Tree) IsLeafX(e stdag.Edge) bool {
	return len(t.childrenX[e]) == 0
}

// LeavesX returns every X member with no X-children, ordered by (U,V)
// for reproducibility across runs (§5: implementations must pick one
// deterministic iteration order and stick to it).
func (t *Tree) LeavesX() []stdag.Edge {
	var leaves []stdag.Edge
	for e := range t.x {
		if t.IsLeafX(e) {
			leaves = append(leaves, e)
		}
	}
	sort.Slice(leaves, func(i, j int) bool {
		if leaves[i].U != leaves[j].U {
			return leaves[i].U < leaves[j].U
		}
		return leaves[i].V < leaves[j].V
	})
	return leaves
}

// ChildrenX returns e's X-children.
func (t *Tree) ChildrenX(e stdag.Edge) []stdag.Edge {
	return t.childrenX[e]
}

// ParentX returns e's X-parent entry (possibly root).
func (t *Tree) ParentX(e stdag.Edge) Entry {
	return t.parentX[e]
}

// GetDominators returns the chain from e up to root in X-parent order,
// inclusive of e, exclusive of root (§4.D).
func (t *Tree) GetDominators(e stdag.Edge) []stdag.Edge {
	chain := []stdag.Edge{e}
	cur := e
	for {
		p := t.parentX[cur]
		if p.IsRoot {
			return chain
		}
		chain = append(chain, p.Edge)
		cur = p.Edge
	}
}

// FindUnitaryPathX returns the maximal chain starting at e along
// X-parent (dir="up") or X-child (dir="down"), per the resolution
// documented in doc.go: walking up stops before crossing an ancestor
// with more than one X-child; walking down stops at a node with more
// than one X-child.
func (t *Tree) FindUnitaryPathX(e stdag.Edge, dir string) []stdag.Edge {
	if dir == "up" {
		return t.unitaryUp(e)
	}
	return t.unitaryDown(e)
}

func (t *Tree) unitaryUp(e stdag.Edge) []stdag.Edge {
	path := []stdag.Edge{e}
	cur := e
	for {
		p := t.parentX[cur]
		if p.IsRoot {
			return path
		}
		if len(t.childrenX[p.Edge]) != 1 {
			return path
		}
		path = append(path, p.Edge)
		cur = p.Edge
	}
}

func (t *Tree) unitaryDown(e stdag.Edge) []stdag.Edge {
	path := []stdag.Edge{e}
	cur := e
	for {
		children := t.childrenX[cur]
		if len(children) != 1 {
			return path
		}
		cur = children[0]
		path = append(path, cur)
	}
}
