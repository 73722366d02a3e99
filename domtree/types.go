package domtree

import "github.com/flowgraph/mfdsafety/stdag"

// Entry names the X-independent, raw first-dominator of an edge: either
// another edge, or the synthetic root (meaning "dominated directly by s
// or t, with no intervening edge").
type Entry struct {
	Edge   stdag.Edge
	IsRoot bool
}

// RootEntry is the canonical root Entry value.
func RootEntry() Entry { return Entry{IsRoot: true} }

// EdgeEntry wraps e as a non-root Entry.
func EdgeEntry(e stdag.Edge) Entry { return Entry{Edge: e} }

// Tree is a rooted forest over X ∪ {root} for one direction (§4.D).
type Tree struct {
	parentX   map[stdag.Edge]Entry
	childrenX map[stdag.Edge][]stdag.Edge
	x         map[stdag.Edge]bool
}
