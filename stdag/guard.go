package stdag

// Direction exposes the two adjacency views a direction-parameterized
// algorithm (package bridge) needs: the "forward" view reads/mutates
// out-adjacency, the "reverse" view reads/mutates in-adjacency. This is
// the concrete form of §9's "Polymorphism over direction" design note:
// bridge.AllBridges/FirstBridge are written once against this interface
// and instantiated twice, rather than duplicated per direction.
type Direction interface {
	// Neighbors returns the live adjacency slice for vertex v in this
	// direction. Callers must not retain it past the current call frame
	// since Pop/Push mutate it in place.
	Neighbors(v int) []int

	// Pop removes and returns the last neighbor of v in O(1), mirroring
	// adj_list[v].pop() in the reference implementation. ok is false if
	// v has no neighbors.
	Pop(v int) (x int, ok bool)

	// Push appends x to v's neighbor list in O(1).
	Push(v, x int)
}

// forwardView mutates/reads g.out; it models the graph's natural
// orientation (used when enumerating bridges from an edge's head to t).
type forwardView struct{ g *Graph }

// Forward returns the forward-direction adjacency view of g.
func (g *Graph) Forward() Direction { return forwardView{g} }

func (d forwardView) Neighbors(v int) []int { return d.g.out[v] }

func (d forwardView) Pop(v int) (int, bool) {
	lst := d.g.out[v]
	if len(lst) == 0 {
		return 0, false
	}
	x := lst[len(lst)-1]
	d.g.out[v] = lst[:len(lst)-1]
	return x, true
}

func (d forwardView) Push(v, x int) {
	d.g.out[v] = append(d.g.out[v], x)
}

// reverseView mutates/reads g.in; it models the reverse graph (used when
// enumerating bridges from an edge's tail back to s).
type reverseView struct{ g *Graph }

// Reverse returns the reverse-direction adjacency view of g.
func (g *Graph) Reverse() Direction { return reverseView{g} }

func (d reverseView) Neighbors(v int) []int { return d.g.in[v] }

func (d reverseView) Pop(v int) (int, bool) {
	lst := d.g.in[v]
	if len(lst) == 0 {
		return 0, false
	}
	x := lst[len(lst)-1]
	d.g.in[v] = lst[:len(lst)-1]
	return x, true
}

func (d reverseView) Push(v, x int) {
	d.g.in[v] = append(d.g.in[v], x)
}

// mutation records a single Pop or Push that must be undone.
type mutation struct {
	vertex  int
	popped  int
	didPush bool // true if this records a Push (undone by a Pop), false for a Pop (undone by a Push)
}

// Guard records every Pop performed against a Direction during a scoped
// operation and replays the compensating Push calls in reverse order on
// Restore, so the adjacency list is bit-equal to its pre-call state
// regardless of how the operation exits (including panics and early
// returns). This is the concrete form of §5/§9's "route restoration
// through a scoped guard" design note.
type Guard struct {
	dir   Direction
	stack []mutation
}

// NewGuard returns a Guard wrapping dir. Use via:
//
//	g := NewGuard(dir)
//	defer g.Restore()
//	x, ok := g.Pop(v)
func NewGuard(dir Direction) *Guard {
	return &Guard{dir: dir}
}

// Pop pops v's last neighbor through the guarded direction, recording the
// mutation so Restore can undo it.
func (gd *Guard) Pop(v int) (int, bool) {
	x, ok := gd.dir.Pop(v)
	if !ok {
		return 0, false
	}
	gd.stack = append(gd.stack, mutation{vertex: v, popped: x})
	return x, true
}

// Push appends x to v's neighbor list through the guarded direction and
// records the push as a mutation to be undone by a corresponding Pop on
// Restore (used when bridge enumeration temporarily inserts reversed
// path edges per §4.B step 2).
func (gd *Guard) Push(v, x int) {
	gd.dir.Push(v, x)
	gd.stack = append(gd.stack, mutation{vertex: v, popped: x, didPush: true})
}

// Restore undoes every recorded mutation in reverse order: a recorded Pop
// is undone with a Push of the popped value; a recorded Push is undone
// with a Pop (discarding the result, which must equal the pushed value).
// Restore is idempotent-safe to call via defer even when the guarded
// operation panics or returns early.
func (gd *Guard) Restore() {
	for i := len(gd.stack) - 1; i >= 0; i-- {
		m := gd.stack[i]
		if m.didPush {
			gd.dir.Pop(m.vertex)
		} else {
			gd.dir.Push(m.vertex, m.popped)
		}
	}
	gd.stack = nil
}
