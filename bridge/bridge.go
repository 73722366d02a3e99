package bridge

import "github.com/flowgraph/mfdsafety/stdag"

// Pair is a directed edge expressed in the orientation of whichever
// Direction it was discovered in. Callers enumerating bridges in the
// reverse direction are responsible for flipping Pair.From/Pair.To back
// to the graph's forward orientation (§4.E's "flipped to forward
// orientation" step) — bridge itself stays agnostic to that convention.
type Pair struct {
	From, To int
}

// AllBridges returns, in order along the discovered s-to-t path, every
// edge whose removal (within dir) disconnects s from t. Returns
// ErrNotReachable if t is unreachable from s.
//
// dir's adjacency is mutated transiently and restored exactly before
// AllBridges returns on every exit path, including the error path.
func AllBridges(dir stdag.Direction, s, t, n int) ([]Pair, error) {
	path, guard, err := discoverPath(dir, s, t)
	if err != nil {
		return nil, err
	}
	defer guard.Restore()

	return sweepBridges(dir, path, n)
}

// discoverPath implements §4.B step 1-2: pop an arbitrary s-to-t path by
// repeatedly popping the last out-edge at the current vertex, then push
// the reversed path edges in so every path vertex gains an in-edge "from
// behind". Returns the discovered path (s=p0,...,pk=t) and the guard that
// must be Restore()'d by the caller.
func discoverPath(dir stdag.Direction, s, t int) ([]int, *stdag.Guard, error) {
	guard := stdag.NewGuard(dir)
	path := []int{s}
	cur := s
	for cur != t {
		x, ok := guard.Pop(cur)
		if !ok {
			guard.Restore()
			return nil, nil, ErrNotReachable
		}
		path = append(path, x)
		cur = x
	}
	for i := 0; i < len(path)-1; i++ {
		guard.Push(path[i+1], path[i])
	}
	return path, guard, nil
}

// sweepBridges implements §4.B step 3-4: numbered BFS sweeps over dir
// (which now also contains the reversed path edges pushed by
// discoverPath), seeded first at s=path[0] and then, after each sweep,
// at the first still-unreached path vertex — that crossing edge is the
// next bridge. Terminates when t's component becomes non-zero.
func sweepBridges(dir stdag.Direction, path []int, n int) ([]Pair, error) {
	component := make([]int, n)
	s, t := path[0], path[len(path)-1]

	var bridges []Pair
	sweep := 1
	component[s] = sweep
	queue := []int{s}
	firstUnreached := 0

	bfs := func() {
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range dir.Neighbors(u) {
				if component[v] == 0 {
					component[v] = sweep
					queue = append(queue, v)
				}
			}
		}
	}

	bfs()
	for component[t] == 0 {
		for component[path[firstUnreached]] != 0 {
			firstUnreached++
		}
		y, z := path[firstUnreached-1], path[firstUnreached]
		bridges = append(bridges, Pair{From: y, To: z})

		sweep++
		component[z] = sweep
		queue = append(queue, z)
		bfs()
	}

	return bridges, nil
}
