package bridge

import "github.com/flowgraph/mfdsafety/stdag"

// FirstBridge is identical to AllBridges except it halts after the first
// bridge is identified (§4.C): the immediate edge-dominator of t along s.
// Returns (Pair{}, false, nil) if no bridge exists (the first sweep
// already reaches t), or (Pair{}, false, ErrNotReachable) if t is
// unreachable from s.
func FirstBridge(dir stdag.Direction, s, t, n int) (Pair, bool, error) {
	path, guard, err := discoverPath(dir, s, t)
	if err != nil {
		return Pair{}, false, err
	}
	defer guard.Restore()

	component := make([]int, n)
	component[s] = 1
	queue := []int{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range dir.Neighbors(u) {
			if component[v] == 0 {
				component[v] = 1
				queue = append(queue, v)
			}
		}
	}

	if component[t] != 0 {
		return Pair{}, false, nil
	}

	firstUnreached := 0
	for component[path[firstUnreached]] != 0 {
		firstUnreached++
	}
	return Pair{From: path[firstUnreached-1], To: path[firstUnreached]}, true, nil
}
