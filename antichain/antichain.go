package antichain

import "github.com/flowgraph/mfdsafety/stdag"

// Weight is a caller-supplied edge weighting ρ : E → ℕ₀ used to rank
// antichains by Σ ρ(e). A nil Weight is treated as the unit weighting
// (every edge contributes 1), giving the stDAG's width.
type Weight func(stdag.Edge) int64

// logicalEdge is one arc of the auxiliary network G' built in step 1 of
// §4.F, tracked alongside its lower bound (demand) and recovered flow so
// the antichain-recovery DFS (step 4) can run over it directly.
type logicalEdge struct {
	u, v   int
	demand int64
	flow   int64
}

// MaxEdgeAntichain computes the maximum ρ-weighted edge antichain of g
// by reduction to min-cost flow (§4.F). It returns the antichain's
// total weight and, when returnAntichain is true, the antichain itself.
func MaxEdgeAntichain(g *stdag.Graph, rho Weight, returnAntichain bool, opts SolverOptions) (int64, []stdag.Edge, error) {
	if rho == nil {
		rho = func(stdag.Edge) int64 { return 1 }
	}

	n := g.N()
	sPrime, tPrime := n, n+1
	ssNode, ttNode := n+2, n+3
	total := n + 4

	net := newResidualGraph(total)
	excess := make([]int64, total)
	var logical []logicalEdge
	arcOf := make(map[int]int) // index into logical -> forward residual arc

	addLogical := func(u, v int, lower, cost int64) {
		arc := net.addEdge(u, v, infCapacity, cost)
		idx := len(logical)
		logical = append(logical, logicalEdge{u: u, v: v, demand: lower})
		arcOf[idx] = arc
		excess[v] += lower
		excess[u] -= lower
	}

	for _, e := range g.Edges() {
		addLogical(e.U, e.V, rho(e), 0)
	}
	for v := 0; v < n; v++ {
		addLogical(sPrime, v, 0, 1)
		addLogical(v, tPrime, 0, 0)
	}

	net.addEdge(tPrime, sPrime, infCapacity, 0) // circulation closure

	var totalSupply int64
	for w := 0; w < total; w++ {
		if excess[w] > 0 {
			net.addEdge(ssNode, w, excess[w], 0)
			totalSupply += excess[w]
		} else if excess[w] < 0 {
			net.addEdge(w, ttNode, -excess[w], 0)
		}
	}

	flow, cost, err := net.minCostFlow(ssNode, ttNode, totalSupply, opts)
	if err != nil || flow < totalSupply {
		return 0, nil, ErrInfeasible
	}

	if !returnAntichain {
		return cost, nil, nil
	}

	for idx, arc := range arcOf {
		logical[idx].flow = logical[idx].demand + net.usedCapacity(arc, infCapacity)
	}

	out := make([][]logicalEdge, total)
	in := make([][]logicalEdge, total)
	for _, le := range logical {
		out[le.u] = append(out[le.u], le)
		in[le.v] = append(in[le.v], le)
	}

	visited := make([]int, total) // 0 unvisited, 1 reachable, 2 saturated
	markReachable(sPrime, out, in, visited)
	var antichainLogical []logicalEdge
	markSaturating(sPrime, out, in, visited, &antichainLogical)

	antichain := make([]stdag.Edge, 0, len(antichainLogical))
	for _, le := range antichainLogical {
		if le.u < n && le.v < n {
			antichain = append(antichain, stdag.Edge{U: le.u, V: le.v})
		}
	}
	return cost, antichain, nil
}

// markReachable is the first DFS pass of §4.F step 4: mark every vertex
// reachable from s' following arcs with flow strictly above demand, plus
// all vertices reachable by traversing logical in-edges unconditionally.
// Uses an explicit stack (§9 "Recursion depth").
func markReachable(start int, out, in [][]logicalEdge, visited []int) {
	stack := []int{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[u] != 0 {
			continue
		}
		visited[u] = 1
		for _, le := range out[u] {
			if le.flow > le.demand && visited[le.v] == 0 {
				stack = append(stack, le.v)
			}
		}
		for _, le := range in[u] {
			if visited[le.u] == 0 {
				stack = append(stack, le.u)
			}
		}
	}
}

// markSaturating is the second DFS pass of §4.F step 4: from the
// reachable set, follow the same rule and collect saturating arcs
// (flow == demand, demand >= 1, far endpoint still unmarked) as
// antichain members. Uses an explicit stack (§9 "Recursion depth").
func markSaturating(start int, out, in [][]logicalEdge, visited []int, antichain *[]logicalEdge) {
	stack := []int{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[u] != 1 {
			continue
		}
		visited[u] = 2
		for _, le := range out[u] {
			if le.flow > le.demand {
				if visited[le.v] == 1 {
					stack = append(stack, le.v)
				}
			} else if le.flow == le.demand && le.demand >= 1 && visited[le.v] == 0 {
				*antichain = append(*antichain, le)
			}
		}
		for _, le := range in[u] {
			if visited[le.u] == 1 {
				stack = append(stack, le.u)
			}
		}
	}
}
