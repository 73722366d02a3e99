package antichain

import (
	"container/heap"
	"math"
)

const infCapacity = int64(math.MaxInt64 / 4)

// residualGraph is a standard paired-arc residual network: addEdge
// always appends a forward/backward pair, so arc i's twin is i^1.
type residualGraph struct {
	n     int
	adj   [][]int
	to    []int
	cap   []int64
	cost  []int64
}

func newResidualGraph(n int) *residualGraph {
	return &residualGraph{n: n, adj: make([][]int, n)}
}

func (g *residualGraph) addEdge(u, v int, cap, cost int64) int {
	fwd := len(g.to)
	g.to = append(g.to, v)
	g.cap = append(g.cap, cap)
	g.cost = append(g.cost, cost)
	g.adj[u] = append(g.adj[u], fwd)

	bwd := len(g.to)
	g.to = append(g.to, u)
	g.cap = append(g.cap, 0)
	g.cost = append(g.cost, -cost)
	g.adj[v] = append(g.adj[v], bwd)

	return fwd
}

// usedCapacity reports how much flow has actually crossed the forward
// arc returned by addEdge (its residual capacity having shrunk from the
// original).
func (g *residualGraph) usedCapacity(fwdArc int, originalCap int64) int64 {
	return originalCap - g.cap[fwdArc]
}

// bellmanFord seeds node potentials from s using the original edge
// costs (§9 "Recursion depth" — this and the Dijkstra pass below both
// use explicit loops/queues, never recursion).
func (g *residualGraph) bellmanFord(s int) []int64 {
	const inf = int64(math.MaxInt64 / 4)
	dist := make([]int64, g.n)
	for i := range dist {
		dist[i] = inf
	}
	dist[s] = 0

	for i := 0; i < g.n-1; i++ {
		changed := false
		for u := 0; u < g.n; u++ {
			if dist[u] == inf {
				continue
			}
			for _, arc := range g.adj[u] {
				if g.cap[arc] <= 0 {
					continue
				}
				v := g.to[arc]
				nd := dist[u] + g.cost[arc]
				if nd < dist[v] {
					dist[v] = nd
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
	return dist
}

type heapItem struct {
	node int
	dist int64
}

type minHeap []heapItem

func (h minHeap) Len() int            { return len(h) }
func (h minHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h minHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x interface{}) { *h = append(*h, x.(heapItem)) }
func (h *minHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// dijkstraReduced runs Dijkstra over reduced costs c'(u,v) = c(u,v) +
// potential[u] - potential[v], which are non-negative whenever
// potential is a valid shortest-path potential. Returns the distances
// in reduced costs (the caller adds them to potential) and, for each
// vertex, the arc used to reach it.
func (g *residualGraph) dijkstraReduced(s int, potential []int64) (dist []int64, viaArc []int) {
	const inf = int64(math.MaxInt64 / 4)
	dist = make([]int64, g.n)
	viaArc = make([]int, g.n)
	visited := make([]bool, g.n)
	for i := range dist {
		dist[i] = inf
		viaArc[i] = -1
	}
	dist[s] = 0

	h := &minHeap{{node: s, dist: 0}}
	for h.Len() > 0 {
		item := heap.Pop(h).(heapItem)
		u := item.node
		if visited[u] {
			continue
		}
		visited[u] = true

		for _, arc := range g.adj[u] {
			if g.cap[arc] <= 0 {
				continue
			}
			v := g.to[arc]
			reduced := g.cost[arc] + potential[u] - potential[v]
			nd := dist[u] + reduced
			if nd < dist[v] {
				dist[v] = nd
				viaArc[v] = arc
				heap.Push(h, heapItem{node: v, dist: nd})
			}
		}
	}
	return dist, viaArc
}

// minCostFlow pushes up to maxFlow units from s to t at minimum total
// cost using Successive Shortest Paths (§4.F step 2). Returns
// ErrInfeasible if fewer than maxFlow units can be pushed.
func (g *residualGraph) minCostFlow(s, t int, maxFlow int64, opts SolverOptions) (flow, cost int64, err error) {
	const inf = int64(math.MaxInt64 / 4)
	potential := g.bellmanFord(s)

	iterations := 0
	for flow < maxFlow {
		if opts.MaxIterations > 0 && iterations >= opts.MaxIterations {
			break
		}
		iterations++

		dist, viaArc := g.dijkstraReduced(s, potential)
		if dist[t] >= inf {
			break
		}
		for v := 0; v < g.n; v++ {
			if dist[v] < inf {
				potential[v] += dist[v]
			}
		}

		push := maxFlow - flow
		for v := t; v != s; {
			arc := viaArc[v]
			if g.cap[arc] < push {
				push = g.cap[arc]
			}
			v = g.to[arc^1]
		}

		for v := t; v != s; {
			arc := viaArc[v]
			g.cap[arc] -= push
			g.cap[arc^1] += push
			cost += push * g.cost[arc]
			v = g.to[arc^1]
		}
		flow += push
	}

	if flow < maxFlow {
		return flow, cost, ErrInfeasible
	}
	return flow, cost, nil
}
