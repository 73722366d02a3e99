// Package antichain computes the maximum ρ-weighted edge antichain of a
// stdag.Graph by reduction to min-cost flow (§4.F).
//
// The reduction builds an auxiliary network over the original vertices
// plus two fresh nodes s', t': every original edge becomes a zero-cost
// arc with lower bound ρ(e), and every original vertex gets a
// zero-lower-bound arc from s' (cost 1) and to t' (cost 0). A min-cost
// flow of this network, with its lower bounds eliminated into a
// super-source/super-sink supply problem (the standard two-auxiliary-
// vertex demand gadget, collapsed algebraically rather than
// materialised as extra nodes), has cost equal to the antichain's
// weight; callers that ask for the antichain itself get it back from a
// two-pass reachability/saturation DFS over the solved network.
//
// The min-cost-flow solver is a Successive-Shortest-Paths
// implementation with Bellman-Ford-seeded node potentials and
// Dijkstra-with-reduced-costs augmentation.
package antichain
