// Package bridge finds edge bridges: edges whose removal disconnects a
// given source from a given sink within a direction-parameterized
// adjacency view (stdag.Direction).
//
// AllBridges returns every bridge between s and t, in order along the
// s-to-t path they were discovered on. FirstBridge stops at the first one
// (the immediate edge-dominator), and is the building block package
// domtree uses to construct arc dominator trees.
//
// Both are instantiated once for the forward direction (stdag.Graph.Forward)
// and once for the reverse direction (stdag.Graph.Reverse) — see §9's
// "Polymorphism over direction" design note — rather than duplicated per
// direction.
//
// Algorithm (§4.B):
//
//  1. Discover an arbitrary s-to-t path by repeatedly popping the last
//     out-edge at the current vertex (O(1) per step).
//  2. Add the path's edges reversed, so every path vertex has an
//     in-edge "from behind".
//  3. Run numbered BFS sweeps seeded at s, then at the first
//     still-unreached path vertex, recording the bridge edge crossing
//     into it, until t is reached.
//  4. Restore the adjacency exactly via a stdag.Guard, including on the
//     NotReachable error path.
//
// Complexity: O(|V| + |E|) per call.
package bridge
