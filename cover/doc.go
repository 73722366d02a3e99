// Package cover selects the ILP-facing fix-set from a maximal-safe-
// sequence list and the stDAG's edge antichain (§4.G).
//
// For every edge e, the longest safe sequence containing e is its
// representative; weighting the antichain problem by sequence length
// and solving package antichain picks a minimal set of pairwise
// antichain-disjoint sequences whose representatives cover the widest
// possible set of edges — these are legally assignable to distinct ILP
// path slots.
package cover
