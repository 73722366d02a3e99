// Package domtree builds arc dominator trees (§4.D): given per-edge
// first-dominator tables (computed by package bridge, one call per edge)
// and a chosen edge subset X, it derives the rooted forest over X whose
// parent-of relation is "nearest ancestor, along the raw dominator
// chain, that is itself a member of X" — falling back to a synthetic
// root when no such ancestor exists.
//
// Construction is O(|E| + |X|*d_max) where d_max is the maximum X-depth,
// using an explicit stack/loop rather than recursion (§9 "Recursion
// depth" design note); no link-cut-tree specialisation is implemented
// (§4.D allows but does not require O(|E| log |E|)).
//
// Open question resolved (§9): find_unitary_path_X's "every node has
// exactly one X-child (resp. X-parent)" condition is implemented
// symmetrically with the arc-unitig walk of package safeseq: walking up
// stops before crossing an ancestor that has more than one X-child (a
// branch point), and walking down stops at a node that itself has more
// than one X-child (the merge point is excluded, not included). This
// choice is covered by TestLinearChainAllInX and
// TestBranchStopsUnitaryWalk and should be re-examined
// against upstream dominators.py if it ever becomes available, per §9.
package domtree
