// Package safeseq assembles maximal safe sequences (§4.E): ordered edge
// sequences that must appear, contiguously and in order, in some path of
// every optimal flow decomposition.
//
// Three variants are provided, matching §4.E and §9's Open Question on
// original_source/safety.py's safe_paths lineage:
//
//   - Direct: the direct, non-deduplicated per-edge extension. Confined
//     to validation; never the production default.
//   - Maximal: the unitig-walk maximal variant, built directly on
//     package bridge. SHOULD-level per §4.E, used here for testing
//     agreement with ViaDominators (§8 invariant 5).
//   - ViaDominators: the dominator-tree variant built on package
//     domtree. This is the MUST-have, production entry point.
//
// A fourth, explicitly opt-in function, SafePaths, reproduces the
// weaker pure-unitig heuristic from the original sources; §9 directs
// implementers to keep it behind a flag rather than as a default, since
// its safety as ILP preprocessing is not proven in the sources.
package safeseq
