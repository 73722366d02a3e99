package ioformat

import (
	"fmt"
	"io"

	"github.com/flowgraph/mfdsafety/stdag"
)

// EdgePair is one edge of a fix-set sequence in original 0-based
// numbering, excluding the synthetic source/sink (§6).
type EdgePair struct {
	U, V int
}

// Artifact is the ILP-facing preprocessing output per graph (§6): an
// ordered fix-set of edge sequences plus the graph's edge-antichain
// width under unit weights.
type Artifact struct {
	FixSet [][]EdgePair
	Width  int64
}

// EncodeFixSet converts a fix-set of internal stdag.Edge sequences
// (1-indexed, s=0/t=n+1) into original 0-based EdgePair sequences,
// dropping any edge touching the synthetic source or sink.
func EncodeFixSet(fixSet [][]stdag.Edge, n int) [][]EdgePair {
	out := make([][]EdgePair, 0, len(fixSet))
	for _, seq := range fixSet {
		var encoded []EdgePair
		for _, e := range seq {
			if e.U == 0 || e.V == n+1 {
				continue
			}
			encoded = append(encoded, EdgePair{U: e.U - 1, V: e.V - 1})
		}
		out = append(out, encoded)
	}
	return out
}

// WriteArtifact appends a's fix-set and width as a single text record:
// a width line first, then one sequence per line prefixed by its
// length. The safety core persists nothing itself (§6); this is for
// driver/test use.
func WriteArtifact(w io.Writer, a Artifact) error {
	if _, err := fmt.Fprintf(w, "width %d\n", a.Width); err != nil {
		return err
	}
	for _, seq := range a.FixSet {
		if _, err := fmt.Fprintf(w, "seq %d", len(seq)); err != nil {
			return err
		}
		for _, e := range seq {
			if _, err := fmt.Fprintf(w, " %d,%d", e.U, e.V); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
