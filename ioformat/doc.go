// Package ioformat implements the safety engine's pinned external
// interfaces (§6): the line-oriented input format, the canonical
// super-source/super-sink construction that turns a parsed graph into
// a *stdag.Graph, and the ILP-facing output encoding.
package ioformat
