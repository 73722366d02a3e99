// Package ilpiface pins the boundary types the safety core shares with
// the external ILP layer (§6, §7). The ILP encodings themselves are out
// of scope; this package only fixes the shapes the core's output is
// consumed through and the failure kinds the core must recognise
// without ever raising them itself.
package ilpiface
