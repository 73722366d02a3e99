package bridge

import "errors"

// ErrNotReachable is returned when the initial arbitrary-path discovery
// (§4.B step 1) cannot reach t from s. Callers (package safeseq) recover
// from this locally by treating the extension as empty (§7 policy).
var ErrNotReachable = errors.New("bridge: sink not reachable from source")
