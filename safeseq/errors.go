package safeseq

// This package surfaces no sentinel errors of its own: per §7 policy the
// assembler recovers internally from bridge.ErrNotReachable (treating
// the extension as empty) and propagates nothing else, since stdag has
// already validated acyclicity/reachability by the time a *stdag.Graph
// reaches this package.
