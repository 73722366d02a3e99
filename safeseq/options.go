package safeseq

import "github.com/flowgraph/mfdsafety/stdag"

// Option customizes Assemble's strategy selection.
type Option func(*config)

type config struct {
	useSafePaths bool
}

func newConfig(opts ...Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithSafePathsHeuristic selects the reference's weaker pure-unitig
// heuristic (SafePaths) instead of the production ViaDominators
// variant. §9's Open Question treats this as unproven as ILP
// preprocessing, so it must be requested explicitly.
func WithSafePathsHeuristic() Option {
	return func(c *config) {
		c.useSafePaths = true
	}
}

// Assemble is the single strategy-selecting entry point named by §9's
// note that the two near-duplicate reference drivers should collapse
// into one driver with a strategy selector. It runs ViaDominators by
// default, or SafePaths when WithSafePathsHeuristic is given.
func Assemble(g *stdag.Graph, x map[stdag.Edge]bool, opts ...Option) [][]stdag.Edge {
	c := newConfig(opts...)
	if c.useSafePaths {
		return SafePaths(g, x)
	}
	return ViaDominators(g, x)
}
