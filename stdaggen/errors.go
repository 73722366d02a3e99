package stdaggen

import "errors"

// Sentinel errors for ER, styled on builder's validate-and-return-
// sentinel convention (builder/errors.go).
var (
	ErrTooFewVertices     = errors.New("stdaggen: n must be >= 1")
	ErrInvalidProbability = errors.New("stdaggen: p must be in [0,1]")
	ErrNeedRandSource     = errors.New("stdaggen: rng must not be nil")
)
