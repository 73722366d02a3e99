package antichain

import "errors"

// ErrInfeasible is returned when the auxiliary min-cost-flow network has
// no feasible solution (§7). Never expected for well-formed stDAGs with
// non-negative weights; surfaced to the caller rather than retried.
var ErrInfeasible = errors.New("antichain: min-cost flow is infeasible")
