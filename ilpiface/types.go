package ilpiface

import "fmt"

// Mode selects the driver's ILP strategy (§6 CLI `-m` flag).
type Mode int

const (
	// ModeRobustL1 runs the robust/L1 ILP.
	ModeRobustL1 Mode = iota
	// ModeLeastSquaresL2 runs the least-squares/L2 ILP.
	ModeLeastSquaresL2
	// ModeOptimizingLoop iterates the path count to optimise both ILPs.
	ModeOptimizingLoop
	// ModeSafetyOnly runs the safety engine and skips the ILP entirely.
	ModeSafetyOnly
)

// SolverTimeout reports that the external ILP solver exceeded its
// configured time budget (§6 "ILP-layer error channel"). The safety
// core never raises this; it is recognised here so the driver can
// distinguish it from Infeasible.
type SolverTimeout struct {
	Context string
}

func (e *SolverTimeout) Error() string {
	return fmt.Sprintf("ilpiface: solver timeout: %s", e.Context)
}

// Infeasible reports that the ILP layer found no feasible solution
// (§6, §7). The safety core raises its own, package-local Infeasible
// kind for min-cost-flow infeasibility (antichain.ErrInfeasible); this
// type is the ILP layer's distinct failure kind, propagated through the
// driver unchanged.
type Infeasible struct {
	Context string
}

func (e *Infeasible) Error() string {
	return fmt.Sprintf("ilpiface: infeasible: %s", e.Context)
}

// Solver is the external collaborator the driver calls into for modes
// other than ModeSafetyOnly. The safety core never calls it directly.
type Solver interface {
	Solve(mode Mode, fixSet [][]EdgePair, width int64) (objective float64, err error)
}

// EdgePair mirrors ioformat.EdgePair's shape to keep this package
// import-independent of ioformat's parsing concerns.
type EdgePair struct {
	U, V int
}
