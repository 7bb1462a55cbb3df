// Package lstsq defines the pluggable least-squares backend the
// second-order solver uses to relax its constraint matrix, and a
// gonum-backed dense implementation of it.
package lstsq

import "gonum.org/v1/gonum/mat"

// Backend solves the linear least-squares problem min ||A*x - b||
// for x, returning any minimum-norm solution when A is rank-deficient.
// Implementations are not required to validate finiteness of the
// inputs; a backend may return a NaN-laden result for pathological
// systems, which the caller handles via epsilon classification.
type Backend interface {
	Solve(a *mat.Dense, b []float64) ([]float64, error)
}

// DenseLstsq solves the system with gonum's Dense.Solve, which
// dispatches by shape: LU for square systems, QR for overdetermined
// ones, and LQ for underdetermined ones. Only the LQ path yields a
// minimum-norm solution; a square singular system goes through LU and
// can come back with NaN components. Frontier matrices stay small
// (at most a few hundred columns), so a dense solve is never the
// bottleneck; the interface stays pluggable so a sparse LSMR-class
// backend could be added without touching the solver.
type DenseLstsq struct{}

// Solve implements Backend.
func (DenseLstsq) Solve(a *mat.Dense, b []float64) ([]float64, error) {
	rows, cols := a.Dims()
	bCol := mat.NewDense(rows, 1, append([]float64(nil), b...))

	var x mat.Dense
	err := x.Solve(a, bCol)
	if err != nil {
		// gonum reports ill-conditioned, singular, or rank-deficient systems
		// as a mat.Condition error, but still writes its best-effort solution
		// into x. For a square singular system the LU path leaves NaN in the
		// unresolved components; NaN fails both of the caller's epsilon-snap
		// comparisons, so those columns stay unclassified and fall through to
		// guess selection. Treating a Condition warning as total failure
		// would discard the usable components alongside the NaN ones. Any
		// other error means x was never populated.
		if _, ok := err.(mat.Condition); !ok {
			return nil, err
		}
	}

	out := make([]float64, cols)
	for i := 0; i < cols; i++ {
		out[i] = x.At(i, 0)
	}
	return out, nil
}
