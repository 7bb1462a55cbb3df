package solver

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var errAlwaysFails = errors.New("test backend: deliberately unsolvable")

// noSecondOrderBackend always fails, so any test using it proves its
// board was fully resolved by first-order deduction alone: if the
// orchestrator ever needed a second-order pass, Solve would stall
// (secondOrderPass treats a backend error as "no progress") and the
// board would never reach Won/Lost.
type noSecondOrderBackend struct{}

func (noSecondOrderBackend) Solve(a *mat.Dense, b []float64) ([]float64, error) {
	return nil, errAlwaysFails
}

// fixedBackend returns a pre-scripted x vector regardless of the
// matrix it is given, for tests that exercise classification logic in
// isolation from gonum's actual solve.
type fixedBackend struct {
	x   []float64
	err error
}

func (f fixedBackend) Solve(a *mat.Dense, b []float64) ([]float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.x, nil
}
