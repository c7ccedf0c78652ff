// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrSolve is the umbrella sentinel for every solver failure.
	ErrSolve = errors.New("solver: solve failed")

	// ErrDimensionMismatch indicates len(b) differs from the dimension of H.
	ErrDimensionMismatch = errors.New("solver: dimension mismatch")

	// ErrSingular indicates a (numerically) singular H.
	ErrSingular = errors.New("solver: matrix is singular")

	// ErrNotPositiveDefinite indicates a Cholesky pivot that is not positive.
	ErrNotPositiveDefinite = errors.New("solver: matrix is not positive definite")

	// ErrUnknownSolver is returned by ByName for an unregistered name.
	ErrUnknownSolver = errors.New("solver: unknown solver")
)

// SolveError reports which strategy failed and why.
type SolveError struct {
	Solver string
	Err    error
}

// Error implements error.
func (e *SolveError) Error() string {
	return fmt.Sprintf("solver %s: %v", e.Solver, e.Err)
}

// Unwrap exposes both ErrSolve and the concrete cause to errors.Is.
func (e *SolveError) Unwrap() []error { return []error{ErrSolve, e.Err} }

// solveErrorf wraps err for the named strategy.
func solveErrorf(name string, err error) error {
	return &SolveError{Solver: name, Err: err}
}
