// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphslam/sparse"
)

// Solver solves H·x = b for a symmetric H.
type Solver interface {
	// Name returns the registry name of the strategy.
	Name() string

	// Solve returns x. H and b are not modified.
	Solve(h *sparse.Symmetric, b []float64) ([]float64, error)
}

// Registry names.
const (
	NameDenseCholesky  = "dense-cholesky"
	NameDenseLU        = "dense-lu"
	NameSparseCholesky = "sparse-cholesky"
)

var registry = map[string]func(...Option) Solver{
	NameDenseCholesky:  func(opts ...Option) Solver { return NewDenseCholesky(opts...) },
	NameDenseLU:        func(opts ...Option) Solver { return NewDenseLU(opts...) },
	NameSparseCholesky: func(opts ...Option) Solver { return NewSparseCholesky(opts...) },
}

// ByName returns the strategy registered under name.
func ByName(name string, opts ...Option) (Solver, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%q (known: %v): %w", name, Names(), ErrUnknownSolver)
	}

	return ctor(opts...), nil
}

// Names lists the registered strategies, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// checkDims validates the operands shared by every strategy.
func checkDims(name string, h *sparse.Symmetric, b []float64) error {
	if h == nil {
		return solveErrorf(name, fmt.Errorf("nil matrix: %w", ErrDimensionMismatch))
	}
	if h.Dim() != len(b) {
		return solveErrorf(name, fmt.Errorf("H is %dx%d, len(b)=%d: %w", h.Dim(), h.Dim(), len(b), ErrDimensionMismatch))
	}

	return nil
}
