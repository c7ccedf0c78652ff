// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphslam/sparse"
)

// SparseCholesky solves with sparse.Factorize.
type SparseCholesky struct {
	opts Options

	// lastNNZ is the fill of the most recent factor, exposed for logging.
	lastNNZ int
}

// NewSparseCholesky returns the sparse Cholesky strategy.
func NewSparseCholesky(opts ...Option) *SparseCholesky {
	return &SparseCholesky{opts: gatherOptions(opts)}
}

// Name implements Solver.
func (s *SparseCholesky) Name() string { return NameSparseCholesky }

// FactorNNZ returns the number of nonzeros of the last computed factor L.
func (s *SparseCholesky) FactorNNZ() int { return s.lastNNZ }

// Solve implements Solver.
func (s *SparseCholesky) Solve(h *sparse.Symmetric, b []float64) ([]float64, error) {
	if err := checkDims(s.Name(), h, b); err != nil {
		return nil, err
	}

	ch, err := sparse.Factorize(h, sparse.WithTolerance(s.opts.Tolerance), sparse.WithOrdering(s.opts.Ordering))
	if err != nil {
		return nil, solveErrorf(s.Name(), translate(err))
	}
	s.lastNNZ = ch.NNZ()

	x, err := ch.Solve(b)
	if err != nil {
		return nil, solveErrorf(s.Name(), translate(err))
	}

	return x, nil
}

// translate maps sparse sentinels onto the solver family, keeping the
// original error in the chain.
func translate(err error) error {
	switch {
	case errors.Is(err, sparse.ErrNotPositiveDefinite):
		return fmt.Errorf("%w: %w", ErrNotPositiveDefinite, err)
	case errors.Is(err, sparse.ErrDimensionMismatch):
		return fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
	case errors.Is(err, sparse.ErrNaNInf):
		return fmt.Errorf("%w: %w", ErrSingular, err)
	default:
		return err
	}
}
