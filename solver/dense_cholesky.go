// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphslam/sparse"
)

// DenseCholesky factors the expanded H with gonum's Cholesky.
type DenseCholesky struct {
	opts Options
}

// NewDenseCholesky returns the dense Cholesky strategy.
func NewDenseCholesky(opts ...Option) *DenseCholesky {
	return &DenseCholesky{opts: gatherOptions(opts)}
}

// Name implements Solver.
func (s *DenseCholesky) Name() string { return NameDenseCholesky }

// Solve implements Solver. A failed factorization is ErrNotPositiveDefinite;
// a condition number above 1/Tolerance is ErrSingular.
func (s *DenseCholesky) Solve(h *sparse.Symmetric, b []float64) ([]float64, error) {
	if err := checkDims(s.Name(), h, b); err != nil {
		return nil, err
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(h.ToDense()); !ok {
		return nil, solveErrorf(s.Name(), ErrNotPositiveDefinite)
	}
	if s.opts.Tolerance > 0 {
		if c := chol.Cond(); c > 1/s.opts.Tolerance {
			return nil, solveErrorf(s.Name(), fmt.Errorf("condition number %.3g: %w", c, ErrSingular))
		}
	}

	x := mat.NewVecDense(len(b), nil)
	if err := chol.SolveVecTo(x, mat.NewVecDense(len(b), append([]float64(nil), b...))); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, solveErrorf(s.Name(), fmt.Errorf("%v: %w", err, ErrSingular))
		}

		return nil, solveErrorf(s.Name(), err)
	}

	return x.RawVector().Data, nil
}
