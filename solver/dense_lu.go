// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphslam/sparse"
)

// DenseLU solves with a row-pivoted Doolittle factorization P·H = L·U kept
// in one flat row-major buffer (L below the diagonal, unit diagonal
// implied; U on and above it).
type DenseLU struct {
	opts Options
}

// NewDenseLU returns the dense LU strategy.
func NewDenseLU(opts ...Option) *DenseLU {
	return &DenseLU{opts: gatherOptions(opts)}
}

// Name implements Solver.
func (s *DenseLU) Name() string { return NameDenseLU }

// Solve implements Solver by LU with partial pivoting on a dense copy of h.
// Implementation:
//   - Stage 1: expand h into a row-major flat buffer; track max|H|.
//   - Stage 2: for each column k pick the row of largest |A[i,k]| (i ≥ k),
//     swap it into place and record the swap in piv, then eliminate below
//     the pivot in place (Doolittle, multipliers stored in L's slot).
//   - Stage 3: forward substitution L·y = P·b, back substitution U·x = y.
//
// Inputs:
//   - h: n×n symmetric system matrix; not modified.
//   - b: right-hand side of length n; not modified.
//
// Returns:
//   - []float64: x with H·x = b.
//
// Errors:
//   - ErrDimensionMismatch if len(b) != n.
//   - ErrSingular when |pivot| ≤ Tolerance·max|H| or the pivot is NaN.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func (s *DenseLU) Solve(h *sparse.Symmetric, b []float64) ([]float64, error) {
	if err := checkDims(s.Name(), h, b); err != nil {
		return nil, err
	}

	n := h.Dim()
	a := make([]float64, n*n)
	var scale float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := h.At(i, j)
			a[i*n+j] = v
			if av := math.Abs(v); av > scale {
				scale = av
			}
		}
	}
	threshold := s.opts.Tolerance * scale

	piv := make([]int, n)
	for i := range piv {
		piv[i] = i
	}

	var i, j, k, p int
	var pivot, f float64
	for k = 0; k < n; k++ {
		// partial pivoting: largest |a[i,k]| for i ≥ k
		p = k
		for i = k + 1; i < n; i++ {
			if math.Abs(a[i*n+k]) > math.Abs(a[p*n+k]) {
				p = i
			}
		}
		pivot = a[p*n+k]
		if !(math.Abs(pivot) > threshold) {
			return nil, solveErrorf(s.Name(), fmt.Errorf("pivot %d = %g: %w", k, pivot, ErrSingular))
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			piv[k], piv[p] = piv[p], piv[k]
		}

		for i = k + 1; i < n; i++ {
			f = a[i*n+k] / pivot
			a[i*n+k] = f
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= f * a[k*n+j]
			}
		}
	}

	// L·y = P·b
	x := make([]float64, n)
	for i = 0; i < n; i++ {
		sum := b[piv[i]]
		for j = 0; j < i; j++ {
			sum -= a[i*n+j] * x[j]
		}
		x[i] = sum
	}
	// U·x = y
	for i = n - 1; i >= 0; i-- {
		sum := x[i]
		for j = i + 1; j < n; j++ {
			sum -= a[i*n+j] * x[j]
		}
		x[i] = sum / a[i*n+i]
	}

	return x, nil
}
