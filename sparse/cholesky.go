// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"math"
)

// Cholesky holds the factor L of P·A·Pᵀ = L·Lᵀ in CSC form. The diagonal is
// the first stored entry of every column.
type Cholesky struct {
	n    int
	perm []int // perm[k]: original index at position k
	pinv []int // pinv[i]: position of original index i
	lp   []int
	li   []int
	lx   []float64
}

// Factorize computes the sparse Cholesky factorization P·A·Pᵀ = L·Lᵀ.
// Implementation:
//   - Stage 1: Ordering.Permutation(a) and C = P·A·Pᵀ (upper CSC).
//   - Stage 2 (symbolic): elimination tree of C, then column counts of L from
//     the row patterns given by ereach; allocate L exactly once.
//   - Stage 3 (numeric, up-looking): for k = 0..n-1 scatter C[:,k], solve
//     against the already-built rows along the pattern of row k, append
//     L[k,i] to column i and store √d as the first entry of column k.
//
// Inputs:
//   - a: symmetric matrix in upper CSC form.
//   - opts: WithTolerance, WithOrdering.
//
// Returns:
//   - *Cholesky: factor, permutation and inverse permutation.
//
// Errors:
//   - ErrNotPositiveDefinite when a pivot d fails d > Tolerance·A[k,k]
//     (zero, negative, NaN) or is +Inf.
//   - ErrBadPermutation from Permute (never for built-in orderings).
//
// Determinism:
//   - Orderings break ties on the lower index; rows of L are built in
//     topological order of the elimination tree.
//
// Complexity:
//   - Time O(Σ_k |L[k,:]|·|L[:,i]|) = O(flops(L)), Space O(nnz(L) + n).
func Factorize(a *Symmetric, opts ...Option) (*Cholesky, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	perm := o.Ordering.Permutation(a)
	pinv := Inverse(perm)
	c, err := a.Permute(pinv)
	if err != nil {
		return nil, sparseErrorf(opFactorize, err)
	}

	n := c.n
	parent := etree(c)
	lp := columnPointers(c, parent)
	nnz := lp[n]
	li := make([]int, nnz)
	lx := make([]float64, nnz)

	next := make([]int, n)
	copy(next, lp[:n])
	x := make([]float64, n)
	stack := make([]int, n)
	mark := make([]int, n)
	for i := range mark {
		mark[i] = -1
	}

	for k := 0; k < n; k++ {
		top := ereach(c, k, parent, stack, mark)

		for p := c.colPtr[k]; p < c.colPtr[k+1]; p++ {
			x[c.rowIdx[p]] = c.vals[p]
		}
		akk := x[k]
		d := akk
		x[k] = 0

		for ; top < n; top++ {
			i := stack[top]
			lki := x[i] / lx[lp[i]]
			x[i] = 0
			for p := lp[i] + 1; p < next[i]; p++ {
				x[li[p]] -= lx[p] * lki
			}
			d -= lki * lki
			p := next[i]
			next[i]++
			li[p] = k
			lx[p] = lki
		}

		if !(d > o.Tolerance*akk) || math.IsInf(d, 0) {
			return nil, sparseErrorf(opFactorize,
				fmt.Errorf("pivot %d (original index %d) = %g: %w", k, perm[k], d, ErrNotPositiveDefinite))
		}
		p := next[k]
		next[k]++
		li[p] = k
		lx[p] = math.Sqrt(d)
	}

	return &Cholesky{n: n, perm: perm, pinv: pinv, lp: lp, li: li, lx: lx}, nil
}

// Dim returns n.
func (ch *Cholesky) Dim() int { return ch.n }

// NNZ returns the number of stored entries of L (fill included).
func (ch *Cholesky) NNZ() int { return len(ch.lx) }

// Permutation returns a copy of perm (perm[k] is the original index
// eliminated k-th).
func (ch *Cholesky) Permutation() []int {
	out := make([]int, len(ch.perm))
	copy(out, ch.perm)

	return out
}

// Solve returns x with A·x = b.
func (ch *Cholesky) Solve(b []float64) ([]float64, error) {
	if len(b) != ch.n {
		return nil, sparseErrorf(opSolve, fmt.Errorf("len(b)=%d, n=%d: %w", len(b), ch.n, ErrDimensionMismatch))
	}

	y := make([]float64, ch.n)
	for k, i := range ch.perm {
		y[k] = b[i]
	}

	// L·z = y
	for j := 0; j < ch.n; j++ {
		y[j] /= ch.lx[ch.lp[j]]
		for p := ch.lp[j] + 1; p < ch.lp[j+1]; p++ {
			y[ch.li[p]] -= ch.lx[p] * y[j]
		}
	}
	// Lᵀ·w = z
	for j := ch.n - 1; j >= 0; j-- {
		for p := ch.lp[j] + 1; p < ch.lp[j+1]; p++ {
			y[j] -= ch.lx[p] * y[ch.li[p]]
		}
		y[j] /= ch.lx[ch.lp[j]]
	}

	x := make([]float64, ch.n)
	for k, i := range ch.perm {
		if math.IsNaN(y[k]) || math.IsInf(y[k], 0) {
			return nil, sparseErrorf(opSolve, ErrNaNInf)
		}
		x[i] = y[k]
	}

	return x, nil
}

// etree returns the elimination tree of an upper CSC matrix: parent[i] is
// the parent of node i, or -1 for a root. Path compression goes through
// ancestor.
func etree(c *Symmetric) []int {
	n := c.n
	parent := make([]int, n)
	ancestor := make([]int, n)
	for k := 0; k < n; k++ {
		parent[k] = -1
		ancestor[k] = -1
		for p := c.colPtr[k]; p < c.colPtr[k+1]; p++ {
			for i := c.rowIdx[p]; i != -1 && i < k; {
				inext := ancestor[i]
				ancestor[i] = k
				if inext == -1 {
					parent[i] = k
				}
				i = inext
			}
		}
	}

	return parent
}

// ereach computes the nonzero pattern of row k of L: the union of the tree
// paths from every i in A[:,k] (i < k) up to k. The pattern is written to
// stack[top:] in topological order; mark[i] == k flags visited nodes.
func ereach(c *Symmetric, k int, parent, stack, mark []int) int {
	n := c.n
	top := n
	mark[k] = k
	for p := c.colPtr[k]; p < c.colPtr[k+1]; p++ {
		i := c.rowIdx[p]
		if i > k {
			continue
		}
		depth := 0
		for ; mark[i] != k; i = parent[i] {
			stack[depth] = i
			depth++
			mark[i] = k
		}
		for depth > 0 {
			top--
			depth--
			stack[top] = stack[depth]
		}
	}

	return top
}

// columnPointers counts the nonzeros of every column of L from the row
// patterns and returns the CSC column pointer array.
func columnPointers(c *Symmetric, parent []int) []int {
	n := c.n
	counts := make([]int, n)
	stack := make([]int, n)
	mark := make([]int, n)
	for i := range mark {
		mark[i] = -1
	}
	for k := 0; k < n; k++ {
		counts[k]++ // diagonal
		for top := ereach(c, k, parent, stack, mark); top < n; top++ {
			counts[stack[top]]++
		}
	}

	lp := make([]int, n+1)
	for k := 0; k < n; k++ {
		lp[k+1] = lp[k] + counts[k]
	}

	return lp
}
