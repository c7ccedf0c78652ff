// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Symmetric is an n×n symmetric matrix stored as the CSC upper triangle.
// Column j holds rows rowIdx[colPtr[j]:colPtr[j+1]] (all ≤ j, ascending).
type Symmetric struct {
	n      int
	colPtr []int
	rowIdx []int
	vals   []float64
}

// NewSymmetricFromDense copies the nonzero upper triangle of m (plus the full
// diagonal) into sparse storage. Entries with |v| <= dropTol off the diagonal
// are skipped.
func NewSymmetricFromDense(m mat.Symmetric, dropTol float64) (*Symmetric, error) {
	n := m.SymmetricDim()
	t, err := NewTriplet(n, n*4)
	if err != nil {
		return nil, err
	}
	for j := 0; j < n; j++ {
		for i := 0; i <= j; i++ {
			v := m.At(i, j)
			if i != j && math.Abs(v) <= dropTol {
				continue
			}
			if err := t.Add(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return t.Compress(), nil
}

// Dim returns n.
func (s *Symmetric) Dim() int { return s.n }

// NNZ returns the number of stored upper-triangular entries.
func (s *Symmetric) NNZ() int { return len(s.vals) }

// At returns element (i, j); the lower triangle is read through symmetry.
// Out-of-range indices yield 0.
func (s *Symmetric) At(i, j int) float64 {
	if i > j {
		i, j = j, i
	}
	if i < 0 || j >= s.n {
		return 0
	}
	lo, hi := s.colPtr[j], s.colPtr[j+1]
	k := lo + sort.SearchInts(s.rowIdx[lo:hi], i)
	if k < hi && s.rowIdx[k] == i {
		return s.vals[k]
	}

	return 0
}

// Diagonal returns a copy of the diagonal.
func (s *Symmetric) Diagonal() []float64 {
	d := make([]float64, s.n)
	for j := 0; j < s.n; j++ {
		d[j] = s.At(j, j)
	}

	return d
}

// MulVec returns A·x.
func (s *Symmetric) MulVec(x []float64) ([]float64, error) {
	if len(x) != s.n {
		return nil, sparseErrorf(opMulVec, fmt.Errorf("len(x)=%d, n=%d: %w", len(x), s.n, ErrDimensionMismatch))
	}
	y := make([]float64, s.n)
	for j := 0; j < s.n; j++ {
		for p := s.colPtr[j]; p < s.colPtr[j+1]; p++ {
			i, v := s.rowIdx[p], s.vals[p]
			y[i] += v * x[j]
			if i != j {
				y[j] += v * x[i]
			}
		}
	}

	return y, nil
}

// ToDense expands the matrix into a gonum SymDense.
func (s *Symmetric) ToDense() *mat.SymDense {
	d := mat.NewSymDense(s.n, nil)
	for j := 0; j < s.n; j++ {
		for p := s.colPtr[j]; p < s.colPtr[j+1]; p++ {
			d.SetSym(s.rowIdx[p], j, s.vals[p])
		}
	}

	return d
}

// Permute returns C = P·A·Pᵀ in upper CSC form, where pinv[i] is the new
// position of old index i.
func (s *Symmetric) Permute(pinv []int) (*Symmetric, error) {
	if err := validatePermutation(pinv, s.n); err != nil {
		return nil, sparseErrorf(opPermute, err)
	}

	t, err := NewTriplet(s.n, len(s.vals))
	if err != nil {
		return nil, err
	}
	for j := 0; j < s.n; j++ {
		for p := s.colPtr[j]; p < s.colPtr[j+1]; p++ {
			// values were finite on the way in; Add cannot fail here
			_ = t.Add(pinv[s.rowIdx[p]], pinv[j], s.vals[p])
		}
	}

	return t.Compress(), nil
}

// neighbours returns, for every index, the off-diagonal indices it couples
// with (both triangles), ascending.
func (s *Symmetric) neighbours() [][]int {
	adj := make([][]int, s.n)
	for j := 0; j < s.n; j++ {
		for p := s.colPtr[j]; p < s.colPtr[j+1]; p++ {
			i := s.rowIdx[p]
			if i == j {
				continue
			}
			adj[i] = append(adj[i], j)
			adj[j] = append(adj[j], i)
		}
	}
	for _, a := range adj {
		sort.Ints(a)
	}

	return adj
}

func validatePermutation(pinv []int, n int) error {
	if len(pinv) != n {
		return fmt.Errorf("len %d, want %d: %w", len(pinv), n, ErrBadPermutation)
	}
	seen := make([]bool, n)
	for _, v := range pinv {
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("entry %d: %w", v, ErrBadPermutation)
		}
		seen[v] = true
	}

	return nil
}
