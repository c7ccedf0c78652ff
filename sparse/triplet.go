// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"math"
	"sort"
)

// Triplet accumulates entries of a symmetric n×n matrix in coordinate form.
//
// Add folds (i, j) with i > j onto (j, i): callers contribute each
// off-diagonal value once. Duplicated coordinates are summed by Compress, so
// assembly can add many small blocks without looking anything up.
type Triplet struct {
	n    int
	rows []int
	cols []int
	vals []float64
}

// NewTriplet returns an empty accumulator for an n×n matrix with room for
// capacity entries.
func NewTriplet(n, capacity int) (*Triplet, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	if capacity < 0 {
		capacity = 0
	}

	return &Triplet{
		n:    n,
		rows: make([]int, 0, capacity),
		cols: make([]int, 0, capacity),
		vals: make([]float64, 0, capacity),
	}, nil
}

// Dim returns n.
func (t *Triplet) Dim() int { return t.n }

// Len returns the number of stored (possibly duplicated) entries.
func (t *Triplet) Len() int { return len(t.vals) }

// Add records v at (i, j). Zero values are kept so that the structural
// pattern does not depend on the current linearization point.
func (t *Triplet) Add(i, j int, v float64) error {
	if i < 0 || j < 0 || i >= t.n || j >= t.n {
		return sparseErrorf(opAdd, fmt.Errorf("(%d,%d) in %dx%d: %w", i, j, t.n, t.n, ErrOutOfRange))
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return sparseErrorf(opAdd, fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
	}
	if i > j {
		i, j = j, i
	}
	t.rows = append(t.rows, i)
	t.cols = append(t.cols, j)
	t.vals = append(t.vals, v)

	return nil
}

// Compress converts the accumulator to CSC upper-triangular storage,
// summing duplicates. Every diagonal position is materialized (possibly as
// an explicit zero) so that the factorization sees a complete diagonal.
//
// Complexity: O(nnz log nnz) worst case (per-column sort).
func (t *Triplet) Compress() *Symmetric {
	n := t.n
	count := make([]int, n+1)
	for _, c := range t.cols {
		count[c+1]++
	}
	for j := 0; j < n; j++ {
		count[j+1]++ // diagonal slot
	}
	for j := 0; j < n; j++ {
		count[j+1] += count[j]
	}

	next := make([]int, n)
	copy(next, count[:n])
	entries := make([]entry, count[n])
	for j := 0; j < n; j++ {
		entries[next[j]] = entry{row: j}
		next[j]++
	}
	for k, c := range t.cols {
		entries[next[c]] = entry{row: t.rows[k], val: t.vals[k]}
		next[c]++
	}

	s := &Symmetric{
		n:      n,
		colPtr: make([]int, n+1),
		rowIdx: make([]int, 0, count[n]),
		vals:   make([]float64, 0, count[n]),
	}
	for j := 0; j < n; j++ {
		seg := entries[count[j]:count[j+1]]
		sort.Stable(byRow(seg))
		for k, e := range seg {
			if k > 0 && seg[k-1].row == e.row {
				s.vals[len(s.vals)-1] += e.val
				continue
			}
			s.rowIdx = append(s.rowIdx, e.row)
			s.vals = append(s.vals, e.val)
		}
		s.colPtr[j+1] = len(s.vals)
	}

	return s
}

type entry struct {
	row int
	val float64
}

// byRow orders entries by row. Compress sorts it with sort.Stable so duplicate sums
// follow insertion order and stay reproducible.
type byRow []entry

func (b byRow) Len() int { return len(b) }

func (b byRow) Less(i, j int) bool { return b[i].row < b[j].row }

func (b byRow) Swap(i, j int) { b[i], b[j] = b[j], b[i] }
