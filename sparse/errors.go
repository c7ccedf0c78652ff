// SPDX-License-Identifier: MIT

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned for a non-positive matrix dimension.
	ErrInvalidDimensions = errors.New("sparse: dimension must be > 0")

	// ErrOutOfRange indicates an index outside [0, n).
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrNaNInf indicates a non-finite value was added.
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")

	// ErrDimensionMismatch indicates operands of incompatible sizes.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNotPositiveDefinite indicates a zero, negative or vanishing pivot
	// during Cholesky factorization.
	ErrNotPositiveDefinite = errors.New("sparse: matrix is not positive definite")

	// ErrBadPermutation indicates a permutation that is not a bijection on [0, n).
	ErrBadPermutation = errors.New("sparse: invalid permutation")
)

// Operation tags used by sparseErrorf.
const (
	opAdd       = "Add"
	opMulVec    = "MulVec"
	opPermute   = "Permute"
	opFactorize = "Factorize"
	opSolve     = "Solve"
)

// sparseErrorf wraps err with an operation tag, keeping errors.Is intact.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
