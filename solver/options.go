// SPDX-License-Identifier: MIT

package solver

import "github.com/katalvlaran/graphslam/sparse"

// DefaultTolerance is the relative singularity threshold shared by all
// strategies.
const DefaultTolerance = 1e-12

// Option configures a strategy.
type Option func(*Options)

// Options holds strategy parameters. Fields irrelevant to a strategy are
// ignored by it.
type Options struct {
	// Tolerance is the relative pivot threshold (LU, sparse Cholesky) or the
	// reciprocal-condition threshold (dense Cholesky).
	Tolerance float64

	// Ordering is the fill-reducing ordering used by SparseCholesky.
	Ordering sparse.Ordering
}

// DefaultOptions returns DefaultTolerance and minimum-degree ordering.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance, Ordering: sparse.MinimumDegree}
}

// WithTolerance overrides the tolerance. Negative values are ignored.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol >= 0 {
			o.Tolerance = tol
		}
	}
}

// WithOrdering selects the SparseCholesky ordering.
func WithOrdering(ord sparse.Ordering) Option {
	return func(o *Options) { o.Ordering = ord }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
