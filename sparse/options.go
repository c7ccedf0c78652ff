// SPDX-License-Identifier: MIT

package sparse

// DefaultTolerance is the relative pivot tolerance of Factorize: a pivot d
// at step k is accepted only if d > DefaultTolerance·A[k,k].
const DefaultTolerance = 1e-12

// Option configures Factorize.
type Option func(*Options)

// Options holds factorization parameters.
type Options struct {
	// Tolerance is the relative pivot threshold.
	Tolerance float64

	// Ordering selects the fill-reducing permutation.
	Ordering Ordering
}

// DefaultOptions returns MinimumDegree ordering with DefaultTolerance.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance, Ordering: MinimumDegree}
}

// WithTolerance sets the relative pivot tolerance. Negative values are ignored.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol >= 0 {
			o.Tolerance = tol
		}
	}
}

// WithOrdering selects the ordering.
func WithOrdering(ord Ordering) Option {
	return func(o *Options) { o.Ordering = ord }
}
