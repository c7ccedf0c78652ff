// SPDX-License-Identifier: MIT

package factorgraph

// DefaultSymmetryTol is the absolute tolerance used to accept an information
// matrix as symmetric.
const DefaultSymmetryTol = 1e-9

// Option configures graph construction.
type Option func(*Options)

// Options holds construction parameters.
type Options struct {
	// SymmetryTol bounds |Ω[i,j] − Ω[j,i]| for an information matrix to be
	// accepted. The upper triangle is kept.
	SymmetryTol float64
}

// DefaultOptions returns Options with DefaultSymmetryTol.
func DefaultOptions() Options {
	return Options{SymmetryTol: DefaultSymmetryTol}
}

// WithSymmetryTol overrides the symmetry tolerance. Negative values are ignored.
func WithSymmetryTol(tol float64) Option {
	return func(o *Options) {
		if tol >= 0 {
			o.SymmetryTol = tol
		}
	}
}
