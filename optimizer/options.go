// SPDX-License-Identifier: MIT

package optimizer

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/graphslam/solver"
)

// Option configures Optimize.
type Option func(*Options)

// Options holds the optimizer collaborators.
type Options struct {
	// Solver solves the normal equations. Default: sparse Cholesky.
	Solver solver.Solver

	// Logger receives per-iteration debug records and anchoring warnings.
	// Default: no-op.
	Logger *zap.Logger
}

// DefaultOptions returns a sparse Cholesky solver and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Solver: solver.NewSparseCholesky(),
		Logger: zap.NewNop(),
	}
}

// WithSolver selects the linear solver. nil is ignored.
func WithSolver(s solver.Solver) Option {
	return func(o *Options) {
		if s != nil {
			o.Solver = s
		}
	}
}

// WithLogger sets the logger. nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
