// SPDX-License-Identifier: MIT

package optimizer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/graphslam/factorgraph"
)

// State is the lifecycle position of an optimization run.
type State int

const (
	// Idle: not started.
	Idle State = iota
	// Iterating: inside the Gauss–Newton loop.
	Iterating
	// Done: all requested iterations completed.
	Done
	// Failed: a solve or assembly error aborted the loop.
	Failed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Iterating:
		return "iterating"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Report summarizes a run.
type Report struct {
	// State is Done on success, Failed otherwise.
	State State

	// Iterations is the number of completed (retracted) iterations.
	Iterations int

	// Chi2 holds the weighted squared error at the linearization point of
	// every completed iteration.
	Chi2 []float64

	// FinalChi2 is the error at the returned estimates. Not set on failure.
	FinalChi2 float64

	// Solver is the name of the strategy used.
	Solver string

	// Unanchored lists the components without a UnaryPosition factor.
	Unanchored []factorgraph.Component
}

// Optimize runs exactly iterations Gauss–Newton steps on g, updating the
// variable estimates in place. iterations == 0 leaves every estimate
// untouched.
//
// On a failed solve the loop stops; estimates keep the updates of the
// iterations that completed, and the returned error wraps solver.ErrSolve.
// An iteration is never half-applied: the step is committed to all
// variables or to none. The partial Report is returned alongside the error.
func Optimize(g *factorgraph.Graph, iterations int, opts ...Option) (*Report, error) {
	if g == nil {
		return nil, optimizerErrorf(opOptimize, ErrNilGraph)
	}
	if iterations < 0 {
		return nil, optimizerErrorf(opOptimize, fmt.Errorf("%d: %w", iterations, ErrInvalidIterations))
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.Logger.With(zap.String("solver", o.Solver.Name()))

	rep := &Report{
		State:      Idle,
		Chi2:       make([]float64, 0, iterations),
		Solver:     o.Solver.Name(),
		Unanchored: g.UnanchoredComponents(),
	}
	for _, c := range rep.Unanchored {
		log.Warn("component has no unary factor; its global reference is unobservable",
			zap.Ints("variables", c.Variables))
	}

	rep.State = Iterating
	for k := 0; k < iterations; k++ {
		sys, err := Assemble(g)
		if err != nil {
			rep.State = Failed
			return rep, optimizerErrorf(opOptimize, fmt.Errorf("iteration %d: %w", k, err))
		}

		dx, err := o.Solver.Solve(sys.H, sys.B)
		if err != nil {
			rep.State = Failed
			log.Error("solve failed", zap.Int("iteration", k), zap.Error(err))
			return rep, optimizerErrorf(opOptimize, fmt.Errorf("iteration %d: %w", k, err))
		}

		if err := g.Retract(dx); err != nil {
			rep.State = Failed
			return rep, optimizerErrorf(opOptimize, fmt.Errorf("iteration %d: %w", k, err))
		}

		rep.Chi2 = append(rep.Chi2, sys.Chi2)
		rep.Iterations++
		log.Debug("gauss-newton iteration",
			zap.Int("iteration", k),
			zap.Float64("chi2", sys.Chi2),
			zap.Int("dim", sys.H.Dim()),
			zap.Int("nnz", sys.H.NNZ()),
		)
	}

	final, err := totalChi2(g)
	if err != nil {
		rep.State = Failed
		return rep, optimizerErrorf(opOptimize, err)
	}
	rep.FinalChi2 = final
	rep.State = Done
	log.Info("optimization finished",
		zap.Int("iterations", rep.Iterations),
		zap.Float64("chi2", final),
	)

	return rep, nil
}
