// SPDX-License-Identifier: MIT

package factorgraph

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/graphslam/manifold"
)

// VariableSpec is the input used by New to create a Variable.
type VariableSpec struct {
	ID       int
	Kind     VariableKind
	Estimate []float64
}

// Variable is a pose or landmark being estimated.
//
// id, kind and offset are fixed by New; estimate is changed only by Retract.
type Variable struct {
	id       int
	kind     VariableKind
	offset   int
	estimate []float64
}

// ID returns the variable's unique id.
func (v *Variable) ID() int { return v.id }

// Kind returns the variable's kind.
func (v *Variable) Kind() VariableKind { return v.kind }

// Dimension returns the number of degrees of freedom (see VariableKind.Dimension).
func (v *Variable) Dimension() int { return v.kind.Dimension() }

// Offset returns the start of this variable's slice in the global state vector.
func (v *Variable) Offset() int { return v.offset }

// Estimate returns a copy of the current estimate.
func (v *Variable) Estimate() []float64 {
	out := make([]float64, len(v.estimate))
	copy(out, v.estimate)

	return out
}

// Retract applies the tangent increment delta in place.
//
//   - translation components add directly;
//   - a planar heading is summed and wrapped into (−π, π];
//   - a spatial rotation is composed on the right: q ← normalize(q ⊗ Exp(δω)).
//
// Returns ErrDimensionMismatch if len(delta) != Dimension(). The estimate is
// untouched on error.
func (v *Variable) Retract(delta []float64) error {
	next, err := v.retracted(delta)
	if err != nil {
		return err
	}
	copy(v.estimate, next)

	return nil
}

// retracted returns the estimate that Retract(delta) would produce without
// modifying v. Numeric differentiation relies on it.
func (v *Variable) retracted(delta []float64) ([]float64, error) {
	if len(delta) != v.Dimension() {
		return nil, fmt.Errorf("%w: variable %d wants %d, got %d", ErrDimensionMismatch, v.id, v.Dimension(), len(delta))
	}
	out := make([]float64, len(v.estimate))
	copy(out, v.estimate)

	switch v.kind {
	case Pose2D:
		out[0] += delta[0]
		out[1] += delta[1]
		out[2] = manifold.WrapAngle(out[2] + delta[2])
	case Landmark2D, Landmark3D:
		for i := range delta {
			out[i] += delta[i]
		}
	case Pose3D:
		out[0] += delta[0]
		out[1] += delta[1]
		out[2] += delta[2]
		q, err := manifold.FromSlice(out[3:])
		if err != nil {
			return nil, fmt.Errorf("variable %d: %w", v.id, err)
		}
		q, err = manifold.Normalize(quat.Mul(q, manifold.Exp(delta[3], delta[4], delta[5])))
		if err != nil {
			return nil, fmt.Errorf("variable %d: %w", v.id, err)
		}
		manifold.ToSlice(out[3:], q)
	default:
		return nil, fmt.Errorf("%w: variable %d kind %d", ErrUnknownKind, v.id, int(v.kind))
	}

	return out, nil
}

// withEstimate returns a detached copy of v holding est. Used to evaluate
// residuals at perturbed states without touching the graph.
func (v *Variable) withEstimate(est []float64) *Variable {
	return &Variable{id: v.id, kind: v.kind, offset: v.offset, estimate: est}
}

// newVariable validates spec and returns the Variable. Pose3D quaternions are
// normalized; Pose2D headings are wrapped.
func newVariable(spec VariableSpec) (*Variable, error) {
	if !spec.Kind.Valid() {
		return nil, fmt.Errorf("%w: variable kind %d", ErrUnknownKind, int(spec.Kind))
	}
	if len(spec.Estimate) != spec.Kind.EstimateLen() {
		return nil, fmt.Errorf("%w: %s wants %d values, got %d", ErrEstimateLength, spec.Kind, spec.Kind.EstimateLen(), len(spec.Estimate))
	}
	if !allFinite(spec.Estimate) {
		return nil, fmt.Errorf("%w: estimate", ErrNonFinite)
	}

	est := make([]float64, len(spec.Estimate))
	copy(est, spec.Estimate)
	switch spec.Kind {
	case Pose2D:
		est[2] = manifold.WrapAngle(est[2])
	case Pose3D:
		q, err := manifold.FromSlice(est[3:])
		if err != nil {
			return nil, err
		}
		manifold.ToSlice(est[3:], q)
	}

	return &Variable{id: spec.ID, kind: spec.Kind, estimate: est}, nil
}

func allFinite(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
