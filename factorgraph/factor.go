// SPDX-License-Identifier: MIT

package factorgraph

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphslam/manifold"
)

// FactorSpec is the input used by New to create a Factor.
// Information is the residual-dim square matrix in row-major order.
type FactorSpec struct {
	Kind        FactorKind
	Variables   []int
	Measurement []float64
	Information []float64
}

// Factor is an immutable measurement constraint over one or two Variables.
// The order of Variables defines "from" and "to" for directional kinds.
type Factor struct {
	kind        FactorKind
	variables   []int
	measurement []float64
	information *mat.SymDense
	resDim      int
}

// Kind returns the factor's kind.
func (f *Factor) Kind() FactorKind { return f.kind }

// Variables returns a copy of the connected variable ids, in order.
func (f *Factor) Variables() []int {
	out := make([]int, len(f.variables))
	copy(out, f.variables)

	return out
}

// Measurement returns a copy of the measurement vector.
func (f *Factor) Measurement() []float64 {
	out := make([]float64, len(f.measurement))
	copy(out, f.measurement)

	return out
}

// Information returns the information matrix as a read-only view.
func (f *Factor) Information() mat.Symmetric { return f.information }

// ResidualDimension returns the length of the residual vector.
func (f *Factor) ResidualDimension() int { return f.resDim }

// Residual evaluates measurement ⊖ prediction at the estimates of vars, which
// must be the factor's connected variables in order.
func (f *Factor) Residual(vars ...*Variable) ([]float64, error) {
	if err := f.checkVariables(vars); err != nil {
		return nil, err
	}

	return f.residual(vars)
}

// Jacobians returns one block per connected variable, in order. Block k has
// ResidualDimension() rows and vars[k].Dimension() columns and holds ∂r/∂δₖ.
func (f *Factor) Jacobians(vars ...*Variable) ([]*mat.Dense, error) {
	if err := f.checkVariables(vars); err != nil {
		return nil, err
	}

	switch f.kind {
	case UnaryPosition:
		if vars[0].kind == Pose3D {
			return f.numericJacobians(vars)
		}
		return []*mat.Dense{negIdentity(vars[0].Dimension())}, nil
	case Odometry2D:
		a, b := odometry2DJacobians(vars[0].estimate, vars[1].estimate)
		return []*mat.Dense{a, b}, nil
	case Observation2D:
		a, l := observation2DJacobians(vars[0].estimate, vars[1].estimate)
		return []*mat.Dense{a, l}, nil
	case Odometry3D:
		return f.numericJacobians(vars)
	case Observation3D:
		pose, err := f.numericJacobian(vars, 0)
		if err != nil {
			return nil, err
		}
		l, err := observation3DLandmarkJacobian(vars[0].estimate)
		if err != nil {
			return nil, err
		}
		return []*mat.Dense{pose, l}, nil
	default:
		return nil, fmt.Errorf("%w: factor kind %d", ErrUnknownKind, int(f.kind))
	}
}

// residual dispatches on the closed set of kinds; vars are already checked.
func (f *Factor) residual(vars []*Variable) ([]float64, error) {
	switch f.kind {
	case UnaryPosition:
		return unaryResidual(vars[0].kind, f.measurement, vars[0].estimate)
	case Odometry2D:
		return odometry2DResidual(f.measurement, vars[0].estimate, vars[1].estimate), nil
	case Observation2D:
		return observation2DResidual(f.measurement, vars[0].estimate, vars[1].estimate), nil
	case Odometry3D:
		return odometry3DResidual(f.measurement, vars[0].estimate, vars[1].estimate)
	case Observation3D:
		return observation3DResidual(f.measurement, vars[0].estimate, vars[1].estimate)
	default:
		return nil, fmt.Errorf("%w: factor kind %d", ErrUnknownKind, int(f.kind))
	}
}

func (f *Factor) checkVariables(vars []*Variable) error {
	if len(vars) != len(f.variables) {
		return fmt.Errorf("%w: %s wants %d variables, got %d", ErrVariableMismatch, f.kind, len(f.variables), len(vars))
	}
	for i, v := range vars {
		if v == nil || v.id != f.variables[i] {
			return fmt.Errorf("%w: position %d", ErrVariableMismatch, i)
		}
	}

	return nil
}

// newFactor validates spec against the already-resolved connected variables.
// Measured quaternions are normalized.
func newFactor(spec FactorSpec, vars []*Variable, opts Options) (*Factor, error) {
	if !spec.Kind.Valid() {
		return nil, fmt.Errorf("%w: factor kind %d", ErrUnknownKind, int(spec.Kind))
	}

	if spec.Kind == UnaryPosition {
		if len(vars) != 1 {
			return nil, fmt.Errorf("%w: %s wants 1, got %d", ErrArity, spec.Kind, len(vars))
		}
	} else {
		sig := spec.Kind.signature()
		if len(vars) != len(sig) {
			return nil, fmt.Errorf("%w: %s wants %d, got %d", ErrArity, spec.Kind, len(sig), len(vars))
		}
		for i, want := range sig {
			if vars[i].kind != want {
				return nil, fmt.Errorf("%w: %s position %d wants %s, got %s", ErrKindMismatch, spec.Kind, i, want, vars[i].kind)
			}
		}
	}

	first := vars[0].kind
	if want := spec.Kind.measurementLen(first); len(spec.Measurement) != want {
		return nil, fmt.Errorf("%w: %s wants %d, got %d", ErrMeasurementLength, spec.Kind, want, len(spec.Measurement))
	}
	if !allFinite(spec.Measurement) {
		return nil, fmt.Errorf("%w: measurement", ErrNonFinite)
	}

	n := spec.Kind.residualDim(first)
	if len(spec.Information) != n*n {
		return nil, fmt.Errorf("%w: wants %dx%d, got %d values", ErrInformationShape, n, n, len(spec.Information))
	}
	if !allFinite(spec.Information) {
		return nil, fmt.Errorf("%w: information", ErrNonFinite)
	}
	info := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			upper, lower := spec.Information[i*n+j], spec.Information[j*n+i]
			if diff := upper - lower; diff > opts.SymmetryTol || -diff > opts.SymmetryTol {
				return nil, fmt.Errorf("%w: (%d,%d)=%g vs (%d,%d)=%g", ErrInformationAsymmetric, i, j, upper, j, i, lower)
			}
			info.SetSym(i, j, upper)
		}
	}

	ids := make([]int, len(vars))
	for i, v := range vars {
		ids[i] = v.id
	}
	meas := make([]float64, len(spec.Measurement))
	copy(meas, spec.Measurement)
	if spec.Kind == Odometry3D || (spec.Kind == UnaryPosition && first == Pose3D) {
		q, err := manifold.FromSlice(meas[3:])
		if err != nil {
			return nil, fmt.Errorf("measurement rotation: %w", err)
		}
		manifold.ToSlice(meas[3:], q)
	}

	return &Factor{kind: spec.Kind, variables: ids, measurement: meas, information: info, resDim: n}, nil
}

func negIdentity(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, -1)
	}

	return m
}
