// SPDX-License-Identifier: MIT

package factorgraph

import (
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/graphslam/manifold"
)

// numericStep is the central-difference step used for tangent-space Jacobians.
const numericStep = 1e-6

// pose3DUnaryResidual returns [t_m − t, Log(q⁻¹ ⊗ q_m)].
func pose3DUnaryResidual(meas, est []float64) ([]float64, error) {
	q, err := manifold.FromSlice(est[3:])
	if err != nil {
		return nil, err
	}
	qm, err := manifold.FromSlice(meas[3:])
	if err != nil {
		return nil, err
	}
	rx, ry, rz := manifold.BoxMinus(q, qm)

	return []float64{meas[0] - est[0], meas[1] - est[1], meas[2] - est[2], rx, ry, rz}, nil
}

// odometry3DResidual compares the measured relative pose with B expressed in
// A's frame: [t_m − R_aᵀ(t_b − t_a), Log((q_a⁻¹ ⊗ q_b)⁻¹ ⊗ q_m)].
func odometry3DResidual(meas, a, b []float64) ([]float64, error) {
	qa, err := manifold.FromSlice(a[3:])
	if err != nil {
		return nil, err
	}
	qb, err := manifold.FromSlice(b[3:])
	if err != nil {
		return nil, err
	}
	qm, err := manifold.FromSlice(meas[3:])
	if err != nil {
		return nil, err
	}
	px, py, pz := manifold.RotateInv(qa, b[0]-a[0], b[1]-a[1], b[2]-a[2])
	rx, ry, rz := manifold.BoxMinus(quat.Mul(quat.Conj(qa), qb), qm)

	return []float64{meas[0] - px, meas[1] - py, meas[2] - pz, rx, ry, rz}, nil
}

// observation3DResidual: prediction is R_aᵀ(l − t_a).
func observation3DResidual(meas, pose, lm []float64) ([]float64, error) {
	q, err := manifold.FromSlice(pose[3:])
	if err != nil {
		return nil, err
	}
	px, py, pz := manifold.RotateInv(q, lm[0]-pose[0], lm[1]-pose[1], lm[2]-pose[2])

	return []float64{meas[0] - px, meas[1] - py, meas[2] - pz}, nil
}

// observation3DLandmarkJacobian returns ∂r/∂l = −R_aᵀ.
func observation3DLandmarkJacobian(pose []float64) (*mat.Dense, error) {
	q, err := manifold.FromSlice(pose[3:])
	if err != nil {
		return nil, err
	}
	r := manifold.RotationMatrix(q)
	j := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			j.Set(i, k, -r[k*3+i])
		}
	}

	return j, nil
}

// numericJacobians differentiates the residual with respect to every
// connected variable.
func (f *Factor) numericJacobians(vars []*Variable) ([]*mat.Dense, error) {
	out := make([]*mat.Dense, len(vars))
	for k := range vars {
		j, err := f.numericJacobian(vars, k)
		if err != nil {
			return nil, err
		}
		out[k] = j
	}

	return out, nil
}

// numericJacobian computes ∂r/∂δₖ by central differences of
// δ ↦ residual(..., Retract(varsₖ, δ), ...) around δ = 0.
// Evaluation never mutates the graph: perturbed copies are used.
func (f *Factor) numericJacobian(vars []*Variable, k int) (*mat.Dense, error) {
	n := vars[k].Dimension()
	origin, err := f.residual(vars)
	if err != nil {
		return nil, err
	}

	var evalErr error
	local := make([]*Variable, len(vars))
	copy(local, vars)
	fn := func(y, delta []float64) {
		est, err := vars[k].retracted(delta)
		if err != nil {
			evalErr = err
			return
		}
		local[k] = vars[k].withEstimate(est)
		r, err := f.residual(local)
		if err != nil {
			evalErr = err
			return
		}
		copy(y, r)
	}

	jac := mat.NewDense(f.resDim, n, nil)
	fd.Jacobian(jac, fn, make([]float64, n), &fd.JacobianSettings{
		Formula:     fd.Central,
		OriginValue: origin,
		Step:        numericStep,
	})
	if evalErr != nil {
		return nil, evalErr
	}

	return jac, nil
}
