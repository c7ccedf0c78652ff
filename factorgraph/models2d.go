// SPDX-License-Identifier: MIT

package factorgraph

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphslam/manifold"
)

// unaryResidual returns measurement ⊖ estimate for any variable kind.
func unaryResidual(kind VariableKind, meas, est []float64) ([]float64, error) {
	switch kind {
	case Pose2D:
		return []float64{
			meas[0] - est[0],
			meas[1] - est[1],
			manifold.AngleDiff(meas[2], est[2]),
		}, nil
	case Landmark2D, Landmark3D:
		r := make([]float64, len(est))
		for i := range est {
			r[i] = meas[i] - est[i]
		}
		return r, nil
	case Pose3D:
		return pose3DUnaryResidual(meas, est)
	default:
		return nil, fmt.Errorf("%w: variable kind %d", ErrUnknownKind, int(kind))
	}
}

// odometry2DResidual: prediction is B expressed in A's frame,
// [R(θa)ᵀ(tb − ta), θb − θa].
func odometry2DResidual(meas, a, b []float64) []float64 {
	px, py := manifold.RotateInv2(a[2], b[0]-a[0], b[1]-a[1])

	return []float64{
		meas[0] - px,
		meas[1] - py,
		manifold.AngleDiff(meas[2], b[2]-a[2]),
	}
}

// odometry2DJacobians returns ∂r/∂A and ∂r/∂B.
//
//	∂r/∂A = [ Rᵀ   −∂Rᵀ/∂θa·(tb−ta) ]   ∂r/∂B = [ −Rᵀ  0 ]
//	        [ 0          1          ]           [  0  −1 ]
func odometry2DJacobians(a, b []float64) (*mat.Dense, *mat.Dense) {
	s, c := math.Sincos(a[2])
	dx, dy := manifold.DRotateInv2(a[2], b[0]-a[0], b[1]-a[1])

	ja := mat.NewDense(3, 3, []float64{
		c, s, -dx,
		-s, c, -dy,
		0, 0, 1,
	})
	jb := mat.NewDense(3, 3, []float64{
		-c, -s, 0,
		s, -c, 0,
		0, 0, -1,
	})

	return ja, jb
}

// observation2DResidual: prediction is the landmark in the pose's frame.
func observation2DResidual(meas, pose, lm []float64) []float64 {
	px, py := manifold.RotateInv2(pose[2], lm[0]-pose[0], lm[1]-pose[1])

	return []float64{meas[0] - px, meas[1] - py}
}

// observation2DJacobians returns ∂r/∂pose (2×3) and ∂r/∂landmark (2×2).
func observation2DJacobians(pose, lm []float64) (*mat.Dense, *mat.Dense) {
	s, c := math.Sincos(pose[2])
	dx, dy := manifold.DRotateInv2(pose[2], lm[0]-pose[0], lm[1]-pose[1])

	jp := mat.NewDense(2, 3, []float64{
		c, s, -dx,
		-s, c, -dy,
	})
	jl := mat.NewDense(2, 2, []float64{
		-c, -s,
		s, -c,
	})

	return jp, jl
}
