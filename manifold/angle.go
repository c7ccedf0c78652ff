// SPDX-License-Identifier: MIT

package manifold

import "math"

// TwoPi is a full turn in radians.
const TwoPi = 2 * math.Pi

// WrapAngle returns a normalized into (−π, π].
// math.Remainder already lands in [−π, π]; the lower bound is folded onto +π
// so that a half turn has a single representation.
//
// Complexity: O(1).
func WrapAngle(a float64) float64 {
	r := math.Remainder(a, TwoPi)
	if r <= -math.Pi {
		r += TwoPi
	}

	return r
}

// AngleDiff returns the wrapped difference a − b.
func AngleDiff(a, b float64) float64 {
	return WrapAngle(a - b)
}

// Rotate2 returns R(theta)·(x, y).
func Rotate2(theta, x, y float64) (float64, float64) {
	s, c := math.Sincos(theta)

	return c*x - s*y, s*x + c*y
}

// RotateInv2 returns R(theta)ᵀ·(x, y), i.e. (x, y) expressed in a frame
// rotated by theta.
func RotateInv2(theta, x, y float64) (float64, float64) {
	s, c := math.Sincos(theta)

	return c*x + s*y, -s*x + c*y
}

// DRotateInv2 returns ∂(R(theta)ᵀ·v)/∂theta for v = (x, y).
// This is the cross term that couples a pose's heading with every
// position it observes.
func DRotateInv2(theta, x, y float64) (float64, float64) {
	s, c := math.Sincos(theta)

	return -s*x + c*y, -c*x - s*y
}
