// SPDX-License-Identifier: MIT

package manifold

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// QuatLen is the length of a quaternion stored as a slice ([qx, qy, qz, qw]).
const QuatLen = 4

// smallAngle is the threshold below which Exp/Log switch to their first-order
// expansions to avoid dividing by a vanishing norm.
const smallAngle = 1e-12

// ErrZeroQuaternion is returned when a quaternion with zero norm is supplied
// where a rotation is expected.
var ErrZeroQuaternion = errors.New("manifold: zero-norm quaternion")

// FromSlice reads [qx, qy, qz, qw] starting at s[0] and returns the normalized
// rotation. The caller guarantees len(s) >= QuatLen.
func FromSlice(s []float64) (quat.Number, error) {
	q := quat.Number{Real: s[3], Imag: s[0], Jmag: s[1], Kmag: s[2]}

	return Normalize(q)
}

// ToSlice writes q into dst as [qx, qy, qz, qw].
func ToSlice(dst []float64, q quat.Number) {
	dst[0], dst[1], dst[2], dst[3] = q.Imag, q.Jmag, q.Kmag, q.Real
}

// Normalize returns q/|q|.
func Normalize(q quat.Number) (quat.Number, error) {
	n := quat.Abs(q)
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return quat.Number{}, ErrZeroQuaternion
	}

	return quat.Scale(1/n, q), nil
}

// Exp maps a rotation vector ω (axis·angle) onto the unit quaternion
// (cos(|ω|/2), sin(|ω|/2)·ω/|ω|).
func Exp(wx, wy, wz float64) quat.Number {
	theta := math.Sqrt(wx*wx + wy*wy + wz*wz)
	if theta < smallAngle {
		q, _ := Normalize(quat.Number{Real: 1, Imag: wx / 2, Jmag: wy / 2, Kmag: wz / 2})
		return q
	}
	s, c := math.Sincos(theta / 2)
	k := s / theta

	return quat.Number{Real: c, Imag: k * wx, Jmag: k * wy, Kmag: k * wz}
}

// Log is the inverse of Exp for unit quaternions. The hemisphere is chosen so
// that the returned angle is at most π.
func Log(q quat.Number) (float64, float64, float64) {
	if q.Real < 0 {
		q = quat.Scale(-1, q)
	}
	n := math.Sqrt(q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
	if n < smallAngle {
		return 2 * q.Imag, 2 * q.Jmag, 2 * q.Kmag
	}
	k := 2 * math.Atan2(n, q.Real) / n

	return k * q.Imag, k * q.Jmag, k * q.Kmag
}

// Rotate returns q·v·q* for the vector v.
func Rotate(q quat.Number, x, y, z float64) (float64, float64, float64) {
	v := quat.Number{Imag: x, Jmag: y, Kmag: z}
	r := quat.Mul(quat.Mul(q, v), quat.Conj(q))

	return r.Imag, r.Jmag, r.Kmag
}

// RotateInv returns q*·v·q, i.e. v expressed in the frame described by q.
func RotateInv(q quat.Number, x, y, z float64) (float64, float64, float64) {
	return Rotate(quat.Conj(q), x, y, z)
}

// RotationMatrix returns R(q) in row-major order.
func RotationMatrix(q quat.Number) [9]float64 {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag

	return [9]float64{
		1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y),
		2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x),
		2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y),
	}
}

// BoxMinus returns Log(a⁻¹ ⊗ b): the body-frame rotation vector that carries
// a onto b.
func BoxMinus(a, b quat.Number) (float64, float64, float64) {
	return Log(quat.Mul(quat.Conj(a), b))
}
