// Package manifold holds the small pieces of Lie-group arithmetic that the
// factor graph needs to treat rotations correctly.
//
// What
//
//   - WrapAngle maps any planar angle into the canonical interval (−π, π].
//   - Rotate2 / RotateInv2 apply a planar rotation R(θ) or its transpose.
//   - Quaternion helpers (FromSlice, Exp, Log, RotateInv, ...) operate on
//     gonum's quat.Number and always return unit quaternions.
//
// Why
//
//	Angles live on a circle: summing increments across Gauss–Newton
//	iterations without wrapping eventually leaves the valid representation,
//	and residuals computed as plain differences can jump by 2π.
//
// Conventions
//
//   - Quaternion slices are stored as [qx, qy, qz, qw] (scalar last), which is
//     the layout used by the JSON interchange format.
//   - Rotation increments are body-frame: q ← q ⊗ Exp(ω).
//
// Complexity: every function is O(1).
package manifold
