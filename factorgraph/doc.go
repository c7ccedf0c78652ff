// Package factorgraph defines the estimation problem solved by the optimizer:
// Variables (poses and landmarks), Factors (measurement-derived constraints
// over one or two Variables) and the Graph that owns both.
//
// What
//
//   - Variable: a closed set of kinds (Pose2D, Landmark2D, Pose3D, Landmark3D)
//     with a fixed-size estimate and a manifold-aware Retract rule.
//   - Factor: a closed set of kinds (UnaryPosition, Odometry2D, Observation2D,
//     Odometry3D, Observation3D) that compute a residual and one Jacobian
//     block per connected Variable.
//   - Graph: an arena of Variables and Factors plus an adjacency index
//     (variable id → incident factor indices) built once by New.
//
// Conventions
//
//   - Residual r = measurement ⊖ prediction. Angles are wrapped into (−π, π].
//   - Jacobians are ∂r/∂δ where δ is the tangent increment fed to Retract,
//     so Retract(δ) followed by Residual is linearized exactly by r + J·δ.
//   - Each Variable owns the contiguous slice [Offset, Offset+Dimension) of
//     the global state vector; offsets follow declaration order.
//
// Lifecycle
//
//	A Graph is built once with New and its topology is frozen afterwards.
//	Only Variable estimates change, and only through Retract. The Graph does
//	not lock: one optimization call owns it at a time.
//
// Errors
//
//   - Construction problems are reported as *ConstructionError values
//     aggregated with multierr; every one matches ErrGraphConstruction.
//   - ErrDimensionMismatch for a Retract delta of the wrong length.
//   - ErrVariableMismatch when a Factor is evaluated against the wrong
//     Variables.
package factorgraph
