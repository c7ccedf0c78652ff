// SPDX-License-Identifier: MIT

package factorgraph

// VariableKind is the closed set of state types a Variable can hold.
type VariableKind int

const (
	// Pose2D is a planar pose [x, y, θ].
	Pose2D VariableKind = iota + 1
	// Landmark2D is a planar point [x, y].
	Landmark2D
	// Pose3D is a spatial pose [x, y, z, qx, qy, qz, qw] with a 6-dof tangent.
	Pose3D
	// Landmark3D is a spatial point [x, y, z].
	Landmark3D
)

// String implements fmt.Stringer.
func (k VariableKind) String() string {
	switch k {
	case Pose2D:
		return "Pose2D"
	case Landmark2D:
		return "Landmark2D"
	case Pose3D:
		return "Pose3D"
	case Landmark3D:
		return "Landmark3D"
	default:
		return "UnknownVariableKind"
	}
}

// Valid reports whether k belongs to the closed set.
func (k VariableKind) Valid() bool { return k >= Pose2D && k <= Landmark3D }

// Dimension is the number of degrees of freedom, i.e. the length of the
// increment accepted by Retract and of the variable's slice in the state.
func (k VariableKind) Dimension() int {
	switch k {
	case Pose2D:
		return 3
	case Landmark2D:
		return 2
	case Pose3D:
		return 6
	case Landmark3D:
		return 3
	default:
		return 0
	}
}

// EstimateLen is the length of the stored estimate. It differs from
// Dimension only for Pose3D, whose rotation is stored as a quaternion.
func (k VariableKind) EstimateLen() int {
	if k == Pose3D {
		return 7
	}

	return k.Dimension()
}

// FactorKind is the closed set of constraint types.
type FactorKind int

const (
	// UnaryPosition anchors a single variable to an absolute measurement.
	UnaryPosition FactorKind = iota + 1
	// Odometry2D is a relative pose between two Pose2D variables.
	Odometry2D
	// Observation2D is a Landmark2D position seen from a Pose2D.
	Observation2D
	// Odometry3D is a relative pose between two Pose3D variables.
	Odometry3D
	// Observation3D is a Landmark3D position seen from a Pose3D.
	Observation3D
)

// String implements fmt.Stringer.
func (k FactorKind) String() string {
	switch k {
	case UnaryPosition:
		return "UnaryPosition"
	case Odometry2D:
		return "Odometry2D"
	case Observation2D:
		return "Observation2D"
	case Odometry3D:
		return "Odometry3D"
	case Observation3D:
		return "Observation3D"
	default:
		return "UnknownFactorKind"
	}
}

// Valid reports whether k belongs to the closed set.
func (k FactorKind) Valid() bool { return k >= UnaryPosition && k <= Observation3D }

// signature lists the variable kinds a factor kind connects, in order.
// UnaryPosition accepts any kind and is handled separately.
func (k FactorKind) signature() []VariableKind {
	switch k {
	case Odometry2D:
		return []VariableKind{Pose2D, Pose2D}
	case Observation2D:
		return []VariableKind{Pose2D, Landmark2D}
	case Odometry3D:
		return []VariableKind{Pose3D, Pose3D}
	case Observation3D:
		return []VariableKind{Pose3D, Landmark3D}
	default:
		return nil
	}
}

// residualDim returns the residual length of a factor of kind k whose first
// connected variable has kind first.
func (k FactorKind) residualDim(first VariableKind) int {
	switch k {
	case UnaryPosition:
		return first.Dimension()
	case Odometry2D:
		return 3
	case Observation2D:
		return 2
	case Odometry3D:
		return 6
	case Observation3D:
		return 3
	default:
		return 0
	}
}

// measurementLen returns the measurement length of a factor of kind k whose
// first connected variable has kind first.
func (k FactorKind) measurementLen(first VariableKind) int {
	switch k {
	case UnaryPosition:
		return first.EstimateLen()
	case Odometry3D:
		return 7
	default:
		return k.residualDim(first)
	}
}
