// SPDX-License-Identifier: MIT

package parser

import (
	"fmt"

	fg "github.com/katalvlaran/graphslam/factorgraph"
)

// Vertex is one variable of a Model.
type Vertex struct {
	ID       int       `json:"id"`
	Type     string    `json:"type"`
	Position []float64 `json:"position"`
	Rotation []float64 `json:"rotation"`
}

// Edge is one factor of a Model. Vertices order is significant (from, to).
type Edge struct {
	Type              string    `json:"type"`
	Vertices          []int     `json:"vertices"`
	Restriction       []float64 `json:"restriction"`
	InformationMatrix []float64 `json:"informationMatrix"`
}

// Model is the format-neutral description of a factor graph.
type Model struct {
	Vertices []Vertex `json:"vertices"`
	Edges    []Edge   `json:"edges"`
}

// Vertex type tags.
const (
	VertexPose2D     = "POSE2D_ANGLE"
	VertexPosition2D = "POSITION2D"
	VertexPose3D     = "POSE3D_QUAT"
	VertexPosition3D = "POSITION3D"
)

// Edge type tags.
const (
	EdgePrior2DAngle  = "PRIOR2D_ANGLE"
	EdgePrior2D       = "PRIOR2D"
	EdgePrior3DQuat   = "PRIOR3D_QUAT"
	EdgePrior3D       = "PRIOR3D"
	EdgeOdometry2D    = "ODOMETRY2D_ANGLE"
	EdgeObservation2D = "OBSERVATION2D"
	EdgeOdometry3D    = "ODOMETRY3D_QUAT"
	EdgeObservation3D = "OBSERVATION3D"
)

// CheckTypes reports the first vertex or edge whose type tag is not
// supported, as a *ParseError wrapping ErrUnknownType.
func (m *Model) CheckTypes() error {
	for i, v := range m.Vertices {
		if _, ok := vertexTypes[v.Type]; !ok {
			return unknownVertexType(i, v)
		}
	}
	for i, e := range m.Edges {
		if _, ok := edgeTypes[e.Type]; !ok {
			return unknownEdgeType(i, e)
		}
	}

	return nil
}

func unknownVertexType(i int, v Vertex) error {
	return &ParseError{Msg: fmt.Sprintf("vertex %d (id %d): type %q", i, v.ID, v.Type), Err: ErrUnknownType}
}

func unknownEdgeType(i int, e Edge) error {
	return &ParseError{Msg: fmt.Sprintf("edge %d: type %q", i, e.Type), Err: ErrUnknownType}
}

// vertexType describes how a tag splits a variable estimate.
type vertexType struct {
	kind     fg.VariableKind
	position int
	rotation int
}

var vertexTypes = map[string]vertexType{
	VertexPose2D:     {fg.Pose2D, 2, 1},
	VertexPosition2D: {fg.Landmark2D, 2, 0},
	VertexPose3D:     {fg.Pose3D, 3, 4},
	VertexPosition3D: {fg.Landmark3D, 3, 0},
}

// edgeType binds a tag to a factor kind and the kind of its first variable.
type edgeType struct {
	kind  fg.FactorKind
	first fg.VariableKind
}

var edgeTypes = map[string]edgeType{
	EdgePrior2DAngle:  {fg.UnaryPosition, fg.Pose2D},
	EdgePrior2D:       {fg.UnaryPosition, fg.Landmark2D},
	EdgePrior3DQuat:   {fg.UnaryPosition, fg.Pose3D},
	EdgePrior3D:       {fg.UnaryPosition, fg.Landmark3D},
	EdgeOdometry2D:    {fg.Odometry2D, fg.Pose2D},
	EdgeObservation2D: {fg.Observation2D, fg.Pose2D},
	EdgeOdometry3D:    {fg.Odometry3D, fg.Pose3D},
	EdgeObservation3D: {fg.Observation3D, fg.Pose3D},
}

// vertexTag returns the tag of a variable kind.
func vertexTag(k fg.VariableKind) (string, bool) {
	for tag, vt := range vertexTypes {
		if vt.kind == k {
			return tag, true
		}
	}

	return "", false
}

// edgeTag returns the tag of a factor kind whose first variable has kind first.
func edgeTag(k fg.FactorKind, first fg.VariableKind) (string, bool) {
	for tag, et := range edgeTypes {
		if et.kind == k && et.first == first {
			return tag, true
		}
	}

	return "", false
}
