// Package parser converts between factor graphs and textual interchange
// formats.
//
// Formats (subpackages g2o and jsonfmt) only translate text to and from the
// format-neutral Model. BuildGraph turns a Model into a factorgraph.Graph;
// FromGraph goes the other way, so a parse → optimize → compose pipeline
// never touches format details outside the format packages.
//
// Type tags
//
//	vertices: POSE2D_ANGLE   position [x y]    rotation [θ]
//	          POSITION2D     position [x y]
//	          POSE3D_QUAT    position [x y z]  rotation [qx qy qz qw]
//	          POSITION3D     position [x y z]
//	edges:    PRIOR2D_ANGLE, PRIOR2D, PRIOR3D_QUAT, PRIOR3D (one vertex)
//	          ODOMETRY2D_ANGLE, OBSERVATION2D, ODOMETRY3D_QUAT, OBSERVATION3D (two vertices)
//
// An edge's informationMatrix is the full matrix, row-major.
package parser
