// Package graphslam is a Graph-SLAM back-end: it estimates robot poses and
// landmark positions from noisy relative and absolute measurements arranged
// as a factor graph.
//
// What is inside
//
//	manifold/     angle wrapping, 2-D rotations, unit-quaternion exp/log
//	factorgraph/  Variables, Factors (residuals + Jacobians) and the Graph
//	sparse/       triplet/CSC symmetric storage, minimum-degree ordering,
//	              sparse Cholesky
//	solver/       one Solver contract: dense Cholesky, dense LU, sparse Cholesky
//	optimizer/    normal-equation assembly and fixed-iteration Gauss–Newton
//	parser/       format-neutral Model, g2o/ and jsonfmt/ formats
//	visualizer/   top-down plots of a graph (PNG, SVG, PDF)
//	cmd/graphslam CLI: optimize, convert, render
//
// Data flow
//
//	text ──parser──▶ Model ──BuildGraph──▶ Graph ──Optimize──▶ Graph ──FromGraph──▶ Model ──▶ text
//	                                                              └──visualizer──▶ image
//
// Quick example
//
//	m, _ := parser.ParseFile(jsonfmt.New(), "city.json")
//	g, _ := parser.BuildGraph(m)
//	rep, err := optimizer.Optimize(g, 10)
//
// The optimizer runs exactly the requested number of undamped Gauss–Newton
// steps; there is no convergence test. A graph needs at least one prior
// (UnaryPosition factor) per connected component, otherwise the normal
// equations are singular and Optimize fails.
package graphslam
