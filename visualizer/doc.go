// Package visualizer renders a factor graph as a top-down (x, y) plot.
//
// Poses and landmarks are scatter points, odometry and observation factors
// are segments between their variables, and unary factors mark their
// measured position. 3-D variables are projected onto the x-y plane.
// Rendering only reads estimates and measurements; it never mutates the
// graph, and must not run concurrently with an optimization of that graph.
package visualizer
