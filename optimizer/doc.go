// Package optimizer runs fixed-iteration Gauss–Newton on a factor graph.
//
// One iteration:
//
//  1. Assemble walks every factor once at the current estimates and builds
//     the normal equations H·Δx = b, with H = Σ JᵀΩJ (sparse, upper CSC)
//     and b = −Σ JᵀΩr.
//  2. The configured solver.Solver returns Δx.
//  3. Every variable is retracted by its slice Δx[offset : offset+dim].
//
// Optimize always performs exactly the requested number of iterations. There
// is no convergence test, damping or line search. A failed solve aborts the
// loop; updates from earlier iterations are kept.
//
// The graph must not be read or written by anyone else while Optimize runs.
package optimizer
