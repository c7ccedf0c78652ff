// Package solver defines the linear-solver contract used by the optimizer
// and its three interchangeable strategies.
//
//   - DenseCholesky expands H to a gonum SymDense and factors H = L·Lᵀ.
//     Requires H symmetric positive definite. O(n³).
//   - DenseLU factors P·H = L·U with partial pivoting on a flat row-major
//     buffer. Makes no symmetry assumption. O(n³).
//   - SparseCholesky orders, factors and solves on the structural nonzeros
//     (package sparse). The default, and the only one that scales with the
//     sparsity of a factor graph.
//
// Every failure is a *SolveError; errors.Is(err, ErrSolve) holds for all
// of them, and the concrete cause (ErrSingular, ErrNotPositiveDefinite,
// ErrDimensionMismatch) is reachable through errors.Is as well.
package solver
