// Package sparse implements the symmetric sparse storage and the sparse
// Cholesky factorization used to solve the Gauss–Newton normal equations.
//
// What
//
//   - Triplet: an append-only (i, j, v) accumulator for a symmetric n×n
//     matrix. Entries are folded onto the upper triangle; duplicates are
//     summed on Compress.
//   - Symmetric: compressed sparse column (CSC) storage of the upper triangle
//     (diagonal included), row indices ascending inside each column.
//   - Ordering: fill-reducing permutations (MinimumDegree, Natural).
//   - Cholesky: P·A·Pᵀ = L·Lᵀ computed column by column on the structural
//     nonzeros only ("up-looking" elimination driven by the elimination
//     tree), followed by permuted triangular solves.
//
// Why
//
//	A factor touches one or two variables, so the normal matrix is block
//	sparse with a pattern mirroring the factor graph. Ordering before the
//	numeric phase keeps the fill of L close to that pattern instead of
//	the O(n²) a dense factorization pays.
//
// Failure policy
//
//	A pivot that is zero, negative, NaN or below Tolerance·A[k,k] is
//	reported as ErrNotPositiveDefinite. The factorization never returns a
//	factor containing NaN.
//
// Complexity (n = dimension, |L| = nonzeros of the factor)
//
//   - Compress: O(nnz log nnz).
//   - MinimumDegree: O(Σ deg²) over the elimination graph.
//   - Factorize: O(Σₖ |L[:,k]|²) ≤ O(n·|L|); Solve: O(|L|).
package sparse
