// SPDX-License-Identifier: MIT

package optimizer

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphslam/factorgraph"
	"github.com/katalvlaran/graphslam/sparse"
)

// System is the linearization of a graph at its current estimates.
type System struct {
	// H is the Gauss–Newton approximation of the Hessian, Σ JᵀΩJ.
	H *sparse.Symmetric

	// B is the right-hand side −Σ JᵀΩr. The step Δx = H⁻¹·B is applied with +Δx.
	B []float64

	// Chi2 is the weighted squared error Σ rᵀΩr at the linearization point.
	Chi2 float64
}

// Assemble linearizes every factor of g and accumulates the normal equations
// H·Δx = b at the current estimates.
// Implementation:
//   - Stage 1: size a sparse.Triplet from the factor block sizes.
//   - Stage 2: per factor, in declaration order: r, {Jₖ}, Ω; add Jₖ1ᵀΩJₖ2
//     at (offset(k1), offset(k2)) for k1 ≤ k2 (diagonal blocks upper only)
//     and −JₖᵀΩr to b at offset(k).
//   - Stage 3: Compress sums duplicate coordinates into CSC.
//
// Inputs:
//   - g: the graph; estimates are read, never written.
//
// Returns:
//   - *System: H (upper CSC), B and χ² = Σ rᵀΩr.
//
// Errors:
//   - ErrNilGraph; ErrAssembly wrapping the factor's residual or Jacobian
//     error (with its index and kind).
//
// Complexity:
//   - Time O(Σ_f d_f²·m_f + nnz log nnz), where d_f is the joint variable
//     dimension and m_f the residual dimension of factor f.
func Assemble(g *factorgraph.Graph) (*System, error) {
	if g == nil {
		return nil, optimizerErrorf(opAssemble, ErrNilGraph)
	}

	factors := g.Factors()
	capacity := 0
	for _, f := range factors {
		d := 0
		for _, v := range g.Connected(f) {
			d += v.Dimension()
		}
		capacity += d * (d + 1) / 2
	}
	trip, err := sparse.NewTriplet(g.Dimension(), capacity)
	if err != nil {
		return nil, optimizerErrorf(opAssemble, err)
	}

	sys := &System{B: make([]float64, g.Dimension())}
	for fi, f := range factors {
		chi2, err := accumulate(trip, sys.B, f, g.Connected(f))
		if err != nil {
			return nil, optimizerErrorf(opAssemble,
				fmt.Errorf("factor %d (%s): %w: %w", fi, f.Kind(), ErrAssembly, err))
		}
		sys.Chi2 += chi2
	}
	sys.H = trip.Compress()

	return sys, nil
}

// accumulate adds one factor's blocks and returns its rᵀΩr.
func accumulate(trip *sparse.Triplet, b []float64, f *factorgraph.Factor, vars []*factorgraph.Variable) (float64, error) {
	r, err := f.Residual(vars...)
	if err != nil {
		return 0, err
	}
	jac, err := f.Jacobians(vars...)
	if err != nil {
		return 0, err
	}
	omega := f.Information()
	rv := mat.NewVecDense(len(r), r)

	var or mat.VecDense
	or.MulVec(omega, rv)
	chi2 := mat.Dot(rv, &or)

	// ΩJₖ, reused by every block in column k.
	weighted := make([]*mat.Dense, len(jac))
	for k, j := range jac {
		var w mat.Dense
		w.Mul(omega, j)
		weighted[k] = &w
	}

	var block mat.Dense
	var grad mat.VecDense
	for k1, v1 := range vars {
		off1 := v1.Offset()

		grad.Reset()
		grad.MulVec(jac[k1].T(), &or)
		for i := 0; i < v1.Dimension(); i++ {
			b[off1+i] -= grad.AtVec(i)
		}

		for k2 := k1; k2 < len(vars); k2++ {
			v2 := vars[k2]
			off2 := v2.Offset()
			block.Reset()
			block.Mul(jac[k1].T(), weighted[k2])

			rows, cols := block.Dims()
			for i := 0; i < rows; i++ {
				j0 := 0
				if k1 == k2 {
					j0 = i
				}
				for j := j0; j < cols; j++ {
					// Add folds the lower triangle, so a block whose
					// offsets are reversed lands transposed in place.
					if err := trip.Add(off1+i, off2+j, block.At(i, j)); err != nil {
						return 0, err
					}
				}
			}
		}
	}

	return chi2, nil
}

// totalChi2 returns Σ rᵀΩr without linearizing.
func totalChi2(g *factorgraph.Graph) (float64, error) {
	var total float64
	var or mat.VecDense
	for fi, f := range g.Factors() {
		r, err := f.Residual(g.Connected(f)...)
		if err != nil {
			return 0, fmt.Errorf("factor %d (%s): %w", fi, f.Kind(), err)
		}
		rv := mat.NewVecDense(len(r), r)
		or.Reset()
		or.MulVec(f.Information(), rv)
		total += mat.Dot(rv, &or)
	}

	return total, nil
}
