// Benchmarks for symbolic and numeric sparse Cholesky on block-banded
// matrices shaped like pose chains.
package sparse_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/graphslam/sparse"
)

var benchChains = []int{100, 1000}

var (
	sinkC *sparse.Cholesky
	sinkV []float64
)

// blockChain builds the normal-matrix pattern of a pose chain with 3×3
// blocks and a loop closure every 10 poses.
func blockChain(b *testing.B, poses int) *sparse.Symmetric {
	b.Helper()
	n := 3 * poses
	tr, err := sparse.NewTriplet(n, 9*4*poses)
	if err != nil {
		b.Fatal(err)
	}
	couple := func(p, q int) {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				if err := tr.Add(3*p+i, 3*q+j, 0.1); err != nil {
					b.Fatal(err)
				}
			}
		}
	}
	for p := 0; p < poses; p++ {
		for i := 0; i < 3; i++ {
			_ = tr.Add(3*p+i, 3*p+i, 10)
		}
		if p+1 < poses {
			couple(p, p+1)
		}
		if p >= 10 && p%10 == 0 {
			couple(p-10, p)
		}
	}

	return tr.Compress()
}

func BenchmarkFactorize(b *testing.B) {
	b.ReportAllocs()
	for _, poses := range benchChains {
		for _, ord := range []sparse.Ordering{sparse.MinimumDegree, sparse.Natural} {
			b.Run(fmt.Sprintf("poses=%d/%s", poses, ord), func(b *testing.B) {
				a := blockChain(b, poses)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					ch, err := sparse.Factorize(a, sparse.WithOrdering(ord))
					if err != nil {
						b.Fatal(err)
					}
					sinkC = ch
				}
			})
		}
	}
}

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	for _, poses := range benchChains {
		b.Run(fmt.Sprintf("poses=%d", poses), func(b *testing.B) {
			a := blockChain(b, poses)
			ch, err := sparse.Factorize(a)
			if err != nil {
				b.Fatal(err)
			}
			rhs := make([]float64, a.Dim())
			for i := range rhs {
				rhs[i] = 1
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				x, err := ch.Solve(rhs)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = x
			}
		})
	}
}
