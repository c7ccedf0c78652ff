// SPDX-License-Identifier: MIT

package sparse

import "container/heap"

// Ordering selects the fill-reducing permutation applied before factorization.
type Ordering int

const (
	// MinimumDegree eliminates, at every step, the vertex of smallest current
	// degree in the elimination graph (ties: lowest index).
	MinimumDegree Ordering = iota

	// Natural keeps the assembly order.
	Natural
)

// String implements fmt.Stringer.
func (o Ordering) String() string {
	switch o {
	case MinimumDegree:
		return "minimum-degree"
	case Natural:
		return "natural"
	default:
		return "unknown"
	}
}

// Permutation returns perm, where perm[k] is the original index eliminated
// k-th. The result depends only on the sparsity pattern of s.
func (o Ordering) Permutation(s *Symmetric) []int {
	if o == Natural {
		perm := make([]int, s.n)
		for i := range perm {
			perm[i] = i
		}

		return perm
	}

	return minimumDegree(s.neighbours())
}

// Inverse returns pinv with pinv[perm[k]] = k.
func Inverse(perm []int) []int {
	pinv := make([]int, len(perm))
	for k, p := range perm {
		pinv[p] = k
	}

	return pinv
}

// minimumDegree runs exact minimum degree on the elimination graph.
// Stale heap entries are skipped on pop instead of being updated in place.
func minimumDegree(adj [][]int) []int {
	n := len(adj)
	nbrs := make([]map[int]struct{}, n)
	pq := make(degreeQueue, 0, n)
	for v := 0; v < n; v++ {
		nbrs[v] = make(map[int]struct{}, len(adj[v]))
		for _, u := range adj[v] {
			nbrs[v][u] = struct{}{}
		}
		pq = append(pq, degreeItem{vertex: v, degree: len(nbrs[v])})
	}
	heap.Init(&pq)

	eliminated := make([]bool, n)
	perm := make([]int, 0, n)
	clique := make([]int, 0, 16)
	for pq.Len() > 0 {
		it := heap.Pop(&pq).(degreeItem)
		v := it.vertex
		if eliminated[v] || it.degree != len(nbrs[v]) {
			continue
		}
		eliminated[v] = true
		perm = append(perm, v)

		clique = clique[:0]
		for u := range nbrs[v] {
			clique = append(clique, u)
		}
		for _, u := range clique {
			delete(nbrs[u], v)
			for _, w := range clique {
				if w != u {
					nbrs[u][w] = struct{}{}
				}
			}
		}
		nbrs[v] = nil
		for _, u := range clique {
			heap.Push(&pq, degreeItem{vertex: u, degree: len(nbrs[u])})
		}
	}

	return perm
}

type degreeItem struct {
	vertex int
	degree int
}

// degreeQueue is a min-heap on (degree, vertex).
type degreeQueue []degreeItem

func (q degreeQueue) Len() int { return len(q) }

func (q degreeQueue) Less(i, j int) bool {
	if q[i].degree != q[j].degree {
		return q[i].degree < q[j].degree
	}

	return q[i].vertex < q[j].vertex
}

func (q degreeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *degreeQueue) Push(x any) { *q = append(*q, x.(degreeItem)) }

func (q *degreeQueue) Pop() any {
	old := *q
	it := old[len(old)-1]
	*q = old[:len(old)-1]

	return it
}
