// SPDX-License-Identifier: MIT

package factorgraph

// Component is a maximal set of variables linked through factors.
type Component struct {
	// Variables lists member ids in BFS visit order, starting from the member
	// declared first.
	Variables []int

	// Anchored reports whether at least one UnaryPosition factor touches the
	// component. It does not promise observability: a component whose only
	// prior is on a landmark still has a free heading. An unanchored
	// component always makes the normal equations singular.
	Anchored bool
}

// walker holds mutable BFS state over the variable/factor adjacency.
type walker struct {
	g       *Graph
	queue   []int
	visited map[int]bool
}

// Components returns the connected components of g in declaration order of
// their first member. Neighbours are expanded in ascending factor index, so
// the result is deterministic.
//
// Complexity: O(V + F).
func (g *Graph) Components() []Component {
	w := &walker{g: g, visited: make(map[int]bool, len(g.variables))}

	var out []Component
	for _, v := range g.variables {
		if w.visited[v.id] {
			continue
		}
		out = append(out, w.walk(v.id))
	}

	return out
}

// UnanchoredComponents returns the components without a UnaryPosition factor.
func (g *Graph) UnanchoredComponents() []Component {
	var out []Component
	for _, c := range g.Components() {
		if !c.Anchored {
			out = append(out, c)
		}
	}

	return out
}

func (w *walker) walk(start int) Component {
	var c Component
	w.queue = append(w.queue[:0], start)
	w.visited[start] = true

	for len(w.queue) > 0 {
		id := w.queue[0]
		w.queue = w.queue[1:]
		c.Variables = append(c.Variables, id)

		for _, fi := range w.g.adjacency[id] {
			f := w.g.factors[fi]
			if f.kind == UnaryPosition {
				c.Anchored = true
			}
			for _, nb := range f.variables {
				if !w.visited[nb] {
					w.visited[nb] = true
					w.queue = append(w.queue, nb)
				}
			}
		}
	}

	return c
}
