// SPDX-License-Identifier: MIT

package factorgraph

import (
	"fmt"

	"go.uber.org/multierr"
)

// Graph owns all Variables and Factors of one estimation problem.
//
// variables is an arena in declaration order; index maps a variable id to its
// arena slot. adjacency maps a variable id to the indices of its incident
// factors (ascending). Neither index changes after New returns.
type Graph struct {
	variables []*Variable
	index     map[int]int
	factors   []*Factor
	adjacency map[int][]int
	dim       int
}

// New validates the specs and builds a Graph.
//
// Offsets are assigned contiguously in declaration order. Every violation is
// collected; the returned error is a multierr combination of
// *ConstructionError values, each matching ErrGraphConstruction. Factors
// touching a rejected variable are skipped without a second report.
//
// Complexity: O(V + F).
func New(variables []VariableSpec, factors []FactorSpec, opts ...Option) (*Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var errs error
	if len(variables) == 0 {
		errs = multierr.Append(errs, &ConstructionError{Err: ErrNoVariables})
	}
	if len(factors) == 0 {
		errs = multierr.Append(errs, &ConstructionError{Err: ErrNoFactors})
	}

	g := &Graph{
		variables: make([]*Variable, 0, len(variables)),
		index:     make(map[int]int, len(variables)),
		factors:   make([]*Factor, 0, len(factors)),
		adjacency: make(map[int][]int, len(variables)),
	}

	rejected := make(map[int]bool)
	for i, spec := range variables {
		if _, dup := g.index[spec.ID]; dup {
			errs = multierr.Append(errs, variableErrorf(i, ErrDuplicateVariable, "id %d", spec.ID))
			continue
		}
		v, err := newVariable(spec)
		if err != nil {
			errs = multierr.Append(errs, &ConstructionError{Subject: "variable", Index: i, Err: err})
			rejected[spec.ID] = true
			continue
		}
		v.offset = g.dim
		g.dim += v.Dimension()
		g.index[v.id] = len(g.variables)
		g.variables = append(g.variables, v)
	}

	for i, spec := range factors {
		if len(spec.Variables) == 0 || len(spec.Variables) > 2 {
			errs = multierr.Append(errs, factorErrorf(i, ErrArity, "%d variables", len(spec.Variables)))
			continue
		}
		if len(spec.Variables) == 2 && spec.Variables[0] == spec.Variables[1] {
			errs = multierr.Append(errs, factorErrorf(i, ErrArity, "variable %d connected to itself", spec.Variables[0]))
			continue
		}
		vars := make([]*Variable, 0, len(spec.Variables))
		missing := false
		for _, id := range spec.Variables {
			slot, ok := g.index[id]
			if !ok {
				// a rejected variable was already reported
				if !rejected[id] {
					errs = multierr.Append(errs, factorErrorf(i, ErrUnknownVariable, "id %d", id))
				}
				missing = true
				continue
			}
			vars = append(vars, g.variables[slot])
		}
		if missing {
			continue
		}
		f, err := newFactor(spec, vars, o)
		if err != nil {
			errs = multierr.Append(errs, &ConstructionError{Subject: "factor", Index: i, Err: err})
			continue
		}
		fi := len(g.factors)
		g.factors = append(g.factors, f)
		for _, id := range f.variables {
			g.adjacency[id] = append(g.adjacency[id], fi)
		}
	}

	if errs != nil {
		return nil, errs
	}

	return g, nil
}

// Dimension returns the size of the global state vector (Σ variable dimensions).
func (g *Graph) Dimension() int { return g.dim }

// NumVariables returns the number of variables.
func (g *Graph) NumVariables() int { return len(g.variables) }

// NumFactors returns the number of factors.
func (g *Graph) NumFactors() int { return len(g.factors) }

// Variables returns the variables in declaration (offset) order.
// The slice is a copy; the *Variable values are shared with the graph.
func (g *Graph) Variables() []*Variable {
	out := make([]*Variable, len(g.variables))
	copy(out, g.variables)

	return out
}

// Factors returns the factors in declaration order. The slice is a copy.
func (g *Graph) Factors() []*Factor {
	out := make([]*Factor, len(g.factors))
	copy(out, g.factors)

	return out
}

// Variable returns the variable with the given id.
func (g *Graph) Variable(id int) (*Variable, bool) {
	slot, ok := g.index[id]
	if !ok {
		return nil, false
	}

	return g.variables[slot], true
}

// FactorsOf returns the indices (into Factors()) of the factors incident to
// the variable id, ascending. Unknown ids yield nil.
func (g *Graph) FactorsOf(id int) []int {
	adj := g.adjacency[id]
	if adj == nil {
		return nil
	}
	out := make([]int, len(adj))
	copy(out, adj)

	return out
}

// Connected returns the variables of factor f in the factor's order.
// f must belong to g.
func (g *Graph) Connected(f *Factor) []*Variable {
	out := make([]*Variable, len(f.variables))
	for i, id := range f.variables {
		out[i] = g.variables[g.index[id]]
	}

	return out
}

// Retract applies the global increment dx, whose slice at each variable's
// offset is that variable's tangent increment. Every new estimate is computed
// before any is stored, so on error no variable has changed.
//
// Returns ErrDimensionMismatch if len(dx) != Dimension() and ErrNonFinite
// if dx holds NaN or ±Inf.
func (g *Graph) Retract(dx []float64) error {
	if len(dx) != g.dim {
		return fmt.Errorf("%w: graph wants %d, got %d", ErrDimensionMismatch, g.dim, len(dx))
	}
	if !allFinite(dx) {
		return fmt.Errorf("%w: increment", ErrNonFinite)
	}

	next := make([][]float64, len(g.variables))
	for i, v := range g.variables {
		est, err := v.retracted(dx[v.offset : v.offset+v.Dimension()])
		if err != nil {
			return err
		}
		next[i] = est
	}
	for i, v := range g.variables {
		copy(v.estimate, next[i])
	}

	return nil
}
