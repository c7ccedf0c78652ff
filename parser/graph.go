// SPDX-License-Identifier: MIT

package parser

import (
	"fmt"

	"go.uber.org/multierr"

	fg "github.com/katalvlaran/graphslam/factorgraph"
)

// BuildGraph converts m into a factor graph. Tag and shape violations are
// collected and reported together; an unsupported tag is a *ParseError
// wrapping ErrUnknownType. Structural checks are left to factorgraph.New.
func BuildGraph(m *Model) (*fg.Graph, error) {
	if m == nil {
		return nil, fmt.Errorf("nil model: %w", ErrShape)
	}

	var errs error
	kinds := make(map[int]fg.VariableKind, len(m.Vertices))
	vars := make([]fg.VariableSpec, 0, len(m.Vertices))
	for i, v := range m.Vertices {
		vt, ok := vertexTypes[v.Type]
		if !ok {
			errs = multierr.Append(errs, unknownVertexType(i, v))
			continue
		}
		if len(v.Position) != vt.position || len(v.Rotation) != vt.rotation {
			errs = multierr.Append(errs, fmt.Errorf("vertex %d (id %d, %s): position %d/%d, rotation %d/%d: %w",
				i, v.ID, v.Type, len(v.Position), vt.position, len(v.Rotation), vt.rotation, ErrShape))
			continue
		}
		est := make([]float64, 0, vt.position+vt.rotation)
		est = append(est, v.Position...)
		est = append(est, v.Rotation...)
		vars = append(vars, fg.VariableSpec{ID: v.ID, Kind: vt.kind, Estimate: est})
		kinds[v.ID] = vt.kind
	}

	factors := make([]fg.FactorSpec, 0, len(m.Edges))
	for i, e := range m.Edges {
		et, ok := edgeTypes[e.Type]
		if !ok {
			errs = multierr.Append(errs, unknownEdgeType(i, e))
			continue
		}
		if len(e.Vertices) > 0 {
			if k, known := kinds[e.Vertices[0]]; known && k != et.first {
				errs = multierr.Append(errs, fmt.Errorf("edge %d (%s): vertex %d is %s, want %s: %w",
					i, e.Type, e.Vertices[0], k, et.first, ErrShape))
				continue
			}
		}
		factors = append(factors, fg.FactorSpec{
			Kind:        et.kind,
			Variables:   append([]int(nil), e.Vertices...),
			Measurement: append([]float64(nil), e.Restriction...),
			Information: append([]float64(nil), e.InformationMatrix...),
		})
	}
	if errs != nil {
		return nil, errs
	}

	return fg.New(vars, factors)
}

// FromGraph describes g's current estimates and factors as a Model. A nil
// graph is a *ComposeError wrapping ErrShape.
func FromGraph(g *fg.Graph) (*Model, error) {
	if g == nil {
		return nil, &ComposeError{Err: fmt.Errorf("nil graph: %w", ErrShape)}
	}
	m := &Model{
		Vertices: make([]Vertex, 0, g.NumVariables()),
		Edges:    make([]Edge, 0, g.NumFactors()),
	}
	for _, v := range g.Variables() {
		tag, ok := vertexTag(v.Kind())
		if !ok {
			return nil, &ComposeError{Err: fmt.Errorf("variable %d kind %s: %w", v.ID(), v.Kind(), ErrUnknownType)}
		}
		est := v.Estimate()
		p := vertexTypes[tag].position
		m.Vertices = append(m.Vertices, Vertex{
			ID:       v.ID(),
			Type:     tag,
			Position: est[:p:p],
			Rotation: append([]float64{}, est[p:]...),
		})
	}

	for i, f := range g.Factors() {
		conn := g.Connected(f)
		tag, ok := edgeTag(f.Kind(), conn[0].Kind())
		if !ok {
			return nil, &ComposeError{Err: fmt.Errorf("factor %d kind %s on %s: %w", i, f.Kind(), conn[0].Kind(), ErrUnknownType)}
		}
		info := f.Information()
		n := info.SymmetricDim()
		flat := make([]float64, n*n)
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				flat[r*n+c] = info.At(r, c)
			}
		}
		m.Edges = append(m.Edges, Edge{
			Type:              tag,
			Vertices:          f.Variables(),
			Restriction:       f.Measurement(),
			InformationMatrix: flat,
		})
	}

	return m, nil
}
