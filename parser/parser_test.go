package parser_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	fg "github.com/katalvlaran/graphslam/factorgraph"
	"github.com/katalvlaran/graphslam/parser"
)

func TestParseErrorFormatting(t *testing.T) {
	cause := errors.New("boom")
	e := &parser.ParseError{Line: 7, Msg: "malformed EDGE_SE2", Err: cause}
	require.Equal(t, "parse error at line 7: malformed EDGE_SE2: boom", e.Error())
	require.ErrorIs(t, e, parser.ErrParse)
	require.ErrorIs(t, e, cause)

	e = &parser.ParseError{Msg: "no edges"}
	require.Equal(t, "parse error: no edges", e.Error())
	require.ErrorIs(t, e, parser.ErrParse)

	ce := &parser.ComposeError{Type: "POSITION3D", Err: parser.ErrUnknownType}
	require.Equal(t, "compose error (POSITION3D): parser: unknown type tag", ce.Error())
	require.ErrorIs(t, ce, parser.ErrCompose)
	require.ErrorIs(t, ce, parser.ErrUnknownType)
}

func TestFromGraphTags(t *testing.T) {
	eye := func(n int) []float64 {
		m := make([]float64, n*n)
		for i := 0; i < n; i++ {
			m[i*n+i] = 1
		}
		return m
	}
	g, err := fg.New(
		[]fg.VariableSpec{
			{ID: 0, Kind: fg.Pose2D, Estimate: []float64{1, 2, 0.5}},
			{ID: 1, Kind: fg.Landmark2D, Estimate: []float64{3, 4}},
			{ID: 2, Kind: fg.Pose3D, Estimate: []float64{0, 0, 0, 0, 0, 0, 1}},
			{ID: 3, Kind: fg.Pose3D, Estimate: []float64{1, 0, 0, 0, 0, 0, 1}},
			{ID: 4, Kind: fg.Landmark3D, Estimate: []float64{1, 1, 1}},
		},
		[]fg.FactorSpec{
			{Kind: fg.UnaryPosition, Variables: []int{0}, Measurement: []float64{1, 2, 0.5}, Information: eye(3)},
			{Kind: fg.UnaryPosition, Variables: []int{1}, Measurement: []float64{3, 4}, Information: eye(2)},
			{Kind: fg.Observation2D, Variables: []int{0, 1}, Measurement: []float64{1, 1}, Information: eye(2)},
			{Kind: fg.UnaryPosition, Variables: []int{2}, Measurement: []float64{0, 0, 0, 0, 0, 0, 1}, Information: eye(6)},
			{Kind: fg.Odometry3D, Variables: []int{2, 3}, Measurement: []float64{1, 0, 0, 0, 0, 0, 1}, Information: eye(6)},
			{Kind: fg.Observation3D, Variables: []int{3, 4}, Measurement: []float64{0, 1, 1}, Information: eye(3)},
			{Kind: fg.UnaryPosition, Variables: []int{4}, Measurement: []float64{1, 1, 1}, Information: eye(3)},
		},
	)
	require.NoError(t, err)

	m, err := parser.FromGraph(g)
	require.NoError(t, err)

	var vtags, etags []string
	for _, v := range m.Vertices {
		vtags = append(vtags, v.Type)
	}
	for _, e := range m.Edges {
		etags = append(etags, e.Type)
	}
	require.Equal(t, []string{"POSE2D_ANGLE", "POSITION2D", "POSE3D_QUAT", "POSE3D_QUAT", "POSITION3D"}, vtags)
	require.Equal(t, []string{"PRIOR2D_ANGLE", "PRIOR2D", "OBSERVATION2D", "PRIOR3D_QUAT", "ODOMETRY3D_QUAT", "OBSERVATION3D", "PRIOR3D"}, etags)

	require.Equal(t, []float64{1, 2}, m.Vertices[0].Position)
	require.Equal(t, []float64{0.5}, m.Vertices[0].Rotation)
	require.Equal(t, []float64{}, m.Vertices[1].Rotation)
	require.Equal(t, eye(6), m.Edges[3].InformationMatrix)

	// the model describes the same graph
	g2, err := parser.BuildGraph(m)
	require.NoError(t, err)
	require.Equal(t, g.Dimension(), g2.Dimension())
	require.Equal(t, g.NumFactors(), g2.NumFactors())
}

// failingParser exercises the helpers' error paths.
type failingParser struct{}

func (failingParser) Parse(io.Reader) (*parser.Model, error) {
	return nil, &parser.ParseError{Msg: "always"}
}

func (failingParser) Compose(io.Writer, *parser.Model) error {
	return &parser.ComposeError{Err: errors.New("always")}
}

func TestHelpersPropagateErrors(t *testing.T) {
	_, err := parser.ParseString(failingParser{}, "")
	require.ErrorIs(t, err, parser.ErrParse)

	_, err = parser.ComposeString(failingParser{}, &parser.Model{})
	require.ErrorIs(t, err, parser.ErrCompose)

	require.ErrorIs(t, parser.ComposeFile(failingParser{}, t.TempDir()+"/x", &parser.Model{}), parser.ErrCompose)
	require.ErrorIs(t, parser.ComposeFile(nopParser{}, t.TempDir()+"/missing/dir/x", &parser.Model{}), parser.ErrCompose)
}

func TestFromGraphNil(t *testing.T) {
	m, err := parser.FromGraph(nil)
	require.Nil(t, m)
	require.ErrorIs(t, err, parser.ErrCompose)
	require.ErrorIs(t, err, parser.ErrShape)
}

func TestCheckTypes(t *testing.T) {
	m := &parser.Model{
		Vertices: []parser.Vertex{{ID: 0, Type: parser.VertexPosition2D}},
		Edges:    []parser.Edge{{Type: parser.EdgePrior2D}},
	}
	require.NoError(t, m.CheckTypes())

	m.Edges[0].Type = "EDGE_SE2"
	err := m.CheckTypes()
	require.ErrorIs(t, err, parser.ErrParse)
	require.ErrorIs(t, err, parser.ErrUnknownType)
	require.Contains(t, err.Error(), `"EDGE_SE2"`)
}

type nopParser struct{}

func (nopParser) Parse(io.Reader) (*parser.Model, error) { return &parser.Model{}, nil }

func (nopParser) Compose(io.Writer, *parser.Model) error { return nil }
