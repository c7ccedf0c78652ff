package jsonfmt_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphslam/optimizer"
	"github.com/katalvlaran/graphslam/parser"
	"github.com/katalvlaran/graphslam/parser/jsonfmt"
)

const mixed = `{
  "vertices": [
    {"id": 0, "type": "POSE2D_ANGLE", "position": [0, 0], "rotation": [0]},
    {"id": 1, "type": "POSE2D_ANGLE", "position": [0.9, 0.1], "rotation": [0.05]},
    {"id": 2, "type": "POSITION2D", "position": [2, 1], "rotation": []},
    {"id": 3, "type": "POSE3D_QUAT", "position": [0, 0, 0], "rotation": [0, 0, 0, 1]},
    {"id": 4, "type": "POSITION3D", "position": [1, 2, 3], "rotation": []}
  ],
  "edges": [
    {"type": "PRIOR2D_ANGLE", "vertices": [0], "restriction": [0, 0, 0], "informationMatrix": [1, 0, 0, 0, 1, 0, 0, 0, 1]},
    {"type": "ODOMETRY2D_ANGLE", "vertices": [0, 1], "restriction": [1, 0, 0], "informationMatrix": [1, 0, 0, 0, 1, 0, 0, 0, 1]},
    {"type": "OBSERVATION2D", "vertices": [1, 2], "restriction": [1, 1], "informationMatrix": [1, 0, 0, 1]},
    {"type": "PRIOR2D", "vertices": [2], "restriction": [2, 1], "informationMatrix": [1, 0, 0, 1]},
    {"type": "PRIOR3D_QUAT", "vertices": [3], "restriction": [0, 0, 0, 0, 0, 0, 1],
     "informationMatrix": [1,0,0,0,0,0, 0,1,0,0,0,0, 0,0,1,0,0,0, 0,0,0,1,0,0, 0,0,0,0,1,0, 0,0,0,0,0,1]},
    {"type": "OBSERVATION3D", "vertices": [3, 4], "restriction": [1, 2, 3], "informationMatrix": [1, 0, 0, 0, 1, 0, 0, 0, 1]},
    {"type": "PRIOR3D", "vertices": [4], "restriction": [1, 2, 3], "informationMatrix": [2, 0, 0, 0, 2, 0, 0, 0, 2]}
  ]
}`

func TestParseMixed(t *testing.T) {
	m, err := parser.ParseString(jsonfmt.New(), mixed)
	require.NoError(t, err)
	require.Len(t, m.Vertices, 5)
	require.Len(t, m.Edges, 7)
	require.Equal(t, parser.VertexPose3D, m.Vertices[3].Type)
	require.Equal(t, []float64{0, 0, 0, 1}, m.Vertices[3].Rotation)

	g, err := parser.BuildGraph(m)
	require.NoError(t, err)
	require.Equal(t, 3+3+2+6+3, g.Dimension())
	require.Empty(t, g.UnanchoredComponents())
}

func TestRoundTripThroughGraph(t *testing.T) {
	p := jsonfmt.New()
	m, err := parser.ParseString(p, mixed)
	require.NoError(t, err)
	g, err := parser.BuildGraph(m)
	require.NoError(t, err)

	back, err := parser.FromGraph(g)
	require.NoError(t, err)
	require.Equal(t, m, back)

	text, err := parser.ComposeString(p, back)
	require.NoError(t, err)
	again, err := parser.ParseString(p, text)
	require.NoError(t, err)
	require.Equal(t, back, again)

	compact, err := parser.ComposeString(jsonfmt.New(jsonfmt.WithIndent("")), back)
	require.NoError(t, err)
	require.Less(t, len(compact), len(text))
}

func TestOptimizeThenCompose(t *testing.T) {
	p := jsonfmt.New()
	m, err := parser.ParseString(p, mixed)
	require.NoError(t, err)
	g, err := parser.BuildGraph(m)
	require.NoError(t, err)

	_, err = optimizer.Optimize(g, 3)
	require.NoError(t, err)

	out, err := parser.FromGraph(g)
	require.NoError(t, err)
	pose1 := out.Vertices[1]
	require.InDelta(t, 1, pose1.Position[0], 1e-6)
	require.InDelta(t, 0, pose1.Position[1], 1e-6)
	require.InDelta(t, 0, pose1.Rotation[0], 1e-6)
	q := out.Vertices[3].Rotation
	require.InDelta(t, 1, math.Abs(q[3]), 1e-9)
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
	}{
		{"syntax", "{\n  \"vertices\": [\n    {\"id\": 0,,}\n  ]\n}"},
		{"unknown field", `{"vertices": [], "edges": [], "extra": 1}`},
		{"missing vertices", `{"edges": [{"type": "PRIOR2D", "vertices": [0], "restriction": [0, 0], "informationMatrix": [1, 0, 0, 1]}]}`},
		{"missing edges", `{"vertices": [{"id": 0, "type": "POSITION2D", "position": [0, 0], "rotation": []}]}`},
		{"wrong type", `{"vertices": "none", "edges": []}`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parser.ParseString(jsonfmt.New(), tc.in)
			require.ErrorIs(t, err, parser.ErrParse)
			var pe *parser.ParseError
			require.ErrorAs(t, err, &pe)
		})
	}
}

func TestParseRejectsUnknownTags(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
	}{
		{"vertex", `{"vertices": [{"id": 0, "type": "POSE4D", "position": [0, 0], "rotation": [0]}],
			"edges": [{"type": "PRIOR2D_ANGLE", "vertices": [0], "restriction": [0, 0, 0], "informationMatrix": [1, 0, 0, 0, 1, 0, 0, 0, 1]}]}`},
		{"edge", `{"vertices": [{"id": 0, "type": "POSITION2D", "position": [0, 0], "rotation": []}],
			"edges": [{"type": "LOOP", "vertices": [0], "restriction": [0, 0], "informationMatrix": [1, 0, 0, 1]}]}`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m, err := parser.ParseString(jsonfmt.New(), tc.in)
			require.Nil(t, m)
			require.ErrorIs(t, err, parser.ErrParse)
			require.ErrorIs(t, err, parser.ErrUnknownType)
		})
	}
}

func TestBuildGraphRejectsBadModels(t *testing.T) {
	info2 := []float64{1, 0, 0, 1}
	for _, tc := range []struct {
		name   string
		model  parser.Model
		target error
	}{
		{
			name: "unknown vertex type",
			model: parser.Model{
				Vertices: []parser.Vertex{{ID: 0, Type: "POSE4D"}},
				Edges:    []parser.Edge{{Type: parser.EdgePrior2D, Vertices: []int{0}, Restriction: []float64{0, 0}, InformationMatrix: info2}},
			},
			target: parser.ErrUnknownType,
		},
		{
			name: "unknown edge type",
			model: parser.Model{
				Vertices: []parser.Vertex{{ID: 0, Type: parser.VertexPosition2D, Position: []float64{0, 0}}},
				Edges:    []parser.Edge{{Type: "LOOP", Vertices: []int{0}}},
			},
			target: parser.ErrUnknownType,
		},
		{
			name: "rotation length",
			model: parser.Model{
				Vertices: []parser.Vertex{{ID: 0, Type: parser.VertexPose2D, Position: []float64{0, 0}}},
				Edges:    []parser.Edge{{Type: parser.EdgePrior2D, Vertices: []int{0}, Restriction: []float64{0, 0}, InformationMatrix: info2}},
			},
			target: parser.ErrShape,
		},
		{
			name: "prior tag on the wrong kind",
			model: parser.Model{
				Vertices: []parser.Vertex{{ID: 0, Type: parser.VertexPose2D, Position: []float64{0, 0}, Rotation: []float64{0}}},
				Edges:    []parser.Edge{{Type: parser.EdgePrior3D, Vertices: []int{0}, Restriction: []float64{0, 0, 0}, InformationMatrix: []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}}},
			},
			target: parser.ErrShape,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parser.BuildGraph(&tc.model)
			require.ErrorIs(t, err, tc.target)
			if tc.target == parser.ErrUnknownType {
				require.ErrorIs(t, err, parser.ErrParse)
			}
		})
	}

	_, err := parser.BuildGraph(nil)
	require.ErrorIs(t, err, parser.ErrShape)
}
