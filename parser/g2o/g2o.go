// SPDX-License-Identifier: MIT

package g2o

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphslam/parser"
)

// Line tags.
const (
	TagVertex = "VERTEX_SE2"
	TagEdge   = "EDGE_SE2"
	TagFix    = "FIX"
)

const (
	vertexTokens = 5
	edgeTokens   = 12
)

// upper lists the row-major indices of the 3×3 upper triangle in file order.
var upper = [6]int{0, 1, 2, 4, 5, 8}

// Parser implements parser.Parser for g2o text.
type Parser struct{}

var _ parser.Parser = Parser{}

// New returns a g2o Parser.
func New() Parser { return Parser{} }

type state int

const (
	inVertices state = iota
	inEdges
)

// Parse implements parser.Parser.
func (Parser) Parse(r io.Reader) (*parser.Model, error) {
	m := &parser.Model{}
	st := inVertices
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		tok := strings.Fields(text)

		switch tok[0] {
		case TagFix:
			if err := checkFix(tok); err != nil {
				return nil, &parser.ParseError{Line: line, Msg: "malformed FIX", Err: err}
			}
		case TagVertex:
			if st != inVertices {
				return nil, &parser.ParseError{Line: line, Msg: "vertex after the first edge"}
			}
			v, err := parseVertex(tok)
			if err != nil {
				return nil, &parser.ParseError{Line: line, Msg: "malformed " + TagVertex, Err: err}
			}
			m.Vertices = append(m.Vertices, v)
		case TagEdge:
			st = inEdges
			e, err := parseEdge(tok)
			if err != nil {
				return nil, &parser.ParseError{Line: line, Msg: "malformed " + TagEdge, Err: err}
			}
			m.Edges = append(m.Edges, e)
		default:
			return nil, &parser.ParseError{Line: line, Msg: fmt.Sprintf("tag %q", tok[0]), Err: parser.ErrUnknownType}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &parser.ParseError{Line: line, Msg: "read", Err: err}
	}
	if len(m.Vertices) == 0 {
		return nil, &parser.ParseError{Msg: "no vertices"}
	}
	if len(m.Edges) == 0 {
		return nil, &parser.ParseError{Msg: "no edges"}
	}

	return m, nil
}

func parseVertex(tok []string) (parser.Vertex, error) {
	if len(tok) != vertexTokens {
		return parser.Vertex{}, fmt.Errorf("%d tokens, want %d: %w", len(tok), vertexTokens, parser.ErrShape)
	}
	id, err := strconv.Atoi(tok[1])
	if err != nil {
		return parser.Vertex{}, err
	}
	vals, err := parseFloats(tok[2:])
	if err != nil {
		return parser.Vertex{}, err
	}

	return parser.Vertex{
		ID:       id,
		Type:     parser.VertexPose2D,
		Position: vals[:2:2],
		Rotation: vals[2:],
	}, nil
}

func parseEdge(tok []string) (parser.Edge, error) {
	if len(tok) != edgeTokens {
		return parser.Edge{}, fmt.Errorf("%d tokens, want %d: %w", len(tok), edgeTokens, parser.ErrShape)
	}
	from, err := strconv.Atoi(tok[1])
	if err != nil {
		return parser.Edge{}, err
	}
	to, err := strconv.Atoi(tok[2])
	if err != nil {
		return parser.Edge{}, err
	}
	vals, err := parseFloats(tok[3:])
	if err != nil {
		return parser.Edge{}, err
	}

	info := make([]float64, 9)
	for k, idx := range upper {
		v := vals[3+k]
		info[idx] = v
		info[(idx%3)*3+idx/3] = v
	}

	return parser.Edge{
		Type:              parser.EdgeOdometry2D,
		Vertices:          []int{from, to},
		Restriction:       vals[:3:3],
		InformationMatrix: info,
	}, nil
}

func checkFix(tok []string) error {
	if len(tok) < 2 {
		return fmt.Errorf("no vertex id: %w", parser.ErrShape)
	}
	for _, t := range tok[1:] {
		if _, err := strconv.Atoi(t); err != nil {
			return err
		}
	}

	return nil
}

func parseFloats(tok []string) ([]float64, error) {
	out := make([]float64, len(tok))
	for i, t := range tok {
		v, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// Compose implements parser.Parser. Only POSE2D_ANGLE vertices and
// ODOMETRY2D_ANGLE edges have a g2o form; anything else is a
// *parser.ComposeError and nothing is written.
func (Parser) Compose(w io.Writer, m *parser.Model) error {
	if m == nil {
		return &parser.ComposeError{Err: fmt.Errorf("nil model: %w", parser.ErrShape)}
	}

	var buf bytes.Buffer
	for _, v := range m.Vertices {
		if v.Type != parser.VertexPose2D {
			return &parser.ComposeError{Type: v.Type, Err: parser.ErrUnknownType}
		}
		if len(v.Position) != 2 || len(v.Rotation) != 1 {
			return &parser.ComposeError{Type: v.Type, Err: fmt.Errorf("vertex %d: %w", v.ID, parser.ErrShape)}
		}
		buf.WriteString(TagVertex)
		writeInt(&buf, v.ID)
		writeFloats(&buf, v.Position...)
		writeFloats(&buf, v.Rotation...)
		buf.WriteByte('\n')
	}
	for i, e := range m.Edges {
		if e.Type != parser.EdgeOdometry2D {
			return &parser.ComposeError{Type: e.Type, Err: parser.ErrUnknownType}
		}
		if len(e.Vertices) != 2 || len(e.Restriction) != 3 || len(e.InformationMatrix) != 9 {
			return &parser.ComposeError{Type: e.Type, Err: fmt.Errorf("edge %d: %w", i, parser.ErrShape)}
		}
		buf.WriteString(TagEdge)
		writeInt(&buf, e.Vertices[0])
		writeInt(&buf, e.Vertices[1])
		writeFloats(&buf, e.Restriction...)
		for _, idx := range upper {
			writeFloats(&buf, e.InformationMatrix[idx])
		}
		buf.WriteByte('\n')
	}

	if _, err := buf.WriteTo(w); err != nil {
		return &parser.ComposeError{Err: err}
	}

	return nil
}

func writeInt(buf *bytes.Buffer, v int) {
	buf.WriteByte(' ')
	buf.WriteString(strconv.Itoa(v))
}

func writeFloats(buf *bytes.Buffer, vs ...float64) {
	for _, v := range vs {
		buf.WriteByte(' ')
		buf.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
}
