// SPDX-License-Identifier: MIT

package jsonfmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/katalvlaran/graphslam/parser"
)

// Parser implements parser.Parser for JSON.
type Parser struct {
	indent string
}

var _ parser.Parser = Parser{}

// Option configures a Parser.
type Option func(*Parser)

// WithIndent sets the indentation used by Compose; "" writes compact JSON.
func WithIndent(indent string) Option {
	return func(p *Parser) { p.indent = indent }
}

// New returns a JSON Parser that composes with two-space indentation.
func New(opts ...Option) Parser {
	p := Parser{indent: "  "}
	for _, opt := range opts {
		opt(&p)
	}

	return p
}

// Parse implements parser.Parser. Syntax errors carry the line of the
// offending byte; unsupported type tags wrap parser.ErrUnknownType.
func (Parser) Parse(r io.Reader) (*parser.Model, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &parser.ParseError{Msg: "read", Err: err}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var m parser.Model
	if err := dec.Decode(&m); err != nil {
		pe := &parser.ParseError{Msg: "decode", Err: err}
		var se *json.SyntaxError
		if errors.As(err, &se) {
			pe.Line = lineOf(data, se.Offset)
		}
		return nil, pe
	}
	if len(m.Vertices) == 0 {
		return nil, &parser.ParseError{Msg: "no vertices"}
	}
	if len(m.Edges) == 0 {
		return nil, &parser.ParseError{Msg: "no edges"}
	}
	if err := m.CheckTypes(); err != nil {
		return nil, err
	}

	return &m, nil
}

// Compose implements parser.Parser.
func (p Parser) Compose(w io.Writer, m *parser.Model) error {
	if m == nil {
		return &parser.ComposeError{Err: fmt.Errorf("nil model: %w", parser.ErrShape)}
	}

	var (
		data []byte
		err  error
	)
	if p.indent == "" {
		data, err = json.Marshal(m)
	} else {
		data, err = json.MarshalIndent(m, "", p.indent)
	}
	if err != nil {
		return &parser.ComposeError{Err: err}
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return &parser.ComposeError{Err: err}
	}

	return nil
}

// lineOf returns the 1-based line containing byte offset off.
func lineOf(data []byte, off int64) int {
	if off > int64(len(data)) {
		off = int64(len(data))
	}
	if off < 0 {
		off = 0
	}

	return 1 + bytes.Count(data[:off], []byte{'\n'})
}
