// SPDX-License-Identifier: MIT

package parser

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parser reads and writes one textual format.
type Parser interface {
	// Parse reads a complete document. Failures are *ParseError.
	Parse(r io.Reader) (*Model, error)

	// Compose writes m. Failures are *ComposeError.
	Compose(w io.Writer, m *Model) error
}

// ParseString parses s with p.
func ParseString(p Parser, s string) (*Model, error) {
	return p.Parse(strings.NewReader(s))
}

// ComposeString composes m with p into a string.
func ComposeString(p Parser, m *Model) (string, error) {
	var buf bytes.Buffer
	if err := p.Compose(&buf, m); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// ParseFile opens path and parses it with p.
func ParseFile(p Parser, path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Msg: fmt.Sprintf("open %s", path), Err: err}
	}
	defer f.Close()

	return p.Parse(f)
}

// ComposeFile composes m with p and writes it to path, replacing any
// existing file. Nothing is written if composition fails.
func ComposeFile(p Parser, path string, m *Model) error {
	var buf bytes.Buffer
	if err := p.Compose(&buf, m); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return &ComposeError{Err: fmt.Errorf("write %s: %w", path, err)}
	}

	return nil
}
