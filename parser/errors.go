// SPDX-License-Identifier: MIT

package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is the sentinel matched by every *ParseError.
	ErrParse = errors.New("parser: parse failed")

	// ErrCompose is the sentinel matched by every *ComposeError.
	ErrCompose = errors.New("parser: compose failed")

	// ErrUnknownType indicates a vertex or edge type tag outside the
	// supported set.
	ErrUnknownType = errors.New("parser: unknown type tag")

	// ErrShape indicates a position, rotation, restriction or information
	// slice of the wrong length for its type.
	ErrShape = errors.New("parser: wrong value count")
)

// ParseError locates a parse failure. Line is 1-based, or 0 when the
// format is not line oriented.
type ParseError struct {
	Line int
	Msg  string
	Err  error
}

// Error implements error.
func (e *ParseError) Error() string {
	var s string
	if e.Line > 0 {
		s = fmt.Sprintf("parse error at line %d: %s", e.Line, e.Msg)
	} else {
		s = "parse error: " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}

	return s
}

// Unwrap exposes ErrParse and the cause.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}

	return []error{ErrParse, e.Err}
}

// ComposeError reports a model element that cannot be written.
type ComposeError struct {
	// Type is the offending type tag, if any.
	Type string
	Err  error
}

// Error implements error.
func (e *ComposeError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("compose error: %v", e.Err)
	}

	return fmt.Sprintf("compose error (%s): %v", e.Type, e.Err)
}

// Unwrap exposes ErrCompose and the cause.
func (e *ComposeError) Unwrap() []error { return []error{ErrCompose, e.Err} }
