// SPDX-License-Identifier: MIT

package optimizer

import (
	"errors"
	"fmt"
)

var (
	// ErrNilGraph is returned when Optimize or Assemble receives a nil graph.
	ErrNilGraph = errors.New("optimizer: graph is nil")

	// ErrInvalidIterations indicates a negative iteration count.
	ErrInvalidIterations = errors.New("optimizer: iteration count must be >= 0")

	// ErrAssembly indicates a factor that could not be linearized at the
	// current estimates.
	ErrAssembly = errors.New("optimizer: assembly failed")
)

// Operation tags.
const (
	opAssemble = "Assemble"
	opOptimize = "Optimize"
)

// optimizerErrorf wraps err with an operation tag.
func optimizerErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
