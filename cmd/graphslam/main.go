// SPDX-License-Identifier: MIT

// Command graphslam optimizes, converts and renders factor graphs.
//
// Usage:
//
//	graphslam [--config FILE] <command> [flags]
//
// Commands:
//
//	optimize  - run Gauss–Newton on a g2o or JSON graph and write the result
//	convert   - translate between g2o and JSON
//	render    - draw a graph (optionally after optimizing) to PNG/SVG/PDF
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/graphslam/cmd/graphslam/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
