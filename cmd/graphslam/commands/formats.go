// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/graphslam/parser"
	"github.com/katalvlaran/graphslam/parser/g2o"
	"github.com/katalvlaran/graphslam/parser/jsonfmt"
)

var errFormat = errors.New("cannot determine format")

// formatFor returns the parser named by override, or the one matching the
// extension of path.
func formatFor(path, override string) (parser.Parser, string, error) {
	name := strings.ToLower(override)
	if name == "" {
		name = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	switch name {
	case "g2o":
		return g2o.New(), name, nil
	case "json":
		return jsonfmt.New(), name, nil
	default:
		return nil, "", fmt.Errorf("%s (format %q): %w", path, name, errFormat)
	}
}
