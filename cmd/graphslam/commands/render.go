// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/graphslam/optimizer"
	"github.com/katalvlaran/graphslam/parser"
	"github.com/katalvlaran/graphslam/solver"
	"github.com/katalvlaran/graphslam/visualizer"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		in, out, format, title string
		iterations             int
		noFactors              bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw a graph to an image (format from the --out extension)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format == "" {
				format = a.cfg.Format
			}
			p, _, err := formatFor(in, format)
			if err != nil {
				return err
			}
			m, err := parser.ParseFile(p, in)
			if err != nil {
				return err
			}
			g, err := parser.BuildGraph(m)
			if err != nil {
				return err
			}
			if iterations > 0 {
				s, err := solver.ByName(a.cfg.Solver)
				if err != nil {
					return err
				}
				if _, err := optimizer.Optimize(g, iterations, optimizer.WithSolver(s), optimizer.WithLogger(a.logger)); err != nil {
					return err
				}
			}

			opts := []visualizer.Option{
				visualizer.WithSize(vg.Length(a.cfg.Render.Width)*vg.Centimeter, vg.Length(a.cfg.Render.Height)*vg.Centimeter),
			}
			if title == "" {
				title = in
			}
			opts = append(opts, visualizer.WithTitle(title))
			if noFactors {
				opts = append(opts, visualizer.WithoutFactors())
			}

			return visualizer.Save(g, out, opts...)
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "input graph")
	cmd.Flags().StringVarP(&out, "out", "o", "", "image file (.png, .svg, .pdf, ...)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "input format: g2o or json")
	cmd.Flags().StringVar(&title, "title", "", "plot title (default: input path)")
	cmd.Flags().IntVarP(&iterations, "iterations", "n", 0, "optimize before rendering")
	cmd.Flags().BoolVar(&noFactors, "no-factors", false, "draw variables only")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
