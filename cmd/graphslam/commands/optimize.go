// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphslam/optimizer"
	"github.com/katalvlaran/graphslam/parser"
	"github.com/katalvlaran/graphslam/solver"
)

func newOptimizeCmd(a *app) *cobra.Command {
	var (
		in, out, format, solverName string
		iterations                  int
	)
	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Run Gauss–Newton and write the optimized graph",
		Long: `Parse --in, run exactly --iterations Gauss–Newton steps and compose the
result. Without --out the result is written to stdout in the input format.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("iterations") {
				iterations = a.cfg.Iterations
			}
			if !cmd.Flags().Changed("solver") {
				solverName = a.cfg.Solver
			}
			if format == "" {
				format = a.cfg.Format
			}

			inP, inName, err := formatFor(in, format)
			if err != nil {
				return err
			}
			m, err := parser.ParseFile(inP, in)
			if err != nil {
				return err
			}
			g, err := parser.BuildGraph(m)
			if err != nil {
				return err
			}
			s, err := solver.ByName(solverName)
			if err != nil {
				return err
			}

			log := a.logger.With(zap.String("in", in))
			rep, err := optimizer.Optimize(g, iterations, optimizer.WithSolver(s), optimizer.WithLogger(log))
			if err != nil {
				return err
			}
			log.Info("optimized",
				zap.Int("variables", g.NumVariables()),
				zap.Int("factors", g.NumFactors()),
				zap.Float64("chi2", rep.FinalChi2),
			)

			res, err := parser.FromGraph(g)
			if err != nil {
				return err
			}
			if out == "" {
				return inP.Compose(cmd.OutOrStdout(), res)
			}
			outP, _, err := formatFor(out, "")
			if err != nil {
				outP, _, _ = formatFor(in, inName)
			}

			return parser.ComposeFile(outP, out, res)
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "input graph (.g2o or .json)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "input format: g2o or json")
	cmd.Flags().IntVarP(&iterations, "iterations", "n", 10, "Gauss–Newton iterations")
	cmd.Flags().StringVar(&solverName, "solver", solver.NameSparseCholesky, "dense-cholesky, dense-lu or sparse-cholesky")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}
