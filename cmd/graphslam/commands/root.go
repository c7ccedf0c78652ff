// SPDX-License-Identifier: MIT

// Package commands implements the graphslam subcommands.
package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphslam/cmd/graphslam/internal/config"
)

// app carries the state shared by subcommands of one invocation.
type app struct {
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd assembles the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "graphslam",
		Short: "Graph-SLAM back-end: optimize, convert and render factor graphs",
		Long: `graphslam estimates poses and landmarks from a factor graph with a
fixed number of Gauss–Newton iterations.

Formats are inferred from file extensions (.g2o, .json) unless --format or
the config file says otherwise.

Every connected part of the graph needs a prior edge (PRIOR2D_ANGLE,
PRIOR2D, PRIOR3D_QUAT, PRIOR3D) to be solvable. G2O FIX lines are dropped
and G2O has no prior tag, so convert a .g2o file to JSON and add priors
before optimizing it.

Examples:
  graphslam convert --in city.g2o --out city.json
  graphslam optimize --in city.json --iterations 20 --out city.opt.json
  graphslam render --in city.json --out city.png --iterations 5`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file")

	root.AddCommand(
		newOptimizeCmd(a),
		newConvertCmd(a),
		newRenderCmd(a),
	)

	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger

	return nil
}
