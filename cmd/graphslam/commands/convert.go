// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphslam/parser"
)

func newConvertCmd(a *app) *cobra.Command {
	var in, out, from, to string
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Translate a graph between g2o and JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if from == "" {
				from = a.cfg.Format
			}
			inP, _, err := formatFor(in, from)
			if err != nil {
				return err
			}
			outP, _, err := formatFor(out, to)
			if err != nil {
				return err
			}
			m, err := parser.ParseFile(inP, in)
			if err != nil {
				return err
			}
			// reject models that do not describe a valid graph
			if _, err := parser.BuildGraph(m); err != nil {
				return err
			}

			return parser.ComposeFile(outP, out, m)
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "input file")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file")
	cmd.Flags().StringVar(&from, "from", "", "input format override")
	cmd.Flags().StringVar(&to, "to", "", "output format override")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
