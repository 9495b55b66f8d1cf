// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-coder/internal/pipeline"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the implementation plan, architecture, and module analysis",
	Long: `Plan runs the planning stages only (parse, plan, architecture,
configuration, analysis) and prints the result as YAML. No code is
generated.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := pipeline.Prepare(optionsFromFlags(cmd), logger)
		if err != nil {
			return err
		}
		data, err := res.MarshalPlanYAML()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
}
