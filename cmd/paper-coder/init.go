// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/paper-coder/internal/pipeline"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config.yaml and a sample paper.json",
	Long: `Init writes a default configuration file and a sample paper into the
target directory so the pipeline can be run immediately. Existing files are
never overwritten.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")

		created, err := pipeline.InitWorkspace(dir)
		if err != nil {
			return err
		}
		logger.Info("workspace initialized", zap.String("dir", dir), zap.Strings("created", created))

		out := cmd.OutOrStdout()
		if len(created) == 0 {
			fmt.Fprintf(out, "Nothing to do: %s already has %s and %s\n",
				dir, pipeline.DefaultConfigFile, pipeline.DefaultPaperFile)
			return nil
		}
		for _, path := range created {
			fmt.Fprintf(out, "Created %s\n", path)
		}
		return nil
	},
}

func init() {
	initCmd.Flags().String("dir", ".", "directory to initialize")

	rootCmd.AddCommand(initCmd)
}
