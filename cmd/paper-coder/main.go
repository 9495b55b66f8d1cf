// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paper-coder CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/paper-coder/internal/pipeline"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built in PersistentPreRunE and shared by every command.
var logger = zap.NewNop()

// rootCmd runs the full pipeline.
var rootCmd = &cobra.Command{
	Use:   "paper-coder",
	Short: "Turn a research paper into a scaffolded code repository",
	Long: `paper-coder reads a research paper in JSON form and runs it through a
five-stage pipeline: parse the paper, build an implementation plan and a
fixed architecture, analyze each module, render module source from
templates, and evaluate the generated repository.

The evaluation result is printed to stdout as JSON. Logs go to stderr.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")

		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runPipeline,
}

func init() {
	rootCmd.PersistentFlags().String("paper", pipeline.DefaultPaperFile, "path to the paper JSON file")
	rootCmd.PersistentFlags().String("config", pipeline.DefaultConfigFile, "path to the YAML configuration file")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")

	rootCmd.Flags().String("output-dir", "", "write generated modules, plan.yaml, and evaluation.json to this directory")
}

// optionsFromFlags reads the pipeline inputs from the persistent flags.
func optionsFromFlags(cmd *cobra.Command) pipeline.Options {
	paperPath, _ := cmd.Flags().GetString("paper")
	configPath, _ := cmd.Flags().GetString("config")
	return pipeline.Options{PaperPath: paperPath, ConfigPath: configPath}
}

func runPipeline(cmd *cobra.Command, args []string) error {
	res, err := pipeline.Run(optionsFromFlags(cmd), logger)
	if err != nil {
		logger.Error("pipeline failed", zap.Error(err))
		return err
	}

	outDir, _ := cmd.Flags().GetString("output-dir")
	if outDir != "" {
		written, err := pipeline.Export(outDir, res)
		if err != nil {
			logger.Error("export failed", zap.String("dir", outDir), zap.Error(err))
			return err
		}
		logger.Info("repository exported", zap.String("dir", outDir), zap.Int("files", len(written)))
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(res.Evaluation)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
