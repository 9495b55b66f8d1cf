// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the paper-to-code stages in order: load and parse
// the paper, build the plan and architecture, load the configuration,
// analyze modules, generate the repository, and evaluate it.
package pipeline

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pdiddy/paper-coder/internal/analyze"
	"github.com/pdiddy/paper-coder/internal/codegen"
	"github.com/pdiddy/paper-coder/internal/evaluate"
	"github.com/pdiddy/paper-coder/internal/paper"
	"github.com/pdiddy/paper-coder/internal/plan"
	"github.com/pdiddy/paper-coder/pkg/types"
)

// Options locates the inputs of a run.
type Options struct {
	// PaperPath is the paper JSON file. Required.
	PaperPath string

	// ConfigPath is the YAML configuration file. An empty or unreadable
	// path falls back to defaults.
	ConfigPath string
}

// Result holds the output of every stage. Stages that did not run leave
// their fields zero.
type Result struct {
	RunID        string                  `json:"run_id" yaml:"run_id"`
	Paper        *types.Paper            `json:"paper" yaml:"paper"`
	Plan         types.Plan              `json:"plan" yaml:"plan"`
	Architecture types.Architecture      `json:"architecture" yaml:"architecture"`
	Config       types.Config            `json:"config" yaml:"config"`
	Analyses     []types.ModuleAnalysis  `json:"analyses" yaml:"analyses"`
	Repository   types.Repository        `json:"repository,omitempty" yaml:"repository,omitempty"`
	Evaluation   *types.EvaluationResult `json:"evaluation,omitempty" yaml:"evaluation,omitempty"`
}

// Prepare runs the planning stages: paper loading and parsing, plan,
// architecture, configuration, and module analysis. It stops before any
// code is generated.
func Prepare(opts Options, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	res := &Result{RunID: uuid.NewString()}
	logger = logger.With(zap.String("run_id", res.RunID))

	raw, err := paper.LoadFile(opts.PaperPath)
	if err != nil {
		return nil, fmt.Errorf("load paper: %w", err)
	}
	res.Paper, err = paper.Parse(raw, logger.Named("paper"))
	if err != nil {
		return nil, fmt.Errorf("parse paper: %w", err)
	}
	logger.Info("paper parsed", zap.String("paper_id", res.Paper.ID), zap.String("title", res.Paper.Title))

	res.Plan = plan.BuildPlan(res.Paper, logger.Named("plan"))
	res.Architecture = plan.BuildArchitecture()
	res.Config = plan.LoadConfig(opts.ConfigPath, logger.Named("config"))

	res.Analyses, err = analyze.Analyze(res.Architecture, logger.Named("analyze"))
	if err != nil {
		return nil, fmt.Errorf("analyze modules: %w", err)
	}
	return res, nil
}

// Run executes every stage. Each stage error is returned wrapped with the
// stage name; callers match the cause with errors.Is against
// types.ErrInvalidInput or types.ErrEmptyInput.
func Run(opts Options, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	res, err := Prepare(opts, logger)
	if err != nil {
		return nil, err
	}
	logger = logger.With(zap.String("run_id", res.RunID))

	gen, err := codegen.NewGenerator(res.Analyses, &res.Config, logger.Named("codegen"))
	if err != nil {
		return nil, fmt.Errorf("generate code: %w", err)
	}
	res.Repository, err = gen.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate code: %w", err)
	}
	if len(res.Repository) == 0 {
		return nil, fmt.Errorf("generate code: no modules produced: %w", types.ErrEmptyInput)
	}

	ev, err := evaluate.NewEvaluator(res.Repository, res.Config, logger.Named("evaluate"))
	if err != nil {
		return nil, fmt.Errorf("evaluate repository: %w", err)
	}
	result := ev.Evaluate()
	res.Evaluation = &result

	logger.Info("pipeline completed",
		zap.Int("modules", len(res.Repository)),
		zap.Int("function_count", result.SummaryStatistics.FunctionCount),
	)
	return res, nil
}
