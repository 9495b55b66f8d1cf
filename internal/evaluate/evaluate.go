// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package evaluate computes summary statistics and simulated quality
// scores for a generated repository.
package evaluate

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/paper-coder/pkg/types"
)

// HumanScore is the fixed human evaluation score.
const HumanScore = 4.2

const (
	referencePrompt = "Evaluate the generated repository against the gold-standard repository. " +
		"Assess the coverage and correctness of the required components on a scale of 1 to 5."
	referenceFreePrompt = "Evaluate the generated repository based solely on the experimental methods described in the paper. " +
		"Provide a correctness score on a scale of 1 to 5."
)

// funcKeyword matches Go's function definition keyword as a whole word.
var funcKeyword = regexp.MustCompile(`\bfunc\b`)

// Evaluator scores a generated repository.
type Evaluator struct {
	repo   types.Repository
	cfg    types.EvaluationConfig
	judge  Judge
	logger *zap.Logger
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithJudge replaces the default StubJudge.
func WithJudge(j Judge) Option {
	return func(e *Evaluator) {
		e.judge = j
	}
}

// NewEvaluator returns an Evaluator for repo. It fails with
// types.ErrEmptyInput when repo has no entries.
func NewEvaluator(repo types.Repository, cfg types.Config, logger *zap.Logger, opts ...Option) (*Evaluator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(repo) == 0 {
		logger.Error("repository provided for evaluation is empty")
		return nil, fmt.Errorf("empty repository: %w", types.ErrEmptyInput)
	}

	e := &Evaluator{
		repo:   repo,
		cfg:    cfg.Evaluation,
		judge:  StubJudge{},
		logger: logger,
	}
	for _, opt := range opts {
		opt(e)
	}

	logger.Info("evaluator initialized",
		zap.Int("n_way_sampling", e.cfg.NWaySampling),
		zap.String("evaluation_model", e.cfg.EvaluationModel),
	)
	return e, nil
}

// Evaluate computes statistics and samples each active score kind
// NWaySampling times. Reference-based scoring is active only when the
// repository holds types.GoldStandardKey.
func (e *Evaluator) Evaluate() types.EvaluationResult {
	stats := Statistics(e.repo)
	e.logger.Info("repository summary statistics",
		zap.Int("file_count", stats.FileCount),
		zap.Int("total_tokens", stats.TotalTokens),
		zap.Int("function_count", stats.FunctionCount),
	)

	_, hasGold := e.repo[types.GoldStandardKey]

	var refScores, freeScores []float64
	for i := 0; i < e.cfg.NWaySampling; i++ {
		if hasGold {
			refScores = append(refScores, e.judge.Score(referencePrompt))
		}
		freeScores = append(freeScores, e.judge.Score(referenceFreePrompt))
	}

	result := types.EvaluationResult{
		ReferenceBasedScore: mean(refScores),
		ReferenceFreeScore:  mean(freeScores),
		HumanScore:          HumanScore,
		SummaryStatistics:   stats,
		EvaluationModel:     e.cfg.EvaluationModel,
		NWaySampling:        e.cfg.NWaySampling,
	}

	e.logger.Info("aggregated evaluation metrics",
		zap.Float64p("reference_based_score", result.ReferenceBasedScore),
		zap.Float64p("reference_free_score", result.ReferenceFreeScore),
		zap.Float64("human_score", result.HumanScore),
	)
	return result
}

// Statistics counts files, whitespace-delimited tokens, and func keywords
// across the repository.
func Statistics(repo types.Repository) types.SummaryStatistics {
	stats := types.SummaryStatistics{FileCount: len(repo)}
	for _, src := range repo {
		stats.TotalTokens += len(strings.Fields(src))
		stats.FunctionCount += len(funcKeyword.FindAllStringIndex(src, -1))
	}
	return stats
}

// mean returns the average of scores rounded to two decimals, or nil when
// there are no scores.
func mean(scores []float64) *float64 {
	if len(scores) == 0 {
		return nil
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	avg := math.Round(sum/float64(len(scores))*100) / 100
	return &avg
}
