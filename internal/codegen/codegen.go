// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package codegen renders a source template for each analyzed module and
// injects configuration values into it.
package codegen

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/paper-coder/pkg/types"
)

// Placeholders substituted with configuration values after rendering.
const (
	PlaceholderLearningRate    = "{learning_rate}"
	PlaceholderBatchSize       = "{batch_size}"
	PlaceholderEpochs          = "{epochs}"
	PlaceholderNWaySampling    = "{n_way_sampling}"
	PlaceholderEvaluationModel = "{evaluation_model}"
)

// Placeholders lists every placeholder marker.
var Placeholders = []string{
	PlaceholderLearningRate,
	PlaceholderBatchSize,
	PlaceholderEpochs,
	PlaceholderNWaySampling,
	PlaceholderEvaluationModel,
}

// Generator produces a Repository from module analyses.
type Generator struct {
	analyses []types.ModuleAnalysis
	replacer *strings.Replacer
	logger   *zap.Logger
}

// templateData is passed to the module templates.
type templateData struct {
	Name          string
	Functionality string
}

// NewGenerator returns a Generator for analyses using cfg for placeholder
// values. It fails with types.ErrEmptyInput when analyses is empty or cfg
// is nil or zero.
func NewGenerator(analyses []types.ModuleAnalysis, cfg *types.Config, logger *zap.Logger) (*Generator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(analyses) == 0 {
		logger.Error("analysis list is empty, cannot generate code")
		return nil, fmt.Errorf("empty analysis list: %w", types.ErrEmptyInput)
	}
	if cfg == nil || cfg.IsZero() {
		logger.Error("configuration is empty, cannot generate code")
		return nil, fmt.Errorf("empty configuration: %w", types.ErrEmptyInput)
	}

	return &Generator{
		analyses: analyses,
		replacer: newReplacer(*cfg),
		logger:   logger,
	}, nil
}

// newReplacer maps each placeholder to the string form of its config value.
// Values are inserted as-is, without escaping.
func newReplacer(cfg types.Config) *strings.Replacer {
	return strings.NewReplacer(
		PlaceholderLearningRate, cfg.Training.LearningRate,
		PlaceholderBatchSize, cfg.Training.BatchSize,
		PlaceholderEpochs, cfg.Training.Epochs,
		PlaceholderNWaySampling, strconv.Itoa(cfg.Evaluation.NWaySampling),
		PlaceholderEvaluationModel, cfg.Evaluation.EvaluationModel,
	)
}

// Generate renders every analysis with a non-empty name. Analyses without a
// name are skipped with a warning.
func (g *Generator) Generate() (types.Repository, error) {
	repo := make(types.Repository, len(g.analyses))
	for _, a := range g.analyses {
		if a.Name == "" {
			g.logger.Warn("module in analysis is missing a name, skipping")
			continue
		}

		src, err := g.render(a)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", a.Name, err)
		}
		repo[a.Name] = src
		g.logger.Info("generated code for module", zap.String("module", a.Name))
	}
	return repo, nil
}

// render selects the template for a module and injects the configuration.
func (g *Generator) render(a types.ModuleAnalysis) (string, error) {
	kind := kindFor(a.Name)
	g.logger.Debug("selected template", zap.String("module", a.Name), zap.Stringer("kind", kind))

	var buf bytes.Buffer
	data := templateData{Name: a.Name, Functionality: a.Functionality}
	if err := templates.ExecuteTemplate(&buf, files[kind], data); err != nil {
		return "", err
	}
	return g.replacer.Replace(buf.String()), nil
}
