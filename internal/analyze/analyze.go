// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze maps each module of an architecture to its static
// specification and checks that the module order respects dependencies.
package analyze

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/pdiddy/paper-coder/internal/plan"
	"github.com/pdiddy/paper-coder/pkg/types"
)

// Analyze returns one ModuleAnalysis per module name, in the same order.
// Unknown names get an empty specification and a warning; they never stop
// the pipeline. An empty module list is replaced by the default list.
//
// The result is checked with ValidateOrder, so a list in which a module
// precedes one of its dependencies fails with types.ErrInvalidInput.
func Analyze(arch types.Architecture, logger *zap.Logger) ([]types.ModuleAnalysis, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	names := arch.ModuleNames
	if len(names) == 0 {
		logger.Warn("module list is empty in architecture design, using default list")
		names = plan.ModuleNames()
	}

	analyses := make([]types.ModuleAnalysis, 0, len(names))
	for _, name := range names {
		spec, ok := Spec(name)
		if !ok {
			logger.Warn("no predefined specification for module, using empty spec", zap.String("module", name))
			spec = emptySpec()
		}
		analyses = append(analyses, types.ModuleAnalysis{Name: name, ModuleSpec: spec})
	}

	if err := ValidateOrder(analyses); err != nil {
		return nil, err
	}

	logger.Info("module analysis completed", zap.Int("modules", len(analyses)))
	return analyses, nil
}

// ValidateOrder checks that every dependency of a module names a module
// that appears earlier in analyses.
func ValidateOrder(analyses []types.ModuleAnalysis) error {
	seen := make(map[string]bool, len(analyses))
	for _, a := range analyses {
		for _, dep := range a.Dependencies {
			if !seen[dep] {
				return fmt.Errorf("module %q depends on %q, which does not precede it: %w",
					a.Name, dep, types.ErrInvalidInput)
			}
		}
		seen[a.Name] = true
	}
	return nil
}
