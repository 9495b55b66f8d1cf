// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-coder/pkg/types"
)

// Export file names written next to the generated modules.
const (
	PlanFile       = "plan.yaml"
	EvaluationFile = "evaluation.json"
)

// PlanDocument is the YAML view of the planning stages.
type PlanDocument struct {
	RunID        string                 `json:"run_id" yaml:"run_id"`
	Plan         types.Plan             `json:"plan" yaml:"plan"`
	Architecture types.Architecture     `json:"architecture" yaml:"architecture"`
	Config       types.Config           `json:"config" yaml:"config"`
	Analyses     []types.ModuleAnalysis `json:"analyses" yaml:"analyses"`
}

// PlanDocument returns the planning view of r.
func (r *Result) PlanDocument() PlanDocument {
	return PlanDocument{
		RunID:        r.RunID,
		Plan:         r.Plan,
		Architecture: r.Architecture,
		Config:       r.Config,
		Analyses:     r.Analyses,
	}
}

// MarshalPlanYAML encodes the planning view of r as YAML.
func (r *Result) MarshalPlanYAML() ([]byte, error) {
	data, err := yaml.Marshal(r.PlanDocument())
	if err != nil {
		return nil, fmt.Errorf("marshaling plan YAML: %w", err)
	}
	return data, nil
}

// Export writes every generated module into dir, followed by plan.yaml and,
// when the run was evaluated, evaluation.json. It returns the written paths
// in the order they were written. Module names that would escape dir fail
// with types.ErrInvalidInput before anything is written.
func Export(dir string, r *Result) ([]string, error) {
	names := make([]string, 0, len(r.Repository))
	for name := range r.Repository {
		if !filepath.IsLocal(name) {
			return nil, fmt.Errorf("module name %q is not a local path: %w", name, types.ErrInvalidInput)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	var written []string
	write := func(name string, data []byte) error {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", name, err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
		return nil
	}

	for _, name := range names {
		if err := write(name, []byte(r.Repository[name])); err != nil {
			return written, err
		}
	}

	planData, err := r.MarshalPlanYAML()
	if err != nil {
		return written, err
	}
	if err := write(PlanFile, planData); err != nil {
		return written, err
	}

	if r.Evaluation != nil {
		evalData, err := json.MarshalIndent(r.Evaluation, "", "  ")
		if err != nil {
			return written, fmt.Errorf("marshaling evaluation JSON: %w", err)
		}
		if err := write(EvaluationFile, append(evalData, '\n')); err != nil {
			return written, err
		}
	}
	return written, nil
}
