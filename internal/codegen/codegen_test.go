// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdiddy/paper-coder/internal/analyze"
	"github.com/pdiddy/paper-coder/internal/plan"
	"github.com/pdiddy/paper-coder/pkg/types"
)

func testConfig() *types.Config {
	return &types.Config{
		Training:   types.TrainingConfig{LearningRate: "0.01", BatchSize: "64", Epochs: "5"},
		Evaluation: types.EvaluationConfig{NWaySampling: 3, EvaluationModel: "gpt-x"},
	}
}

func fullAnalyses(t *testing.T) []types.ModuleAnalysis {
	t.Helper()
	analyses, err := analyze.Analyze(plan.BuildArchitecture(), nil)
	require.NoError(t, err)
	return analyses
}

func assertNoPlaceholders(t *testing.T, src string) {
	t.Helper()
	for _, p := range Placeholders {
		assert.NotContains(t, src, p)
	}
}

func TestNewGeneratorEmptyInput(t *testing.T) {
	analyses := []types.ModuleAnalysis{{Name: plan.ModuleMain}}
	empty := types.Config{}

	tests := []struct {
		name     string
		analyses []types.ModuleAnalysis
		cfg      *types.Config
	}{
		{name: "nil analyses", analyses: nil, cfg: testConfig()},
		{name: "empty analyses", analyses: []types.ModuleAnalysis{}, cfg: testConfig()},
		{name: "nil config", analyses: analyses, cfg: nil},
		{name: "zero config", analyses: analyses, cfg: &empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGenerator(tt.analyses, tt.cfg, nil)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, types.ErrEmptyInput)
		})
	}
}

func TestGenerateCodeGeneratorModule(t *testing.T) {
	spec, ok := analyze.Spec(plan.ModuleCodeGenerator)
	require.True(t, ok)

	g, err := NewGenerator([]types.ModuleAnalysis{{Name: plan.ModuleCodeGenerator, ModuleSpec: spec}}, testConfig(), nil)
	require.NoError(t, err)

	repo, err := g.Generate()
	require.NoError(t, err)
	require.Len(t, repo, 1)

	src := repo[plan.ModuleCodeGenerator]
	assert.Contains(t, src, "0.01")
	assert.Contains(t, src, "64")
	assert.Contains(t, src, "5")
	assert.Contains(t, src, `learningRate = "0.01"`)
	assert.Contains(t, src, `batchSize    = "64"`)
	assert.Contains(t, src, `epochs       = "5"`)
	assert.Contains(t, src, spec.Functionality)
	assertNoPlaceholders(t, src)
}

func TestGenerateFullRepository(t *testing.T) {
	g, err := NewGenerator(fullAnalyses(t), testConfig(), nil)
	require.NoError(t, err)

	repo, err := g.Generate()
	require.NoError(t, err)
	require.Len(t, repo, 6)

	for name, src := range repo {
		t.Run(name, func(t *testing.T) {
			assert.True(t, strings.HasPrefix(src, "// Module: "), "source starts with module header")
			assert.Contains(t, src, "package main")
			assertNoPlaceholders(t, src)
		})
	}

	assert.Contains(t, repo[plan.ModuleEvaluation], "nWaySampling    = 3")
	assert.Contains(t, repo[plan.ModuleEvaluation], `evaluationModel = "gpt-x"`)
	assert.Contains(t, repo[plan.ModuleMain], "func main()")

	for _, name := range []string{plan.ModulePaperParser, plan.ModulePlanner, plan.ModuleAnalyzer} {
		assert.Contains(t, repo[name], "assumed to be already implemented")
		assert.Contains(t, repo[name], "// Module: "+name+"\n")
	}
}

func TestGenerateGenericAndSkipped(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	analyses := []types.ModuleAnalysis{
		{Name: ""},
		{Name: "utils.go", ModuleSpec: types.ModuleSpec{Functionality: "Helpers using {epochs} epochs."}},
	}
	g, err := NewGenerator(analyses, testConfig(), zap.New(core))
	require.NoError(t, err)

	repo, err := g.Generate()
	require.NoError(t, err)

	require.Len(t, repo, 1)
	src := repo["utils.go"]
	assert.Contains(t, src, "This is a generated module.")
	assert.Contains(t, src, "// Generated code for utils.go")
	assert.Contains(t, src, "Helpers using 5 epochs.")
	assert.Equal(t, 1, logs.FilterMessage("module in analysis is missing a name, skipping").Len())
}

func TestGenerateInsertsValuesUnescaped(t *testing.T) {
	cfg := testConfig()
	cfg.Evaluation.EvaluationModel = `model "quoted" & <tagged>`

	g, err := NewGenerator([]types.ModuleAnalysis{{Name: plan.ModuleEvaluation}}, cfg, nil)
	require.NoError(t, err)

	repo, err := g.Generate()
	require.NoError(t, err)
	assert.Contains(t, repo[plan.ModuleEvaluation], `model "quoted" & <tagged>`)
}

func TestKindFor(t *testing.T) {
	tests := []struct {
		name string
		want templateKind
	}{
		{plan.ModulePaperParser, kindImplemented},
		{plan.ModulePlanner, kindImplemented},
		{plan.ModuleAnalyzer, kindImplemented},
		{plan.ModuleEvaluation, kindEvaluation},
		{plan.ModuleMain, kindMain},
		{plan.ModuleCodeGenerator, kindSelf},
		{"Main.go", kindGeneric},
		{"main", kindGeneric},
		{"other.go", kindGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kindFor(tt.name), "kind %s", kindFor(tt.name))
		})
	}
}
