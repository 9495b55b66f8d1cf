// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdiddy/paper-coder/internal/plan"
	"github.com/pdiddy/paper-coder/pkg/types"
)

func TestAnalyzeFixedArchitecture(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	analyses, err := Analyze(plan.BuildArchitecture(), zap.New(core))
	require.NoError(t, err)
	require.Len(t, analyses, 6)

	for i, name := range plan.ModuleNames() {
		want, ok := Spec(name)
		require.True(t, ok, "table entry for %s", name)
		got := analyses[i]
		if got.Name != name {
			t.Errorf("analyses[%d].Name = %q, want %q", i, got.Name, name)
		}
		if diff := cmp.Diff(want, got.ModuleSpec); diff != "" {
			t.Errorf("analyses[%d] spec mismatch (-want +got):\n%s", i, diff)
		}
		assert.NotEqual(t, emptyFunctionality, got.Functionality)
	}

	assert.Zero(t, logs.Len(), "no fallback warnings expected")
}

func TestAnalyzeUnknownModule(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	arch := types.Architecture{ModuleNames: []string{plan.ModulePaperParser, "utils.go"}}
	analyses, err := Analyze(arch, zap.New(core))
	require.NoError(t, err)
	require.Len(t, analyses, 2)

	want := types.ModuleAnalysis{Name: "utils.go", ModuleSpec: emptySpec()}
	if diff := cmp.Diff(want, analyses[1]); diff != "" {
		t.Errorf("unknown module mismatch (-want +got):\n%s", diff)
	}

	entries := logs.FilterMessage("no predefined specification for module, using empty spec").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "utils.go", entries[0].ContextMap()["module"])
}

func TestAnalyzeEmptyListUsesDefault(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	analyses, err := Analyze(types.Architecture{}, zap.New(core))
	require.NoError(t, err)

	names := make([]string, len(analyses))
	for i, a := range analyses {
		names[i] = a.Name
	}
	assert.Equal(t, plan.ModuleNames(), names)
	assert.Equal(t, 1, logs.FilterMessage("module list is empty in architecture design, using default list").Len())
}

func TestAnalyzeRejectsOutOfOrderList(t *testing.T) {
	tests := []struct {
		name  string
		names []string
	}{
		{name: "main first", names: []string{plan.ModuleMain, plan.ModulePaperParser, plan.ModulePlanner,
			plan.ModuleAnalyzer, plan.ModuleCodeGenerator, plan.ModuleEvaluation}},
		{name: "dependency missing", names: []string{plan.ModulePlanner}},
		{name: "swapped pair", names: []string{plan.ModulePlanner, plan.ModulePaperParser}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Analyze(types.Architecture{ModuleNames: tt.names}, nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, types.ErrInvalidInput), "got %v", err)
		})
	}
}

func TestValidateOrder(t *testing.T) {
	tests := []struct {
		name     string
		analyses []types.ModuleAnalysis
		wantErr  bool
	}{
		{name: "empty"},
		{
			name: "chain in order",
			analyses: []types.ModuleAnalysis{
				{Name: "a"},
				{Name: "b", ModuleSpec: types.ModuleSpec{Dependencies: []string{"a"}}},
				{Name: "c", ModuleSpec: types.ModuleSpec{Dependencies: []string{"a", "b"}}},
			},
		},
		{
			name: "self dependency",
			analyses: []types.ModuleAnalysis{
				{Name: "a", ModuleSpec: types.ModuleSpec{Dependencies: []string{"a"}}},
			},
			wantErr: true,
		},
		{
			name: "forward reference",
			analyses: []types.ModuleAnalysis{
				{Name: "b", ModuleSpec: types.ModuleSpec{Dependencies: []string{"a"}}},
				{Name: "a"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOrder(tt.analyses)
			if tt.wantErr {
				assert.ErrorIs(t, err, types.ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSpecReturnsCopy(t *testing.T) {
	s, ok := Spec(plan.ModuleMain)
	require.True(t, ok)
	s.Dependencies[0] = "mutated"

	again, _ := Spec(plan.ModuleMain)
	assert.Equal(t, plan.ModulePaperParser, again.Dependencies[0])

	_, ok = Spec("missing.go")
	assert.False(t, ok)
}
