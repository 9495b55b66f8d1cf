// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package evaluate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-coder/pkg/types"
)

func sampleRepo() types.Repository {
	return types.Repository{
		"main.go":         "package main\n\nfunc main() {\n\trun()\n}\n\nfunc run() {}\n",
		"paper_parser.go": "package main\n\nfunc Parse() {}\n",
		"planner.go":      "package main\n\n// funcs and function are not keywords\nvar f = func() {}\n",
	}
}

func configWithSamples(n int) types.Config {
	cfg := types.DefaultConfig()
	cfg.Evaluation.NWaySampling = n
	return cfg
}

// countingJudge records prompts and returns a fixed sequence of scores.
type countingJudge struct {
	prompts []string
	scores  []float64
}

func (c *countingJudge) Score(prompt string) float64 {
	c.prompts = append(c.prompts, prompt)
	return c.scores[(len(c.prompts)-1)%len(c.scores)]
}

func TestNewEvaluatorEmptyRepository(t *testing.T) {
	for _, repo := range []types.Repository{nil, {}} {
		e, err := NewEvaluator(repo, types.DefaultConfig(), nil)
		assert.Nil(t, e)
		assert.ErrorIs(t, err, types.ErrEmptyInput)
	}
}

func TestStatistics(t *testing.T) {
	stats := Statistics(sampleRepo())

	assert.Equal(t, 3, stats.FileCount)
	assert.Equal(t, 4, stats.FunctionCount)
	assert.Equal(t, 10+5+14, stats.TotalTokens)
}

func TestEvaluateWithoutGoldStandard(t *testing.T) {
	for _, n := range []int{1, 3, 8} {
		e, err := NewEvaluator(sampleRepo(), configWithSamples(n), nil)
		require.NoError(t, err)

		got := e.Evaluate()

		assert.Nil(t, got.ReferenceBasedScore, "n=%d", n)
		require.NotNil(t, got.ReferenceFreeScore, "n=%d", n)
		assert.Equal(t, 4.5, *got.ReferenceFreeScore)
		assert.Equal(t, 4.2, got.HumanScore)
		assert.Equal(t, n, got.NWaySampling)
		assert.Equal(t, types.DefaultEvaluationModel, got.EvaluationModel)
	}
}

func TestEvaluateFunctionCountWithEightSamples(t *testing.T) {
	repo := sampleRepo()
	e, err := NewEvaluator(repo, configWithSamples(8), nil)
	require.NoError(t, err)

	got := e.Evaluate()

	want := 0
	for _, src := range repo {
		want += len(funcKeyword.FindAllString(src, -1))
	}
	assert.Equal(t, want, got.SummaryStatistics.FunctionCount)
	assert.Equal(t, len(repo), got.SummaryStatistics.FileCount)
}

func TestEvaluateWithGoldStandard(t *testing.T) {
	repo := sampleRepo()
	repo[types.GoldStandardKey] = "func official() {}"

	e, err := NewEvaluator(repo, configWithSamples(8), nil)
	require.NoError(t, err)

	got := e.Evaluate()

	require.NotNil(t, got.ReferenceBasedScore)
	assert.Equal(t, 4.0, *got.ReferenceBasedScore)
	require.NotNil(t, got.ReferenceFreeScore)
	assert.Equal(t, 4.5, *got.ReferenceFreeScore)
	assert.Equal(t, 4, got.SummaryStatistics.FileCount)
}

func TestEvaluateZeroSamples(t *testing.T) {
	repo := sampleRepo()
	repo[types.GoldStandardKey] = "gold"

	for _, n := range []int{0, -2} {
		j := &countingJudge{scores: []float64{1}}
		e, err := NewEvaluator(repo, configWithSamples(n), nil, WithJudge(j))
		require.NoError(t, err)

		got := e.Evaluate()

		assert.Nil(t, got.ReferenceBasedScore)
		assert.Nil(t, got.ReferenceFreeScore)
		assert.Empty(t, j.prompts)
	}
}

func TestEvaluateAveragesAndRounds(t *testing.T) {
	j := &countingJudge{scores: []float64{4.0, 4.5, 3.0}}
	e, err := NewEvaluator(sampleRepo(), configWithSamples(3), nil, WithJudge(j))
	require.NoError(t, err)

	got := e.Evaluate()

	require.Len(t, j.prompts, 3)
	require.NotNil(t, got.ReferenceFreeScore)
	assert.Equal(t, 3.83, *got.ReferenceFreeScore)
}

func TestStubJudge(t *testing.T) {
	var j StubJudge
	assert.Equal(t, 4.0, j.Score(referencePrompt))
	assert.Equal(t, 4.0, j.Score("compare with the GOLD-STANDARD code"))
	assert.Equal(t, 4.5, j.Score(referenceFreePrompt))
	assert.Equal(t, 4.5, j.Score("gold standard without hyphen"))
}

func TestEvaluationResultJSON(t *testing.T) {
	e, err := NewEvaluator(sampleRepo(), configWithSamples(2), nil)
	require.NoError(t, err)

	data, err := json.Marshal(e.Evaluate())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "reference_based_score")
	assert.Nil(t, decoded["reference_based_score"])
	assert.Equal(t, 4.5, decoded["reference_free_score"])
	assert.Equal(t, 4.2, decoded["human_score"])
}
