// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SummaryStatistics holds simple counts over a generated Repository.
type SummaryStatistics struct {
	FileCount     int `json:"file_count" yaml:"file_count"`
	TotalTokens   int `json:"total_tokens" yaml:"total_tokens"`
	FunctionCount int `json:"function_count" yaml:"function_count"`
}

// EvaluationResult is the aggregated outcome of evaluating a Repository.
type EvaluationResult struct {
	// ReferenceBasedScore is nil unless the repository carried a gold
	// standard and at least one sample was taken.
	ReferenceBasedScore *float64 `json:"reference_based_score" yaml:"reference_based_score"`

	// ReferenceFreeScore is nil when no samples were taken.
	ReferenceFreeScore *float64 `json:"reference_free_score" yaml:"reference_free_score"`

	// HumanScore is the fixed human evaluation score.
	HumanScore float64 `json:"human_score" yaml:"human_score"`

	SummaryStatistics SummaryStatistics `json:"summary_statistics" yaml:"summary_statistics"`
	EvaluationModel   string            `json:"evaluation_model" yaml:"evaluation_model"`
	NWaySampling      int               `json:"n_way_sampling" yaml:"n_way_sampling"`
}
