// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PaperSummary is the short paper context carried by a Plan.
type PaperSummary struct {
	Title string `json:"title" yaml:"title"`

	// AbstractExcerpt holds at most 200 characters of the abstract,
	// followed by "..." when the abstract was longer.
	AbstractExcerpt string `json:"abstract_excerpt" yaml:"abstract_excerpt"`
}

// Plan is the natural-language implementation plan derived from a Paper.
type Plan struct {
	Goal              string `json:"implementation_goal" yaml:"implementation_goal"`
	Methodology       string `json:"methodology_overview" yaml:"methodology_overview"`
	ExperimentalSetup string `json:"experimental_setup" yaml:"experimental_setup"`

	// Ambiguities lists details the paper does not provide (missing
	// abstract, missing body).
	Ambiguities []string `json:"ambiguous_details" yaml:"ambiguous_details"`

	Summary PaperSummary `json:"paper_summary" yaml:"paper_summary"`
}

// Architecture describes the target repository layout.
type Architecture struct {
	// ModuleNames is the ordered module list. A module's dependencies
	// always appear before it.
	ModuleNames []string `json:"file_list" yaml:"file_list"`

	// ClassDiagram is a mermaid class diagram of the modules.
	ClassDiagram string `json:"class_diagram" yaml:"class_diagram"`

	// SequenceDiagram is a mermaid sequence diagram of the call flow.
	SequenceDiagram string `json:"sequence_diagram" yaml:"sequence_diagram"`
}
