// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Paper is the canonical form of a research paper after parsing.
// It is built once from raw JSON and not modified afterwards.
type Paper struct {
	// ID is the paper identifier copied from the raw record (trimmed).
	ID string `json:"paper_id" yaml:"paper_id"`

	// Title is the paper title (trimmed).
	Title string `json:"title" yaml:"title"`

	// Abstract is the abstract text, segments joined by single spaces.
	Abstract string `json:"abstract" yaml:"abstract"`

	// BodyText is the body text, paragraphs joined by newlines.
	BodyText string `json:"body_text" yaml:"body_text"`

	// Figures lists figure and back-matter captions in source order.
	Figures []string `json:"figures" yaml:"figures"`

	// References maps a reference key (e.g. "BIBREF0") to its metadata,
	// copied verbatim from the raw record.
	References map[string]any `json:"ref_entries" yaml:"ref_entries"`
}
