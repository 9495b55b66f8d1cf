// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package evaluate

import "strings"

// Judge scores a repository against a prompt on a 1 (worst) to 5 (best)
// scale. Implementations must be deterministic for a given prompt.
type Judge interface {
	Score(prompt string) float64
}

// StubJudge stands in for an evaluation model. It returns 4.0 for prompts
// that mention a gold-standard repository and 4.5 otherwise.
type StubJudge struct{}

// Score implements Judge.
func (StubJudge) Score(prompt string) float64 {
	if strings.Contains(strings.ToLower(prompt), "gold-standard") {
		return 4.0
	}
	return 4.5
}
