// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Pipeline errors. Both are fatal for a run; callers match them with
// errors.Is.
var (
	// ErrInvalidInput reports a malformed input: a paper without an id or
	// title, or a module list that breaks dependency order.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyInput reports an empty analysis list, config, or repository
	// handed to a stage.
	ErrEmptyInput = errors.New("empty input")
)
