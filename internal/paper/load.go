// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package paper

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pdiddy/paper-coder/pkg/types"
)

// LoadFile reads a paper JSON file into an untyped record. Numbers are kept
// as json.Number so numeric ids survive unchanged. A missing, unreadable, or
// empty record fails with types.ErrInvalidInput.
func LoadFile(path string) (map[string]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening paper %s: %v: %w", path, err, types.ErrInvalidInput)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding paper %s: %v: %w", path, err, types.ErrInvalidInput)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("paper %s is empty: %w", path, types.ErrInvalidInput)
	}
	return raw, nil
}
