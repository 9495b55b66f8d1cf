// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package paper normalizes raw paper JSON (S2ORC layout) into a types.Paper.
// Only a missing id or title is fatal; every other field is optional and
// defaults to empty with a logged diagnostic.
package paper

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/pdiddy/paper-coder/pkg/types"
)

// Raw record keys.
const (
	keyPaperID    = "paper_id"
	keyID         = "id"
	keyTitle      = "title"
	keyAbstract   = "abstract"
	keyPDFParse   = "pdf_parse"
	keyBodyText   = "body_text"
	keyBackMatter = "back_matter"
	keyRefEntries = "ref_entries"
	keyText       = "text"
)

// Parse builds a Paper from an untyped JSON record. It fails with
// types.ErrInvalidInput when the record has no id ("paper_id" or "id") or no
// title. A key holding JSON null counts as missing.
func Parse(raw map[string]any, logger *zap.Logger) (*types.Paper, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	id, ok := lookup(raw, keyPaperID)
	if !ok {
		id, ok = lookup(raw, keyID)
	}
	if !ok {
		return nil, fmt.Errorf("paper record missing %q: %w", keyPaperID, types.ErrInvalidInput)
	}
	title, ok := lookup(raw, keyTitle)
	if !ok {
		return nil, fmt.Errorf("paper record missing %q: %w", keyTitle, types.ErrInvalidInput)
	}

	p := &types.Paper{
		ID:    strings.TrimSpace(cast.ToString(id)),
		Title: strings.TrimSpace(cast.ToString(title)),
	}

	p.Abstract = extractAbstract(raw, logger)

	if body, ok := raw[keyBodyText].([]any); ok {
		p.BodyText = strings.Join(segments(body), "\n")
	} else {
		logger.Warn("body text not found in paper record", zap.String("paper_id", p.ID))
	}

	p.Figures = []string{}
	if back, ok := raw[keyBackMatter].([]any); ok {
		p.Figures = segments(back)
	}

	p.References = map[string]any{}
	if refs, ok := raw[keyRefEntries].(map[string]any); ok {
		p.References = refs
	} else {
		logger.Info("reference entries not found in paper record", zap.String("paper_id", p.ID))
	}

	logger.Debug("parsed paper",
		zap.String("paper_id", p.ID),
		zap.Int("abstract_len", len(p.Abstract)),
		zap.Int("figures", len(p.Figures)),
		zap.Int("references", len(p.References)),
	)
	return p, nil
}

// extractAbstract reads the top-level abstract and falls back to
// pdf_parse.abstract when the top-level one is absent, empty, or of an
// unrecognised shape.
func extractAbstract(raw map[string]any, logger *zap.Logger) string {
	if text, ok := AbstractText(raw[keyAbstract]); ok {
		return text
	}
	if pdf, ok := raw[keyPDFParse].(map[string]any); ok {
		if text, ok := AbstractText(pdf[keyAbstract]); ok {
			return text
		}
	}
	logger.Warn("abstract not found in paper record")
	return ""
}

// AbstractText applies the abstract extraction rules to one value: a
// sequence of {"text": ...} records or strings is reduced to its non-empty
// trimmed segments joined by single spaces; a string is trimmed. ok is false
// for nil, empty, or any other shape. Applying AbstractText to its own
// string output returns the same string.
func AbstractText(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		if val == "" {
			return "", false
		}
		return strings.TrimSpace(val), true
	case []any:
		if len(val) == 0 {
			return "", false
		}
		return strings.Join(segments(val), " "), true
	default:
		return "", false
	}
}

// segments returns the trimmed, non-empty text of each entry, where an
// entry is either a string or an object with a "text" field.
func segments(items []any) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		switch it := item.(type) {
		case string:
			s = it
		case map[string]any:
			s, _ = it[keyText].(string)
		default:
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// lookup returns raw[key] and whether it is present and not null.
func lookup(raw map[string]any, key string) (any, bool) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}
