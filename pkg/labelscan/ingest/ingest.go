package ingest

import "strings"

// Source identifies which payload shape a raw item came from.
type Source string

const (
	SourceStructured Source = "structured"
	SourceToken      Source = "token"
	SourceOCR        Source = "ocr"
)

// RawItem is one detected label line. Original retains whatever value the
// upstream payload attached to the entry (it may carry nested confidence
// and nutrition fields). RawItems are immutable after creation.
type RawItem struct {
	Name     string
	Source   Source
	Original any
}

// Payload is the decoded prediction-service response. Every field is
// optional; a missing or wrong-shaped field is treated as absent, never
// as an error.
type Payload map[string]any

// Items converts the payload into an ordered list of raw items. Shape
// precedence is fixed: the first non-empty source wins and the rest are
// ignored entirely.
//
//  1. structured ingredient entries
//  2. token entries
//  3. free ingredients text, split on newline, comma or semicolon
//  4. raw OCR text, split on newline only
//
// No matching field yields an empty list, which is a valid result.
func Items(p Payload) []RawItem {
	if entries := p.list("ingredients"); len(entries) > 0 {
		return entryItems(entries, SourceStructured)
	}
	if entries := p.list("tokens"); len(entries) > 0 {
		return entryItems(entries, SourceToken)
	}
	if text := p.str("ingredients_text"); strings.TrimSpace(text) != "" {
		return textItems(text, ",\n;")
	}
	if text := p.str("ocr_text"); strings.TrimSpace(text) != "" {
		return textItems(isolateIngredients(text), "\n")
	}
	return nil
}

// HealthScore returns the backend-supplied product score, if any.
func (p Payload) HealthScore() *float64 {
	for _, key := range []string{"health_score", "health"} {
		if n, ok := toNumber(p[key]); ok {
			return &n
		}
	}
	return nil
}

// Allergens returns the backend-supplied allergen list. A single string
// value is treated as a one-element list.
func (p Payload) Allergens() []string {
	for _, key := range []string{"allergens", "allergen"} {
		switch v := p[key].(type) {
		case string:
			return []string{v}
		case []any:
			var out []string
			for _, item := range v {
				if s, ok := item.(string); ok {
					out = append(out, s)
				}
			}
			if len(out) > 0 {
				return out
			}
		}
	}
	return nil
}

// Recommendations returns backend-supplied recommendation entries, forced
// into a list even when the payload carries a single value.
func (p Payload) Recommendations() []any {
	for _, key := range []string{"recommendations", "recs", "suggestions"} {
		switch v := p[key].(type) {
		case nil:
			continue
		case []any:
			if len(v) > 0 {
				return v
			}
		default:
			return []any{v}
		}
	}
	return nil
}

// Confidence extracts a confidence value attached to a structured entry.
// There is no default: absence stays nil.
func Confidence(original any) *float64 {
	entry, ok := original.(map[string]any)
	if !ok {
		return nil
	}
	if n, ok := toNumber(entry["confidence"]); ok {
		return &n
	}
	return nil
}

// Nutrition extracts the nutrition mapping attached to a structured
// entry, defaulting to an empty mapping.
func Nutrition(original any) map[string]any {
	if entry, ok := original.(map[string]any); ok {
		if n, ok := entry["nutrition"].(map[string]any); ok {
			return n
		}
	}
	return map[string]any{}
}

// entryName resolves the string-or-object ambiguity of structured
// entries: objects are probed for name, then text, then label; plain
// strings name themselves.
func entryName(v any) string {
	switch entry := v.(type) {
	case string:
		return entry
	case map[string]any:
		for _, key := range []string{"name", "text", "label"} {
			if s, ok := entry[key].(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

func entryItems(entries []any, source Source) []RawItem {
	items := make([]RawItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, RawItem{
			Name:     entryName(entry),
			Source:   source,
			Original: entry,
		})
	}
	return items
}

func textItems(text, separators string) []RawItem {
	pieces := strings.FieldsFunc(text, func(r rune) bool {
		return strings.ContainsRune(separators, r)
	})
	var items []RawItem
	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		items = append(items, RawItem{Name: piece, Source: SourceOCR})
	}
	return items
}

// isolateIngredients narrows raw OCR text to the ingredients block when a
// marker is present, cutting at the first nutrition-table stop token.
// Without a marker the full text is kept.
func isolateIngredients(text string) string {
	lower := strings.ToLower(text)
	start := -1
	for _, marker := range []string{"ingredients as served", "ingredients", "ingredient"} {
		if idx := strings.Index(lower, marker); idx != -1 {
			start = idx
			break
		}
	}
	if start == -1 {
		return text
	}
	snippet := text[start:]
	snippetLower := lower[start:]
	for _, stop := range []string{"nutritional", "nutrition", "\n\n", "typical values"} {
		if idx := strings.Index(snippetLower, stop); idx != -1 {
			return snippet[:idx]
		}
	}
	return snippet
}

func (p Payload) list(key string) []any {
	v, ok := p[key].([]any)
	if !ok {
		return nil
	}
	return v
}

func (p Payload) str(key string) string {
	s, _ := p[key].(string)
	return s
}

// toNumber coerces the numeric value shapes encoding/json can produce.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
