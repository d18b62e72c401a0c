// Package classify decides whether a raw label line is plausibly a real
// ingredient. The rule engine is pure: same name and source always yield
// the same verdict.
package classify

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/foodlens/labelscan/pkg/labelscan/ingest"
	"github.com/foodlens/labelscan/pkg/labelscan/rules"
)

// quantityPattern matches a numeric quantity with a unit suffix, the
// usual shape of a nutrition-table row ("12 g", "0.5l", "70%").
var quantityPattern = regexp.MustCompile(`(?i)\d[\d.,]*\s*(kg|mg|ml|g|l|%)([^a-z]|$)`)

// Classifier is the rule engine behind the per-line verdict.
type Classifier struct {
	phrases []string
	rows    []string
}

// New builds a classifier from the given rule tables.
func New(t rules.Tables) *Classifier {
	c := &Classifier{
		phrases: make([]string, 0, len(t.PackagingPhrases)),
		rows:    make([]string, 0, len(t.NutritionRows)),
	}
	for _, p := range t.PackagingPhrases {
		c.phrases = append(c.phrases, strings.ToLower(p))
	}
	for _, r := range t.NutritionRows {
		c.rows = append(c.rows, strings.ToLower(r))
	}
	return c
}

// IsLikelyIngredient reports whether name looks like a genuine ingredient
// line. The first matching rule short-circuits:
//
//   - empty or whitespace-only names are rejected
//   - structured and token sources are trusted unconditionally
//   - very short names, names without letters, packaging phrases,
//     nutrition rows, quantity-with-unit lines, short all-caps headers
//     and separator-heavy metadata are rejected
//   - everything else is accepted
//
// Known edge case: a legitimate phrase carrying a percentage, such as
// "Cocoa Solids 70%", is rejected by the quantity rule. The rule is kept
// as-is pending product-owner confirmation.
func (c *Classifier) IsLikelyIngredient(name string, source ingest.Source) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return false
	}
	if source == ingest.SourceStructured || source == ingest.SourceToken {
		return true
	}
	if utf8.RuneCountInString(trimmed) < 3 {
		return false
	}
	if !hasLetter(trimmed) {
		return false
	}
	lower := strings.ToLower(trimmed)
	for _, phrase := range c.phrases {
		if strings.Contains(lower, phrase) {
			return false
		}
	}
	for _, row := range c.rows {
		if strings.Contains(lower, row) {
			return false
		}
	}
	if quantityPattern.MatchString(trimmed) {
		return false
	}
	if isShortHeader(trimmed) {
		return false
	}
	if separatorCount(trimmed) > 3 {
		return false
	}
	return true
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// isShortHeader flags fully upper-cased names of at most four words,
// typically section labels rather than ingredient text.
func isShortHeader(s string) bool {
	if s != strings.ToUpper(s) {
		return false
	}
	return len(strings.Fields(s)) <= 4
}

func separatorCount(s string) int {
	n := 0
	for _, sep := range []string{"/", ",", ";", ":"} {
		n += strings.Count(s, sep)
	}
	return n
}
