// Package display is the final presentation policy: it re-cleans names,
// applies a confidence threshold and removes duplicate names for
// rendering. It is deliberately independent of the classifier verdict and
// may hide items the classifier accepted.
package display

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/foodlens/labelscan/pkg/labelscan/product"
)

// DefaultThreshold is the minimum confidence required to render an item
// whose classifier verdict is undefined.
const DefaultThreshold = 0.35

var (
	curlyQuotes = strings.NewReplacer("‘", "", "’", "", "“", "", "”", "")
	dashes      = strings.NewReplacer("‒", "-", "–", "-", "—", "-", "−", "-")

	disallowed = regexp.MustCompile(`[^\w\sÀ-ÖØ-öø-ÿ\-()/,]`)
	whitespace = regexp.MustCompile(`\s+`)
	letters    = regexp.MustCompile(`[A-Za-zÀ-ÖØ-öø-ÿ]`)
)

// Filter renders the ingredient view.
type Filter struct {
	threshold float64
}

// NewFilter creates a filter with the given confidence threshold; zero or
// negative values fall back to DefaultThreshold.
func NewFilter(threshold float64) *Filter {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Filter{threshold: threshold}
}

// CleanName normalizes an ingredient name for display: curly quotes are
// stripped, dash variants unified, characters outside the allow-list
// removed, repeated whitespace collapsed and trailing separators trimmed.
func CleanName(name string) string {
	s := curlyQuotes.Replace(name)
	s = dashes.Replace(s)
	s = disallowed.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	return strings.TrimRight(s, "-,/ ")
}

// Apply returns the renderable subset of ingredients with cleaned names.
// An item survives when its cleaned name is non-empty and substantial,
// its verdict is not explicitly false, and, for undefined verdicts, its
// confidence meets the threshold. Duplicate names are collapsed
// case-insensitively, first occurrence kept.
func (f *Filter) Apply(ings []product.Ingredient) []product.Ingredient {
	seen := make(map[string]struct{})
	var out []product.Ingredient

	for _, ing := range ings {
		name := CleanName(ing.Name)
		if name == "" {
			continue
		}
		if ing.IsIngredient != nil && !*ing.IsIngredient {
			continue
		}
		if ing.IsIngredient == nil {
			if ing.Confidence == nil || *ing.Confidence < f.threshold {
				continue
			}
		}
		if !substantial(name) {
			continue
		}

		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		shown := ing
		shown.Name = name
		out = append(out, shown)
	}

	return out
}

// substantial reports whether a cleaned name still carries at least two
// letters once digits and punctuation are stripped.
func substantial(name string) bool {
	stripped := strings.Join(letters.FindAllString(name, -1), "")
	return utf8.RuneCountInString(stripped) >= 2
}
