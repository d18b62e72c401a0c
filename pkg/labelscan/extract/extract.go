// Package extract detects allergen and additive signatures in ingredient
// names. Detection is independent of the classifier verdict: rejected
// lines are scanned too.
package extract

import (
	"strings"

	"github.com/foodlens/labelscan/pkg/labelscan/rules"
)

type vocabEntry struct {
	label string
	terms []string
}

// Extractor matches names against the allergen and additive vocabularies.
type Extractor struct {
	allergens []vocabEntry
	additives []vocabEntry
}

// New builds an extractor from the given rule tables.
func New(t rules.Tables) *Extractor {
	e := &Extractor{}
	for _, entry := range t.Allergens {
		e.allergens = append(e.allergens, lowered(entry.Label, entry.Terms))
	}
	for _, entry := range t.Additives {
		e.additives = append(e.additives, lowered(entry.Tag, entry.Terms))
	}
	return e
}

func lowered(label string, terms []string) vocabEntry {
	entry := vocabEntry{label: label, terms: make([]string, len(terms))}
	for i, term := range terms {
		entry.terms[i] = strings.ToLower(term)
	}
	return entry
}

// Allergens returns the canonical labels matched in name, in vocabulary
// order, at most once each. Matching is case-insensitive substring
// matching, so "Shellfish" matches both the fish and shellfish entries.
func (e *Extractor) Allergens(name string) []string {
	return match(e.allergens, name)
}

// Additives returns the additive tags matched in name, in vocabulary
// order, at most once each.
func (e *Extractor) Additives(name string) []string {
	return match(e.additives, name)
}

func match(vocab []vocabEntry, name string) []string {
	lower := strings.ToLower(name)
	var found []string
	for _, entry := range vocab {
		for _, term := range entry.terms {
			if strings.Contains(lower, term) {
				found = append(found, entry.label)
				break
			}
		}
	}
	return found
}
