// Package aggregate merges per-ingredient findings into product-level
// flags, recommendations and the combined allergen set.
package aggregate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/foodlens/labelscan/pkg/labelscan/product"
	"github.com/foodlens/labelscan/pkg/labelscan/score"
)

// highCalorie is the calorie level above which an ingredient earns a
// nutrition recommendation; suggestionCalorie is the lower level at which
// it becomes an alternative-swap candidate.
const (
	highCalorie       = 400
	suggestionCalorie = 200
	maxAlternatives   = 3
)

const alternativeText = "Consider a lower-calorie alternative"

// ItemRecommendations derives the advice entries for one ingredient.
func ItemRecommendations(ing product.Ingredient) []product.Recommendation {
	var recs []product.Recommendation
	if len(ing.Allergens) > 0 {
		recs = append(recs, product.Recommendation{
			Type:    "allergen",
			Message: fmt.Sprintf("%s contains allergens: %s", ing.Name, strings.Join(ing.Allergens, ", ")),
		})
	}
	if len(ing.Additives) > 0 {
		recs = append(recs, product.Recommendation{
			Type:    "additive",
			Message: fmt.Sprintf("%s contains additives: %s", ing.Name, strings.Join(ing.Additives, ", ")),
		})
	}
	if score.Calories(ing.Nutrition) > highCalorie {
		recs = append(recs, product.Recommendation{
			Type:    "nutrition",
			Message: fmt.Sprintf("%s is high in calories", ing.Name),
		})
	}
	return recs
}

// OverallFlags builds the product-level flags: one critical flag when any
// ingredient carries allergens, one warning when any carries additives,
// and one suggestion listing up to three calorie-dense ingredients in
// pipeline order.
func OverallFlags(ings []product.Ingredient) []product.Flag {
	var flags []product.Flag

	if allergens := UnionAllergens(nil, ings); len(allergens) > 0 {
		flags = append(flags, product.Flag{
			Type:    product.FlagCritical,
			Message: "Contains allergens: " + strings.Join(allergens, ", "),
		})
	}

	additiveLists := make([][]string, 0, len(ings))
	for _, ing := range ings {
		additiveLists = append(additiveLists, ing.Additives)
	}
	additives := uniqueTrimmed(additiveLists)
	if len(additives) > 0 {
		flags = append(flags, product.Flag{
			Type:    product.FlagWarning,
			Message: "Contains additives: " + strings.Join(additives, ", "),
		})
	}

	var alts []product.Alternative
	for _, ing := range ings {
		if len(alts) == maxAlternatives {
			break
		}
		if score.Calories(ing.Nutrition) > suggestionCalorie {
			alts = append(alts, product.Alternative{Name: ing.Name, Suggestion: alternativeText})
		}
	}
	if len(alts) > 0 {
		flags = append(flags, product.Flag{
			Type:         product.FlagSuggestion,
			Message:      "Some ingredients are calorie-dense",
			Alternatives: alts,
		})
	}

	return flags
}

// MergeRecommendations gathers recommendations from the three sources in
// precedence order (backend-supplied first, then alternatives from the
// overall flags, then per-ingredient entries) and de-duplicates them by a
// derived key, keeping the first occurrence.
func MergeRecommendations(backend []any, overall []product.Flag, ings []product.Ingredient) []any {
	seen := make(map[string]struct{})
	var merged []any

	add := func(v any) {
		key := recommendationKey(v)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		merged = append(merged, v)
	}

	for _, v := range backend {
		add(v)
	}
	for _, flag := range overall {
		for _, alt := range flag.Alternatives {
			add(alt)
		}
	}
	for _, ing := range ings {
		for _, rec := range ing.Recommendations {
			add(rec)
		}
	}

	return merged
}

// recommendationKey derives the de-duplication key: plain strings key on
// themselves, message-bearing values on the message, name-bearing values
// on name plus suggestion, anything else on its JSON serialization.
func recommendationKey(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case product.Recommendation:
		return t.Message
	case product.Alternative:
		return t.Name + t.Suggestion
	case map[string]any:
		if msg, ok := t["message"].(string); ok {
			return msg
		}
		if name, ok := t["name"].(string); ok {
			suggestion, _ := t["suggestion"].(string)
			return name + suggestion
		}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// UnionAllergens merges the backend allergen list with every detected
// allergen into one trimmed, de-duplicated list, first occurrence order
// preserved.
func UnionAllergens(backend []string, ings []product.Ingredient) []string {
	lists := make([][]string, 0, len(ings)+1)
	lists = append(lists, backend)
	for _, ing := range ings {
		lists = append(lists, ing.Allergens)
	}
	return uniqueTrimmed(lists)
}

func uniqueTrimmed(lists [][]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range lists {
		for _, v := range list {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}
