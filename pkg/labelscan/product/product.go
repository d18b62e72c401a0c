// Package product holds the value types flowing out of the analysis
// pipeline. All of them are immutable after construction: later stages
// build new derived values instead of editing earlier ones.
package product

import "github.com/foodlens/labelscan/pkg/labelscan/ingest"

// UnnamedItem is the display fallback for entries whose name could not be
// extracted from the payload.
const UnnamedItem = "Unknown item"

// Recommendation is a per-ingredient advice entry. Type is one of
// "allergen", "additive" or "nutrition".
type Recommendation struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// FlagType is the severity of a product-level flag.
type FlagType string

const (
	FlagCritical   FlagType = "critical"
	FlagWarning    FlagType = "warning"
	FlagSuggestion FlagType = "suggestion"
)

// Alternative pairs a calorie-dense ingredient with a swap suggestion.
type Alternative struct {
	Name       string `json:"name"`
	Suggestion string `json:"suggestion"`
}

// Flag is a product-level finding.
type Flag struct {
	Type         FlagType      `json:"type"`
	Message      string        `json:"message"`
	Alternatives []Alternative `json:"alternatives,omitempty"`
}

// Ingredient is the per-line analysis result.
//
// IsIngredient is tri-state at the presentation boundary: the pipeline
// always sets it, but the presentation filter treats nil as "undefined"
// and falls back to the confidence threshold. HealthScore is non-nil
// exactly when IsIngredient is explicitly true.
type Ingredient struct {
	Name            string           `json:"name"`
	Source          ingest.Source    `json:"source"`
	Confidence      *float64         `json:"confidence"`
	Nutrition       map[string]any   `json:"nutrition"`
	Allergens       []string         `json:"allergens"`
	Additives       []string         `json:"additives"`
	Recommendations []Recommendation `json:"recommendations"`
	IsIngredient    *bool            `json:"is_ingredient"`
	HealthScore     *int             `json:"ingredient_health_score"`
}

// Summary is the product-level aggregation for one prediction payload.
type Summary struct {
	Ingredients            []Ingredient `json:"ingredients"`
	Overall                []Flag       `json:"overall"`
	HealthScore            *float64     `json:"health_score"`
	Allergens              []string     `json:"allergens"`
	BackendRecommendations []any        `json:"backend_recommendations"`
}
