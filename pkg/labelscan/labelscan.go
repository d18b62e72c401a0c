// Package labelscan turns a loosely structured prediction-service
// response about a food label into a de-duplicated ingredient list with
// allergen/additive findings, deterministic health scores and a
// product-level summary.
package labelscan

import (
	"strings"

	"github.com/foodlens/labelscan/pkg/labelscan/aggregate"
	"github.com/foodlens/labelscan/pkg/labelscan/classify"
	"github.com/foodlens/labelscan/pkg/labelscan/display"
	"github.com/foodlens/labelscan/pkg/labelscan/extract"
	"github.com/foodlens/labelscan/pkg/labelscan/ingest"
	"github.com/foodlens/labelscan/pkg/labelscan/product"
	"github.com/foodlens/labelscan/pkg/labelscan/rules"
	"github.com/foodlens/labelscan/pkg/labelscan/score"
)

// Analyzer is the analysis facade. It is stateless apart from its
// read-only rule tables, so a single instance is safe to reuse across
// concurrent payloads.
type Analyzer struct {
	classifier *classify.Classifier
	extractor  *extract.Extractor
	filter     *display.Filter
}

// Options configures an Analyzer.
type Options struct {
	// Tables overrides the compiled-in rule tables.
	Tables *rules.Tables
	// Threshold overrides the confidence threshold of the presentation
	// filter; zero keeps the table value.
	Threshold float64
}

// New creates an Analyzer with the given options.
func New(opts Options) *Analyzer {
	tables := rules.Default()
	if opts.Tables != nil {
		tables = *opts.Tables
	}
	threshold := tables.ConfidenceThreshold
	if opts.Threshold > 0 {
		threshold = opts.Threshold
	}
	return &Analyzer{
		classifier: classify.New(tables),
		extractor:  extract.New(tables),
		filter:     display.NewFilter(threshold),
	}
}

// Report is the full pipeline output for one payload.
type Report struct {
	// Summary is the product-level aggregation, the unit persisted into
	// the scan history.
	Summary product.Summary
	// Display is the filtered, cleaned ingredient view for rendering.
	Display []product.Ingredient
	// NoResults marks the valid terminal state in which no ingredient
	// lines could be derived from the payload.
	NoResults bool
}

// Analyze runs the full pipeline over one decoded payload:
// ingestion → classification → extraction/scoring → aggregation →
// presentation filtering. It is pure with respect to its input and never
// fails: malformed fields are treated as absent.
func (a *Analyzer) Analyze(payload ingest.Payload) Report {
	items := ingest.Items(payload)

	ingredients := make([]product.Ingredient, 0, len(items))
	for _, item := range items {
		ingredients = append(ingredients, a.analyzeItem(item))
	}

	overall := aggregate.OverallFlags(ingredients)
	summary := product.Summary{
		Ingredients:            ingredients,
		Overall:                overall,
		HealthScore:            payload.HealthScore(),
		Allergens:              aggregate.UnionAllergens(payload.Allergens(), ingredients),
		BackendRecommendations: aggregate.MergeRecommendations(payload.Recommendations(), overall, ingredients),
	}

	return Report{
		Summary:   summary,
		Display:   a.filter.Apply(ingredients),
		NoResults: len(items) == 0,
	}
}

// analyzeItem derives one Ingredient from a raw item. Allergen and
// additive extraction run regardless of the classifier verdict; only the
// health score is withheld from rejected lines.
func (a *Analyzer) analyzeItem(item ingest.RawItem) product.Ingredient {
	name := strings.TrimSpace(item.Name)
	accepted := a.classifier.IsLikelyIngredient(item.Name, item.Source)
	allergens := a.extractor.Allergens(item.Name)
	additives := a.extractor.Additives(item.Name)
	nutrition := ingest.Nutrition(item.Original)

	if name == "" {
		name = product.UnnamedItem
	}

	ing := product.Ingredient{
		Name:         name,
		Source:       item.Source,
		Confidence:   ingest.Confidence(item.Original),
		Nutrition:    nutrition,
		Allergens:    allergens,
		Additives:    additives,
		IsIngredient: &accepted,
	}
	if accepted {
		s := score.Score(item.Name, allergens, additives, nutrition)
		ing.HealthScore = &s
	}
	ing.Recommendations = aggregate.ItemRecommendations(ing)
	return ing
}
