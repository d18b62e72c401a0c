package rules

// AllergenEntry maps a canonical allergen label to the lowercase terms
// that imply it when found inside an ingredient name.
type AllergenEntry struct {
	Label string   `yaml:"label"`
	Terms []string `yaml:"terms"`
}

// AdditiveEntry maps an additive tag to its trigger terms.
type AdditiveEntry struct {
	Tag   string   `yaml:"tag"`
	Terms []string `yaml:"terms"`
}

// Tables holds the closed rule vocabularies driving classification and
// extraction. All matching against them is case-insensitive substring
// matching; the tables stay finite and explicit.
type Tables struct {
	PackagingPhrases    []string        `yaml:"packaging_phrases"`
	NutritionRows       []string        `yaml:"nutrition_rows"`
	Allergens           []AllergenEntry `yaml:"allergens"`
	Additives           []AdditiveEntry `yaml:"additives"`
	ConfidenceThreshold float64         `yaml:"confidence_threshold"`
}

// Default returns the compiled-in rule tables.
func Default() Tables {
	return Tables{
		PackagingPhrases: []string{
			"best before",
			"manufactured",
			"net weight",
			"nutrition facts",
			"barcode",
			"mrp",
			"expiry",
			"batch no",
			"use by",
			"packed on",
			"serving size",
			"store in a cool",
		},
		NutritionRows: []string{
			"kcal",
			"kj",
			"calories",
			"per 100g",
			"per 100 ml",
		},
		Allergens: []AllergenEntry{
			{Label: "peanut", Terms: []string{"peanut"}},
			{Label: "tree nut", Terms: []string{"tree nut", "almond", "walnut", "cashew", "hazelnut", "pecan", "pistachio"}},
			{Label: "milk", Terms: []string{"milk"}},
			{Label: "egg", Terms: []string{"egg"}},
			{Label: "soy", Terms: []string{"soy"}},
			{Label: "wheat", Terms: []string{"wheat"}},
			{Label: "fish", Terms: []string{"fish"}},
			{Label: "shellfish", Terms: []string{"shellfish"}},
			{Label: "sesame", Terms: []string{"sesame"}},
			{Label: "mustard", Terms: []string{"mustard"}},
			{Label: "celery", Terms: []string{"celery"}},
			{Label: "sulphites", Terms: []string{"sulphite", "sulfite"}},
		},
		Additives: []AdditiveEntry{
			{Tag: "azo dye", Terms: []string{"tartrazine", "sunset yellow", "allura red", "e102", "e110", "e122", "e124", "e129"}},
		},
		ConfidenceThreshold: 0.35,
	}
}
