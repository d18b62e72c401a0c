package display

import (
	"testing"

	"github.com/foodlens/labelscan/pkg/labelscan/product"
)

func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }

func TestCleanName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"“Sugar”", "Sugar"},
		{"Corn — syrup", "Corn - syrup"},
		{"Salt!!!", "Salt"},
		{"Water,", "Water"},
		{"Olive   oil", "Olive oil"},
		{"Cocoa (70)", "Cocoa (70)"},
		{"Café au lait", "Café au lait"},
		{"***", ""},
	}

	for _, tc := range cases {
		if got := CleanName(tc.in); got != tc.want {
			t.Errorf("CleanName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExplicitVerdictBeatsConfidence(t *testing.T) {
	f := NewFilter(0)

	ings := []product.Ingredient{
		{Name: "Sugar", IsIngredient: boolPtr(true), Confidence: floatPtr(0.1)},
	}

	out := f.Apply(ings)
	if len(out) != 1 {
		t.Fatalf("Explicitly accepted item must render despite low confidence, got %v", out)
	}
}

func TestUndefinedVerdictNeedsConfidence(t *testing.T) {
	f := NewFilter(0)

	ings := []product.Ingredient{
		{Name: "Maybe Sugar", Confidence: floatPtr(0.1)},  // below threshold
		{Name: "Likely Salt", Confidence: floatPtr(0.5)},  // above threshold
		{Name: "No Confidence"},                           // absent
	}

	out := f.Apply(ings)
	if len(out) != 1 {
		t.Fatalf("Expected 1 rendered item, got %d: %v", len(out), out)
	}
	if out[0].Name != "Likely Salt" {
		t.Errorf("Expected Likely Salt, got %s", out[0].Name)
	}
}

func TestExplicitlyRejectedIsHidden(t *testing.T) {
	f := NewFilter(0)

	ings := []product.Ingredient{
		{Name: "Best Before 2025", IsIngredient: boolPtr(false), Confidence: floatPtr(0.99)},
	}

	if out := f.Apply(ings); len(out) != 0 {
		t.Errorf("Rejected item must stay hidden, got %v", out)
	}
}

func TestCustomThreshold(t *testing.T) {
	f := NewFilter(0.8)

	ings := []product.Ingredient{
		{Name: "Borderline", Confidence: floatPtr(0.5)},
	}
	if out := f.Apply(ings); len(out) != 0 {
		t.Errorf("0.5 should not pass a 0.8 threshold, got %v", out)
	}
}

func TestDeduplicatesCaseInsensitively(t *testing.T) {
	f := NewFilter(0)

	ings := []product.Ingredient{
		{Name: "Sugar", Source: "ocr", IsIngredient: boolPtr(true)},
		{Name: "SUGAR", Source: "structured", IsIngredient: boolPtr(true)},
		{Name: "Salt", IsIngredient: boolPtr(true)},
	}

	out := f.Apply(ings)
	if len(out) != 2 {
		t.Fatalf("Expected 2 items after de-duplication, got %d: %v", len(out), out)
	}
	// First occurrence wins.
	if out[0].Name != "Sugar" || out[0].Source != "ocr" {
		t.Errorf("First occurrence should be kept, got %+v", out[0])
	}
}

func TestInsubstantialNamesAreHidden(t *testing.T) {
	f := NewFilter(0)

	ings := []product.Ingredient{
		{Name: "B1", IsIngredient: boolPtr(true)},
		{Name: "12345", IsIngredient: boolPtr(true)},
		{Name: "(--)", IsIngredient: boolPtr(true)},
	}

	if out := f.Apply(ings); len(out) != 0 {
		t.Errorf("Names without two letters must be hidden, got %v", out)
	}
}

func TestFilterIsIndependentOfClassifier(t *testing.T) {
	f := NewFilter(0)

	// The filter may hide items the classifier accepted: verdict true but
	// the cleaned name collapses to nothing.
	ings := []product.Ingredient{
		{Name: "###", IsIngredient: boolPtr(true)},
	}
	if out := f.Apply(ings); len(out) != 0 {
		t.Errorf("Empty cleaned name must hide the item, got %v", out)
	}
}
