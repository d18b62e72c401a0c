package score

import "testing"

func TestCleanNameScoresFull(t *testing.T) {
	// Ten clean letters, no findings, no nutrition data.
	if got := Score("Watermelon", nil, nil, nil); got != 100 {
		t.Errorf("Expected 100, got %d", got)
	}
}

func TestKeywordPenalties(t *testing.T) {
	cases := []struct {
		name string
		want int
	}{
		{"Sugar", 85},          // sugar keyword
		{"Sea Salt", 95},       // salt keyword
		{"Sunflower oil", 90},  // fat keyword
		{"Red dye", 90},        // color keyword
	}

	for _, tc := range cases {
		if got := Score(tc.name, nil, nil, nil); got != tc.want {
			t.Errorf("Score(%q) = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestPeanutButterExample(t *testing.T) {
	// 100 − 20 (one allergen) − 10 (butter keyword) = 70.
	if got := Score("Peanut Butter", []string{"peanut"}, nil, nil); got != 70 {
		t.Errorf("Expected 70, got %d", got)
	}
}

func TestAllergenPenaltyCappedAt60(t *testing.T) {
	allergens := []string{"peanut", "milk", "egg", "soy", "wheat"}
	if got := Score("Watermelon", allergens, nil, nil); got != 40 {
		t.Errorf("Five allergens should cap at −60, got %d", got)
	}
}

func TestAdditivePenaltyCappedAt30(t *testing.T) {
	additives := []string{"azo dye", "azo dye 2", "azo dye 3", "azo dye 4"}
	if got := Score("Watermelon", nil, additives, nil); got != 70 {
		t.Errorf("Four additives should cap at −30, got %d", got)
	}
}

func TestMonotonicInAllergenAndAdditiveCount(t *testing.T) {
	prev := 101
	for n := 0; n <= 6; n++ {
		allergens := make([]string, n)
		got := Score("Watermelon", allergens, nil, nil)
		if got > prev {
			t.Errorf("Score rose from %d to %d at %d allergens", prev, got, n)
		}
		prev = got
	}

	prev = 101
	for n := 0; n <= 6; n++ {
		additives := make([]string, n)
		got := Score("Watermelon", nil, additives, nil)
		if got > prev {
			t.Errorf("Score rose from %d to %d at %d additives", prev, got, n)
		}
		prev = got
	}
}

func TestBounds(t *testing.T) {
	// Pile on every penalty; the score must stay within [0,100].
	got := Score("@@", make([]string, 10), make([]string, 10),
		map[string]any{"calories": 900.0})
	if got < 0 || got > 100 {
		t.Errorf("Score out of bounds: %d", got)
	}
	if got != 0 {
		t.Errorf("Expected fully penalized score 0, got %d", got)
	}
}

func TestGarbledNamePenalty(t *testing.T) {
	// Characters outside the allow-list signal garbled OCR.
	if got := Score("Watermelon#", nil, nil, nil); got != 90 {
		t.Errorf("Expected 90, got %d", got)
	}
	// Short names take the same penalty.
	if got := Score("ab", nil, nil, nil); got != 90 {
		t.Errorf("Expected 90, got %d", got)
	}
}

func TestCaloriePenalties(t *testing.T) {
	if got := Score("Watermelon", nil, nil, map[string]any{"calories": 450.0}); got != 80 {
		t.Errorf("Expected 80 for >400 calories, got %d", got)
	}
	if got := Score("Watermelon", nil, nil, map[string]any{"kcal": 250.0}); got != 92 {
		t.Errorf("Expected 92 for >200 calories, got %d", got)
	}
	if got := Score("Watermelon", nil, nil, map[string]any{"calories": "lots"}); got != 100 {
		t.Errorf("Non-numeric calories must count as 0, got %d", got)
	}
}

func TestCaloriesCoercion(t *testing.T) {
	if got := Calories(map[string]any{"calories": 120.0, "kcal": 500.0}); got != 120 {
		t.Errorf("calories should win over kcal, got %v", got)
	}
	if got := Calories(nil); got != 0 {
		t.Errorf("Missing nutrition should coerce to 0, got %v", got)
	}
}
