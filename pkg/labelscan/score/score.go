// Package score computes the deterministic 0-100 health score of an
// ingredient. The score is a pure function of the name, the detected
// findings and the attached nutrition values.
package score

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	sugarPattern = regexp.MustCompile(`(?i)sugar|sweeten|syrup|fructose|glucose|sucrose|dextrose|maltodextrin`)
	fatPattern   = regexp.MustCompile(`(?i)fat|oil|butter|hydrogenated|lard|margarine|shortening|ghee`)
	saltPattern  = regexp.MustCompile(`(?i)salt|sodium|monosodium`)
	colorPattern = regexp.MustCompile(`(?i)colou?r|dye|tartrazine|\be\d{3}\b`)

	// Characters outside this allow-list are a likely garbled-OCR signal.
	garbledPattern = regexp.MustCompile(`[^\p{L}\p{N}\s\-.,()/%]`)
)

// Score starts at 100 and applies independent, individually capped
// penalties. The result is clamped to [0,100]. Callers invoke it only for
// lines the classifier accepted.
func Score(name string, allergens, additives []string, nutrition map[string]any) int {
	s := 100.0

	s -= math.Min(60, float64(len(allergens)*20))
	s -= math.Min(30, float64(len(additives)*10))

	if sugarPattern.MatchString(name) {
		s -= 15
	}
	if fatPattern.MatchString(name) {
		s -= 10
	}
	if saltPattern.MatchString(name) {
		s -= 5
	}
	if colorPattern.MatchString(name) {
		s -= 10
	}

	trimmed := strings.TrimSpace(name)
	if utf8.RuneCountInString(trimmed) < 3 || garbledPattern.MatchString(trimmed) {
		s -= 10
	}

	if cal := Calories(nutrition); cal > 400 {
		s -= 20
	} else if cal > 200 {
		s -= 8
	}

	if s < 0 {
		s = 0
	}
	if s > 100 {
		s = 100
	}
	return int(math.Round(s))
}

// Calories reads the calorie value from a nutrition mapping, preferring
// "calories" over "kcal". Missing or non-numeric values count as 0.
func Calories(nutrition map[string]any) float64 {
	for _, key := range []string{"calories", "kcal"} {
		switch n := nutrition[key].(type) {
		case float64:
			return n
		case float32:
			return float64(n)
		case int:
			return float64(n)
		case int64:
			return float64(n)
		}
	}
	return 0
}
