package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/foodlens/labelscan/pkg/labelscan/internalerr"
	"github.com/foodlens/labelscan/pkg/labelscan/rules"
)

// LoadTables reads rule-table overrides from a YAML file and merges them
// over the compiled-in defaults. Sections absent from the file keep their
// default values, so a file may override just the packaging phrases or
// just the confidence threshold.
func LoadTables(path string) (rules.Tables, error) {
	tables := rules.Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return tables, fmt.Errorf("read rule tables: %w", err)
	}

	var overrides rules.Tables
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return tables, fmt.Errorf("%w: parse rule tables: %v", internalerr.ErrInvalidConfig, err)
	}

	if len(overrides.PackagingPhrases) > 0 {
		tables.PackagingPhrases = overrides.PackagingPhrases
	}
	if len(overrides.NutritionRows) > 0 {
		tables.NutritionRows = overrides.NutritionRows
	}
	if len(overrides.Allergens) > 0 {
		tables.Allergens = overrides.Allergens
	}
	if len(overrides.Additives) > 0 {
		tables.Additives = overrides.Additives
	}
	if overrides.ConfidenceThreshold > 0 {
		tables.ConfidenceThreshold = overrides.ConfidenceThreshold
	}

	return tables, nil
}
