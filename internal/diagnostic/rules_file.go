package diagnostic

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadLibrary reads a YAML rules file and merges it over the built-in
// library, so product copy can change without a deploy. Empty path returns
// the defaults. Only sections present in the file are replaced.
func LoadLibrary(path string) (*Library, error) {
	lib := DefaultLibrary()
	if path == "" {
		return lib, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}

	var overrides Library
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse rules file: %w", err)
	}

	if len(overrides.ActionRules) > 0 {
		lib.ActionRules = overrides.ActionRules
	}
	if overrides.ActionFallback != "" {
		lib.ActionFallback = overrides.ActionFallback
	}
	for topic, rules := range overrides.Topics {
		merged := lib.Topics[topic]
		if len(rules.InsightRules) > 0 {
			merged.InsightRules = rules.InsightRules
		}
		if rules.InsightFallback != "" {
			merged.InsightFallback = rules.InsightFallback
		}
		if len(rules.Cards) > 0 {
			merged.Cards = rules.Cards
		}
		if len(rules.KeyInsights) > 0 {
			merged.KeyInsights = rules.KeyInsights
		}
		if len(rules.Recommendations) > 0 {
			merged.Recommendations = rules.Recommendations
		}
		if len(rules.Metrics) > 0 {
			merged.Metrics = rules.Metrics
		}
		lib.Topics[topic] = merged
	}
	return lib, nil
}
