package intelligence

import (
	"sort"

	"github.com/itsflippen-dev/framework-intelligence/internal/model"
)

// deprecatedPatternsKey is the node key that marks a rules container inside
// the intelligence tree. Every other key is a category to descend into.
const deprecatedPatternsKey = "deprecatedPatterns"

// Flatten walks the intelligence tree and extracts every deprecated-pattern
// entry at every depth into a flat list of rules.
//
// Whenever a node contains a "deprecatedPatterns" map, each entry there
// becomes one rule, categorized with the dotted path of its ancestor keys
// (e.g. a pattern under intelligence.rust.rustAnalyzer gets category
// "rust.rustAnalyzer"). Descent continues into all other keys.
//
// Sibling keys are visited in sorted order so the rule list — and therefore
// report ordering — is stable across runs. Nodes or entries that do not
// have the expected map shape are skipped, never fatal: the rules file is
// trusted but not schema-validated.
func Flatten(tree map[string]interface{}) []model.Rule {
	var rules []model.Rule
	flattenNode(tree, "", &rules)
	return rules
}

// Rules flattens the loaded intelligence tree. Convenience wrapper so
// callers hold a single Intelligence value.
func (i *Intelligence) Rules() []model.Rule {
	return Flatten(i.Tree)
}

func flattenNode(node map[string]interface{}, categoryPath string, rules *[]model.Rule) {
	for _, key := range sortedKeys(node) {
		value := node[key]

		if key == deprecatedPatternsKey {
			patterns, ok := value.(map[string]interface{})
			if !ok {
				continue
			}
			collectPatterns(patterns, categoryPath, rules)
			continue
		}

		child, ok := value.(map[string]interface{})
		if !ok {
			// Leaf values (strings, numbers, arrays) carry no patterns.
			continue
		}

		childPath := key
		if categoryPath != "" {
			childPath = categoryPath + "." + key
		}
		flattenNode(child, childPath, rules)
	}
}

// collectPatterns turns one deprecatedPatterns map into rule records.
func collectPatterns(patterns map[string]interface{}, categoryPath string, rules *[]model.Rule) {
	for _, name := range sortedKeys(patterns) {
		info, ok := patterns[name].(map[string]interface{})
		if !ok {
			continue
		}

		*rules = append(*rules, model.Rule{
			Name:        name,
			Category:    categoryPath,
			Pattern:     stringField(info, "pattern"),
			Severity:    model.ParseSeverity(stringField(info, "severity")),
			Replacement: stringField(info, "replacement"),
			Reason:      stringField(info, "reason"),
		})
	}
}

// stringField reads a string-typed field from a decoded JSON map,
// returning "" when the field is absent or not a string.
func stringField(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
