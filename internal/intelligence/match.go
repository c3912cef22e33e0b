package intelligence

import (
	"fmt"
	"strings"

	"github.com/itsflippen-dev/framework-intelligence/internal/model"
)

// matchExcerptLen caps the matched-text excerpt shown in findings.
const matchExcerptLen = 80

// fallbackReplacement is shown when a rule defines no replacement.
const fallbackReplacement = "See documentation"

// Match checks raw file content against every deprecated-pattern rule and
// returns one finding per matching rule.
//
// Matching is intentionally literal substring search, not structured
// diffing — false positives and negatives are accepted as a usability
// trade-off for simplicity. Each rule contributes at most one finding:
// the first matching search variant wins and the remaining variants are
// skipped, but every rule is always checked.
func Match(content string, rules []model.Rule) []model.Finding {
	var findings []model.Finding

	for _, rule := range rules {
		if rule.Pattern == "" {
			continue
		}

		for _, variant := range searchVariants(rule.Pattern) {
			if !strings.Contains(content, variant) {
				continue
			}

			replacement := rule.Replacement
			if replacement == "" {
				replacement = fallbackReplacement
			}

			findings = append(findings, model.Finding{
				Severity:    rule.Severity,
				Message:     fmt.Sprintf("Deprecated pattern found: %s", rule.Name),
				Rule:        rule.Name,
				Matched:     truncate(variant, matchExcerptLen),
				Replacement: replacement,
				Reason:      rule.Reason,
			})
			break
		}
	}

	return findings
}

// searchVariants expands a rule pattern into the list of literal strings to
// look for. Besides the pattern itself, the rust-analyzer checkOnSave rule
// needs quoting variants: rules files have historically written the setting
// with inconsistent key quoting, so both double- and single-quoted forms
// are matched.
func searchVariants(pattern string) []string {
	variants := []string{pattern}

	if strings.Contains(pattern, `checkOnSave": true`) {
		variants = append(variants,
			`"checkOnSave": true`,
			`'checkOnSave': true`,
		)
	}

	return variants
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
