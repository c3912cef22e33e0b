package validator

import (
	"strings"

	"github.com/itsflippen-dev/framework-intelligence/internal/model"
)

// Tailwind validates a Tailwind CSS configuration file.
//
// Both checks are intentionally textual — Tailwind configs are JavaScript
// or TypeScript modules, and parsing them structurally is out of scope.
// A substring test on the raw source is the accepted trade-off.
func Tailwind(content []byte) []model.Finding {
	text := string(content)
	var findings []model.Finding

	// A CommonJS export together with a theme section is the Tailwind 3
	// JS-config style. Tailwind 4 moved to CSS-first configuration.
	if strings.Contains(text, "module.exports") && strings.Contains(text, "theme:") {
		findings = append(findings, model.Finding{
			Severity:    model.SeverityWarning,
			Message:     "Tailwind 3 configuration detected",
			Replacement: "Use the @theme { } directive in CSS instead of a JS config",
			Reason:      "Tailwind 4 uses CSS-first configuration",
		})
	}

	// The purge option was renamed to content in Tailwind 3 and the old
	// name is rejected outright by current versions.
	if strings.Contains(text, "purge:") {
		findings = append(findings, model.Finding{
			Severity:    model.SeverityError,
			Message:     "Deprecated 'purge' option found",
			Replacement: "content: ['./src/**/*.{js,jsx,ts,tsx}']",
		})
	}

	return findings
}
