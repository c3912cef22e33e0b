package validator

import (
	"encoding/json"
	"path/filepath"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/itsflippen-dev/framework-intelligence/internal/model"
)

// legacyESLintFiles are the eslintrc-era config filenames. ESLint 9 made
// flat config (eslint.config.*) the default and deprecated all of these.
var legacyESLintFiles = map[string]bool{
	".eslintrc":      true,
	".eslintrc.js":   true,
	".eslintrc.json": true,
	".eslintrc.yaml": true,
	".eslintrc.yml":  true,
}

// ESLint validates an ESLint configuration file.
//
// The primary check is filename-based: any eslintrc-era name produces a
// migration warning. For the JSON and YAML legacy formats the content is
// additionally syntax-checked (the JS formats would need a JavaScript
// parser and are left to ESLint itself).
func ESLint(path string, content []byte) []model.Finding {
	var findings []model.Finding
	name := filepath.Base(path)

	if legacyESLintFiles[name] {
		findings = append(findings, model.Finding{
			Severity:    model.SeverityWarning,
			Message:     "Legacy ESLint config format detected: " + name,
			Replacement: "eslint.config.js or eslint.config.mjs",
			Reason:      "ESLint 9+ uses flat config format",
		})
	}

	switch filepath.Ext(name) {
	case ".json":
		// .eslintrc.json historically tolerates comments, so parse as JSONC.
		var doc interface{}
		if err := json.Unmarshal(jsonc.ToJSON(content), &doc); err != nil {
			findings = append(findings, model.ErrorFinding("Invalid JSON: %v", err))
		}
	case ".yaml", ".yml":
		var doc interface{}
		if err := yaml.Unmarshal(content, &doc); err != nil {
			findings = append(findings, model.ErrorFinding("Invalid YAML: %v", err))
		}
	}

	return findings
}
