package validator

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/distribution/reference"
	"github.com/tidwall/jsonc"

	"github.com/itsflippen-dev/framework-intelligence/internal/model"
)

// requiredDevcontainerFields must be present in every devcontainer.json.
var requiredDevcontainerFields = []string{"name", "image"}

// checkOnSaveSetting is the VS Code setting whose boolean form is deprecated.
const checkOnSaveSetting = "rust-analyzer.checkOnSave"

// Devcontainer validates the structure of a devcontainer.json document.
//
// The content is parsed as JSONC. A parse failure produces a single error
// finding and reports parsed=false so the caller skips all further checks
// for the file — there is no point matching deprecated patterns against a
// document that did not parse.
//
// Checks performed:
//   - required fields "name" and "image" are present
//   - "name" and "image" are non-empty strings
//   - "image" looks like a Docker image reference (contains ':' or '/'),
//     and additionally parses as a normalized reference
//   - "customizations" (and its vscode/settings children) are objects
//   - the vscode setting "rust-analyzer.checkOnSave" is not a boolean
//   - "dockerComposeFile" is not combined with "image"/"build", and is
//     accompanied by a "service" field
//   - "build.dockerfile" and "build.context" paths are relative
func Devcontainer(content []byte) (findings []model.Finding, parsed bool) {
	var config map[string]interface{}
	if err := json.Unmarshal(jsonc.ToJSON(content), &config); err != nil {
		return []model.Finding{model.ErrorFinding("Invalid JSON: %v", err)}, false
	}

	for _, field := range requiredDevcontainerFields {
		if _, ok := config[field]; !ok {
			findings = append(findings, model.ErrorFinding("Missing required field: '%s'", field))
		}
	}

	if name, ok := config["name"]; ok {
		if s, isString := name.(string); !isString || strings.TrimSpace(s) == "" {
			findings = append(findings, model.ErrorFinding("Field 'name' must be a non-empty string"))
		}
	}

	if image, ok := config["image"]; ok {
		findings = append(findings, checkImage(image)...)
	}

	if customizations, ok := config["customizations"]; ok {
		findings = append(findings, checkCustomizations(customizations)...)
	}

	findings = append(findings, checkPatternConsistency(config)...)

	return findings, true
}

// checkImage validates the "image" field value.
func checkImage(image interface{}) []model.Finding {
	s, isString := image.(string)
	if !isString || strings.TrimSpace(s) == "" {
		return []model.Finding{model.ErrorFinding("Field 'image' must be a non-empty string")}
	}

	// A bare word like "notanimage" is almost certainly a mistake: every
	// real image reference carries a tag separator or a registry/namespace
	// path component.
	if !strings.Contains(s, ":") && !strings.Contains(s, "/") {
		return []model.Finding{model.ErrorFinding("Field 'image' appears to be invalid Docker image format: %s", s)}
	}

	// The shape looks plausible; verify it actually parses as a Docker
	// image reference. Shape problems the quick check misses (uppercase
	// repository names, bad tag characters) surface here as warnings.
	if _, err := reference.ParseNormalizedNamed(s); err != nil {
		return []model.Finding{model.WarningFinding("Field 'image' is not a valid Docker image reference: %s (%v)", s, err)}
	}

	return nil
}

// checkCustomizations validates the customizations subtree, descending into
// vscode settings when present. Each level must be a JSON object; a wrong
// shape stops descent at that level.
func checkCustomizations(customizations interface{}) []model.Finding {
	custMap, ok := customizations.(map[string]interface{})
	if !ok {
		return []model.Finding{model.ErrorFinding("Field 'customizations' must be an object")}
	}

	vscode, ok := custMap["vscode"]
	if !ok {
		return nil
	}
	vscodeMap, ok := vscode.(map[string]interface{})
	if !ok {
		return []model.Finding{model.ErrorFinding("Field 'customizations.vscode' must be an object")}
	}

	settings, ok := vscodeMap["settings"]
	if !ok {
		return nil
	}
	settingsMap, ok := settings.(map[string]interface{})
	if !ok {
		return []model.Finding{model.ErrorFinding("Field 'customizations.vscode.settings' must be an object")}
	}

	return checkVSCodeSettings(settingsMap)
}

// checkVSCodeSettings flags deprecated VS Code settings values.
func checkVSCodeSettings(settings map[string]interface{}) []model.Finding {
	value, ok := settings[checkOnSaveSetting]
	if !ok {
		return nil
	}

	// The boolean form was replaced by an object with enable/command keys.
	if b, isBool := value.(bool); isBool {
		return []model.Finding{{
			Severity:    model.SeverityError,
			Message:     "Deprecated: rust-analyzer.checkOnSave as boolean",
			Matched:     boolJSON(b),
			Replacement: `"rust-analyzer.checkOnSave": { "enable": true, "command": "clippy" }`,
			Reason:      "Boolean syntax deprecated since 2023-06-01",
		}}
	}

	return nil
}

// boolJSON renders the offending setting line as it appears in the file.
func boolJSON(b bool) string {
	if b {
		return `"rust-analyzer.checkOnSave": true`
	}
	return `"rust-analyzer.checkOnSave": false`
}

// checkPatternConsistency applies the devcontainer-spec conformance checks
// across the image/build/dockerComposeFile fields: the three configuration
// patterns are mutually exclusive, Compose configs need a service, and
// build paths must be relative to the .devcontainer directory.
func checkPatternConsistency(config map[string]interface{}) []model.Finding {
	var findings []model.Finding

	_, hasImage := config["image"]
	_, hasCompose := config["dockerComposeFile"]
	build, hasBuild := config["build"]

	if hasCompose {
		if hasImage || hasBuild {
			findings = append(findings, model.WarningFinding(
				"Field 'dockerComposeFile' should not be combined with 'image' or 'build'"))
		}
		if service, ok := config["service"].(string); !ok || service == "" {
			findings = append(findings, model.WarningFinding(
				"Field 'service' is required when 'dockerComposeFile' is specified"))
		}
	}

	if buildMap, ok := build.(map[string]interface{}); ok {
		if dockerfile, ok := buildMap["dockerfile"].(string); ok && filepath.IsAbs(dockerfile) {
			findings = append(findings, model.WarningFinding(
				"Field 'build.dockerfile' should be a path relative to the .devcontainer directory"))
		}
		if context, ok := buildMap["context"].(string); ok && filepath.IsAbs(context) {
			findings = append(findings, model.WarningFinding(
				"Field 'build.context' should be a path relative to the .devcontainer directory"))
		}
	}

	return findings
}
