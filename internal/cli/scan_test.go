package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/itsflippen-dev/framework-intelligence/internal/intelligence"
	"github.com/itsflippen-dev/framework-intelligence/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files (with parent dirs) under a fresh temp root.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

const sampleRules = `{
	"version": "2.1.0",
	"intelligence": {
		"rust": {
			"rustAnalyzer": {
				"deprecatedPatterns": {
					"checkOnSave-bool": {
						"pattern": "\"rust-analyzer.checkOnSave\": true",
						"severity": "error",
						"replacement": "\"rust-analyzer.checkOnSave\": { \"enable\": true }",
						"reason": "Boolean syntax deprecated"
					}
				}
			}
		},
		"css": {
			"deprecatedPatterns": {
				"darkMode-media": {
					"pattern": "darkMode: 'media'"
				}
			}
		}
	}
}`

func TestRunScan_CleanProject(t *testing.T) {
	root := writeTree(t, map[string]string{
		intelligence.DefaultFileName:        sampleRules,
		".devcontainer/devcontainer.json":   `{"name": "x", "image": "ubuntu:22.04"}`,
		"web/tailwind.config.js":            `export default { content: ['./src/**/*.ts'] }`,
		"eslint.config.mjs":                 `export default [];`,
	})

	rep, err := runScan(&scanOptions{path: root})
	require.NoError(t, err)

	assert.Equal(t, "2.1.0", rep.RulesVersion)
	assert.Equal(t, 2, rep.RuleCount)
	assert.Empty(t, rep.LoadWarning)
	assert.Equal(t, model.Summary{Validated: 3}, rep.Summary)
	assert.NoError(t, exitFor(rep.Summary))
}

func TestRunScan_FindingsAndCounters(t *testing.T) {
	root := writeTree(t, map[string]string{
		intelligence.DefaultFileName: sampleRules,
		// Two errors: missing name, invalid image format.
		".devcontainer/devcontainer.json": `{"image": "notanimage"}`,
		// One error: deprecated purge option.
		"tailwind.config.js": `module.exports = { purge: ['./src'] }`,
		// One warning: legacy filename.
		".eslintrc.json": `{"rules": {}}`,
	})

	rep, err := runScan(&scanOptions{path: root})
	require.NoError(t, err)

	assert.Equal(t, 0, rep.Summary.Validated)
	assert.Equal(t, 1, rep.Summary.Warnings)
	assert.Equal(t, 3, rep.Summary.Errors)

	failure := exitFor(rep.Summary)
	require.Error(t, failure)
	cliErr, ok := failure.(*model.CLIError)
	require.True(t, ok)
	assert.Equal(t, model.ExitValidationFailed, cliErr.Code)
}

func TestRunScan_WarningsAloneDoNotFail(t *testing.T) {
	root := writeTree(t, map[string]string{
		intelligence.DefaultFileName: sampleRules,
		".eslintrc.json":             `{"rules": {}}`,
	})

	rep, err := runScan(&scanOptions{path: root})
	require.NoError(t, err)

	assert.Equal(t, 1, rep.Summary.Warnings)
	assert.Equal(t, 0, rep.Summary.Errors)
	assert.NoError(t, exitFor(rep.Summary), "a warning-only scan must exit 0")
}

func TestRunScan_DeprecatedPatternMatched(t *testing.T) {
	root := writeTree(t, map[string]string{
		intelligence.DefaultFileName: sampleRules,
		".devcontainer/devcontainer.json": `{
			"name": "x",
			"image": "ubuntu:22.04",
			"customizations": {
				"vscode": { "settings": { "rust-analyzer.checkOnSave": true } }
			}
		}`,
	})

	rep, err := runScan(&scanOptions{path: root})
	require.NoError(t, err)

	require.Len(t, rep.Sections, 1)
	require.Len(t, rep.Sections[0].Results, 1)
	findings := rep.Sections[0].Results[0].Findings

	// Structural checkOnSave error plus the rule match on the raw text.
	require.Len(t, findings, 2)
	assert.Contains(t, findings[0].Message, "checkOnSave as boolean")
	assert.Equal(t, "checkOnSave-bool", findings[1].Rule)
	assert.Equal(t, 2, rep.Summary.Errors)
}

func TestRunScan_RulesMatchTailwindFilesToo(t *testing.T) {
	root := writeTree(t, map[string]string{
		intelligence.DefaultFileName: sampleRules,
		"tailwind.config.js":         `export default { content: [], darkMode: 'media' }`,
	})

	rep, err := runScan(&scanOptions{path: root})
	require.NoError(t, err)

	require.Len(t, rep.Sections, 1)
	findings := rep.Sections[0].Results[0].Findings
	require.Len(t, findings, 1)
	assert.Equal(t, "darkMode-media", findings[0].Rule)
	assert.Equal(t, model.SeverityWarning, findings[0].Severity)
}

func TestRunScan_MissingRulesFileStillValidates(t *testing.T) {
	root := writeTree(t, map[string]string{
		".devcontainer/devcontainer.json": `{"image": "notanimage"}`,
	})

	rep, err := runScan(&scanOptions{path: root})
	require.NoError(t, err)

	assert.NotEmpty(t, rep.LoadWarning)
	assert.Equal(t, 0, rep.RuleCount)
	// Structural validation ran regardless of the missing rules file.
	assert.Equal(t, 2, rep.Summary.Errors)
}

func TestRunScan_MalformedDevcontainerSkipsRuleMatching(t *testing.T) {
	// The broken file even contains a rule pattern; it must not be
	// reported because parse failure short-circuits the file.
	root := writeTree(t, map[string]string{
		intelligence.DefaultFileName:      sampleRules,
		".devcontainer/devcontainer.json": `{"rust-analyzer.checkOnSave": true`,
	})

	rep, err := runScan(&scanOptions{path: root})
	require.NoError(t, err)

	findings := rep.Sections[0].Results[0].Findings
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, "Invalid JSON")
	assert.Equal(t, 1, rep.Summary.Errors)
}

func TestRunScan_Idempotent(t *testing.T) {
	root := writeTree(t, map[string]string{
		intelligence.DefaultFileName:      sampleRules,
		".devcontainer/devcontainer.json": `{"image": "notanimage"}`,
		"tailwind.config.js":              `module.exports = { purge: [], theme: {} }`,
		".eslintrc.yml":                   "rules: {}\n",
	})

	first, err := runScan(&scanOptions{path: root})
	require.NoError(t, err)
	second, err := runScan(&scanOptions{path: root})
	require.NoError(t, err)

	assert.Equal(t, first.Summary, second.Summary, "unchanged tree must yield identical counters")
	assert.Equal(t, first.Sections, second.Sections)
}

func TestRunScan_ExplicitRulesPath(t *testing.T) {
	rulesDir := t.TempDir()
	rulesPath := filepath.Join(rulesDir, "custom-rules.json")
	require.NoError(t, os.WriteFile(rulesPath, []byte(sampleRules), 0o644))

	root := writeTree(t, map[string]string{
		".devcontainer/devcontainer.json": `{"name": "x", "image": "ubuntu:22.04"}`,
	})

	rep, err := runScan(&scanOptions{path: root, rulesPath: rulesPath})
	require.NoError(t, err)
	assert.Equal(t, 2, rep.RuleCount)
	assert.Empty(t, rep.LoadWarning)
}

func TestRunScan_MissingRootIsOperationalError(t *testing.T) {
	_, err := runScan(&scanOptions{path: filepath.Join(t.TempDir(), "nope")})
	require.Error(t, err)

	cliErr, ok := err.(*model.CLIError)
	require.True(t, ok)
	assert.Equal(t, model.ExitGeneralError, cliErr.Code)
}

func TestScanCommand_JSONOutput(t *testing.T) {
	root := writeTree(t, map[string]string{
		intelligence.DefaultFileName: sampleRules,
		".eslintrc.json":             `{"rules": {}}`,
	})

	jsonOutput = true
	defer func() { jsonOutput = false }()

	cmd := NewScanCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--path", root})

	// Warning-only scan: the command itself succeeds.
	require.NoError(t, cmd.Execute())

	var rep model.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &rep))
	assert.Equal(t, "2.1.0", rep.RulesVersion)
	assert.Equal(t, 1, rep.Summary.Warnings)
}

func TestScanCommand_HumanOutput(t *testing.T) {
	root := writeTree(t, map[string]string{
		intelligence.DefaultFileName:      sampleRules,
		".devcontainer/devcontainer.json": `{"name": "x", "image": "ubuntu:22.04"}`,
	})

	cmd := NewScanCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--path", root})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Validation Summary")
	assert.Contains(t, out.String(), "All configurations are valid!")
}

func TestRootCommand_RunsScanByDefault(t *testing.T) {
	root := writeTree(t, map[string]string{
		intelligence.DefaultFileName:      sampleRules,
		".devcontainer/devcontainer.json": `{"name": "x", "image": "ubuntu:22.04"}`,
	})

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--path", root})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Validation Summary")
}
