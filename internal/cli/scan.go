package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/itsflippen-dev/framework-intelligence/internal/discover"
	"github.com/itsflippen-dev/framework-intelligence/internal/intelligence"
	"github.com/itsflippen-dev/framework-intelligence/internal/model"
	"github.com/itsflippen-dev/framework-intelligence/internal/report"
	"github.com/itsflippen-dev/framework-intelligence/internal/validator"
)

// scanOptions holds the flag values for a scan invocation.
type scanOptions struct {
	// path is the project root to scan.
	path string

	// rulesPath overrides the default rules file location
	// (<root>/.framework-intelligence.json).
	rulesPath string
}

// NewScanCommand creates the explicit "scan" subcommand. It is identical to
// running the bare root command; having it named keeps room for future
// subcommands without changing the default behavior.
func NewScanCommand() *cobra.Command {
	opts := &scanOptions{}

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan the project tree and validate configuration files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScanCommand(cmd, opts)
		},
	}

	addScanFlags(cmd, opts)
	return cmd
}

// addScanFlags registers the scan flags on a command. Shared between the
// root command (default action) and the scan subcommand.
func addScanFlags(cmd *cobra.Command, opts *scanOptions) {
	cmd.Flags().StringVar(&opts.path, "path", ".", "Project root to scan")
	cmd.Flags().StringVar(&opts.rulesPath, "rules", "", "Path to the framework intelligence file (default <root>/"+intelligence.DefaultFileName+")")
}

// runScanCommand executes the scan, renders the report, and maps the
// summary to the process exit code.
func runScanCommand(cmd *cobra.Command, opts *scanOptions) error {
	scanReport, err := runScan(opts)
	if err != nil {
		return err
	}

	if jsonOutput {
		data, err := json.MarshalIndent(scanReport, "", "  ")
		if err != nil {
			return model.WrapCLIError(model.ExitGeneralError, "could not encode report", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	} else {
		fmt.Fprint(cmd.OutOrStdout(), report.Render(scanReport))
	}

	return exitFor(scanReport.Summary)
}

// exitFor converts a scan summary into the command result: nil for a clean
// scan, a validation-failed CLIError otherwise. Warnings never fail the
// scan.
func exitFor(summary model.Summary) error {
	if summary.Clean() {
		return nil
	}
	return model.NewCLIError(model.ExitValidationFailed,
		fmt.Sprintf("%d error(s) found", summary.Errors))
}

// runScan is the scan driver: load rules, discover config files, validate
// each file structurally and against the deprecated-pattern rules, and
// aggregate the summary. It performs no output — rendering happens at the
// command boundary.
func runScan(opts *scanOptions) (*model.Report, error) {
	files, err := discover.FindConfigFiles(opts.path)
	if err != nil {
		return nil, err
	}

	rulesPath := opts.rulesPath
	if rulesPath == "" {
		rulesPath = filepath.Join(files.Root, intelligence.DefaultFileName)
	}

	intel := intelligence.Load(rulesPath)
	rules := intel.Rules()
	verboseLog("loaded %d deprecated-pattern rules (version %s)", len(rules), intel.Version)

	scanReport := &model.Report{
		Root:         files.Root,
		RulesVersion: intel.Version,
		RuleCount:    len(rules),
		LoadWarning:  intel.LoadWarning,
		ScanWarnings: files.Warnings,
	}

	for _, kind := range discover.Kinds() {
		paths := files.ByKind[kind]
		if len(paths) == 0 {
			continue
		}

		section := model.Section{Kind: kind}
		for _, rel := range paths {
			result := validateFile(files.Root, rel, kind, rules)
			scanReport.Summary.Record(result)
			section.Results = append(section.Results, result)
		}
		scanReport.Sections = append(scanReport.Sections, section)
	}

	return scanReport, nil
}

// validateFile runs the structural validator for the file's kind plus the
// deprecated-pattern matcher over the raw text. A read failure or a
// devcontainer parse failure yields the single recorded finding and skips
// everything else for that file.
func validateFile(root, rel string, kind model.ConfigKind, rules []model.Rule) model.FileResult {
	result := model.FileResult{Path: rel, Kind: kind}

	content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		result.Findings = []model.Finding{model.ErrorFinding("Error reading file: %v", err)}
		return result
	}

	switch kind {
	case model.KindDevcontainer:
		findings, parsed := validator.Devcontainer(content)
		result.Findings = findings
		if !parsed {
			return result
		}
	case model.KindTailwind:
		result.Findings = validator.Tailwind(content)
	case model.KindESLint:
		result.Findings = validator.ESLint(rel, content)
	}

	result.Findings = append(result.Findings, intelligence.Match(string(content), rules)...)
	return result
}
