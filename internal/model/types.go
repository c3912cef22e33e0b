package model

import (
	"fmt"
	"strings"
)

// Severity classifies how serious a finding is. Errors make the scan fail
// (non-zero exit code); warnings are reported but never affect the exit
// status.
type Severity string

const (
	// SeverityWarning marks a finding that should be fixed but does not
	// fail the scan.
	SeverityWarning Severity = "warning"

	// SeverityError marks a finding that fails the scan.
	SeverityError Severity = "error"
)

// String returns the string representation of Severity.
func (s Severity) String() string {
	return string(s)
}

// IsValid checks whether the Severity value is one of the predefined
// severity levels.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityWarning, SeverityError:
		return true
	default:
		return false
	}
}

// ParseSeverity converts a string to a Severity. Unknown or empty values
// default to SeverityWarning — this is the explicit severity default for
// rule records whose definition omits the field. The default is warning,
// not error, so a sloppy rules file can never fail a build on its own.
func ParseSeverity(s string) Severity {
	sev := Severity(strings.ToLower(strings.TrimSpace(s)))
	if !sev.IsValid() {
		return SeverityWarning
	}
	return sev
}

// ConfigKind identifies which family of configuration file a path belongs
// to. Each kind has its own discovery patterns and structural validator.
type ConfigKind string

const (
	// KindDevcontainer covers devcontainer.json manifests at any depth.
	KindDevcontainer ConfigKind = "devcontainer"

	// KindTailwind covers tailwind.config.{js,ts,mjs} files at any depth.
	KindTailwind ConfigKind = "tailwind"

	// KindESLint covers .eslintrc* and eslint.config.* files at the
	// project root only.
	KindESLint ConfigKind = "eslint"
)

// String returns the string representation of ConfigKind.
func (k ConfigKind) String() string {
	return string(k)
}

// IsValid checks whether the ConfigKind value is one of the predefined
// config kinds.
func (k ConfigKind) IsValid() bool {
	switch k {
	case KindDevcontainer, KindTailwind, KindESLint:
		return true
	default:
		return false
	}
}

// ParseConfigKind converts a string to a ConfigKind.
// Returns an error if the string does not match any valid kind.
func ParseConfigKind(s string) (ConfigKind, error) {
	kind := ConfigKind(strings.ToLower(s))
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid config kind: %q (valid: devcontainer, tailwind, eslint)", s)
	}
	return kind, nil
}

// Title returns the human-readable section heading used in scan reports.
func (k ConfigKind) Title() string {
	switch k {
	case KindDevcontainer:
		return "DevContainer Files"
	case KindTailwind:
		return "Tailwind CSS Configs"
	case KindESLint:
		return "ESLint Configs"
	default:
		return string(k)
	}
}

// Rule is one flattened deprecated-pattern definition extracted from the
// framework intelligence file. Rules are produced fresh on every run by
// flattening the loaded JSON tree; they are never persisted or mutated.
type Rule struct {
	// Name is the key of the entry inside its deprecatedPatterns map.
	Name string `json:"name"`

	// Category is the dotted path of the entry's ancestor nodes in the
	// intelligence tree (e.g. "rust.rustAnalyzer").
	Category string `json:"category"`

	// Pattern is the literal substring to search for in file contents.
	// Rules with an empty pattern are never matched.
	Pattern string `json:"pattern"`

	// Severity classifies a match. Defaults to SeverityWarning when the
	// rules file omits or misspells the field.
	Severity Severity `json:"severity"`

	// Replacement is the suggested modern alternative shown to the user.
	Replacement string `json:"replacement,omitempty"`

	// Reason explains why the pattern is deprecated.
	Reason string `json:"reason,omitempty"`
}

// Finding is a single validation result for a file: one structural
// violation, one deprecated-pattern match, or one read/parse failure.
// Severity is always set explicitly by the producer — it is never inferred
// from message text at the aggregation boundary.
type Finding struct {
	// Severity classifies the finding.
	Severity Severity `json:"severity"`

	// Message is the human-readable description of the problem.
	Message string `json:"message"`

	// Rule is the name of the deprecated-pattern rule that produced this
	// finding. Empty for structural findings.
	Rule string `json:"rule,omitempty"`

	// Matched is the matched text excerpt (truncated), for pattern findings.
	Matched string `json:"matched,omitempty"`

	// Replacement is the suggested fix, when one is known.
	Replacement string `json:"replacement,omitempty"`

	// Reason explains why the matched pattern is deprecated.
	Reason string `json:"reason,omitempty"`
}

// ErrorFinding builds an error-severity structural finding.
func ErrorFinding(format string, args ...interface{}) Finding {
	return Finding{Severity: SeverityError, Message: fmt.Sprintf(format, args...)}
}

// WarningFinding builds a warning-severity structural finding.
func WarningFinding(format string, args ...interface{}) Finding {
	return Finding{Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)}
}

// FileResult holds the ordered findings for one scanned configuration file.
type FileResult struct {
	// Path is the file path, relative to the scanned project root when
	// possible.
	Path string `json:"path"`

	// Kind is the configuration family the file was discovered under.
	Kind ConfigKind `json:"kind"`

	// Findings lists the problems detected in this file, in the order the
	// validators produced them. Empty means the file is valid.
	Findings []Finding `json:"findings,omitempty"`
}

// Valid reports whether the file produced no findings at all.
func (r *FileResult) Valid() bool {
	return len(r.Findings) == 0
}

// Summary aggregates scan outcomes across all files. It is built by the
// driver via Record and read once at the end to pick the exit code —
// there is no global mutable counter state anywhere in the tool.
type Summary struct {
	// Validated counts files that produced zero findings.
	Validated int `json:"validated"`

	// Warnings counts warning-severity findings across all files.
	Warnings int `json:"warnings"`

	// Errors counts error-severity findings across all files.
	Errors int `json:"errors"`
}

// Record folds one file result into the summary. A clean file increments
// Validated; otherwise each finding bumps its severity counter. Findings
// carrying an unknown severity count as errors, preserving the
// conservative default of the aggregation boundary.
func (s *Summary) Record(result FileResult) {
	if result.Valid() {
		s.Validated++
		return
	}
	for _, f := range result.Findings {
		if f.Severity == SeverityWarning {
			s.Warnings++
		} else {
			s.Errors++
		}
	}
}

// Clean reports whether the scan found zero error-severity findings.
// Warnings do not affect this.
func (s *Summary) Clean() bool {
	return s.Errors == 0
}

// ExitCode defines the CLI exit codes. These allow scripts and CI systems
// to programmatically determine the outcome of a scan.
type ExitCode int

const (
	// ExitSuccess indicates the scan completed with zero errors.
	ExitSuccess ExitCode = 0

	// ExitValidationFailed indicates the scan completed but found at least
	// one error-severity finding. Warnings alone never produce this code.
	ExitValidationFailed ExitCode = 1

	// ExitGeneralError indicates an operational failure (e.g. the project
	// root could not be read at all). Scan findings never produce this.
	ExitGeneralError ExitCode = 2
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate failures into appropriate
// process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
