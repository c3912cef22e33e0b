package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/itsflippen-dev/framework-intelligence/internal/model"
)

var (
	accent  = lipgloss.Color("#60A5FA") // blue
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber
	cyan    = lipgloss.Color("#22D3EE")
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(cyan)
	fileStyle     = lipgloss.NewStyle().Foreground(accent)
	validStyle    = lipgloss.NewStyle().Foreground(success)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	labelStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)

	bannerRule  = strings.Repeat("=", 60)
	sectionRule = strings.Repeat("-", 40)
)

// Render formats a complete scan report for terminal output.
func Render(r *model.Report) string {
	var b strings.Builder

	// Banner.
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(bannerRule) + "\n")
	b.WriteString(headerStyle.Render("  Framework Intelligence Configuration Validator") + "\n")
	b.WriteString(headerStyle.Render(bannerRule) + "\n\n")

	// Rules load status.
	if r.LoadWarning != "" {
		b.WriteString(warnTagStyle.Render("Warning: ") + dimStyle.Render(r.LoadWarning) + "\n")
	} else {
		b.WriteString(validStyle.Render(fmt.Sprintf("Loaded framework intelligence v%s (%d rules)", r.RulesVersion, r.RuleCount)) + "\n")
	}

	b.WriteString("\n" + sectionStyle.Render("Scanning: "+r.Root) + "\n")

	for _, w := range r.ScanWarnings {
		b.WriteString(warnTagStyle.Render("Warning: ") + dimStyle.Render(w) + "\n")
	}

	// Per-kind sections.
	for _, section := range r.Sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(fmt.Sprintf("%s (%d)", section.Kind.Title(), len(section.Results))) + "\n")
		b.WriteString(faintStyle.Render(sectionRule) + "\n")

		for _, result := range section.Results {
			renderFile(&b, result)
		}
	}

	// Summary block.
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(bannerRule) + "\n")
	b.WriteString(headerStyle.Render("  Validation Summary") + "\n")
	b.WriteString(headerStyle.Render(bannerRule) + "\n")
	b.WriteString(fmt.Sprintf("  %s %d\n", validStyle.Render("Valid:"), r.Summary.Validated))
	b.WriteString(fmt.Sprintf("  %s %d\n", warnTagStyle.Render("Warnings:"), r.Summary.Warnings))
	b.WriteString(fmt.Sprintf("  %s %d\n", errorTagStyle.Render("Errors:"), r.Summary.Errors))
	b.WriteString("\n")

	if r.Summary.Clean() {
		b.WriteString(validStyle.Render("All configurations are valid!") + "\n")
	} else {
		b.WriteString(errorTagStyle.Render(fmt.Sprintf("%d error(s) found. Please fix before committing.", r.Summary.Errors)) + "\n")
	}

	return b.String()
}

// renderFile writes one file's result block: the path line, then either a
// green "Valid" or the finding list.
func renderFile(b *strings.Builder, result model.FileResult) {
	b.WriteString("\n" + fileStyle.Render(result.Path) + "\n")

	if result.Valid() {
		b.WriteString("  " + validStyle.Render("Valid") + "\n")
		return
	}

	for _, f := range result.Findings {
		renderFinding(b, f)
	}
}

// renderFinding writes one finding with its severity tag and any rule
// metadata (matched excerpt, replacement, reason) indented beneath it.
func renderFinding(b *strings.Builder, f model.Finding) {
	fmt.Fprintf(b, "  %s %s\n", severityTag(f.Severity), f.Message)

	if f.Reason != "" {
		fmt.Fprintf(b, "      %s %s\n", labelStyle.Render("Reason:"), dimStyle.Render(f.Reason))
	}
	if f.Matched != "" {
		fmt.Fprintf(b, "      %s %s\n", labelStyle.Render("Found:"), dimStyle.Render(f.Matched))
	}
	if f.Replacement != "" {
		fmt.Fprintf(b, "      %s %s\n", labelStyle.Render("Replace with:"), dimStyle.Render(f.Replacement))
	}
}

// severityTag renders the colored severity marker for a finding. Unknown
// severities render as errors, matching the aggregation default.
func severityTag(s model.Severity) string {
	if s == model.SeverityWarning {
		return warnTagStyle.Render("[WARNING]")
	}
	return errorTagStyle.Render("[ERROR]")
}
