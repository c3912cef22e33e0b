// Package report renders scan reports for the terminal.
//
// The human-readable renderer uses lipgloss for color: per-kind section
// headers, per-file finding lists with severity tags, and a closing
// summary block. lipgloss degrades to plain text automatically when
// stdout is not a TTY, so the same code path serves CI logs.
//
// All presentation decisions live here — findings arrive as structured
// values and severity is never inferred from message text.
package report
