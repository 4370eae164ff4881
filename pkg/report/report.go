// Package report renders tool results as text, JSON, CSV, or Markdown and
// writes them to stdout or to a file selected with --file.
package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Format selects the output rendering for a report.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates an --output flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatMarkdown:
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json, csv, or markdown)", s)
	}
}

// Severity label styles, used by the text renderers.
var (
	styleCritical = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	styleHigh     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleMedium   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleLow      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleHeading  = lipgloss.NewStyle().Bold(true).Underline(true)
)

// SeverityLabel renders a 1-10 severity as a colored label for text reports.
func SeverityLabel(severity int) string {
	switch {
	case severity >= 9:
		return styleCritical.Render("CRITICAL")
	case severity >= 7:
		return styleHigh.Render("HIGH")
	case severity >= 4:
		return styleMedium.Render("MEDIUM")
	default:
		return styleLow.Render("LOW")
	}
}

// Heading renders a section heading for text reports.
func Heading(s string) string {
	return styleHeading.Render(s)
}

// MarshalJSON pretty-prints v for a JSON report.
func MarshalJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

// RenderCSV renders a header row plus records as CSV.
func RenderCSV(header []string, records [][]string) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return "", err
	}
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderMarkdownTable renders a header row plus records as a Markdown table.
func RenderMarkdownTable(header []string, records [][]string) string {
	var sb strings.Builder
	sb.WriteString("| " + strings.Join(header, " | ") + " |\n")
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	sb.WriteString("| " + strings.Join(sep, " | ") + " |\n")
	for _, rec := range records {
		escaped := make([]string, len(rec))
		for i, cell := range rec {
			escaped[i] = strings.ReplaceAll(cell, "|", "\\|")
		}
		sb.WriteString("| " + strings.Join(escaped, " | ") + " |\n")
	}
	return sb.String()
}

// Emit writes the rendered report to stdout, or atomically to path when it is
// non-empty. Atomic here means temp file plus rename in the target directory,
// so readers never observe a partially written report.
func Emit(content, path string) error {
	if path == "" {
		_, err := fmt.Print(content)
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".report-*")
	if err != nil {
		return IOError(err)
	}
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return IOError(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return IOError(err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return IOError(err)
	}
	return nil
}
