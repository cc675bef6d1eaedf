// scanner/report.go
package scanner

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Reporter receives the findings of each checked file, in file order.
type Reporter interface {
	ReportFile(path string, findings []Finding)
}

type discardReporter struct{}

func (discardReporter) ReportFile(string, []Finding) {}

// FormatFinding renders a finding as a compiler-style diagnostic line.
func FormatFinding(f Finding) string {
	return formatFinding(f, f.Path, func(s string) string { return s }, func(s string) string { return s })
}

func formatFinding(f Finding, path string, severity, word func(string) string) string {
	location := fmt.Sprintf("%s:%d:%d: %s: ", path, f.Line, f.Column, severity(f.Severity))
	quoted := word("'" + f.Word + "'")
	if f.Corrected {
		return location + fmt.Sprintf("%s corrected to '%s'", quoted, f.Correction)
	}
	if len(f.Suggestions) == 0 {
		return location + quoted + " may be misspelled !"
	}
	return location + fmt.Sprintf("%s may be misspelled, do you mean '%s' ?", quoted, strings.Join(f.Suggestions, "', '"))
}

// TextReporter writes one line per finding. Corrections are only listed when
// ShowCorrections is set.
type TextReporter struct {
	w     io.Writer
	color bool
	// Root, when set, makes printed paths relative to it.
	Root            string
	ShowCorrections bool

	severityStyle lipgloss.Style
	wordStyle     lipgloss.Style
	mu            sync.Mutex
}

// NewTextReporter creates a TextReporter writing to w, colored when color is true.
func NewTextReporter(w io.Writer, color bool) *TextReporter {
	return newTextReporter(w, color, lipgloss.NewRenderer(w))
}

func newTextReporter(w io.Writer, color bool, r *lipgloss.Renderer) *TextReporter {
	return &TextReporter{
		w:             w,
		color:         color,
		severityStyle: r.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		wordStyle:     r.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

func (t *TextReporter) displayPath(path string) string {
	if t.Root == "" {
		return path
	}
	if rel, err := filepath.Rel(t.Root, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}

// ReportFile implements Reporter.
func (t *TextReporter) ReportFile(path string, findings []Finding) {
	t.mu.Lock()
	defer t.mu.Unlock()
	plain := func(s string) string { return s }
	severity, word := plain, plain
	if t.color {
		severity = func(s string) string { return t.severityStyle.Render(s) }
		word = func(s string) string { return t.wordStyle.Render(s) }
	}
	display := t.displayPath(path)
	for _, f := range findings {
		if f.Corrected && !t.ShowCorrections {
			continue
		}
		fmt.Fprintln(t.w, formatFinding(f, display, severity, word))
	}
}

// JSONReporter buffers findings and writes them as one JSON document on Flush.
type JSONReporter struct {
	w        io.Writer
	Root     string
	mu       sync.Mutex
	findings []Finding
}

// NewJSONReporter creates a JSONReporter writing to w.
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w, findings: []Finding{}}
}

// ReportFile implements Reporter.
func (j *JSONReporter) ReportFile(path string, findings []Finding) {
	j.mu.Lock()
	defer j.mu.Unlock()
	for _, f := range findings {
		if j.Root != "" {
			if rel, err := filepath.Rel(j.Root, f.Path); err == nil {
				f.Path = rel
			}
		}
		j.findings = append(j.findings, f)
	}
}

type jsonReport struct {
	Findings        []Finding `json:"findings"`
	MisspelledCount int       `json:"misspelled"`
	CorrectedCount  int       `json:"corrected"`
	FilesChecked    int       `json:"filesChecked"`
	FilesFailed     int       `json:"filesFailed"`
	ElapsedSeconds  float64   `json:"elapsedSeconds"`
}

// Flush writes the collected findings together with the totals of result.
func (j *JSONReporter) Flush(result *CheckResult) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	report := jsonReport{Findings: j.findings}
	if result != nil {
		report.MisspelledCount = result.MisspelledCount
		report.CorrectedCount = result.CorrectedCount
		report.FilesChecked = result.FilesChecked
		report.FilesFailed = result.FilesFailed
		report.ElapsedSeconds = result.Elapsed.Seconds()
	}
	encoder := json.NewEncoder(j.w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("error marshalling JSON: %w", err)
	}
	return nil
}

// Summary is the closing line of a run.
func Summary(result *CheckResult, fix bool) string {
	if fix {
		return fmt.Sprintf("Done checking and correcting! Found %d misspelled words. Corrected %d words. Processing took %.2f seconds.",
			result.MisspelledCount, result.CorrectedCount, result.Elapsed.Seconds())
	}
	return fmt.Sprintf("Done checking! Found %d misspelled words. Processing took %.2f seconds.",
		result.MisspelledCount, result.Elapsed.Seconds())
}
