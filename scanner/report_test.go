package scanner

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexferrari88/spell-scanner/tokenizer"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFinding(t *testing.T) {
	f := Finding{Path: "a.swift", Line: 3, Column: 5, Word: "wrld", Suggestions: []string{"world", "weld"}, Severity: "warning"}
	assert.Equal(t, "a.swift:3:5: warning: 'wrld' may be misspelled, do you mean 'world', 'weld' ?", FormatFinding(f))

	f.Suggestions = nil
	assert.Equal(t, "a.swift:3:5: warning: 'wrld' may be misspelled !", FormatFinding(f))

	f.Severity = "error"
	f.Corrected, f.Correction = true, "world"
	assert.Equal(t, "a.swift:3:5: error: 'wrld' corrected to 'world'", FormatFinding(f))
}

func TestTextReporter(t *testing.T) {
	var buf bytes.Buffer
	root := filepath.Join("/", "project")
	r := NewTextReporter(&buf, false)
	r.Root = root
	r.ReportFile(filepath.Join(root, "src", "a.go"), []Finding{
		{Line: 1, Column: 2, Word: "helo", Suggestions: []string{"hello"}, Severity: "warning"},
		{Line: 2, Column: 1, Word: "wrld", Severity: "warning", Corrected: true, Correction: "world"},
	})
	want := filepath.Join("src", "a.go") + ":1:2: warning: 'helo' may be misspelled, do you mean 'hello' ?\n"
	assert.Equal(t, want, buf.String())
}

func TestTextReporterColor(t *testing.T) {
	var buf bytes.Buffer
	renderer := lipgloss.NewRenderer(&buf)
	renderer.SetColorProfile(termenv.ANSI256)
	r := newTextReporter(&buf, true, renderer)
	r.ReportFile("a.go", []Finding{
		{Line: 1, Column: 2, Word: "helo", Suggestions: []string{"hello"}, Severity: "warning"},
	})

	line := buf.String()
	assert.Contains(t, line, "\x1b[")
	assert.True(t, strings.HasPrefix(line, "a.go:1:2: "), line)
	assert.Contains(t, line, "warning")
	assert.Contains(t, line, "'helo'")
	assert.True(t, strings.HasSuffix(line, " may be misspelled, do you mean 'hello' ?\n"), line)
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONReporter(&buf)
	r.ReportFile("a.go", []Finding{{Path: "a.go", Line: 1, Column: 1, Word: "helo", Severity: "warning"}})
	require.NoError(t, r.Flush(&CheckResult{MisspelledCount: 1, FilesChecked: 1, Elapsed: 2 * time.Second}))

	var got jsonReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 1, got.MisspelledCount)
	assert.Equal(t, 2.0, got.ElapsedSeconds)
	require.Len(t, got.Findings, 1)
	assert.Equal(t, "helo", got.Findings[0].Word)
}

func TestSummary(t *testing.T) {
	result := &CheckResult{MisspelledCount: 2, CorrectedCount: 1, Elapsed: 1500 * time.Millisecond}
	assert.Equal(t, "Done checking! Found 2 misspelled words. Processing took 1.50 seconds.", Summary(result, false))
	assert.Equal(t, "Done checking and correcting! Found 2 misspelled words. Corrected 1 words. Processing took 1.50 seconds.",
		Summary(result, true))
}

func TestLocatorFindsWordsInOrder(t *testing.T) {
	text := newSourceText([]byte("let a = 1\n// helo wrld helo\n"))
	loc := text.locator(Fragment{Content: "helo wrld helo", Position: &Position{Line: 2, Column: 1, Synthesized: true}})

	var got [][2]int
	for _, c := range tokenizer.Tokenize("helo wrld helo") {
		line, col := loc.locate(c)
		got = append(got, [2]int{line, col})
	}
	assert.Equal(t, [][2]int{{2, 4}, {2, 9}, {2, 14}}, got)
}

func TestLocatorMultibyteAndFallbacks(t *testing.T) {
	text := newSourceText([]byte("let é = \"café wrld\"\n"))
	loc := text.locator(Fragment{Content: `"café wrld"`, Position: &Position{Line: 1, Column: 9}})
	line, col := loc.locate(tokenizer.Candidate{Text: "wrld", Raw: "wrld", Offset: 6})
	assert.Equal(t, 1, line)
	assert.Equal(t, 15, col)

	line, col = loc.locate(tokenizer.Candidate{Text: "gone", Raw: "gone", Offset: 3})
	assert.Equal(t, 1, line)
	assert.Equal(t, 12, col)

	none := text.locator(Fragment{Content: "x"})
	line, col = none.locate(tokenizer.Candidate{Text: "x", Raw: "x", Offset: 4})
	assert.Equal(t, 0, line)
	assert.Equal(t, 5, col)
}

func TestPrepareFragment(t *testing.T) {
	_, ok := prepareFragment(Fragment{Content: `"https://example.com/docs"`, Kind: FragmentString}, true)
	assert.False(t, ok)

	text, ok := prepareFragment(Fragment{Content: `"https://example.com/docs"`, Kind: FragmentString}, false)
	assert.True(t, ok)
	assert.Equal(t, `"https://example.com/docs"`, text)

	text, ok = prepareFragment(Fragment{Content: "read https://exampel.com/x first", Kind: FragmentComment}, true)
	assert.True(t, ok)
	assert.NotContains(t, text, "exampel")

	text, _ = prepareFragment(Fragment{Content: `"Hello \(usrName), %d itms and ${cnt} {nme} left"`, Kind: FragmentString}, false)
	assert.NotContains(t, text, "usrName")
	assert.NotContains(t, text, "cnt")
	assert.NotContains(t, text, "nme")
	assert.NotContains(t, text, "%d")
	assert.Contains(t, text, "itms")

	text, _ = prepareFragment(Fragment{Content: "someIdentifier", Kind: FragmentIdentifier}, true)
	assert.Equal(t, "someIdentifier", text)
}

func TestStripPlaceholdersKeepsPercentText(t *testing.T) {
	assert.Equal(t, "100% done", StripPlaceholders("100% done"))
	assert.Equal(t, "a %discount", StripPlaceholders("a %discount"))
	assert.True(t, IsURL("ftp://files.example.org"))
	assert.False(t, IsURL("see https://example.com"))
}
