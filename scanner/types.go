// scanner/types.go
package scanner

import (
	"errors"
	"fmt"
	"time"
)

// ErrPathNotFound is returned when the checked path does not exist.
var ErrPathNotFound = errors.New("the given path does not exist")

// FragmentKind tells the tokenizer how a fragment was produced.
type FragmentKind int

const (
	// FragmentIdentifier is a name: variable, function, parameter, type, label...
	FragmentIdentifier FragmentKind = iota
	// FragmentString is a string literal, quotes included.
	FragmentString
	// FragmentComment is the body of a comment line.
	FragmentComment
	// FragmentConfigValue is a scalar value read from a YAML/JSON/TOML/.env file.
	FragmentConfigValue
)

func (k FragmentKind) String() string {
	switch k {
	case FragmentIdentifier:
		return "identifier"
	case FragmentString:
		return "string"
	case FragmentComment:
		return "comment"
	case FragmentConfigValue:
		return "config"
	default:
		return "unknown"
	}
}

// Position is a 1-based line and rune column in the source file.
type Position struct {
	Line   int
	Column int
	// Synthesized is set when only the line is known and Column is a placeholder.
	Synthesized bool
}

// Fragment is a span of extracted text checked as a unit.
type Fragment struct {
	Content  string
	Position *Position
	Kind     FragmentKind
	// Node is the syntax node type the fragment came from, e.g. "class_declaration".
	Node string
}

// Finding is one reported or corrected misspelling.
type Finding struct {
	Path        string   `json:"path"`
	Line        int      `json:"line"`
	Column      int      `json:"column"`
	Word        string   `json:"word"`
	Suggestions []string `json:"suggestions,omitempty"`
	Kind        string   `json:"kind"`
	Severity    string   `json:"severity"`
	Corrected   bool     `json:"corrected,omitempty"`
	Correction  string   `json:"correction,omitempty"`
}

// CheckResult accumulates the outcome of one check run.
type CheckResult struct {
	MisspelledCount    int           `json:"misspelled"`
	CorrectedCount     int           `json:"corrected"`
	AllMisspelledWords []string      `json:"misspelledWords"`
	Findings           []Finding     `json:"findings"`
	FilesChecked       int           `json:"filesChecked"`
	FilesFailed        int           `json:"filesFailed"`
	Elapsed            time.Duration `json:"elapsed"`
}

// Options holds the per-run switches of a Session.
type Options struct {
	Fix          bool
	OnlyModified bool
	// Workers bounds the number of files checked in parallel; 0 means runtime.NumCPU().
	Workers      int
	UseGitignore bool
	ScanConfigs  bool
	// Severity is printed in every report line, "warning" unless set.
	Severity string
}

// FileError is a per-file failure. It is logged and counted, never fatal.
type FileError struct {
	Path string
	Op   string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }
