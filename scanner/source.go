// scanner/source.go
package scanner

import (
	"bytes"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/alexferrari88/spell-scanner/tokenizer"
	"github.com/alexferrari88/spell-scanner/utils"
)

// sourceText indexes line starts so byte offsets, lines and rune columns convert cheaply.
type sourceText struct {
	src    []byte
	starts []int
}

func newSourceText(src []byte) *sourceText {
	starts := []int{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &sourceText{src: src, starts: starts}
}

func (s *sourceText) lineCount() int { return len(s.starts) }

// position converts a byte offset to a 1-based line and rune column.
func (s *sourceText) position(offset int) *Position {
	offset = min(max(offset, 0), len(s.src))
	idx := sort.SearchInts(s.starts, offset+1) - 1
	return &Position{Line: idx + 1, Column: utf8.RuneCount(s.src[s.starts[idx]:offset]) + 1}
}

// line returns the text of a 1-based line without its newline.
func (s *sourceText) line(n int) string {
	if n < 1 || n > len(s.starts) {
		return ""
	}
	end := len(s.src)
	if n < len(s.starts) {
		end = s.starts[n] - 1
	}
	return strings.TrimSuffix(string(s.src[s.starts[n-1]:end]), "\r")
}

// offset converts a 1-based line and rune column to a byte offset.
func (s *sourceText) offset(line, column int) int {
	if line < 1 || line > len(s.starts) {
		return len(s.src)
	}
	return s.starts[line-1] + utils.ByteOffset(s.line(line), column)
}

// fragmentLocator re-locates the words of a fragment in the source so every reported
// column points at the word itself.
type fragmentLocator struct {
	text   *sourceText
	frag   Fragment
	start  int
	end    int
	cursor int
}

func (s *sourceText) locator(f Fragment) *fragmentLocator {
	l := &fragmentLocator{text: s, frag: f}
	if f.Position == nil {
		return l
	}
	l.start = s.offset(f.Position.Line, f.Position.Column)
	if f.Position.Synthesized {
		l.start = s.offset(f.Position.Line, 1)
	}
	// a fragment spans its content, extended to the end of its last line
	l.end = l.start + len(f.Content)
	if l.end > len(s.src) {
		l.end = len(s.src)
	}
	if i := bytes.IndexByte(s.src[l.end:], '\n'); i >= 0 {
		l.end += i
	} else {
		l.end = len(s.src)
	}
	l.cursor = l.start
	return l
}

// locate returns the line and column of c. Words are searched forward from the previous
// match, then from the start of the fragment's line; the fragment column plus the
// candidate offset is the last resort.
func (l *fragmentLocator) locate(c tokenizer.Candidate) (int, int) {
	if l.frag.Position == nil {
		return 0, c.Offset + 1
	}
	if i := bytes.Index(l.text.src[l.cursor:l.end], []byte(c.Raw)); i >= 0 {
		at := l.cursor + i
		l.cursor = at + len(c.Raw)
		p := l.text.position(at)
		return p.Line, p.Column
	}
	line := l.text.line(l.frag.Position.Line)
	if i := strings.Index(line, c.Raw); i >= 0 {
		return l.frag.Position.Line, utils.RuneColumn(line, i)
	}
	return l.frag.Position.Line, l.frag.Position.Column + c.Offset
}
