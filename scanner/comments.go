// scanner/comments.go
package scanner

import (
	"strings"
)

const (
	createdByPrefix = "Created by "
	copyrightPrefix = "Copyright"
)

type commentSyntax struct {
	line       string
	blockStart string
	blockEnd   string
}

var (
	cStyleComments = commentSyntax{line: "//", blockStart: "/*", blockEnd: "*/"}
	hashComments   = commentSyntax{line: "#"}

	commentSyntaxByExt = map[string]commentSyntax{
		".swift": cStyleComments,
		".go":    cStyleComments,
		".js":    cStyleComments,
		".jsx":   cStyleComments,
		".ts":    cStyleComments,
		".tsx":   cStyleComments,
		".py":    hashComments,
	}
)

// commentScan is the result of the line-based comment pass over one file.
type commentScan struct {
	fragments []Fragment
	// authors holds the name tokens of "Created by <name> on <date>" lines.
	authors []string
}

// extractComments reads comments line by line. Positions are synthesized at column 1 and
// resolved later by searching the comment text in its line.
func extractComments(text *sourceText, syntax commentSyntax, oneLine, multiLine bool) commentScan {
	var scan commentScan
	if oneLine && syntax.line != "" {
		scan.oneLine(text, syntax)
	}
	if multiLine && syntax.blockStart != "" {
		scan.multiLine(text, syntax)
	}
	return scan
}

func (c *commentScan) add(body string, line int) {
	body = strings.TrimSpace(body)
	if body == "" || strings.HasPrefix(body, copyrightPrefix) {
		return
	}
	c.fragments = append(c.fragments, Fragment{
		Content:  body,
		Position: &Position{Line: line, Column: 1, Synthesized: true},
		Kind:     FragmentComment,
		Node:     "comment",
	})
}

func (c *commentScan) oneLine(text *sourceText, syntax commentSyntax) {
	marker := syntax.line[:1]
	for n := 1; n <= text.lineCount(); n++ {
		trimmed := strings.TrimLeft(text.line(n), " \t")
		if !strings.HasPrefix(trimmed, syntax.line) || (n == 1 && strings.HasPrefix(trimmed, "#!")) {
			continue
		}
		// doc comments repeat the marker: ///, ##
		body := strings.TrimSpace(strings.TrimLeft(trimmed, marker))
		if rest, ok := strings.CutPrefix(body, createdByPrefix); ok {
			name, _, _ := strings.Cut(rest, " on ")
			c.authors = append(c.authors, strings.Fields(name)...)
			continue
		}
		c.add(body, n)
	}
}

func (c *commentScan) multiLine(text *sourceText, syntax commentSyntax) {
	inBlock := false
	for n := 1; n <= text.lineCount(); n++ {
		line := text.line(n)
		body := line
		if !inBlock {
			start := blockStartIndex(line, syntax)
			if start < 0 {
				continue
			}
			inBlock = true
			body = line[start+len(syntax.blockStart):]
		}
		if end := strings.Index(body, syntax.blockEnd); end >= 0 {
			body = body[:end]
			inBlock = false
		}
		// drop the " * " decoration of documentation blocks
		body = strings.TrimLeft(strings.TrimSpace(body), "*")
		c.add(body, n)
	}
}

// blockStartIndex finds a block comment opening outside string literals and line comments.
func blockStartIndex(line string, syntax commentSyntax) int {
	start := strings.Index(line, syntax.blockStart)
	if start < 0 {
		return -1
	}
	if strings.Count(line[:start], `"`)%2 == 1 {
		return -1
	}
	if lc := strings.Index(line, syntax.line); lc >= 0 && lc < start {
		return -1
	}
	return start
}
