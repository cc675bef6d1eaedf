// utils/utils.go
package utils

import (
	"os/exec"
	"unicode/utf8"
)

// TrimQuotes strips one pair of matching surrounding quotes (", ' or `).
func TrimQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'' || first == '`') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// RuneColumn converts a byte offset within line to a 1-based rune column.
func RuneColumn(line string, byteOffset int) int {
	if byteOffset < 0 {
		return 1
	}
	if byteOffset > len(line) {
		byteOffset = len(line)
	}
	return utf8.RuneCountInString(line[:byteOffset]) + 1
}

// ByteOffset converts a 1-based rune column to a byte offset within line.
func ByteOffset(line string, column int) int {
	if column <= 1 {
		return 0
	}
	n := 0
	for i := range line {
		if n == column-1 {
			return i
		}
		n++
	}
	return len(line)
}

// CommandExists checks if a command exists on the system PATH.
func CommandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}
