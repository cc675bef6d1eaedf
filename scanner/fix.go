// scanner/fix.go
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ReplaceWord replaces every occurrence of word in content that stands on its own
// identifier boundary: the preceding rune is not a letter, or is lowercase while word
// starts uppercase (a camelCase join), or ends an uppercase run while word is capitalized
// (XMLParser); the following rune is not a lowercase letter.
// It returns the new content and the number of replacements.
func ReplaceWord(content, word, replacement string) (string, int) {
	if word == "" {
		return content, 0
	}
	first, size := utf8.DecodeRuneInString(word)
	startsUpper := unicode.IsUpper(first)
	second, _ := utf8.DecodeRuneInString(word[size:])
	capitalized := startsUpper && unicode.IsLower(second)

	var b strings.Builder
	count, last, from := 0, 0, 0
	for {
		i := strings.Index(content[from:], word)
		if i < 0 {
			break
		}
		at := from + i
		end := at + len(word)
		from = at + 1
		if !wordBoundaryBefore(content[:at], startsUpper, capitalized) || !wordBoundaryAfter(content[end:]) {
			continue
		}
		b.WriteString(content[last:at])
		b.WriteString(replacement)
		last, from = end, end
		count++
	}
	if count == 0 {
		return content, 0
	}
	b.WriteString(content[last:])
	return b.String(), count
}

func wordBoundaryBefore(before string, startsUpper, capitalized bool) bool {
	r, _ := utf8.DecodeLastRuneInString(before)
	if r == utf8.RuneError {
		return true
	}
	if !unicode.IsLetter(r) {
		return true
	}
	if unicode.IsUpper(r) {
		return capitalized
	}
	return startsUpper && unicode.IsLower(r)
}

func wordBoundaryAfter(after string) bool {
	r, _ := utf8.DecodeRuneInString(after)
	return r == utf8.RuneError || !unicode.IsLower(r)
}

// fixFile rewrites path with word replaced, reading the current content first so
// successive corrections in one file build on each other. The write goes through a
// temporary file renamed over the original.
func fixFile(path, word, replacement string) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, &FileError{Path: path, Op: "stat", Err: err}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, &FileError{Path: path, Op: "read", Err: err}
	}
	updated, n := ReplaceWord(string(data), word, replacement)
	if n == 0 {
		return 0, nil
	}
	if err := writeFileAtomic(path, []byte(updated), info.Mode().Perm()); err != nil {
		return 0, &FileError{Path: path, Op: "write", Err: err}
	}
	return n, nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err = os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
