// tokenizer/tokenizer.go
package tokenizer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Delimiters are the characters that separate words inside a single identifier or literal piece.
const Delimiters = ",.:-;_!`@"

const (
	escapedNewline = `\n`
	escapedTab     = `\t`
	quote          = `"`
)

var (
	trailingDigits = regexp.MustCompile(`\d+$`)
	escapeSpacer   = strings.NewReplacer(escapedNewline, " ", escapedTab, " ")
)

// Candidate is one word produced from a fragment.
type Candidate struct {
	// Text is the cleaned word that gets checked.
	Text string
	// Raw is the piece as it appears in the fragment, used to locate the word in source.
	Raw string
	// Offset is the rune offset of Raw within the trimmed fragment.
	Offset int
}

// SplitCamelCase starts a new substring at every uppercase letter that follows a non-empty
// current substring. Case is preserved and no characters are dropped.
func SplitCamelCase(s string) []string {
	var words []string
	var current strings.Builder
	for _, r := range s {
		if unicode.IsUpper(r) && current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
		current.WriteRune(r)
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}
	return words
}

// SplitByDelimiters splits on Delimiters, trims whitespace around each part and drops empty parts.
func SplitByDelimiters(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(Delimiters, r)
	})
	out := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// RemoveEscapes drops literal `\n` and `\t` sequences as they appear in source literals.
func RemoveEscapes(s string) string {
	s = strings.ReplaceAll(s, escapedNewline, "")
	return strings.ReplaceAll(s, escapedTab, "")
}

// CleanWord strips escape sequences, trailing digits, a possessive 's, remaining apostrophes,
// quotes, newlines and any surrounding punctuation.
func CleanWord(w string) string {
	w = RemoveEscapes(w)
	w = trimPunctuation(w)
	w = trailingDigits.ReplaceAllString(w, "")
	w = strings.ReplaceAll(w, "'s", "")
	w = strings.ReplaceAll(w, "’s", "")
	w = strings.ReplaceAll(w, "'", "")
	w = strings.ReplaceAll(w, "’", "")
	w = strings.ReplaceAll(w, quote, "")
	w = strings.ReplaceAll(w, "\n", "")
	return trimPunctuation(w)
}

// IsFreeform reports whether a fragment contains whitespace and must be split into words first.
func IsFreeform(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}

// Tokenize turns a fragment into word candidates. Escaped newlines and tabs separate
// words like real whitespace. Freeform fragments are split on
// whitespace, then camelCase, then delimiters, and contractions are skipped. Identifier
// fragments lose their quotes and go through camelCase and delimiter splitting.
func Tokenize(fragment string) []Candidate {
	s := strings.Trim(escapeSpacer.Replace(fragment), " \t")

	var pieces []string
	if IsFreeform(s) {
		for _, field := range strings.Fields(s) {
			for _, part := range SplitCamelCase(field) {
				for _, element := range SplitByDelimiters(part) {
					element = RemoveEscapes(strings.ReplaceAll(element, quote, ""))
					if element == "" || IsEnglishContraction(trimPunctuation(element)) {
						continue
					}
					pieces = append(pieces, element)
				}
			}
		}
	} else {
		for _, part := range SplitCamelCase(strings.ReplaceAll(s, quote, "")) {
			pieces = append(pieces, SplitByDelimiters(part)...)
		}
	}

	candidates := make([]Candidate, 0, len(pieces))
	cursor := 0
	for _, raw := range pieces {
		text := CleanWord(raw)
		offset := locate(s, raw, &cursor)
		if !hasLetter(text) {
			continue
		}
		candidates = append(candidates, Candidate{Text: text, Raw: raw, Offset: offset})
	}
	return candidates
}

// locate returns the rune offset of piece in s searching from *cursor (a byte index),
// and advances the cursor past the match. Unmatched pieces keep the cursor in place.
func locate(s, piece string, cursor *int) int {
	if *cursor > len(s) {
		*cursor = len(s)
	}
	idx := strings.Index(s[*cursor:], piece)
	if idx < 0 {
		return utf8.RuneCountInString(s[:*cursor])
	}
	start := *cursor + idx
	*cursor = start + len(piece)
	return utf8.RuneCountInString(s[:start])
}

func trimPunctuation(w string) string {
	return strings.TrimFunc(w, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\'' && r != '’'
	})
}

func hasLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}
