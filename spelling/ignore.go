// spelling/ignore.go
package spelling

import "regexp"

// IgnoreSet decides whether a word is exempt from checking. Words are matched exactly,
// patterns anywhere in the word.
type IgnoreSet struct {
	parent   *IgnoreSet
	words    map[string]struct{}
	patterns []*regexp.Regexp
}

// NewIgnoreSet builds the global set. The map and slice are read, never modified.
func NewIgnoreSet(words map[string]struct{}, patterns []*regexp.Regexp) *IgnoreSet {
	if words == nil {
		words = map[string]struct{}{}
	}
	return &IgnoreSet{words: words, patterns: patterns}
}

// With layers extra words on top of s, leaving s untouched. Used for per-file additions.
func (s *IgnoreSet) With(words ...string) *IgnoreSet {
	if len(words) == 0 {
		return s
	}
	extra := make(map[string]struct{}, len(words))
	for _, w := range words {
		extra[w] = struct{}{}
	}
	return &IgnoreSet{parent: s, words: extra}
}

// ShouldIgnore reports whether word is in the set or matches one of its patterns.
func (s *IgnoreSet) ShouldIgnore(word string) bool {
	for cur := s; cur != nil; cur = cur.parent {
		if _, ok := cur.words[word]; ok {
			return true
		}
		for _, re := range cur.patterns {
			if re.MatchString(word) {
				return true
			}
		}
	}
	return false
}
