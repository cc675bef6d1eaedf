// spelling/checker.go
package spelling

import (
	"log/slog"
	"slices"
	"sync"
)

// Verdict is the combined result of checking one word in every configured language.
type Verdict struct {
	Misspelled bool
	// Suggestions is the order-preserving union of every language's suggestions.
	Suggestions []string
	ByLanguage  map[string][]string
}

// Checker checks words against a Dictionary in several languages. A word is correct
// when at least one language accepts it.
type Checker struct {
	dict      Dictionary
	languages []string
	logger    *slog.Logger

	warned sync.Map
}

// NewChecker returns a Checker for the given languages.
func NewChecker(dict Dictionary, languages []string, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{dict: dict, languages: slices.Clone(languages), logger: logger}
}

// Languages returns the configured languages.
func (c *Checker) Languages() []string { return slices.Clone(c.languages) }

// Check returns the verdict for word. A language whose dictionary fails gives no verdict;
// if no language gives one the word is treated as correct.
func (c *Checker) Check(word string) Verdict {
	var v Verdict
	for _, lang := range c.languages {
		l, err := c.dict.Check(word, lang)
		if err != nil {
			if _, seen := c.warned.LoadOrStore(lang, struct{}{}); !seen {
				c.logger.Warn("dictionary unavailable, language skipped", "language", lang, "error", err)
			}
			continue
		}
		if !l.Misspelled {
			return Verdict{}
		}
		v.Misspelled = true
		if v.ByLanguage == nil {
			v.ByLanguage = make(map[string][]string, len(c.languages))
		}
		v.ByLanguage[lang] = l.Suggestions
		for _, s := range l.Suggestions {
			if !slices.Contains(v.Suggestions, s) {
				v.Suggestions = append(v.Suggestions, s)
			}
		}
	}
	return v
}
