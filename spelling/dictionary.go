// spelling/dictionary.go
package spelling

import "errors"

// ErrLanguageUnavailable is returned when no dictionary could be found for a language.
var ErrLanguageUnavailable = errors.New("no dictionary available for language")

// Lookup is the verdict of one dictionary for one word in one language.
type Lookup struct {
	Misspelled  bool
	Suggestions []string
}

// Dictionary is the spell-checking capability consumed by the checker.
// Implementations must be safe for concurrent use.
type Dictionary interface {
	Check(word, language string) (Lookup, error)
	Languages() []string
}
