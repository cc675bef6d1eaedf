// spelling/decision.go
package spelling

import (
	"strings"
	"unicode"
)

// Classification is the outcome of Decide.
type Classification int

const (
	Correct Classification = iota
	MisspelledNoSuggestion
	MisspelledSuppressed
	MisspelledReported
	MisspelledCorrectable
)

func (c Classification) String() string {
	switch c {
	case Correct:
		return "correct"
	case MisspelledNoSuggestion:
		return "misspelled-no-suggestion"
	case MisspelledSuppressed:
		return "misspelled-suppressed"
	case MisspelledReported:
		return "misspelled-reported"
	case MisspelledCorrectable:
		return "misspelled-correctable"
	default:
		return "unknown"
	}
}

// Policy carries the rules and mode that influence a decision.
type Policy struct {
	Fix                  bool
	IgnoreCapitalization bool
	SupportFlatCase      bool
}

// Decision is what to do with one checked word.
type Decision struct {
	Word        string
	Class       Classification
	Suggestions []string
	// Correction is set only for MisspelledCorrectable.
	Correction string
}

// Reported reports whether the decision produces a finding.
func (d Decision) Reported() bool {
	return d.Class == MisspelledReported || d.Class == MisspelledNoSuggestion || d.Class == MisspelledCorrectable
}

// Decide turns a verdict into a decision.
//
// A misspelled word without suggestions is reported as such outside fix mode. A word whose
// lowercase form is a suggestion is a capitalization issue and is dropped when
// IgnoreCapitalization is set. A word that equals a suggestion with its spaces and hyphens
// removed is flat case and is dropped when SupportFlatCase is set. In fix mode a word with
// exactly one single-word suggestion can be corrected.
func Decide(word string, v Verdict, p Policy) Decision {
	d := Decision{Word: word, Suggestions: v.Suggestions}
	if !v.Misspelled {
		d.Class = Correct
		return d
	}
	if !p.Fix && len(v.Suggestions) == 0 {
		d.Class = MisspelledNoSuggestion
		return d
	}

	var shouldCapitalize, flat bool
	for _, s := range v.Suggestions {
		if strings.ToLower(s) == word {
			shouldCapitalize = true
		}
		if p.SupportFlatCase && JoinWords(s) == word {
			flat = true
		}
	}

	switch {
	case shouldCapitalize && p.IgnoreCapitalization:
		d.Class = MisspelledSuppressed
	case shouldCapitalize || !flat:
		if p.Fix && len(v.Suggestions) == 1 && JoinWords(v.Suggestions[0]) == v.Suggestions[0] {
			d.Class = MisspelledCorrectable
			d.Correction = v.Suggestions[0]
		} else {
			d.Class = MisspelledReported
		}
	default:
		d.Class = MisspelledSuppressed
	}
	return d
}

// JoinWords removes whitespace and hyphens, so "word one" and "word-one" become "wordone".
func JoinWords(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' {
			return -1
		}
		return r
	}, s)
}
