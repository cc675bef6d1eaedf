// scanner/heuristics.go
package scanner

import (
	"regexp"
	"strings"

	"github.com/alexferrari88/spell-scanner/utils"
)

var (
	// a fragment that is nothing but a URL
	urlPattern = regexp.MustCompile(`(?i)^(https?|ftp)://[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}(/[a-zA-Z0-9#?&=_-]*)?$`)
	// URLs embedded in longer text
	inlineURLPattern = regexp.MustCompile(`(?i)\b(https?|ftp)://[^\s"'<>()]+`)

	// Interpolations and format verbs are code, not prose.
	placeholderPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\\\([^()]*(\([^()]*\))?[^()]*\)`), // Swift \(value)
		regexp.MustCompile(`\$\{[^{}]*\}`),                    // JS ${value}
		regexp.MustCompile(`\{\{[^{}]*\}\}`),                  // {{ template }}
		regexp.MustCompile(`\{[A-Za-z0-9_.!:]*\}`),            // Python {value}
		regexp.MustCompile(`%(\d+\$)?[-+#0]*\d*(\.\d+)?(hh|h|ll|l|q|L|z|t|j)?[@dDuUxXoOfeEgGcCsSpaAF]([^A-Za-z]|$)`),
	}
)

// IsURL reports whether the whole quote-stripped fragment is an http, https or ftp URL.
func IsURL(fragment string) bool {
	s := strings.ReplaceAll(strings.TrimSpace(fragment), `"`, "")
	return urlPattern.MatchString(s)
}

// StripURLs blanks out URLs inside free text.
func StripURLs(s string) string {
	return inlineURLPattern.ReplaceAllString(s, " ")
}

// StripPlaceholders replaces interpolations and printf-style verbs with a space.
func StripPlaceholders(s string) string {
	for _, re := range placeholderPatterns {
		s = re.ReplaceAllString(s, " ")
	}
	return s
}

// prepareFragment returns the text to tokenize, or false when the fragment is skipped whole.
func prepareFragment(f Fragment, ignoreURLs bool) (string, bool) {
	text := f.Content
	if f.Kind == FragmentIdentifier {
		return text, text != ""
	}
	if ignoreURLs {
		if IsURL(text) || IsURL(utils.TrimQuotes(strings.TrimSpace(text))) {
			return "", false
		}
		text = StripURLs(text)
	}
	if f.Kind != FragmentComment {
		text = StripPlaceholders(text)
	}
	return text, strings.TrimSpace(text) != ""
}
