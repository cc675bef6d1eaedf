// config/config.go
package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// regexSymbols marks an ignore or exclude entry as a candidate regular expression.
var regexSymbols = regexp.MustCompile(`[.^$*+?()\[\]{}|\\]`)

// File is the raw, user-editable configuration as read from disk.
type File struct {
	Languages    []string `mapstructure:"languages" yaml:"languages"`
	Exclude      []string `mapstructure:"exclude" yaml:"exclude"`
	Rules        []string `mapstructure:"rules" yaml:"rules"`
	Ignore       []string `mapstructure:"ignore" yaml:"ignore"`
	Dictionaries []string `mapstructure:"dictionaries" yaml:"dictionaries"`
}

// Configuration is the built, immutable view used while checking.
type Configuration struct {
	Languages           []string
	IgnoredWords        map[string]struct{}
	IgnoredWordPatterns []*regexp.Regexp
	Rules               map[Rule]bool
	ExcludedFiles       []string
	ExcludedDirectories []string
	ExcludedPatterns    []*regexp.Regexp
	Dictionaries        []string
}

// Has reports whether a rule is enabled.
func (c *Configuration) Has(r Rule) bool {
	return c != nil && c.Rules[r]
}

// WarningKind classifies a non-fatal configuration problem.
type WarningKind int

const (
	WarningUnknownRule WarningKind = iota
	WarningDuplicateWords
	WarningCapitalizedPairs
	WarningNotFound
)

// Warning is a configuration problem that does not stop a run.
type Warning struct {
	Kind    WarningKind
	Message string
	Words   []string
}

func (w Warning) String() string { return w.Message }

// DefaultFile is used when no config file exists: every rule enabled.
func DefaultFile() File {
	f := File{
		Languages: []string{DefaultLanguage},
		Rules:     RuleNames(),
	}
	f.Exclude = append(f.Exclude, defaultExcludedDirectories...)
	f.Exclude = append(f.Exclude, defaultExcludedFiles...)
	return f
}

// Default builds the configuration used when no config file is found.
func Default() *Configuration {
	cfg, _ := Build(DefaultFile())
	return cfg
}

// Build validates a raw File and derives the ignore sets and exclusions from it.
func Build(f File) (*Configuration, []Warning) {
	var warnings []Warning
	cfg := &Configuration{
		IgnoredWords: make(map[string]struct{}),
		Rules:        make(map[Rule]bool),
	}

	for _, name := range f.Rules {
		name = strings.TrimSpace(name)
		rule, ok := ParseRule(name)
		if !ok {
			warnings = append(warnings, Warning{
				Kind:    WarningUnknownRule,
				Message: fmt.Sprintf("Unknown rule: %s", name),
				Words:   []string{name},
			})
			continue
		}
		cfg.Rules[rule] = true
	}

	languages := slices.Clone(f.Languages)
	if len(languages) == 0 {
		languages = []string{DefaultLanguage}
	}
	if cfg.Rules[RuleSupportBritishWords] {
		languages = append(languages, BritishEnglish)
	}
	cfg.Languages = dedupe(languages)

	var literals []string
	for _, entry := range f.Ignore {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if re, ok := compileIfRegex(entry); ok {
			cfg.IgnoredWordPatterns = append(cfg.IgnoredWordPatterns, re)
			continue
		}
		literals = append(literals, entry)
	}

	var duplicates []string
	for _, word := range literals {
		if _, seen := cfg.IgnoredWords[word]; seen {
			if !slices.Contains(duplicates, word) {
				duplicates = append(duplicates, word)
			}
			continue
		}
		cfg.IgnoredWords[word] = struct{}{}
	}

	var pairs []string
	for _, word := range literals {
		capitalized := Capitalize(word)
		if capitalized == word {
			continue
		}
		if _, ok := cfg.IgnoredWords[capitalized]; ok {
			pair := fmt.Sprintf("%s and %s", word, capitalized)
			if !slices.Contains(pairs, pair) {
				pairs = append(pairs, pair)
			}
		}
	}
	for _, word := range literals {
		cfg.IgnoredWords[Capitalize(word)] = struct{}{}
	}

	for _, entry := range f.Exclude {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if re, ok := compileIfRegex(entry); ok && !isSourceFileName(entry) {
			cfg.ExcludedPatterns = append(cfg.ExcludedPatterns, re)
			continue
		}
		if isSourceFileName(entry) {
			cfg.ExcludedFiles = append(cfg.ExcludedFiles, entry)
		} else {
			cfg.ExcludedDirectories = append(cfg.ExcludedDirectories, filepath.Clean(entry))
		}
	}

	if cfg.Rules[RuleIgnoreLanguageKeywords] {
		for _, keywords := range languageKeywords {
			cfg.addWords(keywords)
		}
	}
	if cfg.Rules[RuleIgnoreShortenedWords] {
		cfg.addWords(shortenedWords)
	}
	if cfg.Rules[RuleIgnoreCommonlyUsedWords] {
		cfg.addWords(commonlyUsedWords)
		for _, p := range otherWordPatterns {
			cfg.IgnoredWordPatterns = append(cfg.IgnoredWordPatterns, regexp.MustCompile(p))
		}
	}
	if cfg.Rules[RuleIgnoreLoremIpsum] {
		cfg.addWords(loremIpsumWords)
	}
	if cfg.Rules[RuleIgnoreHTMLTags] {
		cfg.addWords(htmlTags)
	}

	cfg.Dictionaries = dedupe(f.Dictionaries)

	if len(duplicates) > 0 {
		sort.Strings(duplicates)
		verb, noun := "is", "word"
		if len(duplicates) > 1 {
			verb, noun = "are", "words"
		}
		warnings = append(warnings, Warning{
			Kind: WarningDuplicateWords,
			Message: fmt.Sprintf("The following %s %s duplicated in the ignore list and can be removed: %s",
				noun, verb, strings.Join(duplicates, ", ")),
			Words: duplicates,
		})
	}
	if len(pairs) > 0 {
		warnings = append(warnings, Warning{
			Kind: WarningCapitalizedPairs,
			Message: "The following word pairs exist in both lowercase and capitalized forms: " +
				strings.Join(pairs, ", ") + ". The lowercase version is sufficient.",
			Words: pairs,
		})
	}
	return cfg, warnings
}

func (c *Configuration) addWords(words []string) {
	for _, w := range words {
		c.IgnoredWords[w] = struct{}{}
		c.IgnoredWords[Capitalize(w)] = struct{}{}
	}
}

// Capitalize upper-cases the first letter of each word and lower-cases the rest,
// so "iOS" becomes "Ios".
func Capitalize(word string) string {
	return cases.Title(language.Und).String(word)
}

func compileIfRegex(entry string) (*regexp.Regexp, bool) {
	if !regexSymbols.MatchString(entry) {
		return nil, false
	}
	re, err := regexp.Compile(entry)
	if err != nil {
		return nil, false
	}
	return re, true
}

func isSourceFileName(name string) bool {
	return slices.Contains(SourceExtensions, strings.ToLower(filepath.Ext(name)))
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
