// spelling/fuzzy.go
package spelling

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/sajari/fuzzy"
)

const defaultMaxSuggestions = 5

// DefaultSearchDirs lists where hunspell and myspell dictionaries are usually installed.
func DefaultSearchDirs() []string {
	dirs := []string{"/usr/share/hunspell", "/usr/share/myspell", "/usr/share/myspell/dicts"}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, "Library", "Spelling"))
	}
	if extra := os.Getenv("SPELL_SCANNER_DICT_PATH"); extra != "" {
		dirs = append(filepath.SplitList(extra), dirs...)
	}
	return dirs
}

// system word lists used when no hunspell dictionary is installed
var plainWordLists = map[string][]string{
	"en":    {"/usr/share/dict/words", "/usr/share/dict/american-english"},
	"en_US": {"/usr/share/dict/american-english", "/usr/share/dict/words"},
	"en_GB": {"/usr/share/dict/british-english"},
}

type wordModel struct {
	once  sync.Once
	words map[string]struct{}
	lower map[string]struct{}
	model *fuzzy.Model
	err   error
}

// FuzzyDictionary checks words against per-language word sets and suggests corrections
// with a sajari/fuzzy model. Languages are loaded on first use.
type FuzzyDictionary struct {
	searchDirs     []string
	extraFiles     []string
	seeds          map[string][]string
	maxSuggestions int
	depth          int
	logger         *slog.Logger

	mu     sync.Mutex
	models map[string]*wordModel
}

// Option configures a FuzzyDictionary.
type Option func(*FuzzyDictionary)

// WithSearchDirs replaces the directories searched for <language>.dic files.
func WithSearchDirs(dirs ...string) Option {
	return func(d *FuzzyDictionary) { d.searchDirs = dirs }
}

// WithWordFiles adds word lists merged into every language.
func WithWordFiles(paths ...string) Option {
	return func(d *FuzzyDictionary) { d.extraFiles = append(d.extraFiles, paths...) }
}

// WithWords defines a language from an in-memory word list instead of files.
func WithWords(language string, words ...string) Option {
	return func(d *FuzzyDictionary) {
		d.seeds[language] = append(d.seeds[language], words...)
	}
}

// WithMaxSuggestions caps the number of suggestions per lookup.
func WithMaxSuggestions(n int) Option {
	return func(d *FuzzyDictionary) { d.maxSuggestions = n }
}

// WithDepth sets the maximum edit distance used for suggestions.
func WithDepth(depth int) Option {
	return func(d *FuzzyDictionary) { d.depth = depth }
}

// WithLogger sets the logger used while loading dictionaries.
func WithLogger(logger *slog.Logger) Option {
	return func(d *FuzzyDictionary) { d.logger = logger }
}

// NewFuzzyDictionary returns a dictionary searching DefaultSearchDirs unless configured otherwise.
func NewFuzzyDictionary(opts ...Option) *FuzzyDictionary {
	d := &FuzzyDictionary{
		searchDirs:     DefaultSearchDirs(),
		seeds:          make(map[string][]string),
		maxSuggestions: defaultMaxSuggestions,
		depth:          2,
		logger:         slog.Default(),
		models:         make(map[string]*wordModel),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Check implements Dictionary.
func (d *FuzzyDictionary) Check(word, language string) (Lookup, error) {
	m, err := d.load(language)
	if err != nil {
		return Lookup{}, err
	}
	if m.contains(word) {
		return Lookup{}, nil
	}
	return Lookup{Misspelled: true, Suggestions: m.suggest(word, d.maxSuggestions)}, nil
}

// Languages lists the languages that can be loaded.
func (d *FuzzyDictionary) Languages() []string {
	seen := make(map[string]struct{})
	for lang := range d.seeds {
		seen[lang] = struct{}{}
	}
	for _, dir := range d.searchDirs {
		matches, _ := filepath.Glob(filepath.Join(dir, "*.dic"))
		for _, m := range matches {
			seen[strings.TrimSuffix(filepath.Base(m), ".dic")] = struct{}{}
		}
	}
	for lang, paths := range plainWordLists {
		for _, p := range paths {
			if fileExists(p) {
				seen[lang] = struct{}{}
				break
			}
		}
	}
	langs := make([]string, 0, len(seen))
	for lang := range seen {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

func (d *FuzzyDictionary) load(language string) (*wordModel, error) {
	d.mu.Lock()
	m, ok := d.models[language]
	if !ok {
		m = &wordModel{}
		d.models[language] = m
	}
	d.mu.Unlock()

	m.once.Do(func() {
		words, err := d.sourceWords(language)
		if err != nil {
			m.err = err
			return
		}
		m.build(words, d.depth)
		d.logger.Debug("dictionary loaded", "language", language, "words", len(m.words))
	})
	return m, m.err
}

func (d *FuzzyDictionary) sourceWords(language string) ([]string, error) {
	words, found := d.seeds[language]
	if !found {
		var err error
		words, found, err = d.findLanguage(language)
		if err != nil {
			return nil, err
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrLanguageUnavailable, language)
	}
	for _, path := range d.extraFiles {
		extra, err := loadWordFile(path)
		if err != nil {
			d.logger.Warn("skipping word list", "path", path, "error", err)
			continue
		}
		words = append(words, extra...)
	}
	return words, nil
}

func (d *FuzzyDictionary) findLanguage(language string) ([]string, bool, error) {
	for _, name := range languageCandidates(language) {
		for _, dir := range d.searchDirs {
			dic := filepath.Join(dir, name+".dic")
			if !fileExists(dic) {
				continue
			}
			words, err := loadWordFile(dic)
			if err != nil {
				return nil, false, err
			}
			return words, true, nil
		}
	}
	for _, path := range plainWordLists[language] {
		if !fileExists(path) {
			continue
		}
		words, err := LoadWordList(path)
		if err != nil {
			return nil, false, err
		}
		return words, true, nil
	}
	return nil, false, nil
}

// loadWordFile reads a .dic with its sibling .aff as hunspell, anything else as a plain list.
func loadWordFile(path string) ([]string, error) {
	if strings.HasSuffix(path, ".dic") {
		aff := strings.TrimSuffix(path, ".dic") + ".aff"
		if fileExists(aff) {
			return LoadHunspell(path, aff)
		}
	}
	return LoadWordList(path)
}

func languageCandidates(language string) []string {
	candidates := []string{language}
	if alt := strings.ReplaceAll(language, "-", "_"); alt != language {
		candidates = append(candidates, alt)
	}
	if alt := strings.ReplaceAll(language, "_", "-"); alt != language {
		candidates = append(candidates, alt)
	}
	if language == "en" {
		candidates = append(candidates, "en_US", "en-US")
	}
	return candidates
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (m *wordModel) build(words []string, depth int) {
	m.words = make(map[string]struct{}, len(words))
	m.lower = make(map[string]struct{}, len(words))
	for _, w := range words {
		m.words[w] = struct{}{}
		m.lower[strings.ToLower(w)] = struct{}{}
	}
	unique := make([]string, 0, len(m.words))
	for w := range m.words {
		unique = append(unique, w)
	}
	sort.Strings(unique)

	m.model = fuzzy.NewModel()
	m.model.SetThreshold(1)
	m.model.SetDepth(depth)
	m.model.SetUseAutocomplete(false)
	m.model.Train(unique)
}

// contains applies dictionary casing: a lowercase entry accepts its capitalized and
// uppercase forms, a capitalized entry does not accept its lowercase form.
func (m *wordModel) contains(word string) bool {
	if _, ok := m.words[word]; ok {
		return true
	}
	lower := strings.ToLower(word)
	switch {
	case word == lower:
		return false
	case isCapitalized(word):
		_, ok := m.words[lower]
		return ok
	case word == strings.ToUpper(word):
		_, ok := m.lower[lower]
		return ok
	}
	return false
}

// suggest lists run-together splits of word first, then the closest known words.
func (m *wordModel) suggest(word string, n int) []string {
	lower := strings.ToLower(word)
	raw := append(m.splits(lower), m.model.SpellCheckSuggestions(lower, n)...)
	capitalized := isCapitalized(word)
	upper := !capitalized && word == strings.ToUpper(word)

	out := make([]string, 0, min(len(raw), n))
	for _, s := range raw {
		if len(out) == n {
			break
		}
		switch {
		case upper:
			s = strings.ToUpper(s)
		case capitalized:
			s = upperFirst(s)
		}
		if s == word || slices.Contains(out, s) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// splits returns "left right" for every cut of word into two known words of at least
// two letters each, so flat case identifiers such as "username" get "user name".
func (m *wordModel) splits(word string) []string {
	var out []string
	for i := range word {
		left, right := word[:i], word[i:]
		if utf8.RuneCountInString(left) < 2 || utf8.RuneCountInString(right) < 2 {
			continue
		}
		if m.contains(left) && m.contains(right) {
			out = append(out, left+" "+right)
		}
	}
	return out
}

func isCapitalized(word string) bool {
	r, size := utf8.DecodeRuneInString(word)
	if !unicode.IsUpper(r) {
		return false
	}
	rest := word[size:]
	return rest != "" && rest == strings.ToLower(rest)
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
