package spelling

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDict maps language -> word -> lookup. Unknown words are correct, unknown languages fail.
type fakeDict struct {
	entries map[string]map[string]Lookup
	calls   atomic.Int32
}

func (f *fakeDict) Check(word, language string) (Lookup, error) {
	f.calls.Add(1)
	words, ok := f.entries[language]
	if !ok {
		return Lookup{}, ErrLanguageUnavailable
	}
	return words[word], nil
}

func (f *fakeDict) Languages() []string {
	var langs []string
	for l := range f.entries {
		langs = append(langs, l)
	}
	return langs
}

func TestFuzzyDictionaryCheck(t *testing.T) {
	d := NewFuzzyDictionary(WithSearchDirs(), WithWords("en", "accessibility", "privilege", "Paris", "occurrence"))

	l, err := d.Check("accesibility", "en")
	require.NoError(t, err)
	assert.True(t, l.Misspelled)
	assert.Contains(t, l.Suggestions, "accessibility")

	l, err = d.Check("Accesibility", "en")
	require.NoError(t, err)
	assert.True(t, l.Misspelled)
	assert.Contains(t, l.Suggestions, "Accessibility")

	for _, w := range []string{"privilege", "Privilege", "PRIVILEGE", "Paris"} {
		l, err = d.Check(w, "en")
		require.NoError(t, err)
		assert.False(t, l.Misspelled, w)
	}

	l, err = d.Check("paris", "en")
	require.NoError(t, err)
	assert.True(t, l.Misspelled)
	assert.Contains(t, l.Suggestions, "Paris")
}

func TestFuzzyDictionarySuggestsSplitsForFlatCase(t *testing.T) {
	d := NewFuzzyDictionary(WithSearchDirs(), WithWords("en", "word", "one", "user", "name", "file", "path"))

	for _, tt := range []struct{ word, split string }{
		{"wordone", "word one"},
		{"username", "user name"},
		{"filepath", "file path"},
		{"Username", "User name"},
	} {
		t.Run(tt.word, func(t *testing.T) {
			l, err := d.Check(tt.word, "en")
			require.NoError(t, err)
			assert.True(t, l.Misspelled)
			assert.Contains(t, l.Suggestions, tt.split)

			v := Verdict{Misspelled: true, Suggestions: l.Suggestions}
			assert.Equal(t, MisspelledSuppressed, Decide(tt.word, v, Policy{SupportFlatCase: true}).Class)
			assert.Equal(t, MisspelledReported, Decide(tt.word, v, Policy{}).Class)
		})
	}

	l, err := d.Check("wordzz", "en")
	require.NoError(t, err)
	assert.NotContains(t, l.Suggestions, "word zz")
}

func TestFuzzyDictionaryUnknownLanguage(t *testing.T) {
	d := NewFuzzyDictionary(WithSearchDirs(), WithWords("en", "word"))
	_, err := d.Check("mot", "xx_YY")
	assert.ErrorIs(t, err, ErrLanguageUnavailable)
	assert.Contains(t, d.Languages(), "en")
}

const testAffix = `SET UTF-8
SFX S Y 2
SFX S 0 s [^y]
SFX S y ies y
PFX U Y 1
PFX U 0 un .
`

const testDic = `4
check/S
try/S
do/U
lock/SU
`

func writeHunspell(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".aff"), []byte(testAffix), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".dic"), []byte(testDic), 0o644))
}

func TestLoadHunspellExpandsAffixes(t *testing.T) {
	dir := t.TempDir()
	writeHunspell(t, dir, "en_US")

	words, err := LoadHunspell(filepath.Join(dir, "en_US.dic"), filepath.Join(dir, "en_US.aff"))
	require.NoError(t, err)
	assert.Subset(t, words, []string{
		"check", "checks", "try", "tries", "do", "undo",
		"lock", "locks", "unlock", "unlocks",
	})
	assert.NotContains(t, words, "trys")
	assert.NotContains(t, words, "uncheck")
}

func TestFuzzyDictionaryLoadsFromSearchDir(t *testing.T) {
	dir := t.TempDir()
	writeHunspell(t, dir, "en_US")
	d := NewFuzzyDictionary(WithSearchDirs(dir))

	l, err := d.Check("unlocks", "en")
	require.NoError(t, err)
	assert.False(t, l.Misspelled)

	l, err = d.Check("tryes", "en")
	require.NoError(t, err)
	assert.True(t, l.Misspelled)
	assert.Contains(t, d.Languages(), "en_US")
}

func TestLoadWordList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("# project words\nfoo\n\nbar/XY\n"), 0o644))
	words, err := LoadWordList(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar"}, words)
}

func TestWordFilesMergeIntoLanguage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.txt")
	require.NoError(t, os.WriteFile(path, []byte("spellscanner\n"), 0o644))
	d := NewFuzzyDictionary(WithSearchDirs(), WithWords("en", "word"), WithWordFiles(path))

	l, err := d.Check("spellscanner", "en")
	require.NoError(t, err)
	assert.False(t, l.Misspelled)
}

func TestCachedDictionary(t *testing.T) {
	inner := &fakeDict{entries: map[string]map[string]Lookup{
		"en": {"teh": {Misspelled: true, Suggestions: []string{"the"}}},
	}}
	c, err := NewCachedDictionary(inner, 8)
	require.NoError(t, err)

	for range 3 {
		l, err := c.Check("teh", "en")
		require.NoError(t, err)
		assert.Equal(t, []string{"the"}, l.Suggestions)
	}
	assert.Equal(t, int32(1), inner.calls.Load())

	// errors are not cached
	for range 2 {
		_, err := c.Check("teh", "fr")
		assert.True(t, errors.Is(err, ErrLanguageUnavailable))
	}
	assert.Equal(t, int32(3), inner.calls.Load())
}

func TestIgnoreSet(t *testing.T) {
	base := NewIgnoreSet(map[string]struct{}{"iOS": {}}, []*regexp.Regexp{regexp.MustCompile(`\d{3}`)})
	assert.True(t, base.ShouldIgnore("iOS"))
	assert.False(t, base.ShouldIgnore("ios"))
	assert.True(t, base.ShouldIgnore("abc123def"))

	file := base.With("Jane", "Doe")
	assert.True(t, file.ShouldIgnore("Jane"))
	assert.True(t, file.ShouldIgnore("iOS"))
	assert.False(t, base.ShouldIgnore("Jane"))
	assert.Same(t, base, base.With())
}

func TestCheckerCrossLanguage(t *testing.T) {
	dict := &fakeDict{entries: map[string]map[string]Lookup{
		"en":    {"colour": {Misspelled: true, Suggestions: []string{"color", "colon"}}, "tird": {Misspelled: true, Suggestions: []string{"third", "bird"}}},
		"en_GB": {"tird": {Misspelled: true, Suggestions: []string{"bird", "tired"}}},
	}}
	c := NewChecker(dict, []string{"en", "en_GB"}, nil)

	assert.False(t, c.Check("colour").Misspelled)

	v := c.Check("tird")
	assert.True(t, v.Misspelled)
	assert.Equal(t, []string{"third", "bird", "tired"}, v.Suggestions)
	assert.Equal(t, []string{"bird", "tired"}, v.ByLanguage["en_GB"])
}

func TestCheckerFailingLanguagesGiveNoVerdict(t *testing.T) {
	dict := &fakeDict{entries: map[string]map[string]Lookup{
		"en": {"tird": {Misspelled: true, Suggestions: []string{"third"}}},
	}}
	c := NewChecker(dict, []string{"fr"}, nil)
	assert.False(t, c.Check("tird").Misspelled)

	c = NewChecker(dict, []string{"fr", "en"}, nil)
	assert.True(t, c.Check("tird").Misspelled)
}

func TestDecide(t *testing.T) {
	misspelled := func(s ...string) Verdict { return Verdict{Misspelled: true, Suggestions: s} }

	tests := []struct {
		name   string
		word   string
		v      Verdict
		policy Policy
		want   Classification
		fix    string
	}{
		{"correct", "word", Verdict{}, Policy{}, Correct, ""},
		{"no suggestion", "xyzzyq", misspelled(), Policy{}, MisspelledNoSuggestion, ""},
		{"no suggestion in fix mode", "xyzzyq", misspelled(), Policy{Fix: true}, MisspelledReported, ""},
		{"reported", "teh", misspelled("the", "ten"), Policy{}, MisspelledReported, ""},
		{"flat case suppressed", "wordone", misspelled("word one"), Policy{SupportFlatCase: true}, MisspelledSuppressed, ""},
		{"hyphenated flat case", "wordone", misspelled("word-one"), Policy{SupportFlatCase: true}, MisspelledSuppressed, ""},
		{"flat case reported without rule", "wordone", misspelled("word one"), Policy{}, MisspelledReported, ""},
		{"capitalization ignored", "paris", misspelled("Paris"), Policy{IgnoreCapitalization: true}, MisspelledSuppressed, ""},
		{"capitalization reported", "paris", misspelled("Paris"), Policy{}, MisspelledReported, ""},
		{"capitalization beats flat case", "paris", misspelled("Paris", "pa ris"), Policy{SupportFlatCase: true}, MisspelledReported, ""},
		{"correctable", "teh", misspelled("the"), Policy{Fix: true}, MisspelledCorrectable, "the"},
		{"ambiguous in fix mode", "teh", misspelled("the", "ten"), Policy{Fix: true}, MisspelledReported, ""},
		{"split suggestion is never applied", "wordone", misspelled("word one"), Policy{Fix: true}, MisspelledReported, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(tt.word, tt.v, tt.policy)
			assert.Equal(t, tt.want, d.Class, d.Class.String())
			assert.Equal(t, tt.fix, d.Correction)
		})
	}
}

func TestJoinWords(t *testing.T) {
	assert.Equal(t, "wordone", JoinWords("word one"))
	assert.Equal(t, "wordone", JoinWords("word-one"))
	assert.Equal(t, "wordonetwo", JoinWords("word\tone - two"))
}
