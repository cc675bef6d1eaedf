package tokenizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(candidates []Candidate) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.Text)
	}
	return out
}

func TestSplitCamelCase(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"lower camel", "occurenceCount", []string{"occurence", "Count"}},
		{"upper camel", "TestMannager", []string{"Test", "Mannager"}},
		{"acronym run splits literally", "XMLParser", []string{"X", "M", "L", "Parser"}},
		{"trailing acronym", "userID", []string{"user", "I", "D"}},
		{"single word", "value", []string{"value"}},
		{"leading non letter", "_privateValue", []string{"_private", "Value"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitCamelCase(tt.in))
		})
	}
}

func TestSplitCamelCaseRoundTrip(t *testing.T) {
	inputs := []string{"a", "A", "ab", "aB", "AB", "heHasBookWithPages", "XMLHttpRequest", "lowercase", "UPPER"}
	for _, in := range inputs {
		assert.Equal(t, in, strings.Join(SplitCamelCase(in), ""), in)
	}
}

func TestSplitByDelimiters(t *testing.T) {
	assert.Equal(t, []string{"snake", "case", "value"}, SplitByDelimiters("snake_case_value"))
	assert.Equal(t, []string{"a", "b", "c", "d"}, SplitByDelimiters("a,b.c:d"))
	assert.Equal(t, []string{"user", "example", "com"}, SplitByDelimiters("user@example.com"))
	assert.Empty(t, SplitByDelimiters(",.:-;_!`@"))
	assert.Equal(t, []string{"spaced"}, SplitByDelimiters(" spaced ,"))
}

func TestCleanWord(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"text1", "text"},
		{"Alamofire's", "Alamofire"},
		{"don't", "dont"},
		{`"quoted"`, "quoted"},
		{`word\n`, "word"},
		{`\tindented`, "indented"},
		{"(imdex)", "imdex"},
		{"[String]", "String"},
		{"300", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanWord(tt.in))
		})
	}
}

func TestIsEnglishContraction(t *testing.T) {
	for _, w := range []string{
		"isn't", "aren't", "wasn't", "weren't", "don't", "doesn't", "didn't", "hasn't", "haven't",
		"hadn't", "can't", "won't", "I'm", "you're", "they're", "we're", "he's", "she's", "it's",
		"I've", "you've", "they've", "I'll", "you'll", "they'll", "I'd", "you'd", "they'd",
		"ain't", "y'all", "o'clock", "Isn’t",
	} {
		assert.True(t, IsEnglishContraction(w), w)
	}
	for _, w := range []string{"isnt", "cant", "Alamofire's", "foo'bar", "word"} {
		assert.False(t, IsEnglishContraction(w), w)
	}
}

func TestTokenizeIdentifier(t *testing.T) {
	got := Tokenize("occurenceCount")
	require.Len(t, got, 2)
	assert.Equal(t, "occurence", got[0].Text)
	assert.Equal(t, 0, got[0].Offset)
	assert.Equal(t, "Count", got[1].Text)
	assert.Equal(t, 9, got[1].Offset)

	assert.Equal(t, []string{"first", "Casse"}, texts(Tokenize("firstCasse")))
	assert.Equal(t, []string{"snake", "case"}, texts(Tokenize("snake_case")))
	assert.Equal(t, []string{"he", "Has1book", "With300pages"}, texts(Tokenize("heHas1bookWith300pages")))
}

func TestTokenizeFreeform(t *testing.T) {
	got := Tokenize(`"This is a misppeled text"`)
	assert.Equal(t, []string{"This", "is", "a", "misppeled", "text"}, texts(got))
	assert.Equal(t, "misppeled", got[3].Raw)
	assert.Equal(t, 11, got[3].Offset)
}

func TestTokenizeSkipsContractions(t *testing.T) {
	assert.Empty(t, Tokenize(`"isn't, aren't, wasn't, I'm, you're"`))
}

func TestTokenizeDropsEscapesAndSymbols(t *testing.T) {
	assert.Equal(t, []string{"first", "second"}, texts(Tokenize(`"first\nsecond"`)))
	assert.Empty(t, Tokenize(" * "))
	assert.Empty(t, Tokenize(`"123 456"`))
}
