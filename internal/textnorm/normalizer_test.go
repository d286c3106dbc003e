package textnorm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type suffixStemmer struct{}

func (suffixStemmer) Stem(word string) string {
	return strings.TrimSuffix(word, "s")
}

func TestNormalize(t *testing.T) {
	n := New(Default(), Options{})

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"apostrophe remnant", "Trump's rally", "trump rally"},
		{"punctuation and digits", "Poll: 47% back Harris, 2024!", "poll harris"},
		{"stop words only", "and the of", ""},
		{"whitespace runs", "  Biden\tspeech\n\ntoday  ", "biden speech today"},
		{"non latin", "Zelenskyy говорит", "zelenskyy"},
		{"contraction t", "Don't stop", "don stop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.in))
		})
	}
}

func TestNormalizeOutputAlphabet(t *testing.T) {
	n := New(Default(), Options{})
	inputs := []string{
		"Melania Trump's new book — reviewed (2024)",
		"Ivanka & Jared: \"We're done\"",
		"Café société über alles",
		" non-breaking spaces",
	}

	for _, in := range inputs {
		out := n.Normalize(in)
		for _, r := range out {
			assert.True(t, r == ' ' || (r >= 'a' && r <= 'z'), "unexpected rune %q in %q", r, out)
		}
		for _, tok := range strings.Fields(out) {
			assert.False(t, n.StopWords().Contains(tok), "stop word %q survived", tok)
		}
	}
}

func TestNormalizeFoldAccents(t *testing.T) {
	plain := New(NewStopWords(), Options{})
	folded := New(NewStopWords(), Options{FoldAccents: true})

	assert.Equal(t, "caf soci t", plain.Normalize("Café société"))
	assert.Equal(t, "cafe societe", folded.Normalize("Café société"))
}

func TestNormalizeStemmer(t *testing.T) {
	n := New(NewStopWords("s"), Options{Stemmer: suffixStemmer{}})
	assert.Equal(t, "poll vote", n.Normalize("Polls votes"))
}

func TestNormalizeStemmerDropsStemmedStopWords(t *testing.T) {
	n := New(Default(), Options{Stemmer: suffixStemmer{}})

	out := n.Normalize("Wells Fargo bills ones tops sides")
	assert.Equal(t, "fargo", out)
	for _, tok := range strings.Fields(out) {
		assert.False(t, n.StopWords().Contains(tok), "stop word %q survived stemming", tok)
	}
}

func TestNormalizeSnowballDropsStemmedStopWords(t *testing.T) {
	stemmer, err := NewSnowballStemmer()
	require.NoError(t, err)
	defer stemmer.Close()

	n := New(Default(), Options{Stemmer: stemmer})
	out := n.Normalize("Wells Fargo bills ones tops sides")
	for _, tok := range strings.Fields(out) {
		assert.False(t, n.StopWords().Contains(tok), "stop word %q survived stemming", tok)
	}
	assert.NotContains(t, strings.Fields(out), "well")
}

func TestStopWords(t *testing.T) {
	require.Equal(t, 318, English().Len())

	d := Default()
	assert.True(t, d.Contains("s"))
	assert.True(t, d.Contains("t"))
	assert.True(t, d.Contains("the"))
	assert.False(t, d.Contains("u"))

	extended := d.Union("u")
	assert.True(t, extended.Contains("u"))
	assert.False(t, d.Contains("u"), "Union must not mutate the receiver")
	assert.Equal(t, d.Len()+1, extended.Len())

	empty := NewStopWords("", "")
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, []string{"a", "b"}, NewStopWords("b", "a").Words())
}
