// Package textnorm turns raw article text into the space-joined token strings
// the scorer works on.
package textnorm

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/tebeka/snowball"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Stemmer reduces a lower-case token to its stem.
type Stemmer interface {
	Stem(word string) string
}

type Options struct {
	// FoldAccents maps "café" to "cafe" before non-Latin characters are dropped.
	FoldAccents bool
	// Stemmer, when set, is applied to tokens that survive stop-word removal.
	Stemmer Stemmer
}

type Normalizer struct {
	stopWords StopWords
	opts      Options
}

func New(stopWords StopWords, opts Options) *Normalizer {
	return &Normalizer{stopWords: stopWords, opts: opts}
}

func (n *Normalizer) StopWords() StopWords {
	return n.stopWords
}

// Normalize replaces everything outside [A-Za-z] and whitespace with a space,
// lower-cases, splits on whitespace and drops stop words. With a stemmer, stop
// words are dropped both before and after stemming.
func (n *Normalizer) Normalize(raw string) string {
	return strings.Join(n.Tokens(raw), " ")
}

func (n *Normalizer) Tokens(raw string) []string {
	if raw == "" {
		return nil
	}
	if n.opts.FoldAccents {
		raw = foldAccents(raw)
	}

	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return ' '
		}
	}, raw)

	var tokens []string
	for _, word := range strings.Fields(cleaned) {
		if n.stopWords.Contains(word) {
			continue
		}
		if n.opts.Stemmer != nil {
			word = n.opts.Stemmer.Stem(word)
			if word == "" || n.stopWords.Contains(word) {
				continue
			}
		}
		tokens = append(tokens, word)
	}
	return tokens
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// SnowballStemmer wraps the English Snowball stemmer. It is not safe for
// concurrent use and must be closed.
type SnowballStemmer struct {
	stemmer *snowball.Stemmer
}

func NewSnowballStemmer() (*SnowballStemmer, error) {
	s, err := snowball.New("english")
	if err != nil {
		return nil, fmt.Errorf("failed to create stemmer: %w", err)
	}
	return &SnowballStemmer{stemmer: s}, nil
}

func (s *SnowballStemmer) Stem(word string) string {
	return s.stemmer.Stem(word)
}

func (s *SnowballStemmer) Close() {
	s.stemmer.Close()
}
