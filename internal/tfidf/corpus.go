// Package tfidf scores the distinctive vocabulary of each category in a
// corpus of normalized documents.
package tfidf

import "strings"

// Document is one input record. Text holds normalized, space-joined tokens.
type Document struct {
	Text     string
	Category string
}

// Corpus is an immutable, ordered collection of documents.
type Corpus struct {
	docs       []Document
	tokens     [][]string
	categories []string
	byCategory map[string][]int
}

func NewCorpus(docs []Document) *Corpus {
	c := &Corpus{
		docs:       make([]Document, len(docs)),
		tokens:     make([][]string, len(docs)),
		byCategory: make(map[string][]int),
	}
	copy(c.docs, docs)

	for i, d := range c.docs {
		c.tokens[i] = strings.Fields(d.Text)
		if _, ok := c.byCategory[d.Category]; !ok {
			c.categories = append(c.categories, d.Category)
		}
		c.byCategory[d.Category] = append(c.byCategory[d.Category], i)
	}
	return c
}

func (c *Corpus) Len() int {
	return len(c.docs)
}

func (c *Corpus) Document(i int) Document {
	return c.docs[i]
}

// Categories returns labels in order of first appearance.
func (c *Corpus) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// CategorySize is the number of documents labelled category, degenerate ones included.
func (c *Corpus) CategorySize(category string) int {
	return len(c.byCategory[category])
}

func (c *Corpus) allTokens() [][]string {
	return c.tokens
}

func (c *Corpus) categoryTokens(category string) [][]string {
	idx := c.byCategory[category]
	out := make([][]string, len(idx))
	for i, di := range idx {
		out[i] = c.tokens[di]
	}
	return out
}
