package tfidf

import (
	"fmt"
	"math"
)

// Scope selects the documents IDF is computed over.
type Scope string

const (
	// ScopeCorpus computes one IDF over every document in the corpus.
	ScopeCorpus Scope = "corpus"
	// ScopeCategory computes IDF over the documents of the scored category only.
	ScopeCategory Scope = "category"
)

func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case ScopeCorpus, ScopeCategory:
		return Scope(s), nil
	default:
		return "", fmt.Errorf("unknown IDF scope %q (want %q or %q)", s, ScopeCorpus, ScopeCategory)
	}
}

// IDF is built once per scope and never mutated afterwards.
type IDF struct {
	size   int
	df     map[string]int
	values map[string]float64
}

// ComputeIDF returns ln(|S| / (1 + DF(term))) for every term in docs, where DF
// counts the documents containing the term at least once. Values are negative
// for terms present in more than half of the documents; they are kept as is.
func ComputeIDF(docs [][]string) IDF {
	df := make(map[string]int)
	for _, tokens := range docs {
		seen := make(map[string]struct{}, len(tokens))
		for _, t := range tokens {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			df[t]++
		}
	}

	values := make(map[string]float64, len(df))
	for term, n := range df {
		values[term] = idfValue(len(docs), n)
	}
	return IDF{size: len(docs), df: df, values: values}
}

func idfValue(size, df int) float64 {
	return math.Log(float64(size) / float64(1+df))
}

// Value returns the IDF of term. Terms never seen in scope report false.
func (idf IDF) Value(term string) (float64, bool) {
	v, ok := idf.values[term]
	return v, ok
}

func (idf IDF) DF(term string) int {
	return idf.df[term]
}

// Size is |S|, the number of documents in scope.
func (idf IDF) Size() int {
	return idf.size
}

func (idf IDF) Len() int {
	return len(idf.values)
}
