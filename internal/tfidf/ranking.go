package tfidf

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

type TermScore struct {
	Term  string
	Score float64
}

// TermScores is an ordered term -> score mapping, highest score first.
type TermScores []TermScore

func (ts TermScores) Get(term string) (float64, bool) {
	for _, s := range ts {
		if s.Term == term {
			return s.Score, true
		}
	}
	return 0, false
}

// MarshalJSON writes a JSON object whose key order is the slice order.
func (ts TermScores) MarshalJSON() ([]byte, error) {
	stream := jsonAPI.BorrowStream(nil)
	defer jsonAPI.ReturnStream(stream)

	writeTermScores(stream, ts)
	if stream.Error != nil {
		return nil, stream.Error
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

// CategoryTerms is the ranked vocabulary of one category. Documents is the
// number of documents carrying the label; it is not part of the JSON form.
type CategoryTerms struct {
	Category  string
	Documents int
	Terms     TermScores
}

// Ranking maps categories to their top terms, in category discovery order.
type Ranking []CategoryTerms

func (r Ranking) Categories() []string {
	out := make([]string, len(r))
	for i, c := range r {
		out[i] = c.Category
	}
	return out
}

func (r Ranking) Get(category string) (TermScores, bool) {
	for _, c := range r {
		if c.Category == category {
			return c.Terms, true
		}
	}
	return nil, false
}

// MarshalJSON writes {category: {term: score}} with categories and terms in
// slice order, so identical rankings serialize byte for byte identically.
func (r Ranking) MarshalJSON() ([]byte, error) {
	stream := jsonAPI.BorrowStream(nil)
	defer jsonAPI.ReturnStream(stream)

	stream.WriteObjectStart()
	for i, c := range r {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(c.Category)
		writeTermScores(stream, c.Terms)
	}
	stream.WriteObjectEnd()

	if stream.Error != nil {
		return nil, fmt.Errorf("failed to encode ranking: %w", stream.Error)
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

func writeTermScores(stream *jsoniter.Stream, ts TermScores) {
	stream.WriteObjectStart()
	for i, s := range ts {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(s.Term)
		stream.WriteFloat64(s.Score)
	}
	stream.WriteObjectEnd()
}
