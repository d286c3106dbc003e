package tfidf

import (
	"log/slog"
	"sort"
)

const DefaultTopK = 10

type Scorer struct {
	TopK  int
	Scope Scope
}

func NewScorer(topK int, scope Scope) Scorer {
	return Scorer{TopK: topK, Scope: scope}
}

// Score ranks every category of the corpus in first-appearance order.
func (s Scorer) Score(c *Corpus) Ranking {
	return s.ScoreCategories(c, c.Categories())
}

// ScoreCategories ranks the given categories. A category with no documents
// gets an empty term list. Repeated labels are ranked once, at their first
// position.
func (s Scorer) ScoreCategories(c *Corpus, categories []string) Ranking {
	scope := s.Scope
	if scope == "" {
		scope = ScopeCorpus
	}

	var corpusIDF IDF
	if scope == ScopeCorpus {
		corpusIDF = ComputeIDF(c.allTokens())
		slog.Debug("computed corpus IDF", "documents", corpusIDF.Size(), "terms", corpusIDF.Len())
	}

	ranking := make(Ranking, 0, len(categories))
	seen := make(map[string]bool, len(categories))
	for _, category := range categories {
		if seen[category] {
			continue
		}
		seen[category] = true
		docs := c.categoryTokens(category)

		idf := corpusIDF
		if scope == ScopeCategory {
			idf = ComputeIDF(docs)
		}

		tf := CategoryTF(docs)
		if degenerate := countEmpty(docs); degenerate > 0 {
			slog.Debug("skipped empty documents", "category", category, "count", degenerate)
		}

		ranking = append(ranking, CategoryTerms{
			Category:  category,
			Documents: len(docs),
			Terms:     TopK(score(tf, idf), s.topK()),
		})
	}
	return ranking
}

func (s Scorer) topK() int {
	if s.TopK <= 0 {
		return DefaultTopK
	}
	return s.TopK
}

func score(tf *TermFrequency, idf IDF) TermScores {
	scores := make(TermScores, 0, tf.Len())
	for _, term := range tf.order {
		v, ok := idf.Value(term)
		if !ok {
			continue
		}
		scores = append(scores, TermScore{Term: term, Score: tf.values[term] * v})
	}
	return scores
}

// TopK sorts scores descending, keeping the incoming order for ties, and
// returns at most k of them.
func TopK(scores TermScores, k int) TermScores {
	out := make(TermScores, len(scores))
	copy(out, scores)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if k >= 0 && len(out) > k {
		out = out[:k]
	}
	return out
}

func countEmpty(docs [][]string) int {
	n := 0
	for _, d := range docs {
		if len(d) == 0 {
			n++
		}
	}
	return n
}
