package tfidf

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func scenarioCorpus() *Corpus {
	return NewCorpus([]Document{
		{Text: "trump wins election", Category: "A"},
		{Text: "trump election poll", Category: "A"},
		{Text: "biden speech today", Category: "B"},
	})
}

func TestScenarioDocumentFrequency(t *testing.T) {
	c := scenarioCorpus()
	idf := ComputeIDF(c.allTokens())

	assert.Equal(t, 3, idf.Size())
	assert.Equal(t, 2, idf.DF("trump"))
	assert.Equal(t, 2, idf.DF("election"))
	assert.Equal(t, 1, idf.DF("biden"))

	v, ok := idf.Value("biden")
	require.True(t, ok)
	assert.InDelta(t, math.Log(1.5), v, tolerance)
	assert.InDelta(t, 0.405, v, 0.001)
}

func TestScenarioTopTerms(t *testing.T) {
	ranking := NewScorer(10, ScopeCorpus).Score(scenarioCorpus())

	require.Equal(t, []string{"A", "B"}, ranking.Categories())

	b, ok := ranking.Get("B")
	require.True(t, ok)
	require.NotEmpty(t, b)
	assert.Equal(t, "biden", b[0].Term)
	assert.InDelta(t, math.Log(1.5)/3, b[0].Score, tolerance)
	assert.InDelta(t, 0.135, b[0].Score, 0.001)

	a, _ := ranking.Get("A")
	assert.Equal(t, []string{"wins", "poll", "trump", "election"}, terms(a))
	assert.InDelta(t, math.Log(1.5)/6, a[0].Score, tolerance)
	assert.InDelta(t, 0, a[2].Score, tolerance)
}

func TestCategoryScopeMatchesPerCategoryIDF(t *testing.T) {
	ranking := NewScorer(10, ScopeCategory).Score(scenarioCorpus())

	b, _ := ranking.Get("B")
	require.Len(t, b, 3)
	// |S| = 1, DF = 1: ln(1/2) for every term of B.
	assert.InDelta(t, math.Log(0.5)/3, b[0].Score, tolerance)
	assert.Equal(t, []string{"biden", "speech", "today"}, terms(b))
}

func TestDocumentTF(t *testing.T) {
	tf := DocumentTF(strings.Fields("trump trump rally"))
	assert.InDelta(t, 2.0/3, tf.Get("trump"), tolerance)
	assert.InDelta(t, 1.0/3, tf.Get("rally"), tolerance)
	assert.Equal(t, []string{"trump", "rally"}, tf.Terms())

	empty := DocumentTF(nil)
	assert.Equal(t, 0, empty.Len())
}

func TestCategoryTFIsMeanOfDocumentTF(t *testing.T) {
	docs := [][]string{
		strings.Fields("trump wins election"),
		strings.Fields("trump election poll poll"),
		strings.Fields("harris rally trump"),
	}
	avg := CategoryTF(docs)

	for _, term := range avg.Terms() {
		var sum float64
		for _, d := range docs {
			sum += DocumentTF(d).Get(term)
		}
		assert.InDelta(t, sum/float64(len(docs)), avg.Get(term), tolerance, "term %q", term)
	}
}

func TestCategoryTFSkipsEmptyDocuments(t *testing.T) {
	avg := CategoryTF([][]string{nil, strings.Fields("biden speech"), {}})
	assert.InDelta(t, 0.5, avg.Get("biden"), tolerance)

	none := CategoryTF([][]string{nil, {}})
	assert.Equal(t, 0, none.Len())
}

func TestEmptyDocumentBoundary(t *testing.T) {
	c := NewCorpus([]Document{
		{Text: "", Category: "A"},
		{Text: "trump rally", Category: "A"},
		{Text: "   ", Category: "B"},
	})

	var ranking Ranking
	require.NotPanics(t, func() {
		ranking = NewScorer(10, ScopeCorpus).Score(c)
	})

	a, _ := ranking.Get("A")
	assert.Equal(t, []string{"trump", "rally"}, terms(a))
	// The empty document still counts towards |S|: ln(3/2) * 0.5.
	assert.InDelta(t, math.Log(1.5)*0.5, a[0].Score, tolerance)

	b, ok := ranking.Get("B")
	assert.True(t, ok)
	assert.Empty(t, b)
}

func TestIDFMonotonicInDF(t *testing.T) {
	docs := [][]string{
		{"a", "b", "c", "d"},
		{"a", "b", "c"},
		{"a", "b"},
		{"a"},
	}
	idf := ComputeIDF(docs)

	prev := math.Inf(1)
	for _, term := range []string{"d", "c", "b", "a"} {
		v, _ := idf.Value(term)
		assert.LessOrEqual(t, v, prev, "term %q", term)
		prev = v
	}

	a, _ := idf.Value("a")
	assert.Less(t, a, 0.0, "terms in most documents get a negative IDF")

	_, ok := idf.Value("missing")
	assert.False(t, ok)
}

func TestIDFCountsContainmentNotOccurrences(t *testing.T) {
	idf := ComputeIDF([][]string{{"poll", "poll", "poll"}, {"vote"}})
	assert.Equal(t, 1, idf.DF("poll"))
}

func TestTopKLengthAndOrder(t *testing.T) {
	docs := []Document{
		{Text: "alpha bravo charlie delta echo foxtrot golf hotel india juliet kilo lima mike", Category: "long"},
		{Text: "alpha alpha bravo", Category: "long"},
		{Text: "zulu", Category: "other"},
	}
	ranking := NewScorer(10, ScopeCorpus).Score(NewCorpus(docs))

	for _, c := range ranking {
		assert.LessOrEqual(t, len(c.Terms), 10)
		for i := 1; i < len(c.Terms); i++ {
			assert.GreaterOrEqual(t, c.Terms[i-1].Score, c.Terms[i].Score)
		}
	}
	long, _ := ranking.Get("long")
	assert.Len(t, long, 10)
}

func TestTopKStableTies(t *testing.T) {
	in := TermScores{{"b", 1}, {"a", 2}, {"c", 1}, {"d", 2}}
	out := TopK(in, 3)
	assert.Equal(t, []string{"a", "d", "b"}, terms(out))
	assert.Equal(t, "b", in[0].Term, "input must not be reordered")
}

func TestScoreCategoriesUnknownCategory(t *testing.T) {
	ranking := NewScorer(10, ScopeCorpus).ScoreCategories(scenarioCorpus(), []string{"B", "missing"})

	require.Equal(t, []string{"B", "missing"}, ranking.Categories())
	missing, _ := ranking.Get("missing")
	assert.Empty(t, missing)
	assert.Equal(t, 0, ranking[1].Documents)
}

func TestScoreCategoriesRepeatedLabels(t *testing.T) {
	s := NewScorer(10, ScopeCorpus)
	ranking := s.ScoreCategories(scenarioCorpus(), []string{"B", "A", "B", "missing", "A"})

	require.Equal(t, []string{"B", "A", "missing"}, ranking.Categories())
	assert.Equal(t, s.Score(scenarioCorpus())[0].Terms, ranking[1].Terms)
}

func TestScoreIsIdempotent(t *testing.T) {
	c := scenarioCorpus()
	s := NewScorer(10, ScopeCorpus)

	first, err := s.Score(c).MarshalJSON()
	require.NoError(t, err)
	second, err := s.Score(c).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestRankingJSONOrder(t *testing.T) {
	r := Ranking{
		{Category: "polls", Terms: TermScores{{"zeta", 0.5}, {"alpha", 0.25}}},
		{Category: "campaign", Terms: TermScores{{"rally", -0.125}}},
		{Category: "empty"},
	}

	out, err := r.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"polls":{"zeta":0.5,"alpha":0.25},"campaign":{"rally":-0.125},"empty":{}}`, string(out))
}

func TestCorpusCopiesInput(t *testing.T) {
	docs := []Document{{Text: "biden", Category: "B"}}
	c := NewCorpus(docs)
	docs[0].Text = "changed"

	assert.Equal(t, "biden", c.Document(0).Text)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 1, c.CategorySize("B"))
}

func TestParseScope(t *testing.T) {
	s, err := ParseScope("corpus")
	require.NoError(t, err)
	assert.Equal(t, ScopeCorpus, s)

	s, err = ParseScope("category")
	require.NoError(t, err)
	assert.Equal(t, ScopeCategory, s)

	_, err = ParseScope("global")
	assert.Error(t, err)
}

func terms(ts TermScores) []string {
	out := make([]string, len(ts))
	for i, s := range ts {
		out[i] = s.Term
	}
	return out
}
