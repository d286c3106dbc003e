// Package drift compares two rankings, e.g. the same feed scored a week apart
// or one corpus scored with both IDF scopes.
package drift

import (
	"math"
	"sort"

	"github.com/julienpequegnot/newsterms/internal/tfidf"
)

// Absent is the rank of a term missing from one side.
const Absent = -1

type Change struct {
	Term       string
	Before     float64
	After      float64
	RankBefore int
	RankAfter  int
}

func (c Change) Delta() float64 {
	return c.After - c.Before
}

type Category struct {
	Category string
	Entered  []Change // in after only, by rank
	Left     []Change // in before only, by rank
	Kept     []Change // in both, largest score change first
}

// Compare reports per category which terms entered, left or stayed in the
// top list. Categories follow after's order; those only in before come last.
func Compare(before, after tfidf.Ranking) []Category {
	var order []string
	seen := make(map[string]bool)
	for _, r := range []tfidf.Ranking{after, before} {
		for _, c := range r {
			if !seen[c.Category] {
				seen[c.Category] = true
				order = append(order, c.Category)
			}
		}
	}

	out := make([]Category, 0, len(order))
	for _, name := range order {
		b, _ := before.Get(name)
		a, _ := after.Get(name)
		out = append(out, compareTerms(name, b, a))
	}
	return out
}

func compareTerms(category string, before, after tfidf.TermScores) Category {
	beforeRank := ranks(before)
	afterRank := ranks(after)
	d := Category{Category: category}

	for i, s := range after {
		j, ok := beforeRank[s.Term]
		if !ok {
			d.Entered = append(d.Entered, Change{Term: s.Term, After: s.Score, RankBefore: Absent, RankAfter: i})
			continue
		}
		d.Kept = append(d.Kept, Change{Term: s.Term, Before: before[j].Score, After: s.Score, RankBefore: j, RankAfter: i})
	}
	for j, s := range before {
		if _, ok := afterRank[s.Term]; !ok {
			d.Left = append(d.Left, Change{Term: s.Term, Before: s.Score, RankBefore: j, RankAfter: Absent})
		}
	}

	sort.SliceStable(d.Kept, func(i, j int) bool {
		return math.Abs(d.Kept[i].Delta()) > math.Abs(d.Kept[j].Delta())
	})
	return d
}

func ranks(ts tfidf.TermScores) map[string]int {
	m := make(map[string]int, len(ts))
	for i, s := range ts {
		m[s.Term] = i
	}
	return m
}
