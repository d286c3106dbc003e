package tfidf

// TermFrequency maps terms to frequencies and remembers the order in which
// terms were first seen.
type TermFrequency struct {
	order  []string
	values map[string]float64
}

func newTermFrequency() *TermFrequency {
	return &TermFrequency{values: make(map[string]float64)}
}

func (tf *TermFrequency) add(term string, v float64) {
	if _, ok := tf.values[term]; !ok {
		tf.order = append(tf.order, term)
	}
	tf.values[term] += v
}

func (tf *TermFrequency) Get(term string) float64 {
	return tf.values[term]
}

// Terms returns terms in discovery order.
func (tf *TermFrequency) Terms() []string {
	out := make([]string, len(tf.order))
	copy(out, tf.order)
	return out
}

func (tf *TermFrequency) Len() int {
	return len(tf.order)
}

// DocumentTF computes count(term)/len(tokens). A document without tokens
// yields an empty map.
func DocumentTF(tokens []string) *TermFrequency {
	tf := newTermFrequency()
	if len(tokens) == 0 {
		return tf
	}
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		if counts[t] == 0 {
			tf.order = append(tf.order, t)
		}
		counts[t]++
	}
	total := float64(len(tokens))
	for term, n := range counts {
		tf.values[term] = float64(n) / total
	}
	return tf
}

// CategoryTF averages per-document TF over the non-empty documents given.
// Terms absent from a document count as zero for that document. Documents
// without tokens are left out of the denominator.
func CategoryTF(docs [][]string) *TermFrequency {
	sum := newTermFrequency()
	nonEmpty := 0
	for _, tokens := range docs {
		if len(tokens) == 0 {
			continue
		}
		nonEmpty++
		dtf := DocumentTF(tokens)
		for _, term := range dtf.order {
			sum.add(term, dtf.values[term])
		}
	}
	if nonEmpty == 0 {
		return sum
	}
	for term, v := range sum.values {
		sum.values[term] = v / float64(nonEmpty)
	}
	return sum
}
