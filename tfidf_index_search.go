package lexis

import "math"

// score computes the cosine similarity between the query and every document
// row. The returned slice is dense, indexed by docID, with every value in
// [0, 1]. Query terms outside the vocabulary contribute nothing; a query
// with no vocabulary terms scores zero everywhere.
func (ix *tfidfIndex) score(query string) []float64 {
	scores := make([]float64, ix.numDocs)

	// Query term frequencies over the fixed vocabulary.
	qtf := make(map[int]int)
	for _, tok := range ix.tokenizer.Tokenize(query) {
		if col, ok := ix.vocabulary[tok]; ok {
			qtf[col]++
		}
	}
	if len(qtf) == 0 {
		return scores
	}

	// Weight and L2-normalize the query vector. idf values come from the
	// index; the vocabulary never grows at query time.
	var norm float64
	qweights := make(map[int]float64, len(qtf))
	for col, tf := range qtf {
		w := float64(tf) * ix.idf[col]
		qweights[col] = w
		norm += w * w
	}
	norm = math.Sqrt(norm)

	// Cosine is a plain dot product here: both sides are unit length.
	// Walk only the postings of the query's columns.
	for col, w := range qweights {
		w /= norm
		weights := ix.weights[col]
		for iter := ix.postings[col].Iterator(); iter.HasNext(); {
			docID := iter.Next()
			scores[docID] += w * weights[docID]
		}
	}

	return scores
}
