package lexis

import "math"

// score computes raw BM25 scores for the query against every document. The
// returned slice is dense, indexed by docID, non-negative and unbounded.
// Query terms absent from the corpus contribute zero — never negative
// infinity. Repeated query terms are scored once per occurrence, matching
// the summation over query terms in the ranking function.
func (ix *bm25Index) score(query string) []float64 {
	scores := make([]float64, ix.numDocs)
	if ix.avgDocLen == 0 {
		return scores // empty corpus text: nothing can match
	}

	n := float64(ix.numDocs)
	for _, t := range ix.tokenizer.Tokenize(query) {
		bitmap := ix.postings[t]
		if bitmap == nil {
			continue
		}
		df := float64(bitmap.GetCardinality())
		idf := math.Log((n-df+0.5)/(df+0.5) + 1)

		for iter := bitmap.Iterator(); iter.HasNext(); {
			docID := iter.Next()
			tf := float64(ix.tf[t][docID])
			docLen := float64(ix.docLengths[docID])
			scores[docID] += idf * (tf * (K1 + 1)) / (tf + K1*(1-B+B*docLen/ix.avgDocLen))
		}
	}

	return scores
}

// maxNormalize rescales scores into [0, 1] by dividing by the maximum.
// When the maximum is zero the slice is returned untouched: an all-zero
// score vector must stay all-zero rather than turn into NaN.
func maxNormalize(scores []float64) []float64 {
	max := 0.0
	for _, s := range scores {
		if s > max {
			max = s
		}
	}
	if max == 0 {
		return scores
	}
	for i := range scores {
		scores[i] /= max
	}
	return scores
}
