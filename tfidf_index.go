// TF-IDF scoring model for the hybrid index.
//
// HOW TF-IDF WORKS:
// Each document is represented as a sparse vector over a bounded vocabulary.
// For term t and document d:
//   - tf(t,d): raw count of t in d
//   - idf(t) = ln((1+N) / (1+df(t))) + 1   (smoothed, always > 0)
//   - weight(t,d) = tf(t,d) * idf(t), then the whole row is L2-normalized
//
// Query scoring is the cosine similarity between the L2-normalized query
// vector and each document row. Since every vector is non-negative and unit
// length, scores land in [0, 1].
//
// VOCABULARY SELECTION:
// The vocabulary is capped at maxVocabulary terms, chosen by corpus-wide
// frequency (descending) with lexicographic ascending tie-break. Column
// indexes are then assigned in lexicographic order of the surviving terms.
// Both rules are fixed so that identical corpora always produce identical
// vocabularies, columns, and scores.
//
// MEMORY LAYOUT:
// Rows are stored column-major: one roaring bitmap of document IDs per
// column plus a weight map per column. Query scoring walks only the
// postings of the query's terms, so cost is bounded by query terms times
// matching documents, not vocabulary size.
package lexis

import (
	"math"
	"sort"

	"github.com/RoaringBitmap/roaring"
)

// maxVocabulary caps the number of indexed TF-IDF terms.
const maxVocabulary = 5000

// tfidfIndex is the immutable vector-space model. Built once by
// buildTFIDFIndex; read-only thereafter, so concurrent scoring needs no
// locking.
type tfidfIndex struct {
	// term -> column index
	vocabulary map[string]int
	// column -> smoothed inverse document frequency
	idf []float64
	// column -> documents whose row has a non-zero weight in this column
	postings []*roaring.Bitmap
	// column -> docID -> L2-normalized tf-idf weight
	weights []map[uint32]float64

	numDocs   int
	tokenizer Tokenizer
}

// buildTFIDFIndex indexes the corpus. Each document contributes the
// concatenation of title and content as a single string.
func buildTFIDFIndex(docs []Document) *tfidfIndex {
	ix := &tfidfIndex{
		vocabulary: make(map[string]int),
		numDocs:    len(docs),
		tokenizer:  NewWordTokenizer(),
	}

	// Per-document term counts plus corpus-wide totals for vocabulary
	// selection.
	counts := make([]map[string]int, len(docs))
	totals := make(map[string]int)
	for i, doc := range docs {
		tc := make(map[string]int)
		for _, tok := range ix.tokenizer.Tokenize(doc.text()) {
			tc[tok]++
			totals[tok]++
		}
		counts[i] = tc
	}

	ix.vocabulary = selectVocabulary(totals, maxVocabulary)

	cols := len(ix.vocabulary)
	ix.idf = make([]float64, cols)
	ix.postings = make([]*roaring.Bitmap, cols)
	ix.weights = make([]map[uint32]float64, cols)
	for col := range ix.postings {
		ix.postings[col] = roaring.New()
		ix.weights[col] = make(map[uint32]float64)
	}

	// Document frequency and smoothed idf per column.
	n := float64(len(docs))
	df := make([]int, cols)
	for _, tc := range counts {
		for term := range tc {
			if col, ok := ix.vocabulary[term]; ok {
				df[col]++
			}
		}
	}
	for col := range df {
		ix.idf[col] = math.Log((1+n)/(1+float64(df[col]))) + 1
	}

	// Raw weights, then L2 row normalization into the column-major store.
	for docID, tc := range counts {
		var norm float64
		row := make(map[int]float64, len(tc))
		for term, tf := range tc {
			col, ok := ix.vocabulary[term]
			if !ok {
				continue
			}
			w := float64(tf) * ix.idf[col]
			row[col] = w
			norm += w * w
		}
		if norm == 0 {
			continue // no vocabulary terms: all-zero row
		}
		norm = math.Sqrt(norm)
		for col, w := range row {
			ix.postings[col].Add(uint32(docID))
			ix.weights[col][uint32(docID)] = w / norm
		}
	}

	return ix
}

// selectVocabulary keeps the top limit terms by corpus frequency, ties
// broken lexicographically ascending, and assigns column indexes in
// lexicographic order of the survivors.
func selectVocabulary(totals map[string]int, limit int) map[string]int {
	terms := make([]string, 0, len(totals))
	for term := range totals {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if totals[terms[i]] != totals[terms[j]] {
			return totals[terms[i]] > totals[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > limit {
		terms = terms[:limit]
	}
	sort.Strings(terms)

	vocab := make(map[string]int, len(terms))
	for col, term := range terms {
		vocab[term] = col
	}
	return vocab
}
