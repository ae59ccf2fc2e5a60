// BM25 scoring model for the hybrid index.
//
// HOW BM25 WORKS:
// BM25 (Best Matching 25) is a probabilistic ranking function. For a query
// Q with terms {t1..tn} and document D:
//
//	score(D, Q) = sum over t of idf(t) * (tf * (k1+1)) / (tf + k1*(1 - b + b*docLen/avgDocLen))
//	idf(t)      = ln((N - df + 0.5) / (df + 0.5) + 1)
//
// where tf is the term frequency in D, df the number of documents
// containing t, N the corpus size, docLen the document's token count and
// avgDocLen the corpus average.
//
// PARAMETERS:
//   - k1 (1.5): term frequency saturation. Higher values let repeated terms
//     keep raising the score.
//   - b (0.75): document length normalization. 0 ignores length, 1 fully
//     normalizes.
//
// TOKENIZATION:
// This model splits on whitespace after case folding and nothing else — no
// stop word removal, no minimum length. It intentionally diverges from the
// TF-IDF tokenizer; see tokenizer.go.
//
// MEMORY LAYOUT:
// Inverted index (term -> docID bitmap) using roaring bitmaps, term
// frequencies per document, and per-document token counts. Document
// frequency is the cardinality of a term's bitmap.
package lexis

import "github.com/RoaringBitmap/roaring"

// BM25 ranking parameters.
const (
	// K1 controls term frequency saturation.
	K1 = 1.5
	// B controls document length normalization.
	B = 0.75
)

// bm25Index is the immutable probabilistic model. Built once by
// buildBM25Index; read-only thereafter, so concurrent scoring needs no
// locking.
type bm25Index struct {
	// inverted index: term -> docIDs containing it
	postings map[string]*roaring.Bitmap
	// term frequencies: term -> docID -> count
	tf map[string]map[uint32]int
	// docID -> number of tokens
	docLengths []int
	// average document length over the corpus
	avgDocLen float64

	numDocs   int
	tokenizer Tokenizer
}

// buildBM25Index indexes the corpus. Each document contributes the
// concatenation of title and content, tokenized by whitespace split.
func buildBM25Index(docs []Document) *bm25Index {
	ix := &bm25Index{
		postings:   make(map[string]*roaring.Bitmap),
		tf:         make(map[string]map[uint32]int),
		docLengths: make([]int, len(docs)),
		numDocs:    len(docs),
		tokenizer:  NewWhitespaceTokenizer(),
	}

	totalTokens := 0
	for i, doc := range docs {
		docID := uint32(i)
		tokens := ix.tokenizer.Tokenize(doc.text())
		ix.docLengths[i] = len(tokens)
		totalTokens += len(tokens)

		for _, t := range tokens {
			if ix.postings[t] == nil {
				ix.postings[t] = roaring.New()
			}
			ix.postings[t].Add(docID)
			if ix.tf[t] == nil {
				ix.tf[t] = make(map[uint32]int)
			}
			ix.tf[t][docID]++
		}
	}

	if ix.numDocs > 0 {
		ix.avgDocLen = float64(totalTokens) / float64(ix.numDocs)
	}

	return ix
}

// documentFrequency returns the number of documents containing term.
func (ix *bm25Index) documentFrequency(term string) int {
	bitmap := ix.postings[term]
	if bitmap == nil {
		return 0
	}
	return int(bitmap.GetCardinality())
}
