package lexis

import "errors"

// Errors reported at the API boundary.
var (
	// ErrEmptyCorpus is returned by BuildIndex when given no documents.
	// Searching an empty index would be meaningless, so the condition is
	// surfaced instead of tolerated.
	ErrEmptyCorpus = errors.New("lexis: empty corpus")

	// ErrInvalidK is returned by search operations when k is negative.
	ErrInvalidK = errors.New("lexis: negative top-k")
)

// Index bundles the corpus with both scoring models. It is built once by
// BuildIndex and read-only thereafter: no add, no remove, no rebuild.
// Because nothing mutates after construction, an Index may be shared by any
// number of concurrent searches without locking.
type Index struct {
	docs  []Document
	tfidf *tfidfIndex
	bm25  *bm25Index
}

// BuildIndex indexes the corpus and returns an immutable Index.
//
// Both models are built from the same document ordering, so docID is a
// stable shared key: row i of the TF-IDF matrix and entry i of the BM25
// tables describe docs[i].
//
// Returns ErrEmptyCorpus when docs is empty.
//
// Example:
//
//	index, err := lexis.BuildIndex(docs)
//	if err != nil { ... }
//	results, err := index.Search("cat mat", 5)
func BuildIndex(docs []Document) (*Index, error) {
	if len(docs) == 0 {
		return nil, ErrEmptyCorpus
	}

	corpus := make([]Document, len(docs))
	copy(corpus, docs)

	return &Index{
		docs:  corpus,
		tfidf: buildTFIDFIndex(corpus),
		bm25:  buildBM25Index(corpus),
	}, nil
}

// Len returns the number of documents in the corpus.
func (ix *Index) Len() int {
	return len(ix.docs)
}

// Document returns the document with the given ID. The ID is the ordinal
// position in the slice passed to BuildIndex.
func (ix *Index) Document(docID int) Document {
	return ix.docs[docID]
}
