package lexis

import "strings"

// defaultK is the number of results returned when WithK is not called.
const defaultK = 10

// Search is a configurable query against an Index, built fluently:
//
//	results, err := index.NewSearch().
//		WithQuery("quick brown fox").
//		WithK(5).
//		Execute()
//
// A Search value is single-use per Execute call configuration; the Index it
// reads is immutable, so concurrent Search values never conflict.
type Search struct {
	index   *Index
	query   string
	k       int
	fusion  Fusion
	fuseErr error
}

// NewSearch creates a search builder over this index with default settings:
// k=10, weighted-sum fusion with equal weights.
func (ix *Index) NewSearch() *Search {
	return &Search{
		index:  ix,
		k:      defaultK,
		fusion: DefaultFusion(),
	}
}

// WithQuery sets the query text.
func (s *Search) WithQuery(query string) *Search {
	s.query = query
	return s
}

// WithK sets the maximum number of results. Zero is valid and yields an
// empty result list; a negative value makes Execute fail with ErrInvalidK.
func (s *Search) WithK(k int) *Search {
	s.k = k
	return s
}

// WithWeights sets the fusion weights for the TF-IDF and BM25 scores and
// selects weighted-sum fusion. The weights should sum to 1 to keep combined
// scores in [0, 1].
func (s *Search) WithWeights(tfidfWeight, bm25Weight float64) *Search {
	s.fusion, s.fuseErr = NewFusion(WeightedSumFusion, &FusionConfig{
		TFIDFWeight: tfidfWeight,
		BM25Weight:  bm25Weight,
	})
	return s
}

// WithFusion selects the fusion strategy by kind, with its default
// configuration.
func (s *Search) WithFusion(kind FusionKind) *Search {
	s.fusion, s.fuseErr = NewFusion(kind, nil)
	return s
}

// Execute runs the query and returns ranked results.
//
// Scoring is a pure function of (Index, query, k): the TF-IDF cosine and
// max-normalized BM25 vectors are fused into a combined score per document,
// and the top k documents are selected by score descending with ascending
// docID as tie-break. A query whose terms all miss the vocabulary is not an
// error; every document scores zero and the list comes back in docID order.
//
// An empty or whitespace-only query returns an empty result list with no
// error.
func (s *Search) Execute() ([]RankedResult, error) {
	if s.fuseErr != nil {
		return nil, s.fuseErr
	}
	if s.k < 0 {
		return nil, ErrInvalidK
	}
	if strings.TrimSpace(s.query) == "" {
		return []RankedResult{}, nil
	}

	tfidfScores := s.index.tfidf.score(s.query)
	bm25Scores := maxNormalize(s.index.bm25.score(s.query))
	combined := s.fusion.Combine(tfidfScores, bm25Scores)

	ranked := rankScores(combined, s.k)
	return s.index.assembleResults(ranked, combined), nil
}

// Search runs a query with default fusion settings and returns at most
// topK ranked results. It is shorthand for
// NewSearch().WithQuery(query).WithK(topK).Execute().
func (ix *Index) Search(query string, topK int) ([]RankedResult, error) {
	return ix.NewSearch().WithQuery(query).WithK(topK).Execute()
}
