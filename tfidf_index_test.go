package lexis

import (
	"math"
	"testing"
)

const floatTolerance = 1e-9

// TestBuildTFIDFIndexVocabulary tests that the vocabulary is built from
// word-tokenized text with stop words excluded
func TestBuildTFIDFIndexVocabulary(t *testing.T) {
	docs := []Document{
		{Title: "Feline", Content: "the cat sat on the mat"},
		{Title: "Canine", Content: "the dog ran in the park"},
	}

	ix := buildTFIDFIndex(docs)

	for _, term := range []string{"cat", "sat", "mat", "dog", "ran", "park", "feline", "canine"} {
		if _, ok := ix.vocabulary[term]; !ok {
			t.Errorf("vocabulary missing term %q", term)
		}
	}
	for _, term := range []string{"the", "on", "in"} {
		if _, ok := ix.vocabulary[term]; ok {
			t.Errorf("vocabulary contains stop word %q", term)
		}
	}
}

// TestSelectVocabulary tests the frequency cap and its tie-break rule
func TestSelectVocabulary(t *testing.T) {
	tests := []struct {
		name   string
		totals map[string]int
		limit  int
		want   []string // expected terms in column order
	}{
		{
			name:   "under the cap keeps everything",
			totals: map[string]int{"cat": 1, "dog": 2},
			limit:  5,
			want:   []string{"cat", "dog"},
		},
		{
			name:   "cap keeps highest frequency",
			totals: map[string]int{"rare": 1, "common": 9, "mid": 4},
			limit:  2,
			want:   []string{"common", "mid"},
		},
		{
			name:   "frequency ties break lexicographically ascending",
			totals: map[string]int{"zebra": 3, "apple": 3, "mango": 3},
			limit:  2,
			want:   []string{"apple", "mango"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vocab := selectVocabulary(tt.totals, tt.limit)
			if len(vocab) != len(tt.want) {
				t.Fatalf("vocabulary size = %d, want %d", len(vocab), len(tt.want))
			}
			for col, term := range tt.want {
				got, ok := vocab[term]
				if !ok {
					t.Errorf("vocabulary missing term %q", term)
					continue
				}
				if got != col {
					t.Errorf("column for %q = %d, want %d", term, got, col)
				}
			}
		})
	}
}

// TestTFIDFIndexIDF tests the smoothed idf formula ln((1+N)/(1+df)) + 1
func TestTFIDFIndexIDF(t *testing.T) {
	docs := []Document{
		{Content: "cat shared"},
		{Content: "dog shared"},
		{Content: "bird shared"},
	}

	ix := buildTFIDFIndex(docs)

	// "shared" appears in all 3 docs, "cat" in 1.
	wantShared := math.Log(4.0/4.0) + 1
	wantCat := math.Log(4.0/2.0) + 1

	if got := ix.idf[ix.vocabulary["shared"]]; math.Abs(got-wantShared) > floatTolerance {
		t.Errorf("idf(shared) = %v, want %v", got, wantShared)
	}
	if got := ix.idf[ix.vocabulary["cat"]]; math.Abs(got-wantCat) > floatTolerance {
		t.Errorf("idf(cat) = %v, want %v", got, wantCat)
	}
}

// TestTFIDFIndexRowNormalization tests that every non-empty document row
// has unit L2 norm
func TestTFIDFIndexRowNormalization(t *testing.T) {
	docs := []Document{
		{Title: "One", Content: "cat sat mat"},
		{Title: "Two", Content: "dog dog ran park garden"},
		{Title: "Three", Content: "cricket match stadium crowd cheering loudly"},
	}

	ix := buildTFIDFIndex(docs)

	for docID := range docs {
		var norm float64
		for col := range ix.weights {
			if w, ok := ix.weights[col][uint32(docID)]; ok {
				norm += w * w
			}
		}
		if math.Abs(norm-1) > floatTolerance {
			t.Errorf("doc %d: squared row norm = %v, want 1", docID, norm)
		}
	}
}

// TestTFIDFScoreRange tests that cosine scores stay in [0, 1]
func TestTFIDFScoreRange(t *testing.T) {
	docs := []Document{
		{Content: "cricket match in the stadium"},
		{Content: "cricket players won the cricket match"},
		{Content: "stock market fell sharply"},
	}

	ix := buildTFIDFIndex(docs)
	scores := ix.score("cricket match")

	if len(scores) != len(docs) {
		t.Fatalf("len(scores) = %d, want %d", len(scores), len(docs))
	}
	for i, s := range scores {
		if s < 0 || s > 1+floatTolerance {
			t.Errorf("score[%d] = %v, outside [0, 1]", i, s)
		}
	}
	if scores[0] <= 0 || scores[1] <= 0 {
		t.Error("documents containing query terms must score positive")
	}
	if scores[2] != 0 {
		t.Errorf("score[2] = %v, want 0 for non-matching document", scores[2])
	}
}

// TestTFIDFScoreIdenticalDocument tests that a query matching a document's
// full token stream has cosine similarity 1
func TestTFIDFScoreIdenticalDocument(t *testing.T) {
	docs := []Document{
		{Content: "cricket stadium crowd"},
		{Content: "stock market report"},
	}

	ix := buildTFIDFIndex(docs)
	scores := ix.score("cricket stadium crowd")

	if math.Abs(scores[0]-1) > floatTolerance {
		t.Errorf("score[0] = %v, want 1 for identical token stream", scores[0])
	}
}

// TestTFIDFScoreOutOfVocabulary tests that unknown query terms are dropped
// rather than grown into the vocabulary
func TestTFIDFScoreOutOfVocabulary(t *testing.T) {
	docs := []Document{
		{Content: "cat sat mat"},
		{Content: "dog ran park"},
	}

	ix := buildTFIDFIndex(docs)
	vocabBefore := len(ix.vocabulary)

	scores := ix.score("quantum entanglement")
	for i, s := range scores {
		if s != 0 {
			t.Errorf("score[%d] = %v, want 0 for fully out-of-vocabulary query", i, s)
		}
	}

	if len(ix.vocabulary) != vocabBefore {
		t.Errorf("vocabulary grew from %d to %d at query time", vocabBefore, len(ix.vocabulary))
	}
}
