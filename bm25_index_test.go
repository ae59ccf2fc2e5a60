package lexis

import (
	"math"
	"testing"
)

// TestBuildBM25IndexStatistics tests per-document and corpus-level
// statistics from the whitespace tokenization
func TestBuildBM25IndexStatistics(t *testing.T) {
	docs := []Document{
		{Title: "One", Content: "the cat sat"},          // 4 tokens with title
		{Title: "Two", Content: "the dog ran far away"}, // 6 tokens with title
	}

	ix := buildBM25Index(docs)

	if ix.numDocs != 2 {
		t.Errorf("numDocs = %d, want 2", ix.numDocs)
	}
	if ix.docLengths[0] != 4 {
		t.Errorf("docLengths[0] = %d, want 4", ix.docLengths[0])
	}
	if ix.docLengths[1] != 6 {
		t.Errorf("docLengths[1] = %d, want 6", ix.docLengths[1])
	}
	if want := 5.0; ix.avgDocLen != want {
		t.Errorf("avgDocLen = %v, want %v", ix.avgDocLen, want)
	}
}

// TestBM25IndexStopWordsKept tests that the BM25 tokenization keeps stop
// words, unlike the TF-IDF path
func TestBM25IndexStopWordsKept(t *testing.T) {
	docs := []Document{
		{Content: "the cat sat on the mat"},
	}

	ix := buildBM25Index(docs)

	if df := ix.documentFrequency("the"); df != 1 {
		t.Errorf("documentFrequency(the) = %d, want 1", df)
	}
	if tf := ix.tf["the"][0]; tf != 2 {
		t.Errorf("tf[the][0] = %d, want 2", tf)
	}
}

// TestBM25DocumentFrequency tests document frequency across the corpus
func TestBM25DocumentFrequency(t *testing.T) {
	docs := []Document{
		{Content: "cricket match today"},
		{Content: "cricket scores rising"},
		{Content: "stock market report"},
	}

	ix := buildBM25Index(docs)

	tests := []struct {
		term string
		want int
	}{
		{"cricket", 2},
		{"market", 1},
		{"absent", 0},
	}

	for _, tt := range tests {
		if got := ix.documentFrequency(tt.term); got != tt.want {
			t.Errorf("documentFrequency(%q) = %d, want %d", tt.term, got, tt.want)
		}
	}
}

// TestBM25ScoreFormula tests the scoring function against a hand-computed
// value for a two-document corpus
func TestBM25ScoreFormula(t *testing.T) {
	docs := []Document{
		{Content: "cat cat dog"},
		{Content: "dog bird"},
	}

	ix := buildBM25Index(docs)
	scores := ix.score("cat")

	// N=2, df(cat)=1, tf(cat,0)=2, docLen(0)=3, avgDocLen=2.5.
	idf := math.Log((2-1+0.5)/(1+0.5) + 1)
	tf := 2.0
	want := idf * (tf * (K1 + 1)) / (tf + K1*(1-B+B*3.0/2.5))

	if math.Abs(scores[0]-want) > floatTolerance {
		t.Errorf("scores[0] = %v, want %v", scores[0], want)
	}
	if scores[1] != 0 {
		t.Errorf("scores[1] = %v, want 0 for document without the term", scores[1])
	}
}

// TestBM25ScoreUnknownTerms tests that query terms absent from the corpus
// contribute zero, never negative infinity
func TestBM25ScoreUnknownTerms(t *testing.T) {
	docs := []Document{
		{Content: "cat sat mat"},
	}

	ix := buildBM25Index(docs)
	scores := ix.score("quantum entanglement")

	for i, s := range scores {
		if s != 0 {
			t.Errorf("scores[%d] = %v, want 0", i, s)
		}
		if math.IsNaN(s) || math.IsInf(s, 0) {
			t.Errorf("scores[%d] = %v, must be finite", i, s)
		}
	}
}

// TestBM25ScoreRepeatedQueryTerms tests that a repeated query term is
// scored once per occurrence
func TestBM25ScoreRepeatedQueryTerms(t *testing.T) {
	docs := []Document{
		{Content: "cat sat mat"},
		{Content: "dog ran park"},
	}

	ix := buildBM25Index(docs)
	single := ix.score("cat")
	double := ix.score("cat cat")

	if math.Abs(double[0]-2*single[0]) > floatTolerance {
		t.Errorf("score(cat cat) = %v, want %v (twice score(cat))", double[0], 2*single[0])
	}
}
