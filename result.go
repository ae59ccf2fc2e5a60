package lexis

import (
	"sort"
	"strings"
)

// snippetLength is the maximum snippet size in runes.
const snippetLength = 200

// snippetEllipsis marks a truncated snippet.
const snippetEllipsis = "..."

// RankedResult is one entry of a search result list.
type RankedResult struct {
	// DocID is the document's ordinal position in the indexed corpus.
	DocID int
	// Title is the document title, verbatim.
	Title string
	// Snippet is a preview of the document text, original case preserved.
	Snippet string
	// Score is the fused relevance score.
	Score float64
}

// rankScores selects up to k docIDs by combined score descending, ties
// broken by ascending docID. Every document participates, including
// zero-scored ones, so a no-match query still yields a deterministic,
// docID-ordered list.
func rankScores(combined []float64, k int) []int {
	ids := make([]int, len(combined))
	for i := range ids {
		ids[i] = i
	}
	sort.Slice(ids, func(a, b int) bool {
		if combined[ids[a]] != combined[ids[b]] {
			return combined[ids[a]] > combined[ids[b]]
		}
		return ids[a] < ids[b]
	})
	if k < len(ids) {
		ids = ids[:k]
	}
	return ids
}

// assembleResults packages ranked docIDs into caller-facing records.
func (ix *Index) assembleResults(ranked []int, combined []float64) []RankedResult {
	results := make([]RankedResult, len(ranked))
	for i, docID := range ranked {
		doc := ix.docs[docID]
		results[i] = RankedResult{
			DocID:   docID,
			Title:   doc.Title,
			Snippet: makeSnippet(doc.text()),
			Score:   combined[docID],
		}
	}
	return results
}

// makeSnippet returns the first snippetLength runes of text, trimmed, with
// an ellipsis appended when the original was longer. Case is preserved:
// snippets are a display concern, not a scoring one.
func makeSnippet(text string) string {
	runes := []rune(text)
	if len(runes) <= snippetLength {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(string(runes[:snippetLength])) + snippetEllipsis
}
