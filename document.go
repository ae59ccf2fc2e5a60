package lexis

// Document is one entry in the corpus: a title and a body. Documents are
// identified by their position in the slice passed to BuildIndex; that
// ordinal is the DocID reported in results and the tie-break key for equal
// scores.
type Document struct {
	Title   string
	Content string
}

// text returns the concatenation indexed by both models. Joining title and
// content is an indexing-time decision: titles should count toward
// relevance, and the same concatenation feeds the snippet.
func (d Document) text() string {
	return d.Title + " " + d.Content
}
