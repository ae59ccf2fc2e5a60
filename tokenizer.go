package lexis

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
	"golang.org/x/text/cases"
)

// Normalize case-folds text. This is the only preprocessing shared by both
// scoring models: no punctuation stripping, no Unicode normalization beyond
// the case fold. Pure and total.
//
// A fresh Caser is constructed per call because cases.Caser values are
// stateful and must not be shared between goroutines.
func Normalize(text string) string {
	return cases.Fold().String(text)
}

// Tokenizer splits normalized text into scoring tokens.
//
// The TF-IDF and BM25 models each carry their own Tokenizer and the two
// must not be unified: the word tokenizer filters stop words and short
// runs, the whitespace tokenizer keeps everything. Swapping one for the
// other changes ranking behavior.
type Tokenizer interface {
	// Tokenize case-folds text and splits it into tokens.
	Tokenize(text string) []string
}

// Compile-time checks that both tokenizers implement Tokenizer.
var (
	_ Tokenizer = (*wordTokenizer)(nil)
	_ Tokenizer = (*whitespaceTokenizer)(nil)
)

// wordTokenizer is the TF-IDF tokenizer: UAX#29 word segmentation reduced
// to alphanumeric runs of length >= 2, with English stop words removed.
type wordTokenizer struct {
	stopWords map[string]struct{}
}

// NewWordTokenizer returns the tokenizer used by the TF-IDF model.
func NewWordTokenizer() Tokenizer {
	return &wordTokenizer{stopWords: englishStopWords}
}

func (t *wordTokenizer) Tokenize(text string) []string {
	var tokens []string
	segments := words.FromString(Normalize(text))
	for segments.Next() {
		for _, run := range alphanumericRuns(segments.Value()) {
			if _, stop := t.stopWords[run]; stop {
				continue
			}
			tokens = append(tokens, run)
		}
	}
	return tokens
}

// alphanumericRuns extracts maximal letter/digit runs of length >= 2 from a
// word segment. Segments like "don't" yield "don"; "t" is dropped for
// length.
func alphanumericRuns(segment string) []string {
	var runs []string
	var run []rune
	flush := func() {
		if len(run) >= 2 {
			runs = append(runs, string(run))
		}
		run = run[:0]
	}
	for _, r := range segment {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			run = append(run, r)
			continue
		}
		flush()
	}
	flush()
	return runs
}

// whitespaceTokenizer is the BM25 tokenizer: case-fold, split on
// whitespace, nothing else. Deliberately simpler than the word tokenizer.
type whitespaceTokenizer struct{}

// NewWhitespaceTokenizer returns the tokenizer used by the BM25 model.
func NewWhitespaceTokenizer() Tokenizer {
	return whitespaceTokenizer{}
}

func (whitespaceTokenizer) Tokenize(text string) []string {
	return strings.Fields(Normalize(text))
}
