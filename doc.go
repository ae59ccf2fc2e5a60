/*
Package lexis provides a hybrid lexical retrieval engine for Go.

Lexis builds two complementary scoring models over a static document
collection — a vector-space TF-IDF model and a probabilistic BM25 model —
and fuses their scores into a single ranked result list per query.

# Overview

The engine is built for short-text collections that fit in memory: news
articles, product descriptions, knowledge-base entries. The collection is
indexed once, up front; the resulting Index is immutable and can serve
queries from any number of goroutines without locking.

# Quick Start

Build an index and search it:

	package main

	import (
	    "fmt"
	    "log"

	    "github.com/m-sheraz-code/lexis"
	)

	func main() {
	    docs := []lexis.Document{
	        {Title: "Feline News", Content: "the cat sat on the mat"},
	        {Title: "Canine News", Content: "the dog ran in the park"},
	    }

	    index, err := lexis.BuildIndex(docs)
	    if err != nil {
	        log.Fatal(err)
	    }

	    results, err := index.Search("cat mat", 5)
	    if err != nil {
	        log.Fatal(err)
	    }

	    for i, r := range results {
	        fmt.Printf("%d. [%.4f] %s\n", i+1, r.Score, r.Title)
	    }
	}

The search builder exposes the same operation with per-query options:

	results, err := index.NewSearch().
	    WithQuery("cat mat").
	    WithK(5).
	    WithWeights(0.7, 0.3).
	    Execute()

# Scoring

Each query is scored against every document twice.

TF-IDF path: documents and query are projected into a bounded vocabulary
(top 5000 corpus terms) with smoothed idf weighting and L2 row
normalization. The per-document score is the cosine similarity between the
query vector and the document row, always in [0, 1].

BM25 path: the classic probabilistic ranking function with k1=1.5 and
b=0.75 over a whitespace tokenization. Raw BM25 scores are unbounded, so
they are divided by the per-query maximum to land in [0, 1].

The two score vectors are combined by a fusion strategy; the default is a
weighted sum with equal weights, which keeps the combined score in [0, 1].
Ties are broken by ascending document ID, so output order is fully
deterministic.

# Tokenization

The two models deliberately use different tokenizers. The TF-IDF path
segments text with UAX#29 word segmentation, keeps alphanumeric runs of at
least two characters, and drops a fixed English stop word list. The BM25
path case-folds and splits on whitespace, nothing more. Unifying the two
changes ranking behavior, so they stay separate Tokenizer implementations.

# Concurrency

BuildIndex runs single-threaded and returns a read-only Index. Queries are
pure functions of (Index, query, k): no shared mutable state, no locks, no
I/O. Concurrent searches on one Index are safe.
*/
package lexis
