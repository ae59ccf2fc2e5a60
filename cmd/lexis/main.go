// Command lexis is an interactive console front end for the lexis hybrid
// retrieval engine: it loads a CSV article collection, builds the index
// once, then answers queries from stdin until told to quit. All search
// logic lives in the library; this binary only does I/O.
package main

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/m-sheraz-code/lexis"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataFile string
	var topK int

	cmd := &cobra.Command{
		Use:   "lexis",
		Short: "Hybrid TF-IDF + BM25 search over a CSV article collection",
		Long: `Lexis loads articles from a CSV file with Heading and Article columns,
builds a hybrid lexical index (TF-IDF + BM25), and starts an interactive
search prompt. Results are ranked by a fused relevance score in [0, 1].`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(dataFile, topK)
		},
	}

	cmd.Flags().StringVarP(&dataFile, "data", "d", "Articles.csv", "CSV file with Heading and Article columns")
	cmd.Flags().IntVarP(&topK, "top-k", "k", 5, "number of results per query")

	return cmd
}

func run(dataFile string, topK int) error {
	docs, err := loadArticles(dataFile)
	if err != nil {
		return fmt.Errorf("loading articles: %w", err)
	}
	fmt.Printf("Loaded %d articles from %s\n", len(docs), dataFile)

	index, err := lexis.BuildIndex(docs)
	if err != nil {
		return fmt.Errorf("building index: %w", err)
	}
	fmt.Println("Index ready. Type a query, 'help' for tips, or 'exit' to quit.")

	return searchLoop(index, topK)
}

// loadArticles reads the CSV collection. The Heading and Article columns
// are located by header name, fields are trimmed, rows empty in both
// columns are skipped, and a blank heading falls back to "Untitled".
func loadArticles(filename string) ([]lexis.Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	headingCol, articleCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "Heading":
			headingCol = i
		case "Article":
			articleCol = i
		}
	}
	if headingCol < 0 || articleCol < 0 {
		return nil, fmt.Errorf("%s: missing Heading or Article column", filename)
	}

	var docs []lexis.Document
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}

		heading, article := "", ""
		if headingCol < len(record) {
			heading = strings.TrimSpace(record[headingCol])
		}
		if articleCol < len(record) {
			article = strings.TrimSpace(record[articleCol])
		}
		if heading == "" && article == "" {
			continue
		}
		if heading == "" {
			heading = "Untitled"
		}

		docs = append(docs, lexis.Document{Title: heading, Content: article})
	}

	return docs, nil
}

// searchLoop reads queries from stdin and prints ranked results until EOF
// or an exit command.
func searchLoop(index *lexis.Index, topK int) error {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("query> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		query := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(query) {
		case "exit", "quit", "q":
			return nil
		case "help":
			printHelp()
			continue
		case "":
			fmt.Println("Please enter a query.")
			continue
		}

		results, err := index.Search(query, topK)
		if err != nil {
			return err
		}
		printResults(query, results)
	}
}

func printHelp() {
	fmt.Println(strings.Repeat("-", 72))
	fmt.Println("Search tips:")
	fmt.Println("  - Use keywords related to your topic (e.g. 'technology innovation')")
	fmt.Println("  - Combine multiple terms for better results (e.g. 'sports cricket')")
	fmt.Println("  - Both titles and article bodies are searched")
	fmt.Println("  - Results are ranked by a relevance score in [0, 1]")
	fmt.Println(strings.Repeat("-", 72))
}

func printResults(query string, results []lexis.RankedResult) {
	fmt.Println(strings.Repeat("=", 72))
	fmt.Printf("Results for: %q\n", query)
	fmt.Println(strings.Repeat("=", 72))

	if len(results) == 0 {
		fmt.Println("No results found.")
		return
	}
	for rank, r := range results {
		fmt.Printf("Rank %d | Score: %.4f | Document Index: %d\n", rank+1, r.Score, r.DocID)
		fmt.Printf("Title: %s\n", r.Title)
		fmt.Printf("Snippet: %s\n", r.Snippet)
		fmt.Println(strings.Repeat("-", 72))
	}
}
