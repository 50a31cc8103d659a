package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"lemsearch/internal/adapter/analyzer"
	"lemsearch/internal/adapter/fs"
	"lemsearch/internal/adapter/invindex"
	"lemsearch/internal/adapter/store"
	"lemsearch/internal/domain"
	"lemsearch/internal/port"
	"lemsearch/internal/usecase"
)

var (
	searchIndex  string
	searchLemmas string
	searchPages  string
	searchDocsDB string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Run boolean queries against a built index",
	Long: `Load a serialized index and evaluate boolean expressions over it.
Operators are AND, OR and NOT (case-insensitive), with parentheses for
grouping; precedence is NOT > AND > OR. Query terms are reduced to the
same lemma form the index was built with.

With a query argument one query is answered; without one, queries are
read interactively until an empty line.

Examples:
  lemsearch search -x index.txt -l corpus "cat AND NOT dog"
  lemsearch search -x index.txt -l corpus -p dump/pages`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVarP(&searchIndex, "index", "x", "", "path to the serialized index (required)")
	searchCmd.Flags().StringVarP(&searchLemmas, "lemmas", "l", "", "lemma directory used to build the index (required)")
	searchCmd.Flags().StringVarP(&searchPages, "pages", "p", "", "directory with the source pages")
	searchCmd.Flags().StringVar(&searchDocsDB, "docs", "", "crawl metadata database (default <pages>/../docs.db)")
	searchCmd.MarkFlagRequired("index")
	searchCmd.MarkFlagRequired("lemmas")
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	index, err := invindex.Open(searchIndex)
	if err != nil {
		return fmt.Errorf("failed to load index: %w", err)
	}
	fmt.Printf("Loaded index: %d lemmas, %d documents\n", index.Len(), len(index.Universe()))

	corpus := fs.NewCorpus(cfg.Index.Includes)
	vocab, err := corpus.Vocabulary(searchLemmas)
	if err != nil {
		return fmt.Errorf("failed to load corpus vocabulary: %w", err)
	}
	normalizer := analyzer.NewVocabularyNormalizer(vocab, analyzer.NewSnowballNormalizer(cfg.Analyze.Language))

	var docs port.DocumentStore
	if dbPath := resolveDocsDB(); dbPath != "" {
		if _, err := os.Stat(dbPath); err == nil {
			bolt, err := store.NewBoltStore(dbPath)
			if err != nil {
				return fmt.Errorf("failed to open document store: %w", err)
			}
			defer bolt.Close()
			docs = bolt
		}
	}

	presenter, err := usecase.NewPresenter(searchPages, docs)
	if err != nil {
		return err
	}

	search := usecase.NewSearchUseCase(index, normalizer, presenter)

	if len(args) == 1 {
		return runOneQuery(search, args[0])
	}

	// Interactive loop: a syntax error aborts only the offending query.
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("query> ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			break
		}
		if err := runOneQuery(search, query); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func runOneQuery(search *usecase.SearchUseCase, query string) error {
	result, err := search.Search(query)
	if err != nil {
		var syntaxErr *domain.SyntaxError
		if errors.As(err, &syntaxErr) {
			fmt.Printf("invalid query: %v\n", syntaxErr)
			return nil
		}
		return err
	}

	if len(result.IDs) == 0 {
		fmt.Println("no documents match")
		return nil
	}

	for _, doc := range result.Documents {
		line := fmt.Sprintf("%4d", doc.ID)
		if doc.Path != "" {
			line += "  " + doc.Path
		}
		if doc.URL != "" {
			line += "  " + doc.URL
		}
		fmt.Println(line)
	}
	fmt.Printf("%d document(s)\n", len(result.IDs))
	return nil
}

// resolveDocsDB picks the crawl metadata database: the explicit flag, or
// docs.db next to the pages directory.
func resolveDocsDB() string {
	if searchDocsDB != "" {
		return searchDocsDB
	}
	if searchPages != "" {
		return filepath.Join(searchPages, "..", "docs.db")
	}
	return ""
}
