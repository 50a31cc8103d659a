package cli

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"lemsearch/internal/adapter/analyzer"
	"lemsearch/internal/usecase"
)

var (
	tokenizePages string
	tokenizeOut   string
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize",
	Short: "Extract and lemmatize text from downloaded pages",
	Long: `Process every <N>.html page into tokens_<N>.txt (one token per
line) and lemmas_<N>.txt (lemma followed by its surface forms, one lemma
per line). The lemma files are the corpus the index build consumes.

Example:
  lemsearch tokenize -p dump/pages -o corpus`,
	RunE: runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
	tokenizeCmd.Flags().StringVarP(&tokenizePages, "pages", "p", "", "directory with downloaded pages (required)")
	tokenizeCmd.Flags().StringVarP(&tokenizeOut, "out", "o", "corpus", "output directory for token and lemma files")
	tokenizeCmd.MarkFlagRequired("pages")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	uc := usecase.NewTokenizeUseCase(
		analyzer.NewTokenizer(cfg.Analyze.Stopwords, cfg.Analyze.MinTokenLen),
		analyzer.NewSnowballNormalizer(cfg.Analyze.Language),
	)

	var bar *progressbar.ProgressBar
	result, err := uc.Run(tokenizePages, tokenizeOut, func(done, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetDescription("Tokenizing"),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}
		bar.Set(done)
	})
	if err != nil {
		return fmt.Errorf("tokenize failed: %w", err)
	}

	fmt.Printf("\nTokenize complete:\n")
	fmt.Printf("  Pages processed: %d\n", result.Pages)
	fmt.Printf("  Distinct tokens: %d\n", result.Tokens)
	fmt.Printf("  Distinct lemmas: %d\n", result.Lemmas)
	fmt.Printf("  Corpus written to: %s\n", tokenizeOut)
	return nil
}
