package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"lemsearch/internal/adapter/fs"
	"lemsearch/internal/usecase"
)

var (
	indexInput  string
	indexOutput string
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the inverted index from a lemma directory",
	Long: `Read every lemmas_<N>.txt file in the input directory and write
the term→document inverted index: one line per lemma, lemmas sorted, each
followed by the ascending IDs of the documents containing it.

An existing output file is never overwritten; the new index gets a
numbered suffix instead.

Example:
  lemsearch index -i corpus -o index.txt`,
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
	indexCmd.Flags().StringVarP(&indexInput, "input", "i", "", "directory containing lemma files (required)")
	indexCmd.Flags().StringVarP(&indexOutput, "output", "o", "", "file path for the serialized index (required)")
	indexCmd.MarkFlagRequired("input")
	indexCmd.MarkFlagRequired("output")
}

func runIndex(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	uc := usecase.NewBuildUseCase(fs.NewCorpus(cfg.Index.Includes))
	result, err := uc.Build(indexInput, indexOutput)
	if err != nil {
		return fmt.Errorf("index build failed: %w", err)
	}

	if result.Path != indexOutput {
		fmt.Printf("Output %s already exists; writing to %s instead\n", indexOutput, result.Path)
	}
	fmt.Printf("Index built:\n")
	fmt.Printf("  Documents: %d\n", result.Documents)
	fmt.Printf("  Lemmas:    %d\n", result.Lemmas)
	fmt.Printf("  Stored at: %s\n", result.Path)
	return nil
}
