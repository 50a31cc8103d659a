package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lemsearch/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "lemsearch",
	Short: "Boolean retrieval over a lemmatized web corpus",
	Long: `lemsearch builds a term→document inverted index from lemmatized
documents and answers boolean queries (AND / OR / NOT, with parentheses)
against it.

The full pipeline:
  lemsearch crawl -u urls.txt -o dump        # download pages
  lemsearch tokenize -p dump/pages -o corpus # extract and lemmatize text
  lemsearch index -i corpus -o index.txt     # build the inverted index
  lemsearch search -x index.txt -l corpus    # query it`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			wd, werr := os.Getwd()
			if werr != nil {
				return fmt.Errorf("failed to get working directory: %w", werr)
			}
			cfg, err = config.LoadFromDir(wd)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./lemsearch.yaml)")
}

func GetConfig() *config.Config {
	return cfg
}
