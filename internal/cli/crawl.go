package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"lemsearch/internal/adapter/crawler"
	"lemsearch/internal/adapter/store"
	"lemsearch/internal/usecase"
)

var (
	crawlURLs string
	crawlOut  string
)

var crawlCmd = &cobra.Command{
	Use:   "crawl",
	Short: "Download raw HTML pages from a URL list",
	Long: `Download pages listed in a urls file (one URL per line) into
<out>/pages/<NNNN>.html, writing <out>/index.txt with the number→URL
mapping and <out>/docs.db with crawl metadata.

Example:
  lemsearch crawl -u urls.txt -o dump`,
	RunE: runCrawl,
}

func init() {
	rootCmd.AddCommand(crawlCmd)
	crawlCmd.Flags().StringVarP(&crawlURLs, "urls", "u", "", "path to urls file (required)")
	crawlCmd.Flags().StringVarP(&crawlOut, "out", "o", "dump", "output directory")
	crawlCmd.MarkFlagRequired("urls")
}

func runCrawl(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	docs, err := store.NewBoltStore(filepath.Join(crawlOut, "docs.db"))
	if err != nil {
		return fmt.Errorf("failed to open document store: %w", err)
	}
	defer docs.Close()

	c := crawler.NewCrawler(
		crawler.NewFetcher(time.Duration(cfg.Crawl.Timeout)*time.Second, cfg.Crawl.UserAgent),
		crawler.NewHostLimiter(time.Duration(cfg.Crawl.HostDelay*float64(time.Second))),
		cfg.Crawl.Workers,
		cfg.Crawl.Need,
	)

	bar := progressbar.NewOptions(cfg.Crawl.Need,
		progressbar.OptionSetDescription("Crawling"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)

	result, err := usecase.NewCrawlUseCase(c).Run(cmd.Context(), crawlURLs, crawlOut, docs, func(saved int) {
		bar.Set(saved)
	})
	if err != nil {
		return fmt.Errorf("crawl failed: %w", err)
	}

	fmt.Printf("\nCrawl complete:\n")
	fmt.Printf("  Pages saved:   %d -> %s\n", result.Saved, filepath.Join(crawlOut, "pages"))
	fmt.Printf("  Pages skipped: %d\n", len(result.Skipped))
	if len(result.Skipped) > 0 {
		fmt.Printf("  See %s\n", filepath.Join(crawlOut, "skipped.log"))
	}
	if cfg.Crawl.Need > 0 && result.Saved < cfg.Crawl.Need {
		fmt.Printf("  Warning: wanted %d pages, saved only %d\n", cfg.Crawl.Need, result.Saved)
	}
	return nil
}
