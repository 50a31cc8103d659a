package usecase

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"lemsearch/internal/adapter/crawler"
	"lemsearch/internal/port"
)

// CrawlUseCase downloads the raw page corpus.
type CrawlUseCase struct {
	crawler *crawler.Crawler
}

// NewCrawlUseCase creates a crawl use case.
func NewCrawlUseCase(c *crawler.Crawler) *CrawlUseCase {
	return &CrawlUseCase{crawler: c}
}

// Run reads the URL list and crawls it into outDir.
func (u *CrawlUseCase) Run(ctx context.Context, urlsPath, outDir string, docs port.DocumentStore, progress func(saved int)) (*crawler.Result, error) {
	urls, err := ReadURLs(urlsPath)
	if err != nil {
		return nil, err
	}
	return u.crawler.Run(ctx, urls, outDir, docs, progress)
}

// ReadURLs reads one URL per line, skipping blank lines.
func ReadURLs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open urls file: %w", err)
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		u := strings.TrimSpace(scanner.Text())
		if u == "" {
			continue
		}
		urls = append(urls, u)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read urls file: %w", err)
	}
	if len(urls) == 0 {
		return nil, fmt.Errorf("urls file %s is empty", path)
	}
	return urls, nil
}
