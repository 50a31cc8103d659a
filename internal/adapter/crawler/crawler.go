package crawler

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"lemsearch/internal/domain"
	"lemsearch/internal/port"
)

// Crawler downloads pages in parallel until enough are saved. Saved pages
// get sequential numbers that become the corpus document IDs.
type Crawler struct {
	fetcher *Fetcher
	limiter *HostLimiter
	workers int
	need    int
}

// NewCrawler creates a Crawler saving up to need pages with the given
// parallelism.
func NewCrawler(fetcher *Fetcher, limiter *HostLimiter, workers, need int) *Crawler {
	if workers <= 0 {
		workers = 1
	}
	return &Crawler{
		fetcher: fetcher,
		limiter: limiter,
		workers: workers,
		need:    need,
	}
}

// Result summarizes a crawl run.
type Result struct {
	Saved   int
	Skipped []string
}

type savedPage struct {
	no  int
	url string
}

// Run fetches the URLs, writes saved pages to outDir/pages/<NNNN>.html,
// records the number→URL mapping in outDir/index.txt and in docs (when not
// nil), and logs failures to outDir/skipped.log. Non-2xx responses and
// non-HTML content are skipped, not fatal.
func (c *Crawler) Run(ctx context.Context, urls []string, outDir string, docs port.DocumentStore, progress func(saved int)) (*Result, error) {
	pagesDir := filepath.Join(outDir, "pages")
	if err := os.MkdirAll(pagesDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var (
		mu      sync.Mutex
		saved   []savedPage
		skipped []string
		fileNo  int
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for _, u := range urls {
		u := u
		g.Go(func() error {
			mu.Lock()
			done := c.need > 0 && len(saved) >= c.need
			mu.Unlock()
			if done {
				return nil
			}

			host := ""
			if parsed, err := url.Parse(u); err == nil {
				host = parsed.Host
			}
			if err := c.limiter.Wait(ctx, host); err != nil {
				return err
			}

			res, err := c.fetcher.Fetch(ctx, u)
			if err != nil {
				mu.Lock()
				skipped = append(skipped, fmt.Sprintf("ERR\t%s\t%v", u, err))
				mu.Unlock()
				return nil
			}
			if res.Status < 200 || res.Status >= 300 {
				mu.Lock()
				skipped = append(skipped, fmt.Sprintf("HTTP%d\t%s", res.Status, u))
				mu.Unlock()
				return nil
			}
			if !strings.Contains(strings.ToLower(res.ContentType), "text/html") {
				mu.Lock()
				skipped = append(skipped, fmt.Sprintf("CTYPE\t%s\t%s", u, res.ContentType))
				mu.Unlock()
				return nil
			}

			mu.Lock()
			if c.need > 0 && len(saved) >= c.need {
				mu.Unlock()
				return nil
			}
			fileNo++
			no := fileNo
			saved = append(saved, savedPage{no: no, url: u})
			count := len(saved)
			mu.Unlock()

			path := filepath.Join(pagesDir, fmt.Sprintf("%04d.html", no))
			if err := os.WriteFile(path, res.Body, 0644); err != nil {
				return fmt.Errorf("failed to save page %d: %w", no, err)
			}

			if docs != nil {
				doc := domain.Document{ID: domain.DocID(no), Path: path, URL: u}
				if err := docs.PutDoc(doc); err != nil {
					return fmt.Errorf("failed to record page %d: %w", no, err)
				}
			}

			if progress != nil {
				progress(count)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(saved, func(i, j int) bool { return saved[i].no < saved[j].no })

	var index strings.Builder
	for _, p := range saved {
		fmt.Fprintf(&index, "%04d\t%s\n", p.no, p.url)
	}
	if err := os.WriteFile(filepath.Join(outDir, "index.txt"), []byte(index.String()), 0644); err != nil {
		return nil, fmt.Errorf("failed to write index.txt: %w", err)
	}

	if len(skipped) > 0 {
		log := strings.Join(skipped, "\n") + "\n"
		if err := os.WriteFile(filepath.Join(outDir, "skipped.log"), []byte(log), 0644); err != nil {
			return nil, fmt.Errorf("failed to write skipped.log: %w", err)
		}
	}

	return &Result{Saved: len(saved), Skipped: skipped}, nil
}
