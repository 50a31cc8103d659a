package usecase

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"lemsearch/internal/domain"
	"lemsearch/internal/port"
)

var pageFileRe = regexp.MustCompile(`^(\d+)\.html$`)

// Presenter maps document IDs back to their source pages for display. Page
// paths come from the numbered files in the pages directory; URLs come
// from the crawl metadata store when one is available.
type Presenter struct {
	pages map[domain.DocID]string
	docs  port.DocumentStore
}

// NewPresenter scans pagesDir for <N>.html files. docs may be nil when no
// crawl metadata exists; results then carry paths only.
func NewPresenter(pagesDir string, docs port.DocumentStore) (*Presenter, error) {
	pages := make(map[domain.DocID]string)

	if pagesDir != "" {
		entries, err := os.ReadDir(pagesDir)
		if err != nil {
			return nil, fmt.Errorf("failed to read pages directory: %w", err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			m := pageFileRe.FindStringSubmatch(entry.Name())
			if m == nil {
				continue
			}
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			pages[domain.DocID(n)] = filepath.Join(pagesDir, entry.Name())
		}
	}

	return &Presenter{pages: pages, docs: docs}, nil
}

// Present resolves matching IDs to documents, in the same ascending order.
func (p *Presenter) Present(ids domain.PostingList) []domain.Document {
	docs := make([]domain.Document, 0, len(ids))
	for _, id := range ids {
		doc := domain.Document{ID: id, Path: p.pages[id]}
		if p.docs != nil {
			if stored, err := p.docs.GetDoc(id); err == nil {
				doc.URL = stored.URL
				if doc.Path == "" {
					doc.Path = stored.Path
				}
			}
		}
		docs = append(docs, doc)
	}
	return docs
}
