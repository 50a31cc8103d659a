package usecase

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"lemsearch/internal/adapter/analyzer"
	"lemsearch/internal/adapter/fs"
	"lemsearch/internal/adapter/invindex"
	"lemsearch/internal/adapter/store"
	"lemsearch/internal/domain"
)

// buildAndLoad runs the full build → persist → reload cycle the query
// phase depends on.
func buildAndLoad(t *testing.T, corpus string) *invindex.Store {
	t.Helper()
	out := filepath.Join(t.TempDir(), "index.txt")
	if _, err := NewBuildUseCase(fs.NewCorpus(nil)).Build(corpus, out); err != nil {
		t.Fatal(err)
	}
	st, err := invindex.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	return st
}

func newSearch(t *testing.T, corpus string, index *invindex.Store) *SearchUseCase {
	t.Helper()
	vocab, err := fs.NewCorpus(nil).Vocabulary(corpus)
	if err != nil {
		t.Fatal(err)
	}
	normalizer := analyzer.NewVocabularyNormalizer(vocab, analyzer.NewSnowballNormalizer("english"))
	return NewSearchUseCase(index, normalizer, nil)
}

func TestSearchUseCase_Scenario(t *testing.T) {
	corpus := writeScenarioCorpus(t)
	search := newSearch(t, corpus, buildAndLoad(t, corpus))

	tests := []struct {
		query string
		want  domain.PostingList
	}{
		{"cat AND dog", domain.PostingList{1}},
		{"cat OR bird", domain.PostingList{1, 2, 3}},
		{"NOT dog", domain.PostingList{3}},
		{"cat AND NOT bird", domain.PostingList{1}},
		// Surface forms resolve through the corpus vocabulary.
		{"cats AND dogs", domain.PostingList{1}},
	}

	for _, tt := range tests {
		result, err := search.Search(tt.query)
		if err != nil {
			t.Errorf("Search(%q): %v", tt.query, err)
			continue
		}
		if diff := cmp.Diff(tt.want, result.IDs); diff != "" {
			t.Errorf("Search(%q) mismatch (-want +got):\n%s", tt.query, diff)
		}
	}
}

func TestSearchUseCase_SyntaxErrorIsLocal(t *testing.T) {
	corpus := writeScenarioCorpus(t)
	search := newSearch(t, corpus, buildAndLoad(t, corpus))

	_, err := search.Search("cat AND")
	var syntaxErr *domain.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected SyntaxError, got %v", err)
	}

	// The loaded index stays usable after a bad query.
	result, err := search.Search("cat")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(domain.PostingList{1, 3}, result.IDs); diff != "" {
		t.Errorf("index unusable after syntax error (-want +got):\n%s", diff)
	}
}

func TestSearchUseCase_AbsentTerm(t *testing.T) {
	corpus := writeScenarioCorpus(t)
	search := newSearch(t, corpus, buildAndLoad(t, corpus))

	result, err := search.Search("unicorn")
	if err != nil {
		t.Fatalf("absent term must not be an error: %v", err)
	}
	if len(result.IDs) != 0 {
		t.Errorf("expected empty result, got %v", result.IDs)
	}
}

func TestPresenter_Present(t *testing.T) {
	pagesDir := t.TempDir()
	for _, name := range []string{"0001.html", "0003.html"} {
		if err := os.WriteFile(filepath.Join(pagesDir, name), []byte("<html></html>"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	docs, err := store.NewBoltStore(filepath.Join(t.TempDir(), "docs.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer docs.Close()
	if err := docs.PutDoc(domain.Document{ID: 1, URL: "https://example.org/a"}); err != nil {
		t.Fatal(err)
	}

	p, err := NewPresenter(pagesDir, docs)
	if err != nil {
		t.Fatal(err)
	}

	results := p.Present(domain.PostingList{1, 3})
	if len(results) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(results))
	}
	if results[0].URL != "https://example.org/a" {
		t.Errorf("expected URL from store, got %q", results[0].URL)
	}
	if results[0].Path != filepath.Join(pagesDir, "0001.html") {
		t.Errorf("unexpected path %q", results[0].Path)
	}
	// Doc 3 has no crawl metadata; the page path still resolves.
	if results[1].Path != filepath.Join(pagesDir, "0003.html") {
		t.Errorf("unexpected path %q", results[1].Path)
	}
}
