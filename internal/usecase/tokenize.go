package usecase

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"lemsearch/internal/adapter/analyzer"
	"lemsearch/internal/adapter/html"
	"lemsearch/internal/port"
)

// TokenizeUseCase turns downloaded pages into the lemmatized corpus the
// index build consumes: tokens_<N>.txt with one token per line and
// lemmas_<N>.txt with one lemma per line followed by its surface tokens.
type TokenizeUseCase struct {
	tokenizer  *analyzer.Tokenizer
	normalizer port.Normalizer
}

// NewTokenizeUseCase creates a tokenize use case.
func NewTokenizeUseCase(tokenizer *analyzer.Tokenizer, normalizer port.Normalizer) *TokenizeUseCase {
	return &TokenizeUseCase{
		tokenizer:  tokenizer,
		normalizer: normalizer,
	}
}

// TokenizeResult summarizes a tokenize run.
type TokenizeResult struct {
	Pages  int
	Tokens int
	Lemmas int
}

// Run processes every <N>.html page in pagesDir into outDir. progress, when
// not nil, is called after each page with (done, total).
func (u *TokenizeUseCase) Run(pagesDir, outDir string, progress func(done, total int)) (*TokenizeResult, error) {
	entries, err := os.ReadDir(pagesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read pages directory: %w", err)
	}

	type page struct {
		no   int
		path string
	}
	var pages []page
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
		pages = append(pages, page{no: n, path: filepath.Join(pagesDir, entry.Name())})
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].no < pages[j].no })

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &TokenizeResult{}
	for i, p := range pages {
		tokens, lemmaCount, err := u.processPage(p.path, p.no, outDir)
		if err != nil {
			return nil, fmt.Errorf("failed to process page %d: %w", p.no, err)
		}
		result.Pages++
		result.Tokens += tokens
		result.Lemmas += lemmaCount
		if progress != nil {
			progress(i+1, len(pages))
		}
	}
	return result, nil
}

func (u *TokenizeUseCase) processPage(path string, no int, outDir string) (tokenCount, lemmaCount int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	text, err := html.ExtractText(f)
	f.Close()
	if err != nil {
		return 0, 0, err
	}

	tokens := u.tokenizer.Tokenize(text)

	// One token per line, distinct, sorted: reruns produce identical files.
	tokenSet := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		tokenSet[t] = struct{}{}
	}
	distinct := make([]string, 0, len(tokenSet))
	for t := range tokenSet {
		distinct = append(distinct, t)
	}
	sort.Strings(distinct)

	var tb strings.Builder
	for _, t := range distinct {
		tb.WriteString(t)
		tb.WriteByte('\n')
	}
	tokensPath := filepath.Join(outDir, fmt.Sprintf("tokens_%d.txt", no))
	if err := os.WriteFile(tokensPath, []byte(tb.String()), 0644); err != nil {
		return 0, 0, err
	}

	// Group surface tokens under their lemma.
	byLemma := make(map[string]map[string]struct{})
	for _, t := range distinct {
		lemma := u.normalizer.Normalize(t)
		if lemma == "" {
			continue
		}
		if byLemma[lemma] == nil {
			byLemma[lemma] = make(map[string]struct{})
		}
		byLemma[lemma][t] = struct{}{}
	}

	lemmas := make([]string, 0, len(byLemma))
	for lemma := range byLemma {
		lemmas = append(lemmas, lemma)
	}
	sort.Strings(lemmas)

	var lb strings.Builder
	for _, lemma := range lemmas {
		forms := make([]string, 0, len(byLemma[lemma]))
		for t := range byLemma[lemma] {
			forms = append(forms, t)
		}
		sort.Strings(forms)
		lb.WriteString(lemma)
		for _, t := range forms {
			lb.WriteString(" " + t)
		}
		lb.WriteByte('\n')
	}
	lemmasPath := filepath.Join(outDir, fmt.Sprintf("lemmas_%d.txt", no))
	if err := os.WriteFile(lemmasPath, []byte(lb.String()), 0644); err != nil {
		return 0, 0, err
	}

	return len(distinct), len(lemmas), nil
}
