// Package fs reads the lemmatized corpus produced by the tokenize stage:
// one lemmas_<N>.txt file per document, each line holding a lemma followed
// by the surface tokens that reduced to it.
package fs

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"lemsearch/internal/domain"
	"lemsearch/internal/port"
)

var _ port.CorpusSource = (*Corpus)(nil)

var lemmaFileRe = regexp.MustCompile(`^lemmas_(\d+)\.txt$`)

// Corpus enumerates lemma files in a directory.
type Corpus struct {
	includes []string
}

// NewCorpus creates a corpus source restricted to the given glob patterns.
func NewCorpus(includes []string) *Corpus {
	if len(includes) == 0 {
		includes = []string{"lemmas_*.txt"}
	}
	return &Corpus{includes: includes}
}

// List returns the corpus documents sorted by ascending ID. Files whose
// names carry no document number are skipped.
func (c *Corpus) List(dir string) ([]port.CorpusDoc, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus directory: %w", err)
	}

	var docs []port.CorpusDoc
	for _, entry := range entries {
		if entry.IsDir() || !c.shouldInclude(entry.Name()) {
			continue
		}
		m := lemmaFileRe.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		docs = append(docs, port.CorpusDoc{
			ID:   domain.DocID(n),
			Path: filepath.Join(dir, entry.Name()),
		})
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

// Lemmas returns the lemmas of one document in file order. Only the first
// field of each line is the lemma; the rest are its surface tokens.
func (c *Corpus) Lemmas(doc port.CorpusDoc) ([]string, error) {
	f, err := os.Open(doc.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lemma file: %w", err)
	}
	defer f.Close()

	var lemmas []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		lemmas = append(lemmas, fields[0])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lemma file: %w", err)
	}
	return lemmas, nil
}

// Vocabulary builds the corpus token→lemma mapping from all lemma files in
// dir. Each lemma also maps to itself.
func (c *Corpus) Vocabulary(dir string) (map[string]string, error) {
	docs, err := c.List(dir)
	if err != nil {
		return nil, err
	}

	vocab := make(map[string]string)
	for _, doc := range docs {
		f, err := os.Open(doc.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open lemma file: %w", err)
		}
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			fields := strings.Fields(scanner.Text())
			if len(fields) == 0 {
				continue
			}
			lemma := fields[0]
			vocab[lemma] = lemma
			for _, token := range fields[1:] {
				vocab[token] = lemma
			}
		}
		err = scanner.Err()
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read lemma file: %w", err)
		}
	}
	return vocab, nil
}

func (c *Corpus) shouldInclude(name string) bool {
	for _, pattern := range c.includes {
		matched, err := doublestar.Match(pattern, name)
		if err == nil && matched {
			return true
		}
	}
	return false
}
