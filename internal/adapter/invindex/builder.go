// Package invindex builds, serializes and loads the term→document inverted
// index. The serialized form is a deterministic UTF-8 text file with one
// line per lemma: the lemma followed by its ascending document IDs,
// whitespace-delimited.
package invindex

import (
	"fmt"
	"sort"

	"lemsearch/internal/domain"
	"lemsearch/internal/port"
)

// Builder collects posting lists from a lemmatized corpus.
type Builder struct {
	source port.CorpusSource
}

// NewBuilder creates a Builder over the given corpus source.
func NewBuilder(source port.CorpusSource) *Builder {
	return &Builder{source: source}
}

// Build reads every document in dir and returns the posting table. A lemma
// occurring several times in one document contributes that document once.
// Returns domain.ErrEmptyCorpus when the directory yields no documents.
func (b *Builder) Build(dir string) (domain.PostingTable, error) {
	docs, err := b.source.List(dir)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, domain.ErrEmptyCorpus
	}

	// Processing documents in ascending ID order keeps every posting list
	// ascending by construction.
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })

	table := make(domain.PostingTable)
	for _, doc := range docs {
		lemmas, err := b.source.Lemmas(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to read document %d: %w", doc.ID, err)
		}

		seen := make(map[string]struct{}, len(lemmas))
		for _, lemma := range lemmas {
			if lemma == "" {
				continue
			}
			if _, ok := seen[lemma]; ok {
				continue
			}
			seen[lemma] = struct{}{}
			table[lemma] = append(table[lemma], doc.ID)
		}
	}

	return table, nil
}
