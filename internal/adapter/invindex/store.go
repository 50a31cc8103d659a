package invindex

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"lemsearch/internal/domain"
)

// Store is a loaded, read-only posting table with its document universe.
type Store struct {
	table    domain.PostingTable
	universe domain.PostingList
}

// NewStore wraps an in-memory posting table. The universe is computed once
// here; the table must not be mutated afterwards.
func NewStore(table domain.PostingTable) *Store {
	ids := make(map[domain.DocID]struct{})
	for _, postings := range table {
		for _, id := range postings {
			ids[id] = struct{}{}
		}
	}
	universe := make(domain.PostingList, 0, len(ids))
	for id := range ids {
		universe = append(universe, id)
	}
	sort.Slice(universe, func(i, j int) bool { return universe[i] < universe[j] })

	return &Store{
		table:    table,
		universe: universe,
	}
}

// Open loads a serialized posting table from disk.
func Open(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open index file: %w", err)
	}
	defer f.Close()

	table, err := Decode(f)
	if err != nil {
		return nil, err
	}
	return NewStore(table), nil
}

// Lookup returns the posting list for a lemma. An absent lemma yields an
// empty list; absence is expected, not an error.
func (s *Store) Lookup(lemma string) domain.PostingList {
	return s.table[lemma]
}

// Universe returns the sorted set of all document IDs known to the index.
// Callers must not mutate it.
func (s *Store) Universe() domain.PostingList {
	return s.universe
}

// Len returns the number of lemmas in the index.
func (s *Store) Len() int {
	return len(s.table)
}

// Table exposes the loaded posting table for re-serialization.
func (s *Store) Table() domain.PostingTable {
	return s.table
}

// WriteFile atomically publishes a posting table at path: the table is
// encoded to a temp file in the same directory and renamed into place, so
// either the full index appears or nothing does.
func WriteFile(path string, table domain.PostingTable) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".index-*")
	if err != nil {
		return fmt.Errorf("failed to create temp index file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, table); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write index: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to flush index: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to publish index: %w", err)
	}
	return nil
}
