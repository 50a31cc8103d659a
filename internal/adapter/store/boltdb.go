// Package store persists crawl metadata in a bbolt database so that search
// results can be presented with their source URLs.
package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"go.etcd.io/bbolt"

	"lemsearch/internal/domain"
	"lemsearch/internal/port"
)

var _ port.DocumentStore = (*BoltStore)(nil)

var bucketDocs = []byte("docs")

// BoltStore is a bbolt-backed document metadata store.
type BoltStore struct {
	db *bbolt.DB
}

// NewBoltStore opens (or creates) the database at path.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketDocs)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

type docMeta struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}

func docKey(id domain.DocID) []byte {
	return []byte(strconv.Itoa(int(id)))
}

func (s *BoltStore) PutDoc(doc domain.Document) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(docMeta{Path: doc.Path, URL: doc.URL})
		if err != nil {
			return err
		}
		return tx.Bucket(bucketDocs).Put(docKey(doc.ID), data)
	})
}

func (s *BoltStore) GetDoc(id domain.DocID) (domain.Document, error) {
	var doc domain.Document
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketDocs).Get(docKey(id))
		if data == nil {
			return fmt.Errorf("document not found: %d", id)
		}
		var meta docMeta
		if err := json.Unmarshal(data, &meta); err != nil {
			return err
		}
		doc = domain.Document{ID: id, Path: meta.Path, URL: meta.URL}
		return nil
	})
	return doc, err
}

func (s *BoltStore) ListDocs() ([]domain.Document, error) {
	var docs []domain.Document
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketDocs)
		return b.ForEach(func(k, v []byte) error {
			id, err := strconv.Atoi(string(k))
			if err != nil {
				return fmt.Errorf("corrupt document key %q: %w", k, err)
			}
			var meta docMeta
			if err := json.Unmarshal(v, &meta); err != nil {
				return err
			}
			docs = append(docs, domain.Document{
				ID:   domain.DocID(id),
				Path: meta.Path,
				URL:  meta.URL,
			})
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	// Bolt iterates keys lexicographically; results are presented by
	// numeric document ID.
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
