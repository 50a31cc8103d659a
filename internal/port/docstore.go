package port

import "lemsearch/internal/domain"

// DocumentStore persists crawl metadata so that search results can be
// mapped back to source URLs.
type DocumentStore interface {
	PutDoc(doc domain.Document) error

	GetDoc(id domain.DocID) (domain.Document, error)

	ListDocs() ([]domain.Document, error)

	Close() error
}
