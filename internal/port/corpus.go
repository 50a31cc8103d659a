package port

import "lemsearch/internal/domain"

// CorpusDoc is one lemmatized document found in the corpus directory.
type CorpusDoc struct {
	ID   domain.DocID
	Path string
}

// CorpusSource enumerates lemmatized documents and reads their lemma lists.
type CorpusSource interface {
	// List returns the corpus documents sorted by ascending ID.
	List(dir string) ([]CorpusDoc, error)

	// Lemmas returns the lemmas of one document in file order. A lemma may
	// appear more than once.
	Lemmas(doc CorpusDoc) ([]string, error)
}
