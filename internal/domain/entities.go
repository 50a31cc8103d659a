package domain

// DocID identifies one document in the corpus. IDs come from the numeric
// part of the lemma file names (lemmas_<N>.txt) and are unique within an
// index.
type DocID int

// Document maps a corpus ID back to its source page.
type Document struct {
	ID   DocID
	Path string
	URL  string
}

// PostingList is the set of documents containing a lemma. IDs are strictly
// ascending with no duplicates, so set operations run as linear merges and
// serialization is deterministic.
type PostingList []DocID

// PostingTable is the inverted index: lemma → posting list. Every stored
// lemma has a non-empty posting list; lemmas that appear in no document are
// never stored.
type PostingTable map[string]PostingList
