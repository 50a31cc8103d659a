package port

// Normalizer reduces a raw token to the lemma form used as index keys.
// The index build and the query parser must share one implementation so
// that query vocabulary and index vocabulary stay consistent.
type Normalizer interface {
	Normalize(token string) string
}
