package analyzer

import (
	"strings"

	"lemsearch/internal/port"
)

var _ port.Normalizer = (*VocabularyNormalizer)(nil)

// VocabularyNormalizer maps query tokens to lemmas using the corpus'
// own token→lemma vocabulary, read from the lemma files. A token the
// corpus never produced falls through to the inner normalizer, so a
// vocabulary mismatch yields at worst an empty posting list, never an
// error.
type VocabularyNormalizer struct {
	vocab    map[string]string
	fallback port.Normalizer
}

// NewVocabularyNormalizer creates a normalizer over the given token→lemma
// vocabulary. fallback handles out-of-vocabulary tokens and may be nil, in
// which case unknown tokens are just lowercased.
func NewVocabularyNormalizer(vocab map[string]string, fallback port.Normalizer) *VocabularyNormalizer {
	return &VocabularyNormalizer{
		vocab:    vocab,
		fallback: fallback,
	}
}

func (n *VocabularyNormalizer) Normalize(token string) string {
	token = strings.ToLower(strings.TrimSpace(token))
	if lemma, ok := n.vocab[token]; ok {
		return lemma
	}
	if n.fallback != nil {
		return n.fallback.Normalize(token)
	}
	return token
}
