package analyzer

import (
	"strings"

	"github.com/kljensen/snowball"

	"lemsearch/internal/port"
)

var _ port.Normalizer = (*SnowballNormalizer)(nil)

// SnowballNormalizer reduces tokens to their lemma form with the snowball
// stemmer for the configured language.
type SnowballNormalizer struct {
	language string
}

// NewSnowballNormalizer creates a normalizer for the given snowball
// language ("english", "russian", ...).
func NewSnowballNormalizer(language string) *SnowballNormalizer {
	return &SnowballNormalizer{language: language}
}

// Normalize lowercases the token and stems it. Tokens the stemmer cannot
// handle are returned lowercased; an unknown word is still a valid lemma.
func (n *SnowballNormalizer) Normalize(token string) string {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return ""
	}
	stemmed, err := snowball.Stem(token, n.language, false)
	if err != nil {
		return token
	}
	return stemmed
}
