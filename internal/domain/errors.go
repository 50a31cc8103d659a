package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyCorpus is returned when an index build finds no lemma files in
// the corpus directory.
var ErrEmptyCorpus = errors.New("corpus contains no documents")

// MalformedIndexError reports a serialized index file that violates the
// line or ordering contract. A partially trusted index is never usable, so
// loading stops at the first bad line.
type MalformedIndexError struct {
	Line   int
	Reason string
}

func (e *MalformedIndexError) Error() string {
	return fmt.Sprintf("malformed index at line %d: %s", e.Line, e.Reason)
}

// SyntaxError reports a boolean expression that violates the query grammar.
// It is local to one query: the caller reports it and keeps accepting new
// queries.
type SyntaxError struct {
	Pos      int
	Fragment string
	Reason   string
}

func (e *SyntaxError) Error() string {
	if e.Fragment == "" {
		return fmt.Sprintf("syntax error at position %d: %s", e.Pos, e.Reason)
	}
	return fmt.Sprintf("syntax error at position %d near %q: %s", e.Pos, e.Fragment, e.Reason)
}
