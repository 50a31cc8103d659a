package boolquery

import (
	"strings"
	"unicode"

	"lemsearch/internal/domain"
)

type tokenKind int

const (
	tokTerm tokenKind = iota
	tokAnd
	tokOr
	tokNot
	tokLParen
	tokRParen
	tokEOF
)

type token struct {
	kind tokenKind
	text string
	pos  int // rune offset in the input
}

// lex splits a query string into tokens. Operator keywords are matched
// case-insensitively; everything else made of letters and digits is a term.
func lex(input string) ([]token, error) {
	var tokens []token
	runes := []rune(input)

	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '(':
			tokens = append(tokens, token{kind: tokLParen, text: "(", pos: i})
			i++
		case r == ')':
			tokens = append(tokens, token{kind: tokRParen, text: ")", pos: i})
			i++
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i])) {
				i++
			}
			word := string(runes[start:i])
			tokens = append(tokens, token{kind: keywordKind(word), text: word, pos: start})
		default:
			return nil, &domain.SyntaxError{
				Pos:      i,
				Fragment: string(r),
				Reason:   "unexpected character",
			}
		}
	}

	tokens = append(tokens, token{kind: tokEOF, pos: len(runes)})
	return tokens, nil
}

func keywordKind(word string) tokenKind {
	switch strings.ToUpper(word) {
	case "AND":
		return tokAnd
	case "OR":
		return tokOr
	case "NOT":
		return tokNot
	default:
		return tokTerm
	}
}
