package boolquery

import (
	"lemsearch/internal/domain"
	"lemsearch/internal/port"
)

// Parser builds query ASTs. Term tokens are normalized to lemma form with
// the same normalizer used on the index side, so query vocabulary matches
// index vocabulary.
//
// Grammar:
//
//	expr    := orExpr
//	orExpr  := andExpr ( "OR" andExpr )*
//	andExpr := notExpr ( "AND" notExpr )*
//	notExpr := "NOT" notExpr | atom
//	atom    := TERM | "(" expr ")"
type Parser struct {
	normalizer port.Normalizer
}

// NewParser creates a Parser with the given term normalizer.
func NewParser(normalizer port.Normalizer) *Parser {
	return &Parser{normalizer: normalizer}
}

// Parse converts a raw boolean expression into an AST. Grammar violations
// yield a *domain.SyntaxError naming the offending fragment.
func (p *Parser) Parse(input string) (Node, error) {
	tokens, err := lex(input)
	if err != nil {
		return nil, err
	}
	if tokens[0].kind == tokEOF {
		return nil, &domain.SyntaxError{Pos: 0, Reason: "empty expression"}
	}

	s := &parseState{tokens: tokens, normalizer: p.normalizer}
	node, err := s.parseOr()
	if err != nil {
		return nil, err
	}

	// Anything left over means two expressions in sequence without an
	// operator; guessing an implicit one would be ambiguous.
	if tok := s.peek(); tok.kind != tokEOF {
		return nil, &domain.SyntaxError{
			Pos:      tok.pos,
			Fragment: tok.text,
			Reason:   "expected operator or end of expression",
		}
	}
	return node, nil
}

type parseState struct {
	tokens     []token
	pos        int
	normalizer port.Normalizer
}

func (s *parseState) peek() token {
	return s.tokens[s.pos]
}

func (s *parseState) next() token {
	tok := s.tokens[s.pos]
	if tok.kind != tokEOF {
		s.pos++
	}
	return tok
}

func (s *parseState) parseOr() (Node, error) {
	left, err := s.parseAnd()
	if err != nil {
		return nil, err
	}
	for s.peek().kind == tokOr {
		s.next()
		right, err := s.parseAnd()
		if err != nil {
			return nil, err
		}
		left = Or{Left: left, Right: right}
	}
	return left, nil
}

func (s *parseState) parseAnd() (Node, error) {
	left, err := s.parseNot()
	if err != nil {
		return nil, err
	}
	for s.peek().kind == tokAnd {
		s.next()
		right, err := s.parseNot()
		if err != nil {
			return nil, err
		}
		left = And{Left: left, Right: right}
	}
	return left, nil
}

func (s *parseState) parseNot() (Node, error) {
	if s.peek().kind == tokNot {
		s.next()
		operand, err := s.parseNot()
		if err != nil {
			return nil, err
		}
		return Not{Operand: operand}, nil
	}
	return s.parseAtom()
}

func (s *parseState) parseAtom() (Node, error) {
	tok := s.next()
	switch tok.kind {
	case tokTerm:
		lemma := tok.text
		if s.normalizer != nil {
			lemma = s.normalizer.Normalize(lemma)
		}
		return Term{Lemma: lemma}, nil
	case tokLParen:
		node, err := s.parseOr()
		if err != nil {
			return nil, err
		}
		if closing := s.next(); closing.kind != tokRParen {
			return nil, &domain.SyntaxError{
				Pos:      closing.pos,
				Fragment: closing.text,
				Reason:   "expected closing parenthesis",
			}
		}
		return node, nil
	case tokEOF:
		return nil, &domain.SyntaxError{
			Pos:    tok.pos,
			Reason: "operator is missing an operand",
		}
	default:
		return nil, &domain.SyntaxError{
			Pos:      tok.pos,
			Fragment: tok.text,
			Reason:   "expected a term or an opening parenthesis",
		}
	}
}
