// Package boolquery parses and evaluates infix boolean retrieval
// expressions over lemma terms: AND, OR, NOT and parentheses, with
// precedence NOT > AND > OR.
package boolquery

// Node is one node of a parsed query. A query is an immutable tree of
// Term, And, Or and Not nodes.
type Node interface {
	node()
}

// Term matches documents containing a lemma.
type Term struct {
	Lemma string
}

// And matches documents present in both operands.
type And struct {
	Left, Right Node
}

// Or matches documents present in either operand.
type Or struct {
	Left, Right Node
}

// Not matches documents of the universe absent from the operand.
type Not struct {
	Operand Node
}

func (Term) node() {}
func (And) node()  {}
func (Or) node()   {}
func (Not) node()  {}
