package boolquery

import (
	"fmt"

	"lemsearch/internal/domain"
)

// Index is the read side of a loaded posting table.
type Index interface {
	// Lookup returns the posting list for a lemma, empty if absent.
	Lookup(lemma string) domain.PostingList

	// Universe returns the sorted set of all document IDs in the index.
	Universe() domain.PostingList
}

// Evaluator walks a query AST bottom-up against an index. Set operations
// run as linear merges over the sorted posting lists, so every result is
// sorted ascending and the cost per node is O(n+m).
type Evaluator struct {
	index Index
}

// NewEvaluator creates an Evaluator over the given index.
func NewEvaluator(index Index) *Evaluator {
	return &Evaluator{index: index}
}

// Eval returns the sorted set of document IDs matching the query. An empty
// result is valid output, not an error.
func (e *Evaluator) Eval(n Node) (domain.PostingList, error) {
	switch node := n.(type) {
	case Term:
		return e.index.Lookup(node.Lemma), nil
	case And:
		left, err := e.Eval(node.Left)
		if err != nil {
			return nil, err
		}
		right, err := e.Eval(node.Right)
		if err != nil {
			return nil, err
		}
		return intersect(left, right), nil
	case Or:
		left, err := e.Eval(node.Left)
		if err != nil {
			return nil, err
		}
		right, err := e.Eval(node.Right)
		if err != nil {
			return nil, err
		}
		return union(left, right), nil
	case Not:
		operand, err := e.Eval(node.Operand)
		if err != nil {
			return nil, err
		}
		return difference(e.index.Universe(), operand), nil
	default:
		return nil, fmt.Errorf("unknown query node %T", n)
	}
}

// intersect returns the set intersection of a and b. Both must be sorted
// ascending without duplicates.
func intersect(a, b domain.PostingList) domain.PostingList {
	r := make(domain.PostingList, 0, min(len(a), len(b)))
	var i, j int
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			r = append(r, a[i])
			i++
			j++
		}
	}
	return r
}

// union returns the set union of a and b.
func union(a, b domain.PostingList) domain.PostingList {
	r := make(domain.PostingList, 0, len(a)+len(b))
	var i, j int
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			r = append(r, a[i])
			i++
		case a[i] > b[j]:
			r = append(r, b[j])
			j++
		default:
			r = append(r, a[i])
			i++
			j++
		}
	}
	r = append(r, a[i:]...)
	r = append(r, b[j:]...)
	return r
}

// difference returns the elements of a absent from b.
func difference(a, b domain.PostingList) domain.PostingList {
	r := make(domain.PostingList, 0, len(a))
	var i, j int
	for i < len(a) {
		for j < len(b) && b[j] < a[i] {
			j++
		}
		if j < len(b) && b[j] == a[i] {
			i++
			continue
		}
		r = append(r, a[i])
		i++
	}
	return r
}
