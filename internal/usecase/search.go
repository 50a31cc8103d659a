package usecase

import (
	"lemsearch/internal/adapter/boolquery"
	"lemsearch/internal/domain"
	"lemsearch/internal/port"
)

// SearchUseCase parses and evaluates boolean queries against a loaded
// index.
type SearchUseCase struct {
	parser    *boolquery.Parser
	evaluator *boolquery.Evaluator
	presenter *Presenter
}

// NewSearchUseCase creates a search use case. The normalizer must agree
// with the one used to build the index.
func NewSearchUseCase(index boolquery.Index, normalizer port.Normalizer, presenter *Presenter) *SearchUseCase {
	return &SearchUseCase{
		parser:    boolquery.NewParser(normalizer),
		evaluator: boolquery.NewEvaluator(index),
		presenter: presenter,
	}
}

// SearchResult is the outcome of one query.
type SearchResult struct {
	IDs       domain.PostingList
	Documents []domain.Document
}

// Search runs one boolean query. Grammar violations surface as
// *domain.SyntaxError; an empty result is valid output.
func (u *SearchUseCase) Search(query string) (*SearchResult, error) {
	node, err := u.parser.Parse(query)
	if err != nil {
		return nil, err
	}

	ids, err := u.evaluator.Eval(node)
	if err != nil {
		return nil, err
	}

	result := &SearchResult{IDs: ids}
	if u.presenter != nil {
		result.Documents = u.presenter.Present(ids)
	}
	return result, nil
}
