package boolquery

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"lemsearch/internal/adapter/invindex"
	"lemsearch/internal/domain"
)

// scenarioIndex is the 3-document corpus from the retrieval contract:
// doc1={cat,dog}, doc2={dog,bird}, doc3={cat,bird}.
func scenarioIndex() *invindex.Store {
	return invindex.NewStore(domain.PostingTable{
		"cat":  {1, 3},
		"dog":  {1, 2},
		"bird": {2, 3},
	})
}

func mustEval(t *testing.T, index Index, query string) domain.PostingList {
	t.Helper()
	node, err := NewParser(lowerNormalizer{}).Parse(query)
	if err != nil {
		t.Fatalf("Parse(%q): %v", query, err)
	}
	result, err := NewEvaluator(index).Eval(node)
	if err != nil {
		t.Fatalf("Eval(%q): %v", query, err)
	}
	return result
}

func TestEvaluator_Scenario(t *testing.T) {
	index := scenarioIndex()

	tests := []struct {
		query string
		want  domain.PostingList
	}{
		{"cat AND dog", domain.PostingList{1}},
		{"cat OR bird", domain.PostingList{1, 2, 3}},
		{"NOT dog", domain.PostingList{3}},
		{"cat AND NOT bird", domain.PostingList{1}},
		{"cat", domain.PostingList{1, 3}},
		{"NOT (cat OR dog OR bird)", domain.PostingList{}},
	}

	for _, tt := range tests {
		got := mustEval(t, index, tt.query)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("eval(%q) mismatch (-want +got):\n%s", tt.query, diff)
		}
	}
}

func TestEvaluator_DeMorgan(t *testing.T) {
	index := scenarioIndex()

	pairs := [][2]string{
		{"NOT (cat OR bird)", "(NOT cat) AND (NOT bird)"},
		{"NOT (dog AND bird)", "(NOT dog) OR (NOT bird)"},
	}

	for _, pair := range pairs {
		left := mustEval(t, index, pair[0])
		right := mustEval(t, index, pair[1])
		if diff := cmp.Diff(left, right); diff != "" {
			t.Errorf("%q and %q should evaluate equally (-left +right):\n%s", pair[0], pair[1], diff)
		}
	}
}

func TestEvaluator_Precedence(t *testing.T) {
	index := scenarioIndex()

	implicit := mustEval(t, index, "cat AND dog OR bird")
	explicit := mustEval(t, index, "(cat AND dog) OR bird")
	if diff := cmp.Diff(explicit, implicit); diff != "" {
		t.Errorf("precedence mismatch (-explicit +implicit):\n%s", diff)
	}

	// With this corpus the other grouping diverges: cat AND (dog OR bird)
	// is {1,3}∩{1,2,3}={1,3}, while (cat AND dog) OR bird is {1,2,3}.
	other := mustEval(t, index, "cat AND (dog OR bird)")
	if cmp.Equal(other, implicit) {
		t.Errorf("expected groupings to diverge, both gave %v", implicit)
	}
}

func TestEvaluator_AbsentTerm(t *testing.T) {
	index := scenarioIndex()

	if got := mustEval(t, index, "unicorn"); len(got) != 0 {
		t.Errorf("absent term should evaluate to the empty set, got %v", got)
	}
	if got := mustEval(t, index, "cat AND unicorn"); len(got) != 0 {
		t.Errorf("AND with absent term should be empty, got %v", got)
	}

	got := mustEval(t, index, "NOT unicorn")
	if diff := cmp.Diff(index.Universe(), got); diff != "" {
		t.Errorf("NOT absent should be the full universe (-want +got):\n%s", diff)
	}
}

func TestSetOperations(t *testing.T) {
	a := domain.PostingList{1, 3, 5, 7}
	b := domain.PostingList{2, 3, 6, 7, 9}

	if diff := cmp.Diff(domain.PostingList{3, 7}, intersect(a, b)); diff != "" {
		t.Errorf("intersect mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(domain.PostingList{1, 2, 3, 5, 6, 7, 9}, union(a, b)); diff != "" {
		t.Errorf("union mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(domain.PostingList{1, 5}, difference(a, b)); diff != "" {
		t.Errorf("difference mismatch (-want +got):\n%s", diff)
	}

	empty := domain.PostingList{}
	if got := intersect(a, empty); len(got) != 0 {
		t.Errorf("intersect with empty should be empty, got %v", got)
	}
	if diff := cmp.Diff(a, union(a, empty)); diff != "" {
		t.Errorf("union with empty mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(a, difference(a, empty)); diff != "" {
		t.Errorf("difference with empty mismatch (-want +got):\n%s", diff)
	}
}
