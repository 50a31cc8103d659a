package boolquery

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"lemsearch/internal/domain"
)

type lowerNormalizer struct{}

func (lowerNormalizer) Normalize(token string) string { return strings.ToLower(token) }

func TestParser_Precedence(t *testing.T) {
	p := NewParser(lowerNormalizer{})

	tests := []struct {
		input string
		want  Node
	}{
		{
			// AND binds tighter than OR.
			input: "a AND b OR c",
			want:  Or{Left: And{Left: Term{"a"}, Right: Term{"b"}}, Right: Term{"c"}},
		},
		{
			// NOT binds tighter than AND.
			input: "NOT a AND b",
			want:  And{Left: Not{Operand: Term{"a"}}, Right: Term{"b"}},
		},
		{
			input: "a AND (b OR c)",
			want:  And{Left: Term{"a"}, Right: Or{Left: Term{"b"}, Right: Term{"c"}}},
		},
		{
			input: "NOT NOT a",
			want:  Not{Operand: Not{Operand: Term{"a"}}},
		},
		{
			input: "((a))",
			want:  Term{"a"},
		},
		{
			// Left associativity.
			input: "a OR b OR c",
			want:  Or{Left: Or{Left: Term{"a"}, Right: Term{"b"}}, Right: Term{"c"}},
		},
	}

	for _, tt := range tests {
		got, err := p.Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Parse(%q) AST mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestParser_CaseInsensitiveOperators(t *testing.T) {
	p := NewParser(lowerNormalizer{})

	for _, input := range []string{"a and b", "a AND b", "a And b"} {
		got, err := p.Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", input, err)
		}
		want := And{Left: Term{"a"}, Right: Term{"b"}}
		if diff := cmp.Diff(Node(want), got); diff != "" {
			t.Errorf("Parse(%q) AST mismatch (-want +got):\n%s", input, diff)
		}
	}
}

func TestParser_NormalizesTerms(t *testing.T) {
	p := NewParser(lowerNormalizer{})

	got, err := p.Parse("CaTs")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Node(Term{"cats"}), got); diff != "" {
		t.Errorf("term not normalized (-want +got):\n%s", diff)
	}
}

func TestParser_SyntaxErrors(t *testing.T) {
	p := NewParser(lowerNormalizer{})

	tests := []struct {
		name  string
		input string
	}{
		{"empty expression", ""},
		{"blank expression", "   "},
		{"adjacent terms", "cat dog"},
		{"missing right operand", "cat AND"},
		{"missing left operand", "AND cat"},
		{"dangling NOT", "NOT"},
		{"unbalanced open paren", "(cat AND dog"},
		{"unbalanced close paren", "cat AND dog)"},
		{"empty parens", "()"},
		{"operator pair", "cat AND OR dog"},
		{"stray character", "cat & dog"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse(tt.input)
			var syntaxErr *domain.SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("Parse(%q): expected SyntaxError, got %v", tt.input, err)
			}
		})
	}
}

func TestParser_ErrorNamesFragment(t *testing.T) {
	p := NewParser(lowerNormalizer{})

	_, err := p.Parse("cat dog")
	var syntaxErr *domain.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected SyntaxError, got %v", err)
	}
	if syntaxErr.Fragment != "dog" {
		t.Errorf("expected offending fragment %q, got %q", "dog", syntaxErr.Fragment)
	}
}
