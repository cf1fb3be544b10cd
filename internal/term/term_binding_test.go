package term_test

import (
	"testing"

	"github.com/forlang/forc/internal/diagnostics"
	"github.com/forlang/forc/internal/term"
)

func ident(name string) *term.Identifier {
	return &term.Identifier{Value: name}
}

func pident(name string) *term.IdentifierPattern {
	return &term.IdentifierPattern{Value: name}
}

func TestSameBinding(t *testing.T) {
	testCases := []struct {
		name    string
		pattern term.Pattern
		expr    term.Expression
		want    bool
	}{
		{"identifier_match", pident("a"), ident("a"), true},
		{"identifier_mismatch", pident("a"), ident("b"), false},
		{"identifier_vs_raw", pident("a"), &term.RawExpr{Text: "a"}, false},
		{"wildcard_never_matches", &term.WildcardPattern{}, ident("_"), false},
		{
			"tuple_match",
			&term.TuplePattern{Elements: []term.Pattern{pident("a"), pident("b")}},
			&term.TupleLiteral{Elements: []term.Expression{ident("a"), ident("b")}},
			true,
		},
		{
			"tuple_order_matters",
			&term.TuplePattern{Elements: []term.Pattern{pident("a"), pident("b")}},
			&term.TupleLiteral{Elements: []term.Expression{ident("b"), ident("a")}},
			false,
		},
		{
			"tuple_arity_mismatch",
			&term.TuplePattern{Elements: []term.Pattern{pident("a"), pident("b")}},
			&term.TupleLiteral{Elements: []term.Expression{ident("a"), ident("b"), ident("c")}},
			false,
		},
		{
			"nested_tuple_match",
			&term.TuplePattern{Elements: []term.Pattern{
				&term.TuplePattern{Elements: []term.Pattern{pident("a"), pident("b")}},
				pident("c"),
			}},
			&term.TupleLiteral{Elements: []term.Expression{
				&term.TupleLiteral{Elements: []term.Expression{ident("a"), ident("b")}},
				ident("c"),
			}},
			true,
		},
		{
			"tuple_with_wildcard_component",
			&term.TuplePattern{Elements: []term.Pattern{pident("a"), &term.WildcardPattern{}}},
			&term.TupleLiteral{Elements: []term.Expression{ident("a"), ident("_")}},
			false,
		},
		{"tuple_vs_identifier", &term.TuplePattern{Elements: []term.Pattern{pident("a"), pident("b")}}, ident("a"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := term.SameBinding(tc.pattern, tc.expr); got != tc.want {
				t.Errorf("SameBinding = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	mapCall := &term.MapCall{
		Source:  &term.RawExpr{Text: "xs"},
		Pattern: pident("x"),
		Body:    &term.RawExpr{Text: "x + 1"},
	}
	sameMap := &term.MapCall{
		Source:  &term.RawExpr{Text: "xs"},
		Pattern: pident("x"),
		Body:    &term.RawExpr{Text: "x + 1"},
	}
	otherMap := &term.MapCall{
		Source:  &term.RawExpr{Text: "xs"},
		Pattern: pident("x"),
		Body:    &term.RawExpr{Text: "x + 2"},
	}

	testCases := []struct {
		name string
		a, b term.Expression
		want bool
	}{
		{"identifiers", ident("a"), ident("a"), true},
		{"raw_text_differs", &term.RawExpr{Text: "f(x)"}, &term.RawExpr{Text: "g(x)"}, false},
		{"ident_vs_raw", ident("a"), &term.RawExpr{Text: "a"}, false},
		{"map_calls_equal", mapCall, sameMap, true},
		{"map_calls_differ", mapCall, otherMap, false},
		{"nil_both", nil, nil, true},
		{"nil_one", ident("a"), nil, false},
		{
			"binding_blocks",
			&term.BindingBlock{
				Bindings: []*term.Binding{{Pattern: pident("b"), Value: ident("a")}},
				Body:     ident("b"),
			},
			&term.BindingBlock{
				Bindings: []*term.Binding{{Pattern: pident("b"), Value: ident("a")}},
				Body:     ident("b"),
			},
			true,
		},
		{
			"flatmap_vs_map",
			&term.FlatMapCall{Source: ident("xs"), Pattern: pident("x"), Body: ident("x")},
			&term.MapCall{Source: ident("xs"), Pattern: pident("x"), Body: ident("x")},
			false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := term.Equal(tc.a, tc.b); got != tc.want {
				t.Errorf("Equal = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestValidatePattern(t *testing.T) {
	testCases := []struct {
		name     string
		pattern  term.Pattern
		wantCode diagnostics.ErrorCode // "" means valid
	}{
		{"identifier", pident("x"), ""},
		{"wildcard", &term.WildcardPattern{}, ""},
		{"tuple", &term.TuplePattern{Elements: []term.Pattern{pident("a"), pident("b")}}, ""},
		{"nil", nil, diagnostics.ErrD003},
		{"tuple_arity_one", &term.TuplePattern{Elements: []term.Pattern{pident("a")}}, diagnostics.ErrD003},
		{"tuple_arity_zero", &term.TuplePattern{}, diagnostics.ErrD003},
		{
			"nested_bad_tuple",
			&term.TuplePattern{Elements: []term.Pattern{
				pident("a"),
				&term.TuplePattern{Elements: []term.Pattern{pident("b")}},
			}},
			diagnostics.ErrD003,
		},
		{
			"nil_component",
			&term.TuplePattern{Elements: []term.Pattern{pident("a"), nil}},
			diagnostics.ErrD003,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := term.ValidatePattern(tc.pattern)
			if tc.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %s, got none", tc.wantCode)
			}
			if err.Code != tc.wantCode {
				t.Errorf("error code = %s, want %s", err.Code, tc.wantCode)
			}
		})
	}
}
