package term

import (
	"fmt"

	"github.com/forlang/forc/internal/diagnostics"
	"github.com/forlang/forc/internal/token"
)

// SameBinding reports whether expr is syntactically the value bound by
// pattern: the identifier named by an identifier pattern, or a tuple literal
// whose components are, recursively, the identifiers of a tuple pattern in
// order. Wildcards bind no name and never match. No semantic equivalence
// beyond syntactic identity is considered — this is the whole of the
// redundant-map elision check.
func SameBinding(pattern Pattern, expr Expression) bool {
	switch p := pattern.(type) {
	case *IdentifierPattern:
		id, ok := expr.(*Identifier)
		return ok && id.Value == p.Value
	case *TuplePattern:
		tl, ok := expr.(*TupleLiteral)
		if !ok || len(tl.Elements) != len(p.Elements) {
			return false
		}
		for i, el := range p.Elements {
			if !SameBinding(el, tl.Elements[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Equal reports structural equality of two expressions, combinator calls
// included. Test support for golden comparisons; tokens are ignored.
func Equal(a, b Expression) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case *Identifier:
		y, ok := b.(*Identifier)
		return ok && x.Value == y.Value
	case *RawExpr:
		y, ok := b.(*RawExpr)
		return ok && x.Text == y.Text
	case *TupleLiteral:
		y, ok := b.(*TupleLiteral)
		if !ok || len(x.Elements) != len(y.Elements) {
			return false
		}
		for i := range x.Elements {
			if !Equal(x.Elements[i], y.Elements[i]) {
				return false
			}
		}
		return true
	case *MapCall:
		y, ok := b.(*MapCall)
		return ok && Equal(x.Source, y.Source) && EqualPattern(x.Pattern, y.Pattern) && Equal(x.Body, y.Body)
	case *FlatMapCall:
		y, ok := b.(*FlatMapCall)
		return ok && Equal(x.Source, y.Source) && EqualPattern(x.Pattern, y.Pattern) && Equal(x.Body, y.Body)
	case *WithFilterCall:
		y, ok := b.(*WithFilterCall)
		return ok && Equal(x.Source, y.Source) && EqualPattern(x.Pattern, y.Pattern) && Equal(x.Cond, y.Cond)
	case *BindingBlock:
		y, ok := b.(*BindingBlock)
		if !ok || len(x.Bindings) != len(y.Bindings) {
			return false
		}
		for i := range x.Bindings {
			if !EqualPattern(x.Bindings[i].Pattern, y.Bindings[i].Pattern) || !Equal(x.Bindings[i].Value, y.Bindings[i].Value) {
				return false
			}
		}
		return Equal(x.Body, y.Body)
	default:
		return false
	}
}

// EqualPattern reports structural equality of two patterns, ignoring tokens.
func EqualPattern(a, b Pattern) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case *IdentifierPattern:
		y, ok := b.(*IdentifierPattern)
		return ok && x.Value == y.Value
	case *WildcardPattern:
		_, ok := b.(*WildcardPattern)
		return ok
	case *TuplePattern:
		y, ok := b.(*TuplePattern)
		if !ok || len(x.Elements) != len(y.Elements) {
			return false
		}
		for i := range x.Elements {
			if !EqualPattern(x.Elements[i], y.Elements[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// ValidatePattern rejects pattern shapes the term model does not recognize:
// nil nodes, unknown implementations, and tuple patterns of arity below two.
func ValidatePattern(p Pattern) *diagnostics.DiagnosticError {
	if p == nil {
		return diagnostics.NewError(diagnostics.ErrD003, token.Token{}, "nil pattern")
	}
	switch pat := p.(type) {
	case *IdentifierPattern, *WildcardPattern:
		return nil
	case *TuplePattern:
		if len(pat.Elements) < 2 {
			return diagnostics.NewError(diagnostics.ErrD003, pat.GetToken(),
				fmt.Sprintf("tuple pattern must have at least 2 components, got %d", len(pat.Elements)))
		}
		for _, el := range pat.Elements {
			if err := ValidatePattern(el); err != nil {
				return err
			}
		}
		return nil
	default:
		return diagnostics.NewError(diagnostics.ErrD003, p.GetToken(),
			fmt.Sprintf("unsupported pattern %T", p))
	}
}
