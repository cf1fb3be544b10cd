// Package forcomp is the public embedding API of the desugaring engine.
//
// Hosts build a comprehension from already-parsed terms and receive the
// equivalent combinator expression:
//
//	result, err := forcomp.For(
//	    forcomp.Bind(forcomp.Name("x"), forcomp.Raw("xs")),
//	    forcomp.When(forcomp.Raw("x > 1")),
//	).Yield(forcomp.Ident("x")).Desugar()
//	// result.Render() == "xs.withFilter(x => x > 1)"
package forcomp

import (
	"errors"

	"github.com/forlang/forc/internal/diagnostics"
	"github.com/forlang/forc/internal/names"
	"github.com/forlang/forc/internal/prettyprinter"
	"github.com/forlang/forc/internal/rewrite"
	"github.com/forlang/forc/internal/term"
)

// Error codes returned through CodeOf.
const (
	CodeMalformedComprehension = string(diagnostics.ErrD001)
	CodeComprehensionTooLarge  = string(diagnostics.ErrD002)
	CodeUnsupportedPattern     = string(diagnostics.ErrD003)
)

// Expr wraps a host expression or a desugared combinator tree.
type Expr struct {
	node term.Expression
}

// Pattern wraps a binding target.
type Pattern struct {
	node term.Pattern
}

// Clause wraps one comprehension step.
type Clause struct {
	node term.Clause
}

// Ident builds an identifier expression.
func Ident(name string) Expr {
	return Expr{node: &term.Identifier{Value: name}}
}

// Raw builds an opaque host expression carried through verbatim.
func Raw(text string) Expr {
	return Expr{node: &term.RawExpr{Text: text}}
}

// Tuple builds a tuple literal.
func Tuple(elems ...Expr) Expr {
	nodes := make([]term.Expression, len(elems))
	for i, e := range elems {
		nodes[i] = e.node
	}
	return Expr{node: &term.TupleLiteral{Elements: nodes}}
}

// Name builds an identifier pattern.
func Name(name string) Pattern {
	return Pattern{node: &term.IdentifierPattern{Value: name}}
}

// Wildcard builds the discarding pattern.
func Wildcard() Pattern {
	return Pattern{node: &term.WildcardPattern{}}
}

// TupleOf builds a tuple pattern; arity must be at least two.
func TupleOf(elems ...Pattern) Pattern {
	nodes := make([]term.Pattern, len(elems))
	for i, p := range elems {
		nodes[i] = p.node
	}
	return Pattern{node: &term.TuplePattern{Elements: nodes}}
}

// Bind builds a generator clause: pattern <- from.
func Bind(p Pattern, from Expr) Clause {
	return Clause{node: &term.GeneratorClause{Pattern: p.node, Source: from.node}}
}

// Let builds a pure alias clause: pattern = value.
func Let(p Pattern, value Expr) Clause {
	return Clause{node: &term.AliasClause{Pattern: p.node, Value: value.node}}
}

// When builds a guard clause.
func When(cond Expr) Clause {
	return Clause{node: &term.GuardClause{Cond: cond.node}}
}

// Run builds an exec clause: a monadic expression evaluated without binding.
func Run(expr Expr) Clause {
	return Clause{node: &term.ExecClause{Expr: expr.node}}
}

// Comprehension accumulates clauses and an optional yield.
type Comprehension struct {
	clauses []term.Clause
	yield   term.Expression
}

// For starts a comprehension from its clauses.
func For(clauses ...Clause) *Comprehension {
	c := &Comprehension{}
	for _, cl := range clauses {
		c.clauses = append(c.clauses, cl.node)
	}
	return c
}

// Yield sets the trailing yield expression.
func (c *Comprehension) Yield(e Expr) *Comprehension {
	c.yield = e.node
	return c
}

// Option configures a desugaring run.
type Option func(*rewrite.Options)

// WithMaxClauses overrides the clause cap.
func WithMaxClauses(n int) Option {
	return func(o *rewrite.Options) { o.MaxClauses = n }
}

// WithUUIDNames derives synthetic names from UUIDs instead of a counter, for
// hosts splicing several desugared trees into one scope.
func WithUUIDNames() Option {
	return func(o *rewrite.Options) { o.Names = names.NewUUIDSupply() }
}

// Desugar rewrites the comprehension into a combinator expression.
func (c *Comprehension) Desugar(opts ...Option) (Expr, error) {
	var ro rewrite.Options
	for _, opt := range opts {
		opt(&ro)
	}
	comp := &term.Comprehension{Clauses: c.clauses, Yield: c.yield}
	result, err := rewrite.Desugar(comp, ro)
	if err != nil {
		return Expr{}, err
	}
	return Expr{node: result}, nil
}

// Render returns the combinator-call source text of the expression.
func (e Expr) Render() string {
	if e.node == nil {
		return ""
	}
	p := prettyprinter.NewCodePrinter()
	e.node.Accept(p)
	return p.String()
}

// Tree returns the structural tree rendering of the expression.
func (e Expr) Tree() string {
	if e.node == nil {
		return ""
	}
	p := prettyprinter.NewTreePrinter()
	e.node.Accept(p)
	return p.String()
}

// Equal reports structural equality with another expression.
func (e Expr) Equal(o Expr) bool {
	return term.Equal(e.node, o.node)
}

// CodeOf extracts the stable error code from a Desugar failure, or "" if the
// error did not come from this engine.
func CodeOf(err error) string {
	var de *diagnostics.DiagnosticError
	if errors.As(err, &de) {
		return string(de.Code)
	}
	return ""
}
