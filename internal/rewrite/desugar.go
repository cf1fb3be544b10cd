// Package rewrite implements the desugaring engine for monadic
// for-comprehensions: a recursive rewriting of clause sequences into chains
// of map, flatMap and withFilter calls, with redundant trailing maps elided.
//
// The transformation is pure. Input nodes are never mutated, every output
// node is freshly allocated, and all state lives on the call stack, so
// concurrent calls on independent comprehensions need no synchronization.
package rewrite

import (
	"fmt"

	"github.com/forlang/forc/internal/config"
	"github.com/forlang/forc/internal/diagnostics"
	"github.com/forlang/forc/internal/names"
	"github.com/forlang/forc/internal/term"
	"github.com/forlang/forc/internal/token"
)

// Options configures a single desugaring run. The zero value is usable:
// a fresh deterministic name supply and the default clause cap.
type Options struct {
	// Names supplies synthetic binding names. Injected so the engine itself
	// stays stateless; nil means a fresh CounterSupply per call.
	Names names.Supply

	// MaxClauses caps the clause count (and therefore recursion depth).
	// Zero or negative means config.DefaultMaxClauses.
	MaxClauses int
}

// Desugar rewrites a comprehension into an equivalent combinator expression.
// It is all-or-nothing: on failure no partial output is returned.
func Desugar(comp *term.Comprehension, opts Options) (term.Expression, *diagnostics.DiagnosticError) {
	supply := opts.Names
	if supply == nil {
		supply = names.NewCounterSupply()
	}
	maxClauses := opts.MaxClauses
	if maxClauses <= 0 {
		maxClauses = config.DefaultMaxClauses
	}

	if err := Validate(comp, maxClauses); err != nil {
		return nil, err
	}

	e := &engine{names: supply}
	e.normalizeExec(comp)
	return e.desugarFrom(0)
}

// engine holds the per-call state: the exec-normalized clause slice, the
// yield expression, and the injected name supply. Recursion is by index into
// the flat clause slice; the slice is never re-sliced or copied per step.
type engine struct {
	clauses []term.Clause
	yield   term.Expression
	names   names.Supply
}

// normalizeExec rewrites exec clauses into wildcard generators up front.
// A non-final exec discards its value, so it becomes a true wildcard bind.
// A final exec of a no-yield comprehension still flows its value to the
// result, so it binds a fresh name that the synthesized yield returns —
// which the elision rule then collapses, leaving the exec expression itself
// as the tail of the chain.
func (e *engine) normalizeExec(comp *term.Comprehension) {
	e.yield = comp.Yield
	e.clauses = make([]term.Clause, len(comp.Clauses))
	for i, c := range comp.Clauses {
		ex, ok := c.(*term.ExecClause)
		if !ok {
			e.clauses[i] = c
			continue
		}
		if i == len(comp.Clauses)-1 && comp.Yield == nil {
			name := e.names.Fresh(config.ExecNameHint)
			e.clauses[i] = &term.GeneratorClause{
				Token:   ex.Token,
				Pattern: &term.IdentifierPattern{Token: token.Synthetic(token.IDENT, name), Value: name},
				Source:  ex.Expr,
			}
			e.yield = &term.Identifier{Token: token.Synthetic(token.IDENT, name), Value: name}
			continue
		}
		e.clauses[i] = &term.GeneratorClause{
			Token:   ex.Token,
			Pattern: &term.WildcardPattern{Token: token.Synthetic(token.WILDCARD, "_")},
			Source:  ex.Expr,
		}
	}
}

func (e *engine) desugarFrom(i int) (term.Expression, *diagnostics.DiagnosticError) {
	if i == len(e.clauses) {
		// Base case: nothing left to bind, the yield expression stands alone.
		return e.yield, nil
	}

	switch head := e.clauses[i].(type) {
	case *term.AliasClause:
		// Leading aliases (at the very start or heading a continuation):
		// nested immutable bindings around the desugared rest.
		info := classifyAt(e.clauses, i)
		if info.guardAfterRun {
			g := e.clauses[i+info.aliasRun]
			return nil, diagnostics.NewError(diagnostics.ErrD001, g.GetToken(),
				"guard may only follow aliases that are bound after a generator")
		}
		bindings := make([]*term.Binding, 0, info.aliasRun)
		for k := i; k < i+info.aliasRun; k++ {
			a := e.clauses[k].(*term.AliasClause)
			bindings = append(bindings, &term.Binding{Pattern: a.Pattern, Value: a.Value})
		}
		body, err := e.desugarFrom(i + info.aliasRun)
		if err != nil {
			return nil, err
		}
		return &term.BindingBlock{Token: head.GetToken(), Bindings: bindings, Body: body}, nil

	case *term.GuardClause:
		// Unreachable after Validate; kept as a hard stop so a broken caller
		// can never receive partially-desugared output.
		return nil, diagnostics.NewError(diagnostics.ErrD001, head.GetToken(),
			"guard has no preceding generator to filter")

	case *term.GeneratorClause:
		return e.desugarGenerator(head.Pattern, head.Source, i+1)
	}

	return nil, diagnostics.NewError(diagnostics.ErrD001, e.clauses[i].GetToken(),
		fmt.Sprintf("unsupported clause %T", e.clauses[i]))
}

// desugarGenerator continues the chain for a generator binding pat from src,
// with next indexing the first clause after the generator. Guards absorbed
// by earlier steps arrive here already folded into src.
func (e *engine) desugarGenerator(pat term.Pattern, src term.Expression, next int) (term.Expression, *diagnostics.DiagnosticError) {
	// Guards directly after the generator filter its source in written
	// order; consecutive guards stack withFilter calls.
	next, src = e.absorbGuards(next, pat, src)

	info := classifyAt(e.clauses, next)
	if info.aliasRun > 0 {
		if info.guardAfterRun {
			// A guard behind the alias run needs simultaneous visibility
			// into the generator binding and every alias, so thread a
			// synthesized tuple through a single map call and rebind.
			tuplePat, inner := e.tupleThrough(pat, src, next, info.aliasRun)
			return e.desugarGenerator(tuplePat, inner, next+info.aliasRun)
		}
		// No guard behind the run: push the aliases into the continuation
		// body instead of constructing a tuple.
		body, err := e.desugarFrom(next)
		if err != nil {
			return nil, err
		}
		return &term.FlatMapCall{Token: pat.GetToken(), Source: src, Pattern: pat, Body: body}, nil
	}

	if next == len(e.clauses) {
		// Final generator directly before the yield: a map whose body is
		// exactly the bound pattern would be identity, so return the source
		// (or the withFilter chain around it) unchanged.
		if term.SameBinding(pat, e.yield) {
			return src, nil
		}
		return &term.MapCall{Token: pat.GetToken(), Source: src, Pattern: pat, Body: e.yield}, nil
	}

	body, err := e.desugarFrom(next)
	if err != nil {
		return nil, err
	}
	return &term.FlatMapCall{Token: pat.GetToken(), Source: src, Pattern: pat, Body: body}, nil
}

// absorbGuards folds the guards starting at i into withFilter wrappers
// around src and returns the first unconsumed position.
func (e *engine) absorbGuards(i int, pat term.Pattern, src term.Expression) (int, term.Expression) {
	for i < len(e.clauses) {
		g, ok := e.clauses[i].(*term.GuardClause)
		if !ok {
			break
		}
		src = &term.WithFilterCall{Token: g.Token, Source: src, Pattern: pat, Cond: g.Cond}
		i++
	}
	return i, src
}

// tupleThrough builds the intermediate generator for an alias run followed
// by a guard: a map over src that evaluates the aliases and emits a tuple of
// the generator binding plus every alias binding. Wildcards cannot flow
// through a tuple, so any wildcard in the involved patterns is renamed to a
// fresh identifier first. The map built here is intentionally never elided —
// its body is a tuple, not the raw binding.
func (e *engine) tupleThrough(pat term.Pattern, src term.Expression, i, run int) (*term.TuplePattern, term.Expression) {
	renamed := e.renameWildcards(pat)

	elems := make([]term.Pattern, 0, run+1)
	elems = append(elems, renamed)
	bindings := make([]*term.Binding, 0, run)
	for k := i; k < i+run; k++ {
		a := e.clauses[k].(*term.AliasClause)
		ap := e.renameWildcards(a.Pattern)
		elems = append(elems, ap)
		bindings = append(bindings, &term.Binding{Pattern: ap, Value: a.Value})
	}

	litElems := make([]term.Expression, 0, len(elems))
	for _, p := range elems {
		litElems = append(litElems, patternExpr(p))
	}

	tuplePat := &term.TuplePattern{Token: pat.GetToken(), Elements: elems}
	inner := &term.MapCall{
		Token:   pat.GetToken(),
		Source:  src,
		Pattern: renamed,
		Body: &term.BindingBlock{
			Token:    e.clauses[i].GetToken(),
			Bindings: bindings,
			Body:     &term.TupleLiteral{Elements: litElems},
		},
	}
	return tuplePat, inner
}

// renameWildcards replaces every wildcard in p with a fresh identifier
// pattern so the binding can be referenced from the synthesized tuple.
// Identifier patterns are reused as-is; nothing is mutated.
func (e *engine) renameWildcards(p term.Pattern) term.Pattern {
	switch pat := p.(type) {
	case *term.WildcardPattern:
		name := e.names.Fresh(config.TupleNameHint)
		return &term.IdentifierPattern{Token: token.Synthetic(token.IDENT, name), Value: name}
	case *term.TuplePattern:
		elems := make([]term.Pattern, len(pat.Elements))
		for i, el := range pat.Elements {
			elems[i] = e.renameWildcards(el)
		}
		return &term.TuplePattern{Token: pat.Token, Elements: elems}
	default:
		return p
	}
}

// patternExpr converts a wildcard-free pattern into the expression that
// references its bindings: an identifier, or a tuple literal of them.
func patternExpr(p term.Pattern) term.Expression {
	switch pat := p.(type) {
	case *term.IdentifierPattern:
		return &term.Identifier{Token: pat.Token, Value: pat.Value}
	case *term.TuplePattern:
		elems := make([]term.Expression, len(pat.Elements))
		for i, el := range pat.Elements {
			elems[i] = patternExpr(el)
		}
		return &term.TupleLiteral{Token: pat.Token, Elements: elems}
	default:
		// Wildcards are renamed before this point; fall back to the lexeme.
		return &term.Identifier{Token: p.GetToken(), Value: p.TokenLiteral()}
	}
}
