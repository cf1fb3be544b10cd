package rewrite

import (
	"fmt"

	"github.com/forlang/forc/internal/diagnostics"
	"github.com/forlang/forc/internal/term"
	"github.com/forlang/forc/internal/token"
)

// runInfo describes the clause-run shape the rewrite rules pattern-match on,
// starting at a given position.
type runInfo struct {
	aliasRun      int  // length of the contiguous alias run starting here (may be 0)
	guardAfterRun bool // clause immediately after the run is a guard
	atStart       bool // position 0 of the whole comprehension
}

// classifyAt inspects the clause sequence at position i and reports the
// longest initial alias run plus the one-clause look-ahead that rule
// selection depends on.
func classifyAt(clauses []term.Clause, i int) runInfo {
	info := runInfo{atStart: i == 0}
	j := i
	for j < len(clauses) {
		if _, ok := clauses[j].(*term.AliasClause); !ok {
			break
		}
		j++
	}
	info.aliasRun = j - i
	if j < len(clauses) {
		_, info.guardAfterRun = clauses[j].(*term.GuardClause)
	}
	return info
}

// Validate rejects malformed comprehensions before any rewriting happens.
// The engine never produces partially-desugared output: every structural
// violation surfaces here (or not at all), and rewriting is total on
// whatever Validate accepts.
func Validate(comp *term.Comprehension, maxClauses int) *diagnostics.DiagnosticError {
	if comp == nil {
		return diagnostics.NewError(diagnostics.ErrD001, token.Token{}, "nil comprehension")
	}
	if len(comp.Clauses) == 0 && comp.Yield == nil {
		return diagnostics.NewError(diagnostics.ErrD001, comp.Token, "empty comprehension with no yield")
	}
	if len(comp.Clauses) > maxClauses {
		return diagnostics.NewError(diagnostics.ErrD002, comp.Token,
			fmt.Sprintf("comprehension has %d clauses, limit is %d", len(comp.Clauses), maxClauses))
	}

	// Every clause entry and every clause sub-expression must be present.
	// Hosts build comprehensions programmatically, so zero-value clauses and
	// expressions are easy to construct; they fail here, never as a panic in
	// the rewriter or the printers.
	for i, c := range comp.Clauses {
		switch cl := c.(type) {
		case *term.GeneratorClause:
			if cl == nil {
				return diagnostics.NewError(diagnostics.ErrD001, token.Token{},
					fmt.Sprintf("clause %d is missing", i+1))
			}
			if err := term.ValidatePattern(cl.Pattern); err != nil {
				return err
			}
			if cl.Source == nil {
				return diagnostics.NewError(diagnostics.ErrD001, cl.GetToken(),
					fmt.Sprintf("generator clause %d has no source expression", i+1))
			}
		case *term.AliasClause:
			if cl == nil {
				return diagnostics.NewError(diagnostics.ErrD001, token.Token{},
					fmt.Sprintf("clause %d is missing", i+1))
			}
			if err := term.ValidatePattern(cl.Pattern); err != nil {
				return err
			}
			if cl.Value == nil {
				return diagnostics.NewError(diagnostics.ErrD001, cl.GetToken(),
					fmt.Sprintf("alias clause %d has no value expression", i+1))
			}
		case *term.GuardClause:
			if cl == nil || cl.Cond == nil {
				return diagnostics.NewError(diagnostics.ErrD001, cl.GetToken(),
					fmt.Sprintf("guard clause %d has no condition", i+1))
			}
		case *term.ExecClause:
			if cl == nil || cl.Expr == nil {
				return diagnostics.NewError(diagnostics.ErrD001, cl.GetToken(),
					fmt.Sprintf("exec clause %d has no expression", i+1))
			}
		default:
			return diagnostics.NewError(diagnostics.ErrD001, token.Token{},
				fmt.Sprintf("clause %d is missing", i+1))
		}
	}

	// A comprehension without a yield must end in an exec clause; a final
	// generator or alias would bind a value nothing consumes.
	if comp.Yield == nil {
		last := comp.Clauses[len(comp.Clauses)-1]
		if _, ok := last.(*term.ExecClause); !ok {
			return diagnostics.NewError(diagnostics.ErrD001, last.GetToken(),
				"comprehension without yield must end in an exec clause")
		}
	}

	// Every guard must trace back, over aliases and earlier guards, to a
	// generator or exec clause. A guard that reaches the start of the
	// sequence instead has no binding to filter.
	for i, c := range comp.Clauses {
		if _, ok := c.(*term.GuardClause); !ok {
			continue
		}
		anchored := false
	scan:
		for k := i - 1; k >= 0; k-- {
			switch comp.Clauses[k].(type) {
			case *term.AliasClause, *term.GuardClause:
				// keep scanning
			case *term.GeneratorClause, *term.ExecClause:
				anchored = true
				break scan
			default:
				break scan
			}
		}
		if !anchored {
			return diagnostics.NewError(diagnostics.ErrD001, c.GetToken(),
				"guard has no preceding generator to filter")
		}
	}

	return nil
}
