// Package compfile decodes comprehension description files.
//
// A description is a structured YAML document, not surface syntax: clauses
// are explicit mappings and expressions are opaque leaves the engine never
// interprets. Example:
//
//	clauses:
//	  - bind: { pattern: x, from: xs }
//	  - let: { pattern: y, value: "x + 1" }
//	  - when: "y > 1"
//	  - run: "log(y)"
//	yield: { tuple: [x, y] }
//
// Patterns are scalars ("x", "_") or sequences (tuples, nestable).
// Expressions are scalars (identifier-shaped scalars decode to identifiers,
// anything else to raw text), sequences (tuple literals), or explicit
// mappings: {ident: x}, {raw: "f(x)"}, {tuple: [...]}.
package compfile

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/forlang/forc/internal/diagnostics"
	"github.com/forlang/forc/internal/term"
	"github.com/forlang/forc/internal/token"
)

// Document is the top-level description file layout.
type Document struct {
	Clauses []ClauseDoc `yaml:"clauses"`
	Yield   yaml.Node   `yaml:"yield,omitempty"`
}

// ClauseDoc is one clause; exactly one field must be set.
type ClauseDoc struct {
	Bind *BindDoc  `yaml:"bind,omitempty"`
	Let  *LetDoc   `yaml:"let,omitempty"`
	When yaml.Node `yaml:"when,omitempty"`
	Run  yaml.Node `yaml:"run,omitempty"`
}

// BindDoc describes a generator clause: pattern <- from.
type BindDoc struct {
	Pattern yaml.Node `yaml:"pattern"`
	From    yaml.Node `yaml:"from"`
}

// LetDoc describes a pure alias clause: pattern = value.
type LetDoc struct {
	Pattern yaml.Node `yaml:"pattern"`
	Value   yaml.Node `yaml:"value"`
}

// Decode parses a description file into a comprehension term.
func Decode(data []byte) (*term.Comprehension, *diagnostics.DiagnosticError) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, diagnostics.NewError(diagnostics.ErrF001, token.Token{},
			fmt.Sprintf("cannot decode description: %v", err))
	}

	comp := &term.Comprehension{}
	for i, cd := range doc.Clauses {
		clause, err := decodeClause(i, cd)
		if err != nil {
			return nil, err
		}
		comp.Clauses = append(comp.Clauses, clause)
	}
	if !doc.Yield.IsZero() {
		y, err := decodeExpr(&doc.Yield)
		if err != nil {
			return nil, err
		}
		comp.Yield = y
	}
	if len(comp.Clauses) > 0 {
		comp.Token = comp.Clauses[0].GetToken()
	}
	return comp, nil
}

func decodeClause(i int, cd ClauseDoc) (term.Clause, *diagnostics.DiagnosticError) {
	set := 0
	if cd.Bind != nil {
		set++
	}
	if cd.Let != nil {
		set++
	}
	if !cd.When.IsZero() {
		set++
	}
	if !cd.Run.IsZero() {
		set++
	}
	if set != 1 {
		return nil, diagnostics.NewError(diagnostics.ErrF002, token.Token{},
			fmt.Sprintf("clause %d must have exactly one of bind/let/when/run, got %d", i+1, set))
	}

	switch {
	case cd.Bind != nil:
		pat, err := decodePattern(&cd.Bind.Pattern)
		if err != nil {
			return nil, err
		}
		src, err := decodeExpr(&cd.Bind.From)
		if err != nil {
			return nil, err
		}
		return &term.GeneratorClause{Token: nodeToken(&cd.Bind.Pattern, token.L_ARROW), Pattern: pat, Source: src}, nil
	case cd.Let != nil:
		pat, err := decodePattern(&cd.Let.Pattern)
		if err != nil {
			return nil, err
		}
		val, err := decodeExpr(&cd.Let.Value)
		if err != nil {
			return nil, err
		}
		return &term.AliasClause{Token: nodeToken(&cd.Let.Pattern, token.ASSIGN), Pattern: pat, Value: val}, nil
	case !cd.When.IsZero():
		cond, err := decodeExpr(&cd.When)
		if err != nil {
			return nil, err
		}
		return &term.GuardClause{Token: nodeToken(&cd.When, token.IF), Cond: cond}, nil
	default:
		expr, err := decodeExpr(&cd.Run)
		if err != nil {
			return nil, err
		}
		return &term.ExecClause{Token: nodeToken(&cd.Run, token.RUN), Expr: expr}, nil
	}
}

func decodePattern(n *yaml.Node) (term.Pattern, *diagnostics.DiagnosticError) {
	if n == nil || n.IsZero() {
		return nil, diagnostics.NewError(diagnostics.ErrF002, token.Token{}, "missing pattern")
	}
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Value == "_" {
			return &term.WildcardPattern{Token: scalarToken(n, token.WILDCARD)}, nil
		}
		if !isIdentLike(n.Value) {
			return nil, diagnostics.NewError(diagnostics.ErrF002, scalarToken(n, token.IDENT),
				fmt.Sprintf("pattern %q is not an identifier", n.Value))
		}
		return &term.IdentifierPattern{Token: scalarToken(n, token.IDENT), Value: n.Value}, nil
	case yaml.SequenceNode:
		elems := make([]term.Pattern, 0, len(n.Content))
		for _, el := range n.Content {
			p, err := decodePattern(el)
			if err != nil {
				return nil, err
			}
			elems = append(elems, p)
		}
		return &term.TuplePattern{Token: nodeToken(n, token.LPAREN), Elements: elems}, nil
	default:
		return nil, diagnostics.NewError(diagnostics.ErrF002, nodeToken(n, token.IDENT),
			"pattern must be a scalar or a sequence")
	}
}

func decodeExpr(n *yaml.Node) (term.Expression, *diagnostics.DiagnosticError) {
	if n == nil || n.IsZero() {
		return nil, diagnostics.NewError(diagnostics.ErrF002, token.Token{}, "missing expression")
	}
	switch n.Kind {
	case yaml.ScalarNode:
		if isIdentLike(n.Value) {
			return &term.Identifier{Token: scalarToken(n, token.IDENT), Value: n.Value}, nil
		}
		return &term.RawExpr{Token: scalarToken(n, token.RAW), Text: n.Value}, nil
	case yaml.SequenceNode:
		return decodeTuple(n)
	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return nil, diagnostics.NewError(diagnostics.ErrF002, nodeToken(n, token.RAW),
				"expression mapping must have exactly one key")
		}
		key, val := n.Content[0], n.Content[1]
		switch key.Value {
		case "ident":
			if val.Kind != yaml.ScalarNode || !isIdentLike(val.Value) {
				return nil, diagnostics.NewError(diagnostics.ErrF002, nodeToken(val, token.IDENT),
					"ident must be an identifier scalar")
			}
			return &term.Identifier{Token: scalarToken(val, token.IDENT), Value: val.Value}, nil
		case "raw":
			if val.Kind != yaml.ScalarNode {
				return nil, diagnostics.NewError(diagnostics.ErrF002, nodeToken(val, token.RAW),
					"raw must be a scalar")
			}
			return &term.RawExpr{Token: scalarToken(val, token.RAW), Text: val.Value}, nil
		case "tuple":
			if val.Kind != yaml.SequenceNode {
				return nil, diagnostics.NewError(diagnostics.ErrF002, nodeToken(val, token.LPAREN),
					"tuple must be a sequence")
			}
			return decodeTuple(val)
		default:
			return nil, diagnostics.NewError(diagnostics.ErrF002, nodeToken(key, token.RAW),
				fmt.Sprintf("unknown expression kind %q (want ident, raw, or tuple)", key.Value))
		}
	default:
		return nil, diagnostics.NewError(diagnostics.ErrF002, nodeToken(n, token.RAW),
			"expression must be a scalar, sequence, or single-key mapping")
	}
}

func decodeTuple(n *yaml.Node) (term.Expression, *diagnostics.DiagnosticError) {
	elems := make([]term.Expression, 0, len(n.Content))
	for _, el := range n.Content {
		e, err := decodeExpr(el)
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}
	return &term.TupleLiteral{Token: nodeToken(n, token.LPAREN), Elements: elems}, nil
}

// isIdentLike reports whether a scalar is shaped like a plain identifier.
// Anything else is carried as opaque raw text.
func isIdentLike(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func scalarToken(n *yaml.Node, t token.Type) token.Token {
	return token.Token{Type: t, Lexeme: n.Value, Literal: n.Value, Line: n.Line, Column: n.Column}
}

func nodeToken(n *yaml.Node, t token.Type) token.Token {
	if n == nil || n.IsZero() {
		return token.Token{}
	}
	return token.Token{Type: t, Line: n.Line, Column: n.Column}
}
