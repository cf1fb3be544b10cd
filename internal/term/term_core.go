package term

import (
	"github.com/forlang/forc/internal/token"
)

// TokenProvider is an interface for any term node that can provide its
// primary token. This is useful for error reporting.
type TokenProvider interface {
	GetToken() token.Token
}

// Node is the base interface for all term nodes.
type Node interface {
	TokenLiteral() string
	Accept(v Visitor)
}

// Expression is a Node that represents a host expression. The engine treats
// expressions as uninterpreted leaves: it only tests structural identity
// (SameBinding) and wraps them into combinator calls. Combinator-call nodes
// are themselves expressions so that a rewritten subtree can stand where a
// generator source or continuation body is expected.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// Pattern is a Node that represents a binding target.
type Pattern interface {
	Node
	patternNode()
	GetToken() token.Token
}

// Identifier represents a plain variable reference.
type Identifier struct {
	Token token.Token // the IDENT token
	Value string
}

func (i *Identifier) Accept(v Visitor)     { v.VisitIdentifier(i) }
func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token {
	if i == nil {
		return token.Token{}
	}
	return i.Token
}

// TupleLiteral represents a tuple expression, e.g. (a, b).
type TupleLiteral struct {
	Token    token.Token // The '(' token
	Elements []Expression
}

func (tl *TupleLiteral) Accept(v Visitor)     { v.VisitTupleLiteral(tl) }
func (tl *TupleLiteral) expressionNode()      {}
func (tl *TupleLiteral) TokenLiteral() string { return tl.Token.Lexeme }
func (tl *TupleLiteral) GetToken() token.Token {
	if tl == nil {
		return token.Token{}
	}
	return tl.Token
}

// RawExpr is an opaque host expression carried through the rewriter
// verbatim. The surrounding parser supplies its text; the engine never looks
// inside it.
type RawExpr struct {
	Token token.Token
	Text  string
}

func (re *RawExpr) Accept(v Visitor)     { v.VisitRawExpr(re) }
func (re *RawExpr) expressionNode()      {}
func (re *RawExpr) TokenLiteral() string { return re.Token.Lexeme }
func (re *RawExpr) GetToken() token.Token {
	if re == nil {
		return token.Token{}
	}
	return re.Token
}
