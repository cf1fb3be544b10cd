package term

import "github.com/forlang/forc/internal/token"

// The rewriter's output vocabulary: map/flatMap/withFilter applications, the
// binding block produced for pure aliases, and any bare Expression (the
// identity passthrough of redundant-map elision). Every node is freshly
// allocated; input sub-expressions are re-wrapped, never mutated.

// MapCall: source.map(pattern => body)
type MapCall struct {
	Token   token.Token
	Source  Expression
	Pattern Pattern
	Body    Expression
}

func (m *MapCall) Accept(v Visitor)     { v.VisitMapCall(m) }
func (m *MapCall) expressionNode()      {}
func (m *MapCall) TokenLiteral() string { return m.Token.Lexeme }
func (m *MapCall) GetToken() token.Token {
	if m == nil {
		return token.Token{}
	}
	return m.Token
}

// FlatMapCall: source.flatMap(pattern => body)
type FlatMapCall struct {
	Token   token.Token
	Source  Expression
	Pattern Pattern
	Body    Expression
}

func (f *FlatMapCall) Accept(v Visitor)     { v.VisitFlatMapCall(f) }
func (f *FlatMapCall) expressionNode()      {}
func (f *FlatMapCall) TokenLiteral() string { return f.Token.Lexeme }
func (f *FlatMapCall) GetToken() token.Token {
	if f == nil {
		return token.Token{}
	}
	return f.Token
}

// WithFilterCall: source.withFilter(pattern => cond)
type WithFilterCall struct {
	Token   token.Token
	Source  Expression
	Pattern Pattern
	Cond    Expression
}

func (w *WithFilterCall) Accept(v Visitor)     { v.VisitWithFilterCall(w) }
func (w *WithFilterCall) expressionNode()      {}
func (w *WithFilterCall) TokenLiteral() string { return w.Token.Lexeme }
func (w *WithFilterCall) GetToken() token.Token {
	if w == nil {
		return token.Token{}
	}
	return w.Token
}

// Binding is one immutable binding inside a BindingBlock.
type Binding struct {
	Pattern Pattern
	Value   Expression
}

// BindingBlock wraps an expression in nested immutable bindings, evaluated
// left-to-right, each visible to subsequent bindings and to the body. It is
// the output of the leading-alias and trailing-alias rules — the one case
// where the result is not a bare combinator chain.
type BindingBlock struct {
	Token    token.Token
	Bindings []*Binding
	Body     Expression
}

func (b *BindingBlock) Accept(v Visitor)     { v.VisitBindingBlock(b) }
func (b *BindingBlock) expressionNode()      {}
func (b *BindingBlock) TokenLiteral() string { return b.Token.Lexeme }
func (b *BindingBlock) GetToken() token.Token {
	if b == nil {
		return token.Token{}
	}
	return b.Token
}
