package term

import "github.com/forlang/forc/internal/token"

// IdentifierPattern: x
type IdentifierPattern struct {
	Token token.Token
	Value string
}

func (p *IdentifierPattern) Accept(v Visitor)     { v.VisitIdentifierPattern(p) }
func (p *IdentifierPattern) patternNode()         {}
func (p *IdentifierPattern) TokenLiteral() string { return p.Token.Lexeme }
func (p *IdentifierPattern) GetToken() token.Token {
	if p == nil {
		return token.Token{}
	}
	return p.Token
}

// TuplePattern: (x, y). Arity must be at least two; lower arities are
// rejected by ValidatePattern before rewriting.
type TuplePattern struct {
	Token    token.Token // '('
	Elements []Pattern
}

func (p *TuplePattern) Accept(v Visitor)     { v.VisitTuplePattern(p) }
func (p *TuplePattern) patternNode()         {}
func (p *TuplePattern) TokenLiteral() string { return p.Token.Lexeme }
func (p *TuplePattern) GetToken() token.Token {
	if p == nil {
		return token.Token{}
	}
	return p.Token
}

// WildcardPattern: _
type WildcardPattern struct {
	Token token.Token
}

func (p *WildcardPattern) Accept(v Visitor)     { v.VisitWildcardPattern(p) }
func (p *WildcardPattern) patternNode()         {}
func (p *WildcardPattern) TokenLiteral() string { return p.Token.Lexeme }
func (p *WildcardPattern) GetToken() token.Token {
	if p == nil {
		return token.Token{}
	}
	return p.Token
}
