package token

// Type identifies the lexical class of a token.
type Type string

const (
	IDENT    Type = "IDENT"
	WILDCARD Type = "WILDCARD"
	LPAREN   Type = "LPAREN"
	L_ARROW  Type = "L_ARROW" // <-
	ASSIGN   Type = "ASSIGN"  // =
	IF       Type = "IF"
	RUN      Type = "RUN"
	RAW      Type = "RAW"
)

// Token carries the source position and text of a term node's primary token.
// Nodes synthesized during rewriting carry zero-value tokens; diagnostics
// fall back to the nearest real position available.
type Token struct {
	Type    Type
	Lexeme  string // exact source text
	Literal string // interpreted value (identifier name, raw text)
	Line    int    // 1-based; 0 for synthetic tokens
	Column  int    // 1-based; 0 for synthetic tokens
}

// Synthetic builds a position-less token for nodes created by the rewriter.
func Synthetic(t Type, literal string) Token {
	return Token{Type: t, Lexeme: literal, Literal: literal}
}
