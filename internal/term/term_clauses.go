package term

import "github.com/forlang/forc/internal/token"

// Comprehension is the unit of desugaring: an ordered clause sequence plus
// an optional yield expression. When Yield is nil the comprehension is
// effect-only and must end in an ExecClause (validated before rewriting).
type Comprehension struct {
	Token   token.Token // first token of the comprehension
	Clauses []Clause
	Yield   Expression // nil when absent
}

// Clause is one step of a comprehension. It can be a monadic binding, a pure
// alias, a guard, or an unbound monadic expression.
type Clause interface {
	clauseNode()
	GetToken() token.Token
}

// GeneratorClause represents a monadic bind: pattern <- source
type GeneratorClause struct {
	Token   token.Token // The '<-' token
	Pattern Pattern
	Source  Expression
}

func (c *GeneratorClause) clauseNode() {}
func (c *GeneratorClause) GetToken() token.Token {
	if c == nil {
		return token.Token{}
	}
	return c.Token
}

// AliasClause represents a non-monadic binding: pattern = value
type AliasClause struct {
	Token   token.Token // The '=' token
	Pattern Pattern
	Value   Expression
}

func (c *AliasClause) clauseNode() {}
func (c *AliasClause) GetToken() token.Token {
	if c == nil {
		return token.Token{}
	}
	return c.Token
}

// GuardClause represents a filter condition: if cond
type GuardClause struct {
	Token token.Token // The 'if' token
	Cond  Expression
}

func (c *GuardClause) clauseNode() {}
func (c *GuardClause) GetToken() token.Token {
	if c == nil {
		return token.Token{}
	}
	return c.Token
}

// ExecClause represents a monadic expression evaluated for its value but not
// bound to a name.
type ExecClause struct {
	Token token.Token // first token of the expression
	Expr  Expression
}

func (c *ExecClause) clauseNode() {}
func (c *ExecClause) GetToken() token.Token {
	if c == nil {
		return token.Token{}
	}
	return c.Token
}
