// Package diagnostics defines the typed error values returned by the
// desugaring engine and the CLI front-end. Every failure is a
// DiagnosticError with a stable code, a source position when one is known,
// and a human-readable message.
package diagnostics

import (
	"fmt"

	"github.com/forlang/forc/internal/token"
)

// ErrorCode is a stable, machine-checkable identifier for a failure class.
type ErrorCode string

const (
	// ErrD001 MalformedComprehension: a structural violation caught before or
	// during rewriting — a guard with no generator in scope, a no-yield
	// comprehension that does not end in a run clause, or an empty
	// comprehension with no yield.
	ErrD001 ErrorCode = "D001"

	// ErrD002 ComprehensionTooLarge: the clause count exceeds the configured
	// maximum. A resource guard, not a semantic error.
	ErrD002 ErrorCode = "D002"

	// ErrD003 UnsupportedPattern: a pattern shape the term model does not
	// recognize (nil node, tuple of arity below two).
	ErrD003 ErrorCode = "D003"

	// ErrF001 description file could not be decoded.
	ErrF001 ErrorCode = "F001"

	// ErrF002 description file decoded but failed validation.
	ErrF002 ErrorCode = "F002"
)

// DiagnosticError is the single error type produced by this module.
type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Token
	Message string
	File    string // set by the pipeline once the file path is known
}

func NewError(code ErrorCode, tok token.Token, msg string) *DiagnosticError {
	return &DiagnosticError{Code: code, Token: tok, Message: msg}
}

func (e *DiagnosticError) Error() string {
	pos := ""
	if e.Token.Line > 0 {
		pos = fmt.Sprintf("%d:%d: ", e.Token.Line, e.Token.Column)
	}
	if e.File != "" {
		return fmt.Sprintf("%s:%s[%s] %s", e.File, pos, e.Code, e.Message)
	}
	return fmt.Sprintf("%s[%s] %s", pos, e.Code, e.Message)
}
