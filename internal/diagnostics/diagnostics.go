// Package diagnostics carries parser and type-engine error reports without
// aborting the producing pass.
package diagnostics

import (
	"fmt"

	"github.com/gophp-lang/corephp/internal/token"
)

// Severity classifies how a tool should treat a diagnostic.
type Severity int

const (
	Error Severity = iota
	Warning
	Hint
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Hint:
		return "hint"
	default:
		return "unknown"
	}
}

// Code is the closed taxonomy of diagnostic kinds the parser and analyzer
// can report.
type Code string

const (
	UnexpectedToken           Code = "UnexpectedToken"
	ExpectedToken             Code = "ExpectedToken"
	UnexpectedEndOfFile       Code = "UnexpectedEndOfFile"
	InvalidTargetForAttributes Code = "InvalidTargetForAttributes"
)

// Diagnostic is one reported error, warning or hint, anchored to a span.
type Diagnostic struct {
	Code     Code
	Severity Severity
	Span     token.Span
	Message  string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s [%s] at %d:%d: %s", d.Severity, d.Code, d.Span.Start, d.Span.End, d.Message)
}

// New builds a Diagnostic at Error severity anchored to tok's span.
func New(code Code, tok token.Token, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Code:     code,
		Severity: Error,
		Span:     tok.Span,
		Message:  fmt.Sprintf(format, args...),
	}
}

// NewAt is like New but anchors to an explicit span rather than a token
// (used for synthesized zero-width recovery spans).
func NewAt(code Code, span token.Span, severity Severity, format string, args ...any) *Diagnostic {
	return &Diagnostic{Code: code, Severity: severity, Span: span, Message: fmt.Sprintf(format, args...)}
}

// ExpectedTokenError reports that one of `expected` was required but
// `found` was seen instead.
func ExpectedTokenError(expected []token.Kind, found token.Token) *Diagnostic {
	return New(ExpectedToken, found, "expected %v, found %s", expected, found.Kind)
}
