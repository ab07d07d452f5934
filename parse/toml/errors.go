package toml

import "fmt"

type ErrKind uint8

const (
	ErrGeneric ErrKind = iota
	ErrIO
	ErrSyntax
	ErrUnicode
)

func (k ErrKind) String() string {
	switch k {
	case ErrIO:
		return "io"
	case ErrSyntax:
		return "syntax"
	case ErrUnicode:
		return "unicode"
	default:
		return "generic"
	}
}

// Error is the failure result of a parse. Syntax and unicode errors carry
// the diagnostic label plus the 1-based line and column where the parser
// stopped; io errors carry the label and the underlying cause only.
type Error struct {
	Kind   ErrKind
	Source string
	Line   int
	Column int
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", e.Source, e.Msg)
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.Source, e.Line, e.Column, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func (p *parser) errf(kind ErrKind, format string, args ...any) error {
	return &Error{
		Kind:   kind,
		Source: p.src,
		Line:   p.line,
		Column: p.col,
		Msg:    fmt.Sprintf(format, args...),
	}
}
