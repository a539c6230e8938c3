package jack

import "fmt"

// LexError reports a fatal problem found while scanning source text. It
// aborts tokenization entirely.
type LexError struct {
	Lexeme  string
	message string
}

func newLexError(lexeme, message string) error {
	return &LexError{lexeme, message}
}

func (err *LexError) Error() string {
	return fmt.Sprintf("lex error at %q: %s", err.Lexeme, err.message)
}

// ParseErrorKind names the ways a token stream can fail to form a class.
type ParseErrorKind uint

const (
	// ErrEmptyInput is raised when the source produced no tokens at all.
	ErrEmptyInput ParseErrorKind = iota
	// ErrBadHeader is raised when the source does not begin with a
	// syntactically valid class declaration.
	ErrBadHeader
	// ErrBadConstruct is raised when a token leads a construct the grammar
	// does not support.
	ErrBadConstruct
	// ErrBadTerminator is raised when an expected literal token does not
	// match, or the stream ends in the middle of a production.
	ErrBadTerminator
	// ErrTrailingContent is raised when tokens remain after the class's
	// closing brace.
	ErrTrailingContent
)

func (kind ParseErrorKind) String() string {
	switch kind {
	case ErrEmptyInput:
		return "empty input"
	case ErrBadHeader:
		return "malformed class header"
	case ErrBadConstruct:
		return "unsupported construct"
	case ErrBadTerminator:
		return "unexpected terminator"
	case ErrTrailingContent:
		return "trailing content"
	}
	return ""
}

// ParseError reports a fatal grammar violation. Every parse error aborts the
// whole compilation; there is no node-level recovery.
type ParseError struct {
	Kind    ParseErrorKind
	Token   *Token // offending token; nil when the stream ended early
	message string
}

func newParseError(kind ParseErrorKind, token *Token, message string) error {
	return &ParseError{kind, token, message}
}

func (err *ParseError) Error() string {
	if err.Token == nil {
		return fmt.Sprintf("parse error (%s): %s", err.Kind, err.message)
	}
	return fmt.Sprintf("parse error (%s) at '%s': %s", err.Kind, err.Token.Content, err.message)
}
