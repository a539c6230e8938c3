package jack

import (
	"fmt"
	"strings"
)

// TokenKind classifies a lexeme produced by the tokenizer. Its string form is
// the tag used when rendering the token.
type TokenKind uint

const (
	KindKeyword TokenKind = iota
	KindSymbol
	KindIdentifier
	KindIntConst
	KindStringConst
)

func (kind TokenKind) String() string {
	switch kind {
	case KindKeyword:
		return "keyword"
	case KindSymbol:
		return "symbol"
	case KindIdentifier:
		return "identifier"
	case KindIntConst:
		return "integerConstant"
	case KindStringConst:
		return "stringConstant"
	}
	return ""
}

// Keyword enumerates Jack's closed reserved-word vocabulary. Tokens that are
// not keywords carry KwNone, so the engine can dispatch on the enum instead
// of comparing raw strings.
type Keyword uint

const (
	KwNone Keyword = iota
	KwClass
	KwConstructor
	KwFunction
	KwMethod
	KwField
	KwStatic
	KwVar
	KwInt
	KwChar
	KwBoolean
	KwVoid
	KwTrue
	KwFalse
	KwNull
	KwThis
	KwLet
	KwDo
	KwIf
	KwElse
	KwWhile
	KwReturn
)

var keywords = map[string]Keyword{
	"class":       KwClass,
	"constructor": KwConstructor,
	"function":    KwFunction,
	"method":      KwMethod,
	"field":       KwField,
	"static":      KwStatic,
	"var":         KwVar,
	"int":         KwInt,
	"char":        KwChar,
	"boolean":     KwBoolean,
	"void":        KwVoid,
	"true":        KwTrue,
	"false":       KwFalse,
	"null":        KwNull,
	"this":        KwThis,
	"let":         KwLet,
	"do":          KwDo,
	"if":          KwIf,
	"else":        KwElse,
	"while":       KwWhile,
	"return":      KwReturn,
}

// symbols holds every single-character symbol the language recognizes.
const symbols = "{}()[].,;+-*/&|<>=~"

func isSymbolRune(r rune) bool {
	return strings.ContainsRune(symbols, r)
}

// Token is an immutable classified lexeme. Tokens are produced once by the
// tokenizer, in source order.
type Token struct {
	Content string
	Kind    TokenKind
	Keyword Keyword
}

// NewToken creates a new token, resolving the keyword enum for keyword
// lexemes.
func NewToken(content string, kind TokenKind) *Token {
	tok := new(Token)
	tok.Content = content
	tok.Kind = kind
	if kind == KindKeyword {
		tok.Keyword = keywords[content]
	}
	return tok
}

// IsSymbol reports whether the token is the given symbol character.
func (tok *Token) IsSymbol(r rune) bool {
	return tok.Kind == KindSymbol && tok.Content == string(r)
}

func (tok *Token) String() string {
	return fmt.Sprintf("%s %q", tok.Kind.String(), tok.Content)
}
