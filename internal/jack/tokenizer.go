package jack

import (
	"errors"
	"strconv"
)

// maxIntConst is the largest integer literal the language allows.
const maxIntConst = 32767

// Tokenizer scans raw Jack source text into the full ordered token sequence
// in a single pass.
type Tokenizer struct {
	source    []rune
	collector []rune
	quote     rune // non-zero while inside a string constant
	tokens    []*Token
	scanned   bool
	err       error
}

// NewTokenizer creates a new tokenizer over the given source text.
func NewTokenizer(source string) *Tokenizer {
	tokenizer := new(Tokenizer)
	tokenizer.source = []rune(source)
	return tokenizer
}

// ScanAll reads the source and collects all the tokens that were found. The
// only possible failure is an integer literal outside 0..32767, which aborts
// the whole scan. The outcome is cached, so repeated calls return the same
// sequence, or the same error, without re-scanning.
func (tokenizer *Tokenizer) ScanAll() ([]*Token, error) {
	if !tokenizer.scanned {
		tokenizer.scanned = true
		tokenizer.err = tokenizer.scan()
		if tokenizer.err != nil {
			tokenizer.tokens = nil
		}
	}
	return tokenizer.tokens, tokenizer.err
}

func (tokenizer *Tokenizer) scan() error {
	for _, r := range tokenizer.source {
		// A quote switches the tokenizer into verbatim mode until the
		// matching quote of the same kind is seen. No escape sequences.
		if tokenizer.quote != 0 {
			if r == tokenizer.quote {
				tokenizer.emit(KindStringConst)
				tokenizer.quote = 0
			} else {
				tokenizer.collector = append(tokenizer.collector, r)
			}
			continue
		}
		if r == '"' || r == '\'' {
			tokenizer.quote = r
			continue
		}

		switch {
		case r == ' ', r == '\n':
			if err := tokenizer.flush(); err != nil {
				return err
			}
		case isSymbolRune(r):
			if err := tokenizer.flush(); err != nil {
				return err
			}
			tokenizer.tokens = append(tokenizer.tokens, NewToken(string(r), KindSymbol))
		default:
			tokenizer.collector = append(tokenizer.collector, r)
		}
	}

	// An unterminated string constant is taken verbatim to the end of the
	// source; everything else gets its usual classification.
	if tokenizer.quote != 0 {
		tokenizer.emit(KindStringConst)
	} else if err := tokenizer.flush(); err != nil {
		return err
	}
	return nil
}

// flush classifies the collected lexeme and appends it as a token. Flushing
// an empty collector is a no-op, so no empty tokens are ever emitted.
func (tokenizer *Tokenizer) flush() error {
	if len(tokenizer.collector) == 0 {
		return nil
	}
	lexeme := string(tokenizer.collector)
	if _, reserved := keywords[lexeme]; reserved {
		tokenizer.emit(KindKeyword)
		return nil
	}
	switch value, err := strconv.Atoi(lexeme); {
	case err == nil:
		if value > maxIntConst {
			return newLexError(lexeme, "integer constant outside 0..32767")
		}
		tokenizer.emit(KindIntConst)
	case errors.Is(err, strconv.ErrRange):
		// All digits, but too large to even represent.
		return newLexError(lexeme, "integer constant outside 0..32767")
	default:
		tokenizer.emit(KindIdentifier)
	}
	return nil
}

// emit appends the collected lexeme as a token of the given kind and clears
// the collector.
func (tokenizer *Tokenizer) emit(kind TokenKind) {
	if len(tokenizer.collector) == 0 {
		return
	}
	tokenizer.tokens = append(tokenizer.tokens, NewToken(string(tokenizer.collector), kind))
	tokenizer.collector = tokenizer.collector[:0]
}
