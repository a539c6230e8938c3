package jack

// TokenStream is a bidirectional single-step cursor over a materialized token
// sequence. The cursor always sits in [0, len]; stepping outside that range
// is a caller bug and panics. A stream is not safe for concurrent use.
type TokenStream struct {
	position int
	tokens   []*Token
}

// NewTokenStream wraps an already-scanned token sequence with the cursor
// positioned at the first token.
func NewTokenStream(tokens []*Token) *TokenStream {
	return &TokenStream{0, tokens}
}

// Reset moves the cursor back to the first token without re-scanning.
func (stream *TokenStream) Reset() {
	stream.position = 0
}

// HasMore reports whether the cursor sits before the end of the sequence.
func (stream *TokenStream) HasMore() bool {
	return stream.position < len(stream.tokens)
}

// Advance returns the token under the cursor and steps forward by one.
// Callers must check HasMore first unless the grammar guarantees more tokens.
func (stream *TokenStream) Advance() *Token {
	if !stream.HasMore() {
		panic("jack: advance past the end of the token stream")
	}
	tok := stream.tokens[stream.position]
	stream.position++
	return tok
}

// Retreat steps the cursor back by one, undoing the most recent Advance.
func (stream *TokenStream) Retreat() {
	if stream.position == 0 {
		panic("jack: retreat before the start of the token stream")
	}
	stream.position--
}

// All returns the whole token sequence without disturbing the cursor.
func (stream *TokenStream) All() []*Token {
	return stream.tokens
}
