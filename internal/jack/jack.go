package jack

// Tokenize scans source text into the full ordered token sequence. It fails
// only when an integer literal sits outside 0..32767.
func Tokenize(source string) ([]*Token, error) {
	return NewTokenizer(source).ScanAll()
}

// Parse tokenizes source text and compiles it into a single class syntax
// tree. Failures are either a *LexError or a *ParseError; there are no
// partial trees.
func Parse(source string) (*Node, error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return nil, err
	}
	engine, err := NewEngine(NewTokenStream(tokens))
	if err != nil {
		return nil, err
	}
	return engine.Compile()
}
