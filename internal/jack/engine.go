package jack

// Engine builds the syntax tree for a single Jack class from a stream of
// tokens, one method per grammar production. Every method consumes tokens
// through the stream cursor and returns the node it built; any grammar
// violation is fatal and aborts the whole compilation.
type Engine struct {
	stream *TokenStream
}

// NewEngine checks that the stream can plausibly hold a class declaration
// and wraps it for compilation. The cursor is rewound, so a stream that was
// already walked (for example to render its tokens) can be reused without
// re-scanning.
func NewEngine(stream *TokenStream) (*Engine, error) {
	stream.Reset()
	tokens := stream.All()
	if len(tokens) == 0 {
		return nil, newParseError(ErrEmptyInput, nil, "no tokens to compile")
	}
	// The smallest legal program is `class Name { }`.
	if len(tokens) < 4 || tokens[0].Keyword != KwClass {
		return nil, newParseError(ErrBadHeader, tokens[0], "everything must be wrapped in a class declaration")
	}
	return &Engine{stream}, nil
}

// Compile consumes the whole stream and returns the root class node.
func (engine *Engine) Compile() (*Node, error) {
	// NewEngine guarantees at least the four header tokens.
	first := engine.stream.Advance()
	name := engine.stream.Advance()
	open := engine.stream.Advance()
	if first.Keyword != KwClass || name.Kind != KindIdentifier || !open.IsSymbol('{') {
		return nil, newParseError(ErrBadHeader, name, "class declaration is not correctly formed")
	}
	children := []Child{first, name, open}

	for engine.stream.HasMore() {
		tok := engine.stream.Advance()
		switch tok.Keyword {
		case KwStatic, KwField:
			decl, err := engine.compileClassVarDec(tok)
			if err != nil {
				return nil, err
			}
			children = append(children, decl)
		case KwConstructor, KwFunction, KwMethod:
			decl, err := engine.compileSubroutineDec(tok)
			if err != nil {
				return nil, err
			}
			children = append(children, decl)
		default:
			if !tok.IsSymbol('}') {
				return nil, newParseError(ErrBadConstruct, tok, "unexpected token at class level")
			}
			if engine.stream.HasMore() {
				extra := engine.stream.Advance()
				return nil, newParseError(ErrTrailingContent, extra, "tokens remain after the class closing brace")
			}
			children = append(children, tok)
		}
	}
	return NewNode(NodeClass, children...), nil
}

// next pulls the following token, turning stream exhaustion into a parse
// error naming what the production was waiting for.
func (engine *Engine) next(expected string) (*Token, error) {
	if !engine.stream.HasMore() {
		return nil, newParseError(ErrBadTerminator, nil, "source ended while expecting "+expected)
	}
	return engine.stream.Advance(), nil
}

// classVarDec --> ( "static" | "field" ) token* ";" ;
func (engine *Engine) compileClassVarDec(first *Token) (*Node, error) {
	children, err := engine.collectThroughSemicolon(first)
	if err != nil {
		return nil, err
	}
	return NewNode(NodeClassVarDec, children...), nil
}

// varDec --> "var" token* ";" ;
func (engine *Engine) compileVarDec(first *Token) (*Node, error) {
	children, err := engine.collectThroughSemicolon(first)
	if err != nil {
		return nil, err
	}
	return NewNode(NodeVarDec, children...), nil
}

// collectThroughSemicolon gathers tokens verbatim up to and including the
// terminating ';'. Declarations get no per-field shape validation beyond the
// terminator.
func (engine *Engine) collectThroughSemicolon(first *Token) ([]Child, error) {
	children := []Child{first}
	for {
		tok, err := engine.next("';'")
		if err != nil {
			return nil, err
		}
		children = append(children, tok)
		if tok.IsSymbol(';') {
			return children, nil
		}
	}
}

// subroutineDec --> ( "constructor" | "function" | "method" )
//                   type IDENT "(" parameterList ")" subroutineBody ;
func (engine *Engine) compileSubroutineDec(first *Token) (*Node, error) {
	returnType, err := engine.next("a return type")
	if err != nil {
		return nil, err
	}
	name, err := engine.next("a subroutine name")
	if err != nil {
		return nil, err
	}
	open, err := engine.next("'('")
	if err != nil {
		return nil, err
	}
	children := []Child{first, returnType, name, open}

	// Parameter tokens are accumulated verbatim until the closing ')' and
	// wrapped as a single parameterList node.
	var params []Child
	for {
		tok, err := engine.next("')'")
		if err != nil {
			return nil, err
		}
		if tok.IsSymbol(')') {
			children = append(children, NewNode(NodeParameterList, params...), tok)
			break
		}
		params = append(params, tok)
	}

	bodyOpen, err := engine.next("'{'")
	if err != nil {
		return nil, err
	}
	body, err := engine.compileSubroutineBody(bodyOpen)
	if err != nil {
		return nil, err
	}
	children = append(children, body)
	return NewNode(NodeSubroutineDec, children...), nil
}

// subroutineBody --> "{" varDec* statements "}" ;
func (engine *Engine) compileSubroutineBody(first *Token) (*Node, error) {
	children := []Child{first}
	for {
		tok, err := engine.next("'}'")
		if err != nil {
			return nil, err
		}
		if tok.Keyword == KwVar {
			decl, err := engine.compileVarDec(tok)
			if err != nil {
				return nil, err
			}
			children = append(children, decl)
			continue
		}
		// First non-var token: one token of backtrack, then the shared
		// statements-until-closing-brace routine takes over.
		engine.stream.Retreat()
		rest, err := engine.statementsThroughClosingBrace()
		if err != nil {
			return nil, err
		}
		children = append(children, rest...)
		break
	}
	return NewNode(NodeSubroutineBody, children...), nil
}

// statementsThroughClosingBrace parses statement blocks until a lone '}'
// closes the enclosing body, returning the statements nodes followed by the
// consumed brace. The brace only terminates once at least one statements
// node has been built, so an empty body still yields one empty node.
func (engine *Engine) statementsThroughClosingBrace() ([]Child, error) {
	var children []Child
	parsed := false
	for {
		tok, err := engine.next("'}'")
		if err != nil {
			return nil, err
		}
		if parsed && tok.IsSymbol('}') {
			return append(children, tok), nil
		}
		engine.stream.Retreat()
		stmts, err := engine.compileStatements()
		if err != nil {
			return nil, err
		}
		children = append(children, stmts)
		parsed = true
	}
}

// statements --> ( letStatement | ifStatement | whileStatement
//               | doStatement | returnStatement )* ;
//
// A '}' terminates the production without being consumed. Any other leading
// token is unsupported; the grammar has no expression statements.
func (engine *Engine) compileStatements() (*Node, error) {
	var children []Child
	for {
		tok, err := engine.next("a statement or '}'")
		if err != nil {
			return nil, err
		}
		var stmt *Node
		switch tok.Keyword {
		case KwLet:
			stmt, err = engine.compileLet(tok)
		case KwIf:
			stmt, err = engine.compileIf(tok)
		case KwWhile:
			stmt, err = engine.compileWhile(tok)
		case KwDo:
			stmt, err = engine.compileDo(tok)
		case KwReturn:
			stmt, err = engine.compileReturn(tok)
		default:
			if tok.IsSymbol('}') {
				engine.stream.Retreat()
				return NewNode(NodeStatements, children...), nil
			}
			return nil, newParseError(ErrBadConstruct, tok, "token cannot begin a statement")
		}
		if err != nil {
			return nil, err
		}
		children = append(children, stmt)
	}
}

// letStatement --> "let" IDENT "=" expression ";" ;
func (engine *Engine) compileLet(first *Token) (*Node, error) {
	name, err := engine.next("a variable name")
	if err != nil {
		return nil, err
	}
	assign, err := engine.next("'='")
	if err != nil {
		return nil, err
	}
	children, err := engine.expressionsThrough([]Child{first, name, assign}, ';')
	if err != nil {
		return nil, err
	}
	return NewNode(NodeLetStatement, children...), nil
}

// returnStatement --> "return" expression? ";" ;
func (engine *Engine) compileReturn(first *Token) (*Node, error) {
	children, err := engine.expressionsThrough([]Child{first}, ';')
	if err != nil {
		return nil, err
	}
	return NewNode(NodeReturnStatement, children...), nil
}

// doStatement --> "do" IDENT ( "." IDENT )? "(" expressionList ")" ";" ;
func (engine *Engine) compileDo(first *Token) (*Node, error) {
	name, err := engine.next("a subroutine or receiver name")
	if err != nil {
		return nil, err
	}
	open, err := engine.next("'(' or '.'")
	if err != nil {
		return nil, err
	}
	children := []Child{first, name, open}
	if open.IsSymbol('.') {
		method, err := engine.next("a subroutine name")
		if err != nil {
			return nil, err
		}
		argsOpen, err := engine.next("'('")
		if err != nil {
			return nil, err
		}
		children = append(children, method, argsOpen)
	}
	args, err := engine.compileExpressionList()
	if err != nil {
		return nil, err
	}
	closing, err := engine.next("')'")
	if err != nil {
		return nil, err
	}
	children = append(children, args, closing)
	last, err := engine.next("';'")
	if err != nil {
		return nil, err
	}
	if !last.IsSymbol(';') {
		return nil, newParseError(ErrBadTerminator, last, "do statement must end with ';'")
	}
	children = append(children, last)
	return NewNode(NodeDoStatement, children...), nil
}

// ifStatement --> "if" "(" expression ")" "{" statements "}"
//                 ( "else" "{" statements "}" )? ;
//
// The else arm is detected by peeking the token after a closing brace; there
// is no `else if` chaining at this level.
func (engine *Engine) compileIf(first *Token) (*Node, error) {
	open, err := engine.next("'('")
	if err != nil {
		return nil, err
	}
	children, err := engine.expressionsThrough([]Child{first, open}, ')')
	if err != nil {
		return nil, err
	}
	for {
		tok, err := engine.next("'{'")
		if err != nil {
			return nil, err
		}
		switch {
		case tok.IsSymbol('{'):
			rest, err := engine.statementsThroughClosingBrace()
			if err != nil {
				return nil, err
			}
			children = append(append(children, tok), rest...)
		case tok.Keyword == KwElse:
			children = append(children, tok)
		default:
			engine.stream.Retreat()
			return NewNode(NodeIfStatement, children...), nil
		}
	}
}

// whileStatement --> "while" "(" expression ")" "{" statements "}" ;
func (engine *Engine) compileWhile(first *Token) (*Node, error) {
	open, err := engine.next("'('")
	if err != nil {
		return nil, err
	}
	children, err := engine.expressionsThrough([]Child{first, open}, ')')
	if err != nil {
		return nil, err
	}
	for {
		tok, err := engine.next("'{'")
		if err != nil {
			return nil, err
		}
		if !tok.IsSymbol('{') {
			engine.stream.Retreat()
			return NewNode(NodeWhileStatement, children...), nil
		}
		rest, err := engine.statementsThroughClosingBrace()
		if err != nil {
			return nil, err
		}
		children = append(append(children, tok), rest...)
	}
}

// expressionsThrough appends expression nodes, and finally the terminator
// token itself, until the given terminator symbol is consumed. A terminator
// that arrives immediately yields no expression child at all, which is how
// `return ;` stays bare.
func (engine *Engine) expressionsThrough(children []Child, terminator rune) ([]Child, error) {
	for {
		tok, err := engine.next("'" + string(terminator) + "'")
		if err != nil {
			return nil, err
		}
		if tok.IsSymbol(terminator) {
			return append(children, tok), nil
		}
		engine.stream.Retreat()
		expr, err := engine.compileExpression(terminator)
		if err != nil {
			return nil, err
		}
		children = append(children, expr)
	}
}

// expression --> term ( op term )* ;
//
// The accumulation is flat: operator symbols are stored as sibling tokens of
// the terms, not folded into a binary tree. The production stops without
// consuming any of the caller's terminator symbols.
func (engine *Engine) compileExpression(terminators ...rune) (*Node, error) {
	var children []Child
	for {
		tok, err := engine.next("an expression terminator")
		if err != nil {
			return nil, err
		}
		for _, terminator := range terminators {
			if tok.IsSymbol(terminator) {
				engine.stream.Retreat()
				return NewNode(NodeExpression, children...), nil
			}
		}
		if tok.Kind == KindSymbol {
			children = append(children, tok)
		} else {
			children = append(children, engine.compileTerm(tok))
		}
	}
}

// term --> any single non-operator token ;
//
// A term is a single wrapped token with no recursive sub-structure.
func (engine *Engine) compileTerm(first *Token) *Node {
	return NewNode(NodeTerm, first)
}

// expressionList --> ( expression ( "," expression )* )? ;
//
// Used for subroutine call arguments; terminates on ')' without consuming it.
func (engine *Engine) compileExpressionList() (*Node, error) {
	var children []Child
	for {
		tok, err := engine.next("')'")
		if err != nil {
			return nil, err
		}
		if tok.IsSymbol(')') {
			engine.stream.Retreat()
			return NewNode(NodeExpressionList, children...), nil
		}
		if tok.IsSymbol(',') {
			children = append(children, tok)
			continue
		}
		engine.stream.Retreat()
		expr, err := engine.compileExpression(')', ',')
		if err != nil {
			return nil, err
		}
		children = append(children, expr)
	}
}
