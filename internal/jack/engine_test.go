package jack

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompileEmptyClass(t *testing.T) {
	assert := assert.New(t)

	tree, err := Parse("class Foo { }")

	assert.NoError(err)
	assert.Equal(
		NewNode(NodeClass, kw("class"), ident("Foo"), sym("{"), sym("}")),
		tree,
	)
}

func TestCompileClassVarDecs(t *testing.T) {
	assert := assert.New(t)

	tree, err := Parse("class Foo { static int count; field Bar bar, baz; }")

	assert.NoError(err)
	assert.Equal(
		NewNode(NodeClass,
			kw("class"), ident("Foo"), sym("{"),
			NewNode(NodeClassVarDec,
				kw("static"), kw("int"), ident("count"), sym(";")),
			NewNode(NodeClassVarDec,
				kw("field"), ident("Bar"), ident("bar"), sym(","), ident("baz"), sym(";")),
			sym("}"),
		),
		tree,
	)
}

func TestCompileSubroutineWithBareReturn(t *testing.T) {
	assert := assert.New(t)

	tree, err := Parse("class Foo { function void bar() { return; } }")

	assert.NoError(err)
	assert.Equal(
		NewNode(NodeClass,
			kw("class"), ident("Foo"), sym("{"),
			NewNode(NodeSubroutineDec,
				kw("function"), kw("void"), ident("bar"), sym("("),
				NewNode(NodeParameterList),
				sym(")"),
				NewNode(NodeSubroutineBody,
					sym("{"),
					NewNode(NodeStatements,
						NewNode(NodeReturnStatement, kw("return"), sym(";"))),
					sym("}"),
				),
			),
			sym("}"),
		),
		tree,
	)
}

func TestCompileParameterList(t *testing.T) {
	assert := assert.New(t)

	tree, err := Parse("class Point { method int dist(Point other, int scale) { return 0; } }")

	assert.NoError(err)
	if assert.Len(tree.Children, 5) {
		dec := tree.Children[3].(*Node)
		assert.Equal(NodeSubroutineDec, dec.Kind)
		assert.Equal(
			NewNode(NodeParameterList,
				ident("Point"), ident("other"), sym(","), kw("int"), ident("scale")),
			dec.Children[4],
		)
	}
}

func TestCompileVarDecAndLet(t *testing.T) {
	assert := assert.New(t)

	tree, err := Parse("class Foo { function void bar() { var int x; let x = 1 + 2; return x; } }")

	assert.NoError(err)
	body := tree.Children[3].(*Node).Children[6].(*Node)
	assert.Equal(
		NewNode(NodeSubroutineBody,
			sym("{"),
			NewNode(NodeVarDec, kw("var"), kw("int"), ident("x"), sym(";")),
			NewNode(NodeStatements,
				NewNode(NodeLetStatement,
					kw("let"), ident("x"), sym("="),
					NewNode(NodeExpression,
						NewNode(NodeTerm, intc("1")),
						sym("+"),
						NewNode(NodeTerm, intc("2")),
					),
					sym(";"),
				),
				NewNode(NodeReturnStatement,
					kw("return"),
					NewNode(NodeExpression, NewNode(NodeTerm, ident("x"))),
					sym(";"),
				),
			),
			sym("}"),
		),
		body,
	)
}

func TestCompileDoStatements(t *testing.T) {
	assert := assert.New(t)

	tree, err := Parse("class Foo { function void bar() { do print(); do Output.write(x, y + 1); return; } }")

	assert.NoError(err)
	statements := tree.Children[3].(*Node).Children[6].(*Node).Children[1].(*Node)
	assert.Equal(NodeStatements, statements.Kind)
	if assert.Len(statements.Children, 3) {
		assert.Equal(
			NewNode(NodeDoStatement,
				kw("do"), ident("print"), sym("("),
				NewNode(NodeExpressionList),
				sym(")"), sym(";"),
			),
			statements.Children[0],
		)
		assert.Equal(
			NewNode(NodeDoStatement,
				kw("do"), ident("Output"), sym("."), ident("write"), sym("("),
				NewNode(NodeExpressionList,
					NewNode(NodeExpression, NewNode(NodeTerm, ident("x"))),
					sym(","),
					NewNode(NodeExpression,
						NewNode(NodeTerm, ident("y")),
						sym("+"),
						NewNode(NodeTerm, intc("1")),
					),
				),
				sym(")"), sym(";"),
			),
			statements.Children[1],
		)
	}
}

func TestCompileIfElse(t *testing.T) {
	assert := assert.New(t)

	tree, err := Parse("class Foo { function void bar() { if (x < 10) { let x = x + 1; } else { do halt(); } return; } }")

	assert.NoError(err)
	statements := tree.Children[3].(*Node).Children[6].(*Node).Children[1].(*Node)
	assert.Equal(
		NewNode(NodeIfStatement,
			kw("if"), sym("("),
			NewNode(NodeExpression,
				NewNode(NodeTerm, ident("x")),
				sym("<"),
				NewNode(NodeTerm, intc("10")),
			),
			sym(")"),
			sym("{"),
			NewNode(NodeStatements,
				NewNode(NodeLetStatement,
					kw("let"), ident("x"), sym("="),
					NewNode(NodeExpression,
						NewNode(NodeTerm, ident("x")),
						sym("+"),
						NewNode(NodeTerm, intc("1")),
					),
					sym(";"),
				),
			),
			sym("}"),
			kw("else"),
			sym("{"),
			NewNode(NodeStatements,
				NewNode(NodeDoStatement,
					kw("do"), ident("halt"), sym("("),
					NewNode(NodeExpressionList),
					sym(")"), sym(";"),
				),
			),
			sym("}"),
		),
		statements.Children[0],
	)
}

func TestCompileWhile(t *testing.T) {
	assert := assert.New(t)

	tree, err := Parse("class Foo { function void bar() { while (x) { let x = x - 1; } return; } }")

	assert.NoError(err)
	statements := tree.Children[3].(*Node).Children[6].(*Node).Children[1].(*Node)
	assert.Equal(
		NewNode(NodeWhileStatement,
			kw("while"), sym("("),
			NewNode(NodeExpression, NewNode(NodeTerm, ident("x"))),
			sym(")"),
			sym("{"),
			NewNode(NodeStatements,
				NewNode(NodeLetStatement,
					kw("let"), ident("x"), sym("="),
					NewNode(NodeExpression,
						NewNode(NodeTerm, ident("x")),
						sym("-"),
						NewNode(NodeTerm, intc("1")),
					),
					sym(";"),
				),
			),
			sym("}"),
		),
		statements.Children[0],
	)
}

func TestCompileEmptySubroutineBody(t *testing.T) {
	assert := assert.New(t)

	tree, err := Parse("class Foo { function void bar() { } }")

	assert.NoError(err)
	body := tree.Children[3].(*Node).Children[6].(*Node)
	// an empty body still yields one empty statements node
	assert.Equal(
		NewNode(NodeSubroutineBody,
			sym("{"),
			NewNode(NodeStatements),
			sym("}"),
		),
		body,
	)
}

func TestCompileClassWithoutClosingBrace(t *testing.T) {
	assert := assert.New(t)

	// A stream that simply runs out before the class's closing brace yields
	// a tree without the brace child rather than an error. Longstanding
	// behavior; tools diffing rendered output rely on it staying this way.
	tree, err := Parse("class Foo { static int x; ")

	assert.NoError(err)
	assert.Equal(
		NewNode(NodeClass,
			kw("class"), ident("Foo"), sym("{"),
			NewNode(NodeClassVarDec,
				kw("static"), kw("int"), ident("x"), sym(";")),
		),
		tree,
	)
}

func TestNewEngineResetsCursor(t *testing.T) {
	assert := assert.New(t)
	toks, err := Tokenize("class Foo { }")
	assert.NoError(err)

	stream := NewTokenStream(toks)
	stream.Advance()
	stream.Advance()

	engine, err := NewEngine(stream)
	assert.NoError(err)

	tree, err := engine.Compile()
	assert.NoError(err)
	assert.Equal(NodeClass, tree.Kind)
	assert.Len(tree.Children, 4)
}

func TestCompileErrors(t *testing.T) {
	testCases := []struct {
		src  string
		kind ParseErrorKind
	}{
		{"", ErrEmptyInput},
		{"   \n   ", ErrEmptyInput},
		{"not a class", ErrBadHeader},
		{"class Foo {", ErrBadHeader},
		{"class 42 { }", ErrBadHeader},
		{"let x = 1;", ErrBadHeader},
		{"class Foo Foo }", ErrBadHeader},
		{"class Foo { } extra", ErrTrailingContent},
		{"class Foo { while }", ErrBadConstruct},
		{"class Foo { function void bar() { x = 1; } }", ErrBadConstruct},
		{"class Foo { function void bar() { do bar() } }", ErrBadTerminator},
		{"class Foo { static int x", ErrBadTerminator},
		{"class Foo { function void bar() { let x = 1", ErrBadTerminator},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		tree, err := Parse(tc.src)

		assert.Nil(tree, tc.src)
		var parseErr *ParseError
		if assert.True(errors.As(err, &parseErr), tc.src) {
			assert.Equal(tc.kind, parseErr.Kind, tc.src)
		}
	}
}
