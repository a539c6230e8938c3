/*
Package jack implements the front end of the Jack analyzer: a tokenizer that
turns raw source text into a classified token stream, a compilation engine
that builds a syntax tree from that stream, and a renderer that prints the
tree in the toolchain's tagged nested-block format.

Grammar

	class           --> "class" IDENT "{" ( classVarDec | subroutineDec )* "}" ;
	classVarDec     --> ( "static" | "field" ) token* ";" ;
	subroutineDec   --> ( "constructor" | "function" | "method" )
	                    type IDENT "(" parameterList ")" subroutineBody ;
	parameterList   --> token* ;
	subroutineBody  --> "{" varDec* statements "}" ;
	varDec          --> "var" token* ";" ;
	statements      --> ( letStatement | ifStatement | whileStatement
	                    | doStatement | returnStatement )* ;
	letStatement    --> "let" IDENT "=" expression ";" ;
	ifStatement     --> "if" "(" expression ")" "{" statements "}"
	                    ( "else" "{" statements "}" )? ;
	whileStatement  --> "while" "(" expression ")" "{" statements "}" ;
	doStatement     --> "do" IDENT ( "." IDENT )? "(" expressionList ")" ";" ;
	returnStatement --> "return" expression? ";" ;
	expression      --> term ( op term )* ;
	term            --> any single non-operator token ;
	expressionList  --> ( expression ( "," expression )* )? ;

Expressions are deliberately flat: operators are kept as sibling tokens of
their terms, a term carries no sub-structure, and no precedence is applied.
Interpreting precedence is left to downstream stages.
*/
package jack
