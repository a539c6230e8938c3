package jack

// NodeKind tags a syntax-tree node with the grammar production that built it.
// Its string form is the tag used when rendering the node.
type NodeKind uint

const (
	NodeClass NodeKind = iota
	NodeClassVarDec
	NodeSubroutineDec
	NodeSubroutineBody
	NodeVarDec
	NodeParameterList
	NodeStatements
	NodeLetStatement
	NodeIfStatement
	NodeWhileStatement
	NodeDoStatement
	NodeReturnStatement
	NodeExpression
	NodeTerm
	NodeExpressionList
)

func (kind NodeKind) String() string {
	switch kind {
	case NodeClass:
		return "class"
	case NodeClassVarDec:
		return "classVarDec"
	case NodeSubroutineDec:
		return "subroutineDec"
	case NodeSubroutineBody:
		return "subroutineBody"
	case NodeVarDec:
		return "varDec"
	case NodeParameterList:
		return "parameterList"
	case NodeStatements:
		return "statements"
	case NodeLetStatement:
		return "letStatement"
	case NodeIfStatement:
		return "ifStatement"
	case NodeWhileStatement:
		return "whileStatement"
	case NodeDoStatement:
		return "doStatement"
	case NodeReturnStatement:
		return "returnStatement"
	case NodeExpression:
		return "expression"
	case NodeTerm:
		return "term"
	case NodeExpressionList:
		return "expressionList"
	}
	return ""
}

// Child is one element of a node's ordered children: either a terminal
// *Token or a nested *Node. The interface is sealed so the renderer's type
// switch covers every variant.
type Child interface {
	child()
}

func (tok *Token) child() {}

func (node *Node) child() {}

// Node is a named grammar-production result owning an ordered, heterogeneous
// sequence of Token/Node children. Nodes hold no parent back-reference and
// are never mutated once the engine returns the tree.
type Node struct {
	Kind     NodeKind
	Children []Child
}

// NewNode creates a new node of the given kind holding the given children.
func NewNode(kind NodeKind, children ...Child) *Node {
	return &Node{kind, children}
}
