package ast

import "sync/atomic"

type GeneratedIdentifierFlags uint8

const (
	GeneratedNone GeneratedIdentifierFlags = 0

	// Kinds
	GeneratedAuto     GeneratedIdentifierFlags = 1 // "_a", "_b", ...
	GeneratedLoop     GeneratedIdentifierFlags = 2 // "_i" if available
	GeneratedUnique   GeneratedIdentifierFlags = 3 // base name plus a numeric suffix
	GeneratedNode     GeneratedIdentifierFlags = 4 // derived from another node
	GeneratedKindMask GeneratedIdentifierFlags = 7

	// Modifiers
	GeneratedReservedInNestedScopes GeneratedIdentifierFlags = 8
	GeneratedOptimistic             GeneratedIdentifierFlags = 16
	GeneratedFileLevel              GeneratedIdentifierFlags = 32
)

func (flags GeneratedIdentifierFlags) Kind() GeneratedIdentifierFlags {
	return flags & GeneratedKindMask
}

func (flags GeneratedIdentifierFlags) Has(flag GeneratedIdentifierFlags) bool {
	return flags&flag != 0
}

// AutoGenerate describes how the printer should choose the text of an
// identifier. Requests are told apart by ID: two identifier nodes sharing an
// ID always print the same text.
type AutoGenerate struct {
	Flags GeneratedIdentifierFlags
	ID    uint32
}

var nextAutoGenerateID uint32

func newAutoGenerate(flags GeneratedIdentifierFlags) *AutoGenerate {
	return &AutoGenerate{Flags: flags, ID: atomic.AddUint32(&nextAutoGenerateID, 1)}
}

func IsGeneratedIdentifier(node Node) bool {
	id, ok := node.(*Identifier)
	return ok && id.AutoGenerate != nil
}

func synthesized() NodeBase {
	return NodeBase{TextRange: SynthesizedRange, Flags: NodeFlagsSynthesized}
}

func NewIdentifier(text string) *Identifier {
	return &Identifier{NodeBase: synthesized(), Text: text}
}

// NewTempVariable requests a name from the "_a", "_b", ... sequence.
func NewTempVariable(reservedInNestedScopes bool) *Identifier {
	flags := GeneratedAuto
	if reservedInNestedScopes {
		flags |= GeneratedReservedInNestedScopes
	}
	return &Identifier{NodeBase: synthesized(), AutoGenerate: newAutoGenerate(flags)}
}

// NewLoopVariable requests "_i" if it's free, otherwise a temp name.
func NewLoopVariable() *Identifier {
	return &Identifier{NodeBase: synthesized(), AutoGenerate: newAutoGenerate(GeneratedLoop)}
}

// NewUniqueName requests "text_1", "text_2", ... whichever is unused first.
func NewUniqueName(text string, flags GeneratedIdentifierFlags) *Identifier {
	return &Identifier{NodeBase: synthesized(), Text: text, AutoGenerate: newAutoGenerate(GeneratedUnique | flags)}
}

// NewOptimisticUniqueName requests "text" itself if it's unused.
func NewOptimisticUniqueName(text string) *Identifier {
	return NewUniqueName(text, GeneratedOptimistic)
}

func NewFileLevelUniqueName(text string) *Identifier {
	return NewUniqueName(text, GeneratedOptimistic|GeneratedFileLevel)
}

// GeneratedNameForNode requests a name derived from another node. Requests
// for the same node share a name.
func GeneratedNameForNode(node Node, flags GeneratedIdentifierFlags) *Identifier {
	name := &Identifier{NodeBase: synthesized(), AutoGenerate: newAutoGenerate(GeneratedNode | flags)}
	if id, ok := node.(*Identifier); ok {
		name.Text = id.Text
	}
	name.Original = node
	return name
}

func NewToken(token Token) *TokenNode {
	return &TokenNode{NodeBase: synthesized(), Token: token}
}

func NewModifiers(tokens ...Token) *NodeList {
	list := NewNodeList()
	for _, t := range tokens {
		list.Nodes = append(list.Nodes, NewToken(t))
	}
	return list
}

func NewNumericLiteral(text string) *NumericLiteral {
	return &NumericLiteral{NodeBase: synthesized(), Text: text}
}

func NewStringLiteral(text string) *StringLiteral {
	return &StringLiteral{NodeBase: synthesized(), Text: text}
}

func NewBinary(left Node, op Token, right Node) *BinaryExpression {
	return &BinaryExpression{NodeBase: synthesized(), Left: left, OperatorToken: NewToken(op), Right: right}
}

func NewCall(callee Node, args ...Node) *CallExpression {
	return &CallExpression{NodeBase: synthesized(), Expression: callee, Arguments: NewNodeList(args...)}
}

func NewPropertyAccess(target Node, name string) *PropertyAccessExpression {
	return &PropertyAccessExpression{NodeBase: synthesized(), Expression: target, Name: NewIdentifier(name)}
}

func NewExpressionStatement(expr Node) *ExpressionStatement {
	return &ExpressionStatement{NodeBase: synthesized(), Expression: expr}
}

func NewVariableStatement(flags NodeFlags, declarations ...*VariableDeclaration) *VariableStatement {
	list := &VariableDeclarationList{NodeBase: synthesized(), Declarations: NewNodeList()}
	list.Flags |= flags
	for _, d := range declarations {
		list.Declarations.Nodes = append(list.Declarations.Nodes, d)
	}
	return &VariableStatement{NodeBase: synthesized(), DeclarationList: list}
}

func NewVariableDeclaration(name Node, initializer Node) *VariableDeclaration {
	return &VariableDeclaration{NodeBase: synthesized(), Name: name, Initializer: initializer}
}

func NewBlock(multiLine bool, statements ...Node) *Block {
	return &Block{NodeBase: synthesized(), Statements: NewNodeList(statements...), MultiLine: multiLine}
}

func NewReturn(expr Node) *ReturnStatement {
	return &ReturnStatement{NodeBase: synthesized(), Expression: expr}
}

func NewObjectLiteral(multiLine bool, properties ...Node) *ObjectLiteralExpression {
	return &ObjectLiteralExpression{NodeBase: synthesized(), Properties: NewNodeList(properties...), MultiLine: multiLine}
}

func NewPropertyAssignment(name Node, initializer Node) *PropertyAssignment {
	return &PropertyAssignment{NodeBase: synthesized(), Name: name, Initializer: initializer}
}

func NewFunctionDeclaration(name *Identifier, parameters []Node, body *Block) *FunctionDeclaration {
	return &FunctionDeclaration{NodeBase: synthesized(), Name: name, Parameters: NewNodeList(parameters...), Body: body}
}

func NewParameter(name Node) *Parameter {
	return &Parameter{NodeBase: synthesized(), Name: name}
}

func NewNotEmittedStatement(original Node) *NotEmittedStatement {
	node := &NotEmittedStatement{NodeBase: synthesized()}
	node.Original = original
	if original != nil {
		node.TextRange = original.Base().TextRange
	}
	return node
}

func NewPartiallyEmittedExpression(expr Node, original Node) *PartiallyEmittedExpression {
	node := &PartiallyEmittedExpression{NodeBase: synthesized(), Expression: expr}
	node.Original = original
	if original != nil {
		node.TextRange = original.Base().TextRange
	}
	return node
}

func NewSourceFile(fileName string, statements ...Node) *SourceFile {
	return &SourceFile{NodeBase: synthesized(), FileName: fileName, Statements: NewNodeList(statements...)}
}
