package ast

// Every syntactic form is its own struct type and implements Node. The set of
// node types is closed: consumers switch over the concrete type and treat an
// unknown type as an internal error.
type Node interface {
	Base() *NodeBase
	isNode()
}

// TextRange is a half-open byte range in the source text. "Pos" includes any
// leading trivia, so the first token of a node starts at SkipTrivia(Pos).
// Negative values mark a position that does not exist in the original text.
type TextRange struct {
	Pos int
	End int
}

func (r TextRange) IsSynthesized() bool {
	return r.Pos < 0 || r.End < 0
}

var SynthesizedRange = TextRange{Pos: -1, End: -1}

type NodeFlags uint32

const (
	NodeFlagsNone NodeFlags = 0
	// VariableDeclarationList uses "let"
	NodeFlagsLet NodeFlags = 1 << iota
	// VariableDeclarationList uses "const"
	NodeFlagsConst
	// ModuleDeclaration written with the "namespace" keyword
	NodeFlagsNamespace
	// ModuleDeclaration nested in a dotted name ("namespace a.b")
	NodeFlagsNestedNamespace
	// ModuleDeclaration for "declare global"
	NodeFlagsGlobalAugmentation
	// The node was created by a transformation rather than parsed
	NodeFlagsSynthesized

	NodeFlagsBlockScoped = NodeFlagsLet | NodeFlagsConst
)

type NodeBase struct {
	TextRange
	Flags NodeFlags

	// The node this one was derived from by a transformation, if any
	Original Node

	// Optional emit metadata attached by transformations. It is only read by
	// the printer and never shared between nodes.
	Emit *EmitNode
}

func (b *NodeBase) Base() *NodeBase { return b }

// NodeList is a sequence of sibling nodes together with the range they span
// in the source. A nil *NodeList means the list is absent, which is different
// from an empty list for the purposes of list formatting.
type NodeList struct {
	TextRange
	Nodes            []Node
	HasTrailingComma bool
}

func NewNodeList(nodes ...Node) *NodeList {
	return &NodeList{TextRange: SynthesizedRange, Nodes: nodes}
}

func (list *NodeList) Len() int {
	if list == nil {
		return 0
	}
	return len(list.Nodes)
}

func IsSynthesized(node Node) bool {
	return node.Base().TextRange.IsSynthesized()
}

func Original(node Node) Node {
	return node.Base().Original
}

// ParseTreeNode walks "original" links back to the node that came out of the
// parser, or returns nil if the chain never reaches a parsed node.
func ParseTreeNode(node Node) Node {
	for node != nil {
		base := node.Base()
		if base.Flags&NodeFlagsSynthesized == 0 {
			return node
		}
		node = base.Original
	}
	return nil
}

// SkipPartiallyEmitted unwraps PartiallyEmittedExpression nodes.
func SkipPartiallyEmitted(node Node) Node {
	for {
		if p, ok := node.(*PartiallyEmittedExpression); ok {
			node = p.Expression
			continue
		}
		return node
	}
}

// SkipParentheses unwraps ParenthesizedExpression nodes.
func SkipParentheses(node Node) Node {
	for {
		if p, ok := node.(*ParenthesizedExpression); ok {
			node = p.Expression
			continue
		}
		return node
	}
}
