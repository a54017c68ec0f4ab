package printer

import (
	"reflect"

	"github.com/webcarrot/tsemit/internal/ast"
	"github.com/webcarrot/tsemit/internal/config"
	"github.com/webcarrot/tsemit/internal/scanner"
)

func (p *Printer) emit(node ast.Node) {
	if node == nil {
		return
	}
	p.runPipeline(0, HintUnspecified, node)
}

func (p *Printer) emitExpression(node ast.Node) {
	if node == nil {
		return
	}
	p.runPipeline(0, HintExpression, node)
}

func (p *Printer) emitIdentifierName(node *ast.Identifier) {
	if node == nil {
		return
	}
	p.runPipeline(0, HintIdentifierName, node)
}

// Optional children are stored as typed pointers. These wrappers keep a nil
// pointer from turning into a non-nil interface value.

func (p *Printer) emitToken(node *ast.TokenNode) {
	if node != nil {
		p.emit(node)
	}
}

func (p *Printer) emitOptionalIdentifier(node *ast.Identifier) {
	if node != nil {
		p.emit(node)
	}
}

func (p *Printer) emitWithLeadingSpace(node ast.Node) {
	if node != nil {
		p.writeSpace()
		p.emit(node)
	}
}

func (p *Printer) emitExpressionWithLeadingSpace(node ast.Node) {
	if node != nil {
		p.writeSpace()
		p.emitExpression(node)
	}
}

func (p *Printer) emitNodeWithWriter(node ast.Node, write func(string)) {
	if node == nil {
		return
	}
	saved := p.write
	p.write = write
	p.emit(node)
	p.write = saved
}

func isKeywordExpression(token ast.Token) bool {
	switch token {
	case ast.TFalse, ast.TNull, ast.TSuper, ast.TTrue, ast.TThis, ast.TImport:
		return true
	}
	return false
}

func isExpressionNode(node ast.Node) bool {
	switch n := node.(type) {
	case *ast.NumericLiteral, *ast.BigIntLiteral, *ast.StringLiteral, *ast.RegularExpressionLiteral,
		*ast.Identifier, *ast.ArrayLiteralExpression, *ast.ObjectLiteralExpression,
		*ast.PropertyAccessExpression, *ast.ElementAccessExpression, *ast.CallExpression,
		*ast.NewExpression, *ast.TaggedTemplateExpression, *ast.TypeAssertion,
		*ast.ParenthesizedExpression, *ast.FunctionExpression, *ast.ArrowFunction,
		*ast.DeleteExpression, *ast.TypeOfExpression, *ast.VoidExpression, *ast.AwaitExpression,
		*ast.PrefixUnaryExpression, *ast.PostfixUnaryExpression, *ast.BinaryExpression,
		*ast.ConditionalExpression, *ast.TemplateExpression, *ast.YieldExpression,
		*ast.SpreadElement, *ast.ClassExpression, *ast.OmittedExpression, *ast.AsExpression,
		*ast.NonNullExpression, *ast.MetaProperty, *ast.ExpressionWithTypeArguments, *ast.JsxElement, *ast.JsxSelfClosingElement,
		*ast.JsxFragment, *ast.PartiallyEmittedExpression, *ast.CommaListExpression:
		return true
	case *ast.TemplatePart:
		return n.Part == ast.TemplateNoSubstitution
	case *ast.TokenNode:
		return isKeywordExpression(n.Token)
	}
	return false
}

// emitWithHint is the last phase of the pipeline. It writes the tokens of
// the node itself and sends each child back through the pipeline.
func (p *Printer) emitWithHint(hint Hint, node ast.Node) {
	switch hint {
	case HintSourceFile:
		sourceFile, ok := node.(*ast.SourceFile)
		if !ok {
			panic(InternalError{Hint: hint, Node: node, Reason: "expected a source file"})
		}
		p.emitSourceFile(sourceFile)
		return

	case HintIdentifierName:
		id, ok := node.(*ast.Identifier)
		if !ok {
			panic(InternalError{Hint: hint, Node: node, Reason: "expected an identifier"})
		}
		p.emitIdentifier(id)
		return

	case HintMappedTypeParameter:
		tp, ok := node.(*ast.TypeParameter)
		if !ok {
			panic(InternalError{Hint: hint, Node: node, Reason: "expected a type parameter"})
		}
		p.emitMappedTypeParameter(tp)
		return

	case HintEmbeddedStatement:
		if _, ok := node.(*ast.EmptyStatement); !ok {
			panic(InternalError{Hint: hint, Node: node, Reason: "expected an empty statement"})
		}
		// A trailing-semicolon-omitting writer must not drop this one
		p.writePunctuation(";")
		return

	case HintUnspecified:
		if p.emitUnspecified(node) {
			return
		}
		if !isExpressionNode(node) {
			if token, ok := node.(*ast.TokenNode); ok {
				p.writeTokenNode(token, p.writePunctuation)
				return
			}
			panic(InternalError{Hint: hint, Node: node, Reason: "unexpected node"})
		}
		hint = HintExpression
	}

	if hint == HintExpression && p.emitExpressionNode(node) {
		return
	}
	panic(InternalError{Hint: hint, Node: node, Reason: "unexpected node"})
}

func (p *Printer) emitExpressionNode(node ast.Node) bool {
	switch n := node.(type) {
	// Literals
	case *ast.NumericLiteral, *ast.BigIntLiteral, *ast.StringLiteral, *ast.RegularExpressionLiteral:
		p.emitLiteral(n)
	case *ast.TemplatePart:
		if n.Part != ast.TemplateNoSubstitution {
			return false
		}
		p.emitLiteral(n)

	case *ast.Identifier:
		p.emitIdentifier(n)

	case *ast.TokenNode:
		if !isKeywordExpression(n.Token) {
			return false
		}
		p.writeTokenNode(n, p.writeKeyword)

	// Expressions
	case *ast.ArrayLiteralExpression:
		p.emitArrayLiteralExpression(n)
	case *ast.ObjectLiteralExpression:
		p.emitObjectLiteralExpression(n)
	case *ast.PropertyAccessExpression:
		p.emitPropertyAccessExpression(n)
	case *ast.ElementAccessExpression:
		p.emitExpression(n.Expression)
		p.emitTokenWithComment(ast.TOpenBracket, rangeOf(n.Expression).End, p.writePunctuation, n, false)
		p.emitExpression(n.ArgumentExpression)
		p.emitTokenWithComment(ast.TCloseBracket, rangeOf(n.ArgumentExpression).End, p.writePunctuation, n, false)
	case *ast.CallExpression:
		p.emitExpression(n.Expression)
		p.emitTypeArguments(n, n.TypeArguments)
		p.emitExpressionList(n, n.Arguments, ast.CallExpressionArguments)
	case *ast.NewExpression:
		p.emitTokenWithComment(ast.TNew, n.Pos, p.writeKeyword, n, false)
		p.writeSpace()
		p.emitExpression(n.Expression)
		p.emitTypeArguments(n, n.TypeArguments)
		p.emitExpressionList(n, n.Arguments, ast.NewExpressionArguments)
	case *ast.TaggedTemplateExpression:
		p.emitExpression(n.Tag)
		p.emitTypeArguments(n, n.TypeArguments)
		p.writeSpace()
		p.emitExpression(n.Template)
	case *ast.TypeAssertion:
		p.writePunctuation("<")
		p.emit(n.Type)
		p.writePunctuation(">")
		p.emitExpression(n.Expression)
	case *ast.ParenthesizedExpression:
		openParenPos := p.emitTokenWithComment(ast.TOpenParen, n.Pos, p.writePunctuation, n, false)
		p.emitExpression(n.Expression)
		closePos := openParenPos
		if n.Expression != nil {
			closePos = rangeOf(n.Expression).End
		}
		p.emitTokenWithComment(ast.TCloseParen, closePos, p.writePunctuation, n, false)
	case *ast.FunctionExpression:
		if n.Name != nil && n.Name.AutoGenerate != nil {
			p.names.GenerateName(n.Name)
		}
		p.emitFunctionDeclarationOrExpression(n, functionParts{
			modifiers:      n.Modifiers,
			asteriskToken:  n.AsteriskToken,
			name:           n.Name,
			typeParameters: n.TypeParameters,
			parameters:     n.Parameters,
			typ:            n.Type,
			body:           blockOrNil(n.Body),
		})
	case *ast.ArrowFunction:
		p.emitModifiers(n, n.Modifiers)
		p.emitSignatureAndBody(n, n.Parameters, n.Body, func() { p.emitArrowFunctionHead(n) })
	case *ast.ExpressionWithTypeArguments:
		p.emitExpression(n.Expression)
		p.emitTypeArguments(n, n.TypeArguments)
	case *ast.DeleteExpression:
		p.emitTokenWithComment(ast.TDelete, n.Pos, p.writeKeyword, n, false)
		p.writeSpace()
		p.emitExpression(n.Expression)
	case *ast.TypeOfExpression:
		p.emitTokenWithComment(ast.TTypeof, n.Pos, p.writeKeyword, n, false)
		p.writeSpace()
		p.emitExpression(n.Expression)
	case *ast.VoidExpression:
		p.emitTokenWithComment(ast.TVoid, n.Pos, p.writeKeyword, n, false)
		p.writeSpace()
		p.emitExpression(n.Expression)
	case *ast.AwaitExpression:
		p.emitTokenWithComment(ast.TAwait, n.Pos, p.writeKeyword, n, false)
		p.writeSpace()
		p.emitExpression(n.Expression)
	case *ast.PrefixUnaryExpression:
		writeTokenText(n.Operator, p.writeOperator, -1)
		if shouldEmitWhitespaceBeforeOperand(n) {
			p.writeSpace()
		}
		p.emitExpression(n.Operand)
	case *ast.PostfixUnaryExpression:
		p.emitExpression(n.Operand)
		writeTokenText(n.Operator, p.writeOperator, -1)
	case *ast.BinaryExpression:
		p.emitBinaryExpression(n)
	case *ast.ConditionalExpression:
		p.emitConditionalExpression(n)
	case *ast.TemplateExpression:
		p.emit(n.Head)
		p.emitList(n, n.TemplateSpans, ast.TemplateExpressionSpans)
	case *ast.YieldExpression:
		p.emitTokenWithComment(ast.TYield, n.Pos, p.writeKeyword, n, false)
		p.emitToken(n.AsteriskToken)
		p.emitExpressionWithLeadingSpace(n.Expression)
	case *ast.SpreadElement:
		p.emitTokenWithComment(ast.TDotDotDot, n.Pos, p.writePunctuation, n, false)
		p.emitExpression(n.Expression)
	case *ast.ClassExpression:
		if n.Name != nil && n.Name.AutoGenerate != nil {
			p.names.GenerateName(n.Name)
		}
		p.emitClassDeclarationOrExpression(n, n.Decorators, n.Modifiers, n.Name, n.TypeParameters, n.HeritageClauses, n.Members)
	case *ast.OmittedExpression:
	case *ast.AsExpression:
		p.emitExpression(n.Expression)
		if n.Type != nil {
			p.writeSpace()
			p.writeKeyword("as")
			p.writeSpace()
			p.emit(n.Type)
		}
	case *ast.NonNullExpression:
		p.emitExpression(n.Expression)
		p.writeOperator("!")
	case *ast.MetaProperty:
		p.writeToken(n.KeywordToken, n.Pos, p.writePunctuation, n)
		p.writePunctuation(".")
		p.emitOptionalIdentifier(n.Name)

	// JSX
	case *ast.JsxElement:
		p.emitJsxElement(n)
	case *ast.JsxSelfClosingElement:
		p.emitJsxSelfClosingElement(n)
	case *ast.JsxFragment:
		p.emitJsxFragment(n)

	// Transformation nodes
	case *ast.PartiallyEmittedExpression:
		p.emitExpression(n.Expression)
	case *ast.CommaListExpression:
		p.emitExpressionList(n, n.Elements, ast.CommaListElements)

	default:
		return false
	}
	return true
}

////////////////////////////////////////////////////////////////////////////////
// Names

func (p *Printer) emitIdentifier(id *ast.Identifier) {
	if id.AutoGenerate != nil {
		p.write(p.names.GenerateName(id))
	} else {
		p.write(id.Text)
	}

	// Instantiated generics print their type arguments after the name
	p.emitList(id, id.TypeArguments, ast.TypeParameters)
}

// Entity names are expressions when they are plain identifiers.
func (p *Printer) emitEntityName(node ast.Node) {
	if _, ok := node.(*ast.Identifier); ok {
		p.emitExpression(node)
	} else {
		p.emit(node)
	}
}

////////////////////////////////////////////////////////////////////////////////
// Tokens

// emitTokenWithComment writes a token that has no node of its own. The
// comments between "pos" and the token are written first and any comments
// on the same line after the token follow it.
func (p *Printer) emitTokenWithComment(token ast.Token, pos int, write func(string), contextNode ast.Node, indentLeading bool) int {
	node := ast.ParseTreeNode(contextNode)
	isSimilarNode := node != nil && reflect.TypeOf(node) == reflect.TypeOf(contextNode)
	startPos := pos
	if isSimilarNode {
		pos = scanner.SkipTrivia(p.sourceText(), pos)
	}
	if isSimilarNode && rangeOf(contextNode).Pos != startPos {
		needsIndent := indentLeading && !p.positionsAreOnSameLine(startPos, pos)
		if needsIndent {
			p.increaseIndent()
		}
		p.comments.EmitLeadingCommentsOfPosition(startPos)
		if needsIndent {
			p.decreaseIndent()
		}
	}
	pos = writeTokenText(token, write, pos)
	if isSimilarNode && rangeOf(contextNode).End != pos {
		p.comments.EmitTrailingCommentsOfPosition(pos, true)
	}
	return pos
}

////////////////////////////////////////////////////////////////////////////////
// Expressions

func (p *Printer) emitArrayLiteralExpression(n *ast.ArrayLiteralExpression) {
	format := ast.ArrayLiteralExpressionElements
	if n.MultiLine {
		format |= ast.PreferNewLine
	}
	p.emitExpressionList(n, n.Elements, format)
}

func (p *Printer) emitObjectLiteralExpression(n *ast.ObjectLiteralExpression) {
	if n.Properties != nil {
		for _, property := range n.Properties.Nodes {
			p.names.GenerateMemberNames(property)
		}
	}

	indented := ast.GetEmitFlags(n)&ast.EmitFlagsIndented != 0
	if indented {
		p.increaseIndent()
	}

	format := ast.ObjectLiteralExpressionProperties
	if p.options.Target >= config.ES5 && !p.isInJSONFile() {
		format |= ast.AllowTrailingComma
	}
	if n.MultiLine {
		format |= ast.PreferNewLine
	}
	p.emitList(n, n.Properties, format)

	if indented {
		p.decreaseIndent()
	}
}

func (p *Printer) emitPropertyAccessExpression(n *ast.PropertyAccessExpression) {
	indentBeforeDot := false
	indentAfterDot := false
	text := p.sourceText()
	expressionEnd := rangeOf(n.Expression).End
	dotRangeFirstCommentStart := scanner.SkipTriviaEx(text, expressionEnd, false, true)
	dotRangeStart := scanner.SkipTrivia(text, dotRangeFirstCommentStart)
	dotRangeEnd := dotRangeStart + 1
	if dotRangeStart < 0 {
		dotRangeEnd = -1
	}

	if ast.GetEmitFlags(n)&ast.EmitFlagsNoIndentation == 0 {
		dotToken := &ast.TokenNode{Token: ast.TDot}
		dotToken.Pos = expressionEnd
		dotToken.End = dotRangeEnd
		indentBeforeDot = p.needsIndentation(n, n.Expression, dotToken)
		indentAfterDot = p.needsIndentation(n, dotToken, n.Name)
	}

	p.emitExpression(n.Expression)
	p.increaseIndentIf(indentBeforeDot, false)

	dotHasCommentTrivia := dotRangeFirstCommentStart != dotRangeStart
	if !indentBeforeDot && p.needsDotDotForPropertyAccess(n.Expression, dotHasCommentTrivia) {
		p.writePunctuation(".")
	}
	p.emitTokenWithComment(ast.TDot, expressionEnd, p.writePunctuation, n, false)

	p.increaseIndentIf(indentAfterDot, false)
	p.emitOptionalIdentifier(n.Name)
	p.decreaseIndentIf(indentBeforeDot, indentAfterDot)
}

// "+(+x)" and "-(-x)" need a space so the operators don't merge into "++"
// or "--".
func shouldEmitWhitespaceBeforeOperand(n *ast.PrefixUnaryExpression) bool {
	operand, ok := n.Operand.(*ast.PrefixUnaryExpression)
	if !ok {
		return false
	}
	return (n.Operator == ast.TPlus && (operand.Operator == ast.TPlus || operand.Operator == ast.TPlusPlus)) ||
		(n.Operator == ast.TMinus && (operand.Operator == ast.TMinus || operand.Operator == ast.TMinusMinus))
}

func (p *Printer) emitBinaryExpression(n *ast.BinaryExpression) {
	operator := n.OperatorToken
	if operator == nil {
		panic(InternalError{Hint: HintExpression, Node: n, Reason: "binary expression without an operator"})
	}
	spaceBeforeOperator := operator.Token != ast.TComma
	indentBeforeOperator := p.needsIndentation(n, n.Left, operator)
	indentAfterOperator := p.needsIndentation(n, operator, n.Right)

	p.emitExpression(n.Left)
	p.increaseIndentIf(indentBeforeOperator, spaceBeforeOperator)
	p.comments.EmitLeadingCommentsOfPosition(operator.Pos)
	if operator.Token == ast.TIn || operator.Token == ast.TInstanceof {
		p.writeTokenNode(operator, p.writeKeyword)
	} else {
		p.writeTokenNode(operator, p.writeOperator)
	}
	p.comments.EmitTrailingCommentsOfPosition(operator.End, true)
	p.increaseIndentIf(indentAfterOperator, true)
	p.emitExpression(n.Right)
	p.decreaseIndentIf(indentBeforeOperator, indentAfterOperator)
}

func (p *Printer) emitConditionalExpression(n *ast.ConditionalExpression) {
	questionToken := n.QuestionToken
	if questionToken == nil {
		questionToken = &ast.TokenNode{NodeBase: ast.NodeBase{TextRange: ast.SynthesizedRange}, Token: ast.TQuestion}
	}
	colonToken := n.ColonToken
	if colonToken == nil {
		colonToken = &ast.TokenNode{NodeBase: ast.NodeBase{TextRange: ast.SynthesizedRange}, Token: ast.TColon}
	}

	indentBeforeQuestion := p.needsIndentation(n, n.Condition, questionToken)
	indentAfterQuestion := p.needsIndentation(n, questionToken, n.WhenTrue)
	indentBeforeColon := p.needsIndentation(n, n.WhenTrue, colonToken)
	indentAfterColon := p.needsIndentation(n, colonToken, n.WhenFalse)

	p.emitExpression(n.Condition)
	p.increaseIndentIf(indentBeforeQuestion, true)
	p.emit(questionToken)
	p.increaseIndentIf(indentAfterQuestion, true)
	p.emitExpression(n.WhenTrue)
	p.decreaseIndentIf(indentBeforeQuestion, indentAfterQuestion)

	p.increaseIndentIf(indentBeforeColon, true)
	p.emit(colonToken)
	p.increaseIndentIf(indentAfterColon, true)
	p.emitExpression(n.WhenFalse)
	p.decreaseIndentIf(indentBeforeColon, indentAfterColon)
}

func (p *Printer) emitArrowFunctionHead(n *ast.ArrowFunction) {
	p.emitTypeParameters(n, n.TypeParameters)
	p.emitParametersForArrow(n, n.Parameters)
	p.emitTypeAnnotation(n.Type)
	p.writeSpace()
	if n.EqualsGreaterThanToken != nil {
		p.emit(n.EqualsGreaterThanToken)
	} else {
		p.writePunctuation("=>")
	}
}
