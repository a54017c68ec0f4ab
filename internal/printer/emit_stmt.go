package printer

import (
	"fmt"

	"github.com/webcarrot/tsemit/internal/ast"
	"github.com/webcarrot/tsemit/internal/scanner"
)

func blockOrNil(block *ast.Block) ast.Node {
	if block == nil {
		return nil
	}
	return block
}

func endOf(node ast.Node, fallback int) int {
	if node == nil {
		return fallback
	}
	return rangeOf(node).End
}

func listRange(list *ast.NodeList, fallback ast.TextRange) ast.TextRange {
	if list == nil {
		return fallback
	}
	return list.TextRange
}

////////////////////////////////////////////////////////////////////////////////
// Statements

func (p *Printer) emitStatement(node ast.Node) bool {
	switch n := node.(type) {
	case *ast.Block:
		p.emitBlockStatements(n, n.Statements, !n.MultiLine && p.isEmptyBlock(n, n.Statements))

	case *ast.VariableStatement:
		p.emitModifiers(n, n.Modifiers)
		if n.DeclarationList != nil {
			p.emit(n.DeclarationList)
		}
		p.writeTrailingSemicolon()

	case *ast.EmptyStatement:
		p.writeTrailingSemicolon()

	case *ast.ExpressionStatement:
		p.emitExpression(n.Expression)

		// JSON files hold a single expression with no semicolon after it
		if !p.isInJSONFile() || (n.Expression != nil && ast.IsSynthesized(n.Expression)) {
			p.writeTrailingSemicolon()
		}

	case *ast.IfStatement:
		openParenPos := p.emitTokenWithComment(ast.TIf, n.Pos, p.writeKeyword, n, false)
		p.writeSpace()
		p.emitTokenWithComment(ast.TOpenParen, openParenPos, p.writePunctuation, n, false)
		p.emitExpression(n.Expression)
		p.emitTokenWithComment(ast.TCloseParen, endOf(n.Expression, -1), p.writePunctuation, n, false)
		p.emitEmbeddedStatement(n, n.ThenStatement)
		if n.ElseStatement != nil {
			p.writeLineOrSpace(n)
			p.emitTokenWithComment(ast.TElse, endOf(n.ThenStatement, -1), p.writeKeyword, n, false)
			if _, ok := n.ElseStatement.(*ast.IfStatement); ok {
				p.writeSpace()
				p.emit(n.ElseStatement)
			} else {
				p.emitEmbeddedStatement(n, n.ElseStatement)
			}
		}

	case *ast.DoStatement:
		p.emitTokenWithComment(ast.TDo, n.Pos, p.writeKeyword, n, false)
		p.emitEmbeddedStatement(n, n.Statement)
		if _, ok := n.Statement.(*ast.Block); ok {
			p.writeSpace()
		} else {
			p.writeLineOrSpace(n)
		}
		p.emitWhileClause(n, n.Expression, endOf(n.Statement, -1))
		p.writePunctuation(";")

	case *ast.WhileStatement:
		p.emitWhileClause(n, n.Expression, n.Pos)
		p.emitEmbeddedStatement(n, n.Statement)

	case *ast.ForStatement:
		openParenPos := p.emitTokenWithComment(ast.TFor, n.Pos, p.writeKeyword, n, false)
		p.writeSpace()
		pos := p.emitTokenWithComment(ast.TOpenParen, openParenPos, p.writePunctuation, n, false)
		p.emitForBinding(n.Initializer)
		pos = p.emitTokenWithComment(ast.TSemicolon, endOf(n.Initializer, pos), p.writePunctuation, n, false)
		p.emitExpressionWithLeadingSpace(n.Condition)
		pos = p.emitTokenWithComment(ast.TSemicolon, endOf(n.Condition, pos), p.writePunctuation, n, false)
		p.emitExpressionWithLeadingSpace(n.Incrementor)
		p.emitTokenWithComment(ast.TCloseParen, endOf(n.Incrementor, pos), p.writePunctuation, n, false)
		p.emitEmbeddedStatement(n, n.Statement)

	case *ast.ForInStatement:
		openParenPos := p.emitTokenWithComment(ast.TFor, n.Pos, p.writeKeyword, n, false)
		p.writeSpace()
		p.emitTokenWithComment(ast.TOpenParen, openParenPos, p.writePunctuation, n, false)
		p.emitForBinding(n.Initializer)
		p.writeSpace()
		p.emitTokenWithComment(ast.TIn, endOf(n.Initializer, -1), p.writeKeyword, n, false)
		p.writeSpace()
		p.emitExpression(n.Expression)
		p.emitTokenWithComment(ast.TCloseParen, endOf(n.Expression, -1), p.writePunctuation, n, false)
		p.emitEmbeddedStatement(n, n.Statement)

	case *ast.ForOfStatement:
		openParenPos := p.emitTokenWithComment(ast.TFor, n.Pos, p.writeKeyword, n, false)
		p.writeSpace()
		if n.AwaitModifier != nil {
			p.emit(n.AwaitModifier)
			p.writeSpace()
		}
		p.emitTokenWithComment(ast.TOpenParen, openParenPos, p.writePunctuation, n, false)
		p.emitForBinding(n.Initializer)
		p.writeSpace()
		p.emitTokenWithComment(ast.TOf, endOf(n.Initializer, -1), p.writeKeyword, n, false)
		p.writeSpace()
		p.emitExpression(n.Expression)
		p.emitTokenWithComment(ast.TCloseParen, endOf(n.Expression, -1), p.writePunctuation, n, false)
		p.emitEmbeddedStatement(n, n.Statement)

	case *ast.ContinueStatement:
		p.emitTokenWithComment(ast.TContinue, n.Pos, p.writeKeyword, n, false)
		if n.Label != nil {
			p.emitWithLeadingSpace(n.Label)
		}
		p.writeTrailingSemicolon()

	case *ast.BreakStatement:
		p.emitTokenWithComment(ast.TBreak, n.Pos, p.writeKeyword, n, false)
		if n.Label != nil {
			p.emitWithLeadingSpace(n.Label)
		}
		p.writeTrailingSemicolon()

	case *ast.ReturnStatement:
		p.emitTokenWithComment(ast.TReturn, n.Pos, p.writeKeyword, n, false)
		p.emitExpressionWithLeadingSpace(n.Expression)
		p.writeTrailingSemicolon()

	case *ast.WithStatement:
		openParenPos := p.emitTokenWithComment(ast.TWith, n.Pos, p.writeKeyword, n, false)
		p.writeSpace()
		p.emitTokenWithComment(ast.TOpenParen, openParenPos, p.writePunctuation, n, false)
		p.emitExpression(n.Expression)
		p.emitTokenWithComment(ast.TCloseParen, endOf(n.Expression, -1), p.writePunctuation, n, false)
		p.emitEmbeddedStatement(n, n.Statement)

	case *ast.SwitchStatement:
		openParenPos := p.emitTokenWithComment(ast.TSwitch, n.Pos, p.writeKeyword, n, false)
		p.writeSpace()
		p.emitTokenWithComment(ast.TOpenParen, openParenPos, p.writePunctuation, n, false)
		p.emitExpression(n.Expression)
		p.emitTokenWithComment(ast.TCloseParen, endOf(n.Expression, -1), p.writePunctuation, n, false)
		p.writeSpace()
		if n.CaseBlock != nil {
			p.emit(n.CaseBlock)
		}

	case *ast.LabeledStatement:
		if n.Label != nil {
			p.emit(n.Label)
			p.emitTokenWithComment(ast.TColon, n.Label.End, p.writePunctuation, n, false)
		} else {
			p.writePunctuation(":")
		}
		p.writeSpace()
		p.emit(n.Statement)

	case *ast.ThrowStatement:
		p.emitTokenWithComment(ast.TThrow, n.Pos, p.writeKeyword, n, false)
		p.emitExpressionWithLeadingSpace(n.Expression)
		p.writeTrailingSemicolon()

	case *ast.TryStatement:
		p.emitTokenWithComment(ast.TTry, n.Pos, p.writeKeyword, n, false)
		p.writeSpace()
		if n.TryBlock != nil {
			p.emit(n.TryBlock)
		}
		if n.CatchClause != nil {
			p.writeLineOrSpace(n)
			p.emit(n.CatchClause)
		}
		if n.FinallyBlock != nil {
			p.writeLineOrSpace(n)
			pos := -1
			if n.CatchClause != nil {
				pos = n.CatchClause.End
			} else if n.TryBlock != nil {
				pos = n.TryBlock.End
			}
			p.emitTokenWithComment(ast.TFinally, pos, p.writeKeyword, n, false)
			p.writeSpace()
			p.emit(n.FinallyBlock)
		}

	case *ast.DebuggerStatement:
		p.writeToken(ast.TDebugger, n.Pos, p.writeKeyword, n)
		p.writeTrailingSemicolon()

	case *ast.NotEmittedStatement:
		// Only the comments attached to it are printed

	default:
		return false
	}
	return true
}

func (p *Printer) emitBlockStatements(node ast.Node, statements *ast.NodeList, forceSingleLine bool) {
	p.emitTokenWithComment(ast.TOpenBrace, rangeOf(node).Pos, p.writePunctuation, node, false)

	format := ast.MultiLineBlockStatements
	if forceSingleLine || ast.GetEmitFlags(node)&ast.EmitFlagsSingleLine != 0 {
		format = ast.SingleLineBlockStatements
	}
	p.emitList(node, statements, format)

	closePos := rangeOf(node).End
	if statements != nil {
		closePos = statements.End
	}
	p.emitTokenWithComment(ast.TCloseBrace, closePos, p.writePunctuation, node, format&ast.MultiLine != 0)
}

func (p *Printer) emitWhileClause(node ast.Node, expression ast.Node, startPos int) {
	openParenPos := p.emitTokenWithComment(ast.TWhile, startPos, p.writeKeyword, node, false)
	p.writeSpace()
	p.emitTokenWithComment(ast.TOpenParen, openParenPos, p.writePunctuation, node, false)
	p.emitExpression(expression)
	p.emitTokenWithComment(ast.TCloseParen, endOf(expression, -1), p.writePunctuation, node, false)
}

func (p *Printer) emitForBinding(node ast.Node) {
	if node == nil {
		return
	}
	if _, ok := node.(*ast.VariableDeclarationList); ok {
		p.emit(node)
	} else {
		p.emitExpression(node)
	}
}

// emitEmbeddedStatement prints the body of a control flow statement. A block
// stays on the same line as its parent and anything else goes on its own
// indented line.
func (p *Printer) emitEmbeddedStatement(parent ast.Node, node ast.Node) {
	if node == nil {
		return
	}
	_, isBlock := node.(*ast.Block)
	if isBlock || ast.GetEmitFlags(parent)&ast.EmitFlagsSingleLine != 0 {
		p.writeSpace()
		p.emit(node)
		return
	}

	p.writeLine()
	p.increaseIndent()
	if _, ok := node.(*ast.EmptyStatement); ok {
		p.runPipeline(0, HintEmbeddedStatement, node)
	} else {
		p.emit(node)
	}
	p.decreaseIndent()
}

////////////////////////////////////////////////////////////////////////////////
// Function bodies

type functionParts struct {
	decorators     *ast.NodeList
	modifiers      *ast.NodeList
	asteriskToken  *ast.TokenNode
	name           *ast.Identifier
	typeParameters *ast.NodeList
	parameters     *ast.NodeList
	typ            ast.Node
	body           ast.Node
}

func (p *Printer) emitFunctionDeclarationOrExpression(node ast.Node, parts functionParts) {
	p.emitDecorators(node, parts.decorators)
	p.emitModifiers(node, parts.modifiers)
	p.writeKeyword("function")
	p.emitToken(parts.asteriskToken)
	p.writeSpace()
	p.emitIdentifierName(parts.name)
	p.emitSignatureAndBody(node, parts.parameters, parts.body, func() {
		p.emitSignatureHead(node, parts.typeParameters, parts.parameters, parts.typ)
	})
}

func (p *Printer) emitSignatureHead(node ast.Node, typeParameters *ast.NodeList, parameters *ast.NodeList, typ ast.Node) {
	p.emitTypeParameters(node, typeParameters)
	p.emitParameters(node, parameters)
	p.emitTypeAnnotation(typ)
}

// emitSignatureAndBody prints the head of a function followed by its body.
// A block body opens a name scope holding the parameters and the body's
// own declarations.
func (p *Printer) emitSignatureAndBody(node ast.Node, parameters *ast.NodeList, body ast.Node, emitSignatureHead func()) {
	if block, ok := body.(*ast.Block); ok && block != nil {
		indentedFlag := ast.GetEmitFlags(node)&ast.EmitFlagsIndented != 0
		if indentedFlag {
			p.increaseIndent()
		}

		p.names.PushScope(node)
		if parameters != nil {
			for _, parameter := range parameters.Nodes {
				p.names.GenerateNames(parameter)
			}
		}
		p.names.GenerateNames(block)

		emitSignatureHead()
		if p.handlers.OnEmitNode != nil && (p.handlers.IsEmitNotificationEnabled == nil || p.handlers.IsEmitNotificationEnabled(block)) {
			p.handlers.OnEmitNode(HintUnspecified, block, func(hint Hint, node ast.Node) {
				if b, ok := node.(*ast.Block); ok {
					p.emitBlockFunctionBody(b)
				} else {
					p.runPipeline(0, hint, node)
				}
			})
		} else {
			p.emitBlockFunctionBody(block)
		}
		p.names.PopScope(node)

		if indentedFlag {
			p.decreaseIndent()
		}
		return
	}

	if body != nil {
		emitSignatureHead()
		p.writeSpace()
		p.emitExpression(body)
		return
	}

	emitSignatureHead()
	p.writeTrailingSemicolon()
}

func (p *Printer) shouldEmitBlockFunctionBodyOnSingleLine(body *ast.Block) bool {
	flags := ast.GetEmitFlags(body)
	if flags&ast.EmitFlagsSingleLine != 0 {
		return true
	}
	if body.MultiLine {
		return false
	}
	if !ast.IsSynthesized(body) && !p.rangeIsOnSingleLine(body.TextRange) {
		return false
	}

	var statements []ast.Node
	bodyRange := body.TextRange
	if body.Statements != nil {
		statements = body.Statements.Nodes
	}
	if p.shouldWriteLeadingLineTerminator(bodyRange, statements, ast.PreserveLines) ||
		p.shouldWriteClosingLineTerminator(bodyRange, statements, ast.PreserveLines) {
		return false
	}

	var previous ast.Node
	for _, statement := range statements {
		if p.shouldWriteSeparatingLineTerminator(previous, statement, ast.PreserveLines) {
			return false
		}
		previous = statement
	}
	return true
}

func (p *Printer) emitBlockFunctionBody(body *ast.Block) {
	p.writeSpace()
	p.writePunctuation("{")
	p.increaseIndent()

	emitBlockFunctionBody := func() { p.emitBlockFunctionBodyWorker(body, false) }
	if p.shouldEmitBlockFunctionBodyOnSingleLine(body) {
		emitBlockFunctionBody = func() { p.emitBlockFunctionBodyWorker(body, true) }
	}
	p.comments.EmitBodyWithDetachedComments(body, listRange(body.Statements, ast.SynthesizedRange), emitBlockFunctionBody)

	p.decreaseIndent()
	closePos := body.End
	if body.Statements != nil {
		closePos = body.Statements.End
	}
	p.writeToken(ast.TCloseBrace, closePos, p.writePunctuation, body)
}

func (p *Printer) emitBlockFunctionBodyWorker(body *ast.Block, emitBlockFunctionBodyOnSingleLine bool) {
	var statements []ast.Node
	if body.Statements != nil {
		statements = body.Statements.Nodes
	}

	// Prologue directives stay at the top of the body ahead of any helpers
	statementOffset := p.emitPrologueDirectives(statements, true, nil)
	pos := p.writer.TextPos()
	p.emitHelpers(body)
	if statementOffset == 0 && pos == p.writer.TextPos() && emitBlockFunctionBodyOnSingleLine {
		p.decreaseIndent()
		p.emitList(body, body.Statements, ast.SingleLineFunctionBodyStatements)
		p.increaseIndent()
	} else {
		p.emitListRange(body, body.Statements, ast.MultiLineFunctionBodyStatements, statementOffset)
	}
}

////////////////////////////////////////////////////////////////////////////////
// Source files

func (p *Printer) emitSourceFile(node *ast.SourceFile) {
	p.writeLine()
	var statements []ast.Node
	if node.Statements != nil {
		statements = node.Statements.Nodes
	}

	// A file that starts with a prologue had its leading comments printed
	// together with the prologue
	if len(statements) == 0 || !isPrologueDirective(statements[0]) || ast.IsSynthesized(statements[0]) {
		p.comments.EmitBodyWithDetachedComments(node, listRange(node.Statements, ast.SynthesizedRange), func() {
			p.emitSourceFileWorker(node)
		})
		return
	}
	p.emitSourceFileWorker(node)
}

func (p *Printer) emitSourceFileWorker(node *ast.SourceFile) {
	p.names.PushScope(node)
	if node.Statements != nil {
		for _, statement := range node.Statements.Nodes {
			p.names.GenerateNames(statement)
		}
	}
	p.emitHelpers(node)

	index := 0
	if node.Statements != nil {
		for index < len(node.Statements.Nodes) && isPrologueDirective(node.Statements.Nodes[index]) {
			index++
		}
	}
	if node.IsDeclarationFile {
		p.emitTripleSlashDirectives(node.HasNoDefaultLib, node.ReferencedFiles, node.TypeReferenceDirectives, node.LibReferenceDirectives)
	}
	p.emitListRange(node, node.Statements, ast.MultiLine, index)
	p.names.PopScope(node)
}

func (p *Printer) emitSyntheticTripleSlashReferencesIfNeeded(bundle *ast.Bundle) {
	p.emitTripleSlashDirectives(bundle.HasNoDefaultLib, bundle.SyntheticFileReferences,
		bundle.SyntheticTypeReferences, bundle.SyntheticLibReferences)
}

func (p *Printer) emitTripleSlashDirectives(hasNoDefaultLib bool, files []ast.FileReference, types []ast.FileReference, libs []ast.FileReference) {
	if hasNoDefaultLib {
		p.writeComment(`/// <reference no-default-lib="true"/>`)
		p.writeLine()
	}
	if p.currentSourceFile != nil && p.currentSourceFile.ModuleName != "" {
		p.writeComment(fmt.Sprintf(`/// <amd-module name="%s" />`, p.currentSourceFile.ModuleName))
		p.writeLine()
	}
	for _, directive := range files {
		p.writeComment(fmt.Sprintf(`/// <reference path="%s" />`, directive.FileName))
		p.writeLine()
	}
	for _, directive := range types {
		p.writeComment(fmt.Sprintf(`/// <reference types="%s" />`, directive.FileName))
		p.writeLine()
	}
	for _, directive := range libs {
		p.writeComment(fmt.Sprintf(`/// <reference lib="%s" />`, directive.FileName))
		p.writeLine()
	}
}

func isPrologueDirective(node ast.Node) bool {
	statement, ok := node.(*ast.ExpressionStatement)
	if !ok {
		return false
	}
	_, ok = statement.Expression.(*ast.StringLiteral)
	return ok
}

func prologueText(node ast.Node) string {
	return node.(*ast.ExpressionStatement).Expression.(*ast.StringLiteral).Text
}

// emitPrologueDirectives prints the directives at the start of the list and
// returns the index of the first statement that is not one. Directives in
// "seen" are skipped and new ones are added to it.
func (p *Printer) emitPrologueDirectives(statements []ast.Node, startWithNewLine bool, seen map[string]bool) int {
	for i, statement := range statements {
		if !isPrologueDirective(statement) {
			return i
		}
		text := prologueText(statement)
		if seen != nil && seen[text] {
			continue
		}
		if startWithNewLine || i > 0 {
			p.writeLine()
		}
		p.emit(statement)
		if seen != nil {
			seen[text] = true
		}
	}
	return len(statements)
}

func (p *Printer) emitPrologueDirectivesIfNeeded(node ast.Node) {
	switch n := node.(type) {
	case *ast.SourceFile:
		p.setSourceFile(n)
		if n.Statements != nil {
			p.emitPrologueDirectives(n.Statements.Nodes, false, nil)
		}

	case *ast.Bundle:
		seen := make(map[string]bool)
		for _, sourceFile := range n.SourceFiles {
			p.setSourceFile(sourceFile)
			if sourceFile.Statements != nil {
				p.emitPrologueDirectives(sourceFile.Statements.Nodes, true, seen)
			}
		}
		p.setSourceFile(nil)
	}
}

func (p *Printer) emitShebangIfNeeded(node ast.Node) bool {
	switch n := node.(type) {
	case *ast.SourceFile:
		if shebang := scanner.Shebang(n.Text); shebang != "" {
			p.writeComment(shebang)
			p.writeLine()
			return true
		}

	case *ast.Bundle:
		for _, prepend := range n.Prepends {
			if shebang := scanner.Shebang(prepend.Text); shebang != "" {
				p.writeComment(shebang)
				p.writeLine()
				return true
			}
		}
		for _, sourceFile := range n.SourceFiles {
			if p.emitShebangIfNeeded(sourceFile) {
				return true
			}
		}
	}
	return false
}
