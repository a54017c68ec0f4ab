package printer

import (
	"sort"
	"strings"

	"github.com/webcarrot/tsemit/internal/ast"
	"github.com/webcarrot/tsemit/internal/config"
	"github.com/webcarrot/tsemit/internal/scanner"
)

////////////////////////////////////////////////////////////////////////////////
// Writers

func (p *Printer) writeLiteral(s string)       { p.writer.WriteLiteral(s) }
func (p *Printer) writeStringLiteral(s string) { p.writer.WriteStringLiteral(s) }
func (p *Printer) writeBase(s string)          { p.writer.Write(s) }
func (p *Printer) writePunctuation(s string)   { p.writer.WritePunctuation(s) }
func (p *Printer) writeKeyword(s string)       { p.writer.WriteKeyword(s) }
func (p *Printer) writeOperator(s string)      { p.writer.WriteOperator(s) }
func (p *Printer) writeParameter(s string)     { p.writer.WriteParameter(s) }
func (p *Printer) writeProperty(s string)      { p.writer.WriteProperty(s) }
func (p *Printer) writeComment(s string)       { p.writer.WriteComment(s) }
func (p *Printer) writeSpace()                 { p.writer.WriteSpace(" ") }
func (p *Printer) writeLine()                  { p.writer.WriteLine() }
func (p *Printer) writeTrailingSemicolon()     { p.writer.WriteTrailingSemicolon(";") }
func (p *Printer) increaseIndent()             { p.writer.IncreaseIndent() }
func (p *Printer) decreaseIndent()             { p.writer.DecreaseIndent() }

// writeTokenText returns the position after the token, or "pos" itself when
// it is synthesized.
func writeTokenText(token ast.Token, write func(string), pos int) int {
	text := token.String()
	write(text)
	if pos < 0 {
		return pos
	}
	return pos + len(text)
}

func (p *Printer) writeToken(token ast.Token, pos int, write func(string), contextNode ast.Node) int {
	if !p.sourceMapsDisabled {
		return p.emitTokenWithSourceMap(contextNode, token, write, pos)
	}
	return writeTokenText(token, write, pos)
}

func (p *Printer) writeTokenNode(node *ast.TokenNode, write func(string)) {
	if p.handlers.OnBeforeEmitToken != nil {
		p.handlers.OnBeforeEmitToken(node)
	}
	write(node.Token.String())
	if p.handlers.OnAfterEmitToken != nil {
		p.handlers.OnAfterEmitToken(node)
	}
}

func (p *Printer) writeLineOrSpace(node ast.Node) {
	if ast.GetEmitFlags(node)&ast.EmitFlagsSingleLine != 0 {
		p.writeSpace()
	} else {
		p.writeLine()
	}
}

// writeLines writes multi-line text such as helper source, one line at a
// time, with the indentation shared by all lines removed.
func (p *Printer) writeLines(text string) {
	lines := splitLines(text)
	indentation := guessIndentation(lines)
	for _, lineText := range lines {
		line := lineText
		if indentation > 0 {
			if indentation < len(line) {
				line = line[indentation:]
			} else {
				line = ""
			}
		}
		if line != "" {
			p.writeLine()
			p.writeBase(line)
			p.writer.RawWrite(p.writer.NewLine())
		}
	}
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

func guessIndentation(lines []string) int {
	indentation := -1
	for _, line := range lines {
		if line == "" {
			continue
		}
		i := 0
		for i < len(line) && (indentation == -1 || i < indentation) {
			if c := line[i]; c != ' ' && c != '\t' {
				break
			}
			i++
		}
		if indentation == -1 || i < indentation {
			indentation = i
		}
		if indentation == 0 {
			return 0
		}
	}
	if indentation == -1 {
		return 0
	}
	return indentation
}

func (p *Printer) increaseIndentIf(value bool, writeSpaceIfNotIndenting bool) {
	if value {
		p.increaseIndent()
		p.writeLine()
	} else if writeSpaceIfNotIndenting {
		p.writeSpace()
	}
}

// decreaseIndentIf undoes any number of earlier increaseIndentIf calls at
// once.
func (p *Printer) decreaseIndentIf(value1 bool, value2 bool) {
	if value1 {
		p.decreaseIndent()
	}
	if value2 {
		p.decreaseIndent()
	}
}

////////////////////////////////////////////////////////////////////////////////
// Line layout of the original source

func (p *Printer) sourceText() string {
	if p.currentSourceFile == nil {
		return ""
	}
	return p.currentSourceFile.Text
}

// Two positions are considered to be on the same line when there is no
// source text to compare them in.
func (p *Printer) positionsAreOnSameLine(pos1 int, pos2 int) bool {
	if p.currentSourceFile == nil {
		return true
	}
	lineStarts := p.currentSourceFile.LineStarts()
	return ast.LineOf(lineStarts, pos1) == ast.LineOf(lineStarts, pos2)
}

func (p *Printer) startOfRange(r ast.TextRange) int {
	if r.Pos < 0 {
		return -1
	}
	return scanner.SkipTrivia(p.sourceText(), r.Pos)
}

func (p *Printer) rangeIsOnSingleLine(r ast.TextRange) bool {
	return p.positionsAreOnSameLine(p.startOfRange(r), r.End)
}

func (p *Printer) rangeStartPositionsAreOnSameLine(r1 ast.TextRange, r2 ast.TextRange) bool {
	return p.positionsAreOnSameLine(p.startOfRange(r1), p.startOfRange(r2))
}

func (p *Printer) rangeEndPositionsAreOnSameLine(r1 ast.TextRange, r2 ast.TextRange) bool {
	return p.positionsAreOnSameLine(r1.End, r2.End)
}

func (p *Printer) rangeEndIsOnSameLineAsRangeStart(r1 ast.TextRange, r2 ast.TextRange) bool {
	return p.positionsAreOnSameLine(r1.End, p.startOfRange(r2))
}

func rangeOf(node ast.Node) ast.TextRange {
	return node.Base().TextRange
}

func skipSynthesizedParentheses(node ast.Node) ast.Node {
	for {
		paren, ok := node.(*ast.ParenthesizedExpression)
		if !ok || !ast.IsSynthesized(paren) {
			return node
		}
		node = paren.Expression
	}
}

// needsIndentation decides whether "node2" goes on a new, indented line
// after "node1" in expressions such as binary operators and property
// access chains.
func (p *Printer) needsIndentation(parent ast.Node, node1 ast.Node, node2 ast.Node) bool {
	parent = skipSynthesizedParentheses(parent)
	node1 = skipSynthesizedParentheses(node1)
	node2 = skipSynthesizedParentheses(node2)

	// Always use a newline for synthesized code if the synthesizer desires it
	if ast.GetStartsOnNewLine(node2) == ast.True {
		return true
	}

	return !ast.IsSynthesized(parent) &&
		!ast.IsSynthesized(node1) &&
		!ast.IsSynthesized(node2) &&
		!p.rangeEndIsOnSameLineAsRangeStart(rangeOf(node1), rangeOf(node2))
}

func (p *Printer) isEmptyBlock(node ast.Node, statements *ast.NodeList) bool {
	return statements.Len() == 0 && p.rangeEndIsOnSameLineAsRangeStart(rangeOf(node), rangeOf(node))
}

////////////////////////////////////////////////////////////////////////////////
// Lists

func (p *Printer) emitList(parent ast.Node, children *ast.NodeList, format ast.ListFormat) {
	p.emitNodeList(p.emit, parent, children, format, 0, children.Len())
}

func (p *Printer) emitListRange(parent ast.Node, children *ast.NodeList, format ast.ListFormat, start int) {
	count := children.Len() - start
	if count < 0 {
		count = 0
	}
	p.emitNodeList(p.emit, parent, children, format, start, count)
}

func (p *Printer) emitExpressionList(parent ast.Node, children *ast.NodeList, format ast.ListFormat) {
	p.emitNodeList(p.emitExpression, parent, children, format, 0, children.Len())
}

func writeDelimiter(p *Printer, format ast.ListFormat) {
	switch format & ast.DelimitersMask {
	case ast.CommaDelimited:
		p.writePunctuation(",")
	case ast.BarDelimited:
		p.writeSpace()
		p.writePunctuation("|")
	case ast.AsteriskDelimited:
		p.writeSpace()
		p.writePunctuation("*")
		p.writeSpace()
	case ast.AmpersandDelimited:
		p.writeSpace()
		p.writePunctuation("&")
	}
}

// The range of a list's parent. A list printed on its own has no parent
// and behaves like a synthesized one.
func parentRange(parent ast.Node) ast.TextRange {
	if parent == nil {
		return ast.SynthesizedRange
	}
	return rangeOf(parent)
}

// emitNodeList is the single place that decides brackets, delimiters, line
// breaks and indentation for every list of sibling nodes.
func (p *Printer) emitNodeList(emit func(ast.Node), parent ast.Node, children *ast.NodeList, format ast.ListFormat, start int, count int) {
	isUndefined := children == nil
	if isUndefined && format&ast.OptionalIfUndefined != 0 {
		return
	}

	isEmpty := children == nil || start >= len(children.Nodes) || count == 0
	if isEmpty && format&ast.OptionalIfEmpty != 0 {
		if p.handlers.OnBeforeEmitNodeList != nil {
			p.handlers.OnBeforeEmitNodeList(children)
		}
		if p.handlers.OnAfterEmitNodeList != nil {
			p.handlers.OnAfterEmitNodeList(children)
		}
		return
	}

	parentTextRange := parentRange(parent)

	if format&ast.BracketsMask != 0 {
		p.writePunctuation(format.OpeningBracket())
		if isEmpty && !isUndefined {
			// Comments inside an empty bracketed list
			p.comments.EmitTrailingCommentsOfPosition(children.Pos, true)
		}
	}

	if p.handlers.OnBeforeEmitNodeList != nil {
		p.handlers.OnBeforeEmitNodeList(children)
	}

	if isEmpty {
		// Write a line terminator if the parent node was multi-line
		if format&ast.MultiLine != 0 {
			p.writeLine()
		} else if format&ast.SpaceBetweenBraces != 0 && format&ast.NoSpaceIfEmpty == 0 {
			p.writeSpace()
		}
	} else {
		nodes := children.Nodes[start : start+count]

		// Write the opening line terminator or leading whitespace
		mayEmitInterveningComments := format&ast.NoInterveningComments == 0
		shouldEmitInterveningComments := mayEmitInterveningComments
		if p.shouldWriteLeadingLineTerminator(parentTextRange, nodes, format) {
			p.writeLine()
			shouldEmitInterveningComments = false
		} else if format&ast.SpaceBetweenBraces != 0 {
			p.writeSpace()
		}

		if format&ast.Indented != 0 {
			p.increaseIndent()
		}

		var previousSibling ast.Node
		shouldDecreaseIndentAfterEmit := false
		for _, child := range nodes {
			if format&ast.AsteriskDelimited != 0 {
				// JSDoc lines always start with "\n *"
				p.writeLine()
				writeDelimiter(p, format)
			} else if previousSibling != nil {
				// A comment between the previous element and the delimiter
				// belongs to neither of them
				if format&ast.DelimitersMask != 0 && rangeOf(previousSibling).End != parentTextRange.End {
					p.comments.EmitLeadingCommentsOfPosition(rangeOf(previousSibling).End)
				}
				writeDelimiter(p, format)

				if p.shouldWriteSeparatingLineTerminator(previousSibling, child, format) {
					// A synthesized node that starts on a new line in a
					// single-line list gets its own indentation level
					if format&(ast.LinesMask|ast.Indented) == ast.SingleLine {
						p.increaseIndent()
						shouldDecreaseIndentAfterEmit = true
					}
					p.writeLine()
					shouldEmitInterveningComments = false
				} else if format&ast.SpaceBetweenSiblings != 0 {
					p.writeSpace()
				}
			}

			if shouldEmitInterveningComments {
				p.comments.EmitTrailingCommentsOfPosition(ast.GetCommentRange(child).Pos, false)
			} else {
				shouldEmitInterveningComments = mayEmitInterveningComments
			}

			emit(child)

			if shouldDecreaseIndentAfterEmit {
				p.decreaseIndent()
				shouldDecreaseIndentAfterEmit = false
			}
			previousSibling = child
		}

		if format&ast.CommaDelimited != 0 && format&ast.AllowTrailingComma != 0 && children.HasTrailingComma {
			p.writePunctuation(",")
		}

		// A comment after the last element that is not its trailing comment
		if format&ast.DelimitersMask != 0 && rangeOf(previousSibling).End != parentTextRange.End &&
			ast.GetEmitFlags(previousSibling)&ast.EmitFlagsNoTrailingComments == 0 {
			p.comments.EmitLeadingCommentsOfPosition(rangeOf(previousSibling).End)
		}

		if format&ast.Indented != 0 {
			p.decreaseIndent()
		}

		// Write the closing line terminator or closing whitespace
		if p.shouldWriteClosingLineTerminator(parentTextRange, nodes, format) {
			p.writeLine()
		} else if format&ast.SpaceBetweenBraces != 0 {
			p.writeSpace()
		}
	}

	if p.handlers.OnAfterEmitNodeList != nil {
		p.handlers.OnAfterEmitNodeList(children)
	}

	if format&ast.BracketsMask != 0 {
		if isEmpty && !isUndefined {
			// Comments inside an empty bracketed list
			p.comments.EmitLeadingCommentsOfPosition(children.End)
		}
		p.writePunctuation(format.ClosingBracket())
	}
}

func (p *Printer) shouldWriteLeadingLineTerminator(parent ast.TextRange, children []ast.Node, format ast.ListFormat) bool {
	if format&ast.MultiLine != 0 {
		return true
	}
	if format&ast.PreserveLines == 0 {
		return false
	}
	if format&ast.PreferNewLine != 0 {
		return true
	}
	if len(children) == 0 {
		return !p.rangeIsOnSingleLine(parent)
	}
	first := children[0]
	if parent.Pos < 0 || ast.IsSynthesized(first) {
		return synthesizedNodeStartsOnNewLine(first, format)
	}
	return !p.rangeStartPositionsAreOnSameLine(parent, rangeOf(first))
}

func (p *Printer) shouldWriteSeparatingLineTerminator(previous ast.Node, next ast.Node, format ast.ListFormat) bool {
	if format&ast.MultiLine != 0 {
		return true
	}
	if format&ast.PreserveLines != 0 {
		if previous == nil || next == nil {
			return false
		}
		if ast.IsSynthesized(previous) || ast.IsSynthesized(next) {
			return synthesizedNodeStartsOnNewLine(previous, format) || synthesizedNodeStartsOnNewLine(next, format)
		}
		return !p.rangeEndIsOnSameLineAsRangeStart(rangeOf(previous), rangeOf(next))
	}
	return ast.GetStartsOnNewLine(next) == ast.True
}

func (p *Printer) shouldWriteClosingLineTerminator(parent ast.TextRange, children []ast.Node, format ast.ListFormat) bool {
	if format&ast.MultiLine != 0 {
		return format&ast.NoTrailingNewLine == 0
	}
	if format&ast.PreserveLines == 0 {
		return false
	}
	if format&ast.PreferNewLine != 0 {
		return true
	}
	if len(children) == 0 {
		return !p.rangeIsOnSingleLine(parent)
	}
	last := children[len(children)-1]
	if parent.Pos < 0 || ast.IsSynthesized(last) {
		return synthesizedNodeStartsOnNewLine(last, format)
	}
	return !p.rangeEndPositionsAreOnSameLine(parent, rangeOf(last))
}

func synthesizedNodeStartsOnNewLine(node ast.Node, format ast.ListFormat) bool {
	if ast.IsSynthesized(node) {
		switch ast.GetStartsOnNewLine(node) {
		case ast.True:
			return true
		case ast.False:
			return false
		}
	}
	return format&ast.PreferNewLine != 0
}

////////////////////////////////////////////////////////////////////////////////
// Helpers

// emitHelpers writes the runtime helpers attached to a source file or
// bundle. Shared helpers are written once per bundle and scoped helpers are
// never written into a bundle.
func (p *Printer) emitHelpers(node ast.Node) bool {
	helpersEmitted := false
	bundle, isBundle := node.(*ast.Bundle)
	if isBundle && p.options.Module == config.ModuleNone {
		return false
	}

	var targets []ast.Node
	if isBundle {
		for _, sourceFile := range bundle.SourceFiles {
			targets = append(targets, sourceFile)
		}
	} else {
		targets = []ast.Node{node}
	}

	for _, current := range targets {
		_, isSourceFile := current.(*ast.SourceFile)
		shouldBundle := isSourceFile && !p.isOwnFileEmit
		helpers := ast.GetEmitHelpers(current)
		if len(helpers) == 0 {
			continue
		}

		sorted := append([]*ast.EmitHelper{}, helpers...)
		sort.SliceStable(sorted, func(i int, j int) bool {
			return ast.CompareEmitHelpers(sorted[i], sorted[j]) < 0
		})

		for _, helper := range sorted {
			if !helper.Scoped {
				if p.options.NoEmitHelpers {
					continue
				}
				if shouldBundle {
					if p.bundledHelpers[helper.Name] {
						continue
					}
					p.bundledHelpers[helper.Name] = true
				}
			} else if !p.isOwnFileEmit {
				// Scoped helpers are only written when a single file is
				// printed as its own output. Bundles, their members, and
				// loose nodes all leave them out.
				continue
			}

			if helper.TextCallback != nil {
				p.writeLines(helper.TextCallback(p.names.MakeFileLevelOptimisticUniqueName))
			} else {
				p.writeLines(helper.Text)
			}
			helpersEmitted = true
		}
	}

	return helpersEmitted
}
