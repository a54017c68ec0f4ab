package printer

import (
	"math"
	"strings"

	"github.com/webcarrot/tsemit/internal/ast"
	"github.com/webcarrot/tsemit/internal/helpers"
	"github.com/webcarrot/tsemit/internal/scanner"
)

// sourceTextOf returns the original text of a parsed node, or false when the
// node has no text in the current source file.
func (p *Printer) sourceTextOf(node ast.Node) (string, bool) {
	if p.currentSourceFile == nil || ast.IsSynthesized(node) {
		return "", false
	}
	r := rangeOf(node)
	text := p.currentSourceFile.Text
	if r.End > len(text) || r.Pos > r.End {
		return "", false
	}
	start := scanner.SkipTrivia(text, r.Pos)
	if start > r.End {
		return "", false
	}
	return text[start:r.End], true
}

// getLiteralText returns the text of a literal as it should appear in the
// output. Parsed literals keep their original spelling. Synthesized string
// and template literals are quoted and escaped.
func (p *Printer) getLiteralText(node ast.Node, neverASCIIEscape bool) string {
	canUseOriginalText := true
	switch n := node.(type) {
	case *ast.NumericLiteral:
		canUseOriginalText = n.NumericFlags&ast.NumericLiteralContainsSeparator == 0
	case *ast.BigIntLiteral:
		canUseOriginalText = false
	}
	if canUseOriginalText {
		if text, ok := p.sourceTextOf(node); ok && text != "" {
			return text
		}
	}

	asciiOnly := !neverASCIIEscape && !p.options.NeverASCIIEscape && ast.GetEmitFlags(node)&ast.EmitFlagsNoAsciiEscaping == 0

	switch n := node.(type) {
	case *ast.StringLiteral:
		if n.SingleQuote {
			return "'" + helpers.EscapeString(n.Text, '\'', asciiOnly) + "'"
		}
		return "\"" + helpers.EscapeString(n.Text, '"', asciiOnly) + "\""

	case *ast.TemplatePart:
		// Template literals never escape non-ASCII text
		text := n.RawText
		if text == "" && n.Text != "" {
			text = escapeTemplateSubstitution(helpers.EscapeString(n.Text, '`', false))
		}
		switch n.Part {
		case ast.TemplateNoSubstitution:
			return "`" + text + "`"
		case ast.TemplateHead:
			return "`" + text + "${"
		case ast.TemplateMiddle:
			return "}" + text + "${"
		case ast.TemplateTail:
			return "}" + text + "`"
		}

	case *ast.NumericLiteral:
		return n.Text

	case *ast.BigIntLiteral:
		return n.Text

	case *ast.RegularExpressionLiteral:
		return n.Text
	}

	panic(InternalError{Hint: HintUnspecified, Node: node, Reason: "literal kind has no text"})
}

func escapeTemplateSubstitution(text string) string {
	return strings.ReplaceAll(text, "${", "\\${")
}

func (p *Printer) emitLiteral(node ast.Node) {
	text := p.getLiteralText(node, p.options.NeverASCIIEscape)
	_, isString := node.(*ast.StringLiteral)
	_, isTemplate := node.(*ast.TemplatePart)
	if p.options.SourceMap && (isString || isTemplate) {
		p.writeLiteral(text)
	} else {
		p.writeStringLiteral(text)
	}
}

// needsDotDotForPropertyAccess decides whether "1..toString()" needs its
// second dot. Only plain decimal integers qualify: a literal with a base
// prefix, an exponent or separators already stops the number before the
// dot. An inlined integer constant only gets the extra dot when comments
// are removed, since otherwise the original access is kept in a comment
// after the number.
func (p *Printer) needsDotDotForPropertyAccess(expression ast.Node, dotHasCommentTrivia bool) bool {
	expression = ast.SkipPartiallyEmitted(expression)
	switch e := expression.(type) {
	case *ast.NumericLiteral:
		text := p.getLiteralText(e, true)
		return e.NumericFlags == ast.NumericLiteralNone &&
			!strings.Contains(text, ".") &&
			(!dotHasCommentTrivia || p.options.RemoveComments)

	case *ast.PropertyAccessExpression, *ast.ElementAccessExpression:
		value, ok := ast.GetConstantValue(e)
		return ok && !math.IsInf(value, 0) && !math.IsNaN(value) &&
			math.Floor(value) == value && p.options.RemoveComments
	}
	return false
}
