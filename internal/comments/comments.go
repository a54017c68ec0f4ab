package comments

// The comment emitter writes the comments found in the original source text
// around the nodes being printed. Each comment is owned by exactly one node:
// a node whose range starts (or ends) at the same position as the range of
// the enclosing node leaves the comments at that boundary to its container.

import (
	"strings"

	"github.com/webcarrot/tsemit/internal/ast"
	"github.com/webcarrot/tsemit/internal/scanner"
	"github.com/webcarrot/tsemit/internal/writer"
)

type Options struct {
	// Drop every comment except pinned "/*!" comments at the top of a file
	RemoveComments bool

	// Keep only "/**" and "/*!" comments
	OnlyPrintJSDocStyle bool
}

type detachedCommentInfo struct {
	nodePos               int
	detachedCommentEndPos int
}

type Emitter struct {
	options Options
	writer  writer.Writer

	// Called with source positions around each comment so the source map
	// can record them. May be nil.
	EmitPos func(pos int)

	text       string
	lineStarts []int
	hasSource  bool

	disabled                    bool
	containerPos                int
	containerEnd                int
	declarationListContainerEnd int
	hasWrittenComment           bool
	detachedCommentsInfo        []detachedCommentInfo
}

func NewEmitter(options Options) *Emitter {
	e := &Emitter{options: options}
	e.Reset()
	return e
}

// Reset prepares the emitter for a new print pass.
func (e *Emitter) Reset() {
	e.writer = nil
	e.text = ""
	e.lineStarts = nil
	e.hasSource = false
	e.disabled = e.options.RemoveComments
	e.containerPos = -1
	e.containerEnd = -1
	e.declarationListContainerEnd = -1
	e.hasWrittenComment = false
	e.detachedCommentsInfo = nil
}

func (e *Emitter) SetWriter(w writer.Writer) {
	e.writer = w
}

// SetSourceFile selects the text that comment ranges are looked up in. A nil
// file turns off comments from source text but keeps synthetic ones.
func (e *Emitter) SetSourceFile(file *ast.SourceFile) {
	e.detachedCommentsInfo = nil
	if file == nil {
		e.text, e.lineStarts, e.hasSource = "", nil, false
		return
	}
	e.text, e.lineStarts, e.hasSource = file.Text, file.LineStarts(), true
}

func (e *Emitter) Disabled() bool {
	return e.disabled
}

func (e *Emitter) HasWrittenComment() bool {
	return e.hasWrittenComment
}

func (e *Emitter) emitPos(pos int) {
	if e.EmitPos != nil {
		e.EmitPos(pos)
	}
}

// EmitNodeWithComments writes the comments of "node" around a call to
// "emit", which prints the node itself.
func (e *Emitter) EmitNodeWithComments(node ast.Node, emit func()) {
	if e.disabled {
		emit()
		return
	}

	e.hasWrittenComment = false
	flags := ast.GetEmitFlags(node)
	r := ast.GetCommentRange(node)
	pos, end := r.Pos, r.End

	if (pos < 0 && end < 0) || pos == end {
		// Nothing in the original text belongs to this node
		e.emitNodeWithSynthesizedComments(node, flags, emit)
		return
	}

	_, isNotEmitted := node.(*ast.NotEmittedStatement)
	_, isJsxText := node.(*ast.JsxText)
	isEmittedNode := !isNotEmitted
	skipLeading := pos < 0 || flags&ast.EmitFlagsNoLeadingComments != 0 || isJsxText
	skipTrailing := end < 0 || flags&ast.EmitFlagsNoTrailingComments != 0 || isJsxText

	if !skipLeading {
		e.emitLeadingComments(pos, isEmittedNode)
	}

	// Nested nodes at the same boundary must not emit these comments again
	savedContainerPos := e.containerPos
	savedContainerEnd := e.containerEnd
	savedDeclarationListContainerEnd := e.declarationListContainerEnd

	if !skipLeading || (pos >= 0 && flags&ast.EmitFlagsNoLeadingComments != 0) {
		e.containerPos = pos
	}
	if !skipTrailing || (end >= 0 && flags&ast.EmitFlagsNoTrailingComments != 0) {
		e.containerEnd = end
		if _, ok := node.(*ast.VariableDeclarationList); ok {
			e.declarationListContainerEnd = end
		}
	}

	e.emitNodeWithSynthesizedComments(node, flags, emit)

	e.containerPos = savedContainerPos
	e.containerEnd = savedContainerEnd
	e.declarationListContainerEnd = savedDeclarationListContainerEnd

	if !skipTrailing && isEmittedNode {
		e.emitTrailingComments(end)
	}
}

func (e *Emitter) emitNodeWithSynthesizedComments(node ast.Node, flags ast.EmitFlags, emit func()) {
	for _, comment := range ast.GetSyntheticLeadingComments(node) {
		e.emitLeadingSynthesizedComment(comment)
	}

	if flags&ast.EmitFlagsNoNestedComments != 0 {
		e.disabled = true
		emit()
		e.disabled = false
	} else {
		emit()
	}

	for _, comment := range ast.GetSyntheticTrailingComments(node) {
		e.emitTrailingSynthesizedComment(comment)
	}
}

func (e *Emitter) emitLeadingSynthesizedComment(comment ast.SynthesizedComment) {
	if comment.Kind == ast.SingleLineComment {
		e.writer.WriteLine()
	}
	e.writeSynthesizedComment(comment)
	if comment.HasTrailingNewLine || comment.Kind == ast.SingleLineComment {
		e.writer.WriteLine()
	} else {
		e.writer.WriteSpace(" ")
	}
}

func (e *Emitter) emitTrailingSynthesizedComment(comment ast.SynthesizedComment) {
	if !e.writer.IsAtStartOfLine() {
		e.writer.WriteSpace(" ")
	}
	e.writeSynthesizedComment(comment)
	if comment.HasTrailingNewLine {
		e.writer.WriteLine()
	}
}

func formatSynthesizedComment(comment ast.SynthesizedComment) string {
	if comment.Kind == ast.MultiLineComment {
		return "/*" + comment.Text + "*/"
	}
	return "//" + comment.Text
}

func (e *Emitter) writeSynthesizedComment(comment ast.SynthesizedComment) {
	text := formatSynthesizedComment(comment)
	var lineStarts []int
	if comment.Kind == ast.MultiLineComment {
		lineStarts = ast.ComputeLineStarts(text)
	}
	WriteCommentRange(e.writer, text, lineStarts, 0, len(text))
}

func (e *Emitter) emitLeadingComments(pos int, isEmittedNode bool) {
	e.hasWrittenComment = false

	if isEmittedNode {
		e.forEachLeadingCommentToEmit(pos, e.emitLeadingComment)
	} else if pos == 0 {
		// A statement that is not emitted still hands its triple-slash
		// directives at the top of the file to the output
		e.forEachLeadingCommentToEmit(pos, func(c scanner.CommentRange, rangePos int) {
			if scanner.IsRecognizedTripleSlashComment(e.text, c.Pos, c.End) {
				e.emitLeadingComment(c, rangePos)
			}
		})
	}
}

func (e *Emitter) shouldWriteComment(pos int) bool {
	if e.options.OnlyPrintJSDocStyle {
		return scanner.IsJSDocLikeText(e.text, pos) || scanner.IsPinnedComment(e.text, pos)
	}
	return true
}

func (e *Emitter) emitLeadingComment(c scanner.CommentRange, rangePos int) {
	if !e.shouldWriteComment(c.Pos) {
		return
	}
	if !e.hasWrittenComment {
		e.emitNewLineBeforeLeadingCommentOfPosition(rangePos, c.Pos)
		e.hasWrittenComment = true
	}

	e.writeComment(c)

	if c.HasTrailingNewLine {
		e.writer.WriteLine()
	} else if c.Kind == ast.MultiLineComment {
		e.writer.WriteSpace(" ")
	}
}

func (e *Emitter) emitNewLineBeforeLeadingCommentOfPosition(pos int, commentPos int) {
	// Comments that start on a different line than the range they lead keep
	// that line break
	if pos != commentPos && ast.LineOf(e.lineStarts, pos) != ast.LineOf(e.lineStarts, commentPos) {
		e.writer.WriteLine()
	}
}

func (e *Emitter) writeComment(c scanner.CommentRange) {
	e.emitPos(c.Pos)
	WriteCommentRange(e.writer, e.text, e.lineStarts, c.Pos, c.End)
	e.emitPos(c.End)
}

// EmitLeadingCommentsOfPosition writes the comments before a token that is
// not a node of its own.
func (e *Emitter) EmitLeadingCommentsOfPosition(pos int) {
	if e.disabled || pos == -1 {
		return
	}
	e.emitLeadingComments(pos, true)
}

func (e *Emitter) emitTrailingComments(pos int) {
	e.forEachTrailingCommentToEmit(pos, e.emitTrailingComment)
}

func (e *Emitter) emitTrailingComment(c scanner.CommentRange) {
	if !e.shouldWriteComment(c.Pos) {
		return
	}
	if !e.writer.IsAtStartOfLine() {
		e.writer.WriteSpace(" ")
	}
	e.writeComment(c)
	if c.HasTrailingNewLine {
		e.writer.WriteLine()
	}
}

// EmitTrailingCommentsOfPosition writes the comments after a token that is
// not a node of its own. Without "prefixSpace" the comments are followed by
// a separator instead of preceded by one.
func (e *Emitter) EmitTrailingCommentsOfPosition(pos int, prefixSpace bool) {
	if e.disabled {
		return
	}
	if prefixSpace {
		e.forEachTrailingCommentToEmit(pos, e.emitTrailingComment)
	} else {
		e.forEachTrailingCommentToEmit(pos, e.emitTrailingCommentOfPosition)
	}
}

func (e *Emitter) emitTrailingCommentOfPosition(c scanner.CommentRange) {
	e.writeComment(c)
	if c.HasTrailingNewLine {
		e.writer.WriteLine()
	} else {
		e.writer.WriteSpace(" ")
	}
}

func (e *Emitter) forEachLeadingCommentToEmit(pos int, cb func(c scanner.CommentRange, rangePos int)) {
	if !e.hasSource || (e.containerPos != -1 && pos == e.containerPos) {
		return
	}
	if e.hasDetachedComments(pos) {
		// Skip past the comments that were already written as detached
		info := e.detachedCommentsInfo[len(e.detachedCommentsInfo)-1]
		e.detachedCommentsInfo = e.detachedCommentsInfo[:len(e.detachedCommentsInfo)-1]
		pos = info.detachedCommentEndPos
	}
	scanner.ForEachLeadingCommentRange(e.text, pos, func(c scanner.CommentRange) bool {
		cb(c, pos)
		return true
	})
}

func (e *Emitter) forEachTrailingCommentToEmit(end int, cb func(c scanner.CommentRange)) {
	if !e.hasSource {
		return
	}
	if e.containerEnd == -1 || (end != e.containerEnd && end != e.declarationListContainerEnd) {
		scanner.ForEachTrailingCommentRange(e.text, end, func(c scanner.CommentRange) bool {
			cb(c)
			return true
		})
	}
}

func (e *Emitter) hasDetachedComments(pos int) bool {
	n := len(e.detachedCommentsInfo)
	return n > 0 && e.detachedCommentsInfo[n-1].nodePos == pos
}

// EmitBodyWithDetachedComments prints a function body or source file. The
// comments at the start of the range that are separated from the first
// statement by a blank line are written first and then skipped by the
// first statement's own leading comments.
func (e *Emitter) EmitBodyWithDetachedComments(node ast.Node, detachedRange ast.TextRange, emit func()) {
	flags := ast.GetEmitFlags(node)
	skipLeading := detachedRange.Pos < 0 || flags&ast.EmitFlagsNoLeadingComments != 0
	skipTrailing := e.disabled || detachedRange.End < 0 || flags&ast.EmitFlagsNoTrailingComments != 0

	if !skipLeading {
		e.emitDetachedCommentsAndUpdateCommentsInfo(detachedRange)
	}

	if flags&ast.EmitFlagsNoNestedComments != 0 && !e.disabled {
		e.disabled = true
		emit()
		e.disabled = false
	} else {
		emit()
	}

	if !skipTrailing {
		e.emitLeadingComments(detachedRange.End, true)
		if e.hasWrittenComment && !e.writer.IsAtStartOfLine() {
			e.writer.WriteLine()
		}
	}
}

func (e *Emitter) emitDetachedCommentsAndUpdateCommentsInfo(r ast.TextRange) {
	if !e.hasSource {
		return
	}

	var comments []scanner.CommentRange
	if e.disabled {
		// Only a pinned header at the very top survives comment removal
		if r.Pos == 0 {
			for _, c := range scanner.LeadingCommentRanges(e.text, r.Pos) {
				if scanner.IsPinnedComment(e.text, c.Pos) {
					comments = append(comments, c)
				}
			}
		}
	} else {
		comments = scanner.LeadingCommentRanges(e.text, r.Pos)
	}
	if len(comments) == 0 {
		return
	}

	// The detached block ends at the first blank line between comments
	var detached []scanner.CommentRange
	for i, c := range comments {
		if i > 0 {
			lastCommentLine := ast.LineOf(e.lineStarts, comments[i-1].End)
			if ast.LineOf(e.lineStarts, c.Pos) >= lastCommentLine+2 {
				break
			}
		}
		detached = append(detached, c)
	}

	// The block counts as detached only when a blank line separates it from
	// the node
	last := detached[len(detached)-1]
	lastCommentLine := ast.LineOf(e.lineStarts, last.End)
	nodeLine := ast.LineOf(e.lineStarts, scanner.SkipTrivia(e.text, r.Pos))
	if nodeLine < lastCommentLine+2 {
		return
	}

	if r.Pos != comments[0].Pos && ast.LineOf(e.lineStarts, r.Pos) != ast.LineOf(e.lineStarts, comments[0].Pos) {
		e.writer.WriteLine()
	}
	interveningSeparator := false
	for _, c := range detached {
		if interveningSeparator {
			e.writer.WriteSpace(" ")
			interveningSeparator = false
		}
		if e.shouldWriteComment(c.Pos) {
			e.writeComment(c)
		}
		if c.HasTrailingNewLine {
			e.writer.WriteLine()
		} else {
			interveningSeparator = true
		}
	}
	if interveningSeparator {
		e.writer.WriteSpace(" ")
	}

	e.detachedCommentsInfo = append(e.detachedCommentsInfo, detachedCommentInfo{
		nodePos:               r.Pos,
		detachedCommentEndPos: last.End,
	})
}

// WriteCommentRange copies one comment from "text" into the writer. The
// continuation lines of a multi-line comment are re-indented so that they
// keep their position relative to the first line at the writer's current
// indentation.
func WriteCommentRange(w writer.Writer, text string, lineStarts []int, commentPos int, commentEnd int) {
	if commentPos+1 >= len(text) || text[commentPos+1] != '*' {
		w.WriteComment(text[commentPos:commentEnd])
		return
	}

	indentSize := w.IndentSize()
	firstLine := ast.LineOf(lineStarts, commentPos)
	firstLineIndent := -1
	for pos, line := commentPos, firstLine; pos < commentEnd; line++ {
		nextLineStart := len(text) + 1
		if line+1 < len(lineStarts) {
			nextLineStart = lineStarts[line+1]
		}

		if pos != commentPos {
			if firstLineIndent == -1 {
				firstLineIndent = calculateIndent(text, lineStarts[firstLine], commentPos, indentSize)
			}
			spaces := w.Indent()*indentSize - firstLineIndent + calculateIndent(text, pos, nextLineStart, indentSize)
			if spaces > 0 {
				w.RawWrite(strings.Repeat(" ", spaces))
			} else {
				w.SuppressIndent()
			}
		}

		writeTrimmedCurrentLine(w, text, commentEnd, pos, nextLineStart)
		pos = nextLineStart
	}
}

func writeTrimmedCurrentLine(w writer.Writer, text string, commentEnd int, pos int, nextLineStart int) {
	end := commentEnd
	if nextLineStart-1 < end {
		end = nextLineStart - 1
	}
	line := strings.TrimSpace(text[pos:end])
	if line != "" {
		w.WriteComment(line)
		if end != commentEnd {
			w.WriteLine()
		}
	} else {
		w.RawWrite(w.NewLine())
	}
}

func calculateIndent(text string, pos int, end int, indentSize int) int {
	indent := 0
	for ; pos < end && pos < len(text); pos++ {
		c := text[pos]
		if c == '\t' {
			indent += indentSize - indent%indentSize
		} else if c == ' ' || c == '\v' || c == '\f' {
			indent++
		} else {
			break
		}
	}
	return indent
}
