package writer

import (
	"strings"
	"unicode/utf16"

	"github.com/webcarrot/tsemit/internal/ast"
)

// TokenClass tells a styling hook what kind of text is being written.
type TokenClass uint8

const (
	ClassText TokenClass = iota
	ClassKeyword
	ClassOperator
	ClassPunctuation
	ClassSpace
	ClassStringLiteral
	ClassLiteral
	ClassParameter
	ClassProperty
	ClassSymbol
	ClassComment
	ClassLineBreak
)

// Writer accumulates printed text. Lines and columns are 0-based and columns
// are counted in UTF-16 code units, which is what source maps use.
type Writer interface {
	Write(text string)
	WriteKeyword(text string)
	WriteOperator(text string)
	WritePunctuation(text string)
	WriteSpace(text string)
	WriteStringLiteral(text string)
	WriteLiteral(text string)
	WriteParameter(text string)
	WriteProperty(text string)
	WriteSymbol(text string)
	WriteComment(text string)
	WriteTrailingSemicolon(text string)

	// RawWrite appends text without applying pending indentation
	RawWrite(text string)

	// WriteLine ends the current line unless the writer is already at the
	// start of one
	WriteLine()

	IncreaseIndent()
	DecreaseIndent()

	// SuppressIndent clears the pending indentation of the current line
	SuppressIndent()

	Indent() int
	IndentSize() int
	NewLine() string

	IsAtStartOfLine() bool
	Line() int
	Column() int
	TextPos() int
	Text() string
	Clear()
}

type Options struct {
	// Defaults to "\n"
	NewLine string

	// Number of spaces per indentation level. Defaults to 4.
	IndentSize int

	// Called with every piece of text that is written, for syntax coloring
	OnToken func(class TokenClass, text string)
}

// TextWriter is the default Writer. Indentation is deferred: it is written in
// front of the first text on a line, so an indent change takes effect on the
// next line that receives text.
type TextWriter struct {
	options   Options
	output    strings.Builder
	indent    int
	lineStart bool
	lineCount int
	linePos   int

	// UTF-16 length of the text after linePos
	column int
}

func NewTextWriter(options Options) *TextWriter {
	if options.NewLine == "" {
		options.NewLine = "\n"
	}
	if options.IndentSize <= 0 {
		options.IndentSize = 4
	}
	return &TextWriter{options: options, lineStart: true}
}

func (w *TextWriter) Clear() {
	w.output.Reset()
	w.indent = 0
	w.lineStart = true
	w.lineCount = 0
	w.linePos = 0
	w.column = 0
}

func (w *TextWriter) indentString(level int) string {
	return strings.Repeat(" ", level*w.options.IndentSize)
}

// Keeps the line bookkeeping in sync with text that was just appended
func (w *TextWriter) updateLineCountAndPosFor(s string) {
	lineStarts := ast.ComputeLineStarts(s)
	if len(lineStarts) > 1 {
		last := lineStarts[len(lineStarts)-1]
		w.lineCount += len(lineStarts) - 1
		w.linePos = w.output.Len() - len(s) + last
		w.lineStart = w.linePos == w.output.Len()
		w.column = UTF16Len(s[last:])
	} else {
		w.lineStart = false
		w.column += UTF16Len(s)
	}
}

func (w *TextWriter) write(class TokenClass, s string) {
	if s == "" {
		return
	}
	if w.lineStart {
		if prefix := w.indentString(w.indent); prefix != "" {
			w.output.WriteString(prefix)
			w.emit(ClassSpace, prefix)
			w.column += len(prefix)
		}
		w.lineStart = false
	}
	w.output.WriteString(s)
	w.emit(class, s)
	w.updateLineCountAndPosFor(s)
}

func (w *TextWriter) emit(class TokenClass, s string) {
	if w.options.OnToken != nil {
		w.options.OnToken(class, s)
	}
}

func (w *TextWriter) Write(s string)                  { w.write(ClassText, s) }
func (w *TextWriter) WriteKeyword(s string)           { w.write(ClassKeyword, s) }
func (w *TextWriter) WriteOperator(s string)          { w.write(ClassOperator, s) }
func (w *TextWriter) WritePunctuation(s string)       { w.write(ClassPunctuation, s) }
func (w *TextWriter) WriteSpace(s string)             { w.write(ClassSpace, s) }
func (w *TextWriter) WriteStringLiteral(s string)     { w.write(ClassStringLiteral, s) }
func (w *TextWriter) WriteLiteral(s string)           { w.write(ClassLiteral, s) }
func (w *TextWriter) WriteParameter(s string)         { w.write(ClassParameter, s) }
func (w *TextWriter) WriteProperty(s string)          { w.write(ClassProperty, s) }
func (w *TextWriter) WriteSymbol(s string)            { w.write(ClassSymbol, s) }
func (w *TextWriter) WriteComment(s string)           { w.write(ClassComment, s) }
func (w *TextWriter) WriteTrailingSemicolon(s string) { w.write(ClassPunctuation, s) }

func (w *TextWriter) RawWrite(s string) {
	w.output.WriteString(s)
	w.emit(ClassText, s)
	w.updateLineCountAndPosFor(s)
}

func (w *TextWriter) WriteLine() {
	if !w.lineStart {
		w.output.WriteString(w.options.NewLine)
		w.emit(ClassLineBreak, w.options.NewLine)
		w.lineCount++
		w.linePos = w.output.Len()
		w.lineStart = true
		w.column = 0
	}
}

func (w *TextWriter) IncreaseIndent() {
	w.indent++
}

// DecreaseIndent never takes the level below zero
func (w *TextWriter) DecreaseIndent() {
	if w.indent > 0 {
		w.indent--
	}
}

// SuppressIndent makes the next text on the current line go out without
// the pending indentation
func (w *TextWriter) SuppressIndent() {
	w.lineStart = false
}

func (w *TextWriter) Indent() int           { return w.indent }
func (w *TextWriter) IndentSize() int       { return w.options.IndentSize }
func (w *TextWriter) NewLine() string       { return w.options.NewLine }
func (w *TextWriter) IsAtStartOfLine() bool { return w.lineStart }
func (w *TextWriter) Line() int             { return w.lineCount }
func (w *TextWriter) TextPos() int          { return w.output.Len() }
func (w *TextWriter) Text() string          { return w.output.String() }

func (w *TextWriter) Column() int {
	if w.lineStart {
		return w.indent * w.options.IndentSize
	}
	return w.column
}

// UTF16Len counts the UTF-16 code units needed to encode the text.
func UTF16Len(text string) int {
	n := 0
	for _, c := range text {
		n += utf16.RuneLen(c)
	}
	return n
}
