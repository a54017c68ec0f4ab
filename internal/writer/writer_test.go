package writer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndentIsDeferredToNextLine(t *testing.T) {
	w := NewTextWriter(Options{})
	w.WriteKeyword("if")
	w.IncreaseIndent()
	w.WritePunctuation(" {")
	w.WriteLine()
	w.Write("x;")
	w.DecreaseIndent()
	w.WriteLine()
	w.WritePunctuation("}")
	assert.Equal(t, "if {\n    x;\n}", w.Text())
}

func TestWriteLineIsIdempotentAtLineStart(t *testing.T) {
	w := NewTextWriter(Options{})
	w.WriteLine()
	w.Write("a")
	w.WriteLine()
	w.WriteLine()
	w.Write("b")
	assert.Equal(t, "a\nb", w.Text())
	assert.Equal(t, 1, w.Line())
}

func TestLineAndColumnTracking(t *testing.T) {
	w := NewTextWriter(Options{IndentSize: 2})
	require.Equal(t, 0, w.Line())
	require.Equal(t, 0, w.Column())

	w.Write("abc")
	assert.Equal(t, 3, w.Column())

	w.RawWrite("/* x\n y */")
	assert.Equal(t, 1, w.Line())
	assert.Equal(t, 5, w.Column())
	assert.False(t, w.IsAtStartOfLine())

	w.IncreaseIndent()
	w.WriteLine()
	assert.True(t, w.IsAtStartOfLine())
	// The pending indentation already counts towards the column
	assert.Equal(t, 2, w.Column())
}

func TestColumnsAreUTF16(t *testing.T) {
	w := NewTextWriter(Options{})
	w.WriteStringLiteral(`"é😀"`)
	assert.Equal(t, 5, w.Column())
}

func TestDecreaseIndentBelowZeroIsNoOp(t *testing.T) {
	w := NewTextWriter(Options{})
	w.DecreaseIndent()
	w.DecreaseIndent()
	assert.Equal(t, 0, w.Indent())
	w.Write("x")
	assert.Equal(t, "x", w.Text())
}

func TestCRLF(t *testing.T) {
	w := NewTextWriter(Options{NewLine: "\r\n"})
	w.Write("a")
	w.WriteLine()
	w.Write("b")
	assert.Equal(t, "a\r\nb", w.Text())
	assert.Equal(t, 1, w.Line())
	assert.Equal(t, 1, w.Column())
}

func TestClear(t *testing.T) {
	w := NewTextWriter(Options{})
	w.IncreaseIndent()
	w.Write("a")
	w.WriteLine()
	w.Clear()
	assert.Equal(t, "", w.Text())
	assert.Equal(t, 0, w.Indent())
	assert.Equal(t, 0, w.Line())
	assert.True(t, w.IsAtStartOfLine())
}

func TestTokenClassification(t *testing.T) {
	type token struct {
		class TokenClass
		text  string
	}
	var tokens []token
	w := NewTextWriter(Options{OnToken: func(class TokenClass, text string) {
		tokens = append(tokens, token{class, text})
	}})
	w.WriteKeyword("var")
	w.WriteSpace(" ")
	w.WriteSymbol("x")
	w.WriteOperator("=")
	w.WriteLiteral("1")
	w.WriteComment("/*c*/")
	assert.Equal(t, []token{
		{ClassKeyword, "var"},
		{ClassSpace, " "},
		{ClassSymbol, "x"},
		{ClassOperator, "="},
		{ClassLiteral, "1"},
		{ClassComment, "/*c*/"},
	}, tokens)
}

func TestTrailingSemicolonOmission(t *testing.T) {
	w := NewTrailingSemicolonOmittingWriter(NewTextWriter(Options{}))
	w.Write("a")
	w.WriteTrailingSemicolon(";")
	w.WriteLine()
	w.Write("b")
	w.WriteTrailingSemicolon(";")
	w.WriteSpace(" ")
	w.Write("c")
	w.WriteTrailingSemicolon(";")
	assert.Equal(t, "a\nb; c", w.Text())
}

func TestColumnAfterManyWrites(t *testing.T) {
	w := NewTextWriter(Options{IndentSize: 2})
	w.IncreaseIndent()
	w.WriteLine()
	for i := 0; i < 100; i++ {
		w.Write("ab")
	}
	assert.Equal(t, 202, w.Column())

	w.RawWrite("x\r\ny😀")
	assert.Equal(t, 1, w.Line())
	assert.Equal(t, 3, w.Column())

	w.RawWrite("z\n")
	assert.True(t, w.IsAtStartOfLine())
	assert.Equal(t, 2, w.Column())
	w.Write("q")
	assert.Equal(t, "q", w.Text()[len(w.Text())-1:])
	assert.Equal(t, 3, w.Column())

	w.DecreaseIndent()
	w.WriteLine()
	w.WriteSpace(" ")
	assert.Equal(t, 1, w.Column())
}

func TestSuppressIndent(t *testing.T) {
	w := NewTextWriter(Options{})
	w.IncreaseIndent()
	w.Write("a")
	w.WriteLine()
	w.SuppressIndent()
	assert.False(t, w.IsAtStartOfLine())
	assert.Equal(t, 0, w.Column())
	w.Write("b")
	w.WriteLine()
	w.Write("c")
	assert.Equal(t, "    a\nb\n    c", w.Text())
}

func TestSuppressIndentCommitsSemicolon(t *testing.T) {
	w := NewTrailingSemicolonOmittingWriter(NewTextWriter(Options{}))
	w.Write("a")
	w.WriteTrailingSemicolon(";")
	w.SuppressIndent()
	w.Write("b")
	assert.Equal(t, "a;b", w.Text())
}
