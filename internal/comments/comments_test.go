package comments

import (
	"testing"

	"github.com/webcarrot/tsemit/internal/ast"
	"github.com/webcarrot/tsemit/internal/test"
	"github.com/webcarrot/tsemit/internal/writer"
)

func node(pos int, end int) ast.Node {
	return &ast.ExpressionStatement{NodeBase: ast.NodeBase{TextRange: ast.TextRange{Pos: pos, End: end}}}
}

func newEmitter(options Options, text string) (*Emitter, *writer.TextWriter) {
	w := writer.NewTextWriter(writer.Options{})
	e := NewEmitter(options)
	e.SetWriter(w)
	e.SetSourceFile(&ast.SourceFile{FileName: "in.ts", Text: text})
	return e, w
}

func TestWriteCommentRange(t *testing.T) {
	text := "    /**\n     * a\n     */"
	w := writer.NewTextWriter(writer.Options{})
	WriteCommentRange(w, text, ast.ComputeLineStarts(text), 4, len(text))
	test.AssertEqualWithDiff(t, w.Text(), "/**\n * a\n */")
}

func TestTrailingComment(t *testing.T) {
	e, w := newEmitter(Options{}, "a; // trailing\n")
	e.EmitNodeWithComments(node(0, 2), func() { w.Write("a;") })
	test.AssertEqualWithDiff(t, w.Text(), "a; // trailing\n")
}

func TestContainerOwnsSharedBoundary(t *testing.T) {
	e, w := newEmitter(Options{}, "/* c */ a;")
	e.EmitNodeWithComments(node(0, 10), func() {
		e.EmitNodeWithComments(node(0, 9), func() { w.Write("a") })
		w.Write(";")
	})
	test.AssertEqualWithDiff(t, w.Text(), "/* c */ a;")
}

func TestDetachedComments(t *testing.T) {
	e, w := newEmitter(Options{}, "/* header */\n\na;\n")
	e.EmitBodyWithDetachedComments(&ast.Block{}, ast.TextRange{Pos: 0, End: 16}, func() {
		e.EmitNodeWithComments(node(0, 16), func() { w.Write("a;") })
	})
	test.AssertEqualWithDiff(t, w.Text(), "/* header */\na;")
}

func TestRemoveComments(t *testing.T) {
	e, w := newEmitter(Options{RemoveComments: true}, "/* c */ a;")
	e.EmitNodeWithComments(node(0, 10), func() { w.Write("a;") })
	test.AssertEqualWithDiff(t, w.Text(), "a;")
}

func TestSynthesizedComments(t *testing.T) {
	e, w := newEmitter(Options{}, "")
	n := ast.NewExpressionStatement(ast.NewIdentifier("a"))
	ast.AddSyntheticLeadingComment(n, ast.SingleLineComment, " lead", true)
	e.EmitNodeWithComments(n, func() { w.Write("a;") })
	test.AssertEqualWithDiff(t, w.Text(), "// lead\na;")
}
