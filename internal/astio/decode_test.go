package astio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webcarrot/tsemit/internal/ast"
	"github.com/webcarrot/tsemit/internal/errors"
	"github.com/webcarrot/tsemit/internal/printer"
	"github.com/webcarrot/tsemit/internal/test"
)

func expectDecodedAndPrinted(t *testing.T, name string, document string, expected string) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		t.Helper()
		node, err := NewDecoder().Decode([]byte(document))
		require.NoError(t, err)
		p := printer.New(printer.Options{}, printer.Handlers{})
		test.AssertEqualWithDiff(t, p.PrintNode(printer.HintUnspecified, node, nil), expected)
	})
}

func TestDecodeStatements(t *testing.T) {
	expectDecodedAndPrinted(t, "variable statement", `
kind: VariableStatement
declarationList:
  flags: [let]
  declarations:
    - name: a
      initializer: 1
    - b
`, "let a = 1, b;")

	expectDecodedAndPrinted(t, "json", `{"kind": "ExpressionStatement", "expression": "a"}`, "a;")

	expectDecodedAndPrinted(t, "shared temp names", `
kind: FunctionDeclaration
name: f
parameters: []
body:
  multiLine: true
  statements:
    - kind: VariableStatement
      declarationList:
        declarations:
          - name: &first {kind: Identifier, generate: auto}
          - name: {kind: Identifier, generate: auto}
    - kind: ExpressionStatement
      expression:
        kind: BinaryExpression
        left: *first
        operatorToken: "="
        right: 1
`, "function f() {\n    var _a, _b;\n    _a = 1;\n}")

	expectDecodedAndPrinted(t, "synthetic comment", `
kind: ExpressionStatement
expression: a
emit:
  leadingComments:
    - text: "* note "
`, "/** note */ a;")
}

func TestDecodeShorthands(t *testing.T) {
	node, err := NewDecoder().Decode([]byte(`
kind: FunctionDeclaration
modifiers: [export]
name: f
parameters: [a, b]
body: {statements: []}
`))
	require.NoError(t, err)

	fn := node.(*ast.FunctionDeclaration)
	require.Equal(t, 1, fn.Modifiers.Len())
	assert.Equal(t, ast.TExport, fn.Modifiers.Nodes[0].(*ast.TokenNode).Token)
	assert.Equal(t, "f", fn.Name.Text)
	require.Equal(t, 2, fn.Parameters.Len())
	assert.Equal(t, "b", fn.Parameters.Nodes[1].(*ast.Parameter).Name.(*ast.Identifier).Text)
	assert.True(t, ast.IsSynthesized(fn))
	assert.NotZero(t, fn.Flags&ast.NodeFlagsSynthesized)
}

func TestDecodeSourceFile(t *testing.T) {
	t.Run("statements", func(t *testing.T) {
		file, err := NewDecoder().DecodeSourceFile("/src/a.ts", []byte("- {kind: ExpressionStatement, expression: a}\n"))
		require.NoError(t, err)
		assert.Equal(t, "/src/a.ts", file.FileName)
		assert.Equal(t, ast.ScriptKindTS, file.ScriptKind)
		assert.False(t, file.IsDeclarationFile)
		assert.True(t, file.Identifiers["a"])
		test.AssertEqualWithDiff(t, printer.New(printer.Options{}, printer.Handlers{}).PrintFile(file), "a;\n")
	})

	t.Run("positions", func(t *testing.T) {
		file, err := NewDecoder().DecodeSourceFile("/src/in.ts", []byte(`
kind: SourceFile
fileName: /src/named.ts
text: "/* drop */ a;\n"
statements:
  - kind: ExpressionStatement
    pos: 0
    end: 13
    expression: {kind: Identifier, text: a, pos: 10, end: 12}
`))
		require.NoError(t, err)
		assert.Equal(t, "/src/named.ts", file.FileName)
		assert.Equal(t, ast.TextRange{Pos: 0, End: 14}, file.TextRange)

		statement := file.Statements.Nodes[0]
		assert.False(t, ast.IsSynthesized(statement))
		p := printer.New(printer.Options{}, printer.Handlers{})
		test.AssertEqualWithDiff(t, p.PrintNode(printer.HintUnspecified, statement, file), "/* drop */ a;")
	})

	t.Run("declaration file", func(t *testing.T) {
		file, err := NewDecoder().DecodeSourceFile("/src/types.d.ts", []byte("[]"))
		require.NoError(t, err)
		assert.True(t, file.IsDeclarationFile)
		assert.Equal(t, 0, file.Statements.Len())
	})
}

func TestDecodeSharesHelpers(t *testing.T) {
	const document = `
kind: ExpressionStatement
expression: a
emit:
  flags: [noComments, singleLine]
  helpers:
    - {name: "typescript:extends", priority: 0, text: "var __extends;"}
`
	decoder := NewDecoder()
	first, err := decoder.Decode([]byte(document))
	require.NoError(t, err)
	second, err := decoder.Decode([]byte(document))
	require.NoError(t, err)

	helpers := ast.GetEmitHelpers(first)
	require.Len(t, helpers, 1)
	assert.Same(t, helpers[0], ast.GetEmitHelpers(second)[0])
	require.NotNil(t, helpers[0].Priority)
	assert.Equal(t, 0, *helpers[0].Priority)
	assert.Equal(t, ast.EmitFlagsNoComments|ast.EmitFlagsSingleLine, ast.GetEmitFlags(first))
}

func TestDecodeErrors(t *testing.T) {
	for _, c := range []struct {
		name     string
		document string
		contains string
	}{
		{"missing kind", "expression: a\n", `missing "kind"`},
		{"wrong type", "kind: VariableStatement\ndeclarationList: {kind: Block}\n", "a Block cannot be used where a VariableDeclarationList is expected"},
		{"unknown field", "kind: ExpressionStatement\nvalue: a\n", `unknown field "value" for ExpressionStatement`},
		{"unknown token", "kind: BinaryExpression\nleft: a\noperatorToken: \"<=>\"\nright: b\n", `unknown token "<=>"`},
		{"unknown flag", "kind: Block\nflags: [loose]\n", `unknown flag "loose"`},
		{"empty", "", "empty syntax tree document"},
	} {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewDecoder().Decode([]byte(c.document))
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.contains)
		})
	}

	t.Run("unknown kind", func(t *testing.T) {
		_, err := NewDecoder().Decode([]byte("kind: Statement\n"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownKind))
		assert.Contains(t, err.Error(), `line 1: "Statement"`)
	})
}

func TestScriptKindFromFileName(t *testing.T) {
	for name, kind := range map[string]ast.ScriptKind{
		"a.ts":   ast.ScriptKindTS,
		"a.d.ts": ast.ScriptKindTS,
		"a.tsx":  ast.ScriptKindTSX,
		"a.js":   ast.ScriptKindJS,
		"a.mjs":  ast.ScriptKindJS,
		"a.jsx":  ast.ScriptKindJSX,
		"a.json": ast.ScriptKindJSON,
		"a":      ast.ScriptKindTS,
	} {
		assert.Equal(t, kind, ScriptKindFromFileName(name), name)
	}
}
