package emitter

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webcarrot/tsemit/internal/ast"
	"github.com/webcarrot/tsemit/internal/config"
	"github.com/webcarrot/tsemit/internal/errors"
	"github.com/webcarrot/tsemit/internal/fs"
	"github.com/webcarrot/tsemit/internal/helpers"
	"github.com/webcarrot/tsemit/internal/logger"
	"github.com/webcarrot/tsemit/internal/printer"
	"github.com/webcarrot/tsemit/internal/test"
)

func sourceFile(fileName string, kind ast.ScriptKind, names ...string) *ast.SourceFile {
	statements := make([]ast.Node, len(names))
	for i, name := range names {
		statements[i] = ast.NewExpressionStatement(ast.NewIdentifier(name))
	}
	file := ast.NewSourceFile(fileName, statements...)
	file.ScriptKind = kind
	return file
}

type emitTest struct {
	options config.Options
	files   []*ast.SourceFile
	emit    EmitOptions
}

func (et emitTest) run(t *testing.T) (*fs.MockFS, Result) {
	t.Helper()
	mock := fs.NewMockFS(nil, "/")
	inputs := make([]string, len(et.files))
	for i, file := range et.files {
		inputs[i] = file.FileName
		require.NoError(t, mock.WriteFile(file.FileName, ""))
	}
	result, err := EmitFiles(nil, NewHost(mock, et.options, inputs), et.files, et.emit)
	require.NoError(t, err)
	return mock, result
}

func readFile(t *testing.T, mock *fs.MockFS, path string) string {
	t.Helper()
	contents, err := mock.ReadFile(path)
	require.NoError(t, err)
	return contents
}

func outDirOptions() config.Options {
	options := config.Default()
	options.OutDir = "/out"
	return options
}

func TestEmitPerFile(t *testing.T) {
	options := outDirOptions()
	options.ListEmittedFiles = true
	mock, result := emitTest{
		options: options,
		files:   []*ast.SourceFile{sourceFile("/src/a.ts", ast.ScriptKindTS, "a"), sourceFile("/src/lib/b.ts", ast.ScriptKindTS, "b")},
	}.run(t)

	assert.False(t, result.EmitSkipped)
	assert.Empty(t, result.Diagnostics)
	assert.Equal(t, []string{"/out/a.js", "/out/lib/b.js"}, result.EmittedFiles)
	test.AssertEqualWithDiff(t, readFile(t, mock, "/out/a.js"), "a;\n")
	test.AssertEqualWithDiff(t, readFile(t, mock, "/out/lib/b.js"), "b;\n")
}

func TestEmitSkipsDeclarationFiles(t *testing.T) {
	declarationFile := sourceFile("/src/types.d.ts", ast.ScriptKindTS, "x")
	declarationFile.IsDeclarationFile = true
	mock, _ := emitTest{
		options: outDirOptions(),
		files:   []*ast.SourceFile{declarationFile, sourceFile("/src/a.ts", ast.ScriptKindTS, "a")},
	}.run(t)
	assert.Equal(t, []string{"/out/a.js", "/src/a.ts", "/src/types.d.ts"}, mock.Files())
}

func TestEmitSourceMapFile(t *testing.T) {
	options := outDirOptions()
	options.SourceMap = true
	mock, result := emitTest{
		options: options,
		files:   []*ast.SourceFile{sourceFile("/src/a.ts", ast.ScriptKindTS, "a")},
	}.run(t)

	test.AssertEqualWithDiff(t, readFile(t, mock, "/out/a.js"), "a;\n//# sourceMappingURL=a.js.map")

	var sourceMap struct {
		Version int      `json:"version"`
		File    string   `json:"file"`
		Sources []string `json:"sources"`
	}
	require.NoError(t, json.Unmarshal([]byte(readFile(t, mock, "/out/a.js.map")), &sourceMap))
	assert.Equal(t, 3, sourceMap.Version)
	assert.Equal(t, "a.js", sourceMap.File)
	assert.Equal(t, []string{"../src/a.ts"}, sourceMap.Sources)

	require.Len(t, result.SourceMaps, 1)
	assert.Equal(t, []string{"../src/a.ts"}, result.SourceMaps[0].InputSourceFileNames)
}

func TestEmitInlineSourceMap(t *testing.T) {
	options := outDirOptions()
	options.InlineSourceMap = true
	mock, _ := emitTest{
		options: options,
		files:   []*ast.SourceFile{sourceFile("/src/a.ts", ast.ScriptKindTS, "a")},
	}.run(t)

	const prefix = "a;\n//# sourceMappingURL="
	output := readFile(t, mock, "/out/a.js")
	require.True(t, strings.HasPrefix(output, prefix), output)

	mimeType, text, ok := helpers.DecodeBase64DataURL(output[len(prefix):])
	require.True(t, ok)
	assert.Equal(t, "application/json", mimeType)
	assert.Contains(t, text, `"version":3`)

	_, err := mock.ReadFile("/out/a.js.map")
	assert.Error(t, err)
}

func TestEmitMapRoot(t *testing.T) {
	for _, c := range []struct{ mapRoot, expected string }{
		{"/maps", "/maps/a.js.map"},
		{"maps", "../src/maps/a.js.map"},
	} {
		t.Run(c.mapRoot, func(t *testing.T) {
			options := outDirOptions()
			options.SourceMap = true
			options.MapRoot = c.mapRoot
			mock, _ := emitTest{
				options: options,
				files:   []*ast.SourceFile{sourceFile("/src/a.ts", ast.ScriptKindTS, "a")},
			}.run(t)
			test.AssertEqualWithDiff(t, readFile(t, mock, "/out/a.js"), "a;\n//# sourceMappingURL="+c.expected)
		})
	}
}

func TestEmitBundle(t *testing.T) {
	options := config.Default()
	options.Module = config.ModuleAMD
	options.OutFile = "/out/bundle.js"
	options.References = true
	options.ListEmittedFiles = true

	mock, result := emitTest{
		options: options,
		files:   []*ast.SourceFile{sourceFile("/src/a.ts", ast.ScriptKindTS, "a"), sourceFile("/src/b.ts", ast.ScriptKindTS, "b")},
		emit:    EmitOptions{Prepends: []*ast.UnparsedSource{{FileName: "/lib/prev.js", Text: "var p;"}}},
	}.run(t)

	assert.Equal(t, []string{"/out/bundle.js", "/out/bundle.tsbundleinfo"}, result.EmittedFiles)
	test.AssertEqualWithDiff(t, readFile(t, mock, "/out/bundle.js"), "var p;\na;\nb;\n")
	test.AssertEqualWithDiff(t, readFile(t, mock, "/out/bundle.tsbundleinfo"), "{\n  \"originalOffset\": 6,\n  \"totalLength\": 13\n}")
}

func TestEmitBlockedOutput(t *testing.T) {
	mock, result := emitTest{
		options: config.Default(),
		files:   []*ast.SourceFile{sourceFile("/src/a.js", ast.ScriptKindJS, "a"), sourceFile("/src/b.ts", ast.ScriptKindTS, "b")},
	}.run(t)

	assert.True(t, result.EmitSkipped)
	require.Len(t, result.Diagnostics, 1)
	assert.Contains(t, result.Diagnostics[0].Text, "/src/a.js")
	assert.True(t, errors.Is(result.Err(), ErrEmitBlocked))

	// The input is untouched and the other file is still written
	assert.Equal(t, "", readFile(t, mock, "/src/a.js"))
	test.AssertEqualWithDiff(t, readFile(t, mock, "/src/b.js"), "b;\n")
}

func TestEmitJSONToSameLocation(t *testing.T) {
	mock, result := emitTest{
		options: config.Default(),
		files:   []*ast.SourceFile{sourceFile("/src/data.json", ast.ScriptKindJSON)},
	}.run(t)
	assert.False(t, result.EmitSkipped)
	assert.NoError(t, result.Err())
	assert.Equal(t, []string{"/src/data.json"}, mock.Files())
}

func TestEmitNoEmit(t *testing.T) {
	options := outDirOptions()
	options.NoEmit = true
	mock, result := emitTest{
		options: options,
		files:   []*ast.SourceFile{sourceFile("/src/a.ts", ast.ScriptKindTS, "a")},
	}.run(t)
	assert.True(t, result.EmitSkipped)
	assert.Empty(t, result.Diagnostics)
	assert.Equal(t, []string{"/src/a.ts"}, mock.Files())
}

func TestEmitBOM(t *testing.T) {
	options := outDirOptions()
	options.EmitBOM = true
	mock, _ := emitTest{
		options: options,
		files:   []*ast.SourceFile{sourceFile("/src/a.ts", ast.ScriptKindTS, "a")},
	}.run(t)
	assert.Equal(t, "\uFEFFa;\n", readFile(t, mock, "/out/a.js"))
}

func TestEmitDeclarations(t *testing.T) {
	options := outDirOptions()
	options.Declaration = true
	options.DeclarationDir = "/types"

	transform := func(node ast.Node) (ast.Node, []logger.Msg) {
		return sourceFile("/src/a.ts", ast.ScriptKindTS, "declared"), nil
	}
	mock, result := emitTest{
		options: options,
		files:   []*ast.SourceFile{sourceFile("/src/a.ts", ast.ScriptKindTS, "a"), sourceFile("/src/c.js", ast.ScriptKindJS, "c")},
		emit:    EmitOptions{DeclarationTransform: transform},
	}.run(t)

	assert.False(t, result.EmitSkipped)
	test.AssertEqualWithDiff(t, readFile(t, mock, "/out/a.js"), "a;\n")
	test.AssertEqualWithDiff(t, readFile(t, mock, "/types/a.d.ts"), "declared;\n")

	// JavaScript inputs have no declaration output
	assert.Equal(t, []string{"/out/a.js", "/out/c.js", "/src/a.ts", "/src/c.js", "/types/a.d.ts"}, mock.Files())
}

func TestEmitDeclarationDiagnosticsBlockOnlyDeclarations(t *testing.T) {
	options := outDirOptions()
	options.Declaration = true

	transform := func(node ast.Node) (ast.Node, []logger.Msg) {
		return node, []logger.Msg{{Kind: logger.Error, Text: "exported variable has or is using private name"}}
	}
	mock, result := emitTest{
		options: options,
		files:   []*ast.SourceFile{sourceFile("/src/a.ts", ast.ScriptKindTS, "a")},
		emit:    EmitOptions{DeclarationTransform: transform},
	}.run(t)

	assert.True(t, result.EmitSkipped)
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, "exported variable has or is using private name", result.Diagnostics[0].Text)
	assert.Equal(t, []string{"/out/a.js", "/src/a.ts"}, mock.Files())
}

type aliasResolver struct {
	collected []string
}

func (*aliasResolver) HasGlobalName(name string) bool { return false }

func (r *aliasResolver) CollectLinkedAliases(name *ast.Identifier) {
	r.collected = append(r.collected, name.Text)
}

func TestEmitOnlyDeclarationsCollectsAliases(t *testing.T) {
	options := outDirOptions()
	file := ast.NewSourceFile("/src/a.ts",
		&ast.ExportAssignment{Expression: ast.NewIdentifier("main")},
		&ast.ExportDeclaration{ExportClause: &ast.NamedExports{Elements: ast.NewNodeList(
			&ast.ExportSpecifier{PropertyName: ast.NewIdentifier("inner"), Name: ast.NewIdentifier("outer")},
			&ast.ExportSpecifier{Name: ast.NewIdentifier("plain")},
		)}},
	)
	file.ScriptKind = ast.ScriptKindTS

	mock := fs.NewMockFS(nil, "/")
	resolver := &aliasResolver{}
	result, err := EmitFiles(resolver, NewHost(mock, options, []string{file.FileName}), []*ast.SourceFile{file},
		EmitOptions{EmitOnlyDeclarations: true, DeclarationTransform: func(node ast.Node) (ast.Node, []logger.Msg) {
			return sourceFile("/src/a.ts", ast.ScriptKindTS), nil
		}})
	require.NoError(t, err)
	assert.False(t, result.EmitSkipped)
	assert.Equal(t, []string{"main", "inner", "plain"}, resolver.collected)
	assert.Equal(t, []string{"/out/a.d.ts"}, mock.Files())
}

func TestEmitRecoversInternalErrors(t *testing.T) {
	mock := fs.NewMockFS(nil, "/")
	options := outDirOptions()
	file := sourceFile("/src/a.ts", ast.ScriptKindTS, "a")
	_, err := EmitFiles(nil, NewHost(mock, options, []string{file.FileName}), []*ast.SourceFile{file}, EmitOptions{
		Handlers: printer.Handlers{
			// A statement where an expression belongs
			SubstituteNode: func(hint printer.Hint, node ast.Node) ast.Node {
				if hint == printer.HintExpression {
					return ast.NewBlock(false)
				}
				return node
			},
		},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, printer.ErrInternal))
	assert.Empty(t, mock.Files())
}

func TestOutputPathsFor(t *testing.T) {
	mock := fs.NewMockFS(nil, "/")
	check := func(name string, options config.Options, file *ast.SourceFile, expected OutputPaths) {
		t.Helper()
		t.Run(name, func(t *testing.T) {
			host := NewHost(mock, options, []string{"/src/index.ts", file.FileName})
			assert.Equal(t, expected, OutputPathsFor(file, host, false))
		})
	}

	options := config.Default()
	check("next to input", options, sourceFile("/src/a.ts", ast.ScriptKindTS), OutputPaths{JSFilePath: "/src/a.js"})

	preserve := outDirOptions()
	preserve.JSX = config.JSXPreserve
	check("tsx preserve", preserve, sourceFile("/src/view.tsx", ast.ScriptKindTSX), OutputPaths{JSFilePath: "/out/view.jsx"})
	check("js preserve", preserve, sourceFile("/src/view.js", ast.ScriptKindJS), OutputPaths{JSFilePath: "/out/view.js"})

	react := outDirOptions()
	react.JSX = config.JSXReact
	check("tsx react", react, sourceFile("/src/view.tsx", ast.ScriptKindTSX), OutputPaths{JSFilePath: "/out/view.js"})

	maps := outDirOptions()
	maps.SourceMap = true
	maps.Declaration = true
	maps.DeclarationMap = true
	check("maps", maps, sourceFile("/src/a.ts", ast.ScriptKindTS), OutputPaths{
		JSFilePath:          "/out/a.js",
		SourceMapFilePath:   "/out/a.js.map",
		DeclarationFilePath: "/out/a.d.ts",
		DeclarationMapPath:  "/out/a.d.ts.map",
	})
	check("json", maps, sourceFile("/src/data.json", ast.ScriptKindJSON), OutputPaths{JSFilePath: "/out/data.json"})

	declarationOnly := outDirOptions()
	declarationOnly.Declaration = true
	declarationOnly.EmitDeclarationOnly = true
	check("declaration only", declarationOnly, sourceFile("/src/a.ts", ast.ScriptKindTS), OutputPaths{DeclarationFilePath: "/out/a.d.ts"})

	t.Run("bundle", func(t *testing.T) {
		bundleOptions := config.Default()
		bundleOptions.Module = config.ModuleSystem
		bundleOptions.OutFile = "/out/all.js"
		bundleOptions.SourceMap = true
		bundleOptions.Declaration = true
		bundleOptions.References = true
		host := NewHost(mock, bundleOptions, []string{"/src/a.ts"})
		assert.Equal(t, OutputPaths{
			JSFilePath:          "/out/all.js",
			SourceMapFilePath:   "/out/all.js.map",
			DeclarationFilePath: "/out/all.d.ts",
			BundleInfoPath:      "/out/all.tsbundleinfo",
		}, OutputPathsFor(&ast.Bundle{}, host, false))
	})
}

func TestEmitDeclarationsOnly(t *testing.T) {
	options := outDirOptions()
	options.Declaration = true
	options.DeclarationMap = true
	options.EmitDeclarationOnly = true
	options.ListEmittedFiles = true

	const text = "/** keep */ /* drop */ a;\n"
	file := &ast.SourceFile{
		NodeBase:   ast.NodeBase{TextRange: ast.TextRange{Pos: 0, End: len(text)}},
		FileName:   "/src/a.ts",
		ScriptKind: ast.ScriptKindTS,
		Text:       text,
		Statements: &ast.NodeList{TextRange: ast.TextRange{Pos: 0, End: 25}, Nodes: []ast.Node{
			&ast.ExpressionStatement{
				NodeBase:   ast.NodeBase{TextRange: ast.TextRange{Pos: 0, End: 25}},
				Expression: &ast.Identifier{NodeBase: ast.NodeBase{TextRange: ast.TextRange{Pos: 22, End: 24}}, Text: "a"},
			},
		}},
	}
	mock, result := emitTest{options: options, files: []*ast.SourceFile{file}}.run(t)

	assert.False(t, result.EmitSkipped)
	assert.Equal(t, []string{"/out/a.d.ts", "/out/a.d.ts.map"}, result.EmittedFiles)
	assert.Equal(t, []string{"/out/a.d.ts", "/out/a.d.ts.map", "/src/a.ts"}, mock.Files())
	test.AssertEqualWithDiff(t, readFile(t, mock, "/out/a.d.ts"), "/** keep */ a;\n//# sourceMappingURL=a.d.ts.map")

	var sourceMap struct {
		File    string   `json:"file"`
		Sources []string `json:"sources"`
	}
	require.NoError(t, json.Unmarshal([]byte(readFile(t, mock, "/out/a.d.ts.map")), &sourceMap))
	assert.Equal(t, "a.d.ts", sourceMap.File)
	assert.Equal(t, []string{"../src/a.ts"}, sourceMap.Sources)
}
