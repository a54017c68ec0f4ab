package namegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webcarrot/tsemit/internal/ast"
)

func fileCheck(names ...string) func(string) bool {
	used := make(map[string]bool)
	for _, name := range names {
		used[name] = true
	}
	return func(name string) bool { return !used[name] }
}

func TestTempNamesSkipIAndN(t *testing.T) {
	g := NewGenerator()
	var names []string
	for i := 0; i < 28; i++ {
		names = append(names, g.GenerateName(ast.NewTempVariable(false)))
	}
	assert.Equal(t, "_a", names[0])
	assert.Equal(t, "_h", names[7])
	assert.Equal(t, "_j", names[8])
	assert.Equal(t, "_m", names[11])
	assert.Equal(t, "_o", names[12])
	assert.Equal(t, "_z", names[23])
	assert.Equal(t, "_0", names[24])
	assert.Equal(t, "_3", names[27])
	assert.NotContains(t, names, "_i")
	assert.NotContains(t, names, "_n")
}

func TestTempNamesAvoidFileIdentifiers(t *testing.T) {
	g := NewGenerator()
	g.SetFileLevelUniqueCheck(fileCheck("_a", "_b"))
	assert.Equal(t, "_c", g.GenerateName(ast.NewTempVariable(false)))
}

func TestGeneratedNameIsStablePerIdentifier(t *testing.T) {
	g := NewGenerator()
	temp := ast.NewTempVariable(false)
	first := g.GenerateName(temp)
	g.GenerateName(ast.NewTempVariable(false))
	assert.Equal(t, first, g.GenerateName(temp))
}

func TestLoopVariablePrefersI(t *testing.T) {
	g := NewGenerator()
	assert.Equal(t, "_i", g.GenerateName(ast.NewLoopVariable()))
	assert.Equal(t, "_a", g.GenerateName(ast.NewLoopVariable()))

	g = NewGenerator()
	g.SetFileLevelUniqueCheck(fileCheck("_i"))
	assert.Equal(t, "_a", g.GenerateName(ast.NewLoopVariable()))
}

func TestUniqueNames(t *testing.T) {
	g := NewGenerator()
	g.SetFileLevelUniqueCheck(fileCheck("foo", "foo_1"))
	assert.Equal(t, "foo_2", g.GenerateName(ast.NewUniqueName("foo", ast.GeneratedNone)))
	assert.Equal(t, "foo_3", g.GenerateName(ast.NewUniqueName("foo", ast.GeneratedNone)))
	assert.Equal(t, "bar_1", g.GenerateName(ast.NewUniqueName("bar_", ast.GeneratedNone)))
}

func TestOptimisticUniqueNames(t *testing.T) {
	g := NewGenerator()
	g.SetFileLevelUniqueCheck(fileCheck("taken"))
	assert.Equal(t, "free", g.GenerateName(ast.NewOptimisticUniqueName("free")))
	assert.Equal(t, "free_1", g.GenerateName(ast.NewOptimisticUniqueName("free")))
	assert.Equal(t, "taken_1", g.GenerateName(ast.NewOptimisticUniqueName("taken")))
}

func TestFileLevelUniqueNamesIgnoreGeneratedNames(t *testing.T) {
	g := NewGenerator()
	assert.Equal(t, "__extends", g.MakeFileLevelOptimisticUniqueName("__extends"))
	assert.Equal(t, "__extends", g.MakeFileLevelOptimisticUniqueName("__extends"))
}

func TestScopesRestoreTempCounter(t *testing.T) {
	g := NewGenerator()
	assert.Equal(t, "_a", g.MakeTempName())

	fn := ast.NewFunctionDeclaration(ast.NewIdentifier("f"), nil, ast.NewBlock(true))
	g.PushScope(fn)
	assert.Equal(t, "_a", g.MakeTempName())
	assert.Equal(t, "_b", g.MakeTempName())
	g.PopScope(fn)

	assert.Equal(t, "_b", g.MakeTempName())
}

func TestReuseTempVariableScope(t *testing.T) {
	g := NewGenerator()
	assert.Equal(t, "_a", g.MakeTempName())

	fn := ast.NewFunctionDeclaration(ast.NewIdentifier("f"), nil, ast.NewBlock(true))
	ast.SetEmitFlags(fn, ast.EmitFlagsReuseTempVariableScope)
	g.PushScope(fn)
	assert.Equal(t, "_b", g.MakeTempName())
	g.PopScope(fn)

	assert.Equal(t, "_c", g.MakeTempName())
}

func TestReservedNamesAreVisibleInNestedScopesOnly(t *testing.T) {
	g := NewGenerator()
	outer := ast.NewBlock(true)
	inner := ast.NewBlock(true)
	sibling := ast.NewBlock(true)

	g.PushScope(outer)
	assert.Equal(t, "_a", g.GenerateName(ast.NewTempVariable(true)))

	g.PushScope(inner)
	assert.Equal(t, "_b", g.MakeTempName())
	g.PopScope(inner)

	g.PopScope(outer)

	g.PushScope(sibling)
	assert.Equal(t, "_a", g.MakeTempName())
	g.PopScope(sibling)
}

func TestNameForNodeIsShared(t *testing.T) {
	g := NewGenerator()
	g.SetFileLevelUniqueCheck(fileCheck("x"))
	x := ast.NewIdentifier("x")
	a := ast.GeneratedNameForNode(x, ast.GeneratedNone)
	b := ast.GeneratedNameForNode(x, ast.GeneratedNone)
	assert.Equal(t, "x_1", g.GenerateName(a))
	assert.Equal(t, "x_1", g.GenerateName(b))

	// Following the original chain reaches the same node
	c := ast.GeneratedNameForNode(ast.NewIdentifier("x"), ast.GeneratedNone)
	c.Original.Base().Original = x
	assert.Equal(t, "x_1", g.GenerateName(c))
}

func TestNameForModuleAndEnum(t *testing.T) {
	g := NewGenerator()
	enum := &ast.EnumDeclaration{Name: ast.NewIdentifier("Color")}
	assert.Equal(t, "Color", g.GenerateName(ast.GeneratedNameForNode(enum, ast.GeneratedNone)))

	module := &ast.ModuleDeclaration{Name: ast.NewIdentifier("NS"), Locals: map[string]bool{"NS": true}}
	assert.Equal(t, "NS_1", g.GenerateName(ast.GeneratedNameForNode(module, ast.GeneratedNone)))
}

func TestNameForImportAndDefaults(t *testing.T) {
	g := NewGenerator()
	imp := &ast.ImportDeclaration{ModuleSpecifier: ast.NewStringLiteral("./lib/my-module.js")}
	assert.Equal(t, "my_module_js_1", g.GenerateName(ast.GeneratedNameForNode(imp, ast.GeneratedNone)))

	exp := &ast.ExportDeclaration{}
	assert.Equal(t, "module_1", g.GenerateName(ast.GeneratedNameForNode(exp, ast.GeneratedNone)))

	assert.Equal(t, "default_1", g.GenerateName(ast.GeneratedNameForNode(&ast.ClassDeclaration{}, ast.GeneratedNone)))
	assert.Equal(t, "class_1", g.GenerateName(ast.GeneratedNameForNode(&ast.ClassExpression{}, ast.GeneratedNone)))
	assert.Equal(t, "_a", g.GenerateName(ast.GeneratedNameForNode(&ast.CallExpression{}, ast.GeneratedNone)))
}

func TestMakeIdentifierFromModuleName(t *testing.T) {
	assert.Equal(t, "foo", MakeIdentifierFromModuleName("foo"))
	assert.Equal(t, "_2d", MakeIdentifierFromModuleName("./shapes/2d"))
	assert.Equal(t, "a_b_c", MakeIdentifierFromModuleName("@scope/a-b.c"))
}

func TestGenerateNamesClaimsDeclarationsFirst(t *testing.T) {
	g := NewGenerator()
	name := ast.NewUniqueName("value", ast.GeneratedNone)
	use := ast.NewUniqueName("value", ast.GeneratedNone)
	file := ast.NewSourceFile("a.ts",
		ast.NewVariableStatement(ast.NodeFlagsConst, ast.NewVariableDeclaration(name, nil)),
	)
	g.GenerateNames(file)
	require.Equal(t, "value_1", g.GenerateName(name))
	assert.Equal(t, "value_2", g.GenerateName(use))
}

func TestGenerateMemberNames(t *testing.T) {
	g := NewGenerator()
	name := ast.NewUniqueName("m", ast.GeneratedNone)
	g.GenerateMemberNames(ast.NewPropertyAssignment(name, ast.NewNumericLiteral("1")))
	assert.Equal(t, "m_1", g.GenerateName(name))
}

func TestReset(t *testing.T) {
	g := NewGenerator()
	assert.Equal(t, "_a", g.MakeTempName())
	g.Reset()
	assert.Equal(t, "_a", g.MakeTempName())
}
