package printer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/webcarrot/tsemit/internal/astio"
	"github.com/webcarrot/tsemit/internal/printer"
	"github.com/webcarrot/tsemit/internal/test"
)

func expectDocumentPrintedWithOptions(t *testing.T, name string, options printer.Options, hint printer.Hint, document string, expected string) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		t.Helper()
		node, err := astio.NewDecoder().Decode([]byte(document))
		require.NoError(t, err)
		p := printer.New(options, printer.Handlers{})
		test.AssertEqualWithDiff(t, p.PrintNode(hint, node, nil), expected)
	})
}

func expectDocumentPrinted(t *testing.T, name string, document string, expected string) {
	t.Helper()
	expectDocumentPrintedWithOptions(t, name, printer.Options{}, printer.HintUnspecified, document, expected)
}

func expectDocumentPrintedExpression(t *testing.T, name string, document string, expected string) {
	t.Helper()
	expectDocumentPrintedWithOptions(t, name, printer.Options{}, printer.HintExpression, document, expected)
}

func TestClassDeclaration(t *testing.T) {
	expectDocumentPrinted(t, "heritage and members", `
kind: ClassDeclaration
modifiers: [export]
name: A
typeParameters: [{name: T}]
heritageClauses:
  - token: extends
    types:
      - {kind: ExpressionWithTypeArguments, expression: B, typeArguments: [T]}
  - token: implements
    types: [I]
members:
  - kind: PropertyDeclaration
    modifiers: [private]
    name: x
    type: {kind: TokenNode, token: number}
    initializer: 1
  - kind: Constructor
    parameters: []
    body:
      multiLine: true
      statements:
        - kind: ExpressionStatement
          expression:
            kind: CallExpression
            expression: {kind: TokenNode, token: super}
            arguments: []
  - kind: MethodDeclaration
    modifiers: [static]
    name: m
    parameters: [a]
    body: {statements: []}
`, "export class A<T> extends B<T> implements I {\n    private x: number = 1;\n    constructor() {\n        super();\n    }\n    static m(a) { }\n}")

	expectDocumentPrinted(t, "empty", `
kind: ClassDeclaration
name: E
members: []
`, "class E {\n}")
}

func TestInterfaceDeclaration(t *testing.T) {
	expectDocumentPrinted(t, "members", `
kind: InterfaceDeclaration
name: I
heritageClauses:
  - token: extends
    types: [J, K]
members:
  - kind: PropertySignature
    name: a
    questionToken: "?"
    type: {kind: TokenNode, token: string}
  - kind: MethodSignature
    name: m
    parameters:
      - name: x
        type: {kind: TokenNode, token: number}
    type: {kind: TokenNode, token: void}
  - kind: IndexSignature
    modifiers: [readonly]
    parameters:
      - name: k
        type: {kind: TokenNode, token: string}
    type: {kind: TokenNode, token: any}
`, "interface I extends J, K {\n    a?: string;\n    m(x: number): void;\n    readonly [k: string]: any;\n}")
}

func TestEnumDeclaration(t *testing.T) {
	expectDocumentPrinted(t, "const enum", `
kind: EnumDeclaration
modifiers: [const]
name: E
members:
  - {kind: EnumMember, name: A}
  - {kind: EnumMember, name: B, initializer: 2}
`, "const enum E {\n    A,\n    B = 2\n}")
}

func TestModuleDeclaration(t *testing.T) {
	expectDocumentPrinted(t, "module", `
kind: ModuleDeclaration
name: A
body:
  kind: ModuleDeclaration
  flags: [nestedNamespace]
  name: B
  body:
    kind: ModuleDeclaration
    flags: [nestedNamespace]
    name: C
    body:
      kind: ModuleBlock
      statements:
        - kind: VariableStatement
          declarationList:
            flags: [const]
            declarations: [{name: x, initializer: 1}]
`, "module A.B.C {\n    const x = 1;\n}")

	expectDocumentPrinted(t, "namespace", `
kind: ModuleDeclaration
flags: [namespace]
name: N
body:
  kind: ModuleDeclaration
  flags: [nestedNamespace]
  name: M
  body: {kind: ModuleBlock, statements: [{kind: ExpressionStatement, expression: a}]}
`, "namespace N.M {\n    a;\n}")

	expectDocumentPrinted(t, "ambient without body", `
kind: ModuleDeclaration
modifiers: [declare]
name: {kind: StringLiteral, text: m}
`, "declare module \"m\";")
}

func TestImportsAndExports(t *testing.T) {
	expectDocumentPrinted(t, "default and named imports", `
kind: ImportDeclaration
importClause:
  name: d
  namedBindings:
    kind: NamedImports
    elements:
      - {kind: ImportSpecifier, propertyName: a, name: b}
      - {kind: ImportSpecifier, name: c}
moduleSpecifier: {kind: StringLiteral, text: m}
`, "import d, { a as b, c } from \"m\";")

	expectDocumentPrinted(t, "namespace import", `
kind: ImportDeclaration
importClause:
  namedBindings: {kind: NamespaceImport, name: ns}
moduleSpecifier: {kind: StringLiteral, text: m}
`, "import * as ns from \"m\";")

	expectDocumentPrinted(t, "side effect import", `
kind: ImportDeclaration
moduleSpecifier: {kind: StringLiteral, text: m}
`, "import \"m\";")

	expectDocumentPrinted(t, "import require", `
kind: ImportEqualsDeclaration
name: x
moduleReference:
  kind: ExternalModuleReference
  expression: {kind: StringLiteral, text: m}
`, "import x = require(\"m\");")

	expectDocumentPrinted(t, "import alias", `
kind: ImportEqualsDeclaration
name: x
moduleReference: {kind: QualifiedName, left: N, right: y}
`, "import x = N.y;")

	expectDocumentPrinted(t, "named exports", `
kind: ExportDeclaration
exportClause:
  elements:
    - {kind: ExportSpecifier, propertyName: a, name: b}
    - {kind: ExportSpecifier, name: c}
moduleSpecifier: {kind: StringLiteral, text: m}
`, "export { a as b, c } from \"m\";")

	expectDocumentPrinted(t, "export star", `
kind: ExportDeclaration
moduleSpecifier: {kind: StringLiteral, text: m}
`, "export * from \"m\";")

	expectDocumentPrinted(t, "export default", `
kind: ExportAssignment
expression: a
`, "export default a;")

	expectDocumentPrinted(t, "export equals", `
kind: ExportAssignment
isExportEquals: true
expression: a
`, "export = a;")
}

func TestTemplates(t *testing.T) {
	// Backticks can't appear in a raw string
	expectDocumentPrintedExpression(t, "spans",
		"kind: TemplateExpression\n"+
			"head: {part: head, text: a}\n"+
			"templateSpans:\n"+
			"  - {expression: x, literal: {part: middle, text: b}}\n"+
			"  - {expression: y, literal: {part: tail, text: \"c`\"}}\n",
		"`a${x}b${y}c\\``")

	expectDocumentPrintedExpression(t, "no substitution", `
kind: TemplatePart
part: noSubstitution
text: "${t}"
`, "`\\${t}`")

	expectDocumentPrintedExpression(t, "raw text", `
kind: TemplatePart
part: noSubstitution
text: "\n"
rawText: "\\n"
`, "`\\n`")

	expectDocumentPrintedExpression(t, "tagged", `
kind: TaggedTemplateExpression
tag: f
template: {kind: TemplatePart, part: noSubstitution, text: t}
`, "f `t`")
}

func TestJsx(t *testing.T) {
	expectDocumentPrintedExpression(t, "element", `
kind: JsxElement
openingElement:
  tagName: div
  attributes:
    properties:
      - {kind: JsxAttribute, name: id, initializer: {kind: StringLiteral, text: x}}
      - {kind: JsxSpreadAttribute, expression: p}
children:
  - {kind: JsxText, text: "hi "}
  - {kind: JsxExpression, expression: name}
  - {kind: JsxSelfClosingElement, tagName: br, attributes: {properties: []}}
closingElement: {tagName: div}
`, "<div id=\"x\" {...p}>hi {name}<br /></div>")

	expectDocumentPrintedExpression(t, "fragment", `
kind: JsxFragment
openingFragment: {}
children: [{kind: JsxText, text: a}]
closingFragment: {}
`, "<>a</>")

	expectDocumentPrintedExpression(t, "member tag", `
kind: JsxSelfClosingElement
tagName: {kind: PropertyAccessExpression, expression: ui, name: Button}
attributes: {properties: []}
`, "<ui.Button />")
}

func TestSwitchStatement(t *testing.T) {
	expectDocumentPrinted(t, "clauses", `
kind: SwitchStatement
expression: x
caseBlock:
  clauses:
    - kind: CaseClause
      expression: 1
      statements: [{kind: BreakStatement}]
    - kind: CaseClause
      expression: 2
      statements:
        - {kind: ExpressionStatement, expression: {kind: CallExpression, expression: f, arguments: []}}
        - {kind: ReturnStatement}
    - kind: DefaultClause
      statements: []
`, "switch (x) {\n    case 1: break;\n    case 2:\n        f();\n        return;\n    default:\n}")
}

func TestTryStatement(t *testing.T) {
	expectDocumentPrinted(t, "catch and finally", `
kind: TryStatement
tryBlock: {statements: [{kind: ExpressionStatement, expression: a}]}
catchClause:
  variableDeclaration: e
  block: {statements: [{kind: ExpressionStatement, expression: b}]}
finallyBlock: {statements: [{kind: ExpressionStatement, expression: c}]}
`, "try {\n    a;\n}\ncatch (e) {\n    b;\n}\nfinally {\n    c;\n}")

	expectDocumentPrinted(t, "catch without binding", `
kind: TryStatement
tryBlock: {statements: []}
catchClause:
  block: {statements: []}
`, "try { }\ncatch { }")
}

func TestEmbeddedStatements(t *testing.T) {
	expectDocumentPrinted(t, "else if chain", `
kind: IfStatement
expression: a
thenStatement: {kind: Block, statements: [{kind: ExpressionStatement, expression: b}]}
elseStatement:
  kind: IfStatement
  expression: c
  thenStatement: {kind: ExpressionStatement, expression: d}
  elseStatement: {kind: ExpressionStatement, expression: e}
`, "if (a) {\n    b;\n}\nelse if (c)\n    d;\nelse\n    e;")

	expectDocumentPrinted(t, "single line", `
kind: IfStatement
emit: {flags: [singleLine]}
expression: a
thenStatement: {kind: ReturnStatement}
elseStatement: {kind: ExpressionStatement, expression: b}
`, "if (a) return; else b;")

	const emptyLoop = `
kind: WhileStatement
expression: x
statement: {kind: EmptyStatement}
`
	expectDocumentPrinted(t, "empty body", emptyLoop, "while (x)\n    ;")
	expectDocumentPrintedWithOptions(t, "empty body keeps semicolon", printer.Options{OmitTrailingSemicolon: true},
		printer.HintUnspecified, emptyLoop, "while (x)\n    ;")
}

func TestTypeNodes(t *testing.T) {
	expectDocumentPrinted(t, "union and intersection", `
kind: TypeAliasDeclaration
name: T
type:
  kind: UnionType
  types:
    - {kind: LiteralType, literal: {kind: StringLiteral, text: a}}
    - {kind: IntersectionType, types: [B, C]}
    - {kind: TokenNode, token: "null"}
`, "type T = \"a\" | B & C | null;")

	expectDocumentPrinted(t, "mapped", `
kind: MappedType
readonlyToken: readonly
typeParameter:
  name: K
  constraint: {kind: TypeOperator, operator: keyof, type: T}
questionToken: "?"
type: {kind: IndexedAccessType, objectType: T, indexType: K}
`, "{\n    readonly [K in keyof T]?: T[K];\n}")

	expectDocumentPrinted(t, "mapped single line with modifiers removed", `
kind: MappedType
emit: {flags: [singleLine]}
readonlyToken: "-"
typeParameter:
  name: K
  constraint: {kind: TypeOperator, operator: keyof, type: T}
questionToken: "-"
type: {kind: IndexedAccessType, objectType: T, indexType: K}
`, "{ -readonly [K in keyof T]-?: T[K]; }")

	expectDocumentPrinted(t, "conditional", `
kind: ConditionalType
checkType: T
extendsType:
  kind: ArrayType
  elementType:
    kind: ParenthesizedType
    type: {kind: InferType, typeParameter: {name: U}}
trueType: U
falseType: {kind: TokenNode, token: never}
`, "T extends (infer U)[] ? U : never")

	expectDocumentPrinted(t, "tuple", `
kind: TupleType
elementTypes:
  - {kind: TokenNode, token: string}
  - {kind: OptionalType, type: {kind: TokenNode, token: number}}
  - {kind: RestType, type: {kind: ArrayType, elementType: {kind: TokenNode, token: boolean}}}
`, "[string, number?, ...boolean[]]")

	expectDocumentPrinted(t, "single line type literal", `
kind: TypeLiteral
emit: {flags: [singleLine]}
members:
  - {kind: PropertySignature, name: a, type: {kind: TokenNode, token: number}}
`, "{ a: number; }")
}

func TestNumericLiteralFlags(t *testing.T) {
	expectDocumentPrintedExpression(t, "hex", `
kind: PropertyAccessExpression
expression: {kind: NumericLiteral, text: "0x1", numericFlags: hexSpecifier}
name: toString
`, "0x1.toString")

	expectDocumentPrintedExpression(t, "decimal", `
kind: PropertyAccessExpression
expression: 1
name: toString
`, "1..toString")
}
