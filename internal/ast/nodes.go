package ast

////////////////////////////////////////////////////////////////////////////////
// Names and tokens

type Identifier struct {
	NodeBase
	Text          string
	TypeArguments *NodeList

	// Non-nil for identifiers whose text is decided by the printer
	AutoGenerate *AutoGenerate
}

type QualifiedName struct {
	NodeBase
	Left  Node
	Right *Identifier
}

type ComputedPropertyName struct {
	NodeBase
	Expression Node
}

// TokenNode is a keyword or punctuator that exists as its own node: modifiers,
// keyword expressions ("this", "null", ...), keyword types ("any", ...), and
// optional marker tokens such as "?" and "...".
type TokenNode struct {
	NodeBase
	Token Token
}

////////////////////////////////////////////////////////////////////////////////
// Literals

type NumericLiteralFlags uint16

const (
	NumericLiteralNone       NumericLiteralFlags = 0
	NumericLiteralScientific NumericLiteralFlags = 1 << iota
	NumericLiteralOctal
	NumericLiteralHexSpecifier
	NumericLiteralBinarySpecifier
	NumericLiteralOctalSpecifier
	NumericLiteralContainsSeparator
)

type NumericLiteral struct {
	NodeBase
	Text         string
	NumericFlags NumericLiteralFlags
}

type BigIntLiteral struct {
	NodeBase
	Text string
}

type StringLiteral struct {
	NodeBase
	// The cooked value without quotes
	Text        string
	SingleQuote bool
}

type RegularExpressionLiteral struct {
	NodeBase
	Text string
}

type TemplatePartKind uint8

const (
	TemplateNoSubstitution TemplatePartKind = iota
	TemplateHead
	TemplateMiddle
	TemplateTail
)

// TemplatePart is one literal piece of a template: a whole template without
// substitutions, or the head, a middle, or the tail of one with substitutions.
type TemplatePart struct {
	NodeBase
	Part TemplatePartKind
	Text string

	// The raw text as written, if known
	RawText string
}

type JsxText struct {
	NodeBase
	Text                    string
	ContainsOnlyWhitespaces bool
}

////////////////////////////////////////////////////////////////////////////////
// Signature elements

type TypeParameter struct {
	NodeBase
	Name       *Identifier
	Constraint Node
	Default    Node
}

type Parameter struct {
	NodeBase
	Decorators     *NodeList
	Modifiers      *NodeList
	DotDotDotToken *TokenNode
	Name           Node
	QuestionToken  *TokenNode
	Type           Node
	Initializer    Node
}

type Decorator struct {
	NodeBase
	Expression Node
}

////////////////////////////////////////////////////////////////////////////////
// Type members and class elements

type PropertySignature struct {
	NodeBase
	Modifiers     *NodeList
	Name          Node
	QuestionToken *TokenNode
	Type          Node
	Initializer   Node
}

type PropertyDeclaration struct {
	NodeBase
	Decorators       *NodeList
	Modifiers        *NodeList
	Name             Node
	QuestionToken    *TokenNode
	ExclamationToken *TokenNode
	Type             Node
	Initializer      Node
}

type MethodSignature struct {
	NodeBase
	Modifiers      *NodeList
	Name           Node
	QuestionToken  *TokenNode
	TypeParameters *NodeList
	Parameters     *NodeList
	Type           Node
}

type MethodDeclaration struct {
	NodeBase
	Decorators     *NodeList
	Modifiers      *NodeList
	AsteriskToken  *TokenNode
	Name           Node
	QuestionToken  *TokenNode
	TypeParameters *NodeList
	Parameters     *NodeList
	Type           Node
	Body           *Block
}

type Constructor struct {
	NodeBase
	Decorators     *NodeList
	Modifiers      *NodeList
	TypeParameters *NodeList
	Parameters     *NodeList
	Type           Node
	Body           *Block
}

type GetAccessor struct {
	NodeBase
	Decorators     *NodeList
	Modifiers      *NodeList
	Name           Node
	TypeParameters *NodeList
	Parameters     *NodeList
	Type           Node
	Body           *Block
}

type SetAccessor struct {
	NodeBase
	Decorators     *NodeList
	Modifiers      *NodeList
	Name           Node
	TypeParameters *NodeList
	Parameters     *NodeList
	Type           Node
	Body           *Block
}

type CallSignature struct {
	NodeBase
	TypeParameters *NodeList
	Parameters     *NodeList
	Type           Node
}

type ConstructSignature struct {
	NodeBase
	TypeParameters *NodeList
	Parameters     *NodeList
	Type           Node
}

type IndexSignature struct {
	NodeBase
	Decorators *NodeList
	Modifiers  *NodeList
	Parameters *NodeList
	Type       Node
}

type SemicolonClassElement struct {
	NodeBase
}

////////////////////////////////////////////////////////////////////////////////
// Types

type TypePredicate struct {
	NodeBase
	ParameterName Node
	Type          Node
}

type TypeReference struct {
	NodeBase
	TypeName      Node
	TypeArguments *NodeList
}

type FunctionType struct {
	NodeBase
	TypeParameters *NodeList
	Parameters     *NodeList
	Type           Node
}

type ConstructorType struct {
	NodeBase
	TypeParameters *NodeList
	Parameters     *NodeList
	Type           Node
}

type TypeQuery struct {
	NodeBase
	ExprName Node
}

type TypeLiteral struct {
	NodeBase
	Members *NodeList
}

type ArrayType struct {
	NodeBase
	ElementType Node
}

type TupleType struct {
	NodeBase
	ElementTypes *NodeList
}

type OptionalType struct {
	NodeBase
	Type Node
}

type RestType struct {
	NodeBase
	Type Node
}

type UnionType struct {
	NodeBase
	Types *NodeList
}

type IntersectionType struct {
	NodeBase
	Types *NodeList
}

type ConditionalType struct {
	NodeBase
	CheckType   Node
	ExtendsType Node
	TrueType    Node
	FalseType   Node
}

type InferType struct {
	NodeBase
	TypeParameter *TypeParameter
}

type ParenthesizedType struct {
	NodeBase
	Type Node
}

type ThisType struct {
	NodeBase
}

type TypeOperator struct {
	NodeBase
	Operator Token
	Type     Node
}

type IndexedAccessType struct {
	NodeBase
	ObjectType Node
	IndexType  Node
}

type MappedType struct {
	NodeBase
	ReadonlyToken *TokenNode
	TypeParameter *TypeParameter
	QuestionToken *TokenNode
	Type          Node
}

type LiteralType struct {
	NodeBase
	Literal Node
}

type ImportType struct {
	NodeBase
	IsTypeOf      bool
	Argument      Node
	Qualifier     Node
	TypeArguments *NodeList
}

////////////////////////////////////////////////////////////////////////////////
// Binding patterns

type ObjectBindingPattern struct {
	NodeBase
	Elements *NodeList
}

type ArrayBindingPattern struct {
	NodeBase
	Elements *NodeList
}

type BindingElement struct {
	NodeBase
	DotDotDotToken *TokenNode
	PropertyName   Node
	Name           Node
	Initializer    Node
}

////////////////////////////////////////////////////////////////////////////////
// Expressions

type ArrayLiteralExpression struct {
	NodeBase
	Elements  *NodeList
	MultiLine bool
}

type ObjectLiteralExpression struct {
	NodeBase
	Properties *NodeList
	MultiLine  bool
}

type PropertyAccessExpression struct {
	NodeBase
	Expression Node
	Name       *Identifier
}

type ElementAccessExpression struct {
	NodeBase
	Expression         Node
	ArgumentExpression Node
}

type CallExpression struct {
	NodeBase
	Expression    Node
	TypeArguments *NodeList
	Arguments     *NodeList
}

type NewExpression struct {
	NodeBase
	Expression    Node
	TypeArguments *NodeList
	// nil for "new Foo" without an argument list
	Arguments *NodeList
}

type TaggedTemplateExpression struct {
	NodeBase
	Tag           Node
	TypeArguments *NodeList
	Template      Node
}

type TypeAssertion struct {
	NodeBase
	Type       Node
	Expression Node
}

type ParenthesizedExpression struct {
	NodeBase
	Expression Node
}

type FunctionExpression struct {
	NodeBase
	Modifiers      *NodeList
	AsteriskToken  *TokenNode
	Name           *Identifier
	TypeParameters *NodeList
	Parameters     *NodeList
	Type           Node
	Body           *Block
}

type ArrowFunction struct {
	NodeBase
	Modifiers              *NodeList
	TypeParameters         *NodeList
	Parameters             *NodeList
	Type                   Node
	EqualsGreaterThanToken *TokenNode
	// Either a *Block or an expression
	Body Node
}

type DeleteExpression struct {
	NodeBase
	Expression Node
}

type TypeOfExpression struct {
	NodeBase
	Expression Node
}

type VoidExpression struct {
	NodeBase
	Expression Node
}

type AwaitExpression struct {
	NodeBase
	Expression Node
}

type PrefixUnaryExpression struct {
	NodeBase
	Operator Token
	Operand  Node
}

type PostfixUnaryExpression struct {
	NodeBase
	Operand  Node
	Operator Token
}

type BinaryExpression struct {
	NodeBase
	Left          Node
	OperatorToken *TokenNode
	Right         Node
}

type ConditionalExpression struct {
	NodeBase
	Condition     Node
	QuestionToken *TokenNode
	WhenTrue      Node
	ColonToken    *TokenNode
	WhenFalse     Node
}

type TemplateExpression struct {
	NodeBase
	Head          *TemplatePart
	TemplateSpans *NodeList
}

type TemplateSpan struct {
	NodeBase
	Expression Node
	Literal    *TemplatePart
}

type YieldExpression struct {
	NodeBase
	AsteriskToken *TokenNode
	Expression    Node
}

type SpreadElement struct {
	NodeBase
	Expression Node
}

type ClassExpression struct {
	NodeBase
	Decorators      *NodeList
	Modifiers       *NodeList
	Name            *Identifier
	TypeParameters  *NodeList
	HeritageClauses *NodeList
	Members         *NodeList
}

type OmittedExpression struct {
	NodeBase
}

type ExpressionWithTypeArguments struct {
	NodeBase
	Expression    Node
	TypeArguments *NodeList
}

type AsExpression struct {
	NodeBase
	Expression Node
	Type       Node
}

type NonNullExpression struct {
	NodeBase
	Expression Node
}

// MetaProperty is "new.target" or "import.meta".
type MetaProperty struct {
	NodeBase
	KeywordToken Token
	Name         *Identifier
}

// PartiallyEmittedExpression wraps an expression whose outer syntax (for
// example a type assertion) was erased but whose comments and source map
// positions should still be attributed to the original range.
type PartiallyEmittedExpression struct {
	NodeBase
	Expression Node
}

type CommaListExpression struct {
	NodeBase
	Elements *NodeList
}

////////////////////////////////////////////////////////////////////////////////
// Object literal members

type PropertyAssignment struct {
	NodeBase
	Name          Node
	QuestionToken *TokenNode
	Initializer   Node
}

type ShorthandPropertyAssignment struct {
	NodeBase
	Name                        *Identifier
	QuestionToken               *TokenNode
	EqualsToken                 *TokenNode
	ObjectAssignmentInitializer Node
}

type SpreadAssignment struct {
	NodeBase
	Expression Node
}

////////////////////////////////////////////////////////////////////////////////
// Statements

type Block struct {
	NodeBase
	Statements *NodeList
	MultiLine  bool
}

type VariableStatement struct {
	NodeBase
	Modifiers       *NodeList
	DeclarationList *VariableDeclarationList
}

type EmptyStatement struct {
	NodeBase
}

type ExpressionStatement struct {
	NodeBase
	Expression Node
}

type IfStatement struct {
	NodeBase
	Expression    Node
	ThenStatement Node
	ElseStatement Node
}

type DoStatement struct {
	NodeBase
	Statement  Node
	Expression Node
}

type WhileStatement struct {
	NodeBase
	Expression Node
	Statement  Node
}

type ForStatement struct {
	NodeBase
	Initializer Node
	Condition   Node
	Incrementor Node
	Statement   Node
}

type ForInStatement struct {
	NodeBase
	Initializer Node
	Expression  Node
	Statement   Node
}

type ForOfStatement struct {
	NodeBase
	AwaitModifier *TokenNode
	Initializer   Node
	Expression    Node
	Statement     Node
}

type ContinueStatement struct {
	NodeBase
	Label *Identifier
}

type BreakStatement struct {
	NodeBase
	Label *Identifier
}

type ReturnStatement struct {
	NodeBase
	Expression Node
}

type WithStatement struct {
	NodeBase
	Expression Node
	Statement  Node
}

type SwitchStatement struct {
	NodeBase
	Expression Node
	CaseBlock  *CaseBlock
}

type LabeledStatement struct {
	NodeBase
	Label     *Identifier
	Statement Node
}

type ThrowStatement struct {
	NodeBase
	Expression Node
}

type TryStatement struct {
	NodeBase
	TryBlock     *Block
	CatchClause  *CatchClause
	FinallyBlock *Block
}

type DebuggerStatement struct {
	NodeBase
}

// NotEmittedStatement stands in for a statement that was removed by a
// transformation. Only its comments are printed.
type NotEmittedStatement struct {
	NodeBase
}

////////////////////////////////////////////////////////////////////////////////
// Declarations

type VariableDeclaration struct {
	NodeBase
	Name             Node
	ExclamationToken *TokenNode
	Type             Node
	Initializer      Node
}

type VariableDeclarationList struct {
	NodeBase
	Declarations *NodeList
}

type FunctionDeclaration struct {
	NodeBase
	Decorators     *NodeList
	Modifiers      *NodeList
	AsteriskToken  *TokenNode
	Name           *Identifier
	TypeParameters *NodeList
	Parameters     *NodeList
	Type           Node
	Body           *Block
}

type ClassDeclaration struct {
	NodeBase
	Decorators      *NodeList
	Modifiers       *NodeList
	Name            *Identifier
	TypeParameters  *NodeList
	HeritageClauses *NodeList
	Members         *NodeList
}

type InterfaceDeclaration struct {
	NodeBase
	Decorators      *NodeList
	Modifiers       *NodeList
	Name            *Identifier
	TypeParameters  *NodeList
	HeritageClauses *NodeList
	Members         *NodeList
}

type TypeAliasDeclaration struct {
	NodeBase
	Decorators     *NodeList
	Modifiers      *NodeList
	Name           *Identifier
	TypeParameters *NodeList
	Type           Node
}

type EnumDeclaration struct {
	NodeBase
	Decorators *NodeList
	Modifiers  *NodeList
	Name       *Identifier
	Members    *NodeList

	// Names bound inside the declaration, as computed by the binder
	Locals map[string]bool
}

type EnumMember struct {
	NodeBase
	Name        Node
	Initializer Node
}

type ModuleDeclaration struct {
	NodeBase
	Decorators *NodeList
	Modifiers  *NodeList
	// An identifier or a string literal
	Name Node
	// A *ModuleBlock, a nested *ModuleDeclaration, or nil
	Body Node

	// Names bound inside the declaration, as computed by the binder
	Locals map[string]bool
}

type ModuleBlock struct {
	NodeBase
	Statements *NodeList
}

type CaseBlock struct {
	NodeBase
	Clauses *NodeList
}

type NamespaceExportDeclaration struct {
	NodeBase
	Name *Identifier
}

type ImportEqualsDeclaration struct {
	NodeBase
	Decorators      *NodeList
	Modifiers       *NodeList
	Name            *Identifier
	ModuleReference Node
}

type ImportDeclaration struct {
	NodeBase
	Decorators      *NodeList
	Modifiers       *NodeList
	ImportClause    *ImportClause
	ModuleSpecifier Node
}

type ImportClause struct {
	NodeBase
	Name          *Identifier
	NamedBindings Node
}

type NamespaceImport struct {
	NodeBase
	Name *Identifier
}

type NamedImports struct {
	NodeBase
	Elements *NodeList
}

type ImportSpecifier struct {
	NodeBase
	PropertyName *Identifier
	Name         *Identifier
}

type ExportAssignment struct {
	NodeBase
	Decorators     *NodeList
	Modifiers      *NodeList
	IsExportEquals bool
	Expression     Node
}

type ExportDeclaration struct {
	NodeBase
	Decorators      *NodeList
	Modifiers       *NodeList
	ExportClause    *NamedExports
	ModuleSpecifier Node
}

type NamedExports struct {
	NodeBase
	Elements *NodeList
}

type ExportSpecifier struct {
	NodeBase
	PropertyName *Identifier
	Name         *Identifier
}

type ExternalModuleReference struct {
	NodeBase
	Expression Node
}

////////////////////////////////////////////////////////////////////////////////
// Clauses

type CaseClause struct {
	NodeBase
	Expression Node
	Statements *NodeList
}

type DefaultClause struct {
	NodeBase
	Statements *NodeList
}

type HeritageClause struct {
	NodeBase
	// TExtends or TImplements
	Token Token
	Types *NodeList
}

type CatchClause struct {
	NodeBase
	VariableDeclaration *VariableDeclaration
	Block               *Block
}

////////////////////////////////////////////////////////////////////////////////
// JSX

type JsxElement struct {
	NodeBase
	OpeningElement *JsxOpeningElement
	Children       *NodeList
	ClosingElement *JsxClosingElement
}

type JsxSelfClosingElement struct {
	NodeBase
	TagName       Node
	TypeArguments *NodeList
	Attributes    *JsxAttributes
}

type JsxOpeningElement struct {
	NodeBase
	TagName       Node
	TypeArguments *NodeList
	Attributes    *JsxAttributes
}

type JsxClosingElement struct {
	NodeBase
	TagName Node
}

type JsxFragment struct {
	NodeBase
	OpeningFragment *JsxOpeningFragment
	Children        *NodeList
	ClosingFragment *JsxClosingFragment
}

type JsxOpeningFragment struct {
	NodeBase
}

type JsxClosingFragment struct {
	NodeBase
}

type JsxAttributes struct {
	NodeBase
	Properties *NodeList
}

type JsxAttribute struct {
	NodeBase
	Name        *Identifier
	Initializer Node
}

type JsxSpreadAttribute struct {
	NodeBase
	Expression Node
}

type JsxExpression struct {
	NodeBase
	DotDotDotToken *TokenNode
	Expression     Node
}

////////////////////////////////////////////////////////////////////////////////
// Documentation comments

type JSDoc struct {
	NodeBase
	Comment string
	Tags    *NodeList
}

// JSDocTag is a tag with no structured payload ("@deprecated text").
type JSDocTag struct {
	NodeBase
	TagName *Identifier
	Comment string
}

// JSDocTypeTag covers "@type", "@this", "@enum", and "@returns".
type JSDocTypeTag struct {
	NodeBase
	TagName        *Identifier
	TypeExpression *JSDocTypeExpression
	Comment        string
}

// JSDocParameterTag covers "@param" and "@property".
type JSDocParameterTag struct {
	NodeBase
	TagName        *Identifier
	TypeExpression *JSDocTypeExpression
	Name           Node
	IsNameFirst    bool
	IsBracketed    bool
	Comment        string
}

type JSDocTemplateTag struct {
	NodeBase
	TagName        *Identifier
	Constraint     *JSDocTypeExpression
	TypeParameters *NodeList
	Comment        string
}

type JSDocAugmentsTag struct {
	NodeBase
	TagName *Identifier
	Class   Node
	Comment string
}

type JSDocTypeExpression struct {
	NodeBase
	Type Node
}

type JSDocAllType struct {
	NodeBase
}

type JSDocUnknownType struct {
	NodeBase
}

type JSDocNullableType struct {
	NodeBase
	Type Node
}

type JSDocNonNullableType struct {
	NodeBase
	Type Node
}

type JSDocOptionalType struct {
	NodeBase
	Type Node
}

type JSDocVariadicType struct {
	NodeBase
	Type Node
}

type JSDocFunctionType struct {
	NodeBase
	Parameters *NodeList
	Type       Node
}

////////////////////////////////////////////////////////////////////////////////

func (*Identifier) isNode()                  {}
func (*QualifiedName) isNode()               {}
func (*ComputedPropertyName) isNode()        {}
func (*TokenNode) isNode()                   {}
func (*NumericLiteral) isNode()              {}
func (*BigIntLiteral) isNode()               {}
func (*StringLiteral) isNode()               {}
func (*RegularExpressionLiteral) isNode()    {}
func (*TemplatePart) isNode()                {}
func (*JsxText) isNode()                     {}
func (*TypeParameter) isNode()               {}
func (*Parameter) isNode()                   {}
func (*Decorator) isNode()                   {}
func (*PropertySignature) isNode()           {}
func (*PropertyDeclaration) isNode()         {}
func (*MethodSignature) isNode()             {}
func (*MethodDeclaration) isNode()           {}
func (*Constructor) isNode()                 {}
func (*GetAccessor) isNode()                 {}
func (*SetAccessor) isNode()                 {}
func (*CallSignature) isNode()               {}
func (*ConstructSignature) isNode()          {}
func (*IndexSignature) isNode()              {}
func (*SemicolonClassElement) isNode()       {}
func (*TypePredicate) isNode()               {}
func (*TypeReference) isNode()               {}
func (*FunctionType) isNode()                {}
func (*ConstructorType) isNode()             {}
func (*TypeQuery) isNode()                   {}
func (*TypeLiteral) isNode()                 {}
func (*ArrayType) isNode()                   {}
func (*TupleType) isNode()                   {}
func (*OptionalType) isNode()                {}
func (*RestType) isNode()                    {}
func (*UnionType) isNode()                   {}
func (*IntersectionType) isNode()            {}
func (*ConditionalType) isNode()             {}
func (*InferType) isNode()                   {}
func (*ParenthesizedType) isNode()           {}
func (*ThisType) isNode()                    {}
func (*TypeOperator) isNode()                {}
func (*IndexedAccessType) isNode()           {}
func (*MappedType) isNode()                  {}
func (*LiteralType) isNode()                 {}
func (*ImportType) isNode()                  {}
func (*ObjectBindingPattern) isNode()        {}
func (*ArrayBindingPattern) isNode()         {}
func (*BindingElement) isNode()              {}
func (*ArrayLiteralExpression) isNode()      {}
func (*ObjectLiteralExpression) isNode()     {}
func (*PropertyAccessExpression) isNode()    {}
func (*ElementAccessExpression) isNode()     {}
func (*CallExpression) isNode()              {}
func (*NewExpression) isNode()               {}
func (*TaggedTemplateExpression) isNode()    {}
func (*TypeAssertion) isNode()               {}
func (*ParenthesizedExpression) isNode()     {}
func (*FunctionExpression) isNode()          {}
func (*ArrowFunction) isNode()               {}
func (*DeleteExpression) isNode()            {}
func (*TypeOfExpression) isNode()            {}
func (*VoidExpression) isNode()              {}
func (*AwaitExpression) isNode()             {}
func (*PrefixUnaryExpression) isNode()       {}
func (*PostfixUnaryExpression) isNode()      {}
func (*BinaryExpression) isNode()            {}
func (*ConditionalExpression) isNode()       {}
func (*TemplateExpression) isNode()          {}
func (*TemplateSpan) isNode()                {}
func (*YieldExpression) isNode()             {}
func (*SpreadElement) isNode()               {}
func (*ClassExpression) isNode()             {}
func (*OmittedExpression) isNode()           {}
func (*ExpressionWithTypeArguments) isNode() {}
func (*AsExpression) isNode()                {}
func (*NonNullExpression) isNode()           {}
func (*MetaProperty) isNode()                {}
func (*PartiallyEmittedExpression) isNode()  {}
func (*CommaListExpression) isNode()         {}
func (*PropertyAssignment) isNode()          {}
func (*ShorthandPropertyAssignment) isNode() {}
func (*SpreadAssignment) isNode()            {}
func (*Block) isNode()                       {}
func (*VariableStatement) isNode()           {}
func (*EmptyStatement) isNode()              {}
func (*ExpressionStatement) isNode()         {}
func (*IfStatement) isNode()                 {}
func (*DoStatement) isNode()                 {}
func (*WhileStatement) isNode()              {}
func (*ForStatement) isNode()                {}
func (*ForInStatement) isNode()              {}
func (*ForOfStatement) isNode()              {}
func (*ContinueStatement) isNode()           {}
func (*BreakStatement) isNode()              {}
func (*ReturnStatement) isNode()             {}
func (*WithStatement) isNode()               {}
func (*SwitchStatement) isNode()             {}
func (*LabeledStatement) isNode()            {}
func (*ThrowStatement) isNode()              {}
func (*TryStatement) isNode()                {}
func (*DebuggerStatement) isNode()           {}
func (*NotEmittedStatement) isNode()         {}
func (*VariableDeclaration) isNode()         {}
func (*VariableDeclarationList) isNode()     {}
func (*FunctionDeclaration) isNode()         {}
func (*ClassDeclaration) isNode()            {}
func (*InterfaceDeclaration) isNode()        {}
func (*TypeAliasDeclaration) isNode()        {}
func (*EnumDeclaration) isNode()             {}
func (*EnumMember) isNode()                  {}
func (*ModuleDeclaration) isNode()           {}
func (*ModuleBlock) isNode()                 {}
func (*CaseBlock) isNode()                   {}
func (*NamespaceExportDeclaration) isNode()  {}
func (*ImportEqualsDeclaration) isNode()     {}
func (*ImportDeclaration) isNode()           {}
func (*ImportClause) isNode()                {}
func (*NamespaceImport) isNode()             {}
func (*NamedImports) isNode()                {}
func (*ImportSpecifier) isNode()             {}
func (*ExportAssignment) isNode()            {}
func (*ExportDeclaration) isNode()           {}
func (*NamedExports) isNode()                {}
func (*ExportSpecifier) isNode()             {}
func (*ExternalModuleReference) isNode()     {}
func (*CaseClause) isNode()                  {}
func (*DefaultClause) isNode()               {}
func (*HeritageClause) isNode()              {}
func (*CatchClause) isNode()                 {}
func (*JsxElement) isNode()                  {}
func (*JsxSelfClosingElement) isNode()       {}
func (*JsxOpeningElement) isNode()           {}
func (*JsxClosingElement) isNode()           {}
func (*JsxFragment) isNode()                 {}
func (*JsxOpeningFragment) isNode()          {}
func (*JsxClosingFragment) isNode()          {}
func (*JsxAttributes) isNode()               {}
func (*JsxAttribute) isNode()                {}
func (*JsxSpreadAttribute) isNode()          {}
func (*JsxExpression) isNode()               {}
func (*JSDoc) isNode()                       {}
func (*JSDocTag) isNode()                    {}
func (*JSDocTypeTag) isNode()                {}
func (*JSDocParameterTag) isNode()           {}
func (*JSDocTemplateTag) isNode()            {}
func (*JSDocAugmentsTag) isNode()            {}
func (*JSDocTypeExpression) isNode()         {}
func (*JSDocAllType) isNode()                {}
func (*JSDocUnknownType) isNode()            {}
func (*JSDocNullableType) isNode()           {}
func (*JSDocNonNullableType) isNode()        {}
func (*JSDocOptionalType) isNode()           {}
func (*JSDocVariadicType) isNode()           {}
func (*JSDocFunctionType) isNode()           {}
func (*SourceFile) isNode()                  {}
func (*Bundle) isNode()                      {}
func (*UnparsedSource) isNode()              {}
