package astio

import "github.com/webcarrot/tsemit/internal/ast"

// Every node type that can appear in a document, keyed by its "kind" name
var nodeKinds = registerKinds(
	&ast.Identifier{},
	&ast.QualifiedName{},
	&ast.ComputedPropertyName{},
	&ast.TokenNode{},
	&ast.NumericLiteral{},
	&ast.BigIntLiteral{},
	&ast.StringLiteral{},
	&ast.RegularExpressionLiteral{},
	&ast.TemplatePart{},
	&ast.JsxText{},
	&ast.TypeParameter{},
	&ast.Parameter{},
	&ast.Decorator{},
	&ast.PropertySignature{},
	&ast.PropertyDeclaration{},
	&ast.MethodSignature{},
	&ast.MethodDeclaration{},
	&ast.Constructor{},
	&ast.GetAccessor{},
	&ast.SetAccessor{},
	&ast.CallSignature{},
	&ast.ConstructSignature{},
	&ast.IndexSignature{},
	&ast.SemicolonClassElement{},
	&ast.TypePredicate{},
	&ast.TypeReference{},
	&ast.FunctionType{},
	&ast.ConstructorType{},
	&ast.TypeQuery{},
	&ast.TypeLiteral{},
	&ast.ArrayType{},
	&ast.TupleType{},
	&ast.OptionalType{},
	&ast.RestType{},
	&ast.UnionType{},
	&ast.IntersectionType{},
	&ast.ConditionalType{},
	&ast.InferType{},
	&ast.ParenthesizedType{},
	&ast.ThisType{},
	&ast.TypeOperator{},
	&ast.IndexedAccessType{},
	&ast.MappedType{},
	&ast.LiteralType{},
	&ast.ImportType{},
	&ast.ObjectBindingPattern{},
	&ast.ArrayBindingPattern{},
	&ast.BindingElement{},
	&ast.ArrayLiteralExpression{},
	&ast.ObjectLiteralExpression{},
	&ast.PropertyAccessExpression{},
	&ast.ElementAccessExpression{},
	&ast.CallExpression{},
	&ast.NewExpression{},
	&ast.TaggedTemplateExpression{},
	&ast.TypeAssertion{},
	&ast.ParenthesizedExpression{},
	&ast.FunctionExpression{},
	&ast.ArrowFunction{},
	&ast.DeleteExpression{},
	&ast.TypeOfExpression{},
	&ast.VoidExpression{},
	&ast.AwaitExpression{},
	&ast.PrefixUnaryExpression{},
	&ast.PostfixUnaryExpression{},
	&ast.BinaryExpression{},
	&ast.ConditionalExpression{},
	&ast.TemplateExpression{},
	&ast.TemplateSpan{},
	&ast.YieldExpression{},
	&ast.SpreadElement{},
	&ast.ClassExpression{},
	&ast.OmittedExpression{},
	&ast.ExpressionWithTypeArguments{},
	&ast.AsExpression{},
	&ast.NonNullExpression{},
	&ast.MetaProperty{},
	&ast.PartiallyEmittedExpression{},
	&ast.CommaListExpression{},
	&ast.PropertyAssignment{},
	&ast.ShorthandPropertyAssignment{},
	&ast.SpreadAssignment{},
	&ast.Block{},
	&ast.VariableStatement{},
	&ast.EmptyStatement{},
	&ast.ExpressionStatement{},
	&ast.IfStatement{},
	&ast.DoStatement{},
	&ast.WhileStatement{},
	&ast.ForStatement{},
	&ast.ForInStatement{},
	&ast.ForOfStatement{},
	&ast.ContinueStatement{},
	&ast.BreakStatement{},
	&ast.ReturnStatement{},
	&ast.WithStatement{},
	&ast.SwitchStatement{},
	&ast.LabeledStatement{},
	&ast.ThrowStatement{},
	&ast.TryStatement{},
	&ast.DebuggerStatement{},
	&ast.NotEmittedStatement{},
	&ast.VariableDeclaration{},
	&ast.VariableDeclarationList{},
	&ast.FunctionDeclaration{},
	&ast.ClassDeclaration{},
	&ast.InterfaceDeclaration{},
	&ast.TypeAliasDeclaration{},
	&ast.EnumDeclaration{},
	&ast.EnumMember{},
	&ast.ModuleDeclaration{},
	&ast.ModuleBlock{},
	&ast.CaseBlock{},
	&ast.NamespaceExportDeclaration{},
	&ast.ImportEqualsDeclaration{},
	&ast.ImportDeclaration{},
	&ast.ImportClause{},
	&ast.NamespaceImport{},
	&ast.NamedImports{},
	&ast.ImportSpecifier{},
	&ast.ExportAssignment{},
	&ast.ExportDeclaration{},
	&ast.NamedExports{},
	&ast.ExportSpecifier{},
	&ast.ExternalModuleReference{},
	&ast.CaseClause{},
	&ast.DefaultClause{},
	&ast.HeritageClause{},
	&ast.CatchClause{},
	&ast.JsxElement{},
	&ast.JsxSelfClosingElement{},
	&ast.JsxOpeningElement{},
	&ast.JsxClosingElement{},
	&ast.JsxFragment{},
	&ast.JsxOpeningFragment{},
	&ast.JsxClosingFragment{},
	&ast.JsxAttributes{},
	&ast.JsxAttribute{},
	&ast.JsxSpreadAttribute{},
	&ast.JsxExpression{},
	&ast.JSDoc{},
	&ast.JSDocTag{},
	&ast.JSDocTypeTag{},
	&ast.JSDocParameterTag{},
	&ast.JSDocTemplateTag{},
	&ast.JSDocAugmentsTag{},
	&ast.JSDocTypeExpression{},
	&ast.JSDocAllType{},
	&ast.JSDocUnknownType{},
	&ast.JSDocNullableType{},
	&ast.JSDocNonNullableType{},
	&ast.JSDocOptionalType{},
	&ast.JSDocVariadicType{},
	&ast.JSDocFunctionType{},
)
