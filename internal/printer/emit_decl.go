package printer

import (
	"strings"

	"github.com/webcarrot/tsemit/internal/ast"
)

// emitUnspecified prints every node that is not an expression. It returns
// false when the node belongs to the expression switch.
func (p *Printer) emitUnspecified(node ast.Node) bool {
	if token, ok := node.(*ast.TokenNode); ok && token.Token.IsKeyword() {
		p.writeTokenNode(token, p.writeKeyword)
		return true
	}

	if p.emitStatement(node) {
		return true
	}

	switch n := node.(type) {
	// Pseudo-literals
	case *ast.TemplatePart:
		if n.Part == ast.TemplateNoSubstitution {
			return false
		}
		p.emitLiteral(n)

	case *ast.UnparsedSource:
		p.writer.RawWrite(n.Text)

	// Names
	case *ast.Identifier:
		p.emitIdentifier(n)
	case *ast.QualifiedName:
		p.emitEntityName(n.Left)
		p.writePunctuation(".")
		p.emitOptionalIdentifier(n.Right)
	case *ast.ComputedPropertyName:
		p.writePunctuation("[")
		p.emitExpression(n.Expression)
		p.writePunctuation("]")

	// Signature elements
	case *ast.TypeParameter:
		p.emitOptionalIdentifier(n.Name)
		if n.Constraint != nil {
			p.writeSpace()
			p.writeKeyword("extends")
			p.writeSpace()
			p.emit(n.Constraint)
		}
		if n.Default != nil {
			p.writeSpace()
			p.writeOperator("=")
			p.writeSpace()
			p.emit(n.Default)
		}
	case *ast.Parameter:
		p.emitParameter(n)
	case *ast.Decorator:
		p.writePunctuation("@")
		p.emitExpression(n.Expression)

	// Type members
	case *ast.PropertySignature:
		p.emitModifiers(n, n.Modifiers)
		p.emitNodeWithWriter(n.Name, p.writeProperty)
		p.emitToken(n.QuestionToken)
		p.emitTypeAnnotation(n.Type)
		p.writeTrailingSemicolon()
	case *ast.PropertyDeclaration:
		p.emitDecorators(n, n.Decorators)
		p.emitModifiers(n, n.Modifiers)
		p.emit(n.Name)
		p.emitToken(n.QuestionToken)
		p.emitToken(n.ExclamationToken)
		p.emitTypeAnnotation(n.Type)
		equalPos := endOf(n.Name, -1)
		if n.Type != nil {
			equalPos = rangeOf(n.Type).End
		} else if n.QuestionToken != nil {
			equalPos = n.QuestionToken.End
		}
		p.emitInitializer(n.Initializer, equalPos, n)
		p.writeTrailingSemicolon()
	case *ast.MethodSignature:
		p.names.PushScope(n)
		p.emitModifiers(n, n.Modifiers)
		p.emit(n.Name)
		p.emitToken(n.QuestionToken)
		p.emitSignatureHead(n, n.TypeParameters, n.Parameters, n.Type)
		p.writeTrailingSemicolon()
		p.names.PopScope(n)
	case *ast.MethodDeclaration:
		p.emitDecorators(n, n.Decorators)
		p.emitModifiers(n, n.Modifiers)
		p.emitToken(n.AsteriskToken)
		p.emit(n.Name)
		p.emitToken(n.QuestionToken)
		p.emitSignatureAndBody(n, n.Parameters, blockOrNil(n.Body), func() {
			p.emitSignatureHead(n, n.TypeParameters, n.Parameters, n.Type)
		})
	case *ast.Constructor:
		p.emitModifiers(n, n.Modifiers)
		p.writeKeyword("constructor")
		p.emitSignatureAndBody(n, n.Parameters, blockOrNil(n.Body), func() {
			p.emitSignatureHead(n, n.TypeParameters, n.Parameters, n.Type)
		})
	case *ast.GetAccessor:
		p.emitDecorators(n, n.Decorators)
		p.emitModifiers(n, n.Modifiers)
		p.writeKeyword("get")
		p.writeSpace()
		p.emit(n.Name)
		p.emitSignatureAndBody(n, n.Parameters, blockOrNil(n.Body), func() {
			p.emitSignatureHead(n, n.TypeParameters, n.Parameters, n.Type)
		})
	case *ast.SetAccessor:
		p.emitDecorators(n, n.Decorators)
		p.emitModifiers(n, n.Modifiers)
		p.writeKeyword("set")
		p.writeSpace()
		p.emit(n.Name)
		p.emitSignatureAndBody(n, n.Parameters, blockOrNil(n.Body), func() {
			p.emitSignatureHead(n, n.TypeParameters, n.Parameters, n.Type)
		})
	case *ast.CallSignature:
		p.names.PushScope(n)
		p.emitSignatureHead(n, n.TypeParameters, n.Parameters, n.Type)
		p.writeTrailingSemicolon()
		p.names.PopScope(n)
	case *ast.ConstructSignature:
		p.names.PushScope(n)
		p.writeKeyword("new")
		p.writeSpace()
		p.emitSignatureHead(n, n.TypeParameters, n.Parameters, n.Type)
		p.writeTrailingSemicolon()
		p.names.PopScope(n)
	case *ast.IndexSignature:
		p.emitDecorators(n, n.Decorators)
		p.emitModifiers(n, n.Modifiers)
		p.emitList(n, n.Parameters, ast.IndexSignatureParameters)
		p.emitTypeAnnotation(n.Type)
		p.writeTrailingSemicolon()
	case *ast.SemicolonClassElement:
		p.writeTrailingSemicolon()

	// Types
	case *ast.TypePredicate:
		p.emit(n.ParameterName)
		p.writeSpace()
		p.writeKeyword("is")
		p.writeSpace()
		p.emit(n.Type)
	case *ast.TypeReference:
		p.emit(n.TypeName)
		p.emitTypeArguments(n, n.TypeArguments)
	case *ast.FunctionType:
		p.names.PushScope(n)
		p.emitTypeParameters(n, n.TypeParameters)
		p.emitParametersForArrow(n, n.Parameters)
		p.writeSpace()
		p.writePunctuation("=>")
		p.writeSpace()
		p.emit(n.Type)
		p.names.PopScope(n)
	case *ast.ConstructorType:
		p.names.PushScope(n)
		p.writeKeyword("new")
		p.writeSpace()
		p.emitTypeParameters(n, n.TypeParameters)
		p.emitParameters(n, n.Parameters)
		p.writeSpace()
		p.writePunctuation("=>")
		p.writeSpace()
		p.emit(n.Type)
		p.names.PopScope(n)
	case *ast.TypeQuery:
		p.writeKeyword("typeof")
		p.writeSpace()
		p.emit(n.ExprName)
	case *ast.TypeLiteral:
		p.writePunctuation("{")
		format := ast.MultiLineTypeLiteralMembers
		if ast.GetEmitFlags(n)&ast.EmitFlagsSingleLine != 0 {
			format = ast.SingleLineTypeLiteralMembers
		}
		p.emitList(n, n.Members, format|ast.NoSpaceIfEmpty)
		p.writePunctuation("}")
	case *ast.ArrayType:
		p.emit(n.ElementType)
		p.writePunctuation("[")
		p.writePunctuation("]")
	case *ast.TupleType:
		p.writePunctuation("[")
		p.emitList(n, n.ElementTypes, ast.TupleTypeElements)
		p.writePunctuation("]")
	case *ast.OptionalType:
		p.emit(n.Type)
		p.writePunctuation("?")
	case *ast.RestType:
		p.writePunctuation("...")
		p.emit(n.Type)
	case *ast.UnionType:
		p.emitList(n, n.Types, ast.UnionTypeConstituents)
	case *ast.IntersectionType:
		p.emitList(n, n.Types, ast.IntersectionTypeConstituents)
	case *ast.ConditionalType:
		p.emit(n.CheckType)
		p.writeSpace()
		p.writeKeyword("extends")
		p.writeSpace()
		p.emit(n.ExtendsType)
		p.writeSpace()
		p.writePunctuation("?")
		p.writeSpace()
		p.emit(n.TrueType)
		p.writeSpace()
		p.writePunctuation(":")
		p.writeSpace()
		p.emit(n.FalseType)
	case *ast.InferType:
		p.writeKeyword("infer")
		p.writeSpace()
		if n.TypeParameter != nil {
			p.emit(n.TypeParameter)
		}
	case *ast.ParenthesizedType:
		p.writePunctuation("(")
		p.emit(n.Type)
		p.writePunctuation(")")
	case *ast.ThisType:
		p.writeKeyword("this")
	case *ast.TypeOperator:
		writeTokenText(n.Operator, p.writeKeyword, -1)
		p.writeSpace()
		p.emit(n.Type)
	case *ast.IndexedAccessType:
		p.emit(n.ObjectType)
		p.writePunctuation("[")
		p.emit(n.IndexType)
		p.writePunctuation("]")
	case *ast.MappedType:
		p.emitMappedType(n)
	case *ast.LiteralType:
		p.emitExpression(n.Literal)
	case *ast.ImportType:
		if n.IsTypeOf {
			p.writeKeyword("typeof")
			p.writeSpace()
		}
		p.writeKeyword("import")
		p.writePunctuation("(")
		p.emit(n.Argument)
		p.writePunctuation(")")
		if n.Qualifier != nil {
			p.writePunctuation(".")
			p.emit(n.Qualifier)
		}
		p.emitTypeArguments(n, n.TypeArguments)
	case *ast.JSDocAllType:
		p.writePunctuation("*")
	case *ast.JSDocUnknownType:
		p.writePunctuation("?")
	case *ast.JSDocNullableType:
		p.writePunctuation("?")
		p.emit(n.Type)
	case *ast.JSDocNonNullableType:
		p.writePunctuation("!")
		p.emit(n.Type)
	case *ast.JSDocOptionalType:
		p.emit(n.Type)
		p.writePunctuation("=")
	case *ast.JSDocVariadicType:
		p.writePunctuation("...")
		p.emit(n.Type)
	case *ast.JSDocFunctionType:
		p.writeKeyword("function")
		p.emitParameters(n, n.Parameters)
		p.writePunctuation(":")
		p.emit(n.Type)

	// Binding patterns
	case *ast.ObjectBindingPattern:
		p.writePunctuation("{")
		p.emitList(n, n.Elements, ast.ObjectBindingPatternElements)
		p.writePunctuation("}")
	case *ast.ArrayBindingPattern:
		p.writePunctuation("[")
		p.emitList(n, n.Elements, ast.ArrayBindingPatternElements)
		p.writePunctuation("]")
	case *ast.BindingElement:
		p.emitToken(n.DotDotDotToken)
		if n.PropertyName != nil {
			p.emit(n.PropertyName)
			p.writePunctuation(":")
			p.writeSpace()
		}
		p.emit(n.Name)
		p.emitInitializer(n.Initializer, endOf(n.Name, -1), n)

	// Misc
	case *ast.TemplateSpan:
		p.emitExpression(n.Expression)
		if n.Literal != nil {
			p.emit(n.Literal)
		}

	// Declarations
	case *ast.VariableDeclaration:
		p.emit(n.Name)
		p.emitToken(n.ExclamationToken)
		p.emitTypeAnnotation(n.Type)
		equalPos := endOf(n.Name, -1)
		if n.Type != nil {
			equalPos = rangeOf(n.Type).End
		}
		p.emitInitializer(n.Initializer, equalPos, n)
	case *ast.VariableDeclarationList:
		switch {
		case n.Flags&ast.NodeFlagsLet != 0:
			p.writeKeyword("let")
		case n.Flags&ast.NodeFlagsConst != 0:
			p.writeKeyword("const")
		default:
			p.writeKeyword("var")
		}
		p.writeSpace()
		p.emitList(n, n.Declarations, ast.VariableDeclarationListFormat)
	case *ast.FunctionDeclaration:
		p.emitFunctionDeclarationOrExpression(n, functionParts{
			decorators:     n.Decorators,
			modifiers:      n.Modifiers,
			asteriskToken:  n.AsteriskToken,
			name:           n.Name,
			typeParameters: n.TypeParameters,
			parameters:     n.Parameters,
			typ:            n.Type,
			body:           blockOrNil(n.Body),
		})
	case *ast.ClassDeclaration:
		p.emitClassDeclarationOrExpression(n, n.Decorators, n.Modifiers, n.Name, n.TypeParameters, n.HeritageClauses, n.Members)
	case *ast.InterfaceDeclaration:
		p.emitDecorators(n, n.Decorators)
		p.emitModifiers(n, n.Modifiers)
		p.writeKeyword("interface")
		p.writeSpace()
		p.emitOptionalIdentifier(n.Name)
		p.emitTypeParameters(n, n.TypeParameters)
		p.emitList(n, n.HeritageClauses, ast.HeritageClauses)
		p.writeSpace()
		p.writePunctuation("{")
		p.emitList(n, n.Members, ast.InterfaceMembers)
		p.writePunctuation("}")
	case *ast.TypeAliasDeclaration:
		p.emitDecorators(n, n.Decorators)
		p.emitModifiers(n, n.Modifiers)
		p.writeKeyword("type")
		p.writeSpace()
		p.emitOptionalIdentifier(n.Name)
		p.emitTypeParameters(n, n.TypeParameters)
		p.writeSpace()
		p.writePunctuation("=")
		p.writeSpace()
		p.emit(n.Type)
		p.writeTrailingSemicolon()
	case *ast.EnumDeclaration:
		p.emitModifiers(n, n.Modifiers)
		p.writeKeyword("enum")
		p.writeSpace()
		p.emitOptionalIdentifier(n.Name)
		p.writeSpace()
		p.writePunctuation("{")
		p.emitList(n, n.Members, ast.EnumMembers)
		p.writePunctuation("}")
	case *ast.ModuleDeclaration:
		p.emitModuleDeclaration(n)
	case *ast.ModuleBlock:
		p.names.PushScope(n)
		if n.Statements != nil {
			for _, statement := range n.Statements.Nodes {
				p.names.GenerateNames(statement)
			}
		}
		p.emitBlockStatements(n, n.Statements, p.isEmptyBlock(n, n.Statements))
		p.names.PopScope(n)
	case *ast.CaseBlock:
		p.emitTokenWithComment(ast.TOpenBrace, n.Pos, p.writePunctuation, n, false)
		p.emitList(n, n.Clauses, ast.CaseBlockClauses)
		p.emitTokenWithComment(ast.TCloseBrace, listRange(n.Clauses, n.TextRange).End, p.writePunctuation, n, true)
	case *ast.NamespaceExportDeclaration:
		nextPos := p.emitTokenWithComment(ast.TExport, n.Pos, p.writeKeyword, n, false)
		p.writeSpace()
		nextPos = p.emitTokenWithComment(ast.TAs, nextPos, p.writeKeyword, n, false)
		p.writeSpace()
		p.emitTokenWithComment(ast.TNamespace, nextPos, p.writeKeyword, n, false)
		p.writeSpace()
		p.emitOptionalIdentifier(n.Name)
		p.writeTrailingSemicolon()
	case *ast.ImportEqualsDeclaration:
		p.emitModifiers(n, n.Modifiers)
		p.emitTokenWithComment(ast.TImport, p.modifiersEndOrPos(n, n.Modifiers), p.writeKeyword, n, false)
		p.writeSpace()
		p.emitOptionalIdentifier(n.Name)
		p.writeSpace()
		equalPos := -1
		if n.Name != nil {
			equalPos = n.Name.End
		}
		p.emitTokenWithComment(ast.TEquals, equalPos, p.writePunctuation, n, false)
		p.writeSpace()
		p.emitEntityName(n.ModuleReference)
		p.writeTrailingSemicolon()
	case *ast.ImportDeclaration:
		p.emitModifiers(n, n.Modifiers)
		p.emitTokenWithComment(ast.TImport, p.modifiersEndOrPos(n, n.Modifiers), p.writeKeyword, n, false)
		p.writeSpace()
		if n.ImportClause != nil {
			p.emit(n.ImportClause)
			p.writeSpace()
			p.emitTokenWithComment(ast.TFrom, n.ImportClause.End, p.writeKeyword, n, false)
			p.writeSpace()
		}
		p.emitExpression(n.ModuleSpecifier)
		p.writeTrailingSemicolon()
	case *ast.ImportClause:
		p.emitOptionalIdentifier(n.Name)
		if n.Name != nil && n.NamedBindings != nil {
			p.emitTokenWithComment(ast.TComma, n.Name.End, p.writePunctuation, n, false)
			p.writeSpace()
		}
		p.emit(n.NamedBindings)
	case *ast.NamespaceImport:
		asPos := p.emitTokenWithComment(ast.TAsterisk, n.Pos, p.writePunctuation, n, false)
		p.writeSpace()
		p.emitTokenWithComment(ast.TAs, asPos, p.writeKeyword, n, false)
		p.writeSpace()
		p.emitOptionalIdentifier(n.Name)
	case *ast.NamedImports:
		p.writePunctuation("{")
		p.emitList(n, n.Elements, ast.NamedImportsOrExportsElements)
		p.writePunctuation("}")
	case *ast.ImportSpecifier:
		p.emitImportOrExportSpecifier(n, n.PropertyName, n.Name)
	case *ast.ExportAssignment:
		nextPos := p.emitTokenWithComment(ast.TExport, n.Pos, p.writeKeyword, n, false)
		p.writeSpace()
		if n.IsExportEquals {
			p.emitTokenWithComment(ast.TEquals, nextPos, p.writeOperator, n, false)
		} else {
			p.emitTokenWithComment(ast.TDefault, nextPos, p.writeKeyword, n, false)
		}
		p.writeSpace()
		p.emitExpression(n.Expression)
		p.writeTrailingSemicolon()
	case *ast.ExportDeclaration:
		nextPos := p.emitTokenWithComment(ast.TExport, n.Pos, p.writeKeyword, n, false)
		p.writeSpace()
		if n.ExportClause != nil {
			p.emit(n.ExportClause)
		} else {
			nextPos = p.emitTokenWithComment(ast.TAsterisk, nextPos, p.writePunctuation, n, false)
		}
		if n.ModuleSpecifier != nil {
			p.writeSpace()
			fromPos := nextPos
			if n.ExportClause != nil {
				fromPos = n.ExportClause.End
			}
			p.emitTokenWithComment(ast.TFrom, fromPos, p.writeKeyword, n, false)
			p.writeSpace()
			p.emitExpression(n.ModuleSpecifier)
		}
		p.writeTrailingSemicolon()
	case *ast.NamedExports:
		p.writePunctuation("{")
		p.emitList(n, n.Elements, ast.NamedImportsOrExportsElements)
		p.writePunctuation("}")
	case *ast.ExportSpecifier:
		p.emitImportOrExportSpecifier(n, n.PropertyName, n.Name)

	// Module references
	case *ast.ExternalModuleReference:
		p.writeKeyword("require")
		p.writePunctuation("(")
		p.emitExpression(n.Expression)
		p.writePunctuation(")")

	// JSX (non-expression)
	case *ast.JsxText:
		p.emitJsxText(n)
	case *ast.JsxOpeningElement:
		p.writePunctuation("<")
		p.emitJsxTagName(n.TagName)
		p.emitTypeArguments(n, n.TypeArguments)
		if n.Attributes != nil {
			if n.Attributes.Properties.Len() > 0 {
				p.writeSpace()
			}
			p.emit(n.Attributes)
		}
		p.writePunctuation(">")
	case *ast.JsxOpeningFragment:
		p.writePunctuation("<")
		p.writePunctuation(">")
	case *ast.JsxClosingElement:
		p.writePunctuation("</")
		p.emitJsxTagName(n.TagName)
		p.writePunctuation(">")
	case *ast.JsxClosingFragment:
		p.writePunctuation("</")
		p.writePunctuation(">")
	case *ast.JsxAttribute:
		p.emitOptionalIdentifier(n.Name)
		if n.Initializer != nil {
			p.writePunctuation("=")
			p.emit(n.Initializer)
		}
	case *ast.JsxAttributes:
		p.emitList(n, n.Properties, ast.JsxElementAttributes)
	case *ast.JsxSpreadAttribute:
		p.writePunctuation("{...")
		p.emitExpression(n.Expression)
		p.writePunctuation("}")
	case *ast.JsxExpression:
		if n.Expression != nil {
			p.writePunctuation("{")
			p.emitToken(n.DotDotDotToken)
			p.emitExpression(n.Expression)
			p.writePunctuation("}")
		}

	// Clauses
	case *ast.CaseClause:
		p.emitTokenWithComment(ast.TCase, n.Pos, p.writeKeyword, n, false)
		p.writeSpace()
		p.emitExpression(n.Expression)
		p.emitCaseOrDefaultClauseRest(n, n.Statements, endOf(n.Expression, -1))
	case *ast.DefaultClause:
		pos := p.emitTokenWithComment(ast.TDefault, n.Pos, p.writeKeyword, n, false)
		p.emitCaseOrDefaultClauseRest(n, n.Statements, pos)
	case *ast.HeritageClause:
		p.writeSpace()
		writeTokenText(n.Token, p.writeKeyword, -1)
		p.writeSpace()
		p.emitList(n, n.Types, ast.HeritageClauseTypes)
	case *ast.CatchClause:
		openParenPos := p.emitTokenWithComment(ast.TCatch, n.Pos, p.writeKeyword, n, false)
		p.writeSpace()
		if n.VariableDeclaration != nil {
			p.emitTokenWithComment(ast.TOpenParen, openParenPos, p.writePunctuation, n, false)
			p.emit(n.VariableDeclaration)
			p.emitTokenWithComment(ast.TCloseParen, n.VariableDeclaration.End, p.writePunctuation, n, false)
			p.writeSpace()
		}
		if n.Block != nil {
			p.emit(n.Block)
		}

	// Property assignments
	case *ast.PropertyAssignment:
		p.emit(n.Name)
		p.writePunctuation(":")
		p.writeSpace()

		// A comment between the colon and the initializer belongs to the
		// name, so it would otherwise be lost:
		//
		//   { id: /*comment*/ () => void 0 }
		//
		if n.Initializer != nil && ast.GetEmitFlags(n.Initializer)&ast.EmitFlagsNoLeadingComments == 0 {
			p.comments.EmitTrailingCommentsOfPosition(ast.GetCommentRange(n.Initializer).Pos, false)
		}
		p.emitExpression(n.Initializer)
	case *ast.ShorthandPropertyAssignment:
		p.emitOptionalIdentifier(n.Name)
		if n.ObjectAssignmentInitializer != nil {
			p.writeSpace()
			p.writePunctuation("=")
			p.writeSpace()
			p.emitExpression(n.ObjectAssignmentInitializer)
		}
	case *ast.SpreadAssignment:
		if n.Expression != nil {
			p.emitTokenWithComment(ast.TDotDotDot, n.Pos, p.writePunctuation, n, false)
			p.emitExpression(n.Expression)
		}

	// Enum
	case *ast.EnumMember:
		p.emit(n.Name)
		p.emitInitializer(n.Initializer, endOf(n.Name, -1), n)

	// JSDoc
	case *ast.JSDoc:
		p.emitJSDoc(n)
	case *ast.JSDocTypeTag:
		p.emitJSDocTagName(n.TagName)
		p.emitJSDocTypeExpression(n.TypeExpression)
		p.emitJSDocComment(n.Comment)
	case *ast.JSDocParameterTag:
		p.emitJSDocTagName(n.TagName)
		p.emitJSDocTypeExpression(n.TypeExpression)
		p.writeSpace()
		if n.IsBracketed {
			p.writePunctuation("[")
		}
		p.emit(n.Name)
		if n.IsBracketed {
			p.writePunctuation("]")
		}
		p.emitJSDocComment(n.Comment)
	case *ast.JSDocTemplateTag:
		p.emitJSDocTagName(n.TagName)
		p.emitJSDocTypeExpression(n.Constraint)
		p.writeSpace()
		p.emitList(n, n.TypeParameters, ast.CommaListElements)
		p.emitJSDocComment(n.Comment)
	case *ast.JSDocAugmentsTag:
		p.emitJSDocTagName(n.TagName)
		p.writeSpace()
		p.writePunctuation("{")
		p.emit(n.Class)
		p.writePunctuation("}")
		p.emitJSDocComment(n.Comment)
	case *ast.JSDocTag:
		p.emitJSDocTagName(n.TagName)
		p.emitJSDocComment(n.Comment)
	case *ast.JSDocTypeExpression:
		p.writePunctuation("{")
		p.emit(n.Type)
		p.writePunctuation("}")

	default:
		return false
	}
	return true
}

func (p *Printer) modifiersEndOrPos(node ast.Node, modifiers *ast.NodeList) int {
	if modifiers != nil {
		return modifiers.End
	}
	return rangeOf(node).Pos
}

////////////////////////////////////////////////////////////////////////////////
// Signature elements

func (p *Printer) emitParameter(n *ast.Parameter) {
	p.emitDecorators(n, n.Decorators)
	p.emitModifiers(n, n.Modifiers)
	p.emitToken(n.DotDotDotToken)
	p.emitNodeWithWriter(n.Name, p.writeParameter)
	p.emitToken(n.QuestionToken)

	// Parameters of a JSDoc function type may be a bare type
	if n.Name == nil && n.Type != nil {
		p.emit(n.Type)
	} else {
		p.emitTypeAnnotation(n.Type)
	}

	// The parser can produce a parameter with nothing but an initializer, so
	// the position of "=" falls back through every part that may be present
	equalPos := n.Pos
	switch {
	case n.Type != nil:
		equalPos = rangeOf(n.Type).End
	case n.QuestionToken != nil:
		equalPos = n.QuestionToken.End
	case n.Name != nil:
		equalPos = rangeOf(n.Name).End
	case n.Modifiers != nil:
		equalPos = n.Modifiers.End
	case n.Decorators != nil:
		equalPos = n.Decorators.End
	}
	p.emitInitializer(n.Initializer, equalPos, n)
}

func (p *Printer) emitMappedTypeParameter(n *ast.TypeParameter) {
	p.emitOptionalIdentifier(n.Name)
	p.writeSpace()
	p.writeKeyword("in")
	p.writeSpace()
	p.emit(n.Constraint)
}

func (p *Printer) emitMappedType(n *ast.MappedType) {
	singleLine := ast.GetEmitFlags(n)&ast.EmitFlagsSingleLine != 0
	p.writePunctuation("{")
	if singleLine {
		p.writeSpace()
	} else {
		p.writeLine()
		p.increaseIndent()
	}

	// "+readonly" and "-readonly" store only the sign
	if n.ReadonlyToken != nil {
		p.emit(n.ReadonlyToken)
		if n.ReadonlyToken.Token != ast.TReadonly {
			p.writeKeyword("readonly")
		}
		p.writeSpace()
	}

	p.writePunctuation("[")
	if n.TypeParameter != nil {
		p.runPipeline(0, HintMappedTypeParameter, n.TypeParameter)
	}
	p.writePunctuation("]")

	if n.QuestionToken != nil {
		p.emit(n.QuestionToken)
		if n.QuestionToken.Token != ast.TQuestion {
			p.writePunctuation("?")
		}
	}
	p.writePunctuation(":")
	p.writeSpace()
	p.emit(n.Type)
	p.writeTrailingSemicolon()

	if singleLine {
		p.writeSpace()
	} else {
		p.writeLine()
		p.decreaseIndent()
	}
	p.writePunctuation("}")
}

////////////////////////////////////////////////////////////////////////////////
// Declarations

func (p *Printer) emitClassDeclarationOrExpression(node ast.Node, decorators *ast.NodeList, modifiers *ast.NodeList,
	name *ast.Identifier, typeParameters *ast.NodeList, heritageClauses *ast.NodeList, members *ast.NodeList) {
	if members != nil {
		for _, member := range members.Nodes {
			p.names.GenerateMemberNames(member)
		}
	}

	p.emitDecorators(node, decorators)
	p.emitModifiers(node, modifiers)
	p.writeKeyword("class")
	if name != nil {
		p.writeSpace()
		p.emitIdentifierName(name)
	}

	indentedFlag := ast.GetEmitFlags(node)&ast.EmitFlagsIndented != 0
	if indentedFlag {
		p.increaseIndent()
	}

	p.emitTypeParameters(node, typeParameters)
	p.emitList(node, heritageClauses, ast.ClassHeritageClauses)

	p.writeSpace()
	p.writePunctuation("{")
	p.emitList(node, members, ast.ClassMembers)
	p.writePunctuation("}")

	if indentedFlag {
		p.decreaseIndent()
	}
}

func (p *Printer) emitModuleDeclaration(n *ast.ModuleDeclaration) {
	p.emitModifiers(n, n.Modifiers)
	if n.Flags&ast.NodeFlagsGlobalAugmentation == 0 {
		if n.Flags&ast.NodeFlagsNamespace != 0 {
			p.writeKeyword("namespace")
		} else {
			p.writeKeyword("module")
		}
		p.writeSpace()
	}
	p.emit(n.Name)

	body := n.Body
	if body == nil {
		p.writeTrailingSemicolon()
		return
	}

	// "namespace a.b.c" is a chain of nested declarations
	for {
		nested, ok := body.(*ast.ModuleDeclaration)
		if !ok {
			break
		}
		p.writePunctuation(".")
		p.emit(nested.Name)
		body = nested.Body
		if body == nil {
			p.writeTrailingSemicolon()
			return
		}
	}

	p.writeSpace()
	p.emit(body)
}

func (p *Printer) emitImportOrExportSpecifier(node ast.Node, propertyName *ast.Identifier, name *ast.Identifier) {
	if propertyName != nil {
		p.emit(propertyName)
		p.writeSpace()
		p.emitTokenWithComment(ast.TAs, propertyName.End, p.writeKeyword, node, false)
		p.writeSpace()
	}
	p.emitOptionalIdentifier(name)
}

////////////////////////////////////////////////////////////////////////////////
// JSX

func (p *Printer) emitJsxElement(n *ast.JsxElement) {
	if n.OpeningElement != nil {
		p.emit(n.OpeningElement)
	}
	p.emitList(n, n.Children, ast.JsxElementOrFragmentChildren)
	if n.ClosingElement != nil {
		p.emit(n.ClosingElement)
	}
}

func (p *Printer) emitJsxSelfClosingElement(n *ast.JsxSelfClosingElement) {
	p.writePunctuation("<")
	p.emitJsxTagName(n.TagName)
	p.emitTypeArguments(n, n.TypeArguments)
	p.writeSpace()
	if n.Attributes != nil {
		p.emit(n.Attributes)
	}
	p.writePunctuation("/>")
}

func (p *Printer) emitJsxFragment(n *ast.JsxFragment) {
	if n.OpeningFragment != nil {
		p.emit(n.OpeningFragment)
	}
	p.emitList(n, n.Children, ast.JsxElementOrFragmentChildren)
	if n.ClosingFragment != nil {
		p.emit(n.ClosingFragment)
	}
}

// JSX text is whitespace sensitive so the source text is kept with its
// trivia.
func (p *Printer) emitJsxText(n *ast.JsxText) {
	text := n.Text
	if p.currentSourceFile != nil && !ast.IsSynthesized(n) && n.End <= len(p.currentSourceFile.Text) && n.Pos <= n.End {
		text = p.currentSourceFile.Text[n.Pos:n.End]
	}
	p.writeLiteral(text)
}

func (p *Printer) emitJsxTagName(node ast.Node) {
	p.emitEntityName(node)
}

////////////////////////////////////////////////////////////////////////////////
// Clauses

func (p *Printer) emitCaseOrDefaultClauseRest(parent ast.Node, statements *ast.NodeList, colonPos int) {
	emitAsSingleStatement := statements.Len() == 1 &&
		(ast.IsSynthesized(parent) ||
			ast.IsSynthesized(statements.Nodes[0]) ||
			p.rangeStartPositionsAreOnSameLine(rangeOf(parent), rangeOf(statements.Nodes[0])))

	format := ast.CaseOrDefaultClauseStatements
	if emitAsSingleStatement {
		p.writeToken(ast.TColon, colonPos, p.writePunctuation, parent)
		p.writeSpace()
		format &^= ast.MultiLine | ast.Indented
	} else {
		p.emitTokenWithComment(ast.TColon, colonPos, p.writePunctuation, parent, false)
	}
	p.emitList(parent, statements, format)
}

////////////////////////////////////////////////////////////////////////////////
// JSDoc

func (p *Printer) emitJSDoc(n *ast.JSDoc) {
	p.write("/**")
	if n.Comment != "" {
		for _, line := range splitCommentLines(n.Comment) {
			p.writeLine()
			p.writeSpace()
			p.writePunctuation("*")
			p.writeSpace()
			p.write(line)
		}
	}
	if n.Tags != nil {
		if n.Tags.Len() == 1 && n.Comment == "" && isJSDocTypeTag(n.Tags.Nodes[0]) {
			p.writeSpace()
			p.emit(n.Tags.Nodes[0])
		} else {
			p.emitList(n, n.Tags, ast.JSDocComment)
		}
	}
	p.writeSpace()
	p.write("*/")
}

func isJSDocTypeTag(node ast.Node) bool {
	_, ok := node.(*ast.JSDocTypeTag)
	return ok
}

func splitCommentLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

func (p *Printer) emitJSDocTagName(tagName *ast.Identifier) {
	p.writePunctuation("@")
	p.emitOptionalIdentifier(tagName)
}

func (p *Printer) emitJSDocComment(comment string) {
	if comment != "" {
		p.writeSpace()
		p.write(comment)
	}
}

func (p *Printer) emitJSDocTypeExpression(typeExpression *ast.JSDocTypeExpression) {
	if typeExpression != nil {
		p.writeSpace()
		p.writePunctuation("{")
		p.emit(typeExpression.Type)
		p.writePunctuation("}")
	}
}

////////////////////////////////////////////////////////////////////////////////
// Helpers for optional parts

func (p *Printer) emitModifiers(node ast.Node, modifiers *ast.NodeList) {
	if modifiers.Len() > 0 {
		p.emitList(node, modifiers, ast.Modifiers)
		p.writeSpace()
	}
}

func (p *Printer) emitDecorators(node ast.Node, decorators *ast.NodeList) {
	p.emitList(node, decorators, ast.Decorators)
}

func (p *Printer) emitTypeAnnotation(node ast.Node) {
	if node != nil {
		p.writePunctuation(":")
		p.writeSpace()
		p.emit(node)
	}
}

func (p *Printer) emitInitializer(node ast.Node, equalPos int, container ast.Node) {
	if node != nil {
		p.writeSpace()
		p.emitTokenWithComment(ast.TEquals, equalPos, p.writeOperator, container, false)
		p.writeSpace()
		p.emitExpression(node)
	}
}

func (p *Printer) emitTypeArguments(node ast.Node, typeArguments *ast.NodeList) {
	p.emitList(node, typeArguments, ast.TypeArguments)
}

func (p *Printer) emitTypeParameters(node ast.Node, typeParameters *ast.NodeList) {
	p.emitList(node, typeParameters, ast.TypeParameters)
}

func (p *Printer) emitParameters(node ast.Node, parameters *ast.NodeList) {
	p.emitList(node, parameters, ast.Parameters)
}

// canEmitSimpleArrowHead reports whether "(x) => y" can be printed as
// "x => y": a single parameter that is a plain identifier with nothing
// attached, on an arrow without a return type or type parameters.
func canEmitSimpleArrowHead(parent ast.Node, parameters *ast.NodeList) bool {
	arrow, ok := parent.(*ast.ArrowFunction)
	if !ok || parameters.Len() != 1 {
		return false
	}
	parameter, ok := parameters.Nodes[0].(*ast.Parameter)
	if !ok {
		return false
	}
	if _, ok := parameter.Name.(*ast.Identifier); !ok {
		return false
	}
	return parameter.Pos == arrow.Pos &&
		arrow.Type == nil &&
		arrow.Modifiers.Len() == 0 &&
		arrow.TypeParameters.Len() == 0 &&
		parameter.Decorators.Len() == 0 &&
		parameter.Modifiers.Len() == 0 &&
		parameter.DotDotDotToken == nil &&
		parameter.QuestionToken == nil &&
		parameter.Type == nil &&
		parameter.Initializer == nil
}

func (p *Printer) emitParametersForArrow(node ast.Node, parameters *ast.NodeList) {
	if canEmitSimpleArrowHead(node, parameters) {
		p.emitList(node, parameters, ast.Parameters&^ast.Parenthesis)
	} else {
		p.emitParameters(node, parameters)
	}
}
