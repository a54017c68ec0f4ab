package namegen

import "github.com/webcarrot/tsemit/internal/ast"

// GenerateNames assigns text to every generated identifier declared by the
// node (and the statements nested in it) before the node is printed, so that
// declarations claim their names ahead of any later uses.
func (g *Generator) GenerateNames(node ast.Node) {
	switch n := node.(type) {
	case *ast.SourceFile:
		g.generateNamesInList(n.Statements)

	case *ast.Block:
		if n != nil {
			g.generateNamesInList(n.Statements)
		}

	case *ast.ModuleBlock:
		g.generateNamesInList(n.Statements)

	case *ast.LabeledStatement:
		g.GenerateNames(n.Statement)

	case *ast.WithStatement:
		g.GenerateNames(n.Statement)

	case *ast.DoStatement:
		g.GenerateNames(n.Statement)

	case *ast.WhileStatement:
		g.GenerateNames(n.Statement)

	case *ast.IfStatement:
		g.GenerateNames(n.ThenStatement)
		g.GenerateNames(n.ElseStatement)

	case *ast.ForStatement:
		g.GenerateNames(n.Initializer)
		g.GenerateNames(n.Statement)

	case *ast.ForInStatement:
		g.GenerateNames(n.Initializer)
		g.GenerateNames(n.Statement)

	case *ast.ForOfStatement:
		g.GenerateNames(n.Initializer)
		g.GenerateNames(n.Statement)

	case *ast.SwitchStatement:
		if n.CaseBlock != nil {
			g.GenerateNames(n.CaseBlock)
		}

	case *ast.CaseBlock:
		g.generateNamesInList(n.Clauses)

	case *ast.CaseClause:
		g.generateNamesInList(n.Statements)

	case *ast.DefaultClause:
		g.generateNamesInList(n.Statements)

	case *ast.TryStatement:
		if n.TryBlock != nil {
			g.GenerateNames(n.TryBlock)
		}
		if n.CatchClause != nil {
			g.GenerateNames(n.CatchClause)
		}
		if n.FinallyBlock != nil {
			g.GenerateNames(n.FinallyBlock)
		}

	case *ast.CatchClause:
		if n.VariableDeclaration != nil {
			g.GenerateNames(n.VariableDeclaration)
		}
		if n.Block != nil {
			g.GenerateNames(n.Block)
		}

	case *ast.VariableStatement:
		if n.DeclarationList != nil {
			g.GenerateNames(n.DeclarationList)
		}

	case *ast.VariableDeclarationList:
		g.generateNamesInList(n.Declarations)

	case *ast.VariableDeclaration:
		g.generateNameIfNeeded(n.Name)

	case *ast.Parameter:
		g.generateNameIfNeeded(n.Name)

	case *ast.BindingElement:
		g.generateNameIfNeeded(n.Name)

	case *ast.ClassDeclaration:
		g.generateIdentifierIfNeeded(n.Name)

	case *ast.FunctionDeclaration:
		g.generateIdentifierIfNeeded(n.Name)
		if ast.GetEmitFlags(n)&ast.EmitFlagsReuseTempVariableScope != 0 {
			g.generateNamesInList(n.Parameters)
			if n.Body != nil {
				g.GenerateNames(n.Body)
			}
		}

	case *ast.ObjectBindingPattern:
		g.generateNamesInList(n.Elements)

	case *ast.ArrayBindingPattern:
		g.generateNamesInList(n.Elements)

	case *ast.ImportDeclaration:
		if n.ImportClause != nil {
			g.GenerateNames(n.ImportClause)
		}

	case *ast.ImportClause:
		g.generateIdentifierIfNeeded(n.Name)
		g.GenerateNames(n.NamedBindings)

	case *ast.NamespaceImport:
		g.generateIdentifierIfNeeded(n.Name)

	case *ast.NamedImports:
		g.generateNamesInList(n.Elements)

	case *ast.ImportSpecifier:
		if n.PropertyName != nil {
			g.generateIdentifierIfNeeded(n.PropertyName)
		} else {
			g.generateIdentifierIfNeeded(n.Name)
		}
	}
}

// GenerateMemberNames does the same for the name of a class or object
// literal member.
func (g *Generator) GenerateMemberNames(node ast.Node) {
	switch n := node.(type) {
	case *ast.PropertyAssignment:
		g.generateNameIfNeeded(n.Name)

	case *ast.ShorthandPropertyAssignment:
		g.generateIdentifierIfNeeded(n.Name)

	case *ast.PropertyDeclaration:
		g.generateNameIfNeeded(n.Name)

	case *ast.MethodDeclaration:
		g.generateNameIfNeeded(n.Name)

	case *ast.GetAccessor:
		g.generateNameIfNeeded(n.Name)

	case *ast.SetAccessor:
		g.generateNameIfNeeded(n.Name)
	}
}

func (g *Generator) generateNamesInList(list *ast.NodeList) {
	if list == nil {
		return
	}
	for _, node := range list.Nodes {
		g.GenerateNames(node)
	}
}

func (g *Generator) generateNameIfNeeded(name ast.Node) {
	switch n := name.(type) {
	case *ast.Identifier:
		g.generateIdentifierIfNeeded(n)

	case *ast.ObjectBindingPattern, *ast.ArrayBindingPattern:
		g.GenerateNames(n)
	}
}

func (g *Generator) generateIdentifierIfNeeded(name *ast.Identifier) {
	if name != nil && name.AutoGenerate != nil {
		g.GenerateName(name)
	}
}
