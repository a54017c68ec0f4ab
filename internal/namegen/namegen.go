package namegen

// The name generator chooses the text of identifiers that transformations
// asked for without naming them (temporaries, loop counters, "unique" names
// derived from a base name or from another node). Every name it hands out
// avoids the identifiers declared in the file being printed, globals known to
// the resolver, names it has already generated in this pass, and names
// reserved by enclosing scopes.

import (
	"strconv"
	"strings"

	"github.com/webcarrot/tsemit/internal/ast"
)

type tempFlags uint32

const (
	tempFlagsAuto      tempFlags = 0x00000000 // No preferred name
	tempFlagsCountMask tempFlags = 0x0FFFFFFF // Temp variable counter
	tempFlagsI         tempFlags = 0x10000000 // Use/preference flag for "_i"
)

// scope is one level of name generation. Reservations made in a scope are
// visible to the scopes nested in it but not to its siblings.
type scope struct {
	parent   *scope
	flags    tempFlags
	reserved map[string]bool
}

func (s *scope) isReserved(name string) bool {
	for ; s != nil; s = s.parent {
		if s.reserved[name] {
			return true
		}
	}
	return false
}

type Generator struct {
	isFileLevelUnique func(name string) bool

	// Names handed out by unique-name requests in this pass
	generatedNames map[string]bool

	// Cache for requests derived from another node
	nodeToGeneratedName map[ast.Node]string

	// Cache for auto, loop, and unique requests
	autoGeneratedIDToGeneratedName map[uint32]string

	current *scope
}

func NewGenerator() *Generator {
	g := &Generator{}
	g.Reset()
	return g
}

// Reset forgets every name from the previous pass.
func (g *Generator) Reset() {
	g.isFileLevelUnique = nil
	g.generatedNames = make(map[string]bool)
	g.nodeToGeneratedName = make(map[ast.Node]string)
	g.autoGeneratedIDToGeneratedName = make(map[uint32]string)
	g.current = &scope{}
}

// SetFileLevelUniqueCheck installs the predicate for the file being printed.
// A nil predicate accepts every name.
func (g *Generator) SetFileLevelUniqueCheck(isUnique func(name string) bool) {
	g.isFileLevelUnique = isUnique
}

// PushScope starts a nested scope unless the node asks to share the
// enclosing one.
func (g *Generator) PushScope(node ast.Node) {
	if node != nil && ast.GetEmitFlags(node)&ast.EmitFlagsReuseTempVariableScope != 0 {
		return
	}
	g.current = &scope{parent: g.current}
}

func (g *Generator) PopScope(node ast.Node) {
	if node != nil && ast.GetEmitFlags(node)&ast.EmitFlagsReuseTempVariableScope != 0 {
		return
	}
	if g.current.parent != nil {
		g.current = g.current.parent
	}
}

func (g *Generator) ReserveNameInNestedScopes(name string) {
	if g.current.reserved == nil {
		g.current.reserved = make(map[string]bool)
	}
	g.current.reserved[name] = true
}

func (g *Generator) IsFileLevelUniqueName(name string) bool {
	return g.isFileLevelUnique == nil || g.isFileLevelUnique(name)
}

func (g *Generator) IsUniqueName(name string) bool {
	return g.IsFileLevelUniqueName(name) && !g.generatedNames[name] && !g.current.isReserved(name)
}

// GenerateName returns the text for a generated identifier, computing it on
// first use.
func (g *Generator) GenerateName(name *ast.Identifier) string {
	if name.AutoGenerate.Flags.Kind() == ast.GeneratedNode {
		// Node names generate unique names based on their original node
		// and are cached based on that node's identity
		return g.generateNameCached(nodeForGeneratedName(name), name.AutoGenerate.Flags)
	}

	// Auto, Loop, and Unique names are cached based on their unique ID
	id := name.AutoGenerate.ID
	if text, ok := g.autoGeneratedIDToGeneratedName[id]; ok {
		return text
	}
	text := g.makeName(name)
	g.autoGeneratedIDToGeneratedName[id] = text
	return text
}

func (g *Generator) generateNameCached(node ast.Node, flags ast.GeneratedIdentifierFlags) string {
	if text, ok := g.nodeToGeneratedName[node]; ok {
		return text
	}
	text := g.generateNameForNode(node, flags)
	g.nodeToGeneratedName[node] = text
	return text
}

// The node a name is derived from is found by following "original" links,
// stopping early at a different generated name derived from a node
func nodeForGeneratedName(name *ast.Identifier) ast.Node {
	id := name.AutoGenerate.ID
	var node ast.Node = name
	for original := name.Original; original != nil; original = node.Base().Original {
		node = original
		if other, ok := node.(*ast.Identifier); ok && other.AutoGenerate != nil &&
			other.AutoGenerate.Flags.Kind() == ast.GeneratedNode && other.AutoGenerate.ID != id {
			break
		}
	}
	return node
}

func (g *Generator) makeName(name *ast.Identifier) string {
	flags := name.AutoGenerate.Flags
	reserved := flags.Has(ast.GeneratedReservedInNestedScopes)
	switch flags.Kind() {
	case ast.GeneratedAuto:
		return g.MakeTempVariableName(tempFlagsAuto, reserved)

	case ast.GeneratedLoop:
		return g.MakeTempVariableName(tempFlagsI, reserved)

	case ast.GeneratedUnique:
		check := g.IsUniqueName
		if flags.Has(ast.GeneratedFileLevel) {
			check = g.IsFileLevelUniqueName
		}
		return g.MakeUniqueName(name.Text, check, flags.Has(ast.GeneratedOptimistic), reserved)
	}
	panic("Internal error: unsupported generated identifier kind " + strconv.Itoa(int(flags.Kind())))
}

// MakeTempVariableName returns the next free name in the sequence "_a",
// "_b", ..., "_z", "_0", "_1", ... for the current scope. "_i" and "_n" are
// skipped by the sequence and only handed out when explicitly preferred.
func (g *Generator) MakeTempVariableName(flags tempFlags, reservedInNestedScopes bool) string {
	s := g.current
	if flags != 0 && s.flags&flags == 0 {
		name := "_n"
		if flags == tempFlagsI {
			name = "_i"
		}
		if g.IsUniqueName(name) {
			s.flags |= flags
			if reservedInNestedScopes {
				g.ReserveNameInNestedScopes(name)
			}
			return name
		}
	}
	for {
		count := s.flags & tempFlagsCountMask
		s.flags++

		// Skip over "i" and "n"
		if count != 8 && count != 13 {
			var name string
			if count < 26 {
				name = "_" + string(rune('a'+count))
			} else {
				name = "_" + strconv.Itoa(int(count-26))
			}
			if g.IsUniqueName(name) {
				if reservedInNestedScopes {
					g.ReserveNameInNestedScopes(name)
				}
				return name
			}
		}
	}
}

// MakeTempName is MakeTempVariableName without a preference for "_i".
func (g *Generator) MakeTempName() string {
	return g.MakeTempVariableName(tempFlagsAuto, false)
}

// MakeUniqueName returns "baseName_1", "baseName_2", ... whichever is the
// first name accepted by "check". In optimistic mode "baseName" itself is
// tried first. Scoped names are reserved in the current scope instead of
// being recorded for the whole pass.
func (g *Generator) MakeUniqueName(baseName string, check func(string) bool, optimistic bool, scoped bool) string {
	if check == nil {
		check = g.IsUniqueName
	}
	if optimistic && check(baseName) {
		g.record(baseName, scoped)
		return baseName
	}

	// Find the first unique "name_n", where n is a positive number
	if !strings.HasSuffix(baseName, "_") {
		baseName += "_"
	}
	for i := 1; ; i++ {
		name := baseName + strconv.Itoa(i)
		if check(name) {
			g.record(name, scoped)
			return name
		}
	}
}

func (g *Generator) record(name string, scoped bool) {
	if scoped {
		g.ReserveNameInNestedScopes(name)
	} else {
		g.generatedNames[name] = true
	}
}

// MakeFileLevelOptimisticUniqueName is handed to helper text callbacks.
func (g *Generator) MakeFileLevelOptimisticUniqueName(name string) string {
	return g.MakeUniqueName(name, g.IsFileLevelUniqueName, true, false)
}

func (g *Generator) generateNameForNode(node ast.Node, flags ast.GeneratedIdentifierFlags) string {
	switch n := node.(type) {
	case *ast.Identifier:
		text := n.Text
		if n.AutoGenerate != nil {
			text = g.GenerateName(n)
		}
		return g.MakeUniqueName(text, g.IsUniqueName, flags.Has(ast.GeneratedOptimistic), flags.Has(ast.GeneratedReservedInNestedScopes))

	case *ast.ModuleDeclaration:
		return g.generateNameForModuleOrEnum(n.Name, n.Locals)

	case *ast.EnumDeclaration:
		return g.generateNameForModuleOrEnum(n.Name, n.Locals)

	case *ast.ImportDeclaration:
		return g.generateNameForImportOrExport(n.ModuleSpecifier)

	case *ast.ExportDeclaration:
		return g.generateNameForImportOrExport(n.ModuleSpecifier)

	case *ast.FunctionDeclaration, *ast.ClassDeclaration, *ast.ExportAssignment:
		return g.MakeUniqueName("default", nil, false, false)

	case *ast.ClassExpression:
		return g.MakeUniqueName("class", nil, false, false)

	case *ast.MethodDeclaration:
		return g.generateNameForMethodOrAccessor(n.Name)

	case *ast.GetAccessor:
		return g.generateNameForMethodOrAccessor(n.Name)

	case *ast.SetAccessor:
		return g.generateNameForMethodOrAccessor(n.Name)

	default:
		return g.MakeTempVariableName(tempFlagsAuto, false)
	}
}

func (g *Generator) generateNameForModuleOrEnum(name ast.Node, locals map[string]bool) string {
	var text string
	switch n := name.(type) {
	case *ast.Identifier:
		text = n.Text
		if n.AutoGenerate != nil {
			text = g.GenerateName(n)
		}
	case *ast.StringLiteral:
		text = n.Text
	}
	if !locals[text] {
		return text
	}
	return g.MakeUniqueName(text, nil, false, false)
}

func (g *Generator) generateNameForImportOrExport(moduleSpecifier ast.Node) string {
	baseName := "module"
	if str, ok := moduleSpecifier.(*ast.StringLiteral); ok {
		baseName = MakeIdentifierFromModuleName(str.Text)
	}
	return g.MakeUniqueName(baseName, nil, false, false)
}

func (g *Generator) generateNameForMethodOrAccessor(name ast.Node) string {
	if id, ok := name.(*ast.Identifier); ok {
		return g.generateNameCached(id, ast.GeneratedNone)
	}
	return g.MakeTempVariableName(tempFlagsAuto, false)
}

// MakeIdentifierFromModuleName turns "./some-dir/my-module.js" into
// "my_module_js".
func MakeIdentifierFromModuleName(moduleName string) string {
	base := strings.TrimRight(moduleName, "/")
	if slash := strings.LastIndexByte(base, '/'); slash != -1 {
		base = base[slash+1:]
	}
	sb := strings.Builder{}
	for i, c := range base {
		if i == 0 && c >= '0' && c <= '9' {
			sb.WriteByte('_')
		}
		if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			sb.WriteRune(c)
		} else {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}
