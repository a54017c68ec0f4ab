// Package astio reads syntax trees from YAML documents. JSON is valid YAML,
// so the same decoder reads JSON trees too.
//
// Every mapping with a "kind" key is a node whose other keys are the node's
// fields in lower camel case:
//
//	kind: VariableStatement
//	declarationList:
//	  flags: [let]
//	  declarations:
//	    - name: a
//	      initializer: 1
//
// The kind may be left out where the field only admits one node type. A
// plain scalar stands for an identifier, a numeric scalar for a numeric
// literal, and a scalar modifier or optional token for that token. Nodes
// without "pos" and "end" are synthesized. Anchors and aliases share a node,
// which is how one generated name is referenced twice.
package astio

import (
	"reflect"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/webcarrot/tsemit/internal/ast"
	"github.com/webcarrot/tsemit/internal/errors"
)

var ErrUnknownKind = errors.New("unknown node kind")

var nodeType = reflect.TypeOf((*ast.Node)(nil)).Elem()

func registerKinds(nodes ...ast.Node) map[string]reflect.Type {
	kinds := make(map[string]reflect.Type, len(nodes)+2)
	for _, node := range append(nodes, &ast.SourceFile{}, &ast.UnparsedSource{}) {
		t := reflect.TypeOf(node).Elem()
		kinds[t.Name()] = t
	}
	return kinds
}

// Decoder turns documents into trees. Helpers are shared by name across all
// documents read by the same decoder.
type Decoder struct {
	helpers map[string]*ast.EmitHelper

	// Per document
	anchors     map[*yaml.Node]ast.Node
	identifiers map[string]bool
}

func NewDecoder() *Decoder {
	return &Decoder{helpers: make(map[string]*ast.EmitHelper)}
}

// Decode reads a single node of any kind.
func (d *Decoder) Decode(data []byte) (ast.Node, error) {
	root, err := d.parse(data)
	if err != nil {
		return nil, err
	}
	return d.decodeNode(root, nodeType, false)
}

// DecodeSourceFile reads a "SourceFile" node, or a bare sequence of
// statements that is wrapped in one. "fileName" is used when the document
// does not name its file, and decides the script kind when the document does
// not give one. The identifiers of the file are collected while decoding.
func (d *Decoder) DecodeSourceFile(fileName string, data []byte) (*ast.SourceFile, error) {
	root, err := d.parse(data)
	if err != nil {
		return nil, err
	}

	var file *ast.SourceFile
	if root.Kind == yaml.SequenceNode {
		list, err := d.decodeList(root, nodeType, false)
		if err != nil {
			return nil, err
		}
		file = ast.NewSourceFile(fileName, list.Nodes...)
	} else {
		node, err := d.decodeNode(root, reflect.TypeOf(&ast.SourceFile{}), false)
		if err != nil {
			return nil, err
		}
		file = node.(*ast.SourceFile)
		if file.FileName == "" {
			file.FileName = fileName
		}
	}

	if file.ScriptKind == ast.ScriptKindUnknown {
		file.ScriptKind = ScriptKindFromFileName(file.FileName)
	}
	if strings.HasSuffix(file.FileName, ".d.ts") {
		file.IsDeclarationFile = true
	}
	if file.Statements == nil {
		file.Statements = ast.NewNodeList()
	}
	if file.Identifiers == nil {
		file.Identifiers = d.identifiers
	}
	return file, nil
}

func ScriptKindFromFileName(fileName string) ast.ScriptKind {
	switch {
	case strings.HasSuffix(fileName, ".tsx"):
		return ast.ScriptKindTSX
	case strings.HasSuffix(fileName, ".ts"):
		return ast.ScriptKindTS
	case strings.HasSuffix(fileName, ".jsx"):
		return ast.ScriptKindJSX
	case strings.HasSuffix(fileName, ".js"), strings.HasSuffix(fileName, ".mjs"), strings.HasSuffix(fileName, ".cjs"):
		return ast.ScriptKindJS
	case strings.HasSuffix(fileName, ".json"):
		return ast.ScriptKindJSON
	}
	return ast.ScriptKindTS
}

func (d *Decoder) parse(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parsing syntax tree document")
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("empty syntax tree document")
	}
	d.anchors = make(map[*yaml.Node]ast.Node)
	d.identifiers = make(map[string]bool)
	return doc.Content[0], nil
}

func errorAt(n *yaml.Node, format string, args ...interface{}) error {
	return errors.Newf("line %d: "+format, append([]interface{}{n.Line}, args...)...)
}

// decodeNode decodes "n" into a node assignable to "want", which is either
// the Node interface or a pointer to a concrete node type.
func (d *Decoder) decodeNode(n *yaml.Node, want reflect.Type, scalarIsToken bool) (ast.Node, error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if node, ok := d.anchors[n]; ok {
		return node, nil
	}

	var node ast.Node
	var err error
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
		node, err = d.decodeScalarNode(n, want, scalarIsToken)
	case yaml.MappingNode:
		node, err = d.decodeMapping(n, want)
	default:
		return nil, errorAt(n, "expected a node")
	}
	if err != nil {
		return nil, err
	}

	if !reflect.TypeOf(node).AssignableTo(want) {
		return nil, errorAt(n, "a %s cannot be used where a %s is expected",
			reflect.TypeOf(node).Elem().Name(), kindName(want))
	}
	if n.Anchor != "" {
		d.anchors[n] = node
	}
	return node, nil
}

func kindName(t reflect.Type) string {
	if t.Kind() == reflect.Ptr {
		return t.Elem().Name()
	}
	return t.Name()
}

func (d *Decoder) decodeScalarNode(n *yaml.Node, want reflect.Type, scalarIsToken bool) (ast.Node, error) {
	switch {
	case scalarIsToken || want == reflect.TypeOf(&ast.TokenNode{}):
		token := ast.TokenFromString(n.Value)
		if token == ast.TUnknown {
			return nil, errorAt(n, "unknown token %q", n.Value)
		}
		return ast.NewToken(token), nil

	case (n.Tag == "!!int" || n.Tag == "!!float") && want == nodeType:
		return ast.NewNumericLiteral(n.Value), nil

	case want == nodeType || want == reflect.TypeOf(&ast.Identifier{}):
		d.identifiers[n.Value] = true
		return ast.NewIdentifier(n.Value), nil

	// "parameters: [a, b]" and "declarations: [a]"
	case want == reflect.TypeOf(&ast.Parameter{}):
		d.identifiers[n.Value] = true
		return ast.NewParameter(ast.NewIdentifier(n.Value)), nil
	case want == reflect.TypeOf(&ast.VariableDeclaration{}):
		d.identifiers[n.Value] = true
		return ast.NewVariableDeclaration(ast.NewIdentifier(n.Value), nil), nil
	}
	return nil, errorAt(n, "a %s must be written as a mapping", kindName(want))
}

func (d *Decoder) decodeMapping(n *yaml.Node, want reflect.Type) (ast.Node, error) {
	var t reflect.Type
	if kind := mappingValue(n, "kind"); kind != nil {
		var ok bool
		if t, ok = nodeKinds[kind.Value]; !ok {
			return nil, errors.Wrapf(ErrUnknownKind, "line %d: %q", kind.Line, kind.Value)
		}
	} else if want != nodeType {
		t = want.Elem()
	} else {
		return nil, errorAt(n, "missing \"kind\"")
	}

	value := reflect.New(t)
	node := value.Interface().(ast.Node)
	base := node.Base()
	hasRange := false

	id, isIdentifier := node.(*ast.Identifier)
	if isIdentifier {
		if generate := mappingValue(n, "generate"); generate != nil {
			generated, err := decodeGeneratedName(n, generate)
			if err != nil {
				return nil, err
			}
			*id = *generated
		}
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		key, child := n.Content[i], n.Content[i+1]
		if isIdentifier && (key.Value == "generate" || key.Value == "reservedInNestedScopes") {
			continue
		}
		switch key.Value {
		case "kind":
			continue

		case "pos", "end":
			offset, err := strconv.Atoi(child.Value)
			if err != nil {
				return nil, errorAt(child, "invalid offset %q", child.Value)
			}
			if key.Value == "pos" {
				base.Pos = offset
			} else {
				base.End = offset
			}
			hasRange = true
			continue

		case "flags":
			flags, err := decodeNames(child, nodeFlagNames)
			if err != nil {
				return nil, err
			}
			base.Flags |= ast.NodeFlags(flags)
			continue

		case "emit":
			emit, err := d.decodeEmitNode(child)
			if err != nil {
				return nil, err
			}
			base.Emit = emit
			continue
		}

		field := value.Elem().FieldByName(exportedName(key.Value))
		if !field.IsValid() || !field.CanSet() || key.Value == "" || key.Value[0] < 'a' || key.Value[0] > 'z' {
			return nil, errorAt(key, "unknown field %q for %s", key.Value, t.Name())
		}
		if err := d.decodeField(field, key.Value, child); err != nil {
			return nil, err
		}
	}

	switch {
	case hasRange:
	case t == reflect.TypeOf(ast.SourceFile{}):
		base.End = len(node.(*ast.SourceFile).Text)
	default:
		base.TextRange = ast.SynthesizedRange
		base.Flags |= ast.NodeFlagsSynthesized
	}
	if isIdentifier && id.AutoGenerate == nil {
		d.identifiers[id.Text] = true
	}
	return node, nil
}

func mappingValue(n *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

func exportedName(key string) string {
	if key == "" {
		return ""
	}
	return strings.ToUpper(key[:1]) + key[1:]
}

var (
	nodeListType      = reflect.TypeOf(&ast.NodeList{})
	tokenType         = reflect.TypeOf(ast.Token(0))
	numericFlagsType  = reflect.TypeOf(ast.NumericLiteralFlags(0))
	templatePartType  = reflect.TypeOf(ast.TemplatePartKind(0))
	scriptKindType    = reflect.TypeOf(ast.ScriptKind(0))
	localsType        = reflect.TypeOf(map[string]bool(nil))
	fileReferenceType = reflect.TypeOf([]ast.FileReference(nil))
)

func (d *Decoder) decodeField(field reflect.Value, key string, n *yaml.Node) error {
	t := field.Type()
	switch {
	case t == nodeListType:
		elementType := nodeType
		if t, ok := listElementTypes[key]; ok {
			elementType = t
		}
		list, err := d.decodeList(n, elementType, key == "modifiers")
		if err != nil {
			return err
		}
		field.Set(reflect.ValueOf(list))

	case t == nodeType || (t.Kind() == reflect.Ptr && t.Implements(nodeType)):
		node, err := d.decodeNode(n, t, false)
		if err != nil {
			return err
		}
		if node != nil {
			field.Set(reflect.ValueOf(node))
		}

	case t == tokenType:
		token := ast.TokenFromString(n.Value)
		if token == ast.TUnknown {
			return errorAt(n, "unknown token %q", n.Value)
		}
		field.Set(reflect.ValueOf(token))

	case t == numericFlagsType:
		flags, err := decodeNames(n, numericLiteralFlagNames)
		if err != nil {
			return err
		}
		field.Set(reflect.ValueOf(ast.NumericLiteralFlags(flags)))

	case t == templatePartType:
		part, ok := templatePartNames[n.Value]
		if !ok {
			return errorAt(n, "unknown template part %q", n.Value)
		}
		field.Set(reflect.ValueOf(part))

	case t == scriptKindType:
		kind, ok := scriptKindNames[n.Value]
		if !ok {
			return errorAt(n, "unknown script kind %q", n.Value)
		}
		field.Set(reflect.ValueOf(kind))

	case t == localsType:
		var names []string
		if err := n.Decode(&names); err != nil {
			return errors.Wrapf(err, "line %d", n.Line)
		}
		locals := make(map[string]bool, len(names))
		for _, name := range names {
			locals[name] = true
		}
		field.Set(reflect.ValueOf(locals))

	case t == fileReferenceType:
		refs, err := decodeFileReferences(n)
		if err != nil {
			return err
		}
		field.Set(reflect.ValueOf(refs))

	case t.Kind() == reflect.String, t.Kind() == reflect.Bool:
		if err := n.Decode(field.Addr().Interface()); err != nil {
			return errors.Wrapf(err, "line %d", n.Line)
		}

	default:
		return errorAt(n, "field %q cannot be written in a document", key)
	}
	return nil
}

// Lists under these keys only hold one kind of node, which can be left out
var listElementTypes = map[string]reflect.Type{
	"declarations":    reflect.TypeOf(&ast.VariableDeclaration{}),
	"parameters":      reflect.TypeOf(&ast.Parameter{}),
	"typeParameters":  reflect.TypeOf(&ast.TypeParameter{}),
	"decorators":      reflect.TypeOf(&ast.Decorator{}),
	"heritageClauses": reflect.TypeOf(&ast.HeritageClause{}),
	"templateSpans":   reflect.TypeOf(&ast.TemplateSpan{}),
}

// A list is a sequence of nodes, or a mapping with "nodes" and the list's
// own range and trailing comma.
func (d *Decoder) decodeList(n *yaml.Node, elementType reflect.Type, scalarIsToken bool) (*ast.NodeList, error) {
	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
		return nil, nil
	}
	list := ast.NewNodeList()
	items := n
	if n.Kind == yaml.MappingNode {
		items = mappingValue(n, "nodes")
		if comma := mappingValue(n, "hasTrailingComma"); comma != nil {
			if err := comma.Decode(&list.HasTrailingComma); err != nil {
				return nil, errors.Wrapf(err, "line %d", comma.Line)
			}
		}
		pos, end := mappingValue(n, "pos"), mappingValue(n, "end")
		if pos != nil && end != nil {
			var err error
			if list.Pos, err = strconv.Atoi(pos.Value); err != nil {
				return nil, errorAt(pos, "invalid offset %q", pos.Value)
			}
			if list.End, err = strconv.Atoi(end.Value); err != nil {
				return nil, errorAt(end, "invalid offset %q", end.Value)
			}
		}
		if items == nil {
			return list, nil
		}
	}
	if items.Kind != yaml.SequenceNode {
		return nil, errorAt(items, "expected a list of nodes")
	}
	list.Nodes = make([]ast.Node, 0, len(items.Content))
	for _, item := range items.Content {
		node, err := d.decodeNode(item, elementType, scalarIsToken)
		if err != nil {
			return nil, err
		}
		if node == nil {
			return nil, errorAt(item, "a list cannot contain null")
		}
		list.Nodes = append(list.Nodes, node)
	}
	return list, nil
}

func decodeGeneratedName(n *yaml.Node, generate *yaml.Node) (*ast.Identifier, error) {
	var reserved bool
	if value := mappingValue(n, "reservedInNestedScopes"); value != nil {
		if err := value.Decode(&reserved); err != nil {
			return nil, errors.Wrapf(err, "line %d", value.Line)
		}
	}
	text := ""
	if value := mappingValue(n, "text"); value != nil {
		text = value.Value
	}
	var flags ast.GeneratedIdentifierFlags
	if reserved {
		flags |= ast.GeneratedReservedInNestedScopes
	}

	switch generate.Value {
	case "auto":
		return ast.NewTempVariable(reserved), nil
	case "loop":
		return ast.NewLoopVariable(), nil
	case "unique":
		return ast.NewUniqueName(text, flags), nil
	case "optimistic":
		return ast.NewUniqueName(text, flags|ast.GeneratedOptimistic), nil
	case "fileLevel":
		return ast.NewUniqueName(text, flags|ast.GeneratedOptimistic|ast.GeneratedFileLevel), nil
	}
	return nil, errorAt(generate, "unknown name generation %q", generate.Value)
}

func decodeFileReferences(n *yaml.Node) ([]ast.FileReference, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, errorAt(n, "expected a list of file references")
	}
	refs := make([]ast.FileReference, 0, len(n.Content))
	for _, item := range n.Content {
		ref := ast.FileReference{TextRange: ast.SynthesizedRange}
		if item.Kind == yaml.ScalarNode {
			ref.FileName = item.Value
		} else {
			var fields struct {
				FileName string `yaml:"fileName"`
				Pos      *int   `yaml:"pos"`
				End      *int   `yaml:"end"`
			}
			if err := item.Decode(&fields); err != nil {
				return nil, errors.Wrapf(err, "line %d", item.Line)
			}
			ref.FileName = fields.FileName
			if fields.Pos != nil && fields.End != nil {
				ref.TextRange = ast.TextRange{Pos: *fields.Pos, End: *fields.End}
			}
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// decodeNames ORs together the flags named by a sequence (or a single
// scalar) of names.
func decodeNames(n *yaml.Node, names map[string]uint32) (uint32, error) {
	items := []*yaml.Node{n}
	if n.Kind == yaml.SequenceNode {
		items = n.Content
	}
	var flags uint32
	for _, item := range items {
		flag, ok := names[item.Value]
		if !ok {
			return 0, errorAt(item, "unknown flag %q", item.Value)
		}
		flags |= flag
	}
	return flags, nil
}

var nodeFlagNames = map[string]uint32{
	"let":                uint32(ast.NodeFlagsLet),
	"const":              uint32(ast.NodeFlagsConst),
	"namespace":          uint32(ast.NodeFlagsNamespace),
	"nestedNamespace":    uint32(ast.NodeFlagsNestedNamespace),
	"globalAugmentation": uint32(ast.NodeFlagsGlobalAugmentation),
	"synthesized":        uint32(ast.NodeFlagsSynthesized),
}

var numericLiteralFlagNames = map[string]uint32{
	"scientific":        uint32(ast.NumericLiteralScientific),
	"octal":             uint32(ast.NumericLiteralOctal),
	"hexSpecifier":      uint32(ast.NumericLiteralHexSpecifier),
	"binarySpecifier":   uint32(ast.NumericLiteralBinarySpecifier),
	"octalSpecifier":    uint32(ast.NumericLiteralOctalSpecifier),
	"containsSeparator": uint32(ast.NumericLiteralContainsSeparator),
}

var templatePartNames = map[string]ast.TemplatePartKind{
	"noSubstitution": ast.TemplateNoSubstitution,
	"head":           ast.TemplateHead,
	"middle":         ast.TemplateMiddle,
	"tail":           ast.TemplateTail,
}

var scriptKindNames = map[string]ast.ScriptKind{
	"js":   ast.ScriptKindJS,
	"jsx":  ast.ScriptKindJSX,
	"ts":   ast.ScriptKindTS,
	"tsx":  ast.ScriptKindTSX,
	"json": ast.ScriptKindJSON,
}
