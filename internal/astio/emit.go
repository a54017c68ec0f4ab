package astio

import (
	"gopkg.in/yaml.v3"

	"github.com/webcarrot/tsemit/internal/ast"
	"github.com/webcarrot/tsemit/internal/errors"
)

type rangeDocument struct {
	Pos int `yaml:"pos"`
	End int `yaml:"end"`
}

type commentDocument struct {
	Kind               string `yaml:"kind"`
	Text               string `yaml:"text"`
	HasTrailingNewLine bool   `yaml:"hasTrailingNewLine"`
}

type helperDocument struct {
	Name     string `yaml:"name"`
	Scoped   bool   `yaml:"scoped"`
	Priority *int   `yaml:"priority"`
	Text     string `yaml:"text"`
}

// The "emit" key of a node
type emitDocument struct {
	Flags            yaml.Node         `yaml:"flags"`
	CommentRange     *rangeDocument    `yaml:"commentRange"`
	SourceMapRange   *rangeDocument    `yaml:"sourceMapRange"`
	LeadingComments  []commentDocument `yaml:"leadingComments"`
	TrailingComments []commentDocument `yaml:"trailingComments"`
	ConstantValue    *float64          `yaml:"constantValue"`
	Helpers          []helperDocument  `yaml:"helpers"`
	StartsOnNewLine  *bool             `yaml:"startsOnNewLine"`
}

func (d *Decoder) decodeEmitNode(n *yaml.Node) (*ast.EmitNode, error) {
	var doc emitDocument
	if err := n.Decode(&doc); err != nil {
		return nil, errors.Wrapf(err, "line %d: invalid emit metadata", n.Line)
	}

	emit := &ast.EmitNode{}
	if doc.Flags.Kind != 0 {
		flags, err := decodeNames(&doc.Flags, emitFlagNames)
		if err != nil {
			return nil, err
		}
		emit.Flags = ast.EmitFlags(flags)
	}
	if r := doc.CommentRange; r != nil {
		emit.CommentRange = &ast.TextRange{Pos: r.Pos, End: r.End}
	}
	if r := doc.SourceMapRange; r != nil {
		emit.SourceMapRange = &ast.SourceMapRange{TextRange: ast.TextRange{Pos: r.Pos, End: r.End}}
	}

	var err error
	if emit.LeadingComments, err = decodeComments(n, doc.LeadingComments); err != nil {
		return nil, err
	}
	if emit.TrailingComments, err = decodeComments(n, doc.TrailingComments); err != nil {
		return nil, err
	}

	emit.ConstantValue = doc.ConstantValue
	if doc.StartsOnNewLine != nil {
		emit.StartsOnNewLine = ast.False
		if *doc.StartsOnNewLine {
			emit.StartsOnNewLine = ast.True
		}
	}

	for _, h := range doc.Helpers {
		helper, ok := d.helpers[h.Name]
		if !ok {
			helper = &ast.EmitHelper{Name: h.Name, Scoped: h.Scoped, Priority: h.Priority, Text: h.Text}
			d.helpers[h.Name] = helper
		}
		emit.Helpers = append(emit.Helpers, helper)
	}
	return emit, nil
}

func decodeComments(n *yaml.Node, docs []commentDocument) ([]ast.SynthesizedComment, error) {
	var comments []ast.SynthesizedComment
	for _, doc := range docs {
		comment := ast.SynthesizedComment{Text: doc.Text, HasTrailingNewLine: doc.HasTrailingNewLine}
		switch doc.Kind {
		case "singleLine":
			comment.Kind = ast.SingleLineComment
		case "multiLine", "":
			comment.Kind = ast.MultiLineComment
		default:
			return nil, errorAt(n, "unknown comment kind %q", doc.Kind)
		}
		comments = append(comments, comment)
	}
	return comments, nil
}

var emitFlagNames = map[string]uint32{
	"singleLine":                uint32(ast.EmitFlagsSingleLine),
	"multiLine":                 uint32(ast.EmitFlagsMultiLine),
	"noLeadingSourceMap":        uint32(ast.EmitFlagsNoLeadingSourceMap),
	"noTrailingSourceMap":       uint32(ast.EmitFlagsNoTrailingSourceMap),
	"noSourceMap":               uint32(ast.EmitFlagsNoSourceMap),
	"noNestedSourceMaps":        uint32(ast.EmitFlagsNoNestedSourceMaps),
	"noTokenSourceMaps":         uint32(ast.EmitFlagsNoTokenSourceMaps),
	"noLeadingComments":         uint32(ast.EmitFlagsNoLeadingComments),
	"noTrailingComments":        uint32(ast.EmitFlagsNoTrailingComments),
	"noComments":                uint32(ast.EmitFlagsNoComments),
	"noNestedComments":          uint32(ast.EmitFlagsNoNestedComments),
	"indented":                  uint32(ast.EmitFlagsIndented),
	"noIndentation":             uint32(ast.EmitFlagsNoIndentation),
	"reuseTempVariableScope":    uint32(ast.EmitFlagsReuseTempVariableScope),
	"noAsciiEscaping":           uint32(ast.EmitFlagsNoAsciiEscaping),
	"customPrologue":            uint32(ast.EmitFlagsCustomPrologue),
	"noTokenLeadingSourceMaps":  uint32(ast.EmitFlagsNoTokenLeadingSourceMaps),
	"noTokenTrailingSourceMaps": uint32(ast.EmitFlagsNoTokenTrailingSourceMaps),
}
