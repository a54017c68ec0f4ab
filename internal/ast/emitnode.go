package ast

type EmitFlags uint32

const (
	EmitFlagsNone EmitFlags = 0

	// The node is printed on a single line where the printer would otherwise
	// choose between single-line and multi-line layouts
	EmitFlagsSingleLine EmitFlags = 1 << iota
	EmitFlagsMultiLine

	EmitFlagsNoLeadingSourceMap
	EmitFlagsNoTrailingSourceMap
	EmitFlagsNoNestedSourceMaps
	EmitFlagsNoTokenLeadingSourceMaps
	EmitFlagsNoTokenTrailingSourceMaps

	EmitFlagsNoLeadingComments
	EmitFlagsNoTrailingComments
	EmitFlagsNoNestedComments

	// Indent the body of the node (used for synthesized blocks)
	EmitFlagsIndented
	// Never indent children because of line breaks in the original source
	EmitFlagsNoIndentation

	// The node does not start a new name generation scope
	EmitFlagsReuseTempVariableScope

	// String literal text is printed without escaping non-ASCII characters
	EmitFlagsNoAsciiEscaping

	// The statement is a prologue directive added by a transformation
	EmitFlagsCustomPrologue

	EmitFlagsNoSourceMap       = EmitFlagsNoLeadingSourceMap | EmitFlagsNoTrailingSourceMap
	EmitFlagsNoTokenSourceMaps = EmitFlagsNoTokenLeadingSourceMaps | EmitFlagsNoTokenTrailingSourceMaps
	EmitFlagsNoComments        = EmitFlagsNoLeadingComments | EmitFlagsNoTrailingComments
)

type CommentKind uint8

const (
	SingleLineComment CommentKind = iota
	MultiLineComment
)

// SynthesizedComment is a comment attached by a transformation. It has no
// position in the source text.
type SynthesizedComment struct {
	Kind               CommentKind
	Text               string
	HasTrailingNewLine bool
}

// SourceMapSource is a file that mappings can point into. A node's source
// map range may refer to a source other than the file being printed.
type SourceMapSource struct {
	FileName string
	Text     string

	// Optional override for skipping leading trivia in this source
	SkipTrivia func(pos int) int

	lineStarts []int
}

func (source *SourceMapSource) LineStarts() []int {
	if source.lineStarts == nil {
		source.lineStarts = ComputeLineStarts(source.Text)
	}
	return source.lineStarts
}

type SourceMapRange struct {
	TextRange
	// nil means the source currently being printed
	Source *SourceMapSource
}

type OptionalBool uint8

const (
	Unspecified OptionalBool = iota
	False
	True
)

// EmitNode holds per-node printing decisions made by transformations.
type EmitNode struct {
	Flags EmitFlags

	// Overrides the range used to look up comments
	CommentRange *TextRange

	// Overrides the range used for the node's own mappings
	SourceMapRange *SourceMapRange

	// Overrides the ranges used for individual tokens of the node
	TokenSourceMapRanges map[Token]*SourceMapRange

	LeadingComments  []SynthesizedComment
	TrailingComments []SynthesizedComment

	// Value of an inlined constant enum member access
	ConstantValue *float64

	Helpers []*EmitHelper

	StartsOnNewLine OptionalBool
}

// EmitHelper is a runtime support snippet that has to be present in the
// output for some lowered syntax to work.
type EmitHelper struct {
	Name string

	// A scoped helper is printed next to its single use and never shared
	Scoped bool

	// Helpers with a lower priority come first. Helpers without a priority
	// come after all prioritized helpers.
	Priority *int

	// Exactly one of Text and TextCallback is used
	Text         string
	TextCallback func(makeUniqueName func(string) string) string
}

func emitNodeOf(node Node) *EmitNode {
	base := node.Base()
	if base.Emit == nil {
		base.Emit = &EmitNode{}
	}
	return base.Emit
}

func GetEmitFlags(node Node) EmitFlags {
	if emit := node.Base().Emit; emit != nil {
		return emit.Flags
	}
	return EmitFlagsNone
}

func SetEmitFlags(node Node, flags EmitFlags) {
	emitNodeOf(node).Flags = flags
}

func AddEmitFlags(node Node, flags EmitFlags) {
	emitNodeOf(node).Flags |= flags
}

func GetCommentRange(node Node) TextRange {
	base := node.Base()
	if base.Emit != nil && base.Emit.CommentRange != nil {
		return *base.Emit.CommentRange
	}
	return base.TextRange
}

func SetCommentRange(node Node, r TextRange) {
	emitNodeOf(node).CommentRange = &r
}

func GetSourceMapRange(node Node) SourceMapRange {
	base := node.Base()
	if base.Emit != nil && base.Emit.SourceMapRange != nil {
		return *base.Emit.SourceMapRange
	}
	return SourceMapRange{TextRange: base.TextRange}
}

func SetSourceMapRange(node Node, r SourceMapRange) {
	emitNodeOf(node).SourceMapRange = &r
}

func GetTokenSourceMapRange(node Node, token Token) *SourceMapRange {
	if emit := node.Base().Emit; emit != nil && emit.TokenSourceMapRanges != nil {
		return emit.TokenSourceMapRanges[token]
	}
	return nil
}

func SetTokenSourceMapRange(node Node, token Token, r SourceMapRange) {
	emit := emitNodeOf(node)
	if emit.TokenSourceMapRanges == nil {
		emit.TokenSourceMapRanges = make(map[Token]*SourceMapRange)
	}
	emit.TokenSourceMapRanges[token] = &r
}

func GetSyntheticLeadingComments(node Node) []SynthesizedComment {
	if emit := node.Base().Emit; emit != nil {
		return emit.LeadingComments
	}
	return nil
}

func GetSyntheticTrailingComments(node Node) []SynthesizedComment {
	if emit := node.Base().Emit; emit != nil {
		return emit.TrailingComments
	}
	return nil
}

func AddSyntheticLeadingComment(node Node, kind CommentKind, text string, hasTrailingNewLine bool) {
	emit := emitNodeOf(node)
	emit.LeadingComments = append(emit.LeadingComments, SynthesizedComment{Kind: kind, Text: text, HasTrailingNewLine: hasTrailingNewLine})
}

func AddSyntheticTrailingComment(node Node, kind CommentKind, text string, hasTrailingNewLine bool) {
	emit := emitNodeOf(node)
	emit.TrailingComments = append(emit.TrailingComments, SynthesizedComment{Kind: kind, Text: text, HasTrailingNewLine: hasTrailingNewLine})
}

func GetConstantValue(node Node) (float64, bool) {
	if emit := node.Base().Emit; emit != nil && emit.ConstantValue != nil {
		return *emit.ConstantValue, true
	}
	return 0, false
}

func SetConstantValue(node Node, value float64) {
	emitNodeOf(node).ConstantValue = &value
}

func GetEmitHelpers(node Node) []*EmitHelper {
	if emit := node.Base().Emit; emit != nil {
		return emit.Helpers
	}
	return nil
}

func AddEmitHelper(node Node, helper *EmitHelper) {
	emit := emitNodeOf(node)
	for _, existing := range emit.Helpers {
		if existing == helper {
			return
		}
	}
	emit.Helpers = append(emit.Helpers, helper)
}

func GetStartsOnNewLine(node Node) OptionalBool {
	if emit := node.Base().Emit; emit != nil {
		return emit.StartsOnNewLine
	}
	return Unspecified
}

func SetStartsOnNewLine(node Node, value bool) {
	if value {
		emitNodeOf(node).StartsOnNewLine = True
	} else {
		emitNodeOf(node).StartsOnNewLine = False
	}
}

// CompareEmitHelpers orders helpers by priority and then by name, so the
// order does not depend on which file asked for a helper first.
func CompareEmitHelpers(x *EmitHelper, y *EmitHelper) int {
	if x == y {
		return 0
	}
	switch {
	case x.Priority == nil && y.Priority != nil:
		return 1
	case x.Priority != nil && y.Priority == nil:
		return -1
	case x.Priority != nil && y.Priority != nil && *x.Priority != *y.Priority:
		if *x.Priority < *y.Priority {
			return -1
		}
		return 1
	}
	switch {
	case x.Name < y.Name:
		return -1
	case x.Name > y.Name:
		return 1
	}
	return 0
}
