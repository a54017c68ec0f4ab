package printer

// The printer turns a tree of ast nodes back into source text. Every node is
// printed by running it through a short pipeline of phases:
//
//	notification -> substitution -> comments -> source maps -> emit
//
// A phase that does not apply to a node is skipped, and each phase that does
// apply calls into the remaining phases to print the node itself. The last
// phase is a large switch over the node type that writes the tokens.
//
// A Printer is a session object. It owns the name tables, the comment state
// and the source map state of one print call and resets all of them when the
// call returns, so a single instance can be reused for sequential calls (but
// never concurrently).

import (
	"fmt"
	"strings"
	"sync"

	"github.com/webcarrot/tsemit/internal/ast"
	"github.com/webcarrot/tsemit/internal/comments"
	"github.com/webcarrot/tsemit/internal/config"
	"github.com/webcarrot/tsemit/internal/errors"
	"github.com/webcarrot/tsemit/internal/namegen"
	"github.com/webcarrot/tsemit/internal/scanner"
	"github.com/webcarrot/tsemit/internal/sourcemap"
	"github.com/webcarrot/tsemit/internal/writer"
)

// Hint tells the printer what syntactic role a node is printed in. Some
// nodes (identifiers in particular) print differently depending on it.
type Hint uint8

const (
	HintSourceFile Hint = iota
	HintExpression
	HintIdentifierName
	HintMappedTypeParameter
	HintUnspecified
	HintEmbeddedStatement
)

var hintNames = []string{"source-file", "expression", "identifier-name", "mapped-type-parameter", "unspecified", "embedded-statement"}

func (h Hint) String() string {
	if int(h) < len(hintNames) {
		return hintNames[h]
	}
	return fmt.Sprintf("hint(%d)", h)
}

func ParseHint(text string) (Hint, error) {
	for i, name := range hintNames {
		if name == text {
			return Hint(i), nil
		}
	}
	return 0, errors.WithHintf(errors.Newf("unknown emit hint %q", text),
		"valid hints are: %s", strings.Join(hintNames, ", "))
}

type Options struct {
	Target config.ScriptTarget
	Module config.ModuleKind

	// Defaults to "\n"
	NewLine string

	// Defaults to 4
	IndentSize int

	RemoveComments      bool
	OnlyPrintJSDocStyle bool
	NoEmitHelpers       bool

	// Set when a source map generator will be passed to WriteFile or
	// WriteBundle. String and template literals are then written with their
	// original text.
	SourceMap     bool
	InlineSources bool

	// Drop statement-terminating semicolons at the end of a line
	OmitTrailingSemicolon bool

	// Never escape non-ASCII characters in string literals
	NeverASCIIEscape bool
}

func OptionsFromConfig(options *config.Options) Options {
	return Options{
		Target:         options.Target,
		Module:         options.Module,
		NewLine:        options.NewLineString(),
		IndentSize:     options.IndentSize,
		RemoveComments: options.RemoveComments,
		NoEmitHelpers:  options.NoEmitHelpers,
		SourceMap:      options.SourceMapsEnabled(),
		InlineSources:  options.InlineSources,
	}
}

// Handlers are the hooks a transformation stage can install. All of them
// are optional.
type Handlers struct {
	// Reports names that resolve to a global, which generated names must
	// not shadow
	HasGlobalName func(name string) bool

	// Called instead of printing a node for which IsEmitNotificationEnabled
	// returns true. The hook prints the node (or a different one) by calling
	// "emit", which runs the remaining phases of the pipeline.
	OnEmitNode                func(hint Hint, node ast.Node, emit func(hint Hint, node ast.Node))
	IsEmitNotificationEnabled func(node ast.Node) bool

	// Returns a replacement for the node, or the node itself
	SubstituteNode func(hint Hint, node ast.Node) ast.Node

	OnBeforeEmitNodeList func(list *ast.NodeList)
	OnAfterEmitNodeList  func(list *ast.NodeList)
	OnBeforeEmitToken    func(token *ast.TokenNode)
	OnAfterEmitToken     func(token *ast.TokenNode)
}

// ErrInternal marks errors recovered from an InternalError panic.
var ErrInternal = errors.New("internal emitter error")

// InternalError is the panic value for a tree the printer cannot print: a
// node in a position its hint does not allow, or a node type the dispatch
// does not know. It always means the tree was built incorrectly.
type InternalError struct {
	Hint   Hint
	Node   ast.Node
	Reason string
}

func (e InternalError) Error() string {
	return fmt.Sprintf("Internal error: %s (node %T, hint %s)", e.Reason, e.Node, e.Hint)
}

// BundleInfo locates the output of the bundle's own source files within the
// concatenated text. Offsets are -1 until known.
type BundleInfo struct {
	OriginalOffset int `json:"originalOffset"`
	TotalLength    int `json:"totalLength"`
}

func NewBundleInfo() *BundleInfo {
	return &BundleInfo{OriginalOffset: -1, TotalLength: -1}
}

type Printer struct {
	options  Options
	handlers Handlers
	phases   []phase

	writer    writer.Writer
	ownWriter *writer.TextWriter

	// The writer used for identifier text, swapped for parameter and
	// property names
	write func(text string)

	names    *namegen.Generator
	comments *comments.Emitter

	currentSourceFile *ast.SourceFile
	isOwnFileEmit     bool
	bundledHelpers    map[string]bool
	lastSubstitution  ast.Node

	generator            *sourcemap.Generator
	sourceMapsDisabled   bool
	sourceMapSource      *ast.SourceMapSource
	sourceMapSourceIndex int
	sourceMapSources     map[*ast.SourceFile]*ast.SourceMapSource
	lastMappedLine       int
	lastMappedColumn     int
	lastMappedLineStart  bool
}

func New(options Options, handlers Handlers) *Printer {
	p := &Printer{names: namegen.NewGenerator()}
	p.configure(options, handlers)
	return p
}

func (p *Printer) configure(options Options, handlers Handlers) {
	p.options = options
	p.handlers = handlers
	p.phases = []phase{notificationPhase{}, substitutionPhase{}, commentsPhase{}, sourceMapsPhase{}, emitPhase{}}
	p.comments = comments.NewEmitter(comments.Options{
		RemoveComments:      options.RemoveComments,
		OnlyPrintJSDocStyle: options.OnlyPrintJSDocStyle,
	})
	p.comments.EmitPos = p.emitPos
	p.write = func(text string) { p.writer.Write(text) }
	p.ownWriter = nil
	p.reset()
}

var printerPool = sync.Pool{}

// Get returns a pooled printer configured with the given options. Return it
// with Put when done.
func Get(options Options, handlers Handlers) *Printer {
	if p, ok := printerPool.Get().(*Printer); ok {
		p.configure(options, handlers)
		return p
	}
	return New(options, handlers)
}

func Put(p *Printer) {
	p.reset()
	p.handlers = Handlers{}
	if p.ownWriter != nil {
		p.ownWriter.Clear()
	}
	printerPool.Put(p)
}

////////////////////////////////////////////////////////////////////////////////
// Entry points

// PrintNode prints one node to a string. Source files, bundles and unparsed
// sources are forwarded to their own entry points.
func (p *Printer) PrintNode(hint Hint, node ast.Node, sourceFile *ast.SourceFile) string {
	switch hint {
	case HintSourceFile:
		if _, ok := node.(*ast.SourceFile); !ok {
			panic(InternalError{Hint: hint, Node: node, Reason: "expected a source file"})
		}
	case HintIdentifierName:
		if _, ok := node.(*ast.Identifier); !ok {
			panic(InternalError{Hint: hint, Node: node, Reason: "expected an identifier"})
		}
	case HintExpression:
		if !isExpressionNode(node) {
			panic(InternalError{Hint: hint, Node: node, Reason: "expected an expression"})
		}
	}

	switch n := node.(type) {
	case *ast.SourceFile:
		return p.PrintFile(n)
	case *ast.Bundle:
		return p.PrintBundle(n)
	case *ast.UnparsedSource:
		return p.printUnparsedSource(n)
	}

	p.WriteNode(hint, node, sourceFile, p.beginPrint())
	return p.endPrint()
}

// PrintList prints a list of nodes the way it would appear as a child list
// of "format".
func (p *Printer) PrintList(format ast.ListFormat, list *ast.NodeList, sourceFile *ast.SourceFile) string {
	p.WriteList(format, list, sourceFile, p.beginPrint())
	return p.endPrint()
}

func (p *Printer) PrintFile(sourceFile *ast.SourceFile) string {
	p.WriteFile(sourceFile, p.beginPrint(), nil)
	return p.endPrint()
}

func (p *Printer) PrintBundle(bundle *ast.Bundle) string {
	p.WriteBundle(bundle, nil, p.beginPrint(), nil)
	return p.endPrint()
}

func (p *Printer) printUnparsedSource(unparsed *ast.UnparsedSource) string {
	output := p.beginPrint()
	previousWriter := p.writer
	p.setWriter(output, nil)
	p.print(HintUnspecified, unparsed, nil)
	p.reset()
	p.writer = previousWriter
	return p.endPrint()
}

// WriteNode prints one node into an externally owned writer.
func (p *Printer) WriteNode(hint Hint, node ast.Node, sourceFile *ast.SourceFile, output writer.Writer) {
	previousWriter := p.writer
	p.setWriter(output, nil)
	p.print(hint, node, sourceFile)
	p.reset()
	p.writer = previousWriter
}

func (p *Printer) WriteList(format ast.ListFormat, list *ast.NodeList, sourceFile *ast.SourceFile, output writer.Writer) {
	previousWriter := p.writer
	p.setWriter(output, nil)
	if sourceFile != nil {
		p.setSourceFile(sourceFile)
	}
	p.emitList(nil, list, format)
	p.reset()
	p.writer = previousWriter
}

// WriteFile prints a whole source file. Mappings are added to "generator"
// when it is not nil.
func (p *Printer) WriteFile(sourceFile *ast.SourceFile, output writer.Writer, generator *sourcemap.Generator) {
	p.isOwnFileEmit = true
	previousWriter := p.writer
	p.setWriter(output, generator)
	p.emitShebangIfNeeded(sourceFile)
	p.emitPrologueDirectivesIfNeeded(sourceFile)
	p.print(HintSourceFile, sourceFile, sourceFile)
	p.reset()
	p.writer = previousWriter
}

// WriteBundle prints the prepended sources and then every source file of
// the bundle. The offsets in "info" are filled in when it is not nil.
func (p *Printer) WriteBundle(bundle *ast.Bundle, info *BundleInfo, output writer.Writer, generator *sourcemap.Generator) {
	p.isOwnFileEmit = false
	previousWriter := p.writer
	p.setWriter(output, generator)
	p.emitShebangIfNeeded(bundle)
	p.emitPrologueDirectivesIfNeeded(bundle)
	p.emitHelpers(bundle)
	p.emitSyntheticTripleSlashReferencesIfNeeded(bundle)

	for _, prepend := range bundle.Prepends {
		p.writeLine()
		p.print(HintUnspecified, prepend, nil)
	}

	if info != nil {
		info.OriginalOffset = p.writer.TextPos()
	}

	for _, sourceFile := range bundle.SourceFiles {
		p.print(HintSourceFile, sourceFile, sourceFile)
	}

	if info != nil {
		info.TotalLength = p.writer.TextPos()
	}
	p.reset()
	p.writer = previousWriter
}

func (p *Printer) beginPrint() writer.Writer {
	if p.ownWriter == nil {
		p.ownWriter = writer.NewTextWriter(writer.Options{
			NewLine:    p.options.NewLine,
			IndentSize: p.options.IndentSize,
		})
	}
	return p.ownWriter
}

func (p *Printer) endPrint() string {
	text := p.ownWriter.Text()
	p.ownWriter.Clear()
	return text
}

func (p *Printer) print(hint Hint, node ast.Node, sourceFile *ast.SourceFile) {
	if sourceFile != nil {
		p.setSourceFile(sourceFile)
	}
	p.runPipeline(0, hint, node)
}

func (p *Printer) setSourceFile(sourceFile *ast.SourceFile) {
	p.currentSourceFile = sourceFile
	p.comments.SetSourceFile(sourceFile)
	if sourceFile != nil {
		p.setSourceMapSource(p.sourceMapSourceFor(sourceFile))
	}
}

func (p *Printer) setWriter(output writer.Writer, generator *sourcemap.Generator) {
	if output != nil && p.options.OmitTrailingSemicolon {
		output = writer.NewTrailingSemicolonOmittingWriter(output)
	}
	p.writer = output
	p.comments.SetWriter(output)
	p.generator = generator
	p.sourceMapsDisabled = output == nil || generator == nil
}

func (p *Printer) reset() {
	p.names.Reset()
	p.names.SetFileLevelUniqueCheck(p.isFileLevelUniqueName)
	p.currentSourceFile = nil
	p.isOwnFileEmit = false
	p.comments.Reset()
	p.comments.EmitPos = p.emitPos
	p.setWriter(nil, nil)
	p.bundledHelpers = make(map[string]bool)
	p.lastSubstitution = nil
	p.sourceMapSource = nil
	p.sourceMapSourceIndex = -1
	p.sourceMapSources = make(map[*ast.SourceFile]*ast.SourceMapSource)
	p.lastMappedLine = -1
	p.lastMappedColumn = -1
	p.lastMappedLineStart = false
}

func (p *Printer) isFileLevelUniqueName(name string) bool {
	if p.handlers.HasGlobalName != nil && p.handlers.HasGlobalName(name) {
		return false
	}
	return p.currentSourceFile == nil || !p.currentSourceFile.Identifiers[name]
}

////////////////////////////////////////////////////////////////////////////////
// Pipeline

type phase interface {
	enabled(p *Printer, hint Hint, node ast.Node) bool

	// "next" is the index of the phase that follows this one
	emit(p *Printer, hint Hint, node ast.Node, next int)
}

// runPipeline prints the node with the first enabled phase at or after
// "start".
func (p *Printer) runPipeline(start int, hint Hint, node ast.Node) {
	for i := start; i < len(p.phases); i++ {
		if p.phases[i].enabled(p, hint, node) {
			p.phases[i].emit(p, hint, node, i+1)
			return
		}
	}
}

type notificationPhase struct{}

func (notificationPhase) enabled(p *Printer, hint Hint, node ast.Node) bool {
	return p.handlers.OnEmitNode != nil &&
		(p.handlers.IsEmitNotificationEnabled == nil || p.handlers.IsEmitNotificationEnabled(node))
}

func (notificationPhase) emit(p *Printer, hint Hint, node ast.Node, next int) {
	p.handlers.OnEmitNode(hint, node, func(hint Hint, node ast.Node) {
		p.runPipeline(next, hint, node)
	})
}

type substitutionPhase struct{}

func (substitutionPhase) enabled(p *Printer, hint Hint, node ast.Node) bool {
	if p.handlers.SubstituteNode == nil {
		return false
	}
	p.lastSubstitution = p.handlers.SubstituteNode(hint, node)
	return p.lastSubstitution != node
}

func (substitutionPhase) emit(p *Printer, hint Hint, node ast.Node, next int) {
	substitute := p.lastSubstitution
	p.lastSubstitution = nil
	p.runPipeline(next, hint, substitute)
}

type commentsPhase struct{}

func (commentsPhase) enabled(p *Printer, hint Hint, node ast.Node) bool {
	_, isSourceFile := node.(*ast.SourceFile)
	return !isSourceFile && !p.comments.Disabled()
}

func (commentsPhase) emit(p *Printer, hint Hint, node ast.Node, next int) {
	p.comments.EmitNodeWithComments(node, func() {
		p.runPipeline(next, hint, node)
	})
}

type sourceMapsPhase struct{}

func (sourceMapsPhase) enabled(p *Printer, hint Hint, node ast.Node) bool {
	_, isSourceFile := node.(*ast.SourceFile)
	return !isSourceFile && !p.sourceMapsDisabled && !p.isInJSONFile()
}

func (sourceMapsPhase) emit(p *Printer, hint Hint, node ast.Node, next int) {
	if unparsed, ok := node.(*ast.UnparsedSource); ok && unparsed.SourceMapText != "" {
		// A map that fails to parse is ignored and the text is still written
		if parsed, err := sourcemap.Parse(unparsed.SourceMapText); err == nil {
			p.generator.AppendSourceMap(p.writer.Line(), p.writer.Column(), parsed, unparsed.SourceMapPath)
		}
		p.runPipeline(next, hint, node)
		return
	}

	r := ast.GetSourceMapRange(node)
	source := r.Source
	if source == nil {
		source = p.sourceMapSource
	}
	flags := ast.GetEmitFlags(node)
	_, isNotEmitted := node.(*ast.NotEmittedStatement)

	if !isNotEmitted && flags&ast.EmitFlagsNoLeadingSourceMap == 0 && r.Pos >= 0 {
		p.emitSourcePos(source, skipSourceTrivia(source, r.Pos))
	}

	if flags&ast.EmitFlagsNoNestedSourceMaps != 0 {
		p.sourceMapsDisabled = true
		p.runPipeline(next, hint, node)
		p.sourceMapsDisabled = false
	} else {
		p.runPipeline(next, hint, node)
	}

	if !isNotEmitted && flags&ast.EmitFlagsNoTrailingSourceMap == 0 && r.End >= 0 {
		p.emitSourcePos(source, r.End)
	}
}

type emitPhase struct{}

func (emitPhase) enabled(*Printer, Hint, ast.Node) bool { return true }

func (emitPhase) emit(p *Printer, hint Hint, node ast.Node, next int) {
	p.emitWithHint(hint, node)
}

////////////////////////////////////////////////////////////////////////////////
// Source maps

func (p *Printer) isInJSONFile() bool {
	return p.currentSourceFile != nil && p.currentSourceFile.IsJSON()
}

func isJSONSourceMapSource(source *ast.SourceMapSource) bool {
	return source != nil && strings.HasSuffix(source.FileName, ".json")
}

func skipSourceTrivia(source *ast.SourceMapSource, pos int) int {
	if source == nil {
		return pos
	}
	if source.SkipTrivia != nil {
		return source.SkipTrivia(pos)
	}
	return scanner.SkipTrivia(source.Text, pos)
}

// Each source file gets one SourceMapSource per session so its line starts
// are only computed once.
func (p *Printer) sourceMapSourceFor(sourceFile *ast.SourceFile) *ast.SourceMapSource {
	source, ok := p.sourceMapSources[sourceFile]
	if !ok {
		source = &ast.SourceMapSource{FileName: sourceFile.FileName, Text: sourceFile.Text}
		p.sourceMapSources[sourceFile] = source
	}
	return source
}

func (p *Printer) setSourceMapSource(source *ast.SourceMapSource) {
	if p.sourceMapsDisabled {
		return
	}
	p.sourceMapSource = source
	if source == nil || isJSONSourceMapSource(source) {
		return
	}
	p.sourceMapSourceIndex = p.generator.AddSource(source.FileName)
	if p.options.InlineSources {
		text := source.Text
		p.generator.SetSourceContent(p.sourceMapSourceIndex, &text)
	}
}

func (p *Printer) emitSourcePos(source *ast.SourceMapSource, pos int) {
	if source != p.sourceMapSource {
		saved := p.sourceMapSource
		savedIndex := p.sourceMapSourceIndex
		p.setSourceMapSource(source)
		p.emitPos(pos)
		p.sourceMapSource = saved
		p.sourceMapSourceIndex = savedIndex
	} else {
		p.emitPos(pos)
	}
}

// emitPos maps the current output position to "pos" in the current source.
func (p *Printer) emitPos(pos int) {
	source := p.sourceMapSource
	if p.sourceMapsDisabled || pos < 0 || source == nil || isJSONSourceMapSource(source) || pos > len(source.Text) {
		return
	}

	lineStarts := source.LineStarts()
	line, _ := ast.LineAndCharacterOf(lineStarts, pos)
	character := writer.UTF16Len(source.Text[lineStarts[line]:pos])

	// Indentation is only written together with the first text of a line,
	// so a position taken at the start of a line counts the pending indent
	// and can be ahead of the text that follows an outdent. That is the only
	// backwards step skipped here; any other one reaches the generator.
	generatedLine, generatedColumn := p.writer.Line(), p.writer.Column()
	if p.lastMappedLineStart && generatedLine == p.lastMappedLine && generatedColumn < p.lastMappedColumn {
		return
	}
	p.lastMappedLine, p.lastMappedColumn = generatedLine, generatedColumn
	p.lastMappedLineStart = p.writer.IsAtStartOfLine()

	p.generator.AddMapping(generatedLine, generatedColumn, p.sourceMapSourceIndex, line, character, -1)
}

// emitTokenWithSourceMap writes a token and maps its start and end, using
// the node's per-token range override when it has one.
func (p *Printer) emitTokenWithSourceMap(node ast.Node, token ast.Token, write func(string), tokenPos int) int {
	if p.sourceMapsDisabled || p.isInJSONFile() {
		return writeTokenText(token, write, tokenPos)
	}

	var flags ast.EmitFlags
	var r *ast.SourceMapRange
	if node != nil {
		flags = ast.GetEmitFlags(node)
		r = ast.GetTokenSourceMapRange(node, token)
	}
	source := p.sourceMapSource
	if r != nil {
		if r.Source != nil {
			source = r.Source
		}
		tokenPos = r.Pos
	}

	tokenPos = skipSourceTrivia(source, tokenPos)
	if flags&ast.EmitFlagsNoTokenLeadingSourceMaps == 0 && tokenPos >= 0 {
		p.emitSourcePos(source, tokenPos)
	}

	tokenPos = writeTokenText(token, write, tokenPos)

	if r != nil {
		tokenPos = r.End
	}
	if flags&ast.EmitFlagsNoTokenTrailingSourceMaps == 0 && tokenPos >= 0 {
		p.emitSourcePos(source, tokenPos)
	}
	return tokenPos
}
