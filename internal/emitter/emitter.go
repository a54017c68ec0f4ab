package emitter

// The emitter drives the printer over every output of a compilation: one
// JavaScript file (plus source map) and one declaration file (plus
// declaration map) per source file, or a single concatenated bundle of each
// when an output file is configured.

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/webcarrot/tsemit/internal/ast"
	"github.com/webcarrot/tsemit/internal/config"
	"github.com/webcarrot/tsemit/internal/errors"
	"github.com/webcarrot/tsemit/internal/helpers"
	"github.com/webcarrot/tsemit/internal/logger"
	"github.com/webcarrot/tsemit/internal/printer"
	"github.com/webcarrot/tsemit/internal/sourcemap"
	"github.com/webcarrot/tsemit/internal/writer"
)

// ErrEmitBlocked marks the error returned by Result.Err when at least one
// output was not written.
var ErrEmitBlocked = errors.New("emit skipped")

// DeclarationTransform turns a source file or bundle into the tree of its
// declaration file. Any diagnostic it returns blocks that declaration
// output only.
type DeclarationTransform func(node ast.Node) (ast.Node, []logger.Msg)

type EmitOptions struct {
	// Text from earlier builds placed in front of a bundle's own files
	Prepends []*ast.UnparsedSource

	EmitOnlyDeclarations bool

	// Hooks of the transformation that produced the trees
	Handlers printer.Handlers

	// Nil means the trees are printed as declarations unchanged
	DeclarationTransform DeclarationTransform
	DeclarationHandlers  printer.Handlers
}

type SourceMapData struct {
	InputSourceFileNames []string
	SourceMap            *sourcemap.SourceMap
}

type Result struct {
	EmitSkipped  bool
	Diagnostics  []logger.Msg
	EmittedFiles []string
	SourceMaps   []SourceMapData
}

func (result Result) Err() error {
	if !result.EmitSkipped {
		return nil
	}
	err := errors.Mark(errors.New("some outputs were not written"), ErrEmitBlocked)
	for _, msg := range result.Diagnostics {
		err = errors.WithDetail(err, msg.String())
	}
	return err
}

type mapOptions struct {
	sourceMap       bool
	inlineSourceMap bool
	sourceRoot      string
	mapRoot         string
}

type emitter struct {
	resolver Resolver
	host     Host
	options  *config.Options
	emit     EmitOptions
	log      logger.Log
	runID    string

	writer       *writer.TextWriter
	bundleInfo   *printer.BundleInfo
	emitSkipped  bool
	emittedFiles []string
	sourceMaps   []SourceMapData
}

// EmitFiles writes the outputs of "sourceFiles". Declaration files among
// them produce nothing. A recovered printer assertion failure aborts the run
// and is returned as an error marked with printer.ErrInternal.
func EmitFiles(resolver Resolver, host Host, sourceFiles []*ast.SourceFile, options EmitOptions) (result Result, err error) {
	e := &emitter{
		resolver:   resolver,
		host:       host,
		options:    host.Options(),
		emit:       options,
		log:        logger.NewDeferLog(),
		runID:      uuid.New().String(),
		bundleInfo: printer.NewBundleInfo(),
	}
	e.writer = writer.NewTextWriter(writer.Options{
		NewLine:    e.options.NewLineString(),
		IndentSize: e.options.IndentSize,
	})

	start := time.Now()
	logger.Logger.Infow("Emit started", "run", e.runID, "files", len(sourceFiles))

	defer func() {
		if r := recover(); r != nil {
			internal, ok := r.(printer.InternalError)
			if !ok {
				panic(r)
			}
			stack := helpers.PrettyPrintedStack()
			logger.Logger.Errorw("Emit aborted", "run", e.runID, "error", internal.Error(), "stack", stack)
			err = errors.WithDetail(errors.Mark(errors.Wrap(internal, "emit aborted"), printer.ErrInternal), stack)
			result = Result{EmitSkipped: true, Diagnostics: e.log.Done()}
		}
	}()

	e.forEachEmittedFile(sourceFiles, e.emitSourceFileOrBundle)

	result = Result{
		EmitSkipped:  e.emitSkipped,
		Diagnostics:  e.log.Done(),
		EmittedFiles: e.emittedFiles,
		SourceMaps:   e.sourceMaps,
	}
	logger.Logger.Infow("Emit finished", "run", e.runID, "skipped", result.EmitSkipped,
		"diagnostics", len(result.Diagnostics), "duration", time.Since(start))
	return result, nil
}

// In bundle mode every file goes into one bundle. JSON files can't be
// concatenated, so they are left out of it.
func (e *emitter) forEachEmittedFile(sourceFiles []*ast.SourceFile, action func(paths OutputPaths, node ast.Node)) {
	var files []*ast.SourceFile
	for _, sourceFile := range sourceFiles {
		if sourceFile.IsDeclarationFile || (e.options.OutFile != "" && sourceFile.IsJSON()) {
			continue
		}
		files = append(files, sourceFile)
	}

	if e.options.OutFile != "" {
		if len(files) > 0 {
			bundle := &ast.Bundle{Prepends: e.emit.Prepends, SourceFiles: files}
			action(OutputPathsFor(bundle, e.host, e.emit.EmitOnlyDeclarations), bundle)
		}
		return
	}

	for _, sourceFile := range files {
		action(OutputPathsFor(sourceFile, e.host, e.emit.EmitOnlyDeclarations), sourceFile)
	}
}

func (e *emitter) emitSourceFileOrBundle(paths OutputPaths, node ast.Node) {
	e.emitJSFileOrBundle(node, paths)
	e.emitDeclarationFileOrBundle(node, paths)

	if !e.emitSkipped && e.options.ListEmittedFiles {
		if !e.emit.EmitOnlyDeclarations {
			for _, path := range []string{paths.JSFilePath, paths.SourceMapFilePath, paths.BundleInfoPath} {
				if path != "" {
					e.emittedFiles = append(e.emittedFiles, path)
				}
			}
		}
		for _, path := range []string{paths.DeclarationFilePath, paths.DeclarationMapPath} {
			if path != "" {
				e.emittedFiles = append(e.emittedFiles, path)
			}
		}
	}
}

func (e *emitter) reportBlocked(path string) {
	logger.Logger.Warnw("Output blocked", "run", e.runID, "path", path)
	e.log.AddError(&logger.MsgLocation{File: path},
		"Cannot write file \""+path+"\" because it would overwrite an input file")
}

func (e *emitter) handlers(handlers printer.Handlers) printer.Handlers {
	if handlers.HasGlobalName == nil && e.resolver != nil {
		handlers.HasGlobalName = e.resolver.HasGlobalName
	}
	return handlers
}

func (e *emitter) emitJSFileOrBundle(node ast.Node, paths OutputPaths) {
	if e.emit.EmitOnlyDeclarations || paths.JSFilePath == "" {
		return
	}

	// Neither the file nor its source map is written if either is blocked
	if e.host.IsEmitBlocked(paths.JSFilePath) {
		e.reportBlocked(paths.JSFilePath)
		e.emitSkipped = true
		return
	}
	if e.options.NoEmit {
		e.emitSkipped = true
		return
	}

	p := printer.Get(printer.OptionsFromConfig(e.options), e.handlers(e.emit.Handlers))
	defer printer.Put(p)

	e.printSourceFileOrBundle(paths.JSFilePath, paths.SourceMapFilePath, node, paths.BundleInfoPath, p, mapOptions{
		sourceMap:       e.options.SourceMap,
		inlineSourceMap: e.options.InlineSourceMap,
		sourceRoot:      e.options.SourceRoot,
		mapRoot:         e.options.MapRoot,
	})
}

func (e *emitter) emitDeclarationFileOrBundle(node ast.Node, paths OutputPaths) {
	if paths.DeclarationFilePath == "" {
		return
	}

	var input ast.Node
	switch n := node.(type) {
	case *ast.SourceFile:
		if isSourceFileJS(n) {
			return
		}
		input = n
		if e.emit.EmitOnlyDeclarations && !e.options.Declaration {
			e.collectLinkedAliases(n.Statements)
		}

	case *ast.Bundle:
		var files []*ast.SourceFile
		for _, sourceFile := range n.SourceFiles {
			if !isSourceFileJS(sourceFile) {
				files = append(files, sourceFile)
				if e.emit.EmitOnlyDeclarations && !e.options.Declaration {
					e.collectLinkedAliases(sourceFile.Statements)
				}
			}
		}
		input = &ast.Bundle{Prepends: n.Prepends, SourceFiles: files}
	}

	transformed := input
	var diagnostics []logger.Msg
	if e.emit.DeclarationTransform != nil {
		transformed, diagnostics = e.emit.DeclarationTransform(input)
	}
	for _, msg := range diagnostics {
		e.log.AddMsg(msg)
	}

	hostBlocked := e.host.IsEmitBlocked(paths.DeclarationFilePath)
	if hostBlocked {
		e.reportBlocked(paths.DeclarationFilePath)
	}
	blocked := len(diagnostics) > 0 || hostBlocked || e.options.NoEmit
	e.emitSkipped = e.emitSkipped || blocked

	// A declaration-only emit still produces the text of a declaration file
	// that has diagnostics
	if blocked && !(e.emit.EmitOnlyDeclarations && !hostBlocked && !e.options.NoEmit) {
		return
	}

	options := printer.OptionsFromConfig(e.options)
	options.NoEmitHelpers = true
	options.OnlyPrintJSDocStyle = true
	options.SourceMap = e.options.DeclarationMap
	options.InlineSources = false
	p := printer.Get(options, e.handlers(e.emit.DeclarationHandlers))
	defer printer.Put(p)

	// Neither inline option applies to declaration maps
	e.printSourceFileOrBundle(paths.DeclarationFilePath, paths.DeclarationMapPath, transformed, "", p, mapOptions{
		sourceMap:  e.options.DeclarationMap,
		sourceRoot: e.options.SourceRoot,
		mapRoot:    e.options.MapRoot,
	})
}

// collectLinkedAliases finds the names exported by "export =", "export
// default" and export specifiers.
func (e *emitter) collectLinkedAliases(statements *ast.NodeList) {
	if e.resolver == nil || statements == nil {
		return
	}
	for _, statement := range statements.Nodes {
		switch s := statement.(type) {
		case *ast.ExportAssignment:
			if id, ok := s.Expression.(*ast.Identifier); ok {
				e.resolver.CollectLinkedAliases(id)
			}

		case *ast.ExportDeclaration:
			if s.ExportClause != nil && s.ExportClause.Elements != nil {
				for _, element := range s.ExportClause.Elements.Nodes {
					if specifier, ok := element.(*ast.ExportSpecifier); ok {
						if specifier.PropertyName != nil {
							e.resolver.CollectLinkedAliases(specifier.PropertyName)
						} else if specifier.Name != nil {
							e.resolver.CollectLinkedAliases(specifier.Name)
						}
					}
				}
			}

		case *ast.ModuleDeclaration:
			for body := s.Body; body != nil; {
				if block, ok := body.(*ast.ModuleBlock); ok {
					e.collectLinkedAliases(block.Statements)
					break
				}
				nested, ok := body.(*ast.ModuleDeclaration)
				if !ok {
					break
				}
				body = nested.Body
			}
		}
	}
}

func (e *emitter) printSourceFileOrBundle(filePath string, sourceMapFilePath string, node ast.Node, bundleInfoPath string, p *printer.Printer, mapOptions mapOptions) {
	bundle, _ := node.(*ast.Bundle)
	sourceFile, _ := node.(*ast.SourceFile)

	var generator *sourcemap.Generator
	if e.shouldEmitSourceMaps(mapOptions, sourceFile) {
		generator = sourcemap.NewGenerator(sourcemap.Options{
			File:             e.host.FS().Base(filePath),
			SourceRoot:       sourceRoot(mapOptions),
			SourcesDirectory: e.sourceMapDirectory(mapOptions, filePath, sourceFile),
		})
	}

	if bundle != nil {
		p.WriteBundle(bundle, e.bundleInfo, e.writer, generator)
	} else {
		p.WriteFile(sourceFile, e.writer, generator)
	}

	if generator != nil {
		e.sourceMaps = append(e.sourceMaps, SourceMapData{
			InputSourceFileNames: generator.Sources(),
			SourceMap:            generator.SourceMap(),
		})

		if url := e.sourceMappingURL(mapOptions, generator, filePath, sourceMapFilePath, sourceFile); url != "" {
			if !e.writer.IsAtStartOfLine() {
				e.writer.RawWrite(e.writer.NewLine())
			}
			e.writer.WriteComment("//# sourceMappingURL=" + url)
		}

		if sourceMapFilePath != "" {
			e.writeFile(sourceMapFilePath, generator.String(), false)
		}
	} else {
		e.writer.WriteLine()
	}

	e.writeFile(filePath, e.writer.Text(), e.options.EmitBOM)

	if bundleInfoPath != "" {
		e.bundleInfo.TotalLength = e.writer.TextPos()
		info, err := json.MarshalIndent(e.bundleInfo, "", "  ")
		if err != nil {
			e.log.AddError(nil, errors.Wrap(err, "encoding bundle info").Error())
		} else {
			e.writeFile(bundleInfoPath, string(info), false)
		}
	}

	e.writer.Clear()
	e.bundleInfo = printer.NewBundleInfo()
}

func (e *emitter) writeFile(path string, text string, writeBOM bool) {
	if err := e.host.WriteFile(path, text, writeBOM); err != nil {
		e.log.AddError(&logger.MsgLocation{File: path}, err.Error())
		return
	}
	logger.Logger.Debugw("Wrote output", "run", e.runID, "path", path, "bytes", len(text))
}

// JSON outputs have no source map
func (e *emitter) shouldEmitSourceMaps(mapOptions mapOptions, sourceFile *ast.SourceFile) bool {
	return (mapOptions.sourceMap || mapOptions.inlineSourceMap) &&
		(sourceFile == nil || !strings.HasSuffix(sourceFile.FileName, ".json"))
}

// The source root always ends in a slash so source names can be appended
func sourceRoot(mapOptions mapOptions) string {
	root := strings.ReplaceAll(mapOptions.sourceRoot, "\\", "/")
	if root != "" && !strings.HasSuffix(root, "/") {
		root += "/"
	}
	return root
}

// mapRootDirectory is the directory the map of "sourceFile" is expected to
// be deployed to. Source files keep their location relative to the common
// source directory inside the map root.
func (e *emitter) mapRootDirectory(mapOptions mapOptions, sourceFile *ast.SourceFile) (string, bool) {
	files := e.host.FS()
	dir := strings.ReplaceAll(mapOptions.mapRoot, "\\", "/")
	if sourceFile != nil {
		dir = files.Dir(sourceFilePathInNewDir(sourceFile.FileName, e.host, dir))
	}
	if abs := strings.HasPrefix(dir, "/") || (len(dir) > 1 && dir[1] == ':'); abs {
		return dir, true
	}
	return files.Join(e.host.CommonSourceDirectory(), dir), false
}

func (e *emitter) sourceMapDirectory(mapOptions mapOptions, filePath string, sourceFile *ast.SourceFile) string {
	if mapOptions.sourceRoot != "" {
		return e.host.CommonSourceDirectory()
	}
	if mapOptions.mapRoot != "" {
		dir, _ := e.mapRootDirectory(mapOptions, sourceFile)
		return dir
	}
	files := e.host.FS()
	abs, _ := files.Abs(filePath)
	return files.Dir(abs)
}

func (e *emitter) sourceMappingURL(mapOptions mapOptions, generator *sourcemap.Generator, filePath string, sourceMapFilePath string, sourceFile *ast.SourceFile) string {
	if mapOptions.inlineSourceMap {
		return helpers.EncodeStringAsBase64DataURL("application/json", generator.String())
	}
	if sourceMapFilePath == "" {
		return ""
	}

	files := e.host.FS()
	sourceMapFile := files.Base(sourceMapFilePath)
	if mapOptions.mapRoot == "" {
		return sourceMapFile
	}

	dir, wasAbsolute := e.mapRootDirectory(mapOptions, sourceFile)
	if wasAbsolute {
		return files.Join(dir, sourceMapFile)
	}

	// A relative map root is resolved against the output file's directory
	abs, _ := files.Abs(filePath)
	rel, ok := files.Rel(files.Dir(abs), files.Join(dir, sourceMapFile))
	if !ok {
		return files.Join(dir, sourceMapFile)
	}
	return strings.ReplaceAll(rel, "\\", "/")
}
