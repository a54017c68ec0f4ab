package emitter

import (
	"strings"

	"github.com/webcarrot/tsemit/internal/ast"
	"github.com/webcarrot/tsemit/internal/config"
	"github.com/webcarrot/tsemit/internal/fs"
)

const bundleInfoExtension = ".tsbundleinfo"

// OutputPaths lists every file one source file or bundle can produce. Empty
// paths are not written.
type OutputPaths struct {
	JSFilePath          string
	SourceMapFilePath   string
	DeclarationFilePath string
	DeclarationMapPath  string
	BundleInfoPath      string
}

// All returns the non-empty paths in the order they are written.
func (paths OutputPaths) All() []string {
	var all []string
	for _, path := range []string{paths.JSFilePath, paths.SourceMapFilePath, paths.BundleInfoPath, paths.DeclarationFilePath, paths.DeclarationMapPath} {
		if path != "" {
			all = append(all, path)
		}
	}
	return all
}

// OutputPathsFor computes where the outputs of "node" (a source file or a
// bundle) go. With "forceDeclarationPaths" the declaration paths are filled
// in even when declarations are turned off.
func OutputPathsFor(node ast.Node, host Host, forceDeclarationPaths bool) OutputPaths {
	options := host.Options()
	files := host.FS()

	if _, ok := node.(*ast.Bundle); ok {
		var paths OutputPaths
		outPath := options.OutFile
		if !options.EmitDeclarationOnly {
			paths.JSFilePath = outPath
			paths.SourceMapFilePath = sourceMapFilePath(paths.JSFilePath, options)
		}
		if forceDeclarationPaths || options.Declaration {
			paths.DeclarationFilePath = fs.WithoutExt(files, outPath) + ".d.ts"
			if options.DeclarationMap {
				paths.DeclarationMapPath = paths.DeclarationFilePath + ".map"
			}
		}
		if options.References && paths.JSFilePath != "" {
			paths.BundleInfoPath = fs.WithoutExt(files, paths.JSFilePath) + bundleInfoExtension
		}
		return paths
	}

	sourceFile := node.(*ast.SourceFile)
	var paths OutputPaths
	ownOutputFilePath := ownEmitOutputFilePath(sourceFile.FileName, host, outputExtension(sourceFile, options))

	// A JSON file that would be written over itself is left alone
	isJSON := sourceFile.IsJSON()
	isJSONEmittedToSameLocation := isJSON && samePath(files, sourceFile.FileName, ownOutputFilePath)
	if !options.EmitDeclarationOnly && !isJSONEmittedToSameLocation {
		paths.JSFilePath = ownOutputFilePath
		if !isJSON {
			paths.SourceMapFilePath = sourceMapFilePath(paths.JSFilePath, options)
		}
	}

	if (forceDeclarationPaths || options.Declaration) && !isSourceFileJS(sourceFile) && !isJSON {
		paths.DeclarationFilePath = declarationOutputFilePath(sourceFile.FileName, host)
		if options.DeclarationMap {
			paths.DeclarationMapPath = paths.DeclarationFilePath + ".map"
		}
	}
	return paths
}

func sourceMapFilePath(jsFilePath string, options *config.Options) string {
	if jsFilePath != "" && options.SourceMap && !options.InlineSourceMap {
		return jsFilePath + ".map"
	}
	return ""
}

func isSourceFileJS(sourceFile *ast.SourceFile) bool {
	return sourceFile.ScriptKind == ast.ScriptKindJS || sourceFile.ScriptKind == ast.ScriptKindJSX
}

// JavaScript inputs keep a ".jsx" extension only when they had one. A TSX
// input becomes ".jsx" when its JSX syntax is preserved.
func outputExtension(sourceFile *ast.SourceFile, options *config.Options) string {
	if sourceFile.IsJSON() {
		return ".json"
	}
	if options.JSX == config.JSXPreserve {
		if isSourceFileJS(sourceFile) {
			if strings.HasSuffix(sourceFile.FileName, ".jsx") {
				return ".jsx"
			}
		} else if sourceFile.ScriptKind == ast.ScriptKindTSX {
			return ".jsx"
		}
	}
	return ".js"
}

// sourceFilePathInNewDir moves "fileName" from the common source directory
// into "newDir", keeping its relative location.
func sourceFilePathInNewDir(fileName string, host Host, newDir string) string {
	files := host.FS()
	abs, _ := files.Abs(fileName)
	rel, ok := files.Rel(host.CommonSourceDirectory(), abs)
	if !ok {
		rel = files.Base(abs)
	}
	return files.Join(newDir, rel)
}

func ownEmitOutputFilePath(fileName string, host Host, extension string) string {
	options := host.Options()
	path := fileName
	if options.OutDir != "" {
		path = sourceFilePathInNewDir(fileName, host, options.OutDir)
	}
	return fs.WithoutExt(host.FS(), path) + extension
}

func declarationOutputFilePath(fileName string, host Host) string {
	options := host.Options()
	outputDir := options.DeclarationDir
	if outputDir == "" {
		outputDir = options.OutDir
	}
	path := fileName
	if outputDir != "" {
		path = sourceFilePathInNewDir(fileName, host, outputDir)
	}
	return fs.WithoutExt(host.FS(), path) + ".d.ts"
}

func samePath(files fs.FS, a string, b string) bool {
	absA, okA := files.Abs(a)
	absB, okB := files.Abs(b)
	return okA && okB && absA == absB
}
