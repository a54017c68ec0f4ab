package emitter

import (
	"github.com/webcarrot/tsemit/internal/ast"
	"github.com/webcarrot/tsemit/internal/config"
	"github.com/webcarrot/tsemit/internal/errors"
	"github.com/webcarrot/tsemit/internal/fs"
)

const byteOrderMark = "\uFEFF"

// Resolver answers the questions about names that only the checker that
// produced the tree can answer.
type Resolver interface {
	HasGlobalName(name string) bool

	// Marks the declarations an exported alias refers to as visible, so that
	// a declaration-only emit keeps them
	CollectLinkedAliases(name *ast.Identifier)
}

// Host provides the configuration, paths and file access of an emit run.
type Host interface {
	Options() *config.Options
	FS() fs.FS
	CommonSourceDirectory() string

	// Blocked outputs are skipped, for example because they would overwrite
	// an input
	IsEmitBlocked(path string) bool

	WriteFile(path string, text string, writeBOM bool) error
}

type fsHost struct {
	fs        fs.FS
	options   config.Options
	inputs    []string
	commonDir string
}

// NewHost returns a host that reads and writes through "files". An output
// path that names one of "inputFiles" is blocked. The common source
// directory is the root directory option when set, or else the deepest
// directory containing every input.
func NewHost(files fs.FS, options config.Options, inputFiles []string) Host {
	inputs := make([]string, 0, len(inputFiles))
	for _, input := range inputFiles {
		if abs, ok := files.Abs(input); ok {
			inputs = append(inputs, abs)
		}
	}

	commonDir := options.RootDir
	if commonDir != "" {
		if abs, ok := files.Abs(commonDir); ok {
			commonDir = abs
		}
	} else {
		commonDir = fs.CommonDir(files, inputs)
	}

	return &fsHost{fs: files, options: options, inputs: inputs, commonDir: commonDir}
}

func (h *fsHost) Options() *config.Options      { return &h.options }
func (h *fsHost) FS() fs.FS                     { return h.fs }
func (h *fsHost) CommonSourceDirectory() string { return h.commonDir }

func (h *fsHost) IsEmitBlocked(path string) bool {
	abs, ok := h.fs.Abs(path)
	if !ok {
		return false
	}
	for _, input := range h.inputs {
		if input == abs || h.fs.SameFile(input, abs) {
			return true
		}
	}
	return false
}

func (h *fsHost) WriteFile(path string, text string, writeBOM bool) error {
	if writeBOM {
		text = byteOrderMark + text
	}
	if err := h.fs.WriteFile(path, text); err != nil {
		return errors.Wrapf(err, "emitting %q", path)
	}
	return nil
}
