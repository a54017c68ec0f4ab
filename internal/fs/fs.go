package fs

// This is the file system the orchestrator reads AST documents from and
// writes outputs to. The mock implementation keeps everything in memory and
// uses Unix-style paths regardless of the platform so tests are stable.

import (
	"strings"
)

type FS interface {
	ReadFile(path string) (string, error)

	// Parent directories are created as needed
	WriteFile(path string, contents string) error

	// SameFile reports whether both paths name the same file on disk. Paths
	// that don't exist are never the same file.
	SameFile(a string, b string) bool

	// This is part of the interface because the mock interface used for tests
	// should not depend on file system behavior (i.e. different slashes for
	// Windows) while the real interface should.
	Abs(path string) (string, bool)
	Dir(path string) string
	Base(path string) string
	Ext(path string) string
	Join(parts ...string) string
	Cwd() string
	Rel(base string, target string) (string, bool)
}

// WithoutExt removes the final extension of "path". Declaration file names
// lose both parts of ".d.ts".
func WithoutExt(fs FS, path string) string {
	if strings.HasSuffix(path, ".d.ts") {
		return path[:len(path)-len(".d.ts")]
	}
	return path[:len(path)-len(fs.Ext(path))]
}

// CommonDir returns the deepest directory that contains every one of
// "paths". The paths are expected to be absolute.
func CommonDir(fs FS, paths []string) string {
	if len(paths) == 0 {
		return fs.Cwd()
	}
	common := fs.Dir(paths[0])
	for _, path := range paths[1:] {
		for {
			rel, ok := fs.Rel(common, path)
			if ok && rel != ".." && !strings.HasPrefix(rel, "../") && !strings.HasPrefix(rel, "..\\") {
				break
			}
			parent := fs.Dir(common)
			if parent == common {
				break
			}
			common = parent
		}
	}
	return common
}
