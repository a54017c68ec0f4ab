package fs

// This is a mock implementation of the "fs" module for use with tests. It does
// not actually read from the file system. Instead, it reads from a pre-specified
// map of file paths to files, and writes go into the same map.

import (
	"path"
	"sort"
	"strings"
	"sync"
	"syscall"

	"github.com/webcarrot/tsemit/internal/errors"
)

type MockFS struct {
	mutex         sync.Mutex
	files         map[string]string
	absWorkingDir string
}

func NewMockFS(input map[string]string, absWorkingDir string) *MockFS {
	files := make(map[string]string, len(input))
	for k, v := range input {
		files[k] = v
	}
	return &MockFS{files: files, absWorkingDir: absWorkingDir}
}

func (fs *MockFS) ReadFile(path string) (string, error) {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()
	if contents, ok := fs.files[path]; ok {
		return contents, nil
	}
	return "", errors.Wrapf(syscall.ENOENT, "reading %q", path)
}

func (fs *MockFS) WriteFile(path string, contents string) error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()
	fs.files[path] = contents
	return nil
}

// Paths in the mock are canonical, so equal paths are the same file
func (fs *MockFS) SameFile(a string, b string) bool {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()
	_, ok := fs.files[a]
	return ok && a == b
}

// Files returns the paths of every file, sorted.
func (fs *MockFS) Files() []string {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()
	paths := make([]string, 0, len(fs.files))
	for k := range fs.files {
		paths = append(paths, k)
	}
	sort.Strings(paths)
	return paths
}

func (fs *MockFS) Abs(p string) (string, bool) {
	if !path.IsAbs(p) {
		p = path.Join(fs.absWorkingDir, p)
	}
	return path.Clean(p), true
}

func (*MockFS) Dir(p string) string {
	return path.Dir(p)
}

func (*MockFS) Base(p string) string {
	return path.Base(p)
}

func (*MockFS) Ext(p string) string {
	return path.Ext(p)
}

func (*MockFS) Join(parts ...string) string {
	return path.Clean(path.Join(parts...))
}

func (fs *MockFS) Cwd() string {
	return fs.absWorkingDir
}

func splitOnSlash(path string) (string, string) {
	if slash := strings.IndexByte(path, '/'); slash != -1 {
		return path[:slash], path[slash+1:]
	}
	return path, ""
}

func (*MockFS) Rel(base string, target string) (string, bool) {
	base = path.Clean(base)
	target = path.Clean(target)

	// Base cases
	if base == "" || base == "." {
		return target, true
	}
	if base == target {
		return ".", true
	}

	// Find the common parent directory
	for {
		bHead, bTail := splitOnSlash(base)
		tHead, tTail := splitOnSlash(target)
		if bHead != tHead {
			break
		}
		base = bTail
		target = tTail
	}

	// Stop now if base is a subpath of target
	if base == "" {
		return target, true
	}

	// Traverse up to the common parent
	commonParent := strings.Repeat("../", strings.Count(base, "/")+1)

	// Stop now if target is a subpath of base
	if target == "" {
		return commonParent[:len(commonParent)-1], true
	}

	// Otherwise, down to the parent
	return commonParent + target, true
}
