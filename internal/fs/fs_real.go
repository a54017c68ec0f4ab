package fs

import (
	"os"
	"path/filepath"

	"github.com/webcarrot/tsemit/internal/errors"
)

type realFS struct {
	cwd string
}

func RealFS() FS {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "/"
	} else if path, err := filepath.EvalSymlinks(cwd); err == nil {
		// Outputs are compared against inputs by path, so the working
		// directory is resolved the same way input paths are
		cwd = path
	}
	return &realFS{cwd: cwd}
}

func (fs *realFS) ReadFile(path string) (string, error) {
	buffer, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading %q", path)
	}
	return string(buffer), nil
}

func (fs *realFS) WriteFile(path string, contents string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "creating directory for %q", path)
	}
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		return errors.Wrapf(err, "writing %q", path)
	}
	return nil
}

func (fs *realFS) SameFile(a string, b string) bool {
	keyA, err := fileKeyOf(a)
	if err != nil {
		return false
	}
	keyB, err := fileKeyOf(b)
	if err != nil {
		return false
	}
	return keyA == keyB
}

func (fs *realFS) Abs(p string) (string, bool) {
	if !filepath.IsAbs(p) {
		p = filepath.Join(fs.cwd, p)
	}
	return filepath.Clean(p), true
}

func (*realFS) Dir(p string) string {
	return filepath.Dir(p)
}

func (*realFS) Base(p string) string {
	return filepath.Base(p)
}

func (*realFS) Ext(p string) string {
	return filepath.Ext(p)
}

func (*realFS) Join(parts ...string) string {
	return filepath.Clean(filepath.Join(parts...))
}

func (fs *realFS) Cwd() string {
	return fs.cwd
}

func (*realFS) Rel(base string, target string) (string, bool) {
	if rel, err := filepath.Rel(base, target); err == nil {
		return rel, true
	}
	return "", false
}
