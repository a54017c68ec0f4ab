//go:build !darwin && !freebsd && !linux
// +build !darwin,!freebsd,!linux

package fs

import (
	"os"
	"path/filepath"
)

// Without stat identity the resolved absolute path has to do
type fileKey struct {
	path string
}

func fileKeyOf(path string) (fileKey, error) {
	if _, err := os.Stat(path); err != nil {
		return fileKey{}, err
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return fileKey{}, err
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return fileKey{}, err
	}
	return fileKey{path: abs}, nil
}
