//go:build darwin || freebsd || linux
// +build darwin freebsd linux

package fs

import (
	"golang.org/x/sys/unix"
)

// Two paths name the same file when they share a device and inode, which
// also catches hard links and symlinks
type fileKey struct {
	dev   uint64
	inode uint64
}

func fileKeyOf(path string) (fileKey, error) {
	stat := unix.Stat_t{}
	if err := unix.Stat(path, &stat); err != nil {
		return fileKey{}, err
	}
	return fileKey{dev: uint64(stat.Dev), inode: uint64(stat.Ino)}, nil
}
