//go:build darwin || linux

package logger

import (
	"os"

	"golang.org/x/sys/unix"
)

const SupportsColorEscapes = true

// GetTerminalInfo reports whether "file" is a terminal, and its width when
// the window size is known. Colors are turned off for TERM=dumb and when
// NO_COLOR is set.
func GetTerminalInfo(file *os.File) (info TerminalInfo) {
	fd := int(file.Fd())
	if _, err := unix.IoctlGetTermios(fd, ioctlReadTermios); err != nil {
		return
	}

	info.IsTTY = true
	info.UseColorEscapes = os.Getenv("TERM") != "dumb" && os.Getenv("NO_COLOR") == ""
	if size, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ); err == nil {
		info.Width = int(size.Col)
	}
	return
}
