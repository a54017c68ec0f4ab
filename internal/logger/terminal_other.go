//go:build !darwin && !linux

package logger

import "os"

const SupportsColorEscapes = false

func GetTerminalInfo(file *os.File) TerminalInfo {
	if stat, err := file.Stat(); err == nil && stat.Mode()&os.ModeCharDevice != 0 {
		return TerminalInfo{IsTTY: true}
	}
	return TerminalInfo{}
}
