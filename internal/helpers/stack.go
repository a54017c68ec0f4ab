package helpers

import (
	"runtime"
	"strconv"
	"strings"
)

// PrettyPrintedStack describes the calling goroutine's stack one frame per
// line, as "function (file:line)" with the module prefix trimmed.
func PrettyPrintedStack() string {
	pcs := make([]uintptr, 64)
	frames := runtime.CallersFrames(pcs[:runtime.Callers(2, pcs)])

	sb := strings.Builder{}
	for {
		frame, more := frames.Next()
		if frame.Function == "" {
			break
		}
		name := frame.Function
		if slash := strings.LastIndexByte(name, '/'); slash != -1 {
			name = name[slash+1:]
		}
		file := frame.File
		if i := strings.Index(file, "github.com/webcarrot/tsemit/"); i != -1 {
			file = file[i+len("github.com/webcarrot/tsemit/"):]
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(name)
		sb.WriteString(" (")
		sb.WriteString(file)
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteByte(')')
		if !more {
			break
		}
	}
	return sb.String()
}
