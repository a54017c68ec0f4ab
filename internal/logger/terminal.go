package logger

import (
	"fmt"
	"io"
	"strings"
)

type TerminalInfo struct {
	IsTTY           bool
	UseColorEscapes bool
	Width           int
}

const colorReset = "\033[0m"
const colorRed = "\033[31m"
const colorGreen = "\033[32m"
const colorMagenta = "\033[35m"
const colorBold = "\033[1m"
const colorResetBold = "\033[0;1m"

type StderrColor uint8

const (
	ColorIfTerminal StderrColor = iota
	ColorNever
	ColorAlways
)

// ParseColor accepts the values of the "--color" flag.
func ParseColor(text string) (StderrColor, bool) {
	switch text {
	case "", "auto":
		return ColorIfTerminal, true
	case "false", "never":
		return ColorNever, true
	case "true", "always":
		return ColorAlways, true
	}
	return ColorIfTerminal, false
}

// Apply overrides the terminal's color support with the user's choice.
func (color StderrColor) Apply(info TerminalInfo) TerminalInfo {
	switch color {
	case ColorNever:
		info.UseColorEscapes = false
	case ColorAlways:
		info.UseColorEscapes = SupportsColorEscapes
	}
	return info
}

// Format renders a message the way compilers print diagnostics, followed by
// the offending line and a marker under the reported range.
func (msg Msg) Format(terminalInfo TerminalInfo) string {
	kind := msg.Kind.String()
	kindColor := colorRed
	if msg.Kind == Warning {
		kindColor = colorMagenta
	}

	loc := msg.Location
	if loc == nil || loc.File == "" {
		if terminalInfo.UseColorEscapes {
			return fmt.Sprintf("%s%s%s: %s%s%s\n",
				colorBold, kindColor, kind,
				colorResetBold, msg.Text,
				colorReset)
		}
		return fmt.Sprintf("%s: %s\n", kind, msg.Text)
	}

	if loc.Line == 0 {
		if terminalInfo.UseColorEscapes {
			return fmt.Sprintf("%s%s: %s%s: %s%s%s\n",
				colorBold, loc.File,
				kindColor, kind,
				colorResetBold, msg.Text,
				colorReset)
		}
		return fmt.Sprintf("%s: %s: %s\n", loc.File, kind, msg.Text)
	}

	column := loc.Column
	if column > len(loc.LineText) {
		column = len(loc.LineText)
	}
	end := column + loc.Length
	if end > len(loc.LineText) {
		end = len(loc.LineText)
	}
	indent := strings.Repeat(" ", column)
	marker := "^"
	if end-column > 1 {
		marker = strings.Repeat("~", end-column)
	}

	if terminalInfo.UseColorEscapes {
		return fmt.Sprintf("%s%s:%d:%d: %s%s: %s%s\n%s%s%s%s%s%s\n%s%s%s%s\n",
			colorBold, loc.File,
			loc.Line,
			loc.Column,
			kindColor, kind,
			colorResetBold, msg.Text,
			colorReset, loc.LineText[:column], colorGreen, loc.LineText[column:end], colorReset, loc.LineText[end:],
			colorGreen, indent, marker,
			colorReset)
	}
	return fmt.Sprintf("%s:%d:%d: %s: %s\n%s\n%s%s\n",
		loc.File, loc.Line, loc.Column, kind, msg.Text, loc.LineText, indent, marker)
}

type MsgCounts struct {
	Errors   int
	Warnings int
}

func plural(prefix string, count int) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, prefix)
	}
	return fmt.Sprintf("%d %ss", count, prefix)
}

func (counts MsgCounts) String() string {
	if counts.Errors == 0 {
		if counts.Warnings == 0 {
			return "no errors"
		}
		return plural("warning", counts.Warnings)
	}
	if counts.Warnings == 0 {
		return plural("error", counts.Errors)
	}
	return fmt.Sprintf("%s and %s",
		plural("warning", counts.Warnings),
		plural("error", counts.Errors))
}

// PrintMessages writes every message followed by a summary line, and returns
// the counts.
func PrintMessages(w io.Writer, msgs []Msg, terminalInfo TerminalInfo) MsgCounts {
	counts := MsgCounts{}
	for _, msg := range msgs {
		io.WriteString(w, msg.Format(terminalInfo))
		switch msg.Kind {
		case Error:
			counts.Errors++
		case Warning:
			counts.Warnings++
		}
	}
	if counts.Errors != 0 || counts.Warnings != 0 {
		fmt.Fprintf(w, "%s\n", counts.String())
	}
	return counts
}
