package ast

import "strings"

type ScriptKind uint8

const (
	ScriptKindUnknown ScriptKind = iota
	ScriptKindJS
	ScriptKindJSX
	ScriptKindTS
	ScriptKindTSX
	ScriptKindJSON
)

// FileReference is a "/// <reference ... />" directive.
type FileReference struct {
	TextRange
	FileName string
}

type SourceFile struct {
	NodeBase
	FileName   string
	Text       string
	Statements *NodeList
	ScriptKind ScriptKind

	IsDeclarationFile       bool
	HasNoDefaultLib         bool
	ModuleName              string
	ReferencedFiles         []FileReference
	TypeReferenceDirectives []FileReference
	LibReferenceDirectives  []FileReference

	// Every identifier text that occurs in the file. Generated names must
	// avoid all of these.
	Identifiers map[string]bool

	lineStarts []int
}

// LineStarts returns the byte offset of the start of each line, computed on
// first use.
func (file *SourceFile) LineStarts() []int {
	if file.lineStarts == nil {
		file.lineStarts = ComputeLineStarts(file.Text)
	}
	return file.lineStarts
}

func (file *SourceFile) IsJSON() bool {
	return file.ScriptKind == ScriptKindJSON || strings.HasSuffix(file.FileName, ".json")
}

// Bundle concatenates several source files (and already-emitted text) into a
// single output.
type Bundle struct {
	NodeBase
	Prepends    []*UnparsedSource
	SourceFiles []*SourceFile

	SyntheticFileReferences []FileReference
	SyntheticTypeReferences []FileReference
	SyntheticLibReferences  []FileReference
	HasNoDefaultLib         bool
}

// UnparsedSource is text that was emitted by an earlier build and is spliced
// into a bundle verbatim, optionally together with its own source map.
type UnparsedSource struct {
	NodeBase
	FileName      string
	Text          string
	SourceMapPath string
	SourceMapText string
}

// ComputeLineStarts treats "\r\n", "\r", "\n", U+2028 and U+2029 as line
// terminators.
func ComputeLineStarts(text string) []int {
	result := []int{0}
	for i := 0; i < len(text); i++ {
		switch c := text[i]; c {
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			result = append(result, i+1)
		case '\n':
			result = append(result, i+1)
		case 0xE2:
			// U+2028 and U+2029 are encoded as E2 80 A8 and E2 80 A9
			if i+2 < len(text) && text[i+1] == 0x80 && (text[i+2] == 0xA8 || text[i+2] == 0xA9) {
				i += 2
				result = append(result, i+1)
			}
		}
	}
	return result
}

// LineOf returns the 0-based line containing the byte offset.
func LineOf(lineStarts []int, pos int) int {
	lo, hi := 0, len(lineStarts)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if lineStarts[mid] <= pos {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo - 1
}

// LineAndCharacterOf returns the 0-based line and the column in bytes.
func LineAndCharacterOf(lineStarts []int, pos int) (line int, character int) {
	line = LineOf(lineStarts, pos)
	if line < 0 {
		return 0, pos
	}
	return line, pos - lineStarts[line]
}
