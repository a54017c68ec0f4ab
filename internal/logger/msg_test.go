package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationOf(t *testing.T) {
	loc := LocationOf("a.ts", "let a;\nlet bad = 1;\n", Range{Loc: Loc{Start: 11}, Len: 3})
	require.NotNil(t, loc)
	assert.Equal(t, MsgLocation{File: "a.ts", Line: 2, Column: 4, Length: 3, LineText: "let bad = 1;"}, *loc)

	assert.Equal(t, &MsgLocation{File: "a.ts"}, LocationOf("a.ts", "x", Range{Loc: Loc{Start: 5}}))
}

func TestMsgFormat(t *testing.T) {
	plain := TerminalInfo{}
	located := Msg{Kind: Error, Text: "oops", Location: &MsgLocation{File: "a.ts", Line: 2, Column: 4, Length: 3, LineText: "let bad = 1;"}}
	assert.Equal(t, "a.ts:2:4: error: oops\nlet bad = 1;\n    ~~~\n", located.Format(plain))

	assert.Equal(t, "warning: careful\n", Msg{Kind: Warning, Text: "careful"}.Format(plain))
	assert.Equal(t, "out.js: error: blocked\n", Msg{Kind: Error, Text: "blocked", Location: &MsgLocation{File: "out.js"}}.Format(plain))

	colored := Msg{Kind: Warning, Text: "careful"}.Format(TerminalInfo{UseColorEscapes: true})
	assert.Equal(t, colorBold+colorMagenta+"warning: "+colorResetBold+"careful"+colorReset+"\n", colored)
}

func TestPrintMessages(t *testing.T) {
	log := NewDeferLog()
	log.AddWarning(&MsgLocation{File: "b.ts"}, "second")
	log.AddError(&MsgLocation{File: "a.ts"}, "first")
	log.AddError(nil, "general")
	assert.True(t, log.HasErrors())

	var out bytes.Buffer
	counts := PrintMessages(&out, log.Done(), TerminalInfo{})
	assert.Equal(t, MsgCounts{Errors: 2, Warnings: 1}, counts)
	assert.Equal(t, "error: general\na.ts: error: first\nb.ts: warning: second\n1 warning and 2 errors\n", out.String())
}

func TestParseColor(t *testing.T) {
	for text, expected := range map[string]StderrColor{"": ColorIfTerminal, "always": ColorAlways, "never": ColorNever, "true": ColorAlways} {
		color, ok := ParseColor(text)
		assert.True(t, ok, text)
		assert.Equal(t, expected, color, text)
	}
	_, ok := ParseColor("sometimes")
	assert.False(t, ok)

	info := TerminalInfo{IsTTY: true, UseColorEscapes: true}
	assert.False(t, ColorNever.Apply(info).UseColorEscapes)
	assert.True(t, ColorIfTerminal.Apply(info).UseColorEscapes)
}
