package logger

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

type MsgKind uint8

const (
	Error MsgKind = iota
	Warning
)

func (kind MsgKind) String() string {
	if kind == Warning {
		return "warning"
	}
	return "error"
}

type Msg struct {
	Kind     MsgKind
	Text     string
	Location *MsgLocation
}

type MsgLocation struct {
	File     string
	Line     int // 1-based
	Column   int // 0-based, in bytes
	Length   int // in bytes
	LineText string
}

type Loc struct {
	// This is the 0-based index of this location from the start of the file, in bytes
	Start int32
}

type Range struct {
	Loc Loc
	Len int32
}

func (r Range) End() int32 {
	return r.Loc.Start + r.Len
}

func (msg Msg) String() string {
	if msg.Location == nil {
		return fmt.Sprintf("%s: %s", msg.Kind, msg.Text)
	}
	return fmt.Sprintf("%s:%d:%d: %s: %s", msg.Location.File, msg.Location.Line, msg.Location.Column, msg.Kind, msg.Text)
}

// LocationOf computes the line and column of a byte offset in a file.
func LocationOf(file string, contents string, r Range) *MsgLocation {
	offset := int(r.Loc.Start)
	if offset < 0 || offset > len(contents) {
		return &MsgLocation{File: file}
	}
	lineStart := strings.LastIndexByte(contents[:offset], '\n') + 1
	lineEnd := strings.IndexByte(contents[offset:], '\n')
	if lineEnd == -1 {
		lineEnd = len(contents)
	} else {
		lineEnd += offset
	}
	return &MsgLocation{
		File:     file,
		Line:     strings.Count(contents[:offset], "\n") + 1,
		Column:   offset - lineStart,
		Length:   int(r.Len),
		LineText: strings.TrimSuffix(contents[lineStart:lineEnd], "\r"),
	}
}

// This type is just so we can use Go's native sort function
type msgsArray []Msg

func (a msgsArray) Len() int          { return len(a) }
func (a msgsArray) Swap(i int, j int) { a[i], a[j] = a[j], a[i] }

func (a msgsArray) Less(i int, j int) bool {
	li := a[i].Location
	lj := a[j].Location

	if li == nil || lj == nil {
		return li == nil && lj != nil
	}
	if li.File != lj.File {
		return li.File < lj.File
	}
	if li.Line != lj.Line {
		return li.Line < lj.Line
	}
	if li.Column != lj.Column {
		return li.Column < lj.Column
	}
	return li.Length < lj.Length
}

// Log collects diagnostics. Messages are kept until Done is called, which
// returns them sorted by location.
type Log struct {
	AddMsg    func(Msg)
	HasErrors func() bool
	Done      func() []Msg
}

func NewDeferLog() Log {
	var msgs msgsArray
	var mutex sync.Mutex
	var hasErrors bool

	return Log{
		AddMsg: func(msg Msg) {
			mutex.Lock()
			defer mutex.Unlock()
			if msg.Kind == Error {
				hasErrors = true
			}
			msgs = append(msgs, msg)
		},
		HasErrors: func() bool {
			mutex.Lock()
			defer mutex.Unlock()
			return hasErrors
		},
		Done: func() []Msg {
			mutex.Lock()
			defer mutex.Unlock()
			sort.Stable(msgs)
			return msgs
		},
	}
}

func (log Log) AddError(location *MsgLocation, text string) {
	log.AddMsg(Msg{Kind: Error, Text: text, Location: location})
}

func (log Log) AddWarning(location *MsgLocation, text string) {
	log.AddMsg(Msg{Kind: Warning, Text: text, Location: location})
}
