//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package diag implements the diagnostic output channel. Diagnostics
// are best-effort: a sink never fails its caller and truncates
// overlong messages.
package diag

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// MaxLine is the size of the line buffer, including the CRLF line
// terminator.
const MaxLine = 128

// MaxMessage is the maximum message length before the line
// terminator. Of the remaining 4 bytes, 2 hold the CRLF, 1 the NUL of
// a C string buffer, and 1 is unused.
const MaxMessage = MaxLine - 4

// Sink accepts diagnostic messages.
type Sink interface {
	Emit(msg string)
}

// Discard is a Sink dropping all messages.
var Discard Sink = discard{}

type discard struct{}

func (discard) Emit(msg string) {}

// Emitf formats a message and emits it to the sink.
func Emitf(s Sink, format string, a ...interface{}) {
	if s == nil {
		return
	}
	s.Emit(fmt.Sprintf(format, a...))
}

// Truncate trims trailing line terminators from msg and limits it to
// MaxMessage bytes.
func Truncate(msg string) string {
	msg = strings.TrimRight(msg, "\r\n")
	if len(msg) > MaxMessage {
		msg = msg[:MaxMessage]
	}
	return msg
}

// Line is a Sink writing CRLF-terminated lines to a serial-like
// io.Writer.
type Line struct {
	m   sync.Mutex
	out io.Writer
	buf [MaxLine]byte
}

// NewLine creates a new line sink writing to out.
func NewLine(out io.Writer) *Line {
	return &Line{
		out: out,
	}
}

// Emit implements Sink.Emit. Write errors are ignored.
func (l *Line) Emit(msg string) {
	l.m.Lock()
	defer l.m.Unlock()

	n := copy(l.buf[:], Truncate(msg))
	l.buf[n] = '\r'
	l.buf[n+1] = '\n'
	l.out.Write(l.buf[:n+2])
}
