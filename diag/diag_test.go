//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package diag

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/logger"
	"github.com/stretchr/testify/require"
)

func TestLine(t *testing.T) {
	var buf bytes.Buffer
	l := NewLine(&buf)

	l.Emit("hello")
	l.Emit("world\n")
	Emitf(l, "matrix %dx%d", 3, 3)

	require.Equal(t, "hello\r\nworld\r\nmatrix 3x3\r\n", buf.String())
}

func TestLineTruncate(t *testing.T) {
	var buf bytes.Buffer
	l := NewLine(&buf)

	l.Emit(strings.Repeat("x", 500))

	out := buf.String()
	require.Len(t, out, MaxMessage+2)
	require.Equal(t, 124, MaxMessage)
	require.Equal(t, strings.Repeat("x", 124)+"\r\n", out)
	require.LessOrEqual(t, len(out), MaxLine)
	require.True(t, strings.HasSuffix(out, "x\r\n"))
}

type brokenWriter struct{}

func (brokenWriter) Write(p []byte) (int, error) {
	return 0, errors.New("uart: busy")
}

func TestLineBrokenWriter(t *testing.T) {
	l := NewLine(brokenWriter{})
	l.Emit("lost")
}

func TestEmitfNil(t *testing.T) {
	Emitf(nil, "nothing %d", 1)
	Emitf(Discard, "nothing %d", 2)
}

func TestGLog(t *testing.T) {
	var buf bytes.Buffer
	l := logger.Init("masking-test", false, false, &buf)
	defer l.Close()

	s := NewGLog(l)
	s.Emit("matrix filled")
	s.Emit("ERROR: RNG failure detected - halting.")

	out := buf.String()
	require.Contains(t, out, "matrix filled")
	require.Contains(t, out, "ERROR: RNG failure detected")
}
