package unu_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wmalkin/rgbforth/internal/unu"
)

func TestRunFeedsNormalizedLinesAndSkipsComments(t *testing.T) {
	src := "1 2 +\r\n// a comment\r\n3 4 +\n"
	var got []string
	var suppressed []bool

	unu.Run(strings.NewReader(src), "test.fs", func(b bool) { suppressed = append(suppressed, b) }, func(line string) {
		got = append(got, line)
	})

	require.Equal(t, []string{"1 2 +  ", "3 4 + "}, got, "CR/TAB normalize to spaces and // lines are skipped; a CRLF terminator contributes two trailing spaces (one for \\r, one for \\n)")
	require.Equal(t, []bool{true, false}, suppressed, "Run must bracket the whole read in suppress(true)/suppress(false)")
}

func TestRunTabsBecomeSpaces(t *testing.T) {
	var got []string
	unu.Run(strings.NewReader("1\t2\t+\n"), "t.fs", func(bool) {}, func(line string) {
		got = append(got, line)
	})
	require.Equal(t, []string{"1 2 + "}, got)
}

func TestRunHandlesUnterminatedFinalLine(t *testing.T) {
	var got []string
	unu.Run(strings.NewReader("dup *"), "t.fs", func(bool) {}, func(line string) {
		got = append(got, line)
	})
	require.Equal(t, []string{"dup *"}, got, "a trailing line with no newline must still be flushed")
}

type closeTrackingReader struct {
	io.Reader
	closed bool
}

func (c *closeTrackingReader) Close() error {
	c.closed = true
	return nil
}

func TestRunClosesReaderImplementingCloser(t *testing.T) {
	r := &closeTrackingReader{Reader: strings.NewReader("1 2 +\n")}
	unu.Run(r, "t.fs", func(bool) {}, func(string) {})
	require.True(t, r.closed, "Run must close a reader that implements io.Closer once fully read")
}

type erroringCloser struct {
	io.Reader
}

func (erroringCloser) Close() error { return errors.New("boom") }

func TestRunIgnoresCloseError(t *testing.T) {
	r := erroringCloser{Reader: strings.NewReader("1 2 +\n")}
	require.NotPanics(t, func() {
		unu.Run(r, "t.fs", func(bool) {}, func(string) {})
	})
}
