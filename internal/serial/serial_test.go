package serial_test

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wmalkin/rgbforth/internal/serial"
)

func TestFeedDispatchesOnNewline(t *testing.T) {
	var got []string
	a := serial.New(func(line string) { got = append(got, line) })

	for _, b := range []byte("1 2 +\n") {
		a.Feed(b)
	}
	require.Equal(t, []string{"1 2 +"}, got)
}

func TestFeedDispatchesOnBareCR(t *testing.T) {
	var got []string
	a := serial.New(func(line string) { got = append(got, line) })

	for _, b := range []byte("dup\r") {
		a.Feed(b)
	}
	require.Equal(t, []string{"dup"}, got)
}

func TestFeedEmptyLineStillDispatches(t *testing.T) {
	var got []string
	a := serial.New(func(line string) { got = append(got, line) })
	a.Feed('\n')
	require.Equal(t, []string{""}, got)
}

func TestFeedKeepsPartialLineAcrossCalls(t *testing.T) {
	var got []string
	a := serial.New(func(line string) { got = append(got, line) })

	for _, b := range []byte("1 2") {
		a.Feed(b)
	}
	require.Empty(t, got)

	for _, b := range []byte(" +\n") {
		a.Feed(b)
	}
	require.Equal(t, []string{"1 2 +"}, got)
}

func TestFeedEchoesWhenEnabled(t *testing.T) {
	var got []string
	var out bytes.Buffer
	a := serial.New(func(line string) { got = append(got, line) })
	a.Out = &out
	a.Echo = func() bool { return true }

	for _, b := range []byte("5 .\n") {
		a.Feed(b)
	}
	require.Equal(t, "serial>5 .\n", out.String())
}

func TestFeedDoesNotEchoWhenDisabled(t *testing.T) {
	var out bytes.Buffer
	a := serial.New(func(string) {})
	a.Out = &out
	a.Echo = func() bool { return false }

	for _, b := range []byte("5 .\n") {
		a.Feed(b)
	}
	require.Empty(t, out.String())
}

func TestDrainStopsAtFirstError(t *testing.T) {
	var got []string
	a := serial.New(func(line string) { got = append(got, line) })

	r := bufio.NewReader(strings.NewReader("1 2 +\n3 4"))
	a.Drain(r)

	require.Equal(t, []string{"1 2 +"}, got, "a trailing partial line must be kept for the next Drain")

	// Draining an already-exhausted reader again must be a harmless no-op.
	a.Drain(r)
	require.Equal(t, []string{"1 2 +"}, got)
}
