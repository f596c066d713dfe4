// Package serial assembles CR/LF terminated lines out of a raw byte
// stream and dispatches each complete line, optionally echoing it back
// first. Grounded on original_source/forthduino.cpp's CheckSerial.
package serial

import (
	"fmt"
	"io"
)

// ByteSource is the minimal non-blocking byte source Drain polls:
// Serial.available()/Serial.read() collapsed into a single call that
// returns an error once no more bytes are immediately available.
type ByteSource interface {
	ReadByte() (byte, error)
}

// Assembler buffers incoming bytes into lines and dispatches each one
// through Run as it completes. The zero value is not usable; use New.
type Assembler struct {
	buf []byte

	// Echo reports whether a completed line should be printed back to
	// Out before Run is called, mirroring cmd_echo. Nil means no echo.
	Echo func() bool
	Out  io.Writer
	Run  func(line string)
}

// New returns an Assembler that dispatches completed lines to run.
func New(run func(line string)) *Assembler {
	return &Assembler{Run: run}
}

// Feed appends one input byte, assembling and dispatching a line on CR
// or LF. A bare CR/LF still dispatches an empty line, matching
// CheckSerial's unconditional forth_run(serinput) on every terminator.
func (a *Assembler) Feed(b byte) {
	if b == '\n' || b == '\r' {
		line := string(a.buf)
		a.buf = a.buf[:0]
		if a.Echo != nil && a.Echo() && a.Out != nil {
			fmt.Fprintf(a.Out, "serial>%s\n", line)
		}
		if a.Run != nil {
			a.Run(line)
		}
		return
	}
	a.buf = append(a.buf, b)
}

// Drain feeds every byte immediately available from src, stopping at
// the first error (including io.EOF). Called once per host tick, this
// reproduces CheckSerial's `while (Serial.available() > 0)` poll: every
// complete line currently buffered is dispatched, and any trailing
// partial line is kept for the next tick.
func (a *Assembler) Drain(src ByteSource) {
	for {
		b, err := src.ReadByte()
		if err != nil {
			return
		}
		a.Feed(b)
	}
}
