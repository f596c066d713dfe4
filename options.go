package main

import (
	"io"
	"net"

	"github.com/wmalkin/rgbforth/internal/flushio"
	"github.com/wmalkin/rgbforth/internal/peripheral"
	"github.com/wmalkin/rgbforth/internal/telemetry"
	"github.com/wmalkin/rgbforth/internal/value"
)

// Option configures a Runtime before it starts. Mirrors the teacher's
// functional-options VMOption pattern, generalised to this system's
// collaborator wiring.
type Option interface{ apply(rt *Runtime) }

type serialOption struct {
	in  io.Reader
	out io.Writer
}

func (o serialOption) apply(rt *Runtime) {
	if o.in != nil {
		rt.serialIn = o.in
	}
	if o.out != nil {
		wf := flushio.NewWriteFlusher(o.out)
		rt.it.Out = wf
		rt.outFlusher = wf
	}
}

// WithSerial sets the serial frontend's input and output streams.
func WithSerial(in io.Reader, out io.Writer) Option { return serialOption{in, out} }

type udpOption struct{ conn net.PacketConn }

func (o udpOption) apply(rt *Runtime) { rt.udpConn = o.conn }

// WithUDP enables the UDP frontend on an already-bound conn.
func WithUDP(conn net.PacketConn) Option { return udpOption{conn} }

type logfOption func(mess string, args ...interface{})

func (o logfOption) apply(rt *Runtime) {
	rt.it.Logf = o
	rt.it.StepFn = func(v *value.Value) { o("step: %s", telemetry.FormatValue(v)) }
}

// WithLogf enables step-trace logging.
func WithLogf(logf func(mess string, args ...interface{})) Option { return logfOption(logf) }

type filesOption struct {
	store peripheral.FileStore
	dir   string
}

func (o filesOption) apply(rt *Runtime) {
	rt.it.Files = o.store
	rt.filesDir = o.dir
}

// WithFiles sets the file store behind `file:run`, plus the directory
// new UDP-loaded files are written into. The UDP file-load mechanism
// does not use store: it writes through its own osfs.Store over dir.
func WithFiles(store peripheral.FileStore, dir string) Option { return filesOption{store, dir} }

type peripheralsOption struct {
	gpio    peripheral.GPIO
	strip   peripheral.LEDStrip
	display peripheral.Display7Seg
}

func (o peripheralsOption) apply(rt *Runtime) {
	if o.gpio != nil {
		rt.it.GPIO = o.gpio
	}
	if o.strip != nil {
		rt.it.Strip = o.strip
	}
	if o.display != nil {
		rt.it.Display = o.display
	}
}

// WithPeripherals binds the GPIO, LED strip, and 7-segment display
// collaborators. Any nil argument keeps the collaborator already bound
// (the in-memory fake that New installs).
func WithPeripherals(gpio peripheral.GPIO, strip peripheral.LEDStrip, display peripheral.Display7Seg) Option {
	return peripheralsOption{gpio, strip, display}
}
