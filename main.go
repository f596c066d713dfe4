package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"time"

	"github.com/wmalkin/rgbforth/internal/eval"
	"github.com/wmalkin/rgbforth/internal/flushio"
	"github.com/wmalkin/rgbforth/internal/host"
	"github.com/wmalkin/rgbforth/internal/lexer"
	"github.com/wmalkin/rgbforth/internal/peripheral/fake"
	"github.com/wmalkin/rgbforth/internal/peripheral/osfs"
	"github.com/wmalkin/rgbforth/internal/udpframe"
	"github.com/wmalkin/rgbforth/internal/unu"
)

// Runtime wires an evaluator to its frontends: serial I/O, an optional
// UDP socket, and the file store behind `file:run` and the UDP
// file-load toggle.
type Runtime struct {
	it       *eval.Interp
	compiler *lexer.Compiler
	start    time.Time

	serialIn   io.Reader
	udpConn    net.PacketConn
	filesDir   string
	outFlusher flushio.WriteFlusher
}

// New returns a Runtime with sensible defaults (no UDP frontend, fake
// peripherals) overridden by opts.
func New(opts ...Option) *Runtime {
	it := eval.New()
	it.Sleep = func(ms int32) { time.Sleep(time.Duration(ms) * time.Millisecond) }
	it.GPIO = fake.NewGPIO()
	it.Strip = fake.NewLEDStrip(60)
	it.Display = fake.NewDisplay7Seg()

	rt := &Runtime{it: it, compiler: lexer.New(it), start: nowFunc()}
	it.Clock = func() float64 { return float64(nowFunc().Sub(rt.start).Milliseconds()) }

	for _, opt := range opts {
		if opt != nil {
			opt.apply(rt)
		}
	}

	it.RunFile = rt.runFile

	return rt
}

// nowFunc is a seam so tests can fake the wall clock; production just
// calls time.Now.
var nowFunc = time.Now

func (rt *Runtime) runFile(name string) {
	if rt.it.Files == nil {
		return
	}
	r, err := rt.it.Files.Open(name, false)
	if err != nil {
		if rt.it.Logf != nil {
			rt.it.Logf("file:run %s: %v", name, err)
		}
		return
	}
	unu.Run(r, name, rt.compiler.SetSuppress, func(line string) {
		if seq := rt.compiler.Feed(line); seq != nil {
			rt.it.Run(seq)
		}
	})
}

// Run starts the host tick loop and blocks until ctx is cancelled or a
// collaborator reports an error.
func (rt *Runtime) Run(ctx context.Context) error {
	var framer *udpframe.Framer
	if rt.udpConn != nil {
		framer = udpframe.New(func(line string) {
			if seq := rt.compiler.Feed(line); seq != nil {
				rt.it.Run(seq)
			}
		})
		framer.Files = osfs.Store{Dir: rt.filesDir}
	}
	loop := host.New(rt.it, rt.compiler, rt.serialIn, rt.udpConn, framer)
	return loop.Run(ctx)
}

func main() {
	ctx := context.Background()

	var timeout time.Duration
	var trace bool
	var udpListen string
	var filesDir string
	var noEcho bool
	flag.DurationVar(&timeout, "timeout", 0, "stop after this long (0 = run forever)")
	flag.BoolVar(&trace, "trace", false, "enable step-trace logging")
	flag.StringVar(&udpListen, "udp-listen", "", "address to bind the UDP command frontend (empty disables it)")
	flag.StringVar(&filesDir, "files-dir", ".", "directory file:run and UDP file loads read/write under")
	flag.BoolVar(&noEcho, "no-echo", false, "disable serial command echo")
	flag.Parse()

	opts := []Option{
		WithSerial(os.Stdin, os.Stdout),
		WithFiles(osfs.Store{Dir: filesDir}, filesDir),
	}
	if trace {
		opts = append(opts, WithLogf(log.Printf))
	}

	var conn net.PacketConn
	if udpListen != "" {
		var err error
		conn, err = net.ListenPacket("udp", udpListen)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
			os.Exit(1)
		}
		defer conn.Close()
		opts = append(opts, WithUDP(conn))
	}

	rt := New(opts...)
	if noEcho {
		rt.it.Echo = false
	}

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := rt.Run(ctx); err != nil && err != context.DeadlineExceeded && err != context.Canceled {
		fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		os.Exit(1)
	}
}
