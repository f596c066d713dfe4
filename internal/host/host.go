// Package host drives the outer tick loop: drain every currently
// queued serial line, handle at most one queued UDP datagram, then run
// every scheduled task whose deadline has arrived. Grounded on
// original_source/forthduino.cpp's forthduino_loop.
//
// The only concurrency in the whole system lives here: a serial reader
// goroutine and a UDP reader goroutine each turn raw I/O into channel
// sends, managed by an errgroup so a collaborator error or context
// cancellation stops every goroutine together. The tick loop itself is
// the single goroutine that ever touches the dictionary, either
// operand stack, or the color-format selector, exactly as the
// single-threaded cooperative model requires.
package host

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wmalkin/rgbforth/internal/eval"
	"github.com/wmalkin/rgbforth/internal/flushio"
	"github.com/wmalkin/rgbforth/internal/lexer"
	"github.com/wmalkin/rgbforth/internal/panicerr"
	"github.com/wmalkin/rgbforth/internal/serial"
	"github.com/wmalkin/rgbforth/internal/udpframe"
)

// idleSleep bounds how long the tick loop waits between iterations
// when a pass over all three poll steps did nothing, so the loop never
// busy-spins a full CPU core while idle.
const idleSleep = 5 * time.Millisecond

// Loop is the host's outer cycle.
type Loop struct {
	it       *eval.Interp
	compiler *lexer.Compiler

	serialReader io.Reader
	conn         net.PacketConn
	udp          *udpframe.Framer
}

// New returns a Loop that evaluates input through compiler against it.
// serialReader may be nil to disable the serial frontend; conn and udp
// must both be non-nil or both nil to enable/disable the UDP frontend.
func New(it *eval.Interp, compiler *lexer.Compiler, serialReader io.Reader, conn net.PacketConn, udp *udpframe.Framer) *Loop {
	return &Loop{it: it, compiler: compiler, serialReader: serialReader, conn: conn, udp: udp}
}

type udpPacket struct {
	data []byte
	addr net.Addr
}

// Run starts the reader goroutines (if configured) and the tick loop,
// blocking until ctx is cancelled or a collaborator reports an error.
func (l *Loop) Run(ctx context.Context) error {
	lines := make(chan string, 64)
	datagrams := make(chan udpPacket, 16)

	g, gctx := errgroup.WithContext(ctx)
	if l.serialReader != nil {
		g.Go(func() error {
			return panicerr.Recover("serial reader", func() error { return l.readSerial(gctx, lines) })
		})
	}
	if l.conn != nil {
		g.Go(func() error {
			return panicerr.Recover("udp reader", func() error { return l.readUDP(gctx, datagrams) })
		})
	}
	g.Go(func() error {
		return panicerr.Recover("tick loop", func() error { return l.tick(gctx, lines, datagrams) })
	})
	return g.Wait()
}

// readSerial assembles raw bytes from l.serialReader into lines and
// sends each completed one to out, per serial.Assembler/CheckSerial.
func (l *Loop) readSerial(ctx context.Context, out chan<- string) error {
	br := bufio.NewReader(l.serialReader)
	asm := serial.New(func(line string) {
		select {
		case out <- line:
		case <-ctx.Done():
		}
	})
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		asm.Feed(b)
	}
}

// readUDP reads datagrams off l.conn and sends each one to out, per
// CheckUDP's Udp.parsePacket/Udp.read.
func (l *Loop) readUDP(ctx context.Context, out chan<- udpPacket) error {
	buf := make([]byte, 1500)
	for {
		n, addr, err := l.conn.ReadFrom(buf)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		data := make([]byte, n)
		copy(data, buf[:n])
		select {
		case out <- udpPacket{data: data, addr: addr}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (l *Loop) tick(ctx context.Context, lines <-chan string, datagrams <-chan udpPacket) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		did := false
		for l.drainOneLine(lines) {
			did = true
		}
		if l.handleOneDatagram(datagrams) {
			did = true
		}
		l.runDueTasks()

		if did {
			if wf, ok := l.it.Out.(flushio.WriteFlusher); ok {
				wf.Flush()
			}
		} else {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(idleSleep):
			}
		}
	}
}

// drainOneLine evaluates a single queued serial line, if one is ready,
// echoing it first when cmd:echo is on. Returns false once the channel
// has nothing buffered, the signal that CheckSerial's own drain loop
// would exit.
func (l *Loop) drainOneLine(lines <-chan string) bool {
	select {
	case line, ok := <-lines:
		if !ok {
			return false
		}
		if l.it.Echo && l.it.Out != nil {
			fmt.Fprintf(l.it.Out, "serial>%s\n", line)
		}
		l.evalLine(line)
		return true
	default:
		return false
	}
}

// handleOneDatagram processes at most one queued UDP datagram, per
// CheckUDP's single-packet-per-call shape.
func (l *Loop) handleOneDatagram(datagrams <-chan udpPacket) bool {
	select {
	case pkt, ok := <-datagrams:
		if !ok {
			return false
		}
		reply := l.udp.Handle(string(pkt.data))
		l.conn.WriteTo([]byte(reply), pkt.addr)
		return true
	default:
		return false
	}
}

func (l *Loop) runDueTasks() {
	var now float64
	if l.it.Clock != nil {
		now = l.it.Clock()
	}
	l.it.Scheduler.Tick(now, l.it.Run)
}

func (l *Loop) evalLine(line string) {
	if seq := l.compiler.Feed(line); seq != nil {
		l.it.Run(seq)
	}
}
