// Package udpframe implements the ack-token command framing described
// by the six-step UDP protocol: split ack-token/payload, skip a
// duplicate ack's payload but still reply, toggle file-write mode on a
// "----- name" payload, append to an open file, otherwise evaluate the
// payload, and always reply with the ack-token alone. Grounded on
// original_source/forthduino.cpp's CheckUDP and udp_ack, transport
// generalised from a raw Arduino UDP socket to net.PacketConn so a
// nettest loopback pair can stand in for the physical link in tests.
package udpframe

import (
	"io"
	"net"
	"strings"

	"github.com/wmalkin/rgbforth/internal/peripheral"
)

// Framer decodes and dispatches ack-token-framed datagrams. The zero
// value is not usable; use New.
type Framer struct {
	// Eval runs one line of source through the top-level evaluator.
	Eval func(line string)
	// Files backs the "----- name" file-load toggle, the same
	// collaborator type `file:run` reads from. If Files is nil or Open
	// fails, no write mode is entered: later payloads are evaluated, and
	// a later "----- name" is again an open request.
	Files peripheral.FileStore

	// Log receives human-readable trace lines, mirroring the
	// original's Serial.print status chatter. Nil discards them.
	Log func(format string, args ...interface{})

	prevAck   string
	writeFile io.WriteCloser
}

// New returns a Framer that evaluates lines via eval.
func New(eval func(line string)) *Framer {
	return &Framer{Eval: eval}
}

func (f *Framer) logf(format string, args ...interface{}) {
	if f.Log != nil {
		f.Log(format, args...)
	}
}

// Handle decodes one raw datagram and returns the ack-only reply that
// must always be sent back to the sender, regardless of whether the
// payload was a duplicate, a file-load control line, file content, or
// an evaluated command.
func (f *Framer) Handle(datagram string) (reply string) {
	i := strings.IndexByte(datagram, ' ')
	if i < 0 {
		// No payload separator: the whole datagram is the ack-token
		// and there is nothing to execute.
		return datagram
	}
	ack := datagram[:i]
	payload := datagram[i+1:]

	if ack != f.prevAck {
		f.prevAck = ack
		f.dispatch(payload)
	}
	return ack
}

func (f *Framer) dispatch(payload string) {
	if name, ok := fileToggleName(payload); ok {
		f.toggleFile(name)
		return
	}
	if f.writeFile != nil {
		f.writeFileLine(payload)
		return
	}
	if f.Eval != nil {
		f.Eval(payload)
	}
}

func fileToggleName(payload string) (string, bool) {
	const prefix = "----- "
	if !strings.HasPrefix(payload, prefix) {
		return "", false
	}
	return payload[len(prefix):], true
}

func (f *Framer) toggleFile(name string) {
	if f.writeFile != nil {
		f.logf("close udp file update")
		f.writeFile.Close()
		f.writeFile = nil
		return
	}
	f.logf("opening file %s", name)
	if f.Files == nil {
		return
	}
	rwc, err := f.Files.Open(name, true)
	if err != nil {
		f.logf("opened: false: %v", err)
		return
	}
	f.writeFile = rwc
	f.logf("opened: true")
}

func (f *Framer) writeFileLine(payload string) {
	f.logf("Write content: %s", payload)
	io.WriteString(f.writeFile, payload+"\n")
}

// ServeOnce reads at most one datagram from conn, frames it, and
// writes the ack-only reply back to the sender's address, mirroring
// one CheckUDP invocation's Udp.parsePacket/Udp.read/udp_ack cycle. ok
// is false, with a nil error, if the read deadline set on conn expires
// before a datagram arrives; without a deadline the call blocks.
func (f *Framer) ServeOnce(conn net.PacketConn) (ok bool, err error) {
	buf := make([]byte, 1500)
	n, addr, err := conn.ReadFrom(buf)
	if err != nil {
		if ne, isNetErr := err.(net.Error); isNetErr && ne.Timeout() {
			return false, nil
		}
		return false, err
	}
	reply := f.Handle(string(buf[:n]))
	_, err = conn.WriteTo([]byte(reply), addr)
	return true, err
}
